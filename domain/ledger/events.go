package ledger

import "time"

// Event represents a domain event that can be published.
type Event interface {
	EventType() string
	Timestamp() time.Time
	RunID() string
}

// BaseEvent provides common event fields.
type BaseEvent struct {
	Type  string     `json:"type"`
	Time  time.Time  `json:"timestamp"`
	Run   string     `json:"run_id"`
	State ActorState `json:"state,omitempty"`
}

// EventType returns the event type.
func (e BaseEvent) EventType() string {
	return e.Type
}

// Timestamp returns the event timestamp.
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// RunID returns the run ID.
func (e BaseEvent) RunID() string {
	return e.Run
}

// RunStartedEvent is published when run_lazy_lookahead starts.
type RunStartedEvent struct {
	BaseEvent
	GoalSummary string `json:"goal_summary"`
}

// NewRunStartedEvent creates a run started event.
func NewRunStartedEvent(runID, goalSummary string) RunStartedEvent {
	return RunStartedEvent{
		BaseEvent: BaseEvent{
			Type:  "run.started",
			Time:  time.Now(),
			Run:   runID,
			State: StatePlanning,
		},
		GoalSummary: goalSummary,
	}
}

// RunSucceededEvent is published when run_lazy_lookahead reaches the goal.
type RunSucceededEvent struct {
	BaseEvent
	Duration time.Duration `json:"duration"`
}

// NewRunSucceededEvent creates a run succeeded event.
func NewRunSucceededEvent(runID string, duration time.Duration) RunSucceededEvent {
	return RunSucceededEvent{
		BaseEvent: BaseEvent{
			Type:  "run.succeeded",
			Time:  time.Now(),
			Run:   runID,
			State: StateSucceeded,
		},
		Duration: duration,
	}
}

// RunFailedEvent is published when a run ends without reaching the goal.
type RunFailedEvent struct {
	BaseEvent
	Reason   string        `json:"reason"`
	Duration time.Duration `json:"duration"`
}

// NewRunFailedEvent creates a run failed event.
func NewRunFailedEvent(runID, reason string, state ActorState, duration time.Duration) RunFailedEvent {
	return RunFailedEvent{
		BaseEvent: BaseEvent{
			Type:  "run.failed",
			Time:  time.Now(),
			Run:   runID,
			State: state,
		},
		Reason:   reason,
		Duration: duration,
	}
}

// StateChangedEvent is published when the actor's lifecycle state changes.
type StateChangedEvent struct {
	BaseEvent
	FromState ActorState `json:"from_state"`
	ToState   ActorState `json:"to_state"`
	Reason    string     `json:"reason,omitempty"`
}

// NewStateChangedEvent creates a state changed event.
func NewStateChangedEvent(runID string, from, to ActorState, reason string) StateChangedEvent {
	return StateChangedEvent{
		BaseEvent: BaseEvent{
			Type:  "state.changed",
			Time:  time.Now(),
			Run:   runID,
			State: to,
		},
		FromState: from,
		ToState:   to,
		Reason:    reason,
	}
}

// CommandExecutedEvent is published when the actor executes a command for a step.
type CommandExecutedEvent struct {
	BaseEvent
	CommandName string        `json:"command_name"`
	Duration    time.Duration `json:"duration"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
}

// NewCommandExecutedEvent creates a command executed event.
func NewCommandExecutedEvent(runID string, state ActorState, commandName string, duration time.Duration, success bool, err string) CommandExecutedEvent {
	return CommandExecutedEvent{
		BaseEvent: BaseEvent{
			Type:  "command.executed",
			Time:  time.Now(),
			Run:   runID,
			State: state,
		},
		CommandName: commandName,
		Duration:    duration,
		Success:     success,
		Error:       err,
	}
}

// EventPublisher publishes domain events.
type EventPublisher interface {
	Publish(event Event) error
}

// NoOpPublisher discards all events.
type NoOpPublisher struct{}

// Publish discards the event.
func (NoOpPublisher) Publish(_ Event) error {
	return nil
}
