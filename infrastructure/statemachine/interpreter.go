package statemachine

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/go-htn/htngo/domain/ledger"
)

// TransitionPayload carries additional data with a transition event.
type TransitionPayload struct {
	ToState ledger.ActorState
	Reason  string
}

// Interpreter wraps the statekit interpreter with actor-lifecycle-specific
// functionality.
type Interpreter struct {
	interp *statekit.Interpreter[*Context]
	ctx    *Context
}

// NewInterpreter creates a new interpreter for the actor state machine.
func NewInterpreter(machine *statekit.MachineConfig[*Context], ctx *Context) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **Context) {
		*c = ctx
	})
	return &Interpreter{interp: interp, ctx: ctx}
}

// Start initializes the interpreter and enters the initial state.
func (i *Interpreter) Start() {
	i.interp.Start()
	state := i.interp.State()
	i.ctx.CurrentState = ledger.ActorState(state.Value)
}

// Stop stops the interpreter.
func (i *Interpreter) Stop() {
	i.interp.Stop()
}

// State returns the current lifecycle state.
func (i *Interpreter) State() ledger.ActorState {
	state := i.interp.State()
	return ledger.ActorState(state.Value)
}

// validTransitions enumerates the actor's fixed lifecycle transition table.
var validTransitions = map[ledger.ActorState][]ledger.ActorState{
	ledger.StatePlanning:   {ledger.StateExecuting, ledger.StateGaveUp},
	ledger.StateExecuting:  {ledger.StateSucceeded, ledger.StateReplanning, ledger.StateFailed},
	ledger.StateReplanning: {ledger.StatePlanning, ledger.StateGaveUp},
}

// CanTransition reports whether a transition from the current state to the
// target state is structurally allowed by the lifecycle table.
func (i *Interpreter) CanTransition(to ledger.ActorState) bool {
	for _, allowed := range validTransitions[i.ctx.CurrentState] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition attempts to transition to the target state.
func (i *Interpreter) Transition(to ledger.ActorState, reason string) error {
	if !i.CanTransition(to) {
		return fmt.Errorf("transition from %s to %s not allowed", i.ctx.CurrentState, to)
	}

	eventType := EventForTransition(to)
	payload := TransitionPayload{ToState: to, Reason: reason}

	event := statekit.Event{
		Type:    eventType,
		Payload: payload,
	}

	i.interp.Send(event)

	newState := i.interp.State()
	i.ctx.CurrentState = ledger.ActorState(newState.Value)

	return nil
}

// IsTerminal returns true if the interpreter is in a terminal lifecycle state.
func (i *Interpreter) IsTerminal() bool {
	return i.interp.Done()
}

// Context returns the interpreter context.
func (i *Interpreter) Context() *Context {
	return i.ctx
}

// Matches checks if the current state matches the given state ID.
func (i *Interpreter) Matches(stateID string) bool {
	return i.interp.Matches(statekit.StateID(stateID))
}

// ResumeFrom restores the interpreter to a specific lifecycle state.
func (i *Interpreter) ResumeFrom(state ledger.ActorState) error {
	snapshot := statekit.Snapshot[*Context]{
		MachineID:    "actor",
		CurrentState: statekit.StateID(string(state)),
		Context:      i.ctx,
		CreatedAt:    time.Now(),
	}

	if err := i.interp.Restore(snapshot); err != nil {
		return fmt.Errorf("failed to restore state: %w", err)
	}

	i.ctx.CurrentState = state

	return nil
}
