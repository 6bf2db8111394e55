// Package ledger provides an append-only audit trail of planner and actor
// activity for a single run.
package ledger

import (
	"encoding/json"
	"time"
)

// ActorState names one of run_lazy_lookahead's lifecycle states.
type ActorState string

const (
	StatePlanning   ActorState = "planning"
	StateExecuting  ActorState = "executing"
	StateReplanning ActorState = "replanning"
	StateSucceeded  ActorState = "succeeded"
	StateGaveUp     ActorState = "gave_up"
	StateFailed     ActorState = "failed"
)

// EntryType classifies the type of ledger entry.
type EntryType string

const (
	EntryRunStarted      EntryType = "run_started"
	EntryRunSucceeded    EntryType = "run_succeeded"
	EntryRunGaveUp       EntryType = "run_gave_up"
	EntryRunFailed       EntryType = "run_failed"
	EntryStateTransition EntryType = "state_transition"
	EntryPlanFound       EntryType = "plan_found"
	EntryPlanNotFound    EntryType = "plan_not_found"
	EntryCommandExecuted EntryType = "command_executed"
	EntryCommandFailed   EntryType = "command_failed"
	EntryVerifyFailed    EntryType = "verify_failed"
	EntryBudgetConsumed  EntryType = "budget_consumed"
	EntryBudgetExhausted EntryType = "budget_exhausted"
)

// Entry represents a single record in the ledger.
type Entry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Type      EntryType       `json:"type"`
	RunID     string          `json:"run_id"`
	State     ActorState      `json:"state,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// TransitionDetails contains details for state transition entries.
type TransitionDetails struct {
	FromState ActorState `json:"from_state"`
	ToState   ActorState `json:"to_state"`
	Reason    string     `json:"reason,omitempty"`
}

// PlanDetails contains details for plan_found/plan_not_found entries.
type PlanDetails struct {
	StepCount int    `json:"step_count,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// CommandDetails contains details for command_executed/command_failed entries.
type CommandDetails struct {
	CommandName string `json:"command_name"`
	Args        string `json:"args,omitempty"`
	Error       string `json:"error,omitempty"`
}

// VerifyDetails contains details for verify_failed entries.
type VerifyDetails struct {
	MethodName string `json:"method_name"`
	Target     string `json:"target"`
}

// BudgetDetails contains details for budget entries.
type BudgetDetails struct {
	BudgetName string `json:"budget_name"`
	Amount     int    `json:"amount"`
	Remaining  int    `json:"remaining"`
}

// NewEntry creates a new ledger entry.
func NewEntry(entryType EntryType, runID string, state ActorState, details any) Entry {
	var detailsJSON json.RawMessage
	if details != nil {
		detailsJSON, _ = json.Marshal(details)
	}

	return Entry{
		Timestamp: time.Now(),
		Type:      entryType,
		RunID:     runID,
		State:     state,
		Details:   detailsJSON,
	}
}

// DecodeDetails unmarshals the entry details into the given struct.
func (e Entry) DecodeDetails(v any) error {
	if e.Details == nil {
		return nil
	}
	return json.Unmarshal(e.Details, v)
}
