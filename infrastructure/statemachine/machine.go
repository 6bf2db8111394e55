// Package statemachine provides the statekit integration for the actor's
// lazy-lookahead lifecycle.
package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/go-htn/htngo/domain/budget"
	"github.com/go-htn/htngo/domain/ledger"
)

// Context carries run state through the actor's lifecycle state machine.
type Context struct {
	RunID          string
	CurrentState   ledger.ActorState
	TriesRemaining int
	Budget         *budget.Budget
	Ledger         *ledger.Ledger
}

// NewContext creates a new machine context for a run_lazy_lookahead run.
func NewContext(runID string, maxTries int, b *budget.Budget, l *ledger.Ledger) *Context {
	return &Context{
		RunID:          runID,
		CurrentState:   ledger.StatePlanning,
		TriesRemaining: maxTries,
		Budget:         b,
		Ledger:         l,
	}
}

// State IDs as StateID type for statekit.
const (
	statePlanning   statekit.StateID = statekit.StateID(ledger.StatePlanning)
	stateExecuting  statekit.StateID = statekit.StateID(ledger.StateExecuting)
	stateReplanning statekit.StateID = statekit.StateID(ledger.StateReplanning)
	stateSucceeded  statekit.StateID = statekit.StateID(ledger.StateSucceeded)
	stateGaveUp     statekit.StateID = statekit.StateID(ledger.StateGaveUp)
	stateFailed     statekit.StateID = statekit.StateID(ledger.StateFailed)
)

// NewActorMachine creates the canonical run_lazy_lookahead statechart:
//
//	planning   --PLAN_FOUND-->   executing
//	planning   --GIVE_UP-->      gave_up
//	executing  --GOAL_REACHED--> succeeded
//	executing  --REPLAN-->       replanning
//	executing  --FAIL-->         failed
//	replanning --RETRY-->        planning   (guarded by triesRemaining and budgetAvailable)
//	replanning --GIVE_UP-->      gave_up
func NewActorMachine() (*statekit.MachineConfig[*Context], error) {
	return statekit.NewMachine[*Context]("actor").
		WithInitial(statePlanning).
		WithContext(&Context{}).
		WithAction("logEntry", logStateEntry).
		WithAction("recordTransition", recordTransition).
		WithGuard("triesRemaining", guardTriesRemaining).
		WithGuard("budgetAvailable", guardBudgetAvailable).
		State(statePlanning).
		OnEntry("logEntry").
		On("PLAN_FOUND").Target(stateExecuting).Do("recordTransition").
		On("GIVE_UP").Target(stateGaveUp).Do("recordTransition").
		Done().
		State(stateExecuting).
		OnEntry("logEntry").
		On("GOAL_REACHED").Target(stateSucceeded).Do("recordTransition").
		On("REPLAN").Target(stateReplanning).Do("recordTransition").
		On("FAIL").Target(stateFailed).Do("recordTransition").
		Done().
		State(stateReplanning).
		OnEntry("logEntry").
		On("RETRY").Target(statePlanning).Guard("triesRemaining").Guard("budgetAvailable").Do("recordTransition").
		On("GIVE_UP").Target(stateGaveUp).Do("recordTransition").
		Done().
		State(stateSucceeded).
		Final().
		OnEntry("logEntry").
		Done().
		State(stateGaveUp).
		Final().
		OnEntry("logEntry").
		Done().
		State(stateFailed).
		Final().
		OnEntry("logEntry").
		Done().
		Build()
}

// EventForTransition returns the event type for a lifecycle transition.
func EventForTransition(to ledger.ActorState) statekit.EventType {
	switch to {
	case ledger.StateExecuting:
		return "PLAN_FOUND"
	case ledger.StatePlanning:
		return "RETRY"
	case ledger.StateReplanning:
		return "REPLAN"
	case ledger.StateSucceeded:
		return "GOAL_REACHED"
	case ledger.StateGaveUp:
		return "GIVE_UP"
	case ledger.StateFailed:
		return "FAIL"
	default:
		return statekit.EventType(to)
	}
}

// StateFromMachine converts the machine state ID to a ledger.ActorState.
func StateFromMachine(stateID statekit.StateID) ledger.ActorState {
	return ledger.ActorState(stateID)
}
