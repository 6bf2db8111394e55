package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/go-htn/htngo/domain/ledger"
)

// guardTriesRemaining checks that run_lazy_lookahead has tries left before
// allowing a replanning->planning retry.
func guardTriesRemaining(ctx *Context, _ statekit.Event) bool {
	if ctx == nil {
		return false
	}
	return ctx.TriesRemaining > 0
}

// guardBudgetAvailable checks that the actor's resource budget is not exhausted.
func guardBudgetAvailable(ctx *Context, _ statekit.Event) bool {
	if ctx == nil || ctx.Budget == nil {
		return true // no budget tracked means unlimited
	}
	return !ctx.Budget.IsExhausted()
}

// stateFromEventType derives the target lifecycle state from an event type.
func stateFromEventType(eventType statekit.EventType) ledger.ActorState {
	switch eventType {
	case "PLAN_FOUND":
		return ledger.StateExecuting
	case "RETRY":
		return ledger.StatePlanning
	case "REPLAN":
		return ledger.StateReplanning
	case "GOAL_REACHED":
		return ledger.StateSucceeded
	case "GIVE_UP":
		return ledger.StateGaveUp
	case "FAIL":
		return ledger.StateFailed
	default:
		return ledger.ActorState(eventType)
	}
}
