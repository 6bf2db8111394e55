package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/go-htn/htngo/domain/ledger"
)

// logStateEntry updates the context's CurrentState when a new state is entered.
// statekit actions receive a pointer to the context; ours is already a
// pointer, so actions receive **Context.
func logStateEntry(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx

	var newState ledger.ActorState
	if payload, ok := event.Payload.(TransitionPayload); ok {
		newState = payload.ToState
	} else {
		newState = stateFromEventType(event.Type)
	}

	if newState != "" {
		c.CurrentState = newState
	}
}

// recordTransition records the lifecycle transition in the ledger and
// decrements TriesRemaining when a replan is about to retry planning.
func recordTransition(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil || (*ctx).Ledger == nil {
		return
	}
	c := *ctx
	fromState := c.CurrentState

	var toState ledger.ActorState
	var reason string
	if payload, ok := event.Payload.(TransitionPayload); ok {
		toState = payload.ToState
		reason = payload.Reason
	} else {
		toState = stateFromEventType(event.Type)
	}

	c.Ledger.RecordTransition(fromState, toState, reason)

	if fromState == ledger.StateReplanning && toState == ledger.StatePlanning {
		c.TriesRemaining--
	}

	c.CurrentState = toState
}

// ActionWithReason creates a payload that includes a reason in the event.
func ActionWithReason(reason string) TransitionPayload {
	return TransitionPayload{Reason: reason}
}
