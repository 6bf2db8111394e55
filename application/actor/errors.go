package actor

import "errors"

// Sentinel errors for run_lazy_lookahead (spec.md §4.4, §7).
var (
	// ErrGaveUp indicates the outer loop exhausted Options.MaxTries without
	// reaching the goal.
	ErrGaveUp = errors.New("run_lazy_lookahead gave up: max tries exhausted")

	// ErrPlanningFailed indicates find_plan returned Failure (no plan
	// satisfies the todo-list from the current state). Since find_plan is
	// deterministic on a fixed state, this ends the run immediately rather
	// than consuming a try: replanning from the same state cannot succeed.
	ErrPlanningFailed = errors.New("run_lazy_lookahead: planning failed")

	// ErrNilDomain indicates RunLazyLookahead was called with a nil
	// *catalog.Domain.
	ErrNilDomain = errors.New("actor: nil domain")

	// ErrCircuitOpen indicates a command's circuit breaker tripped after
	// too many consecutive failures across replanning iterations: the
	// actor treats this as a fatal, non-retryable condition rather than
	// looping forever against a structurally broken command.
	ErrCircuitOpen = errors.New("actor: command circuit open")

	// ErrBudgetExceeded indicates Options.BudgetLimits' "commands" resource
	// was exhausted mid-plan: the actor stops rather than execute a command
	// it cannot account for.
	ErrBudgetExceeded = errors.New("actor: command budget exceeded")
)
