package planner

import "errors"

// Sentinel errors for the planner's fatal-domain-error class (spec.md §7.3).
// Method-inapplicable and goal-verification failures are not errors at all
// in this design — they are ordinary backtracking, signaled by a plain
// bool return from seekPlan, never surfaced to the caller as an error.
var (
	// ErrNoPlan indicates seek_plan exhausted every alternative without
	// finding a plan. Not a fatal error: the domain and todo-list were
	// well-formed, the search simply found no solution.
	ErrNoPlan = errors.New("no plan satisfies the todo list")

	// ErrMaxDepthExceeded indicates seek_plan's recursion depth exceeded a
	// configured, nonzero Options.MaxDepth (spec.md §5).
	ErrMaxDepthExceeded = errors.New("seek_plan exceeded max depth")

	// ErrNilDomain indicates Find was called with a nil *catalog.Domain.
	ErrNilDomain = errors.New("planner: nil domain")
)
