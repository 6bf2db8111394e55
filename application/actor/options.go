package actor

import (
	"github.com/go-htn/htngo/application/planner"
	"github.com/go-htn/htngo/domain/telemetry"
	"github.com/go-htn/htngo/infrastructure/observability"
	"github.com/go-htn/htngo/infrastructure/resilience"
)

// Options carries run_lazy_lookahead's tunables (spec.md §4.4, §6).
type Options struct {
	// MaxTries bounds the outer plan-execute-replan loop. Default 10.
	MaxTries int

	// Planner configures the Find calls the actor makes on every outer
	// iteration.
	Planner planner.Options

	// BudgetLimits optionally caps named resources RunLazyLookahead
	// consumes against as it runs, independent of MaxTries: configure
	// budget.ResourceCommands to cap total commands dispatched, and/or
	// budget.ResourceReplans to cap total replanning iterations. Nil means
	// unlimited.
	BudgetLimits map[string]int
}

// DefaultOptions returns the actor's default tunables.
func DefaultOptions() Options {
	return Options{
		MaxTries: 10,
		Planner:  planner.DefaultOptions(),
	}
}

// Option configures an Actor's ambient wiring.
type Option func(*Actor)

// WithTracer sets the tracer used for the run's single
// "actor.run_lazy_lookahead" span; without a WithPlanner option, the
// default Planner uses it for its find_plan spans too.
func WithTracer(t telemetry.Tracer) Option {
	return func(a *Actor) {
		a.tracer = t
	}
}

// WithMetrics sets the metric bundle the actor records against.
func WithMetrics(m *observability.PlannerMetrics) Option {
	return func(a *Actor) {
		a.metrics = m
	}
}

// WithExecutor sets the resilient command executor. Without this option,
// a default executor (retry + per-command circuit breaker) is used.
func WithExecutor(e *resilience.Executor) Option {
	return func(a *Actor) {
		a.executor = e
	}
}

// WithOptions sets the run tunables.
func WithOptions(opts Options) Option {
	return func(a *Actor) {
		a.opts = opts
	}
}

// WithPlanner sets the Planner used for find_plan calls. Without this
// option, a Planner is built from the Actor's own tracer/metrics and
// Options.Planner.
func WithPlanner(p *planner.Planner) Option {
	return func(a *Actor) {
		a.planner = p
	}
}
