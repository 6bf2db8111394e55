package planner

import (
	"github.com/go-htn/htngo/domain/telemetry"
	"github.com/go-htn/htngo/infrastructure/observability"
)

// Options carries the planner's process-scope tunables (spec.md §6),
// passed explicitly to Find/New rather than read from package globals.
type Options struct {
	// Verbose controls trace verbosity: 0 silent, 1 call traces, 2
	// per-recursion, 3 intermediate state dumps.
	Verbose int

	// VerifyGoals enables _verify_g/_verify_mg injection after a
	// unigoal/multigoal method succeeds.
	VerifyGoals bool

	// MaxDepth caps seek_plan's recursion depth. Zero means unbounded.
	MaxDepth int
}

// DefaultOptions returns the planner's default tunables.
func DefaultOptions() Options {
	return Options{VerifyGoals: true}
}

// Option configures a Planner's ambient wiring (telemetry), as opposed to
// Options above, which configures search behavior.
type Option func(*Planner)

// WithTracer sets the tracer used to open a span per seek_plan call.
func WithTracer(t telemetry.Tracer) Option {
	return func(p *Planner) {
		p.tracer = t
	}
}

// WithMetrics sets the metric bundle the planner records against.
func WithMetrics(m *observability.PlannerMetrics) Option {
	return func(p *Planner) {
		p.metrics = m
	}
}

// WithOptions sets the search-behavior tunables.
func WithOptions(opts Options) Option {
	return func(p *Planner) {
		p.opts = opts
	}
}
