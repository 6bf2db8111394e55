package observability

import (
	"context"
	"time"

	"github.com/go-htn/htngo/domain/telemetry"
)

// PlannerMetrics bundles the counters and histograms the planner and actor
// record against, grounded on the teacher's AgentMetrics bundle
// (infrastructure/observability/middleware.go) and re-keyed from
// tool-execution concepts to plan search and lazy-lookahead concepts.
type PlannerMetrics struct {
	PlansFound       telemetry.Counter
	Backtracks       telemetry.Counter
	VerifyFailures   telemetry.Counter
	SeekPlanLatency  telemetry.Histogram
	ActorReplans     telemetry.Counter
	CommandFailures  telemetry.Counter
	ActorRunDuration telemetry.Histogram
}

// NewPlannerMetrics creates the planner/actor metric instruments from meter.
func NewPlannerMetrics(meter telemetry.Meter) *PlannerMetrics {
	return &PlannerMetrics{
		PlansFound: meter.Counter("htn.plans_found",
			telemetry.WithDescription("Total number of plans found by seek_plan"),
			telemetry.WithUnit("{plan}"),
		),
		Backtracks: meter.Counter("htn.backtracks",
			telemetry.WithDescription("Total number of refinement backtracks"),
			telemetry.WithUnit("{backtrack}"),
		),
		VerifyFailures: meter.Counter("htn.verify_failures",
			telemetry.WithDescription("Total number of failed goal verifications"),
			telemetry.WithUnit("{failure}"),
		),
		SeekPlanLatency: meter.Histogram("htn.seek_plan.latency_seconds",
			telemetry.WithDescription("Latency of a top-level find_plan call"),
			telemetry.WithUnit("s"),
		),
		ActorReplans: meter.Counter("htn.actor.replans",
			telemetry.WithDescription("Total number of replans triggered by run_lazy_lookahead"),
			telemetry.WithUnit("{replan}"),
		),
		CommandFailures: meter.Counter("htn.actor.command_failures",
			telemetry.WithDescription("Total number of failed command executions"),
			telemetry.WithUnit("{failure}"),
		),
		ActorRunDuration: meter.Histogram("htn.actor.run.duration_seconds",
			telemetry.WithDescription("Duration of a run_lazy_lookahead run"),
			telemetry.WithUnit("s"),
		),
	}
}

// RecordPlanFound records a successful find_plan call.
func (m *PlannerMetrics) RecordPlanFound(ctx context.Context, domain string, latency time.Duration) {
	m.PlansFound.Add(ctx, 1, telemetry.String("domain", domain))
	m.SeekPlanLatency.Record(ctx, latency.Seconds(), telemetry.String("domain", domain), telemetry.String("status", "found"))
}

// RecordPlanNotFound records a find_plan call that exhausted its search.
func (m *PlannerMetrics) RecordPlanNotFound(ctx context.Context, domain string, latency time.Duration) {
	m.SeekPlanLatency.Record(ctx, latency.Seconds(), telemetry.String("domain", domain), telemetry.String("status", "not_found"))
}

// RecordBacktrack records one refiner alternative rejected.
func (m *PlannerMetrics) RecordBacktrack(ctx context.Context, kind string) {
	m.Backtracks.Add(ctx, 1, telemetry.String("kind", kind))
}

// RecordVerifyFailure records a failed _verify_g/_verify_mg check.
func (m *PlannerMetrics) RecordVerifyFailure(ctx context.Context, target string) {
	m.VerifyFailures.Add(ctx, 1, telemetry.String("target", target))
}

// RecordReplan records run_lazy_lookahead discarding a plan and calling find_plan again.
func (m *PlannerMetrics) RecordReplan(ctx context.Context, runID string) {
	m.ActorReplans.Add(ctx, 1, telemetry.String("run_id", runID))
}

// RecordCommandFailure records a command execution that returned failure.
func (m *PlannerMetrics) RecordCommandFailure(ctx context.Context, commandName string) {
	m.CommandFailures.Add(ctx, 1, telemetry.String("command", commandName))
}

// RecordActorRun records the outcome and duration of a full run_lazy_lookahead run.
func (m *PlannerMetrics) RecordActorRun(ctx context.Context, status string, duration time.Duration) {
	m.ActorRunDuration.Record(ctx, duration.Seconds(), telemetry.String("status", status))
}
