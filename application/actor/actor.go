// Package actor implements run_lazy_lookahead: the plan-execute-replan loop
// that interleaves find_plan with command execution, re-planning whenever a
// command's real-world execution diverges from its action's prediction.
package actor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/go-htn/htngo/application/planner"
	"github.com/go-htn/htngo/domain/budget"
	"github.com/go-htn/htngo/domain/catalog"
	"github.com/go-htn/htngo/domain/htnstate"
	"github.com/go-htn/htngo/domain/ledger"
	"github.com/go-htn/htngo/domain/telemetry"
	"github.com/go-htn/htngo/domain/todo"
	"github.com/go-htn/htngo/infrastructure/logging"
	"github.com/go-htn/htngo/infrastructure/observability"
	"github.com/go-htn/htngo/infrastructure/resilience"
	"github.com/go-htn/htngo/infrastructure/statemachine"
)

// Actor runs run_lazy_lookahead against an explicit *catalog.Domain. Like
// Planner, it holds no per-run state — RunLazyLookahead builds a fresh
// ledger, budget, and statechart interpreter per call.
type Actor struct {
	tracer   telemetry.Tracer
	metrics  *observability.PlannerMetrics
	executor *resilience.Executor
	planner  *planner.Planner
	opts     Options
}

// New creates an Actor. Without options it uses no-op telemetry, a default
// resilient executor (retry + per-command circuit breaker), and a Planner
// built from the same telemetry.
func New(opts ...Option) *Actor {
	a := &Actor{
		tracer:  observability.NewNoopTracer(),
		metrics: observability.NewPlannerMetrics(observability.NewNoopMeter()),
		opts:    DefaultOptions(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.executor == nil {
		a.executor = resilience.NewDefaultExecutor()
	}
	if a.planner == nil {
		a.planner = planner.New(
			planner.WithTracer(a.tracer),
			planner.WithMetrics(a.metrics),
			planner.WithOptions(a.opts.Planner),
		)
	}
	return a
}

// Result carries the outcome of a run_lazy_lookahead run: the final state
// reached and the run's ledger, useful for post-mortem inspection
// regardless of whether the run succeeded.
type Result struct {
	State  htnstate.State
	Ledger *ledger.Ledger
	RunID  string
}

// RunLazyLookahead is run_lazy_lookahead (spec.md §4.4). For up to
// Options.MaxTries outer iterations it calls find_plan, then either
// returns immediately (empty plan, i.e. the goal already holds) or
// executes the plan's commands one at a time — breaking out to re-plan on
// the first command failure, or looping outward to re-plan anyway once the
// whole plan has executed, since the world may have drifted.
func (a *Actor) RunLazyLookahead(ctx context.Context, dom *catalog.Domain, state htnstate.State, items todo.List) (Result, error) {
	if dom == nil {
		return Result{}, ErrNilDomain
	}

	runID := uuid.New().String()
	l := ledger.New(runID)
	b := budget.Unlimited()
	if a.opts.BudgetLimits != nil {
		b = budget.New(a.opts.BudgetLimits)
	}

	maxTries := a.opts.MaxTries
	if maxTries <= 0 {
		maxTries = 1
	}

	machine, err := statemachine.NewActorMachine()
	if err != nil {
		return Result{}, fmt.Errorf("actor: building lifecycle machine: %w", err)
	}
	// The first iteration is not a retry, so the lifecycle context starts
	// with the MaxTries-1 retries its RETRY guard may still allow.
	machineCtx := statemachine.NewContext(runID, maxTries-1, b, l)
	interp := statemachine.NewInterpreter(machine, machineCtx)
	interp.Start()

	start := time.Now()
	ctx, span := a.tracer.StartSpan(ctx, "actor.run_lazy_lookahead",
		telemetry.WithAttributes(
			telemetry.String("domain", dom.Name()),
			telemetry.String("run_id", runID),
			telemetry.Int("max_tries", maxTries),
		),
	)
	defer span.End()

	l.RecordRunStarted(headName(items))

	current := state.Clone()

	for {
		if a.opts.Planner.Verbose >= 1 {
			logging.Info().
				Add(logging.RunID(runID)).
				Add(logging.ActorState(string(interp.State()))).
				Add(logging.Tries(machineCtx.TriesRemaining)).
				Msg("run_lazy_lookahead: planning")
		}

		plan, findErr := a.planner.Find(ctx, dom, current, items)
		switch {
		case errors.Is(findErr, planner.ErrNoPlan):
			l.RecordPlanNotFound(ledger.StatePlanning, findErr.Error())
			_ = interp.Transition(ledger.StateGaveUp, "find_plan returned Failure")
			l.RecordRunGaveUp(maxTries - machineCtx.TriesRemaining)
			a.metrics.RecordActorRun(ctx, "planning_failed", time.Since(start))
			span.SetStatus(telemetry.StatusCodeError, "planning failed")
			return Result{State: current, Ledger: l, RunID: runID}, ErrPlanningFailed

		case findErr != nil:
			l.RecordRunFailed(findErr.Error())
			_ = interp.Transition(ledger.StateFailed, findErr.Error())
			a.metrics.RecordActorRun(ctx, "failed", time.Since(start))
			span.RecordError(findErr)
			span.SetStatus(telemetry.StatusCodeError, findErr.Error())
			return Result{State: current, Ledger: l, RunID: runID}, findErr
		}

		_ = interp.Transition(ledger.StateExecuting, "plan found")

		if len(plan) == 0 {
			_ = interp.Transition(ledger.StateSucceeded, "empty plan: goal already achieved")
			l.RecordRunSucceeded()
			a.metrics.RecordActorRun(ctx, "succeeded", time.Since(start))
			span.SetStatus(telemetry.StatusCodeOK, "goal already achieved")
			return Result{State: current, Ledger: l, RunID: runID}, nil
		}

		// An empty plan ends the run above, so plan_found counts only the
		// plans that are executed.
		l.RecordPlanFound(ledger.StatePlanning, len(plan))

		var stepFailed bool
		for _, step := range plan {
			if budgetErr := b.Record(budget.ResourceCommands); budgetErr != nil {
				l.RecordRunFailed(budgetErr.Error())
				_ = interp.Transition(ledger.StateFailed, budgetErr.Error())
				a.metrics.RecordActorRun(ctx, "budget_exceeded", time.Since(start))
				span.RecordError(budgetErr)
				span.SetStatus(telemetry.StatusCodeError, budgetErr.Error())
				return Result{State: current, Ledger: l, RunID: runID}, fmt.Errorf("%w: %s", ErrBudgetExceeded, budget.ResourceCommands)
			}

			next, execErr := a.executeStep(ctx, dom, current, step, runID)
			if execErr != nil {
				l.RecordCommandFailed(ledger.StateExecuting, step.Name, fmt.Sprint(step.Args), execErr.Error())
				a.metrics.RecordCommandFailure(ctx, step.Name)

				if errors.Is(execErr, ErrCircuitOpen) {
					l.RecordRunFailed(execErr.Error())
					_ = interp.Transition(ledger.StateFailed, execErr.Error())
					a.metrics.RecordActorRun(ctx, "circuit_open", time.Since(start))
					span.RecordError(execErr)
					span.SetStatus(telemetry.StatusCodeError, execErr.Error())
					return Result{State: current, Ledger: l, RunID: runID}, execErr
				}

				stepFailed = true
				break
			}

			l.RecordCommandExecuted(ledger.StateExecuting, step.Name, fmt.Sprint(step.Args))
			current = next
		}

		reason := "plan executed in full; re-planning in case the world drifted"
		if stepFailed {
			reason = "command failed mid-plan"
		}
		_ = interp.Transition(ledger.StateReplanning, reason)
		a.metrics.RecordReplan(ctx, runID)
		_ = b.Record(budget.ResourceReplans) // exhaustion surfaces via guardBudgetAvailable below

		// Asking for Planning here only succeeds if the machine's
		// triesRemaining/budgetAvailable guards both hold; otherwise the
		// interpreter stays in Replanning and the explicit GIVE_UP below
		// is what actually ends the run.
		_ = interp.Transition(ledger.StatePlanning, "retry")
		if interp.State() != ledger.StatePlanning {
			_ = interp.Transition(ledger.StateGaveUp, "max tries or budget exhausted")
			l.RecordRunGaveUp(maxTries - machineCtx.TriesRemaining)
			a.metrics.RecordActorRun(ctx, "gave_up", time.Since(start))
			span.SetStatus(telemetry.StatusCodeError, "gave up")
			return Result{State: current, Ledger: l, RunID: runID}, ErrGaveUp
		}
	}
}

// executeStep runs one plan step's command under the resilient executor,
// falling back to the action of the same bare name when no "c_"-prefixed
// command is registered (spec.md §4.4 step 4).
func (a *Actor) executeStep(ctx context.Context, dom *catalog.Domain, state htnstate.State, step todo.Item, runID string) (htnstate.State, error) {
	commandName := "c_" + step.Name

	var fn resilience.CommandFn
	if cmd, ok := dom.Command(commandName); ok {
		fn = resilience.CommandFn(cmd.Fn())
	} else if action, ok := dom.Action(step.Name); ok {
		fn = resilience.CommandFn(action.Fn())
		commandName = step.Name
	} else {
		return htnstate.State{}, fmt.Errorf("%w: %s", catalog.ErrUnknownAction, step.Name)
	}

	if a.opts.Planner.Verbose >= 2 {
		logging.Debug().
			Add(logging.RunID(runID)).
			Add(logging.MethodName(commandName)).
			Msg("run_lazy_lookahead: executing command")
	}

	outcome := a.executor.Execute(ctx, commandName, fn, state, step.Args)
	if !outcome.IsOK() {
		if a.executor.CircuitBreakerState(commandName).String() == "open" {
			return htnstate.State{}, fmt.Errorf("%w: %s", ErrCircuitOpen, commandName)
		}
		return htnstate.State{}, fmt.Errorf("command %s failed", commandName)
	}
	return outcome.Value(), nil
}

func headName(items todo.List) string {
	if len(items) == 0 {
		return ""
	}
	switch items[0].Kind {
	case todo.KindAction, todo.KindTask:
		return items[0].Name
	case todo.KindUnigoal:
		return items[0].VarName
	case todo.KindMultigoal:
		return items[0].Multigoal.Name()
	default:
		return ""
	}
}
