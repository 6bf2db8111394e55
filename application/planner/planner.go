// Package planner implements the recursive HTN/HGN search engine
// (find_plan/seek_plan) and its four refinement routines: action
// application, task refinement, unigoal refinement, and multigoal
// refinement. It also hosts the package-level logic that schedules the
// built-in _verify_g/_verify_mg task methods registered by domain/catalog.
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/go-htn/htngo/domain/catalog"
	"github.com/go-htn/htngo/domain/htnstate"
	"github.com/go-htn/htngo/domain/telemetry"
	"github.com/go-htn/htngo/domain/todo"
	"github.com/go-htn/htngo/infrastructure/logging"
	"github.com/go-htn/htngo/infrastructure/observability"
)

// Planner runs find_plan/seek_plan against an explicit *catalog.Domain.
// Planners are cheap to construct and hold no per-search state; the same
// Planner may run concurrent searches against different domains/states
// (each Find call starts its own recursion with its own local plan/depth).
type Planner struct {
	tracer  telemetry.Tracer
	metrics *observability.PlannerMetrics
	opts    Options
}

// New creates a Planner. With no options, it uses no-op telemetry and
// DefaultOptions (VerifyGoals enabled, unbounded depth).
func New(opts ...Option) *Planner {
	p := &Planner{
		tracer:  observability.NewNoopTracer(),
		metrics: observability.NewPlannerMetrics(observability.NewNoopMeter()),
		opts:    DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Find is find_plan: the public entry point. It emits a trace line at
// Verbose >= 1, opens the top-level span, and delegates to seek_plan with
// an empty accumulated plan at depth 0.
func (p *Planner) Find(ctx context.Context, dom *catalog.Domain, state htnstate.State, items todo.List) (todo.List, error) {
	if dom == nil {
		return nil, ErrNilDomain
	}

	start := time.Now()
	ctx, span := p.tracer.StartSpan(ctx, "planner.find_plan",
		telemetry.WithAttributes(
			telemetry.String("domain", dom.Name()),
			telemetry.Int("todo_len", len(items)),
		),
	)
	defer span.End()

	if p.opts.Verbose >= 1 {
		logging.Debug().
			Add(logging.Component("planner")).
			Add(logging.Operation("find_plan")).
			Add(logging.TodoHead(headName(items))).
			Msg("find_plan called")
	}

	plan, ok, err := p.seekPlan(ctx, dom, state, items, todo.List{}, 0)
	latency := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(telemetry.StatusCodeError, err.Error())
		p.metrics.RecordPlanNotFound(ctx, dom.Name(), latency)
		return nil, err
	}
	if !ok {
		span.SetStatus(telemetry.StatusCodeOK, "no plan")
		p.metrics.RecordPlanNotFound(ctx, dom.Name(), latency)
		return nil, ErrNoPlan
	}

	span.SetStatus(telemetry.StatusCodeOK, "plan found")
	span.SetAttributes(telemetry.Int("plan_len", len(plan)))
	p.metrics.RecordPlanFound(ctx, dom.Name(), latency)
	return plan, nil
}

// seekPlan is the recursive workhorse (spec.md §4.3). It returns:
//   - (plan, true, nil) on success — plan is the accumulated action sequence.
//   - (nil, false, nil) on ordinary backtrack: the caller should try its
//     next alternative, or itself backtrack if it has none left.
//   - (nil, false, err) on a fatal domain error, which aborts the whole
//     search — no alternative will fix an uninterpretable todo item.
func (p *Planner) seekPlan(ctx context.Context, dom *catalog.Domain, state htnstate.State, remaining, plan todo.List, depth int) (todo.List, bool, error) {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return nil, false, fmt.Errorf("%w: depth %d", ErrMaxDepthExceeded, depth)
	}

	if len(remaining) == 0 {
		return plan, true, nil
	}

	head := remaining[0]
	rest := remaining[1:]

	ctx, span := p.tracer.StartSpan(ctx, "planner.seek_plan",
		telemetry.WithAttributes(
			telemetry.Int("depth", depth),
			telemetry.String("head_kind", string(head.Kind)),
			telemetry.String("head_name", itemName(head)),
		),
	)
	defer span.End()

	if p.opts.Verbose >= 2 {
		logging.Debug().
			Add(logging.Depth(depth)).
			Add(logging.TodoHead(itemName(head))).
			Msg("seek_plan: examining head")
	}

	var (
		out todo.List
		ok  bool
		err error
	)

	switch head.Kind {
	case todo.KindMultigoal:
		out, ok, err = p.refineMultigoal(ctx, dom, state, head, rest, plan, depth)
	case todo.KindVerify:
		out, ok, err = p.refineVerify(ctx, dom, state, head, rest, plan, depth)
	case todo.KindAction:
		out, ok, err = p.applyAction(ctx, dom, state, head, rest, plan, depth)
	case todo.KindTask:
		out, ok, err = p.refineTask(ctx, dom, state, head, rest, plan, depth)
	case todo.KindUnigoal:
		out, ok, err = p.refineUnigoal(ctx, dom, state, head, rest, plan, depth)
	default:
		err = fmt.Errorf("%w: kind %q", catalog.ErrUninterpretable, head.Kind)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(telemetry.StatusCodeError, err.Error())
		return nil, false, err
	}
	if !ok {
		span.SetStatus(telemetry.StatusCodeOK, "backtrack")
		return nil, false, nil
	}
	span.SetStatus(telemetry.StatusCodeOK, "advance")
	return out, true, nil
}

// applyAction is action application (spec.md §4.3.1).
func (p *Planner) applyAction(ctx context.Context, dom *catalog.Domain, state htnstate.State, item todo.Item, rest, plan todo.List, depth int) (todo.List, bool, error) {
	action, ok := dom.Action(item.Name)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", catalog.ErrUnknownAction, item.Name)
	}

	outcome := action.Fn()(state.Clone(), item.Args)
	if !outcome.IsOK() {
		if p.opts.Verbose >= 1 {
			logging.Debug().
				Add(logging.Depth(depth)).
				Add(logging.MethodName(item.Name)).
				Add(logging.Verdict(false)).
				Msg("action failed its preconditions")
		}
		p.metrics.RecordBacktrack(ctx, "action")
		return nil, false, nil
	}

	newPlan := append(append(todo.List{}, plan...), item)
	return p.seekPlan(ctx, dom, outcome.Value(), rest, newPlan, depth+1)
}

// refineTask is task refinement (spec.md §4.3.2). An empty subtask list is
// success with no further work, never failure — the distinction the whole
// result.Outcome[T] type exists to preserve.
func (p *Planner) refineTask(ctx context.Context, dom *catalog.Domain, state htnstate.State, item todo.Item, rest, plan todo.List, depth int) (todo.List, bool, error) {
	methods := dom.TaskMethods(item.Name)
	if methods == nil {
		return nil, false, fmt.Errorf("%w: %s", catalog.ErrUnknownTask, item.Name)
	}

	for _, method := range methods {
		outcome := method.Fn()(state.Clone(), item.Args)
		if !outcome.IsOK() {
			p.metrics.RecordBacktrack(ctx, "task")
			continue
		}

		if p.opts.Verbose >= 2 {
			logging.Debug().
				Add(logging.Depth(depth)).
				Add(logging.MethodName(method.Name())).
				Add(logging.Verdict(true)).
				Msg("task method applicable")
		}

		continuation := rest.Prepend(outcome.Value()...)
		newPlan, ok, err := p.seekPlan(ctx, dom, state, continuation, plan, depth+1)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return newPlan, true, nil
		}
		p.metrics.RecordBacktrack(ctx, "task")
	}

	return nil, false, nil
}

// refineUnigoal is unigoal refinement (spec.md §4.3.3), including the
// already-satisfied short-circuit and verification-task injection.
func (p *Planner) refineUnigoal(ctx context.Context, dom *catalog.Domain, state htnstate.State, item todo.Item, rest, plan todo.List, depth int) (todo.List, bool, error) {
	if actual, ok := state.Get(item.VarName, item.Arg); ok && htnstate.TermEqual(actual, item.Value) {
		if p.opts.Verbose >= 2 {
			logging.Debug().
				Add(logging.Depth(depth)).
				Add(logging.TodoHead(item.VarName)).
				Msg("unigoal already satisfied")
		}
		return p.seekPlan(ctx, dom, state, rest, plan, depth+1)
	}

	methods := dom.UnigoalMethods(item.VarName)
	if methods == nil {
		return nil, false, fmt.Errorf("%w: %s", catalog.ErrUnknownUnigoalVar, item.VarName)
	}

	for _, method := range methods {
		outcome := method.Fn()(state.Clone(), item.Arg, item.Value)
		if !outcome.IsOK() {
			p.metrics.RecordBacktrack(ctx, "unigoal")
			continue
		}

		continuation := rest
		if p.opts.VerifyGoals {
			continuation = continuation.Prepend(todo.VerifyUnigoalItem(method.Name(), item.VarName, item.Arg, item.Value, depth))
		}
		continuation = continuation.Prepend(outcome.Value()...)

		newPlan, ok, err := p.seekPlan(ctx, dom, state, continuation, plan, depth+1)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return newPlan, true, nil
		}
		p.metrics.RecordBacktrack(ctx, "unigoal")
	}

	return nil, false, nil
}

// refineMultigoal is multigoal refinement (spec.md §4.3.4).
func (p *Planner) refineMultigoal(ctx context.Context, dom *catalog.Domain, state htnstate.State, item todo.Item, rest, plan todo.List, depth int) (todo.List, bool, error) {
	methods := dom.MultigoalMethods()

	for _, method := range methods {
		outcome := method.Fn()(state.Clone(), item.Multigoal)
		if !outcome.IsOK() {
			p.metrics.RecordBacktrack(ctx, "multigoal")
			continue
		}

		continuation := rest
		if p.opts.VerifyGoals {
			continuation = continuation.Prepend(todo.VerifyMultigoalItem(method.Name(), item.Multigoal, depth))
		}
		continuation = continuation.Prepend(outcome.Value()...)

		newPlan, ok, err := p.seekPlan(ctx, dom, state, continuation, plan, depth+1)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return newPlan, true, nil
		}
		p.metrics.RecordBacktrack(ctx, "multigoal")
	}

	return nil, false, nil
}

// refineVerify dispatches a planner-injected Verify item to the built-in
// _verify_g/_verify_mg task methods registered in domain/catalog (spec.md
// §4.3.5). It looks them up in the same task-method registry as any
// caller-declared task; the Verify tag selects the args convention.
func (p *Planner) refineVerify(ctx context.Context, dom *catalog.Domain, state htnstate.State, item todo.Item, rest, plan todo.List, depth int) (todo.List, bool, error) {
	var taskName string
	var args []any

	switch item.VerifyTarget {
	case todo.VerifyUnigoal:
		taskName = catalog.VerifyGoalTask
		args = []any{item.MethodName, item.VarName, item.Arg, item.Value, item.Depth}
	case todo.VerifyMultigoal:
		taskName = catalog.VerifyMultigoalTask
		args = []any{item.MethodName, item.Multigoal, item.Depth}
	default:
		return nil, false, fmt.Errorf("%w: unrecognized verify target %q", catalog.ErrUninterpretable, item.VerifyTarget)
	}

	methods := dom.TaskMethods(taskName)
	for _, method := range methods {
		outcome := method.Fn()(state.Clone(), args)
		if !outcome.IsOK() {
			if p.opts.Verbose >= 1 {
				logging.Warn().
					Add(logging.Depth(depth)).
					Add(logging.MethodName(item.MethodName)).
					Add(logging.Verdict(false)).
					Msg("goal verification failed")
			}
			p.metrics.RecordVerifyFailure(ctx, string(item.VerifyTarget))
			continue
		}
		return p.seekPlan(ctx, dom, state, rest.Prepend(outcome.Value()...), plan, depth+1)
	}

	return nil, false, nil
}

func headName(items todo.List) string {
	if len(items) == 0 {
		return ""
	}
	return itemName(items[0])
}

func itemName(item todo.Item) string {
	switch item.Kind {
	case todo.KindAction, todo.KindTask:
		return item.Name
	case todo.KindUnigoal:
		return item.VarName
	case todo.KindMultigoal:
		return item.Multigoal.Name()
	case todo.KindVerify:
		return string(item.VerifyTarget)
	default:
		return ""
	}
}
