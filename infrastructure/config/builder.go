package config

import (
	"fmt"

	"github.com/go-htn/htngo/application/actor"
	"github.com/go-htn/htngo/application/planner"
	"github.com/go-htn/htngo/domain/htnstate"
	"github.com/go-htn/htngo/domain/todo"
)

// Builder turns a loaded ScenarioConfig into the typed values
// application/planner and application/actor consume: an initial State, a
// todo-list, and option sets. It builds only the data half of a run — the
// behavior half (a *catalog.Domain) is supplied separately by the caller,
// which looks Domain up in its own registry of compiled-in example domains.
type Builder struct {
	cfg *ScenarioConfig
}

// NewBuilder creates a Builder over a loaded scenario.
func NewBuilder(cfg *ScenarioConfig) *Builder {
	return &Builder{cfg: cfg}
}

// BuildState constructs the scenario's initial htnstate.State.
func (b *Builder) BuildState() htnstate.State {
	s := htnstate.New(b.cfg.Name)
	for varName, args := range b.cfg.State {
		for arg, value := range args {
			s = s.Set(varName, arg, value)
		}
	}
	return s
}

// BuildTodoList constructs the scenario's goal as a todo.List.
func (b *Builder) BuildTodoList() (todo.List, error) {
	items := make(todo.List, 0, len(b.cfg.Goal))
	for i, ic := range b.cfg.Goal {
		item, err := buildItem(ic)
		if err != nil {
			return nil, fmt.Errorf("goal[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItem(ic ItemConfig) (todo.Item, error) {
	switch ic.Kind {
	case "action":
		return todo.Action(ic.Name, ic.Args...), nil
	case "task":
		return todo.Task(ic.Name, ic.Args...), nil
	case "unigoal":
		return todo.Unigoal(ic.Var, ic.Arg, ic.Value), nil
	case "multigoal":
		name := ic.Name
		if name == "" {
			name = "goal"
		}
		mg := htnstate.NewMultigoal(name)
		for varName, args := range ic.Multigoal {
			for arg, value := range args {
				mg = mg.Set(varName, arg, value)
			}
		}
		return todo.MultigoalItem(mg), nil
	default:
		return todo.Item{}, fmt.Errorf("unrecognized item kind %q", ic.Kind)
	}
}

// BuildPlannerOptions constructs planner.Options from the scenario's run:
// block.
func (b *Builder) BuildPlannerOptions() planner.Options {
	return planner.Options{
		Verbose:     b.cfg.Run.Verbose,
		VerifyGoals: b.cfg.Run.VerifyGoals,
		MaxDepth:    b.cfg.Run.MaxDepth,
	}
}

// BuildActorOptions constructs actor.Options from the scenario's run:
// block, for use with --act.
func (b *Builder) BuildActorOptions() actor.Options {
	return actor.Options{
		MaxTries: b.cfg.Run.MaxTries,
		Planner:  b.BuildPlannerOptions(),
	}
}

// Domain returns the scenario's named built-in domain, for the caller's own
// domain registry lookup.
func (b *Builder) Domain() string {
	return b.cfg.Domain
}

// Name returns the scenario's display name.
func (b *Builder) Name() string {
	return b.cfg.Name
}
