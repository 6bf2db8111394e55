// Package blocksworld is the built-in reference domain used by the CLI's
// demo mode and as the grounding fixture for application/planner and
// application/actor tests: a single state variable, "loc", mapping an
// object name to the room (or object) it sits on/in.
package blocksworld

import (
	"github.com/go-htn/htngo/domain/catalog"
	"github.com/go-htn/htngo/domain/htnstate"
	"github.com/go-htn/htngo/domain/result"
	"github.com/go-htn/htngo/domain/todo"
)

// Nowhere is a destination no action ever reaches, used by the
// intentionally-broken m_bad method in backtracking tests (spec.md §8,
// scenario 4).
const Nowhere = "nowhere"

// New builds a fresh blocksworld *catalog.Domain with only the move action
// and its command counterpart registered. Callers opt into the unigoal and
// multigoal methods they want exercised via the With* functions below, in
// whatever order their scenario needs — declaration order is try order, so
// a backtracking fixture needs its failing method declared first.
func New() *catalog.Domain {
	dom := catalog.New("blocksworld")

	_ = dom.DeclareActions(map[string]catalog.ActionFn{
		"move": moveAction,
	})
	_ = dom.DeclareCommands(map[string]catalog.CommandFn{
		"c_move": moveCommand,
	})

	return dom
}

// WithMoveMethod registers m_move, which always proposes the requested
// move verbatim.
func WithMoveMethod(dom *catalog.Domain) *catalog.Domain {
	_ = dom.DeclareUnigoalMethods("loc", catalog.NewUnigoalMethod("m_move", moveUnigoalMethod))
	return dom
}

// WithBadMoveMethod registers m_bad, which always proposes a move to
// Nowhere, whose action precondition always fails. Declare it ahead of
// WithMoveMethod to exercise backtracking: the planner tries m_bad, its
// action application fails, and it falls through to m_move.
func WithBadMoveMethod(dom *catalog.Domain) *catalog.Domain {
	_ = dom.DeclareUnigoalMethods("loc", catalog.NewUnigoalMethod("m_bad", badMoveUnigoalMethod))
	return dom
}

// WithBuggyMoveMethod registers a method that claims to move obj to dst but
// never issues the move action — the verify-soundness fixture of spec.md §8
// scenario 6. It returns Ok([]) (claims success, no further subtasks)
// leaving the state unchanged.
func WithBuggyMoveMethod(dom *catalog.Domain) *catalog.Domain {
	_ = dom.DeclareUnigoalMethods("loc", catalog.NewUnigoalMethod("m_buggy", buggyMoveUnigoalMethod))
	return dom
}

// WithSplitMultigoal registers the built-in m_split_multigoal method
// (spec.md §4.3.7) for multigoal refinement.
func WithSplitMultigoal(dom *catalog.Domain) *catalog.Domain {
	_ = dom.DeclareMultigoalMethods(catalog.NewMultigoalMethod("m_split_multigoal", SplitMultigoal))
	return dom
}

func moveAction(s htnstate.State, args []any) result.Outcome[htnstate.State] {
	if len(args) != 2 {
		return result.Fail[htnstate.State]()
	}
	obj, dst := args[0], args[1]

	if _, ok := s.Get("loc", obj); !ok {
		return result.Fail[htnstate.State]()
	}
	if dst == Nowhere {
		return result.Fail[htnstate.State]()
	}

	return result.Ok(s.Clone().Set("loc", obj, dst))
}

// moveCommand models acting-time execution of move: identical to the
// action here, since this fixture domain has no simulated real-world
// failure modes beyond what the action already checks. Caller-supplied
// commands in a real domain diverge from their action's preconditions;
// this one intentionally does not, to keep actor tests focused on the
// plan/execute/replan loop rather than on command-vs-action drift.
func moveCommand(s htnstate.State, args []any) result.Outcome[htnstate.State] {
	return moveAction(s, args)
}

func moveUnigoalMethod(_ htnstate.State, arg, value any) result.Outcome[[]todo.Item] {
	return result.Ok([]todo.Item{todo.Action("move", arg, value)})
}

func badMoveUnigoalMethod(_ htnstate.State, arg, _ any) result.Outcome[[]todo.Item] {
	return result.Ok([]todo.Item{todo.Action("move", arg, Nowhere)})
}

func buggyMoveUnigoalMethod(_ htnstate.State, _, _ any) result.Outcome[[]todo.Item] {
	return result.Ok([]todo.Item{})
}

// SplitMultigoal is the built-in m_split_multigoal method (spec.md §4.3.7):
// not auto-registered by New, since callers opt in. It expands every
// unachieved (var, arg, val) into a Unigoal item, in multigoal iteration
// order, re-appending the multigoal itself so the planner loops on it
// until all conjuncts hold simultaneously.
func SplitMultigoal(s htnstate.State, mg htnstate.Multigoal) result.Outcome[[]todo.Item] {
	unmet := mg.NotAchieved(s)
	if len(unmet) == 0 {
		return result.Ok([]todo.Item{})
	}

	var items []todo.Item
	for _, varName := range mg.StateVars() {
		args, ok := unmet[varName]
		if !ok {
			continue
		}
		for _, arg := range mg.Args(varName) {
			val, ok := args[arg]
			if !ok {
				continue
			}
			items = append(items, todo.Unigoal(varName, arg, val))
		}
	}
	items = append(items, todo.MultigoalItem(mg))
	return result.Ok(items)
}
