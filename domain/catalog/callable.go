package catalog

import (
	"github.com/go-htn/htngo/domain/htnstate"
	"github.com/go-htn/htngo/domain/result"
	"github.com/go-htn/htngo/domain/todo"
)

// ActionFn applies a primitive action to a state. It receives a fresh
// clone and is responsible for checking its own preconditions, returning
// Fail when they are not met.
type ActionFn func(s htnstate.State, args []any) result.Outcome[htnstate.State]

// CommandFn is the acting-time counterpart of ActionFn, used by the actor.
// It may fail where the action would succeed, modeling real execution.
type CommandFn func(s htnstate.State, args []any) result.Outcome[htnstate.State]

// TaskMethodFn refines a compound task into sub-items. Ok(nil) or
// Ok([]todo.Item{}) means success with no further work — not failure.
type TaskMethodFn func(s htnstate.State, args []any) result.Outcome[[]todo.Item]

// UnigoalMethodFn refines a single-variable goal into sub-items.
type UnigoalMethodFn func(s htnstate.State, arg, value any) result.Outcome[[]todo.Item]

// MultigoalMethodFn refines a multigoal into sub-items.
type MultigoalMethodFn func(s htnstate.State, mg htnstate.Multigoal) result.Outcome[[]todo.Item]

// named pairs a callable with the stable name it is registered and looked
// up under, so a method's name is always read from this accessor rather
// than re-derived from the function value (reflection on a function's
// name is unreliable and the spec explicitly flags this class of bug in
// the source it re-implements).
type named[F any] struct {
	name string
	fn   F
}

func (n named[F]) Name() string { return n.name }

// Fn returns the wrapped callable. Go has no per-instantiation generic
// methods, so the single invoke point a named callable needs is this
// accessor plus an ordinary function call at the use site, rather than a
// same-named Invoke method on every alias.
func (n named[F]) Fn() F { return n.fn }

// Action is a named action callable.
type Action = named[ActionFn]

// Command is a named command callable.
type Command = named[CommandFn]

// TaskMethod is a named task-refinement method.
type TaskMethod = named[TaskMethodFn]

// UnigoalMethod is a named unigoal-refinement method.
type UnigoalMethod = named[UnigoalMethodFn]

// MultigoalMethod is a named multigoal-refinement method.
type MultigoalMethod = named[MultigoalMethodFn]

// NewTaskMethod names a task-refinement method for DeclareTaskMethods.
// Domain authors outside this package have no other way to build a
// TaskMethod: named's fields are private so its name is always read back
// through Name(), never re-derived from the function value.
func NewTaskMethod(name string, fn TaskMethodFn) TaskMethod {
	return TaskMethod{name: name, fn: fn}
}

// NewUnigoalMethod names a unigoal-refinement method for DeclareUnigoalMethods.
func NewUnigoalMethod(name string, fn UnigoalMethodFn) UnigoalMethod {
	return UnigoalMethod{name: name, fn: fn}
}

// NewMultigoalMethod names a multigoal-refinement method for DeclareMultigoalMethods.
func NewMultigoalMethod(name string, fn MultigoalMethodFn) MultigoalMethod {
	return MultigoalMethod{name: name, fn: fn}
}
