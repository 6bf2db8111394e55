// Package todo defines the uniform todo-list item type the planner
// consumes: a tagged sum over Action, Task, Unigoal, Multigoal, and the
// internal Verify item the planner injects for goal verification.
package todo

import "github.com/go-htn/htngo/domain/htnstate"

// Kind identifies which variant of Item is populated.
type Kind string

const (
	KindAction    Kind = "action"
	KindTask      Kind = "task"
	KindUnigoal   Kind = "unigoal"
	KindMultigoal Kind = "multigoal"
	KindVerify    Kind = "verify"
)

// VerifyTarget identifies whether an injected Verify item checks a unigoal
// or a multigoal's post-condition.
type VerifyTarget string

const (
	VerifyUnigoal   VerifyTarget = "_verify_g"
	VerifyMultigoal VerifyTarget = "_verify_mg"
)

// Item is a single todo-list entry. Exactly one of the payload fields is
// meaningful, selected by Kind — the same "tagged struct, one active field"
// shape used for planner decisions throughout this codebase's lineage.
type Item struct {
	Kind Kind

	// Populated when Kind == KindAction or KindTask.
	Name string
	Args []any

	// Populated when Kind == KindUnigoal.
	VarName string
	Arg     any
	Value   any

	// Populated when Kind == KindMultigoal.
	Multigoal htnstate.Multigoal

	// Populated when Kind == KindVerify.
	VerifyTarget VerifyTarget
	MethodName   string
	Depth        int
}

// Action constructs a primitive-action todo item.
func Action(name string, args ...any) Item {
	return Item{Kind: KindAction, Name: name, Args: args}
}

// Task constructs a compound-task todo item.
func Task(name string, args ...any) Item {
	return Item{Kind: KindTask, Name: name, Args: args}
}

// Unigoal constructs a single-variable goal todo item.
func Unigoal(varName string, arg, value any) Item {
	return Item{Kind: KindUnigoal, VarName: varName, Arg: arg, Value: value}
}

// MultigoalItem wraps a whole Multigoal entity as a todo item.
func MultigoalItem(mg htnstate.Multigoal) Item {
	return Item{Kind: KindMultigoal, Multigoal: mg}
}

// VerifyUnigoalItem constructs the internal item the planner injects after a
// unigoal method's subgoals, when VerifyGoals is enabled.
func VerifyUnigoalItem(methodName, varName string, arg, value any, depth int) Item {
	return Item{
		Kind:         KindVerify,
		VerifyTarget: VerifyUnigoal,
		MethodName:   methodName,
		VarName:      varName,
		Arg:          arg,
		Value:        value,
		Depth:        depth,
	}
}

// VerifyMultigoalItem constructs the internal item the planner injects after
// a multigoal method's subitems, when VerifyGoals is enabled.
func VerifyMultigoalItem(methodName string, mg htnstate.Multigoal, depth int) Item {
	return Item{
		Kind:         KindVerify,
		VerifyTarget: VerifyMultigoal,
		MethodName:   methodName,
		Multigoal:    mg,
		Depth:        depth,
	}
}

// List is a todo-list: an ordered sequence of Item.
type List []Item

// Prepend returns a new list with items inserted at the front, followed by
// the receiver's contents — the continuation list built by every refiner:
// subitems ++ verification ++ rest.
func (l List) Prepend(items ...Item) List {
	out := make(List, 0, len(items)+len(l))
	out = append(out, items...)
	out = append(out, l...)
	return out
}
