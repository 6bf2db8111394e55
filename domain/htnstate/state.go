// Package htnstate provides the State and Multigoal value types shared by
// the planner and its callers: a named collection of state variables, each
// mapping an argument tuple to an opaque symbolic value.
package htnstate

import (
	"fmt"
	"strings"
)

// nameOrder records the order names were first seen, deduping repeats. It
// is always referenced through a pointer so that copies of the State/
// Multigoal value sharing it observe the same order, matching the
// in-place-mutation semantics of the vars map itself (Set mutates the
// shared map without requiring the caller to reassign its return value).
type nameOrder struct {
	names []string
	seen  map[string]struct{}
}

func newNameOrder() *nameOrder {
	return &nameOrder{seen: make(map[string]struct{})}
}

func (o *nameOrder) add(name string) {
	if _, ok := o.seen[name]; ok {
		return
	}
	o.seen[name] = struct{}{}
	o.names = append(o.names, name)
}

// list returns a copy of the recorded order, or nil for a nil receiver —
// a zero-value State/Multigoal (returned alongside an error, never
// Set on) reads as empty rather than panicking.
func (o *nameOrder) list() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.names...)
}

func (o *nameOrder) clone() *nameOrder {
	if o == nil {
		return newNameOrder()
	}
	c := &nameOrder{
		names: append([]string(nil), o.names...),
		seen:  make(map[string]struct{}, len(o.seen)),
	}
	for k := range o.seen {
		c.seen[k] = struct{}{}
	}
	return c
}

// orderedArgs is an argument->value map that also remembers the order
// arguments were first set, since spec.md §4.3.7 requires iteration order
// over variables/arguments to be insertion order — the same "slice of
// names + map" double structure domain/catalog.Domain uses for its method
// registries, applied here to state/multigoal argument tables.
type orderedArgs struct {
	values map[string]any
	order  *nameOrder
}

func newOrderedArgs() *orderedArgs {
	return &orderedArgs{values: make(map[string]any), order: newNameOrder()}
}

func (a *orderedArgs) set(key string, value any) {
	a.order.add(key)
	a.values[key] = value
}

func (a *orderedArgs) get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

func (a *orderedArgs) keys() []string {
	return a.order.list()
}

func (a *orderedArgs) clone() *orderedArgs {
	c := &orderedArgs{
		values: make(map[string]any, len(a.values)),
		order:  a.order.clone(),
	}
	for k, v := range a.values {
		c.values[k] = cloneTerm(v)
	}
	return c
}

// State is a snapshot of world variable bindings. States are value-typed:
// Clone produces an independent copy, and the planner never mutates a
// State shared with an ancestor search frame.
type State struct {
	name     string
	vars     map[string]*orderedArgs
	varOrder *nameOrder
}

// New creates an empty, named state.
func New(name string) State {
	return State{name: name, vars: make(map[string]*orderedArgs), varOrder: newNameOrder()}
}

// Name returns the state's name.
func (s State) Name() string {
	return s.name
}

// Get returns the value bound to vars[varName][arg], and whether it exists.
func (s State) Get(varName string, arg any) (any, bool) {
	args, ok := s.vars[varName]
	if !ok {
		return nil, false
	}
	return args.get(argKey(arg))
}

// Set binds vars[varName][arg] = value, creating the variable map if needed.
// Set mutates the receiver's underlying storage in place; callers that must
// not disturb an ancestor's State should Clone first.
func (s State) Set(varName string, arg, value any) State {
	if s.vars[varName] == nil {
		s.vars[varName] = newOrderedArgs()
	}
	s.varOrder.add(varName)
	s.vars[varName].set(argKey(arg), value)
	return s
}

// StateVars returns the variable names present in this state, in the order
// they were first set.
func (s State) StateVars() []string {
	return s.varOrder.list()
}

// Args returns the argument keys constrained under varName, in the order
// they were first set.
func (s State) Args(varName string) []string {
	args, ok := s.vars[varName]
	if !ok {
		return nil
	}
	return args.keys()
}

// Clone produces an independent deep copy. The planner calls this before
// handing a state to any action or method function, and whatever the
// function returns becomes the successor state for the next search frame —
// the caller's own State value is never mutated by the call.
func (s State) Clone() State {
	clone := State{
		name:     s.name,
		vars:     make(map[string]*orderedArgs, len(s.vars)),
		varOrder: s.varOrder.clone(),
	}
	for varName, args := range s.vars {
		clone.vars[varName] = args.clone()
	}
	return clone
}

// Equal reports structural equality over the variable map.
func (s State) Equal(other State) bool {
	if len(s.vars) != len(other.vars) {
		return false
	}
	for varName, args := range s.vars {
		otherArgs, ok := other.vars[varName]
		if !ok || len(args.values) != len(otherArgs.values) {
			return false
		}
		for arg, val := range args.values {
			otherVal, ok := otherArgs.values[arg]
			if !ok || !TermEqual(val, otherVal) {
				return false
			}
		}
	}
	return true
}

// String renders the state for trace output, gated by the caller on
// whatever verbosity level is configured.
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "State(%s){", s.name)
	first := true
	for _, varName := range s.StateVars() {
		for _, arg := range s.Args(varName) {
			val, _ := s.vars[varName].get(arg)
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&b, "%s[%s]=%v", varName, arg, val)
		}
	}
	b.WriteString("}")
	return b.String()
}

// argKey normalizes an argument term into a map key. Arguments are most
// commonly strings; non-string terms are rendered through TermString so
// tuple-shaped arguments still hash consistently.
func argKey(arg any) string {
	if s, ok := arg.(string); ok {
		return s
	}
	return TermString(arg)
}

func cloneTerm(v any) any {
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = cloneTerm(e)
		}
		return out
	}
	return v
}
