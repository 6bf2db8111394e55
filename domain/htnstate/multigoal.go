package htnstate

import (
	"fmt"
	"strings"
)

// Multigoal is a named conjunctive goal: the same shape as a State, read as
// "every listed vars[n][a] = v must hold in the target state". Unlisted
// variables and arguments are unconstrained.
type Multigoal struct {
	name     string
	vars     map[string]*orderedArgs
	varOrder *nameOrder
}

// NewMultigoal creates an empty, named multigoal.
func NewMultigoal(name string) Multigoal {
	return Multigoal{name: name, vars: make(map[string]*orderedArgs), varOrder: newNameOrder()}
}

// Name returns the multigoal's name.
func (m Multigoal) Name() string {
	return m.name
}

// Get returns the desired value for vars[varName][arg], and whether it is
// constrained at all.
func (m Multigoal) Get(varName string, arg any) (any, bool) {
	args, ok := m.vars[varName]
	if !ok {
		return nil, false
	}
	return args.get(argKey(arg))
}

// Set records that vars[varName][arg] must equal value in the target state.
func (m Multigoal) Set(varName string, arg, value any) Multigoal {
	if m.vars[varName] == nil {
		m.vars[varName] = newOrderedArgs()
	}
	m.varOrder.add(varName)
	m.vars[varName].set(argKey(arg), value)
	return m
}

// StateVars returns the variable names constrained by this multigoal, in
// the order they were first set.
func (m Multigoal) StateVars() []string {
	return m.varOrder.list()
}

// Args returns the argument keys constrained under varName, in the order
// they were first set.
func (m Multigoal) Args(varName string) []string {
	args, ok := m.vars[varName]
	if !ok {
		return nil
	}
	return args.keys()
}

// Clone produces an independent deep copy.
func (m Multigoal) Clone() Multigoal {
	clone := Multigoal{
		name:     m.name,
		vars:     make(map[string]*orderedArgs, len(m.vars)),
		varOrder: m.varOrder.clone(),
	}
	for varName, args := range m.vars {
		clone.vars[varName] = args.clone()
	}
	return clone
}

// Equal reports structural equality over the variable map.
func (m Multigoal) Equal(other Multigoal) bool {
	if len(m.vars) != len(other.vars) {
		return false
	}
	for varName, args := range m.vars {
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

// String renders the multigoal for trace output.
func (m Multigoal) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Multigoal(%s){", m.name)
	first := true
	for _, varName := range m.StateVars() {
		for _, arg := range m.Args(varName) {
			val, _ := m.vars[varName].get(arg)
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

// NotAchieved computes the bindings in this multigoal that do not currently
// hold in s: a fresh nested map of variable -> argument -> desired value,
// for every (var, arg) constrained here whose value in s differs (or is
// absent). It never mutates s or m. The returned maps are keyed for lookup
// only — callers that need deterministic iteration order walk m.StateVars()
// and m.Args(varName) and probe the result, rather than ranging over it
// directly (see example/blocksworld.SplitMultigoal).
func (m Multigoal) NotAchieved(s State) map[string]map[string]any {
	unmet := make(map[string]map[string]any)
	for _, varName := range m.StateVars() {
		args := m.vars[varName]
		for _, arg := range args.keys() {
			desired := args.values[arg]
			current, ok := s.vars[varName]
			var actual any
			var has bool
			if ok {
				actual, has = current.get(arg)
			}
			if !has || !TermEqual(actual, desired) {
				if unmet[varName] == nil {
					unmet[varName] = make(map[string]any)
				}
				unmet[varName][arg] = desired
			}
		}
	}
	return unmet
}
