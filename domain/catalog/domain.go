// Package catalog provides the Domain registry: the planner's only source
// of truth for which actions, commands, task-methods, unigoal-methods, and
// multigoal-methods exist, and in what order to try them.
//
// Grounded on domain/tool's Registry/Builder shape in the teacher this
// repo descends from, generalized from a single named-tool table to the
// five tables an HTN/HGN domain needs.
package catalog

// Domain is a named registry of actions, commands, and methods. Domains are
// built once (via the declare_* methods), then treated as immutable during
// planning — the planner and actor only ever read from a *Domain.
type Domain struct {
	name string

	actions  map[string]Action
	commands map[string]Command

	taskMethods          map[string][]TaskMethod
	taskMethodOrder      map[string][]string // dedup-by-name within a task
	unigoalMethods       map[string][]UnigoalMethod
	unigoalMethodOrder   map[string][]string
	multigoalMethods     []MultigoalMethod
	multigoalMethodOrder map[string]bool
}

// New creates an empty, named domain and pre-registers the built-in
// verification task-methods (_verify_g, _verify_mg) used by the planner's
// goal-verification protocol.
func New(name string) *Domain {
	d := &Domain{
		name:                 name,
		actions:              make(map[string]Action),
		commands:             make(map[string]Command),
		taskMethods:          make(map[string][]TaskMethod),
		taskMethodOrder:      make(map[string][]string),
		unigoalMethods:       make(map[string][]UnigoalMethod),
		unigoalMethodOrder:   make(map[string][]string),
		multigoalMethodOrder: make(map[string]bool),
	}
	registerVerificationMethods(d)
	return d
}

// Name returns the domain's name.
func (d *Domain) Name() string {
	return d.name
}

// DeclareActions registers each action function, keyed by name. It is a
// hard error to register the same name as both an action and a task, since
// the dispatch rule (head-symbol lookup) would then be ambiguous.
func (d *Domain) DeclareActions(fns map[string]ActionFn) error {
	for name, fn := range fns {
		if fn == nil {
			return ErrNilCallable
		}
		if _, isTask := d.taskMethods[name]; isTask {
			return ErrNameCollision
		}
		d.actions[name] = Action{name: name, fn: fn}
	}
	return nil
}

// DeclareCommands registers each command function, keyed by name. By
// convention a command for action "foo" is named "c_foo"; the actor falls
// back to the action of the same bare name if no command is registered.
func (d *Domain) DeclareCommands(fns map[string]CommandFn) error {
	for name, fn := range fns {
		if fn == nil {
			return ErrNilCallable
		}
		d.commands[name] = Command{name: name, fn: fn}
	}
	return nil
}

// DeclareTaskMethods appends methods under taskName, in the given order,
// skipping any already registered under that name (identity by name, not
// by function value — re-declaring the pack is idempotent).
func (d *Domain) DeclareTaskMethods(taskName string, methods ...TaskMethod) error {
	if _, isAction := d.actions[taskName]; isAction {
		return ErrNameCollision
	}
	for _, m := range methods {
		if m.fn == nil {
			return ErrNilCallable
		}
		if containsName(d.taskMethodOrder[taskName], m.name) {
			continue
		}
		d.taskMethods[taskName] = append(d.taskMethods[taskName], m)
		d.taskMethodOrder[taskName] = append(d.taskMethodOrder[taskName], m.name)
	}
	return nil
}

// DeclareUnigoalMethods appends methods under varName, in declaration
// order. A method name already registered as an action or task is a hard
// error (spec.md §4.5: "a name registered in more than one table is an
// error, diagnosable at declaration time").
func (d *Domain) DeclareUnigoalMethods(varName string, methods ...UnigoalMethod) error {
	for _, m := range methods {
		if m.fn == nil {
			return ErrNilCallable
		}
		if _, isAction := d.actions[m.name]; isAction {
			return ErrNameCollision
		}
		if _, isTask := d.taskMethods[m.name]; isTask {
			return ErrNameCollision
		}
		if containsName(d.unigoalMethodOrder[varName], m.name) {
			continue
		}
		d.unigoalMethods[varName] = append(d.unigoalMethods[varName], m)
		d.unigoalMethodOrder[varName] = append(d.unigoalMethodOrder[varName], m.name)
	}
	return nil
}

// DeclareMultigoalMethods appends methods to the global ordered list. A
// method name already registered as an action or task is a hard error, for
// the same reason DeclareUnigoalMethods checks it.
func (d *Domain) DeclareMultigoalMethods(methods ...MultigoalMethod) error {
	for _, m := range methods {
		if m.fn == nil {
			return ErrNilCallable
		}
		if _, isAction := d.actions[m.name]; isAction {
			return ErrNameCollision
		}
		if _, isTask := d.taskMethods[m.name]; isTask {
			return ErrNameCollision
		}
		if d.multigoalMethodOrder[m.name] {
			continue
		}
		d.multigoalMethods = append(d.multigoalMethods, m)
		d.multigoalMethodOrder[m.name] = true
	}
	return nil
}

// Action looks up a registered action by name.
func (d *Domain) Action(name string) (Action, bool) {
	a, ok := d.actions[name]
	return a, ok
}

// Command looks up a registered command by name.
func (d *Domain) Command(name string) (Command, bool) {
	c, ok := d.commands[name]
	return c, ok
}

// TaskMethods returns the ordered methods registered under taskName.
func (d *Domain) TaskMethods(taskName string) []TaskMethod {
	return d.taskMethods[taskName]
}

// HasTask reports whether any task-methods are registered under taskName.
func (d *Domain) HasTask(name string) bool {
	_, ok := d.taskMethods[name]
	return ok
}

// HasAction reports whether an action is registered under name.
func (d *Domain) HasAction(name string) bool {
	_, ok := d.actions[name]
	return ok
}

// UnigoalMethods returns the ordered methods registered under varName.
func (d *Domain) UnigoalMethods(varName string) []UnigoalMethod {
	return d.unigoalMethods[varName]
}

// HasUnigoalVar reports whether any unigoal methods are registered for varName.
func (d *Domain) HasUnigoalVar(varName string) bool {
	_, ok := d.unigoalMethods[varName]
	return ok
}

// MultigoalMethods returns the globally ordered multigoal methods.
func (d *Domain) MultigoalMethods() []MultigoalMethod {
	return d.multigoalMethods
}

// ActionNames returns the registered action names, for inspection/listing
// callers (e.g. the CLI's list-domains command); order is unspecified.
func (d *Domain) ActionNames() []string {
	names := make([]string, 0, len(d.actions))
	for name := range d.actions {
		names = append(names, name)
	}
	return names
}

// CommandNames returns the registered command names; order is unspecified.
func (d *Domain) CommandNames() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	return names
}

// TaskNames returns the task names with at least one registered method,
// excluding the built-in verification tasks (_verify_g, _verify_mg).
func (d *Domain) TaskNames() []string {
	names := make([]string, 0, len(d.taskMethods))
	for name := range d.taskMethods {
		if name == VerifyGoalTask || name == VerifyMultigoalTask {
			continue
		}
		names = append(names, name)
	}
	return names
}

// UnigoalVars returns the state-variable names with at least one
// registered unigoal method.
func (d *Domain) UnigoalVars() []string {
	names := make([]string, 0, len(d.unigoalMethods))
	for name := range d.unigoalMethods {
		names = append(names, name)
	}
	return names
}

// TaskMethodNames returns the ordered method names registered under
// taskName (try order).
func (d *Domain) TaskMethodNames(taskName string) []string {
	return append([]string(nil), d.taskMethodOrder[taskName]...)
}

// UnigoalMethodNames returns the ordered method names registered under
// varName (try order).
func (d *Domain) UnigoalMethodNames(varName string) []string {
	return append([]string(nil), d.unigoalMethodOrder[varName]...)
}

// MultigoalMethodNames returns the globally ordered multigoal method names.
func (d *Domain) MultigoalMethodNames() []string {
	names := make([]string, 0, len(d.multigoalMethods))
	for _, m := range d.multigoalMethods {
		names = append(names, m.Name())
	}
	return names
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// -- default-domain convenience (interactive/REPL use only) --
//
// Never read by application/planner or application/actor internals: every
// call there takes an explicit *Domain. This exists solely so short
// scripts and the CLI's demo mode can declare actions/methods without
// threading a *Domain through every call.

var defaultDomain *Domain

// SetDefault installs d as the package-level default domain.
func SetDefault(d *Domain) {
	defaultDomain = d
}

// Default returns the package-level default domain, or nil if none is set.
func Default() *Domain {
	return defaultDomain
}
