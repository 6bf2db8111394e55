// Package config loads declarative scenario files: an initial state, a
// goal (or todo-list), and run options, for the CLI and demo domains.
// Actions and methods remain Go callables (spec.md §6) supplied by a named
// built-in domain compiled into the binary — a scenario file expresses
// only the data half of a run, never behavior.
package config

// ScenarioConfig is the root of a scenario file.
type ScenarioConfig struct {
	Name        string                       `yaml:"name"`
	Description string                       `yaml:"description,omitempty"`
	Domain      string                       `yaml:"domain"`
	State       map[string]map[string]any    `yaml:"state"`
	Goal        []ItemConfig                 `yaml:"goal"`
	Run         RunOptions                   `yaml:"run"`
}

// ItemConfig is one todo-list item in a scenario file: a tagged union over
// Action/Task/Unigoal/Multigoal, selected by Kind, mirroring domain/todo.Item.
type ItemConfig struct {
	Kind string `yaml:"kind"`

	Name string `yaml:"name,omitempty"`
	Args []any  `yaml:"args,omitempty"`

	Var   string `yaml:"var,omitempty"`
	Arg   any    `yaml:"arg,omitempty"`
	Value any    `yaml:"value,omitempty"`

	Multigoal map[string]map[string]any `yaml:"multigoal,omitempty"`
}

// RunOptions mirrors the planner/actor tunables a scenario may override.
type RunOptions struct {
	MaxTries    int  `yaml:"max_tries"`
	MaxDepth    int  `yaml:"max_depth"`
	Verbose     int  `yaml:"verbose"`
	VerifyGoals bool `yaml:"verify_goals"`
	Act         bool `yaml:"act"`
}

// DefaultRunOptions returns the run options a scenario gets when it omits
// the run: block entirely.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		MaxTries:    10,
		VerifyGoals: true,
	}
}
