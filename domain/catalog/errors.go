package catalog

import "errors"

// Domain errors for catalog registration and dispatch.
var (
	// ErrNoCurrentDomain indicates a declare_* call was made with no domain set.
	ErrNoCurrentDomain = errors.New("no current domain: call SetDefault or pass an explicit *Domain")

	// ErrNameCollision indicates an action name and a task name collide,
	// making dispatch ambiguous.
	ErrNameCollision = errors.New("name registered in more than one table")

	// ErrUnknownAction indicates a todo item names an action not in the registry.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownTask indicates a todo item names a task not in the registry.
	ErrUnknownTask = errors.New("unknown task")

	// ErrUnknownUnigoalVar indicates a unigoal names a variable with no methods.
	ErrUnknownUnigoalVar = errors.New("no unigoal methods registered for variable")

	// ErrUninterpretable indicates a todo item's head symbol matches no
	// registry: a fatal domain-authoring error, not a planning failure.
	ErrUninterpretable = errors.New("uninterpretable todo item")

	// ErrNilCallable indicates a declare_* call was passed a nil function.
	ErrNilCallable = errors.New("cannot register a nil callable")
)
