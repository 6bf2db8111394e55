package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for planner and actor logging.

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Depth adds a search-depth field, for seek_plan's recursion trace.
func Depth(d int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("depth", d)
	}
}

// TodoHead adds a field naming the head item of the current todo list.
func TodoHead(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("todo_head", name)
	}
}

// MethodName adds a field naming the task/unigoal/multigoal method being tried.
func MethodName(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("method", name)
	}
}

// Verdict adds a field recording a refinement or verification outcome.
func Verdict(ok bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("verdict", ok)
	}
}

// ActorState adds the actor lifecycle state field.
func ActorState(s string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("actor_state", s)
	}
}

// Tries adds the remaining-tries field for run_lazy_lookahead.
func Tries(remaining int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("tries_remaining", remaining)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// DurationNs adds a duration field in nanoseconds.
func DurationNs(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ns", d.Nanoseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Budget adds budget-related fields.
func Budget(name string, remaining int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("budget", name).Int("remaining", remaining)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
