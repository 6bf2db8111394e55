// Package resilience provides resilient command execution using fortify.
package resilience

import (
	"context"
	"sync"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"

	"github.com/go-htn/htngo/domain/htnstate"
	"github.com/go-htn/htngo/domain/result"
)

// CommandFn is the shape of command.go's catalog.CommandFn, duplicated here
// to keep this package free of a dependency on domain/catalog — the actor
// wires the two together.
type CommandFn func(s htnstate.State, args []any) result.Outcome[htnstate.State]

// Executor runs commands under retry and per-command circuit-breaker
// protection. There is no bulkhead facet: the actor executes commands one
// at a time (spec.md's acting loop has no concurrent command execution),
// so a concurrency limiter would guard against a scenario that cannot
// occur.
type Executor struct {
	mu       sync.Mutex
	breakers map[string]circuitbreaker.CircuitBreaker[htnstate.State]
	retry    retry.Retry[htnstate.State]
	config   ExecutorConfig
}

// ExecutorConfig configures the resilient executor.
type ExecutorConfig struct {
	// CircuitBreakerThreshold is the number of consecutive failures before
	// a command's breaker opens.
	CircuitBreakerThreshold int

	// CircuitBreakerTimeout is how long an open breaker stays open before
	// allowing a probe request through.
	CircuitBreakerTimeout time.Duration

	// RetryMaxAttempts is the maximum number of retry attempts per command call.
	RetryMaxAttempts int

	// RetryInitialDelay is the initial delay between retries.
	RetryInitialDelay time.Duration

	// RetryBackoffMultiplier is the exponential backoff multiplier.
	RetryBackoffMultiplier float64
}

// DefaultExecutorConfig returns a configuration with sensible defaults.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CircuitBreakerThreshold: 5,
		CircuitBreakerTimeout:   30 * time.Second,
		RetryMaxAttempts:        3,
		RetryInitialDelay:       100 * time.Millisecond,
		RetryBackoffMultiplier:  2.0,
	}
}

// NewExecutor creates a new resilient executor.
func NewExecutor(config ExecutorConfig) *Executor {
	threshold := config.CircuitBreakerThreshold
	if threshold < 0 {
		threshold = 5
	}

	return &Executor{
		breakers: make(map[string]circuitbreaker.CircuitBreaker[htnstate.State]),
		retry: retry.New[htnstate.State](retry.Config{
			MaxAttempts:   config.RetryMaxAttempts,
			InitialDelay:  config.RetryInitialDelay,
			BackoffPolicy: retry.BackoffExponential,
			Multiplier:    config.RetryBackoffMultiplier,
		}),
		config: config,
	}
}

// NewDefaultExecutor creates an executor with default configuration.
func NewDefaultExecutor() *Executor {
	return NewExecutor(DefaultExecutorConfig())
}

// breakerFor returns the circuit breaker dedicated to commandName, creating
// it on first use — each command gets its own failure count, so a flaky
// "pickup" command cannot trip the breaker guarding "putdown".
func (e *Executor) breakerFor(commandName string) circuitbreaker.CircuitBreaker[htnstate.State] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if b, ok := e.breakers[commandName]; ok {
		return b
	}

	threshold := e.config.CircuitBreakerThreshold
	if threshold < 0 {
		threshold = 5
	}
	b := circuitbreaker.New[htnstate.State](circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    e.config.CircuitBreakerTimeout,
		Timeout:     e.config.CircuitBreakerTimeout,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold) // #nosec G115 -- bounds checked above
		},
	})
	e.breakers[commandName] = b
	return b
}

// Execute runs a command under its circuit breaker, retrying failed
// attempts with exponential backoff. Per spec.md §4.4 step 4 ("invoke it
// as cmd(clone(state), action.args)"), s is cloned before every call —
// including retries — so a command that mutates state in place before
// deciding to fail (e.g. recording an attempt, then checking a side
// condition) can never corrupt the caller's live state.
func (e *Executor) Execute(ctx context.Context, commandName string, fn CommandFn, s htnstate.State, args []any) result.Outcome[htnstate.State] {
	breaker := e.breakerFor(commandName)

	state, err := breaker.Execute(ctx, func(ctx context.Context) (htnstate.State, error) {
		return e.retry.Do(ctx, func(ctx context.Context) (htnstate.State, error) {
			out := fn(s.Clone(), args)
			if !out.IsOK() {
				return htnstate.State{}, errCommandFailed
			}
			return out.Value(), nil
		})
	})
	if err != nil {
		return result.Fail[htnstate.State]()
	}
	return result.Ok(state)
}

// ExecuteSimple runs a command without retry or circuit-breaker protection.
// The actor does not call it: every command it runs goes through Execute.
// It clones s first for the same reason Execute does.
func (e *Executor) ExecuteSimple(_ context.Context, fn CommandFn, s htnstate.State, args []any) result.Outcome[htnstate.State] {
	return fn(s.Clone(), args)
}

// CircuitBreakerState returns the current state of commandName's breaker.
func (e *Executor) CircuitBreakerState(commandName string) circuitbreaker.State {
	return e.breakerFor(commandName).State()
}
