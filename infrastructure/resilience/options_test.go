package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/go-htn/htngo/domain/htnstate"
)

func TestWithCircuitBreakerThreshold(t *testing.T) {
	t.Parallel()

	config := DefaultExecutorConfig()
	opt := WithCircuitBreakerThreshold(10)
	opt(&config)

	if config.CircuitBreakerThreshold != 10 {
		t.Errorf("CircuitBreakerThreshold = %d, want 10", config.CircuitBreakerThreshold)
	}
}

func TestWithCircuitBreakerTimeout(t *testing.T) {
	t.Parallel()

	config := DefaultExecutorConfig()
	opt := WithCircuitBreakerTimeout(60 * time.Second)
	opt(&config)

	if config.CircuitBreakerTimeout != 60*time.Second {
		t.Errorf("CircuitBreakerTimeout = %v, want 60s", config.CircuitBreakerTimeout)
	}
}

func TestWithRetryAttempts(t *testing.T) {
	t.Parallel()

	config := DefaultExecutorConfig()
	opt := WithRetryAttempts(5)
	opt(&config)

	if config.RetryMaxAttempts != 5 {
		t.Errorf("RetryMaxAttempts = %d, want 5", config.RetryMaxAttempts)
	}
}

func TestWithRetryDelay(t *testing.T) {
	t.Parallel()

	config := DefaultExecutorConfig()
	opt := WithRetryDelay(200 * time.Millisecond)
	opt(&config)

	if config.RetryInitialDelay != 200*time.Millisecond {
		t.Errorf("RetryInitialDelay = %v, want 200ms", config.RetryInitialDelay)
	}
}

func TestNewExecutorWithOptions(t *testing.T) {
	t.Parallel()

	t.Run("with no options uses defaults", func(t *testing.T) {
		t.Parallel()

		executor := NewExecutorWithOptions()

		if executor == nil {
			t.Fatal("NewExecutorWithOptions() returned nil")
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		t.Parallel()

		executor := NewExecutorWithOptions(
			WithCircuitBreakerThreshold(10),
			WithCircuitBreakerTimeout(60*time.Second),
			WithRetryAttempts(5),
			WithRetryDelay(200*time.Millisecond),
		)

		if executor == nil {
			t.Fatal("NewExecutorWithOptions() returned nil")
		}

		s := htnstate.New("s0")
		out := executor.Execute(context.Background(), "c_move", succeedCommand, s, nil)
		if !out.IsOK() {
			t.Error("Execute() should succeed")
		}
	})

	t.Run("options are applied in order", func(t *testing.T) {
		t.Parallel()

		executor := NewExecutorWithOptions(
			WithRetryAttempts(1),
			WithRetryAttempts(3), // should override to 3
		)

		if executor == nil {
			t.Fatal("NewExecutorWithOptions() returned nil")
		}
	})
}

func TestAllOptions_ChainedUsage(t *testing.T) {
	t.Parallel()

	executor := NewExecutorWithOptions(
		WithCircuitBreakerThreshold(3),
		WithCircuitBreakerTimeout(10*time.Second),
		WithRetryAttempts(2),
		WithRetryDelay(50*time.Millisecond),
	)

	if executor == nil {
		t.Fatal("NewExecutorWithOptions() with all options returned nil")
	}

	s := htnstate.New("s0")
	out := executor.Execute(context.Background(), "c_move", succeedCommand, s, nil)
	if !out.IsOK() {
		t.Error("Execute() should succeed")
	}
}
