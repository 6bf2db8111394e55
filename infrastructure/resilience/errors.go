package resilience

import "errors"

// errCommandFailed is the sentinel passed to the circuit breaker when a
// command's Outcome is a failure, so the breaker's failure accounting sees
// a non-nil error without the actor needing to synthesize one.
var errCommandFailed = errors.New("command execution failed")
