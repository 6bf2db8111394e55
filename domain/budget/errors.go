package budget

import "errors"

// ErrBudgetExceeded indicates a named budget limit has been exceeded.
var ErrBudgetExceeded = errors.New("budget exceeded")
