package htnstate

import "fmt"

// TermEqual performs a deep structural comparison of two opaque symbolic
// terms. Terms are strings, ints, floats, bools, or slices of the same —
// reflect.DeepEqual handles all of those, but comparing with == would panic
// on slice-valued terms, so every equality check in this package goes
// through here rather than using == directly.
func TermEqual(a, b any) bool {
	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !TermEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// TermString renders a term for trace output and error messages.
func TermString(t any) string {
	return fmt.Sprintf("%v", t)
}
