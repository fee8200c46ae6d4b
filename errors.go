package jdep

import "fmt"

// InputError is returned whenever a caller-provided value cannot be used:
// an unparseable timestamp, a timestamp outside the supported epoch, or an
// unknown emission type or satellite. There are no transient failures in
// this package, so an InputError always means the call itself was wrong.
type InputError struct {
	What   string // which input was rejected, e.g. "timestamp"
	Value  string // the offending value, formatted for display
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.What, e.Value, e.Reason)
}
