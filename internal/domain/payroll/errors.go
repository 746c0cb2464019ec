package payroll

import "fmt"

// ValidationError reports a constructor invariant violation. The value is
// never created; the caller must fix the input and construct again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
