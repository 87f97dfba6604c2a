package feasibility

import "fmt"

// ValidationError reports an input value outside its documented domain. It is
// raised before any computation; a rejected call is never partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

// ComputationError reports a non-finite derived value (NaN or Inf) after a
// transform. It indicates an upstream contract violation and is never silently
// coerced to a default.
type ComputationError struct {
	Stage string
	Value float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("non-finite value %v computed in %s", e.Value, e.Stage)
}
