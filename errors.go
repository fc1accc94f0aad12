package cpx

import (
	"fmt"
	"strings"
)

// InvalidEnumValueError reports a status token outside its closed
// vocabulary. It is returned at construction time; values that reach the
// serialization layer are already known to be valid.
type InvalidEnumValueError struct {
	// Enum names the vocabulary the value was checked against.
	Enum string

	// Value is the rejected token.
	Value string

	// Allowed lists the vocabulary's tokens in declaration order.
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q (allowed: %s)",
		e.Enum, e.Value, strings.Join(e.Allowed, ", "))
}

// NewInvalidEnumValueError creates an InvalidEnumValueError for the given
// vocabulary and rejected token.
func NewInvalidEnumValueError(enum, value string, allowed []string) *InvalidEnumValueError {
	return &InvalidEnumValueError{Enum: enum, Value: value, Allowed: allowed}
}
