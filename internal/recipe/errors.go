package recipe

import (
	"fmt"
	"strings"
)

// ValidationError reports input that violates a required contract. Valid lists the
// accepted values when the field is an enumeration.
type ValidationError struct {
	Field string
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	if len(e.Valid) > 0 {
		return fmt.Sprintf("invalid %s '%s'. Valid values: %s", e.Field, e.Value, strings.Join(e.Valid, ", "))
	}
	return fmt.Sprintf("%s is required", e.Field)
}
