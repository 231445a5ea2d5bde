// File: internal/domain/errors.go
package domain

import (
	"fmt"
	"strings"
)

// ValidationError collects per-field failure messages for a submitted
// form. It is returned instead of performing any mutation.
type ValidationError struct {
	Message string              `json:"message"`
	Fields  map[string][]string `json:"errors"`
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  make(map[string][]string),
	}
}

// Add appends a failure message for the named field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	return fmt.Sprintf("%s (invalid fields: %s)", e.Message, strings.Join(fields, ", "))
}
