package marketerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Repository-level errors
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("integrity conflict")
)

// business logic errors
var (
	ErrValidation = errors.New("validation failed")
)

// FieldError names one field that failed validation and the rule it broke
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError is returned by entity validation. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
