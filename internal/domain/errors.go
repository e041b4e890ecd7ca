package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned when a scenario violates a precondition.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAmbiguousConfiguration is returned when a rate table is malformed.
	ErrAmbiguousConfiguration = errors.New("ambiguous configuration")
)

// InputError reports a single rejected field.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// NewInputError creates an InputError for field.
func NewInputError(field, format string, args ...any) *InputError {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidationErrors collects every failed field of a request so it can be reported at once.
type ValidationErrors []*InputError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Unwrap() error { return ErrInvalidInput }

// Fields groups messages by field name, preserving the order they were reported in.
func (ve ValidationErrors) Fields() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, e := range ve {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// ErrOrNil returns nil when no errors were collected.
func (ve ValidationErrors) ErrOrNil() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}
