package state

import (
	"fmt"
	"strings"
)

// NotFoundError reports a lookup against a named collection that
// failed, carrying the valid names so callers can surface them.
type NotFoundError struct {
	Kind  string // "strategy", "segment", "template"
	Name  string
	Valid []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found. Available: %s", e.Kind, e.Name, strings.Join(e.Valid, ", "))
}

// NewNotFound creates a NotFoundError for the given kind and name.
func NewNotFound(kind, name string, valid []string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name, Valid: valid}
}
