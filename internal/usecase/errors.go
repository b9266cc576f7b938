package usecase

import (
	"fmt"
	"strings"
)

// ValidationError rejects a request before any side effect happens. Handlers
// map it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newMissingFieldsError(names []string) *ValidationError {
	return &ValidationError{Message: "Missing fields: " + strings.Join(names, ", ")}
}

// DependencyError marks a failed mandatory call to an external collaborator
// (database write, storage upload). Handlers map it to HTTP 500 and keep the
// underlying text in the message for operator diagnosis.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *DependencyError) Unwrap() error { return e.Err }

func dependencyErr(op string, err error) *DependencyError {
	return &DependencyError{Op: op, Err: err}
}
