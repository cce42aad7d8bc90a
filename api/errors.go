package api

import "strings"

// ValidationError is the combined result of validating one element against
// its label. Every failed check contributes one clause, so a caller sees all
// problems at once rather than fixing them one re-validation at a time.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "; ") + "."
}

// NewValidationError aggregates failed checks into a single error, or returns
// nil when there are none.
func NewValidationError(failures []string) error {
	if len(failures) == 0 {
		return nil
	}
	return &ValidationError{Failures: failures}
}
