// Package errors defines the error taxonomy shared across elabsync:
// sentinel values for configuration problems and typed, row-local errors
// the import loop recovers from.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Configuration errors
	ErrEmptyURL      = errors.New("API host URL cannot be empty")
	ErrMissingAPIKey = errors.New("API key cannot be empty")

	// Directory errors
	ErrEmptyDirectory = errors.New("user directory is empty")
	ErrMissingColumns = errors.New("no mapped columns found in header row")
)

// ValidationError reports a required field missing from an input record.
// Always row-local: the record is skipped, the batch continues.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be set", e.Field)
}

// NotFoundError reports a user, team or teamgroup that could not be
// resolved against the server snapshot. Row-local, like ValidationError.
type NotFoundError struct {
	Kind    string // "user", "team" or "teamgroup"
	Value   string
	Context string // extra identifying info, e.g. the enclosing team
}

func (e *NotFoundError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s %q %s not found on server", e.Kind, e.Value, e.Context)
	}
	return fmt.Sprintf("%s %q not found on server", e.Kind, e.Value)
}

// IsRowError reports whether err only invalidates a single record, so
// the batch should log it, skip the row and continue.
func IsRowError(err error) bool {
	var validation *ValidationError
	var notFound *NotFoundError
	return errors.As(err, &validation) || errors.As(err, &notFound)
}

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
