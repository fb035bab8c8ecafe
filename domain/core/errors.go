package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrMissingInput signals that a source file is absent. Fatal: nothing
	// is written before both inputs exist.
	ErrMissingInput = errors.New("input file missing")

	// ErrSchemaMismatch signals that the column table and the dataset header
	// disagree. This is a configuration-integrity failure, not a data-quality
	// one, and is never recovered silently.
	ErrSchemaMismatch = errors.New("column table does not match header")

	// ErrUnclassifiedColumn signals a column whose bucket maps to no known
	// schema type or transform. It mirrors the classifier invariant as a
	// second gate during artifact emission.
	ErrUnclassifiedColumn = errors.New("column has no known bucket")

	// ErrInvalidConfig covers malformed configuration values (bad split
	// ratio, unreadable column table, duplicate registrations).
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error constructors with context
func NewMissingInputError(path string, hint string) error {
	return fmt.Errorf("%w: %s (%s)", ErrMissingInput, path, hint)
}

func NewSchemaMismatchError(reason string) error {
	return fmt.Errorf("%w: %s", ErrSchemaMismatch, reason)
}

func NewUnclassifiedColumnError(name string, bucket string) error {
	return fmt.Errorf("%w: %s (bucket %q)", ErrUnclassifiedColumn, name, bucket)
}

func NewInvalidConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, reason)
}

// Error checking helpers
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

func IsSchemaMismatch(err error) bool {
	return errors.Is(err, ErrSchemaMismatch)
}

func IsUnclassifiedColumn(err error) bool {
	return errors.Is(err, ErrUnclassifiedColumn)
}

func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
