// Package errors defines domain-level errors shared across the generator.
package errors

import (
	"errors"
)

var (
	// ErrMissingInput indicates that one of the required configuration
	// inputs was not supplied via flag or environment variable. This is
	// fatal before any core logic runs; no partial output is written.
	ErrMissingInput = errors.New("missing required input")

	// ErrOutputWriteFailed indicates the assembled gallery document could
	// not be persisted to the output path.
	ErrOutputWriteFailed = errors.New("failed to write gallery output")
)
