package ranking

import "errors"

var (
	// ErrInvalidInput the stat set is empty or malformed; fatal to the
	// invocation, surfaced to the caller, never retried internally
	ErrInvalidInput = errors.New("invalid ranking input")

	// ErrInvalidCriteria the configured weights do not sum to 1.0
	ErrInvalidCriteria = errors.New("invalid ranking criteria")
)
