package domain

import "errors"

// Sentinel errors for the core operations. Callers match them with errors.Is;
// every failing return wraps one of these with context.
var (
	// ErrInvalidParameter reports a non-positive cadence or point count, or an
	// otherwise unusable argument handed to a core operation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrLengthMismatch reports validation inputs of differing length.
	ErrLengthMismatch = errors.New("length mismatch")
)
