package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesolver: invalid turn notation")
	ErrUnknownTurn     = errors.New("cubesolver: unknown turn symbol")

	// Algebra errors
	ErrInvalidExponent = errors.New("cubesolver: exponent must be -1 or greater")

	// Solver errors
	ErrSearchExhausted = errors.New("cubesolver: connector search exhausted")
	ErrSolveFailed     = errors.New("cubesolver: solve failed")
)
