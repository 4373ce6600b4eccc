package hits

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIterations is returned when the iteration count is below zero.
	ErrNegativeIterations = errors.New("hits: iterations must be non-negative")
	// ErrInvalidLimit is returned for a selection limit below Unlimited.
	ErrInvalidLimit = errors.New("hits: limit must be -1 or non-negative")
	// ErrUnknownToken is returned when a sentence token is missing from the vocabulary.
	ErrUnknownToken = errors.New("hits: token missing from vocabulary")
)

// DimensionError reports a length or index that does not fit the matrix or
// vector it was paired with.
type DimensionError struct {
	What     string
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("hits: %s: expected %d, got %d", e.What, e.Expected, e.Actual)
}
