package epicycle

import (
	"errors"
	"fmt"
)

// Domain errors for analysis and reconstruction.
var (
	// ErrInvalidInput indicates a point sequence that cannot be analyzed (N=0).
	ErrInvalidInput = errors.New("epicycle: invalid input (empty point sequence)")

	// ErrInvalidConfiguration indicates a coefficient count or timing parameter
	// outside its valid range.
	ErrInvalidConfiguration = errors.New("epicycle: invalid configuration")
)

// AnalysisError wraps an analysis failure with the requested coefficient
// count and the number of input points.
type AnalysisError struct {
	K       int
	N       int
	Wrapped error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze (k=%d, n=%d): %v", e.K, e.N, e.Wrapped)
}

func (e *AnalysisError) Unwrap() error {
	return e.Wrapped
}
