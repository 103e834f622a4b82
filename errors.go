package slidegraph

import "errors"

// Every message is prefixed with "slidegraph:" for grepping. Components wrap
// these sentinels with context via fmt.Errorf("%w: ...", ErrX); callers match
// with errors.Is.
var (
	// ErrInvalidInput is returned for caller contract violations: shape
	// mismatches, too few points for triangulation, non-2-D coordinates,
	// non-square affinity matrices, NaN thresholds.
	ErrInvalidInput = errors.New("slidegraph: invalid input")

	// ErrNumerical is returned when malformed values (NaN, negative,
	// infinite) reach the clustering stage. Not expected in normal
	// operation, but feature data is untrusted.
	ErrNumerical = errors.New("slidegraph: numerical error")
)
