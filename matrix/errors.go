// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); tests and callers match them with errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// valid range of the receiver.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. VecMul where len(v) != m.Rows(), or SetRow with a wrong-length row.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotStochastic indicates a row whose entries are negative or do not
	// sum to 1 within the tolerance required of a transition matrix.
	ErrNotStochastic = errors.New("matrix: row is not a probability distribution")
)
