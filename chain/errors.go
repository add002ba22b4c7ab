// Package chain: sentinel error set.
// All entry points return these sentinels, wrapped with parameter context via
// fmt.Errorf("...: %w", ErrX) so the message names the offending parameter
// and the violated constraint while callers still match with errors.Is.
// No function panics on user input.

package chain

import "errors"

var (
	// ErrAttemptsTooSmall is returned by Fit when attempts < 2: a single
	// trial admits no non-trivial run structure.
	ErrAttemptsTooSmall = errors.New("chain: attempts must be at least 2")

	// ErrProbabilityRange is returned by Fit when the success probability is
	// NaN or outside [0.0, 1.0].
	ErrProbabilityRange = errors.New("chain: success probability must be within [0.0, 1.0]")

	// ErrNotFitted is returned when Predict or example generation is invoked
	// on a zero Model that was never produced by Fit.
	ErrNotFitted = errors.New("chain: model is not fitted")

	// ErrNoRuns is returned by Predict when no target run length is supplied.
	ErrNoRuns = errors.New("chain: at least one target run length is required")

	// ErrRunOutOfRange is returned when a target run length k lies outside
	// [0, attempts].
	ErrRunOutOfRange = errors.New("chain: target run length out of range")

	// ErrLengthMismatch is returned when a per-run option slice has a length
	// other than 1 or the number of target run lengths.
	ErrLengthMismatch = errors.New("chain: option length must match the number of target run lengths")

	// ErrNegativeExamples is returned when a requested example count is
	// negative.
	ErrNegativeExamples = errors.New("chain: example count must be non-negative")
)
