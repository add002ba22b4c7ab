// Package chain - validation and broadcast helpers shared by Predict and the
// example-generation entry points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No panics on user input - only sentinel errors from errors.go, wrapped
//     with the offending parameter and value.
//   - All validation completes before any computation starts.

package chain

import "fmt"

// ensureFitted rejects a zero Model that never went through Fit.
func (m *Model) ensureFitted(op string) error {
	if m == nil || m.table == nil || m.prior == nil {
		return fmt.Errorf("chain: %s: %w", op, ErrNotFitted)
	}

	return nil
}

// validateRun checks a single target run length against [0, attempts].
func (m *Model) validateRun(op string, k int) error {
	if k < 0 || k > m.attempts {
		return fmt.Errorf("chain: %s: target run length %d must be within [0, %d]: %w", op, k, m.attempts, ErrRunOutOfRange)
	}

	return nil
}

// broadcastBools resolves a per-run boolean option against n target runs:
// nil means false everywhere, a single element is applied to every run, and
// length n is taken per-run. Any other length is a contract violation.
func broadcastBools(name string, vals []bool, n int) ([]bool, error) {
	switch len(vals) {
	case 0:
		return make([]bool, n), nil
	case 1:
		out := make([]bool, n)
		for i := range out {
			out[i] = vals[0]
		}

		return out, nil
	case n:
		return vals, nil
	}

	return nil, fmt.Errorf("chain: Predict: %q has length %d for %d target run lengths: %w",
		name, len(vals), n, ErrLengthMismatch)
}

// broadcastCounts resolves the Examples option with the same broadcast rule
// as broadcastBools, then rejects negative counts.
func broadcastCounts(name string, vals []int, n int) ([]int, error) {
	var out []int
	switch len(vals) {
	case 0:
		out = make([]int, n)
	case 1:
		out = make([]int, n)
		for i := range out {
			out[i] = vals[0]
		}
	case n:
		out = vals
	default:
		return nil, fmt.Errorf("chain: Predict: %q has length %d for %d target run lengths: %w",
			name, len(vals), n, ErrLengthMismatch)
	}

	for i, c := range vals {
		if c < 0 {
			return nil, fmt.Errorf("chain: Predict: %q[%d] = %d: %w", name, i, c, ErrNegativeExamples)
		}
	}

	return out, nil
}
