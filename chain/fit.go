package chain

import (
	"fmt"

	"github.com/katalvlaran/streak/matrix"
)

// Fit builds a consecutive-success model for a sequence of `attempts`
// independent Bernoulli trials with per-trial success probability
// `successProbability`.
//
// Validation (eager, before any computation):
//   - attempts must be ≥ 2           → ErrAttemptsTooSmall
//   - successProbability ∈ [0,1],
//     NaN rejected                   → ErrProbabilityRange
//
// Construction is a pure function of (attempts, successProbability): fitting
// twice with equal inputs yields identical tables, and the returned Model is
// immutable, so "refitting" is simply calling Fit again.
//
// Algorithm:
//  1. Build the transition tensor: one (attempts+1)×(attempts+1) stochastic
//     matrix per run-length threshold. In matrix i (threshold i+1), a state
//     j ≤ i advances to j+1 with probability p and resets to 0 with
//     probability 1−p; state i+1 is absorbing.
//  2. Start every threshold chain with all mass in state 0 and apply its
//     transition matrix once per trial. Retain the distribution table after
//     all attempts trials and the snapshot one trial earlier.
//
// Complexity: O(attempts⁴) time, O(attempts³) memory.
func Fit(attempts int, successProbability float64) (*Model, error) {
	if attempts < 2 {
		return nil, fmt.Errorf("chain: Fit: 'attempts' = %d: %w", attempts, ErrAttemptsTooSmall)
	}
	// The negated form also rejects NaN: comparisons with NaN are false.
	if !(successProbability >= 0 && successProbability <= 1) {
		return nil, fmt.Errorf("chain: Fit: 'successProbability' = %v: %w", successProbability, ErrProbabilityRange)
	}

	m := &Model{
		attempts:    attempts,
		successProb: successProbability,
		failureProb: 1 - successProbability,
	}

	var err error
	if m.tensor, err = m.transitionTensor(); err != nil {
		return nil, err
	}
	if m.table, m.prior, err = m.propagate(); err != nil {
		return nil, err
	}

	return m, nil
}

// transitionTensor builds one one-step transition matrix per run-length
// threshold. Matrix i tracks runs up to threshold i+1:
//
//	row j ≤ i:  failure → state 0 (prob 1−p), success → state j+1 (prob p)
//	row i+1:    absorbing self-loop (a run of i+1 has occurred)
//	rows > i+1: unreachable; kept as self-loops so every row stays stochastic
func (m *Model) transitionTensor() ([]*matrix.Dense, error) {
	n := m.attempts
	tensor := make([]*matrix.Dense, n)
	for i := 0; i < n; i++ {
		t, err := matrix.NewDense(n+1, n+1)
		if err != nil {
			return nil, err
		}
		for j := 0; j <= i; j++ {
			if err = t.Set(j, 0, m.failureProb); err != nil {
				return nil, err
			}
			if err = t.Set(j, j+1, m.successProb); err != nil {
				return nil, err
			}
		}
		for j := i + 1; j <= n; j++ {
			if err = t.Set(j, j, 1); err != nil {
				return nil, err
			}
		}
		tensor[i] = t
	}

	return tensor, nil
}

// propagate pushes the initial distribution of every threshold chain (all
// mass in state 0) through its transition matrix once per trial. Row j of
// the result is the threshold-(j+1) chain, so table[k-1][k] is the absorbed
// mass — the probability that a run of at least k occurred. The snapshot one
// trial before the last backs the exactly-on-last-attempt query.
func (m *Model) propagate() (table, prior *matrix.Dense, err error) {
	n := m.attempts
	if table, err = matrix.NewDense(n, n+1); err != nil {
		return nil, nil, err
	}
	for j := 0; j < n; j++ {
		if err = table.Set(j, 0, 1); err != nil {
			return nil, nil, err
		}
	}

	var row, next []float64
	for step := 0; step < n; step++ {
		if step == n-1 {
			prior = table.Clone()
		}
		for j := 0; j < n; j++ {
			if row, err = table.Row(j); err != nil {
				return nil, nil, err
			}
			if next, err = m.tensor[j].VecMul(row); err != nil {
				return nil, nil, err
			}
			if err = table.SetRow(j, next); err != nil {
				return nil, nil, err
			}
		}
	}

	return table, prior, nil
}
