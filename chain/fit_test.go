package chain_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/streak/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFit_AttemptsTooSmall verifies that horizons below 2 are rejected.
func TestFit_AttemptsTooSmall(t *testing.T) {
	for _, attempts := range []int{1, 0, -3} {
		_, err := chain.Fit(attempts, 0.8)
		assert.ErrorIs(t, err, chain.ErrAttemptsTooSmall, "attempts=%d must error", attempts)
		assert.ErrorContains(t, err, "attempts", "message must name the offending parameter")
	}
}

// TestFit_ProbabilityOutOfRange verifies that probabilities outside [0,1]
// and NaN are rejected.
func TestFit_ProbabilityOutOfRange(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := chain.Fit(3, p)
		assert.ErrorIs(t, err, chain.ErrProbabilityRange, "p=%v must error", p)
		assert.ErrorContains(t, err, "successProbability", "message must name the offending parameter")
	}
}

// TestFit_StoresParameters verifies the fitted accessors.
func TestFit_StoresParameters(t *testing.T) {
	m, err := chain.Fit(5, 0.8)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Attempts())
	assert.Equal(t, 0.8, m.SuccessProbability())
	assert.InDelta(t, 0.2, m.FailureProbability(), 1e-15)
}

// TestFit_BoundaryProbabilities verifies that the inclusive endpoints fit and
// produce the degenerate distributions.
func TestFit_BoundaryProbabilities(t *testing.T) {
	// p=1: every sequence is all-success, so any run length is certain.
	m, err := chain.Fit(4, 1.0)
	require.NoError(t, err)
	for k := 1; k <= 4; k++ {
		v, err := m.PredictOne(k, false, false)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-12, "p=1 makes a run of %d certain", k)
	}

	// p=0: no success ever occurs.
	m, err = chain.Fit(4, 0.0)
	require.NoError(t, err)
	for k := 1; k <= 4; k++ {
		v, err := m.PredictOne(k, false, false)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, v, 1e-12, "p=0 makes a run of %d impossible", k)
	}
}

// TestFit_Idempotent verifies that refitting with equal inputs yields equal
// tables: every query answers identically.
func TestFit_Idempotent(t *testing.T) {
	a, err := chain.Fit(6, 0.37)
	require.NoError(t, err)
	b, err := chain.Fit(6, 0.37)
	require.NoError(t, err)

	for k := 0; k <= 6; k++ {
		for _, onLast := range []bool{false, true} {
			for _, exact := range []bool{false, true} {
				va, err := a.PredictOne(k, onLast, exact)
				require.NoError(t, err)
				vb, err := b.PredictOne(k, onLast, exact)
				require.NoError(t, err)
				assert.Equal(t, va, vb, "k=%d onLast=%v exact=%v", k, onLast, exact)
			}
		}
	}
}

// TestModel_NotFitted verifies that a zero Model is rejected by every entry
// point instead of producing garbage.
func TestModel_NotFitted(t *testing.T) {
	var m chain.Model

	_, _, err := m.Predict([]int{1}, nil)
	assert.ErrorIs(t, err, chain.ErrNotFitted)

	_, err = m.PredictOne(1, false, false)
	assert.ErrorIs(t, err, chain.ErrNotFitted)

	_, err = m.Enumerate(1, false, false)
	assert.ErrorIs(t, err, chain.ErrNotFitted)

	_, err = m.GenerateExamples(1, false, false, 1)
	assert.ErrorIs(t, err, chain.ErrNotFitted)
}
