package chain

import "github.com/katalvlaran/streak/matrix"

// Outcome markers used in generated example sequences. An example is a string
// of length attempts over this two-letter alphabet; enumeration order is
// lexicographic with Failure sorting before Success.
const (
	// Failure marks an unsuccessful trial in an example sequence.
	Failure byte = 'F'

	// Success marks a successful trial in an example sequence.
	Success byte = 'S'
)

// Model holds the fitted parameters and the derived probability tables of a
// consecutive-success chain. A Model is immutable after Fit: concurrent
// readers need no coordination, and refitting means constructing a new Model
// (instances are cheap).
//
// The zero Model is not usable; obtain one via Fit.
type Model struct {
	attempts    int     // trial-sequence length N (≥ 2)
	successProb float64 // per-trial success probability p
	failureProb float64 // 1 - p

	// tensor[i] is the (attempts+1)×(attempts+1) one-step transition matrix
	// of the threshold-(i+1) chain: from state j ≤ i a success moves to j+1,
	// a failure resets to 0, and state i+1 is absorbing.
	tensor []*matrix.Dense

	// table row j is the state distribution of the threshold-(j+1) chain
	// after all attempts trials, so table[k-1][k] = P(run length ≥ k).
	table *matrix.Dense

	// prior is the same table one trial before the last; it backs the
	// exactly-on-last-attempt query.
	prior *matrix.Dense
}

// Attempts returns the fitted trial-sequence length.
func (m *Model) Attempts() int { return m.attempts }

// SuccessProbability returns the fitted per-trial success probability.
func (m *Model) SuccessProbability() float64 { return m.successProb }

// FailureProbability returns 1 − SuccessProbability().
func (m *Model) FailureProbability() float64 { return m.failureProb }

// Options configures a Predict call. Each field applies per target run
// length, with a broadcast rule rendering "single value or one value per run":
//
//   - nil          — the default (false / 0) for every run
//   - length 1     — that single value applied to every run
//   - length == n  — one value per run, in input order (n = number of runs)
//
// Any other length fails with ErrLengthMismatch naming the field.
type Options struct {
	// ExactlyOnLastAttempt restricts the event to a run of exactly k
	// successes ending precisely on the final trial. Takes precedence over
	// ExactlyConsecutive. Ignored when k equals the number of attempts
	// (a full-length run can only end on the final trial).
	ExactlyOnLastAttempt []bool

	// ExactlyConsecutive restricts the event to a run of exactly k — the
	// sequence contains a run of k successes but no run of k+1. Ignored when
	// k equals the number of attempts.
	ExactlyConsecutive []bool

	// Examples holds the number of example sequences to generate per run.
	// Each count must be ≥ 0; zero requests none.
	Examples []int
}

// DefaultOptions returns the zero configuration: every run uses the default
// "at least k anywhere" interpretation and no examples are generated.
func DefaultOptions() Options {
	return Options{}
}
