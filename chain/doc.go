// Package chain models runs of consecutive successes in a fixed-length
// sequence of independent Bernoulli trials, using an absorbing Markov chain
// over the length of the current success run.
//
// 🚀 What does it compute?
//
//	Given N trials with per-trial success probability p, and a target run
//	length k, the model answers three questions:
//	  • P(a run of at least k successes occurs anywhere)     — default
//	  • P(a run of exactly k occurs, and no longer run)      — ExactlyConsecutive
//	  • P(a run of exactly k ends precisely on trial N)      — ExactlyOnLastAttempt
//	and can enumerate concrete example sequences (strings over {F, S})
//	satisfying each event.
//
// ⚙️ Usage:
//
//	m, err := chain.Fit(8, 0.8)
//	if err != nil { ... }
//
//	// Probability of at least 3 consecutive successes in 8 trials.
//	probs, _, err := m.Predict([]int{3}, nil)
//
//	// Same, with two example sequences per target.
//	opts := chain.DefaultOptions()
//	opts.Examples = []int{2}
//	probs, examples, err := m.Predict([]int{3}, &opts)
//
// The model:
//
//	For each threshold k the chain walks states 0..k, where state j means
//	"the current success run has length j and no run of k has occurred yet".
//	A success advances j→j+1, a failure resets j→0, and state k is absorbing
//	("a run of k happened"). Fit propagates the initial distribution (all
//	mass in state 0) through N one-step transitions for every threshold at
//	once, retaining the final table and the snapshot one trial before the
//	end; Predict is then a pure table lookup.
//
// Guarantees:
//
//   - Deterministic: tables and enumeration order are pure functions of
//     (attempts, p); refitting with equal inputs yields equal results.
//   - Eager validation: every argument is checked before any computation;
//     all failures are sentinel errors matched via errors.Is.
//   - Immutable after Fit: a Model is read-only; distinct instances may be
//     used concurrently without coordination.
//
// Performance:
//
//   - Fit:     O(attempts⁴) time, O(attempts³) memory (tensor of
//     (attempts+1)² matrices) — negligible for realistic horizons.
//   - Predict: O(1) per target run length.
//   - Example enumeration: O(2^attempts) worst case — it scans the full
//     outcome space. Impractical beyond ~20–25 trials; correctness over
//     cleverness is the intended trade-off.
//
// See example_test.go for runnable scenarios.
package chain
