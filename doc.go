// Package streak answers one question precisely: in a fixed-length sequence
// of independent Bernoulli trials, how likely is a run of k consecutive
// successes — and what do sequences satisfying that event look like?
//
// 🚀 What is streak?
//
//	A small, deterministic, in-memory probability library built around a
//	Markov chain that tracks the length of the current success run:
//	  • Exact probability of a run of at least k successes anywhere
//	  • Probability of a run of exactly k (no longer run present)
//	  • Probability of a run of exactly k ending on the final trial
//	  • Lazy enumeration of concrete example sequences for each event
//
// ✨ Why choose streak?
//
//   - Exact answers – transition-matrix propagation, no simulation noise
//   - Rock-solid contract – eager validation, sentinel errors, errors.Is
//   - Pure Go – no cgo, no hidden deps, no I/O, no global state
//   - Deterministic – same inputs always produce the same tables and examples
//
// Everything is organized under two subpackages:
//
//	chain/  — the consecutive-success model: Fit, Predict, example generation
//	matrix/ — dense row-major float64 primitives backing the fitting phase
//
// Quick sketch of the chain for attempts=3 (states = current run length):
//
//	0 ──p──▶ 1 ──p──▶ 2 ──p──▶ 3 (absorbing)
//	▲        │        │
//	└──1−p───┴──1−p───┘
//
// Dive into chain/doc.go for the full model description and worked examples.
//
//	go get github.com/katalvlaran/streak/chain
package streak
