package chain

// Predict answers one probability query per target run length in runs, in
// input order. opts may be nil (all defaults). Per run k, the interpretation
// is selected with this precedence (first applicable wins):
//
//  1. k == 0            — trivially satisfied; the probability is 1.
//  2. k == attempts     — only the all-success sequence qualifies; both
//     modifiers degenerate and are ignored, the lookup
//     returns p^attempts.
//  3. ExactlyOnLastAttempt — P(a run of exactly k ends on the final trial):
//     the chain sits in state k−1 one trial before the
//     end without ever having absorbed, and the final
//     trial succeeds.
//  4. ExactlyConsecutive   — P(run of exactly k, no longer run) =
//     P(run ≥ k) − P(run ≥ k+1).
//  5. default              — P(run ≥ k anywhere in the sequence).
//
// The second return value is nil when no example counts were requested;
// otherwise it holds one list per run (empty for runs with a zero count),
// generated in the fixed enumeration order of Enumerate.
//
// Validation is eager and complete before any lookup: target run lengths
// must lie in [0, attempts], option slices must broadcast (see Options), and
// example counts must be non-negative.
func (m *Model) Predict(runs []int, opts *Options) ([]float64, [][]string, error) {
	if err := m.ensureFitted("Predict"); err != nil {
		return nil, nil, err
	}
	if len(runs) == 0 {
		return nil, nil, ErrNoRuns
	}
	for _, k := range runs {
		if err := m.validateRun("Predict", k); err != nil {
			return nil, nil, err
		}
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	onLast, err := broadcastBools("ExactlyOnLastAttempt", o.ExactlyOnLastAttempt, len(runs))
	if err != nil {
		return nil, nil, err
	}
	exact, err := broadcastBools("ExactlyConsecutive", o.ExactlyConsecutive, len(runs))
	if err != nil {
		return nil, nil, err
	}
	counts, err := broadcastCounts("Examples", o.Examples, len(runs))
	if err != nil {
		return nil, nil, err
	}

	wantExamples := false
	for _, c := range counts {
		if c > 0 {
			wantExamples = true

			break
		}
	}

	probs := make([]float64, len(runs))
	var examples [][]string
	if wantExamples {
		examples = make([][]string, len(runs))
	}

	for i, k := range runs {
		if probs[i], err = m.probability(k, onLast[i], exact[i]); err != nil {
			return nil, nil, err
		}
		if !wantExamples {
			continue
		}
		if counts[i] == 0 {
			examples[i] = []string{}

			continue
		}
		if examples[i], err = m.GenerateExamples(k, onLast[i], exact[i], counts[i]); err != nil {
			return nil, nil, err
		}
	}

	return probs, examples, nil
}

// PredictOne is the single-query convenience form of Predict without example
// generation.
func (m *Model) PredictOne(k int, exactlyOnLastAttempt, exactlyConsecutive bool) (float64, error) {
	if err := m.ensureFitted("PredictOne"); err != nil {
		return 0, err
	}
	if err := m.validateRun("PredictOne", k); err != nil {
		return 0, err
	}

	return m.probability(k, exactlyOnLastAttempt, exactlyConsecutive)
}

// probability reads the fitted tables for one validated target run length.
func (m *Model) probability(k int, exactlyOnLastAttempt, exactlyConsecutive bool) (float64, error) {
	switch {
	case k == 0:
		// A run of zero successes is present in every sequence.
		return 1, nil

	case k == m.attempts:
		// Degenerate case: the modifiers cannot distinguish anything — the
		// all-success sequence is the only way to achieve a full-length run.
		return m.table.At(k-1, k)

	case exactlyOnLastAttempt:
		// State k−1 one trial before the end, never absorbed, then a final
		// success extends the open run to exactly k at the boundary.
		v, err := m.prior.At(k-1, k-1)
		if err != nil {
			return 0, err
		}

		return v * m.successProb, nil

	case exactlyConsecutive:
		atLeastK, err := m.table.At(k-1, k)
		if err != nil {
			return 0, err
		}
		atLeastNext, err := m.table.At(k, k+1)
		if err != nil {
			return 0, err
		}

		return atLeastK - atLeastNext, nil

	default:
		return m.table.At(k-1, k)
	}
}
