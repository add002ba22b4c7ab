package chain

import (
	"fmt"
	"strings"
)

// Enumerator is a lazy, finite, restartable walk over all outcome sequences
// of the fitted length, yielding only those matching its predicate. Order is
// fixed: lexicographic over the {F, S} alphabet with Failure before Success,
// so the all-failure sequence comes first and the all-success sequence last.
//
// An Enumerator is single-goroutine; Reset rewinds it to the start. The walk
// visits all 2^attempts candidates in the worst case — impractical beyond
// roughly 20–25 attempts.
type Enumerator struct {
	length    int
	match     func(string) bool
	buf       []byte
	started   bool
	exhausted bool
}

func newEnumerator(length int, match func(string) bool) *Enumerator {
	e := &Enumerator{length: length, match: match}
	e.Reset()

	return e
}

// Reset rewinds the enumeration to the all-failure sequence. A subsequent
// full walk yields exactly the same sequences in the same order.
func (e *Enumerator) Reset() {
	e.buf = make([]byte, e.length)
	for i := range e.buf {
		e.buf[i] = Failure
	}
	e.started = false
	e.exhausted = false
}

// Next returns the next matching sequence, or ok=false once the outcome
// space is exhausted. After exhaustion it keeps returning ok=false until
// Reset is called.
func (e *Enumerator) Next() (seq string, ok bool) {
	for !e.exhausted {
		if e.started {
			e.advance()
			if e.exhausted {
				break
			}
		} else {
			e.started = true
		}
		if s := string(e.buf); e.match(s) {
			return s, true
		}
	}

	return "", false
}

// advance increments the outcome odometer: the rightmost Failure flips to
// Success and everything to its right resets to Failure. Carrying past the
// leftmost position exhausts the enumeration.
func (e *Enumerator) advance() {
	for i := e.length - 1; i >= 0; i-- {
		if e.buf[i] == Failure {
			e.buf[i] = Success

			return
		}
		e.buf[i] = Failure
	}
	e.exhausted = true
}

// Enumerate returns a lazy enumerator over the outcome sequences satisfying
// the event selected by k and the modifiers (same precedence as Predict).
// The boundary targets admit a single canonical sequence each: all-failure
// for k == 0 and all-success for k == attempts, modifiers ignored.
func (m *Model) Enumerate(k int, exactlyOnLastAttempt, exactlyConsecutive bool) (*Enumerator, error) {
	if err := m.ensureFitted("Enumerate"); err != nil {
		return nil, err
	}
	if err := m.validateRun("Enumerate", k); err != nil {
		return nil, err
	}

	return newEnumerator(m.attempts, m.matchPredicate(k, exactlyOnLastAttempt, exactlyConsecutive)), nil
}

// GenerateExamples collects up to count distinct sequences satisfying the
// event selected by k and the modifiers, in enumeration order. When fewer
// matches exist the list is simply shorter — exhaustion is not an error.
// A zero count yields an empty list.
func (m *Model) GenerateExamples(k int, exactlyOnLastAttempt, exactlyConsecutive bool, count int) ([]string, error) {
	if err := m.ensureFitted("GenerateExamples"); err != nil {
		return nil, err
	}
	if err := m.validateRun("GenerateExamples", k); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("chain: GenerateExamples: 'count' = %d: %w", count, ErrNegativeExamples)
	}
	if count == 0 {
		return []string{}, nil
	}

	e, err := m.Enumerate(k, exactlyOnLastAttempt, exactlyConsecutive)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, count)
	for len(out) < count {
		s, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}

	return out, nil
}

// matchPredicate selects the membership test for one validated target run
// length. Precedence mirrors Predict: boundary targets first, then
// exactly-on-last-attempt, then exactly-consecutive, then the default
// "at least k anywhere".
func (m *Model) matchPredicate(k int, exactlyOnLastAttempt, exactlyConsecutive bool) func(string) bool {
	allFail := strings.Repeat(string(Failure), m.attempts)
	allSucc := strings.Repeat(string(Success), m.attempts)

	switch {
	case k == 0:
		// Only the canonical all-failure sequence.
		return func(s string) bool { return s == allFail }

	case k == m.attempts:
		// Only the canonical all-success sequence.
		return func(s string) bool { return s == allSucc }

	case exactlyOnLastAttempt:
		run := strings.Repeat(string(Success), k)

		return func(s string) bool {
			// Ends with the run, and the run never occurs before the final
			// trial — a trailing run of k+1 would surface in s[:len(s)-1]
			// and is rejected too.
			return strings.HasSuffix(s, run) && !strings.Contains(s[:len(s)-1], run)
		}

	case exactlyConsecutive:
		run := strings.Repeat(string(Success), k)
		longer := run + string(Success)

		return func(s string) bool {
			return strings.Contains(s, run) && !strings.Contains(s, longer)
		}

	default:
		run := strings.Repeat(string(Success), k)

		return func(s string) bool { return strings.Contains(s, run) }
	}
}
