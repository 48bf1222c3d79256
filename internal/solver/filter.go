// internal/solver/filter.go
//
// Candidate filtering.
//
// Filter keeps the words that satisfy every predicate built from one guess's
// Evidence. Let good be the letters confirmed by Present or Correct verdicts:
//   1. StrictAbsence:    absent letters outside good do not occur at all.
//   2. CorrectPositions: each correct letter sits at its position.
//   3. PresentExclusion: each present letter does not sit at its position.
//   4. Containment:      every good letter occurs somewhere.
//   5. ExactCount:       an absent letter that is also good occurs exactly as
//                        many times as good confirms.
//
// The result preserves candidate order. An empty result means the feedback
// contradicts the candidate set.

package solver

import "github.com/samber/lo"

// Predicate reports whether a word is still consistent with some evidence.
type Predicate func(Word) bool

// StrictAbsence rejects words containing an absent letter that was not also
// confirmed elsewhere in the guess.
func StrictAbsence(ev Evidence) Predicate {
	good := ev.Good()
	banned := lo.Filter(ev.Absent, func(b byte, _ int) bool { return good[b] == 0 })
	return func(w Word) bool {
		for _, b := range banned {
			if w.Contains(b) {
				return false
			}
		}
		return true
	}
}

// CorrectPositions requires every correct letter at its position.
func CorrectPositions(ev Evidence) Predicate {
	return func(w Word) bool {
		for _, la := range ev.Correct {
			if w[la.Pos] != la.Letter {
				return false
			}
		}
		return true
	}
}

// PresentExclusion rejects words with a present letter at the position it
// was reported present.
func PresentExclusion(ev Evidence) Predicate {
	return func(w Word) bool {
		for _, la := range ev.Present {
			if w[la.Pos] == la.Letter {
				return false
			}
		}
		return true
	}
}

// Containment requires every confirmed letter to occur in the word.
func Containment(ev Evidence) Predicate {
	letters := lo.Keys(ev.Good())
	return func(w Word) bool {
		for _, g := range letters {
			if !w.Contains(g) {
				return false
			}
		}
		return true
	}
}

// ExactCount pins the occurrence count of letters that were both confirmed
// and reported absent: the absent copy means no occurrences beyond those
// already confirmed.
func ExactCount(ev Evidence) Predicate {
	good := ev.Good()
	exact := make(map[byte]int)
	for _, b := range ev.Absent {
		if n := good[b]; n > 0 {
			exact[b] = n
		}
	}
	return func(w Word) bool {
		for b, n := range exact {
			if w.Count(b) != n {
				return false
			}
		}
		return true
	}
}

// Predicates builds the full filter pipeline for ev.
func Predicates(ev Evidence) []Predicate {
	return []Predicate{
		StrictAbsence(ev),
		CorrectPositions(ev),
		PresentExclusion(ev),
		Containment(ev),
		ExactCount(ev),
	}
}

// Filter returns the ordered subsequence of candidates consistent with ev.
// The input slice is never modified.
func Filter(candidates []Word, ev Evidence) []Word {
	preds := Predicates(ev)
	return lo.Filter(candidates, func(w Word, _ int) bool {
		return lo.EveryBy(preds, func(p Predicate) bool { return p(w) })
	})
}

// FilterFeedback interprets fb for guess and filters candidates with it.
func FilterFeedback(candidates []Word, guess Word, fb Feedback) ([]Word, error) {
	ev, err := Interpret(guess, fb)
	if err != nil {
		return nil, err
	}
	return Filter(candidates, ev), nil
}
