package solver

// LetterAt is a letter pinned to a position in the guess.
type LetterAt struct {
	Letter byte
	Pos    int
}

// Evidence is one guess's feedback split by verdict.
type Evidence struct {
	Absent  []byte     // distinct letters, in first-seen order
	Present []LetterAt // letter occurs, but not at Pos
	Correct []LetterAt // letter occurs at Pos
}

// Interpret partitions the positions of guess by their verdict.
// Duplicate letters are not disambiguated here; an Absent verdict on a letter
// that is also Present or Correct is resolved by the filter's count rule.
func Interpret(guess Word, fb Feedback) (Evidence, error) {
	if err := validateWord(guess); err != nil {
		return Evidence{}, err
	}
	if err := fb.Validate(); err != nil {
		return Evidence{}, err
	}
	var ev Evidence
	seen := make(map[byte]bool, WordLength)
	for i, v := range fb {
		c := guess[i]
		switch v {
		case Correct:
			ev.Correct = append(ev.Correct, LetterAt{Letter: c, Pos: i})
		case Present:
			ev.Present = append(ev.Present, LetterAt{Letter: c, Pos: i})
		case Absent:
			if !seen[c] {
				seen[c] = true
				ev.Absent = append(ev.Absent, c)
			}
		}
	}
	return ev, nil
}

// Good returns, per letter, how many occurrences the evidence confirms.
func (e Evidence) Good() map[byte]int {
	good := make(map[byte]int, len(e.Present)+len(e.Correct))
	for _, la := range e.Correct {
		good[la.Letter]++
	}
	for _, la := range e.Present {
		good[la.Letter]++
	}
	return good
}

// validateWord rejects Words built by conversion rather than ParseWord.
func validateWord(w Word) error {
	parsed, err := ParseWord(string(w))
	if err != nil {
		return err
	}
	if parsed != w {
		return &ValidationError{Field: "word", Value: string(w), Reason: "must be upper-case"}
	}
	return nil
}
