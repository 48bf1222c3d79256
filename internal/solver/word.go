// internal/solver/word.go
//
// Word and dictionary primitives shared by every stage of the solver.
//
// Words are stored upper-case. ParseWord is the only way user input becomes a
// Word; it trims, upper-folds and rejects anything that is not exactly
// WordLength letters A–Z.

package solver

import "strings"

const (
	// WordLength is the number of letters in every word.
	WordLength = 5
	// MaxAttempts is the number of guesses a game allows.
	MaxAttempts = 6

	alphabetSize = 26
)

// Word is a validated five-letter upper-case word.
type Word string

// ParseWord normalises s and validates it as a Word.
func ParseWord(s string) (Word, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) != WordLength {
		return "", &ValidationError{Field: "word", Value: s, Reason: "must be 5 letters"}
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", &ValidationError{Field: "word", Value: s, Reason: "letters A-Z only"}
		}
	}
	return Word(w), nil
}

// MustParseWord is ParseWord for literals; it panics on invalid input.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseWords parses each element of list, stopping at the first invalid one.
func ParseWords(list ...string) ([]Word, error) {
	out := make([]Word, 0, len(list))
	for _, s := range list {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Count reports how many times letter occurs in w.
func (w Word) Count(letter byte) int {
	return strings.Count(string(w), string(letter))
}

// Contains reports whether letter occurs anywhere in w.
func (w Word) Contains(letter byte) bool {
	return strings.IndexByte(string(w), letter) >= 0
}

func (w Word) String() string { return string(w) }

// idx maps an upper-case ASCII letter to 0..25.
func idx(b byte) int { return int(b - 'A') }
