// internal/solver/verdict.go
//
// Per-letter feedback values.
//
// A Verdict is one of Absent, Present or Correct. Feedback is the ordered
// sequence of WordLength verdicts returned for a guess. The compact text form
// is one code per letter: a (absent), p (present), c (correct). Common
// aliases are accepted on input:
//   - absent:  a - x b
//   - present: p ~ y
//   - correct: c + g

package solver

import (
	"strings"
)

// Verdict is the evaluation of a single guessed letter.
// The zero value is invalid so an unset verdict never passes validation.
type Verdict uint8

const (
	Absent Verdict = iota + 1
	Present
	Correct
)

// String returns the lowercase verdict name.
func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return "invalid"
}

// Code returns the single-letter code for v.
func (v Verdict) Code() byte {
	switch v {
	case Absent:
		return 'a'
	case Present:
		return 'p'
	case Correct:
		return 'c'
	}
	return '?'
}

// Valid reports whether v is one of the three verdicts.
func (v Verdict) Valid() bool { return v >= Absent && v <= Correct }

func (v Verdict) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, &ValidationError{Field: "verdict", Value: v.String(), Reason: "unknown verdict"}
	}
	return []byte(v.String()), nil
}

func (v *Verdict) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	switch s {
	case "absent", "miss":
		*v = Absent
		return nil
	case "present":
		*v = Present
		return nil
	case "correct", "hit":
		*v = Correct
		return nil
	}
	if len(s) == 1 {
		if parsed, ok := verdictFromCode(s[0]); ok {
			*v = parsed
			return nil
		}
	}
	return &ValidationError{Field: "verdict", Value: string(b), Reason: "unknown verdict"}
}

func verdictFromCode(c byte) (Verdict, bool) {
	switch c {
	case 'a', 'A', '-', 'x', 'X', 'b', 'B':
		return Absent, true
	case 'p', 'P', '~', 'y', 'Y':
		return Present, true
	case 'c', 'C', '+', 'g', 'G':
		return Correct, true
	}
	return 0, false
}

// Feedback is the per-position verdict sequence for one guess.
type Feedback []Verdict

// ParseFeedback parses a compact code string such as "aapcc".
func ParseFeedback(s string) (Feedback, error) {
	code := strings.TrimSpace(s)
	if len(code) != WordLength {
		return nil, &ValidationError{Field: "feedback", Value: s, Reason: "must have 5 verdicts"}
	}
	fb := make(Feedback, WordLength)
	for i := 0; i < len(code); i++ {
		v, ok := verdictFromCode(code[i])
		if !ok {
			return nil, &ValidationError{Field: "feedback", Value: s, Reason: "verdicts must be a, p or c"}
		}
		fb[i] = v
	}
	return fb, nil
}

// MustParseFeedback is ParseFeedback for literals; it panics on invalid input.
func MustParseFeedback(s string) Feedback {
	fb, err := ParseFeedback(s)
	if err != nil {
		panic(err)
	}
	return fb
}

// AllCorrect returns the feedback of a solved guess.
func AllCorrect() Feedback {
	fb := make(Feedback, WordLength)
	for i := range fb {
		fb[i] = Correct
	}
	return fb
}

// Validate checks length and that every verdict is known.
func (f Feedback) Validate() error {
	if len(f) != WordLength {
		return &ValidationError{Field: "feedback", Value: f.String(), Reason: "must have 5 verdicts"}
	}
	for _, v := range f {
		if !v.Valid() {
			return &ValidationError{Field: "feedback", Value: f.String(), Reason: "unknown verdict"}
		}
	}
	return nil
}

// Solved reports whether every verdict is Correct.
func (f Feedback) Solved() bool {
	if len(f) != WordLength {
		return false
	}
	for _, v := range f {
		if v != Correct {
			return false
		}
	}
	return true
}

// String returns the compact code form, e.g. "aapcc".
func (f Feedback) String() string {
	var b strings.Builder
	for _, v := range f {
		b.WriteByte(v.Code())
	}
	return b.String()
}

func (f Feedback) MarshalText() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return []byte(f.String()), nil
}

func (f *Feedback) UnmarshalText(b []byte) error {
	fb, err := ParseFeedback(string(b))
	if err != nil {
		return err
	}
	*f = fb
	return nil
}
