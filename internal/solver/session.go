// internal/solver/session.go
//
// Solve session and driving loop.
//
// A Session owns one solve: the current candidate set and the guess record.
// It moves Start → Guessing ⇄ Filtering and ends in Solved, Exhausted or
// Contradiction. Sessions share nothing and are not safe for concurrent use;
// callers that share one must serialise access.
//
// Two ways to drive it:
//   - step-wise: Suggest, then Apply with the feedback obtained elsewhere
//     (HTTP API, interactive terminal);
//   - Solve, which loops over a Provider until a terminal state.

package solver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// State is a session's position in the solve state machine.
type State string

const (
	StateStart         State = "start"
	StateGuessing      State = "guessing"
	StateFiltering     State = "filtering"
	StateSolved        State = "solved"
	StateExhausted     State = "exhausted"
	StateContradiction State = "contradiction"
)

// Terminal reports whether no further guesses are possible.
func (s State) Terminal() bool {
	return s == StateSolved || s == StateExhausted || s == StateContradiction
}

// Turn is one entry of the guess record.
type Turn struct {
	Guess    Word     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Result is the outcome of a finished (or abandoned) session.
type Result struct {
	State      State  `json:"state"`
	Attempts   int    `json:"attempts"`
	History    []Turn `json:"history"`
	Candidates []Word `json:"candidates"`
}

// Err maps the non-winning terminal states to their sentinel errors.
func (r Result) Err() error {
	switch r.State {
	case StateContradiction:
		return ErrContradiction
	case StateExhausted:
		return ErrExhausted
	}
	return nil
}

// Solution returns the winning guess when the session was solved.
func (r Result) Solution() (Word, bool) {
	if r.State != StateSolved || len(r.History) == 0 {
		return "", false
	}
	return r.History[len(r.History)-1].Guess, true
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for per-turn debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithFirstGuess forces the opening guess instead of scoring the full
// dictionary, which is the slowest turn on large word lists.
func WithFirstGuess(w Word) Option {
	return func(s *Session) { s.opener = w }
}

// Session holds the state of a single solve.
type Session struct {
	candidates []Word
	history    []Turn
	state      State
	opener     Word
	pending    Word
	log        zerolog.Logger
}

// NewSession starts a session over dict. dict is copied; the caller keeps
// ownership of its slice.
func NewSession(dict []Word, opts ...Option) (*Session, error) {
	if len(dict) == 0 {
		return nil, &ValidationError{Field: "dictionary", Value: "", Reason: "must not be empty"}
	}
	for _, w := range dict {
		if err := validateWord(w); err != nil {
			return nil, err
		}
	}
	s := &Session{
		candidates: append([]Word(nil), dict...),
		state:      StateStart,
		log:        log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.opener != "" {
		if err := validateWord(s.opener); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Attempts returns the number of guesses applied so far.
func (s *Session) Attempts() int { return len(s.history) }

// Candidates returns a copy of the current candidate set.
func (s *Session) Candidates() []Word {
	out := make([]Word, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// History returns a copy of the guess record.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// Result snapshots the session.
func (s *Session) Result() Result {
	return Result{
		State:      s.state,
		Attempts:   len(s.history),
		History:    s.History(),
		Candidates: s.Candidates(),
	}
}

// Table returns the frequency table over the current candidates.
func (s *Session) Table() FrequencyTable { return BuildFrequencyTable(s.candidates) }

// Suggest returns the next guess to play.
func (s *Session) Suggest() (Word, error) {
	if s.state.Terminal() {
		return "", ErrSessionOver
	}
	s.state = StateGuessing
	if len(s.history) == 0 && s.opener != "" {
		s.pending = s.opener
		return s.opener, nil
	}
	w, ok := BestWord(s.candidates, s.Table())
	if !ok {
		// unreachable: an empty candidate set is terminal
		return "", ErrContradiction
	}
	s.pending = w
	return w, nil
}

// Pending returns the last suggestion not yet followed by Apply.
func (s *Session) Pending() (Word, bool) { return s.pending, s.pending != "" }

// Apply records the feedback received for guess and advances the session.
// Invalid input is rejected before the record is touched.
func (s *Session) Apply(guess Word, fb Feedback) (State, error) {
	if s.state.Terminal() {
		return s.state, ErrSessionOver
	}
	ev, err := Interpret(guess, fb)
	if err != nil {
		return s.state, err
	}
	s.history = append(s.history, Turn{Guess: guess, Feedback: append(Feedback(nil), fb...)})
	s.pending = ""
	attempt := len(s.history)

	if fb.Solved() {
		s.state = StateSolved
		s.candidates = []Word{guess}
		s.log.Debug().Int("attempt", attempt).Str("guess", string(guess)).Msg("solved")
		return s.state, nil
	}

	s.state = StateFiltering
	before := len(s.candidates)
	s.candidates = Filter(s.candidates, ev)
	s.log.Debug().
		Int("attempt", attempt).
		Str("guess", string(guess)).
		Str("feedback", fb.String()).
		Int("before", before).
		Int("after", len(s.candidates)).
		Msg("filtered candidates")

	switch {
	case len(s.candidates) == 0:
		s.state = StateContradiction
	case attempt >= MaxAttempts:
		s.state = StateExhausted
	default:
		s.state = StateGuessing
	}
	return s.state, nil
}

// Solve runs a session over dict against provider until it terminates.
// Provider failures end the session and are returned as *ProviderError along
// with the partial result; they are never retried.
func Solve(ctx context.Context, dict []Word, provider Provider, opts ...Option) (Result, error) {
	s, err := NewSession(dict, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(ctx, provider)
}

// Run drives s with provider until a terminal state.
func (s *Session) Run(ctx context.Context, provider Provider) (Result, error) {
	for !s.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		guess, err := s.Suggest()
		if err != nil {
			return s.Result(), err
		}
		fb, err := provider.Submit(ctx, guess)
		if err != nil {
			return s.Result(), &ProviderError{Attempt: len(s.history) + 1, Guess: guess, Err: err}
		}
		if _, err := s.Apply(guess, fb); err != nil {
			return s.Result(), fmt.Errorf("apply feedback for %s: %w", guess, err)
		}
	}
	return s.Result(), nil
}
