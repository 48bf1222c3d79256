// internal/game/engine.go
//
// Referee for a single Wordle game.
// Responsibilities:
//   - Hold the secret word and count guesses (6 rows).
//   - Evaluate guesses with the classic two-pass Wordle algorithm.
//   - Act as a solver.Provider so the solver loop can play against it.
//
// Notes:
//   - Guess validity against an allowed list is not checked; the solver only
//     ever guesses dictionary words.
//   - randomID() is a compact hex identifier for correlating log lines.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrFinished is returned when a guess is submitted after the game ended.
var ErrFinished = errors.New("game finished")

// New constructs a game refereeing secret. The secret is normalised with
// solver.ParseWord; anything that is not five letters is rejected.
func New(secret solver.Word) (*Game, error) {
	w, err := solver.ParseWord(string(secret))
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:      randomID(),
		Secret:  w,
		Rows:    solver.MaxAttempts,
		Guesses: []solver.Word{},
	}, nil
}

// Submit evaluates guess against the secret and records it.
//
// State transitions:
//   - All verdicts Correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) Submit(ctx context.Context, guess solver.Word) (solver.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.Finished {
		return nil, ErrFinished
	}
	guess, err := solver.ParseWord(string(guess))
	if err != nil {
		return nil, err
	}

	fb := Evaluate(g.Secret, guess)
	g.Guesses = append(g.Guesses, guess)

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return fb, nil
}

// State reports a coarse string representation of the game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Evaluate implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (non-correct) secret letters.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
//
// A repeated guess letter is therefore Present only as often as the secret
// has unmatched copies of it. Both words must be valid upper-case Words as
// returned by solver.ParseWord.
func Evaluate(secret, guess solver.Word) solver.Feedback {
	n := solver.WordLength
	res := make(solver.Feedback, n)

	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = solver.Correct
		} else {
			counts[secret[i]-'A']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == solver.Correct {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			res[i] = solver.Present
			counts[j]--
		} else {
			res[i] = solver.Absent
		}
	}
	return res
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
