// internal/game/types.go
//
// Core type definitions for the game referee.
// Defines:
//   - Game: state of a single refereed game (secret, guesses, outcome).

package game

import "github.com/robalobadob/wordle/apps/solver/internal/solver"

// Game holds the state of a single refereed Wordle game.
type Game struct {
	ID       string        // Unique game identifier (random hex string).
	Secret   solver.Word   // The solution word.
	Rows     int           // Maximum number of guesses allowed (6).
	Guesses  []solver.Word // Guesses submitted so far.
	Finished bool          // True once the game is over (won or lost).
	Won      bool          // True if the game was finished with a win.
}
