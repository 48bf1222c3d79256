package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var suggestTop int

var suggestCmd = &cobra.Command{
	Use:   "suggest [GUESS=CODES]...",
	Short: "Replay feedback and print the remaining candidates",
	Example: `  wordle-solve suggest CRANE=aaaaa
  wordle-solve suggest SLATE=apaac TOUCH=aacaa`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestTop, "top", 5, "ranked suggestions to print")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	dict, err := loadDictionary(cmd.Context())
	if err != nil {
		return err
	}
	sess, err := solver.NewSession(dict)
	if err != nil {
		return err
	}
	for _, arg := range args {
		guess, fb, err := parseTurn(arg)
		if err != nil {
			return err
		}
		if _, err := sess.Apply(guess, fb); err != nil {
			return err
		}
	}

	res := sess.Result()
	if res.State.Terminal() {
		report(out, res)
		return res.Err()
	}
	cands := res.Candidates
	fmt.Fprintf(out, "%d possible words", len(cands))
	if len(cands) <= 50 {
		fmt.Fprintf(out, ": %s", joinWords(cands))
	}
	fmt.Fprintln(out)
	for i, s := range solver.Rank(cands, sess.Table(), suggestTop) {
		fmt.Fprintf(out, "%2d. %s  score %.0f\n", i+1, s.Word, s.Score)
	}
	return nil
}

// parseTurn parses "GUESS=CODES".
func parseTurn(arg string) (solver.Word, solver.Feedback, error) {
	word, code, ok := strings.Cut(arg, "=")
	if !ok {
		return "", nil, fmt.Errorf("%q: expected GUESS=CODES", arg)
	}
	guess, err := solver.ParseWord(word)
	if err != nil {
		return "", nil, err
	}
	fb, err := solver.ParseFeedback(code)
	if err != nil {
		return "", nil, err
	}
	return guess, fb, nil
}

func joinWords(ws []solver.Word) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = string(w)
	}
	return strings.Join(parts, " ")
}
