package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var (
	playFirst string
	playTop   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve interactively, entering the game's feedback after each guess",
	Long: `Suggests a guess, then reads the feedback the game showed for it.

Enter 5 verdict codes, one per letter:
  a  absent   (also - x b)
  p  present  (also ~ y)
  c  correct  (also + g)

If you played a different word, enter "WORD CODES", e.g. "SLATE aapac".
Enter "quit" to stop.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playFirst, "first", "", "opening guess")
	playCmd.Flags().IntVar(&playTop, "top", 3, "alternative guesses to show")
}

var errQuit = errors.New("quit")

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dict, err := loadDictionary(ctx)
	if err != nil {
		return err
	}
	opts, err := firstGuessOption(playFirst)
	if err != nil {
		return err
	}
	sess, err := solver.NewSession(dict, opts...)
	if err != nil {
		return err
	}
	res, err := play(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout(), playTop)
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		fmt.Fprintln(cmd.OutOrStdout(), "Stopped.")
		return nil
	}
	if err != nil {
		return err
	}
	report(cmd.OutOrStdout(), res)
	return nil
}

// play runs sess step by step, reading feedback lines from in.
func play(ctx context.Context, sess *solver.Session, in io.Reader, out io.Writer, top int) (solver.Result, error) {
	sc := bufio.NewScanner(in)
	for !sess.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return sess.Result(), err
		}
		guess, err := sess.Suggest()
		if err != nil {
			return sess.Result(), err
		}
		cands := sess.Candidates()
		fmt.Fprintf(out, "%d possible words.", len(cands))
		if top > 0 && len(cands) > 1 {
			fmt.Fprint(out, " Alternatives:")
			shown := 0
			for _, s := range solver.Rank(cands, sess.Table(), top+1) {
				if s.Word == guess || shown == top {
					continue
				}
				fmt.Fprintf(out, " %s", s.Word)
				shown++
			}
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Attempt %d: %s\n", sess.Attempts()+1, guess)

		played, fb, err := readFeedback(sc, out, guess)
		if err != nil {
			return sess.Result(), err
		}
		if _, err := sess.Apply(played, fb); err != nil {
			return sess.Result(), err
		}
	}
	return sess.Result(), nil
}

// readFeedback prompts until a valid line is entered.
func readFeedback(sc *bufio.Scanner, out io.Writer, suggested solver.Word) (solver.Word, solver.Feedback, error) {
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", nil, err
			}
			return "", nil, io.EOF
		}
		line := strings.TrimSpace(sc.Text())
		if line == "quit" {
			return "", nil, errQuit
		}
		guess := suggested
		code := line
		if fields := strings.Fields(line); len(fields) == 2 {
			w, err := solver.ParseWord(fields[0])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			guess, code = w, fields[1]
		}
		fb, err := solver.ParseFeedback(code)
		if err != nil {
			fmt.Fprintln(out, err)
			fmt.Fprintln(out, `Enter 5 codes (a absent, p present, c correct), "WORD CODES", or "quit".`)
			continue
		}
		return guess, fb, nil
	}
}

// report prints the terminal outcome of a session.
func report(out io.Writer, res solver.Result) {
	switch res.State {
	case solver.StateSolved:
		w, _ := res.Solution()
		fmt.Fprintf(out, "Solved %q in %d guesses.\n", w, res.Attempts)
	case solver.StateExhausted:
		fmt.Fprintf(out, "Number of guesses exceeded; %d candidates left.\n", len(res.Candidates))
	case solver.StateContradiction:
		fmt.Fprintln(out, "No word matches the feedback entered; one of the results was probably mistyped.")
	}
	for i, t := range res.History {
		fmt.Fprintf(out, "  %d. %s %s\n", i+1, t.Guess, t.Feedback)
	}
}
