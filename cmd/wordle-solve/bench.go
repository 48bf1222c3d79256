package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var (
	benchFirst   string
	benchLimit   int
	benchWorkers int
	benchQuiet   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve for every dictionary word and report how many guesses it takes",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchFirst, "first", "", "opening guess (skips scoring the full dictionary on turn one)")
	benchCmd.Flags().IntVar(&benchLimit, "limit", 0, "only use the first N dictionary words as secrets")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", runtime.NumCPU(), "concurrent solves")
	benchCmd.Flags().BoolVar(&benchQuiet, "quiet", false, "no progress bar")
}

// benchSummary aggregates bench outcomes.
type benchSummary struct {
	Games         int
	Solved        int
	Attempts      int // total attempts over solved games
	Distribution  [solver.MaxAttempts + 1]int
	Exhausted     []solver.Word // secrets not found in six guesses
	Contradiction []solver.Word // secrets the filter lost; always a bug
}

// Mean returns the average attempts over solved games.
func (s benchSummary) Mean() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.Attempts) / float64(s.Solved)
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dict, err := loadDictionary(ctx)
	if err != nil {
		return err
	}
	secrets := dict
	if benchLimit > 0 && benchLimit < len(secrets) {
		secrets = secrets[:benchLimit]
	}
	opts, err := firstGuessOption(benchFirst)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !benchQuiet {
		bar = progressbar.Default(int64(len(secrets)), "solving")
	}
	sum, err := bench(ctx, dict, secrets, benchWorkers, bar, opts...)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), sum)
	return nil
}

// bench solves every secret concurrently. Sessions share only the read-only
// dictionary; each result lands in its own slot.
func bench(ctx context.Context, dict, secrets []solver.Word, workers int, bar *progressbar.ProgressBar, opts ...solver.Option) (benchSummary, error) {
	results := make([]solver.Result, len(secrets))
	opts = append(opts, solver.WithLogger(zerolog.Nop()))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, secret := range secrets {
		i, secret := i, secret
		g.Go(func() error {
			referee, err := game.New(secret)
			if err != nil {
				return fmt.Errorf("secret %s: %w", secret, err)
			}
			res, err := solver.Solve(ctx, dict, referee, opts...)
			if err != nil {
				return fmt.Errorf("secret %s: %w", secret, err)
			}
			results[i] = res
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return benchSummary{}, err
	}

	sum := benchSummary{Games: len(secrets)}
	for i, res := range results {
		switch res.State {
		case solver.StateSolved:
			sum.Solved++
			sum.Attempts += res.Attempts
			sum.Distribution[res.Attempts]++
		case solver.StateExhausted:
			sum.Exhausted = append(sum.Exhausted, secrets[i])
		case solver.StateContradiction:
			sum.Contradiction = append(sum.Contradiction, secrets[i])
		}
	}
	return sum, nil
}

func printSummary(out io.Writer, sum benchSummary) {
	fmt.Fprintf(out, "\n%d games, %d solved, mean %.3f guesses\n", sum.Games, sum.Solved, sum.Mean())
	for n := 1; n <= solver.MaxAttempts; n++ {
		fmt.Fprintf(out, "  %d: %d\n", n, sum.Distribution[n])
	}
	if len(sum.Exhausted) > 0 {
		fmt.Fprintf(out, "not solved in %d: %s\n", solver.MaxAttempts, joinWords(sum.Exhausted))
	}
	if len(sum.Contradiction) > 0 {
		fmt.Fprintf(out, "contradictions: %s\n", joinWords(sum.Contradiction))
	}
}
