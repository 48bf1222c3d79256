package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var (
	simSecret string
	simDaily  bool
	simDate   string
	simFirst  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play against a known secret word",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simSecret, "secret", "", "secret word")
	simulateCmd.Flags().BoolVar(&simDaily, "daily", false, "use the day's secret (see DAILY_SALT)")
	simulateCmd.Flags().StringVar(&simDate, "date", "", "date for --daily, YYYY-MM-DD (today when empty)")
	simulateCmd.Flags().StringVar(&simFirst, "first", "", "opening guess")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	dict, err := loadDictionary(ctx)
	if err != nil {
		return err
	}

	var secret solver.Word
	switch {
	case simSecret != "" && simDaily:
		return errors.New("use either --secret or --daily")
	case simSecret != "":
		if secret, err = solver.ParseWord(simSecret); err != nil {
			return err
		}
	case simDaily:
		day := time.Now()
		if simDate != "" {
			if day, err = time.Parse("2006-01-02", simDate); err != nil {
				return fmt.Errorf("--date: %w", err)
			}
		}
		secret, _ = daily.Secret(day, cfg.DailySalt, dict)
		fmt.Fprintf(out, "Daily secret for %s chosen.\n", daily.DateKey(day))
	default:
		return errors.New("one of --secret or --daily is required")
	}

	opts, err := firstGuessOption(simFirst)
	if err != nil {
		return err
	}
	referee, err := game.New(secret)
	if err != nil {
		return err
	}
	provider := solver.ProviderFunc(func(ctx context.Context, guess solver.Word) (solver.Feedback, error) {
		fb, err := referee.Submit(ctx, guess)
		if err == nil {
			fmt.Fprintf(out, "Attempt %d:: %s -> %s\n", len(referee.Guesses), guess, fb)
		}
		return fb, err
	})

	res, err := solver.Solve(ctx, dict, provider, opts...)
	if err != nil {
		return err
	}
	report(out, res)
	return nil
}
