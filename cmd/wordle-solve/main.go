// Command wordle-solve is the terminal front end of the solver.
//
// Subcommands:
//
//	play      interactive: suggests guesses, reads the game's feedback from stdin
//	simulate  plays against a known secret
//	suggest   replays GUESS=CODE pairs and prints the remaining candidates
//	bench     solves every dictionary word and reports the guess distribution
//	import    loads a word list into the SQLite dictionary
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

var (
	cfg       config.Config
	wordsFile string
	dbPath    string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:          "wordle-solve",
	Short:        "Deduce Wordle answers from feedback",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.SetupLogging(logLevel, "console")
	},
}

func init() {
	cfg = config.Load()
	rootCmd.PersistentFlags().StringVar(&wordsFile, "words", cfg.WordsFile, "newline-delimited dictionary (embedded list when empty)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "SQLite dictionary database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (LOG_LEVEL)")

	rootCmd.AddCommand(playCmd, simulateCmd, suggestCmd, benchCmd, importCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadDictionary resolves the dictionary from the persistent flags.
func loadDictionary(ctx context.Context) ([]solver.Word, error) {
	dict, source, err := store.LoadDictionary(ctx, dbPath, wordsFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("source", source).Int("words", len(dict)).Msg("dictionary loaded")
	return dict, nil
}

// firstGuessOption parses an optional --first flag value.
func firstGuessOption(first string) ([]solver.Option, error) {
	if first == "" {
		return nil, nil
	}
	w, err := solver.ParseWord(first)
	if err != nil {
		return nil, err
	}
	return []solver.Option{solver.WithFirstGuess(w)}, nil
}
