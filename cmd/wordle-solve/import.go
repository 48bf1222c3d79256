package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var importCmd = &cobra.Command{
	Use:   "import <words-file>",
	Short: "Replace the SQLite dictionary with a word list",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	if dbPath == "" {
		return errors.New("--db (or DB_PATH) is required")
	}
	ctx := cmd.Context()
	list, err := words.FileSource{Path: args[0]}.Load(ctx)
	if err != nil {
		return err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	dict := store.NewSQLDictionary(db)
	if err := dict.Replace(ctx, args[0], list); err != nil {
		return err
	}
	meta, err := dict.Meta(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words from %s into %s at %s\n",
		meta.WordCount, meta.Source, dbPath, meta.ImportedAt.Format(time.RFC3339))
	return nil
}
