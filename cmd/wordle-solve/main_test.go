package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
)

func TestLogLevelDefaultsToConfig(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, f)
	assert.Equal(t, cfg.LogLevel, f.DefValue)

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, "debug", config.FromEnv().LogLevel)
}

func TestImportReportsMeta(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte("crane\nmoist\nmoist\n"), 0o644))

	prev := dbPath
	dbPath = filepath.Join(dir, "words.db")
	t.Cleanup(func() { dbPath = prev })

	var out bytes.Buffer
	importCmd.SetOut(&out)
	t.Cleanup(func() { importCmd.SetOut(nil) })
	importCmd.SetContext(context.Background())

	require.NoError(t, runImport(importCmd, []string{list}))
	assert.Contains(t, out.String(), "Imported 2 words from "+list+" into "+dbPath+" at ")
}
