package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var testDict = []solver.Word{"CRANE", "SLATE", "ADIEU", "MOIST"}

func newTestSession(t *testing.T) *solver.Session {
	t.Helper()
	sess, err := solver.NewSession(testDict, solver.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return sess
}

func TestPlaySolves(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("aaaaa\nccccc\n")

	res, err := play(context.Background(), newTestSession(t), in, &out, 2)
	require.NoError(t, err)
	assert.Equal(t, solver.StateSolved, res.State)
	assert.Equal(t, 2, res.Attempts)

	text := out.String()
	assert.Contains(t, text, "4 possible words. Alternatives: SLATE ADIEU")
	assert.Contains(t, text, "Attempt 1: CRANE")
	assert.Contains(t, text, "1 possible words.")
	assert.Contains(t, text, "Attempt 2: MOIST")
}

func TestPlayRetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("zzz\nslate\nslate aacac\nccccc\n")

	res, err := play(context.Background(), newTestSession(t), in, &out, 0)
	require.NoError(t, err)
	assert.Equal(t, solver.StateSolved, res.State)
	require.Len(t, res.History, 2)
	assert.Equal(t, solver.Word("SLATE"), res.History[0].Guess, "played word overrides the suggestion")
	assert.Contains(t, out.String(), "invalid feedback")
}

func TestPlayContradiction(t *testing.T) {
	var out bytes.Buffer
	res, err := play(context.Background(), newTestSession(t), strings.NewReader("ccccp\n"), &out, 0)
	require.NoError(t, err)
	assert.Equal(t, solver.StateContradiction, res.State)

	out.Reset()
	report(&out, res)
	assert.Contains(t, out.String(), "No word matches")
	assert.Contains(t, out.String(), "1. CRANE ccccp")
}

func TestPlayStops(t *testing.T) {
	_, err := play(context.Background(), newTestSession(t), strings.NewReader("quit\n"), io.Discard, 0)
	assert.True(t, errors.Is(err, errQuit))

	_, err = play(context.Background(), newTestSession(t), strings.NewReader(""), io.Discard, 0)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReportSolved(t *testing.T) {
	var out bytes.Buffer
	report(&out, solver.Result{
		State:    solver.StateSolved,
		Attempts: 1,
		History:  []solver.Turn{{Guess: "CRANE", Feedback: solver.AllCorrect()}},
	})
	assert.Contains(t, out.String(), `Solved "CRANE" in 1 guesses.`)
}

func TestParseTurn(t *testing.T) {
	guess, fb, err := parseTurn("crane=aapcc")
	require.NoError(t, err)
	assert.Equal(t, solver.Word("CRANE"), guess)
	assert.Equal(t, "aapcc", fb.String())

	for _, bad := range []string{"crane", "cran=aaaaa", "crane=aaa"} {
		_, _, err := parseTurn(bad)
		assert.Error(t, err, bad)
	}
}

func TestBench(t *testing.T) {
	sum, err := bench(context.Background(), testDict, testDict, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Games)
	assert.Equal(t, 4, sum.Solved)
	assert.Equal(t, 1, sum.Distribution[1])
	assert.Equal(t, 3, sum.Distribution[2])
	assert.InDelta(t, 1.75, sum.Mean(), 1e-9)
	assert.Empty(t, sum.Exhausted)
	assert.Empty(t, sum.Contradiction)

	var out bytes.Buffer
	printSummary(&out, sum)
	assert.Contains(t, out.String(), "4 games, 4 solved, mean 1.750 guesses")
}

func TestBenchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench(ctx, testDict, testDict, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
