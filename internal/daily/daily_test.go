package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(d))
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 420)
	assert.Equal(t, a, WordIndex(d, "salt", 420))
	assert.Equal(t, a, WordIndex(d.Add(6*time.Hour), "salt", 420), "same UTC day")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 420)
	assert.Equal(t, 0, WordIndex(d, "salt", 0))
}

func TestWordIndexVaries(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(start.AddDate(0, 0, i), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSecret(t *testing.T) {
	dict := []solver.Word{"CRANE", "SLATE", "ADIEU"}
	d := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	w, ok := Secret(d, "salt", dict)
	assert.True(t, ok)
	assert.Contains(t, dict, w)
	assert.Equal(t, dict[WordIndex(d, "salt", len(dict))], w)

	_, ok = Secret(d, "salt", nil)
	assert.False(t, ok)
}
