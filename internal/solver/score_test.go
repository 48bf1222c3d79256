package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFrequencyTable(t *testing.T) {
	table := BuildFrequencyTable(words(t, "crane", "slate", "adieu", "moist"))

	assert.Equal(t, 2, table.Count('A', 2))
	assert.Equal(t, 2, table.Count('I', 2))
	assert.Equal(t, 2, table.Count('E', 4))
	assert.Equal(t, 0, table.Count('Z', 0))
	assert.Equal(t, 1, table.Max(0))
	assert.Equal(t, 2, table.Max(4))

	var empty FrequencyTable
	assert.Equal(t, empty, BuildFrequencyTable(nil))
}

func TestScore(t *testing.T) {
	table := BuildFrequencyTable(words(t, "crane", "slate", "adieu", "moist"))

	assert.Equal(t, 1.0, Score("CRANE", table))
	assert.Equal(t, 1.0, Score("SLATE", table))
	assert.Equal(t, 2.0, Score("ADIEU", table))
	assert.Equal(t, 2.0, Score("MOIST", table))
	// Z never occurs: every position misses the maximum by its full count.
	assert.Equal(t, 2.0*2.0*5.0*2.0*5.0, Score("ZZZZZ", table))
}

func TestScoreDeterministicAndBounded(t *testing.T) {
	cands := words(t, "crane", "slate", "adieu", "moist", "touch", "stale", "eerie")
	table := BuildFrequencyTable(cands)
	for _, w := range cands {
		s := Score(w, table)
		assert.Equal(t, s, Score(w, table))
		assert.GreaterOrEqual(t, s, 1.0)
	}
}

func TestBestWordTieBreak(t *testing.T) {
	cands := words(t, "slate", "crane", "adieu", "moist")
	table := BuildFrequencyTable(cands)

	best, ok := BestWord(cands, table)
	require.True(t, ok)
	assert.Equal(t, Word("SLATE"), best, "first of the tied minimum wins")

	best, ok = BestWord(words(t, "crane", "slate", "adieu", "moist"), table)
	require.True(t, ok)
	assert.Equal(t, Word("CRANE"), best)
}

func TestBestWordEmpty(t *testing.T) {
	_, ok := BestWord(nil, FrequencyTable{})
	assert.False(t, ok)
}

func TestRank(t *testing.T) {
	cands := words(t, "adieu", "crane", "moist", "slate")
	table := BuildFrequencyTable(cands)

	all := Rank(cands, table, 0)
	require.Len(t, all, 4)
	assert.Equal(t, []Scored{
		{Word: "CRANE", Score: 1},
		{Word: "SLATE", Score: 1},
		{Word: "ADIEU", Score: 2},
		{Word: "MOIST", Score: 2},
	}, all)

	top := Rank(cands, table, 1)
	best, _ := BestWord(cands, table)
	require.Len(t, top, 1)
	assert.Equal(t, best, top[0].Word)

	assert.Len(t, Rank(cands, table, 10), 4)
}
