// internal/solver/score.go
//
// Frequency-based guess scoring.
//
// The table counts, for each position, how many candidates carry each letter
// there. A word's score multiplies 1 + (f - m)^2 over its positions, where f
// is the count of its letter at that position and m the largest count at that
// position. Scores are >= 1; exactly 1 means the word uses the most frequent
// letter everywhere. Lower is better.
//
// Scores are float64: products of squared counts overflow int64 on
// dictionaries of a few thousand words.

package solver

import (
	"sort"
)

// FrequencyTable counts letters per position over a candidate set.
type FrequencyTable [WordLength][alphabetSize]int

// BuildFrequencyTable counts letters per position in a single pass.
func BuildFrequencyTable(candidates []Word) FrequencyTable {
	var t FrequencyTable
	for _, w := range candidates {
		for i := 0; i < WordLength; i++ {
			t[i][idx(w[i])]++
		}
	}
	return t
}

// Count returns how many candidates have letter at pos.
func (t *FrequencyTable) Count(letter byte, pos int) int {
	return t[pos][idx(letter)]
}

// Max returns the largest letter count at pos.
func (t *FrequencyTable) Max(pos int) int {
	m := 0
	for _, n := range t[pos] {
		if n > m {
			m = n
		}
	}
	return m
}

// Score rates word against table; lower is better.
func Score(word Word, table FrequencyTable) float64 {
	score := 1.0
	for i := 0; i < WordLength; i++ {
		d := float64(table.Count(word[i], i) - table.Max(i))
		score *= 1 + d*d
	}
	return score
}

// BestWord returns the lowest-scoring candidate. Ties go to the earliest
// candidate. ok is false when candidates is empty.
func BestWord(candidates []Word, table FrequencyTable) (best Word, ok bool) {
	var bestScore float64
	for i, w := range candidates {
		s := Score(w, table)
		if i == 0 || s < bestScore {
			best, bestScore = w, s
		}
	}
	return best, len(candidates) > 0
}

// Scored is a candidate with its score.
type Scored struct {
	Word  Word    `json:"word"`
	Score float64 `json:"score"`
}

// Rank returns up to n candidates ordered as BestWord would prefer them.
// n <= 0 returns every candidate.
func Rank(candidates []Word, table FrequencyTable, n int) []Scored {
	out := make([]Scored, len(candidates))
	for i, w := range candidates {
		out[i] = Scored{Word: w, Score: Score(w, table)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
