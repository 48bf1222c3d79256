package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(t *testing.T, list ...string) []Word {
	t.Helper()
	out, err := ParseWords(list...)
	require.NoError(t, err)
	return out
}

func evidence(t *testing.T, guess, code string) Evidence {
	t.Helper()
	ev, err := Interpret(MustParseWord(guess), MustParseFeedback(code))
	require.NoError(t, err)
	return ev
}

func TestInterpret(t *testing.T) {
	ev := evidence(t, "speed", "papaa")
	assert.Equal(t, []byte{'P', 'E', 'D'}, ev.Absent)
	assert.Equal(t, []LetterAt{{Letter: 'S', Pos: 0}, {Letter: 'E', Pos: 2}}, ev.Present)
	assert.Empty(t, ev.Correct)
	assert.Equal(t, map[byte]int{'S': 1, 'E': 1}, ev.Good())
}

func TestInterpretDistinctAbsent(t *testing.T) {
	ev := evidence(t, "eerie", "aaaaa")
	assert.Equal(t, []byte{'E', 'R', 'I'}, ev.Absent)
	assert.Empty(t, ev.Good())
}

func TestInterpretRejectsInvalid(t *testing.T) {
	_, err := Interpret("crane", MustParseFeedback("aaaaa"))
	assert.Error(t, err, "lower-case word")

	_, err = Interpret("CRANE", Feedback{Absent, Absent, Absent})
	assert.Error(t, err, "short feedback")
}

func TestStrictAbsence(t *testing.T) {
	p := StrictAbsence(evidence(t, "crane", "aaaaa"))
	assert.True(t, p("MOIST"))
	assert.False(t, p("TOUCH"), "shares C")
	assert.False(t, p("SLATE"))

	// E is absent once but also present, so absence does not ban it.
	p = StrictAbsence(evidence(t, "speed", "papaa"))
	assert.True(t, p("ETHOS"))
	assert.False(t, p("PESTO"))
}

func TestCorrectPositions(t *testing.T) {
	p := CorrectPositions(evidence(t, "slate", "caaac"))
	assert.True(t, p("SHORE"))
	assert.False(t, p("HORSE"))
}

func TestPresentExclusion(t *testing.T) {
	p := PresentExclusion(evidence(t, "adieu", "paaaa"))
	assert.True(t, p("CRANE"))
	assert.False(t, p("ABOUT"))
}

func TestContainment(t *testing.T) {
	p := Containment(evidence(t, "adieu", "paapa"))
	assert.True(t, p("CRANE"))
	assert.False(t, p("MOIST"))
	assert.False(t, p("CHAMP"), "has A but no E")
}

func TestExactCount(t *testing.T) {
	ev := evidence(t, "eerie", "capac")
	assert.Equal(t, map[byte]int{'E': 2, 'R': 1}, ev.Good())

	p := ExactCount(ev)
	assert.True(t, p("ERASE"))
	assert.True(t, p("ERODE"))
	assert.False(t, p("ERENE"), "three E's")
	assert.False(t, p("RAZOR"), "no E")
}

// The guess repeats E but the secret has it once: one copy is Present, the
// other Absent, and only words with exactly one E survive.
func TestFilterDuplicateLetterSingle(t *testing.T) {
	ev := evidence(t, "speed", "papaa")
	got := Filter(words(t, "ethos", "ester", "cress", "spend", "those"), ev)
	assert.Equal(t, words(t, "ethos", "those"), got)
}

func TestFilterDuplicateLetterExact(t *testing.T) {
	ev := evidence(t, "eerie", "capac")
	cands := words(t, "erase", "erene", "erode", "eerie", "sense")
	got := Filter(cands, ev)
	assert.Equal(t, words(t, "erase", "erode"), got)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	cands := words(t, "moist", "crane", "joist", "slate", "hoist")
	snapshot := append([]Word(nil), cands...)

	got := Filter(cands, evidence(t, "crane", "aaaaa"))
	assert.Equal(t, words(t, "moist", "joist", "hoist"), got)
	assert.Equal(t, snapshot, cands)
}

func TestFilterIdempotent(t *testing.T) {
	cands := words(t, "crane", "slate", "adieu", "moist", "touch", "stale", "least")
	ev := evidence(t, "stale", "ppapp")
	once := Filter(cands, ev)
	twice := Filter(once, ev)
	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(once), len(cands))
	assert.Subset(t, cands, once)
}

func TestFilterFeedback(t *testing.T) {
	got, err := FilterFeedback(words(t, "crane", "moist"), "CRANE", MustParseFeedback("aaaaa"))
	require.NoError(t, err)
	assert.Equal(t, words(t, "moist"), got)

	_, err = FilterFeedback(nil, "CRANE", Feedback{})
	assert.Error(t, err)
}
