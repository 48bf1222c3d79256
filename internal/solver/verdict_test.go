package solver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedback(t *testing.T) {
	fb, err := ParseFeedback("apcAC")
	require.NoError(t, err)
	assert.Equal(t, Feedback{Absent, Present, Correct, Absent, Correct}, fb)
	assert.Equal(t, "apcac", fb.String())

	alias, err := ParseFeedback("-~+xg")
	require.NoError(t, err)
	assert.Equal(t, Feedback{Absent, Present, Correct, Absent, Correct}, alias)

	for _, bad := range []string{"", "aaaa", "aaaaaa", "aaqaa"} {
		_, err := ParseFeedback(bad)
		assert.Error(t, err, bad)
	}
}

func TestFeedbackValidate(t *testing.T) {
	assert.NoError(t, MustParseFeedback("ccccc").Validate())
	assert.Error(t, Feedback{Absent, Absent}.Validate())
	assert.Error(t, Feedback{Absent, Absent, 0, Absent, Absent}.Validate())
	assert.Error(t, Feedback{Absent, Absent, Verdict(9), Absent, Absent}.Validate())
}

func TestFeedbackSolved(t *testing.T) {
	assert.True(t, AllCorrect().Solved())
	assert.True(t, MustParseFeedback("ccccc").Solved())
	assert.False(t, MustParseFeedback("ccccp").Solved())
	assert.False(t, Feedback{Correct, Correct}.Solved())
}

func TestVerdictText(t *testing.T) {
	var v Verdict
	require.NoError(t, v.UnmarshalText([]byte("Present")))
	assert.Equal(t, Present, v)
	require.NoError(t, v.UnmarshalText([]byte("miss")))
	assert.Equal(t, Absent, v)
	require.NoError(t, v.UnmarshalText([]byte("g")))
	assert.Equal(t, Correct, v)
	assert.Error(t, v.UnmarshalText([]byte("maybe")))

	_, err := Verdict(0).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "invalid", Verdict(0).String())
}

func TestFeedbackJSON(t *testing.T) {
	type payload struct {
		Feedback Feedback `json:"feedback"`
	}
	b, err := json.Marshal(payload{Feedback: MustParseFeedback("cpaac")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"feedback":"cpaac"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"feedback":"+~--+"}`), &p))
	assert.Equal(t, MustParseFeedback("cpaac"), p.Feedback)

	assert.Error(t, json.Unmarshal([]byte(`{"feedback":"cc"}`), &p))
}
