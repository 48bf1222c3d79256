package httpserver

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ti := newTokenIssuer([]byte("secret"), time.Hour)
	tok, exp, err := ti.sign("session-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	assert.NoError(t, ti.verify(tok, "session-1"))
	assert.ErrorIs(t, ti.verify(tok, "session-2"), errBadToken)
	assert.ErrorIs(t, ti.verify("", "session-1"), errBadToken)

	other := newTokenIssuer([]byte("other"), time.Hour)
	assert.ErrorIs(t, other.verify(tok, "session-1"), errBadToken)
}

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ti := newTokenIssuer([]byte("secret"), time.Hour)
	ti.now = func() time.Time { return now }
	tok, _, err := ti.sign("s")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	assert.ErrorIs(t, ti.verify(tok, "s"), errBadToken)
}

func TestBearer(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, bearer(r))
	r.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", bearer(r))
	r.Header.Set("Authorization", "bearer  xyz ")
	assert.Equal(t, "xyz", bearer(r))
	r.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, bearer(r))
}
