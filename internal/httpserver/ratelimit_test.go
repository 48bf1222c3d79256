package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:50123"
	assert.Equal(t, "203.0.113.7", clientKey(r))

	r.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientKey(r))

	// RealIP rewrites RemoteAddr to a bare IP
	r.RemoteAddr = "198.51.100.2"
	assert.Equal(t, "198.51.100.2", clientKey(r))
}

func TestLimiterIgnoresSourcePort(t *testing.T) {
	l := newLimiter(1, 1)
	h := l.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var codes []int
	for port := 40000; port < 40005; port++ {
		r := httptest.NewRequest(http.MethodPost, "/solve/new", nil)
		r.RemoteAddr = "203.0.113.7:" + strconv.Itoa(port)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 429, 429, 429, 429}, codes)
	assert.Equal(t, 1, l.size())
}

func TestLimiterPrune(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newLimiter(5, 10)
	l.now = func() time.Time { return now }

	l.get("203.0.113.7")
	now = now.Add(time.Hour)
	l.get("198.51.100.2")

	assert.Equal(t, 1, l.prune(30*time.Minute))
	assert.Equal(t, 1, l.size())
	assert.Equal(t, 0, l.prune(30*time.Minute))
}

func TestSweepPrunesLimiters(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/solve/analyze", "", analyzeReq{})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, s.limiter.size())

	s.sweepOnce(context.Background(), -time.Second)
	assert.Equal(t, 0, s.limiter.size())
}
