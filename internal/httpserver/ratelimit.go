package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitor is one client's token bucket and when it was last used.
type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

// limiter hands out one token bucket per client IP.
type limiter struct {
	mu    sync.Mutex
	rps   int
	burst int
	byKey map[string]*visitor
	now   func() time.Time
}

func newLimiter(rps, burst int) *limiter {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &limiter{rps: rps, burst: burst, byKey: make(map[string]*visitor), now: time.Now}
}

func (l *limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.byKey[key]; ok {
		v.seen = l.now()
		return v.lim
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(l.rps)), l.burst)
	l.byKey[key] = &visitor{lim: lim, seen: l.now()}
	return lim
}

// prune drops buckets unused for longer than maxIdle and reports how many.
func (l *limiter) prune(maxIdle time.Duration) int {
	cutoff := l.now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for k, v := range l.byKey {
		if v.seen.Before(cutoff) {
			delete(l.byKey, k)
			removed++
		}
	}
	return removed
}

func (l *limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}

// clientKey is the client IP without the port, so reconnecting from a new
// source port does not get a fresh bucket.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// middleware rejects clients that exceed their bucket with 429.
// RemoteAddr has already been rewritten by chi's RealIP when a proxy header is set.
func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.get(clientKey(r)).Allow() {
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
