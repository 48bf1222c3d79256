// internal/httpserver/server.go
//
// HTTP server wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, rate limiting).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solve endpoints: mounted under /solve (see routes_solve.go).
//   - Background sweep of idle sessions and rate-limit buckets.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Each solve session is addressed by its ID and guarded by a signed
//     session token (see token.go); there are no user accounts.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// Options configures a Server. Zero values fall back to defaults.
type Options struct {
	JWTSecret      string
	TokenTTL       time.Duration
	ClientOrigin   string
	RateLimitRPS   int
	RateLimitBurst int
	Source         string      // describes where the dictionary came from, for /debug/words
	Meta           *store.Meta // last SQLite import, when the dictionary is stored
}

// Server bundles router, session store and dictionary.
type Server struct {
	r       *chi.Mux
	store   store.Store
	dict    []solver.Word
	tokens  *tokenIssuer
	limiter *limiter
	opts    Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict []solver.Word, opts Options) *Server {
	if opts.JWTSecret == "" {
		opts.JWTSecret = "dev_secret_change_me"
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 2 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		dict:    dict,
		tokens:  newTokenIssuer([]byte(opts.JWTSecret), opts.TokenTTL),
		limiter: newLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
		opts:    opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve/new","POST /solve/feedback","GET /solve/{id}","POST /solve/analyze"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "sessions": s.store.Len()})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		res := map[string]any{"words": len(s.dict), "source": s.opts.Source}
		if s.opts.Meta != nil {
			res["imported"] = s.opts.Meta
		}
		_ = json.NewEncoder(w).Encode(res)
	})

	s.mountSolve(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Sweep removes sessions and rate-limit buckets idle for longer than ttl every
// interval until ctx ends.
func (s *Server) Sweep(ctx context.Context, interval, ttl time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweepOnce(ctx, ttl)
		}
	}
}

func (s *Server) sweepOnce(ctx context.Context, ttl time.Duration) {
	if n := s.store.Sweep(ctx, ttl); n > 0 {
		log.Info().Int("removed", n).Int("remaining", s.store.Len()).Msg("swept idle sessions")
	}
	if n := s.limiter.prune(ttl); n > 0 {
		log.Debug().Int("removed", n).Msg("pruned idle rate limiters")
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- util --------------------------------------

type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// writeError writes a JSON error body with status code.
func writeError(w http.ResponseWriter, code int, errCode, detail string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorRes{Error: errCode, Detail: detail})
}
