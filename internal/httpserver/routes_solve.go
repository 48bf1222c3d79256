// internal/httpserver/routes_solve.go
//
// HTTP routes for solve sessions, mounted under /solve:
//   - POST   /solve/new      → start a session, return the first suggestion
//   - POST   /solve/feedback → apply feedback for a guess, return the next suggestion
//   - GET    /solve/{id}     → session snapshot (state, history, candidates)
//   - DELETE /solve/{id}     → abandon a session
//   - POST   /solve/analyze  → stateless replay of a list of turns
//
// The client plays the role of the feedback provider: it reports the
// verdicts the game showed for each guess.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// maxListed bounds how many candidates a response lists in full.
const maxListed = 50

// defaultTop is how many ranked suggestions are returned when not requested.
const defaultTop = 5

// mountSolve registers all /solve routes.
func (s *Server) mountSolve(r chi.Router) {
	r.Route("/solve", func(r chi.Router) {
		r.With(s.limiter.middleware).Post("/new", s.handleNew)
		r.With(s.limiter.middleware).Post("/feedback", s.handleFeedback)
		r.With(s.limiter.middleware).Post("/analyze", s.handleAnalyze)
		r.Get("/{id}", s.handleGet)
		r.Delete("/{id}", s.handleDelete)
	})
}

// snapshot is the common response shape for session state.
type snapshot struct {
	SessionID  string          `json:"sessionId,omitempty"`
	State      solver.State    `json:"state"`
	Attempts   int             `json:"attempts"`
	Suggestion solver.Word     `json:"suggestion,omitempty"`
	Top        []solver.Scored `json:"top,omitempty"`
	Remaining  int             `json:"remaining"`
	Candidates []solver.Word   `json:"candidates,omitempty"`
	History    []solver.Turn   `json:"history"`
	Message    string          `json:"message,omitempty"`
}

// describe fills the snapshot for sess, suggesting the next guess if the
// session is still open.
func describe(sess *solver.Session, top int) (snapshot, error) {
	snap := snapshot{
		Attempts: sess.Attempts(),
		History:  sess.History(),
	}
	cands := sess.Candidates()
	snap.Remaining = len(cands)
	if len(cands) <= maxListed {
		snap.Candidates = cands
	}
	if !sess.State().Terminal() {
		w, err := sess.Suggest()
		if err != nil {
			return snap, err
		}
		snap.Suggestion = w
		if top > 0 {
			snap.Top = solver.Rank(cands, sess.Table(), top)
		}
	}
	snap.State = sess.State()
	snap.Message = message(sess)
	return snap, nil
}

// message renders the terminal outcome for display.
func message(sess *solver.Session) string {
	switch sess.State() {
	case solver.StateSolved:
		res := sess.Result()
		w, _ := res.Solution()
		return "solved " + string(w)
	case solver.StateContradiction:
		return solver.ErrContradiction.Error()
	case solver.StateExhausted:
		return solver.ErrExhausted.Error()
	}
	return ""
}

// -----------------------------------------------------------------------------
// /solve/new

type newReq struct {
	FirstGuess string `json:"firstGuess"` // optional forced opener
	Top        int    `json:"top"`        // ranked suggestions to include
}

type newRes struct {
	snapshot
	Token string `json:"token"`
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	var opts []solver.Option
	if req.FirstGuess != "" {
		first, err := solver.ParseWord(req.FirstGuess)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_word", err.Error())
			return
		}
		opts = append(opts, solver.WithFirstGuess(first))
	}
	sess, err := solver.NewSession(s.dict, opts...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed", err.Error())
		return
	}
	entry, err := s.store.Create(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	tok, _, err := s.tokens.sign(entry.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed", "")
		return
	}

	var snap snapshot
	err = entry.Do(func(sess *solver.Session) error {
		var derr error
		snap, derr = describe(sess, topOrDefault(req.Top))
		return derr
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "suggest_failed", err.Error())
		return
	}
	snap.SessionID = entry.ID
	log.Info().Str("sessionId", entry.ID).Str("suggestion", string(snap.Suggestion)).Msg("session started")
	_ = json.NewEncoder(w).Encode(newRes{snapshot: snap, Token: tok})
}

// -----------------------------------------------------------------------------
// /solve/feedback

type feedbackReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`    // defaults to the last suggestion
	Feedback  string `json:"feedback"` // e.g. "aapcc"
	Top       int    `json:"top"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	entry, ok := s.authorized(w, r, req.SessionID)
	if !ok {
		return
	}
	fb, err := solver.ParseFeedback(req.Feedback)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_feedback", err.Error())
		return
	}

	var snap snapshot
	var status int
	err = entry.Do(func(sess *solver.Session) error {
		guess, perr := s.guessFor(sess, req.Guess)
		if perr != nil {
			status = http.StatusBadRequest
			return perr
		}
		if _, aerr := sess.Apply(guess, fb); aerr != nil {
			status = statusFor(aerr)
			return aerr
		}
		var derr error
		snap, derr = describe(sess, topOrDefault(req.Top))
		return derr
	})
	if err != nil {
		if status == 0 {
			status = http.StatusInternalServerError
		}
		writeError(w, status, codeFor(err), err.Error())
		return
	}
	snap.SessionID = entry.ID
	log.Info().
		Str("sessionId", entry.ID).
		Str("feedback", fb.String()).
		Str("state", string(snap.State)).
		Int("remaining", snap.Remaining).
		Msg("feedback applied")
	_ = json.NewEncoder(w).Encode(snap)
}

// guessFor resolves the guess a feedback request refers to.
func (s *Server) guessFor(sess *solver.Session, raw string) (solver.Word, error) {
	if raw != "" {
		return solver.ParseWord(raw)
	}
	if w, ok := sess.Pending(); ok {
		return w, nil
	}
	return "", &solver.ValidationError{Field: "guess", Value: "", Reason: "required when no suggestion is pending"}
}

// -----------------------------------------------------------------------------
// /solve/{id}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.authorized(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var snap snapshot
	_ = entry.Do(func(sess *solver.Session) error {
		res := sess.Result()
		snap = snapshot{
			State:     res.State,
			Attempts:  res.Attempts,
			Remaining: len(res.Candidates),
			History:   res.History,
			Message:   message(sess),
		}
		if len(res.Candidates) <= maxListed {
			snap.Candidates = res.Candidates
		}
		snap.Suggestion, _ = sess.Pending()
		return nil
	})
	snap.SessionID = entry.ID
	_ = json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.authorized(w, r, id); !ok {
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// /solve/analyze

type turnReq struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

type analyzeReq struct {
	Turns []turnReq `json:"turns"`
	Top   int       `json:"top"`
}

// handleAnalyze replays turns on a throwaway session. Nothing is stored.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	sess, err := solver.NewSession(s.dict)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed", err.Error())
		return
	}
	for _, t := range req.Turns {
		guess, err := solver.ParseWord(t.Guess)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_word", err.Error())
			return
		}
		fb, err := solver.ParseFeedback(t.Feedback)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_feedback", err.Error())
			return
		}
		if _, err := sess.Apply(guess, fb); err != nil {
			writeError(w, statusFor(err), codeFor(err), err.Error())
			return
		}
	}
	snap, err := describe(sess, topOrDefault(req.Top))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "suggest_failed", err.Error())
		return
	}
	_ = json.NewEncoder(w).Encode(snap)
}

// -----------------------------------------------------------------------------
// helpers

// authorized loads the session and checks the bearer token for it.
// It writes the error response itself and reports false on failure.
func (s *Server) authorized(w http.ResponseWriter, r *http.Request, id string) (*store.Entry, bool) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_session", "")
		return nil, false
	}
	if err := s.tokens.verify(bearer(r), id); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_token", "")
		return nil, false
	}
	entry, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "")
		return nil, false
	}
	return entry, true
}

func topOrDefault(n int) int {
	if n <= 0 {
		return defaultTop
	}
	return n
}

// statusFor maps solver errors to HTTP status codes.
func statusFor(err error) int {
	var verr *solver.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrSessionOver):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// codeFor maps solver errors to error codes.
func codeFor(err error) string {
	var verr *solver.ValidationError
	switch {
	case errors.As(err, &verr):
		return "invalid_" + verr.Field
	case errors.Is(err, solver.ErrSessionOver):
		return "session_over"
	}
	return "server_error"
}
