// internal/httpserver/server.go
//
// HTTP wiring for the wordle-helper backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints: POST /session/new issues a signed token; the rest
//     of /session/* requires it (add guess, reset, list, suggest, reload).
//   - Solve endpoints: POST /solve plays one secret autonomously; batch
//     endpoints are mounted under /batch.
//
// Notes:
//   - Session tokens are HS256 JWTs carrying only the session ID; there are
//     no user accounts.
//   - CORS is origin-aware and credentials-enabled.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/history"
	"github.com/robalobadob/wordle-helper/internal/mask"
	"github.com/robalobadob/wordle-helper/internal/session"
	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// Server bundles router, session store, batch history, and the vocabulary.
type Server struct {
	r       *chi.Mux
	store   store.Store
	history *history.Store
	vocab   *words.Collection
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, hist *history.Store, vocab *words.Collection) *Server {
	s := &Server{r: chi.NewRouter(), store: st, history: hist, vocab: vocab}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(60 * time.Second)) // batch runs need headroom
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-helper","endpoints":["/health","POST /session/new","POST /solve","POST /batch"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"words":    s.vocab.Len(),
			"checksum": s.vocab.Checksum(),
		})
	})

	// Session command surface.
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireSession())
		r.Post("/session/guess", s.handleAddGuess)
		r.Post("/session/reset", s.handleReset)
		r.Get("/session/guesses", s.handleGuesses)
		r.Get("/session/suggest", s.handleSuggest)
		r.Post("/session/reload", s.handleReload)
	})

	// Autonomous solving.
	s.r.Post("/solve", s.handleSolve)
	s.mountBatch(s.r)

	// JSON 404 for easier debugging.
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- sessions ------------------------------------

type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// handleNewSession creates a helper session over the current vocabulary and
// returns a signed token for the /session/* endpoints.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	id := genID()
	sess := session.New(id, s.vocab)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := signSessionToken(id)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newSessionRes{
		SessionID: id,
		Token:     tok,
		ExpiresAt: exp.UTC().Format(time.RFC3339),
	})
}

type addGuessReq struct {
	Word   string `json:"word"`
	Result string `json:"result"`
}

// handleAddGuess folds one reported guess into the session.
func (s *Server) handleAddGuess(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	var req addGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if err := sess.AddGuess(req.Word, req.Result); err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]int{"guesses": len(sess.Records())})
}

// handleReset clears the session's accumulated guesses.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).Reset()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleGuesses lists the session's guesses in order.
func (s *Server) handleGuesses(w http.ResponseWriter, r *http.Request) {
	type row struct {
		Word   string `json:"word"`
		Result string `json:"result"`
	}
	records := sessionFrom(r).Records()
	out := make([]row, len(records))
	for i, rec := range records {
		out[i] = row{Word: rec.Word.String(), Result: rec.Result.String()}
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleSuggest ranks next-guess candidates.
// Query params: mode=solve|info (default solve), limit=N (default 15).
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	mode := session.ModeSolve
	if v := r.URL.Query().Get("mode"); v != "" {
		mode = session.Mode(v)
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	suggestions, err := sessionFrom(r).Suggest(mode, limit)
	if err != nil {
		var conflict *mask.ConflictError
		if errors.As(err, &conflict) {
			http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestions)
}

// handleReload re-reads the vocabulary for this session.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	changed, err := sess.Reload()
	if err != nil {
		http.Error(w, `{"error":"reload_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"changed": changed,
		"words":   sess.Vocabulary().Len(),
	})
}

// ------------------------------ solving ------------------------------------

type solveReq struct {
	Secret   string `json:"secret"`
	Starting string `json:"starting"` // optional fixed opening guess
}

type solveStep struct {
	Guess  string `json:"guess"`
	Result string `json:"result"`
}

type solveRes struct {
	Secret  string      `json:"secret"`
	State   string      `json:"state"`
	Guesses int         `json:"guesses"`
	Steps   []solveStep `json:"steps"`
}

// handleSolve plays one secret autonomously and returns the guess trace.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	secret, err := words.Parse(req.Secret)
	if err != nil {
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}
	var starting words.Word
	if req.Starting != "" {
		if starting, err = words.Parse(req.Starting); err != nil {
			http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
			return
		}
	}

	sol, err := solver.Solve(secret, s.vocab, starting)
	if err != nil {
		var stuck *solver.UnsolvableError
		if errors.As(err, &stuck) {
			writeUnsolvable(w, stuck)
			return
		}
		http.Error(w, `{"error":`+strconv.Quote(err.Error())+`}`, http.StatusBadRequest)
		return
	}

	res := solveRes{Secret: secret.String(), State: sol.State.String(), Guesses: sol.Guesses}
	for _, step := range sol.Steps {
		res.Steps = append(res.Steps, solveStep{Guess: step.Guess.String(), Result: step.Result.String()})
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeUnsolvable reports a stuck solve with its full diagnostics.
func writeUnsolvable(w http.ResponseWriter, e *solver.UnsolvableError) {
	masks := make([]string, len(e.Masks))
	for i, m := range e.Masks {
		masks[i] = m.String()
	}
	candidates := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		candidates[i] = c.String()
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":      "unsolvable",
		"secret":     e.Secret.String(),
		"masks":      masks,
		"candidates": candidates,
	})
}

// --------------------------- session tokens --------------------------------

// ctxSessionKey is the context key type for storing the resolved session.
type ctxSessionKey struct{}

// sessionFrom returns the session placed in context by requireSession.
func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*session.Session)
	return sess
}

// signSessionToken creates an HS256 JWT carrying the session ID, with a
// configurable expiry (SESSION_EXPIRES_HOURS; default 24).
func signSessionToken(id string) (string, time.Time, error) {
	hours := 24
	if v := os.Getenv("SESSION_EXPIRES_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			hours = n
		}
	}
	exp := time.Now().Add(time.Duration(hours) * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString([]byte(getEnv("JWT_SECRET", "dev_secret_change_me")))
	return ss, exp, err
}

// requireSession enforces a valid session token and injects the session into
// the request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(getEnv("JWT_SECRET", "dev_secret_change_me")), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			id, _ := claims["sid"].(string)
			if id == "" {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			sess, err := s.store.Get(r.Context(), id)
			if err != nil {
				http.Error(w, `{"error":"Session not found"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ------------------------------- small util --------------------------------

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
