// internal/httpserver/routes_batch.go
//
// HTTP routes for batch solve-all runs.
// Exposes three endpoints under /batch:
//   - POST /batch          → solve every vocabulary word, persist, summarize
//   - GET  /batch/hardest  → solved words with the highest guess counts
//   - GET  /batch/runs     → recent run summaries
//
// A run solves the whole vocabulary with one shared starting guess; results
// are written to SQLite so hardest-word queries survive restarts.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/history"
	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// batchServer wraps dependencies for /batch endpoints.
type batchServer struct {
	srv   *Server
	store *history.Store
}

// mountBatch registers all /batch routes.
func (s *Server) mountBatch(r chi.Router) {
	b := &batchServer{srv: s, store: s.history}
	r.Route("/batch", func(r chi.Router) {
		r.Post("/", b.handleRun)
		r.Get("/hardest", b.handleHardest)
		r.Get("/runs", b.handleRuns)
	})
}

// batchRes is the summary returned by POST /batch.
type batchRes struct {
	RunID      string   `json:"runId"`
	Starting   string   `json:"startingWord"`
	Words      int      `json:"words"`
	Histogram  []int    `json:"histogram"` // buckets 1..6 guesses, then >6
	MaxGuesses int      `json:"maxGuesses"`
	Hardest    []string `json:"hardest"`
	Failed     []string `json:"failed"`
}

// handleRun solves every vocabulary word as the secret and persists the run.
func (b *batchServer) handleRun(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	runID := genID()

	var mu sync.Mutex
	var outcomes []history.WordRow
	res, err := solver.SolveAll(r.Context(), b.srv.vocab, func(o solver.Outcome) {
		mu.Lock()
		outcomes = append(outcomes, history.WordRow{
			RunID:   runID,
			Word:    o.Secret.String(),
			Guesses: o.Guesses,
			Solved:  o.Err == nil,
		})
		mu.Unlock()
	})
	if err != nil {
		log.Error().Err(err).Msg("batch run")
		http.Error(w, `{"error":"batch_failed"}`, http.StatusInternalServerError)
		return
	}

	run := history.Run{
		ID:         runID,
		StartedAt:  started,
		Starting:   res.Starting.String(),
		Words:      b.srv.vocab.Len(),
		Solved:     res.Histogram.Total(),
		Failed:     len(res.Failed),
		MaxGuesses: res.MaxGuesses,
	}
	// Persist best effort; the summary is still worth returning on failure.
	if err := b.store.InsertRun(r.Context(), run, outcomes); err != nil {
		log.Warn().Err(err).Str("runId", runID).Msg("persist batch run")
	}

	out := batchRes{
		RunID:      runID,
		Starting:   res.Starting.String(),
		Words:      run.Words,
		Histogram:  res.Histogram[:],
		MaxGuesses: res.MaxGuesses,
		Hardest:    wordStrings(res.Hardest),
		Failed:     wordStrings(res.Failed),
	}
	log.Info().
		Str("runId", runID).
		Int("words", run.Words).
		Int("maxGuesses", res.MaxGuesses).
		Dur("elapsed", time.Since(started)).
		Msg("batch run complete")
	_ = json.NewEncoder(w).Encode(out)
}

// handleHardest returns the solved words with the highest guess counts.
func (b *batchServer) handleHardest(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	rows, err := b.store.HardestWords(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// handleRuns returns recent run summaries, newest first.
func (b *batchServer) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	runs, err := b.store.RecentRuns(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []history.Run{}
	}
	_ = json.NewEncoder(w).Encode(runs)
}

func wordStrings(list []words.Word) []string {
	out := make([]string, len(list))
	for i, w := range list {
		out[i] = w.String()
	}
	return out
}
