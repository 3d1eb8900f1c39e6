// internal/solver/batch.go
//
// Batch runner: solve every vocabulary word as the secret and aggregate
// guess-count statistics. Per-secret solves are independent, so they run on
// errgroup workers; the vocabulary is shared read-only and each worker keeps
// its own candidate state inside Solve.

package solver

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-helper/internal/words"
)

// HistogramBuckets is the number of guess-count buckets: 1 through 6
// guesses, plus one bucket for anything over 6.
const HistogramBuckets = 7

// Histogram buckets solve outcomes by guess count. Index i counts solves
// that took i+1 guesses; the last bucket counts solves over 6 guesses.
type Histogram [HistogramBuckets]int

func (h *Histogram) add(guesses int) {
	if guesses > HistogramBuckets-1 {
		h[HistogramBuckets-1]++
		return
	}
	h[guesses-1]++
}

// Total returns the number of solves counted across all buckets.
func (h Histogram) Total() int {
	n := 0
	for _, v := range h {
		n += v
	}
	return n
}

// Outcome is the result of solving one secret during a batch run.
type Outcome struct {
	Secret  words.Word
	Guesses int
	Err     error
}

// BatchResult aggregates a full solve-all run.
type BatchResult struct {
	Starting   words.Word
	Histogram  Histogram
	MaxGuesses int
	Hardest    []words.Word // words that needed MaxGuesses
	Failed     []words.Word // secrets that hit an unsolvable state
}

// SolveAll solves every vocabulary word as the secret, reusing one
// precomputed starting guess for all of them.
//
// onSolve, when non-nil, is called once per completed secret; calls may come
// from multiple goroutines concurrently. A canceled context abandons the
// run and returns the context error.
func SolveAll(ctx context.Context, vocab *words.Collection, onSolve func(Outcome)) (*BatchResult, error) {
	starting, ok := vocab.Best()
	if !ok {
		return nil, ErrEmptyVocabulary
	}

	res := &BatchResult{Starting: starting}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, secret := range vocab.Words() {
		secret := secret
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := Outcome{Secret: secret}
			sol, err := Solve(secret, vocab, starting)
			if err != nil {
				out.Err = err
			} else {
				out.Guesses = sol.Guesses
			}

			mu.Lock()
			if err != nil {
				res.Failed = append(res.Failed, secret)
			} else {
				res.Histogram.add(sol.Guesses)
				switch {
				case sol.Guesses > res.MaxGuesses:
					res.MaxGuesses = sol.Guesses
					res.Hardest = append(res.Hardest[:0], secret)
				case sol.Guesses == res.MaxGuesses:
					res.Hardest = append(res.Hardest, secret)
				}
			}
			mu.Unlock()

			if onSolve != nil {
				onSolve(out)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortWords(res.Hardest)
	sortWords(res.Failed)
	return res, nil
}

func sortWords(list []words.Word) {
	sort.Slice(list, func(i, j int) bool { return list[i].String() < list[j].String() })
}
