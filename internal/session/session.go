// internal/session/session.go
//
// A Session is one player's helper state: the vocabulary plus the guesses
// they have reported so far. It answers the command surface the helper
// exposes: add a guess, reset, list guesses, suggest next words, reload
// the vocabulary.

package session

import (
	"fmt"
	"sync"

	"github.com/robalobadob/wordle-helper/internal/mask"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// Mode selects what a suggestion optimizes for.
type Mode string

const (
	// ModeSolve ranks words that could be the secret.
	ModeSolve Mode = "solve"
	// ModeInfo ranks words that would reveal the most new letters.
	ModeInfo Mode = "info"
)

// DefaultSuggestions is how many ranked words Suggest returns when the
// caller does not say.
const DefaultSuggestions = 15

// Record is one guess the player reported, with its parsed result.
type Record struct {
	Word   words.Word
	Result mask.Result
}

// Suggestion is one ranked candidate for the next guess.
type Suggestion struct {
	Word        string  `json:"word"`
	Score       float64 `json:"score"`       // against the filtered candidate set
	GlobalScore float64 `json:"globalScore"` // against the global frequency table
}

// Session accumulates reported guesses and answers suggestion queries.
// Safe for concurrent use.
type Session struct {
	ID string

	mu      sync.Mutex
	vocab   *words.Collection
	records []Record
	masks   []mask.Mask
}

// New creates a session over the given vocabulary.
func New(id string, vocab *words.Collection) *Session {
	return &Session{ID: id, vocab: vocab}
}

// AddGuess parses and validates a guessed word and its reported g/y/b
// result, then folds them into the session's accumulated knowledge.
func (s *Session) AddGuess(word, result string) error {
	w, err := words.Parse(word)
	if err != nil {
		return err
	}
	r, err := mask.ParseResult(result)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Record{Word: w, Result: r})
	s.masks = append(s.masks, mask.FromGuessResult(w, r))
	return nil
}

// Reset clears every accumulated guess and mask. The vocabulary stays.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.masks = nil
}

// Records returns a copy of the guesses reported so far, in order.
func (s *Session) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Suggest filters the vocabulary by the accumulated masks and returns the
// top candidates ranked by score against the filtered set. ModeInfo swaps in
// each mask's information-seeking version to propose exploratory guesses
// instead of likely secrets.
func (s *Session) Suggest(mode Mode, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		limit = DefaultSuggestions
	}

	s.mu.Lock()
	vocab := s.vocab
	masks := make([]mask.Mask, len(s.masks))
	copy(masks, s.masks)
	s.mu.Unlock()

	switch mode {
	case ModeSolve:
	case ModeInfo:
		for i, m := range masks {
			masks[i] = m.InfoGuess()
		}
	default:
		return nil, fmt.Errorf("session: unknown suggestion mode %q", mode)
	}

	filtered, err := mask.Apply(vocab, masks)
	if err != nil {
		return nil, err
	}

	ranked := filtered.Rank(limit)
	out := make([]Suggestion, len(ranked))
	for i, r := range ranked {
		out[i] = Suggestion{Word: r.Word.String(), Score: r.Score, GlobalScore: r.GlobalScore}
	}
	return out, nil
}

// Vocabulary returns the session's current vocabulary.
func (s *Session) Vocabulary() *words.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vocab
}

// Reload swaps in a freshly loaded vocabulary and reports whether its
// contents actually changed. Accumulated guesses are kept.
func (s *Session) Reload() (changed bool, err error) {
	c, err := words.Load()
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed = c.Checksum() != s.vocab.Checksum()
	s.vocab = c
	return changed, nil
}
