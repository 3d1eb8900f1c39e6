// internal/words/collection.go
//
// Collection is an ordered set of unique Words with letter-frequency
// statistics cached at construction time.
//
// Collections behave as values: filtering always produces a new collection
// and the cached frequency table is never mutated. The single exception is
// FrequencySort, which reorders (but never changes) the contents in place.

package words

import (
	"math"
	"sort"
)

// Collection holds unique Words in a meaningful display order, together with
// the derived letter-frequency table for its contents.
type Collection struct {
	words []Word
	freq  FrequencyTable
}

// NewCollection builds a collection from words, dropping duplicates while
// preserving first-seen order.
func NewCollection(list []Word) *Collection {
	seen := make(map[string]struct{}, len(list))
	out := make([]Word, 0, len(list))
	for _, w := range list {
		if _, ok := seen[w.text]; ok {
			continue
		}
		seen[w.text] = struct{}{}
		out = append(out, w)
	}
	return &Collection{words: out, freq: letterFrequency(out)}
}

// letterFrequency maps every letter a-z to the fraction of letter slots it
// occupies across the list, rounded to five decimals. All-zero for an empty
// list; for a non-empty list the fractions sum to 1.0 within rounding.
func letterFrequency(list []Word) FrequencyTable {
	var t FrequencyTable
	if len(list) == 0 {
		return t
	}
	var counts [26]int
	for _, w := range list {
		for i, n := range w.counts {
			counts[i] += n
		}
	}
	total := float64(len(list) * WordLength)
	for i, n := range counts {
		t[i] = math.Round(float64(n)/total*1e5) / 1e5
	}
	return t
}

// Len returns the number of words in the collection.
func (c *Collection) Len() int { return len(c.words) }

// At returns the word at index i in display order.
func (c *Collection) At(i int) Word { return c.words[i] }

// Words returns a copy of the collection's contents in display order.
func (c *Collection) Words() []Word {
	out := make([]Word, len(c.words))
	copy(out, c.words)
	return out
}

// Contains reports whether w is a member of the collection.
func (c *Collection) Contains(w Word) bool {
	for _, x := range c.words {
		if x == w {
			return true
		}
	}
	return false
}

// LetterFrequency returns the cached frequency table for this collection.
func (c *Collection) LetterFrequency() FrequencyTable { return c.freq }

// Filter returns a new collection holding the words keep accepts, in the
// same relative order. Statistics are recomputed for the new contents.
func (c *Collection) Filter(keep func(Word) bool) *Collection {
	out := make([]Word, 0, len(c.words))
	for _, w := range c.words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return &Collection{words: out, freq: letterFrequency(out)}
}

// Best returns the word scoring highest against this collection's own letter
// frequencies. Ties keep the earlier word, so the result is deterministic
// for a fixed ordering. ok is false for an empty collection.
func (c *Collection) Best() (best Word, ok bool) {
	bestScore := math.Inf(-1)
	for _, w := range c.words {
		if s := w.ScoreAgainst(c.freq); s > bestScore {
			best, bestScore, ok = w, s, true
		}
	}
	return best, ok
}

// FrequencySort reorders the collection in place, descending by score against
// its own letter frequencies. The sort is stable; contents and statistics
// are unchanged.
func (c *Collection) FrequencySort() {
	scores := make([]float64, len(c.words))
	for i, w := range c.words {
		scores[i] = w.ScoreAgainst(c.freq)
	}
	idx := make([]int, len(c.words))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	sorted := make([]Word, len(c.words))
	for i, j := range idx {
		sorted[i] = c.words[j]
	}
	copy(c.words, sorted)
}

// Ranked pairs a word with its score against the collection it was ranked in
// and against the global frequency table.
type Ranked struct {
	Word        Word
	Score       float64
	GlobalScore float64
}

// Rank returns the collection's words ranked descending by score against its
// own letter frequencies, truncated to limit (no truncation when limit <= 0).
func (c *Collection) Rank(limit int) []Ranked {
	out := make([]Ranked, len(c.words))
	for i, w := range c.words {
		out[i] = Ranked{Word: w, Score: w.ScoreAgainst(c.freq), GlobalScore: w.score}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
