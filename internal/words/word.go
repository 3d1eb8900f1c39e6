// internal/words/word.go
//
// Word is the validated vocabulary value everything else operates on.
// Responsibilities:
//   - Parse raw strings into normalized 5-letter words (the only entry point).
//   - Precompute letter composition (counts, unique-letter set) so mask
//     checks never rescan the string.
//   - Score words against letter-frequency tables.

package words

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// WordLength is the fixed length of every vocabulary word.
const WordLength = 5

var (
	ErrWordLength = errors.New("words: word must have exactly five letters")
	ErrWordChar   = errors.New("words: word must contain only letters a-z")
)

// FrequencyTable assigns a weight to each letter a-z. Index 0 is 'a'.
type FrequencyTable [26]float64

// GlobalFrequencies is the fixed English letter-frequency table used to score
// words before any collection-specific statistics exist.
var GlobalFrequencies = FrequencyTable{
	0.07852, // a
	0.02495, // b
	0.03281, // c
	0.04359, // d
	0.10704, // e
	0.01983, // f
	0.02473, // g
	0.02681, // h
	0.05582, // i
	0.00362, // j
	0.02168, // k
	0.05410, // l
	0.02932, // m
	0.04544, // n
	0.06474, // o
	0.03246, // p
	0.00208, // q
	0.06624, // r
	0.10532, // s
	0.05410, // t
	0.03793, // u
	0.01113, // v
	0.01762, // w
	0.00464, // x
	0.03074, // y
	0.00477, // z
}

// Word is a single vocabulary entry. Immutable after Parse; two Words are
// equal iff their text is equal, so Word values are directly comparable.
type Word struct {
	text   string
	counts [26]int
	set    LetterSet
	score  float64
}

// Parse normalizes (trim, lowercase) and validates a raw string into a Word.
// This is the parse boundary: everything past it works with Word values only.
func Parse(s string) (Word, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLength {
		return Word{}, fmt.Errorf("%w: %q", ErrWordLength, s)
	}
	var w Word
	for i := 0; i < WordLength; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return Word{}, fmt.Errorf("%w: %q", ErrWordChar, s)
		}
		w.counts[c-'a']++
		w.set = w.set.With(c)
	}
	w.text = s
	w.score = w.ScoreAgainst(GlobalFrequencies)
	return w, nil
}

// MustParse panics on invalid input. For wiring and tests.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return w.text }

// At returns the letter in 1-indexed position pos (1..5).
func (w Word) At(pos int) byte { return w.text[pos-1] }

// Has reports whether the word contains letter c anywhere.
func (w Word) Has(c byte) bool { return w.set.Has(c) }

// Count returns how many times letter c occurs in the word.
func (w Word) Count(c byte) int { return w.counts[c-'a'] }

// Letters returns the set of unique letters in the word.
func (w Word) Letters() LetterSet { return w.set }

// Score is the word's precomputed score against GlobalFrequencies.
func (w Word) Score() float64 { return w.score }

// ScoreAgainst sums the table weight of each unique letter, expressed as a
// percentage rounded to three decimals.
func (w Word) ScoreAgainst(table FrequencyTable) float64 {
	var sum float64
	for i := 0; i < 26; i++ {
		if w.set.Has(byte('a' + i)) {
			sum += table[i]
		}
	}
	return math.Round(sum*100*1000) / 1000
}
