// internal/words/letters.go
//
// LetterSet packs a set of the letters a-z into a 26-bit mask.
// Set operations reduce to single integer ops, which keeps mask filtering
// over large collections cheap.

package words

import "strings"

// LetterSet is a set of the letters a-z.
type LetterSet uint32

// With returns the set extended with letter c.
func (s LetterSet) With(c byte) LetterSet { return s | 1<<(c-'a') }

// Has reports whether letter c is in the set.
func (s LetterSet) Has(c byte) bool { return s&(1<<(c-'a')) != 0 }

// Union returns the set union of s and o.
func (s LetterSet) Union(o LetterSet) LetterSet { return s | o }

// SubsetOf reports whether every letter of s is in o.
func (s LetterSet) SubsetOf(o LetterSet) bool { return s&o == s }

// Intersects reports whether s and o share any letter.
func (s LetterSet) Intersects(o LetterSet) bool { return s&o != 0 }

// Empty reports whether the set has no letters.
func (s LetterSet) Empty() bool { return s == 0 }

// Letters returns the set's letters in ascending order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, 26)
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s LetterSet) String() string {
	var b strings.Builder
	for i, c := range s.Letters() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(c)
	}
	return b.String()
}
