// internal/mask/mask.go
//
// Mask is one unit of accumulated knowledge about the secret, built from the
// scored result of a guess. Masks combine with conflict detection, transform
// into an information-seeking variant, and filter word collections.
//
// Masks are value types: combining operations always return new masks and
// never mutate their operands.

package mask

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robalobadob/wordle-helper/internal/words"
)

// Mask captures four dimensions of knowledge from one or more guesses:
//   - Correct: green slots, 1-indexed position → required letter.
//   - Forbidden: yellow slots, position → letters known not to be there.
//   - Excluded: black letters that appear nowhere in the secret.
//   - Caps: letters present in the secret but fewer times than guessed,
//     letter → maximum occurrence count.
//
// The zero Mask carries no constraints and is the identity for Merge.
type Mask struct {
	Correct   map[int]byte
	Forbidden map[int]words.LetterSet
	Excluded  words.LetterSet
	Caps      map[byte]int
}

// ConflictError reports two masks whose knowledge contradicts; they cannot
// describe the same secret and must not be combined.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return "mask: masks conflict: " + e.Detail }

// Required returns the letters the secret must contain: every green letter
// plus every yellow letter.
func (m Mask) Required() words.LetterSet {
	var s words.LetterSet
	for _, c := range m.Correct {
		s = s.With(c)
	}
	for _, set := range m.Forbidden {
		s = s.Union(set)
	}
	return s
}

// Empty reports whether the mask carries no constraints at all.
func (m Mask) Empty() bool {
	return len(m.Correct) == 0 && len(m.Forbidden) == 0 && m.Excluded.Empty() && len(m.Caps) == 0
}

// FromGuessResult converts one scored guess into a mask.
//
// Black slots need care when the guessed word repeats a letter: a letter
// black in all of its occurrences is absent from the secret, but a letter
// with both black and non-black occurrences is present, just fewer times
// than guessed. The former becomes a global exclusion, the latter an
// occurrence cap at the letter's non-black count.
func FromGuessResult(guess words.Word, r Result) Mask {
	m := Mask{
		Correct:   make(map[int]byte),
		Forbidden: make(map[int]words.LetterSet),
		Caps:      make(map[byte]int),
	}
	for i := 0; i < words.WordLength; i++ {
		pos := i + 1
		c := guess.At(pos)
		switch r[i] {
		case Green:
			m.Correct[pos] = c
		case Yellow:
			m.Forbidden[pos] = m.Forbidden[pos].With(c)
		case Black:
			nonBlack := 0
			for j := 0; j < words.WordLength; j++ {
				if guess.At(j+1) == c && r[j] != Black {
					nonBlack++
				}
			}
			if nonBlack == 0 {
				m.Excluded = m.Excluded.With(c)
			} else {
				m.Caps[c] = nonBlack
			}
		}
	}
	return m
}

// Merge combines the knowledge of two masks into a new one, or fails with a
// ConflictError when they contradict: different letters demanded in the same
// position, a letter required by one but excluded by the other, or the same
// letter capped at different counts.
func Merge(a, b Mask) (Mask, error) {
	var slots []int
	for pos, c := range a.Correct {
		if o, ok := b.Correct[pos]; ok && o != c {
			slots = append(slots, pos)
		}
	}
	if len(slots) > 0 {
		sort.Ints(slots)
		return Mask{}, &ConflictError{
			Detail: fmt.Sprintf("different letters required in positions %v", slots),
		}
	}

	var clash words.LetterSet
	for _, c := range a.Correct {
		if b.Excluded.Has(c) {
			clash = clash.With(c)
		}
	}
	for _, c := range b.Correct {
		if a.Excluded.Has(c) {
			clash = clash.With(c)
		}
	}
	if !clash.Empty() {
		return Mask{}, &ConflictError{
			Detail: fmt.Sprintf("letters required by one mask and excluded by the other: %s", clash),
		}
	}

	for c, n := range a.Caps {
		if o, ok := b.Caps[c]; ok && o != n {
			return Mask{}, &ConflictError{
				Detail: fmt.Sprintf("letter %c capped at both %d and %d occurrences", c, n, o),
			}
		}
	}

	out := Mask{
		Correct:   make(map[int]byte, len(a.Correct)+len(b.Correct)),
		Forbidden: make(map[int]words.LetterSet, len(a.Forbidden)+len(b.Forbidden)),
		Excluded:  a.Excluded.Union(b.Excluded),
		Caps:      make(map[byte]int, len(a.Caps)+len(b.Caps)),
	}
	for pos, c := range a.Correct {
		out.Correct[pos] = c
	}
	for pos, c := range b.Correct {
		out.Correct[pos] = c
	}
	for pos, set := range a.Forbidden {
		out.Forbidden[pos] = out.Forbidden[pos].Union(set)
	}
	for pos, set := range b.Forbidden {
		out.Forbidden[pos] = out.Forbidden[pos].Union(set)
	}
	for c, n := range a.Caps {
		out.Caps[c] = n
	}
	for c, n := range b.Caps {
		out.Caps[c] = n
	}
	return out, nil
}

// MergeAll folds an ordered sequence of masks into one combined mask,
// stopping at the first mask that conflicts with the knowledge accumulated
// before it and naming that mask in the error.
func MergeAll(masks []Mask) (Mask, error) {
	if len(masks) == 0 {
		return Mask{}, nil
	}
	out := masks[0]
	for i, m := range masks[1:] {
		merged, err := Merge(out, m)
		if err != nil {
			return Mask{}, fmt.Errorf("mask: mask %d conflicts with the masks before it: %w", i+2, err)
		}
		out = merged
	}
	return out, nil
}

// InfoGuess returns the information-seeking version of the mask, for choosing
// guesses that maximize knowledge instead of trying to hit the secret.
//
// Solved positions stop being requirements: repeating a solved letter teaches
// nothing, so solved letters move into the global exclusions, and each solved
// slot instead forbids every known misplaced letter so the slot is not wasted
// on a letter that cannot be there. Occurrence caps carry through unchanged.
func (m Mask) InfoGuess() Mask {
	var yellows words.LetterSet
	for _, set := range m.Forbidden {
		yellows = yellows.Union(set)
	}

	out := Mask{
		Correct:   make(map[int]byte),
		Forbidden: make(map[int]words.LetterSet, len(m.Forbidden)+len(m.Correct)),
		Excluded:  m.Excluded,
		Caps:      make(map[byte]int, len(m.Caps)),
	}
	for pos, set := range m.Forbidden {
		out.Forbidden[pos] = set
	}
	for pos, c := range m.Correct {
		out.Forbidden[pos] = out.Forbidden[pos].Union(yellows)
		out.Excluded = out.Excluded.With(c)
	}
	for c, n := range m.Caps {
		out.Caps[c] = n
	}
	return out
}

// Accepts reports whether w satisfies every constraint in the mask. Pure:
// neither the mask nor the word is modified, so filtering is idempotent.
func (m Mask) Accepts(w words.Word) bool {
	if !m.Required().SubsetOf(w.Letters()) {
		return false
	}
	if w.Letters().Intersects(m.Excluded) {
		return false
	}
	for pos, c := range m.Correct {
		if w.At(pos) != c {
			return false
		}
	}
	for pos, set := range m.Forbidden {
		if set.Has(w.At(pos)) {
			return false
		}
	}
	for c, most := range m.Caps {
		if n := w.Count(c); n == 0 || n > most {
			return false
		}
	}
	return true
}

// Apply filters a collection by any number of masks. No masks leaves the
// collection unchanged; several masks are folded into one combined mask
// first, so the collection is walked once and contradictions surface before
// any filtering happens.
func Apply(c *words.Collection, masks []Mask) (*words.Collection, error) {
	switch len(masks) {
	case 0:
		return c, nil
	case 1:
		return c.Filter(masks[0].Accepts), nil
	}
	combined, err := MergeAll(masks)
	if err != nil {
		return nil, err
	}
	return c.Filter(combined.Accepts), nil
}

func (m Mask) String() string {
	var parts []string

	positions := make([]int, 0, len(m.Correct))
	for pos := range m.Correct {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		parts = append(parts, fmt.Sprintf("%c in position %d", m.Correct[pos], pos))
	}

	positions = positions[:0]
	for pos := range m.Forbidden {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		for _, c := range m.Forbidden[pos].Letters() {
			parts = append(parts, fmt.Sprintf("not %c in position %d", c, pos))
		}
	}

	for _, c := range m.Excluded.Letters() {
		parts = append(parts, fmt.Sprintf("%c nowhere", c))
	}

	caps := make([]int, 0, len(m.Caps))
	for c := range m.Caps {
		caps = append(caps, int(c))
	}
	sort.Ints(caps)
	for _, c := range caps {
		parts = append(parts, fmt.Sprintf("at most %d of %c", m.Caps[byte(c)], byte(c)))
	}

	if len(parts) == 0 {
		return "no constraints"
	}
	return "word must have " + strings.Join(parts, " and ")
}
