// internal/mask/result.go
//
// Per-letter result codes for a scored guess, and parsing of the 5-symbol
// g/y/b encoding players report back from the game.

package mask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-helper/internal/words"
)

// Code is the evaluation result for a single letter in a guess.
// Possible values:
//   - Green:  correct letter in the correct position.
//   - Yellow: letter exists in the secret but in a different position.
//   - Black:  letter absent, or all of its occurrences already claimed.
type Code byte

const (
	Black Code = iota
	Yellow
	Green
)

func (c Code) String() string {
	switch c {
	case Green:
		return "g"
	case Yellow:
		return "y"
	default:
		return "b"
	}
}

// Result is the positional outcome of scoring one full guess.
type Result [words.WordLength]Code

var (
	ErrResultLength = errors.New("mask: result must have exactly five symbols")
	ErrResultSymbol = errors.New("mask: result symbols must be g, y, or b")
)

// ParseResult reads a 5-symbol sequence over {g, y, b}, case-insensitively.
// Every unknown symbol in the input is reported, not just the first.
func ParseResult(s string) (Result, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != words.WordLength {
		return Result{}, fmt.Errorf("%w: %q", ErrResultLength, s)
	}
	var r Result
	var bad []string
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g':
			r[i] = Green
		case 'y':
			r[i] = Yellow
		case 'b':
			r[i] = Black
		default:
			bad = append(bad, fmt.Sprintf("%q", s[i]))
		}
	}
	if len(bad) > 0 {
		return Result{}, fmt.Errorf("%w: found %s", ErrResultSymbol, strings.Join(bad, ", "))
	}
	return r, nil
}

func (r Result) String() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteString(c.String())
	}
	return b.String()
}

// AllGreen reports whether every slot is an exact match.
func (r Result) AllGreen() bool {
	for _, c := range r {
		if c != Green {
			return false
		}
	}
	return true
}
