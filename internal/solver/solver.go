// internal/solver/solver.go
//
// Autonomous solve loop: guess → score → mask → filter, with a frequency
// heuristic choosing each next guess. The loop balances exploration
// (information-seeking guesses while the candidate pool is wide) against
// exploitation (guessing likely secrets once the pool narrows).

package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-helper/internal/mask"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// State is the solve loop's coarse progress marker.
type State int

const (
	Guessing State = iota
	Solved
	Stuck
)

func (s State) String() string {
	switch s {
	case Solved:
		return "solved"
	case Stuck:
		return "stuck"
	default:
		return "guessing"
	}
}

// Thresholds for preferring an information-seeking guess: only explore while
// the solve pool is still wide and the info pool offers real choice.
const (
	exploreSolveMin = 20
	exploreInfoMin  = 10
)

// ErrEmptyVocabulary is returned when there is nothing to guess from.
var ErrEmptyVocabulary = errors.New("solver: vocabulary is empty")

// Step records one guess and its scored result.
type Step struct {
	Guess  words.Word
	Result mask.Result
}

// Solution describes a finished, successful solve.
type Solution struct {
	Secret  words.Word
	State   State
	Guesses int
	Steps   []Step
}

// UnsolvableError reports a solve attempt whose accumulated knowledge no
// longer fits any candidate: the pool is empty, or holds a single word that
// is not the secret. It carries full diagnostics; the vocabulary itself is
// untouched.
type UnsolvableError struct {
	Secret     words.Word
	Masks      []mask.Mask
	Candidates []words.Word
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("solver: no viable candidate left for %q after %d guesses (%d remaining)",
		e.Secret, len(e.Masks), len(e.Candidates))
}

// Solve plays guess/score/filter cycles until the secret is found, returning
// the full trace. The secret must be a member of vocab; that is checked up
// front rather than surfacing later as a bogus stuck state. A zero starting
// word means the vocabulary's best word opens.
//
// Deterministic for a fixed (vocab, secret, starting) triple.
func Solve(secret words.Word, vocab *words.Collection, starting words.Word) (*Solution, error) {
	if vocab.Len() == 0 {
		return nil, ErrEmptyVocabulary
	}
	if !vocab.Contains(secret) {
		return nil, fmt.Errorf("solver: secret %q is not in the vocabulary", secret)
	}

	guess := starting
	if guess == (words.Word{}) {
		guess, _ = vocab.Best()
	}

	possible := vocab
	var masks, infoMasks []mask.Mask
	var steps []Step

	for {
		if guess == secret {
			steps = append(steps, Step{Guess: guess, Result: allGreen()})
			return &Solution{Secret: secret, State: Solved, Guesses: len(steps), Steps: steps}, nil
		}

		res := Score(secret, guess)
		steps = append(steps, Step{Guess: guess, Result: res})
		m := mask.FromGuessResult(guess, res)
		masks = append(masks, m)
		infoMasks = append(infoMasks, m.InfoGuess())

		var err error
		possible, err = mask.Apply(possible, masks)
		if err != nil {
			return nil, err
		}
		info, err := mask.Apply(vocab, infoMasks)
		if err != nil {
			return nil, err
		}

		if possible.Len() == 0 || (possible.Len() == 1 && possible.At(0) != secret) {
			return nil, &UnsolvableError{Secret: secret, Masks: masks, Candidates: possible.Words()}
		}

		if possible.Len() >= exploreSolveMin && info.Len() >= exploreInfoMin {
			guess, _ = info.Best()
		} else {
			guess, _ = possible.Best()
		}
	}
}

func allGreen() mask.Result {
	var r mask.Result
	for i := range r {
		r[i] = mask.Green
	}
	return r
}
