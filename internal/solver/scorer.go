// internal/solver/scorer.go
//
// Guess scoring with the standard two-pass algorithm.

package solver

import (
	"github.com/robalobadob/wordle-helper/internal/mask"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// Score evaluates guess against secret.
//
// Pass 1 marks exact matches green and counts the secret's remaining
// (non-green) letters. Pass 2 walks the non-green slots left to right,
// marking yellow while a counted occurrence remains, black otherwise.
//
// Greens claim occurrences first and earlier slots claim before later ones,
// so a letter never collects more non-black marks than it occurs in the
// secret. This is what keeps duplicate letters honest: score("teeth",
// "epees") marks only one of the three e's yellow beyond the green.
func Score(secret, guess words.Word) mask.Result {
	var res mask.Result
	var counts [26]int

	for pos := 1; pos <= words.WordLength; pos++ {
		if guess.At(pos) == secret.At(pos) {
			res[pos-1] = mask.Green
		} else {
			counts[secret.At(pos)-'a']++
		}
	}

	for pos := 1; pos <= words.WordLength; pos++ {
		if res[pos-1] == mask.Green {
			continue
		}
		c := guess.At(pos)
		if counts[c-'a'] > 0 {
			res[pos-1] = mask.Yellow
			counts[c-'a']--
		} else {
			res[pos-1] = mask.Black
		}
	}
	return res
}
