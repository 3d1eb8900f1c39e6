// internal/words/words.go
//
// Vocabulary loading.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to
//     the embedded default.
//   - Normalize lines (trim, lowercase) and skip anything that is not a
//     valid 5-letter word, preserving file order as the display order.
//   - Checksum collections so reloads can report whether anything changed.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt

package words

import (
	"bufio"
	_ "embed"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"
)

//go:embed default_words.txt
var embeddedWords string

// ErrEmptyList is returned when loading yields no valid words.
var ErrEmptyList = errors.New("words: word list is empty")

// Load builds the vocabulary collection. WORDS_FILE overrides the embedded
// default list.
func Load() (*Collection, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return ReadFile(path)
	}
	return Read(strings.NewReader(embeddedWords))
}

// ReadFile loads one word per line from a file.
func ReadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read builds a collection from newline-separated words. Blank lines,
// comments, and lines that do not parse as 5-letter words are skipped.
func Read(r io.Reader) (*Collection, error) {
	var list []Word
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := Parse(line)
		if err != nil {
			continue
		}
		list = append(list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return NewCollection(list), nil
}

// Checksum returns a short blake2b digest of the collection's contents in
// order. Two collections with the same words in the same order share a
// checksum.
func (c *Collection) Checksum() string {
	h, _ := blake2b.New256(nil)
	for _, w := range c.words {
		h.Write([]byte(w.text))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}
