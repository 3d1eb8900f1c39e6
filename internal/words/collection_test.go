package words

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, list ...string) *Collection {
	t.Helper()
	ws := make([]Word, len(list))
	for i, s := range list {
		ws[i] = MustParse(s)
	}
	return NewCollection(ws)
}

func wordStrings(c *Collection) []string {
	out := make([]string, 0, c.Len())
	for _, w := range c.Words() {
		out = append(out, w.String())
	}
	return out
}

func TestNewCollectionDedupes(t *testing.T) {
	c := collect(t, "slate", "ratio", "slate", "tardy", "ratio")
	want := []string{"slate", "ratio", "tardy"}
	if diff := cmp.Diff(want, wordStrings(c)); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestLetterFrequency(t *testing.T) {
	c := collect(t, "aaaaa", "bbbbb")
	freq := c.LetterFrequency()
	if freq['a'-'a'] != 0.5 || freq['b'-'a'] != 0.5 {
		t.Errorf("freq a=%v b=%v, want 0.5 each", freq['a'-'a'], freq['b'-'a'])
	}
	if freq['c'-'a'] != 0 {
		t.Errorf("freq c=%v, want 0", freq['c'-'a'])
	}
}

func TestLetterFrequencySumsToOne(t *testing.T) {
	c := collect(t, "slate", "ratio", "tardy", "lemon", "crane")
	var sum float64
	for _, f := range c.LetterFrequency() {
		sum += f
	}
	if math.Abs(sum-1.0) > 0.001 {
		t.Errorf("frequencies sum to %v, want 1.0 within rounding", sum)
	}
}

func TestLetterFrequencyEmpty(t *testing.T) {
	c := NewCollection(nil)
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
	for i, f := range c.LetterFrequency() {
		if f != 0 {
			t.Errorf("freq[%d] = %v, want 0", i, f)
		}
	}
}

func TestFilterProducesNewCollection(t *testing.T) {
	c := collect(t, "slate", "ratio", "tardy")
	filtered := c.Filter(func(w Word) bool { return w.Has('y') })
	if got := wordStrings(filtered); len(got) != 1 || got[0] != "tardy" {
		t.Errorf("filtered = %v, want [tardy]", got)
	}
	if c.Len() != 3 {
		t.Errorf("original mutated: Len = %d, want 3", c.Len())
	}
}

func TestBestIsStableOnTies(t *testing.T) {
	// ratio and slate tie against this collection's own frequencies
	// (five shared-weight letters each), so the earlier word wins.
	c := collect(t, "ratio", "slate")
	best, ok := c.Best()
	if !ok || best.String() != "ratio" {
		t.Errorf("Best = %v (%v), want ratio", best, ok)
	}
}

func TestBestEmpty(t *testing.T) {
	if _, ok := NewCollection(nil).Best(); ok {
		t.Error("Best on empty collection reported ok")
	}
}

func TestFrequencySortIsDescending(t *testing.T) {
	c := collect(t, "slate", "ratio", "tardy", "lemon", "crane", "fuzzy")
	c.FrequencySort()
	freq := c.LetterFrequency()
	prev := math.Inf(1)
	for _, w := range c.Words() {
		s := w.ScoreAgainst(freq)
		if s > prev {
			t.Fatalf("order not descending: %q scores %v after %v", w, s, prev)
		}
		prev = s
	}
	if c.Len() != 6 {
		t.Errorf("contents changed: Len = %d, want 6", c.Len())
	}
}

func TestRank(t *testing.T) {
	c := collect(t, "slate", "ratio", "tardy", "lemon", "crane")
	ranked := c.Rank(3)
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	freq := c.LetterFrequency()
	for i, r := range ranked {
		if want := r.Word.ScoreAgainst(freq); r.Score != want {
			t.Errorf("rank %d: Score = %v, want %v", i, r.Score, want)
		}
		if want := r.Word.Score(); r.GlobalScore != want {
			t.Errorf("rank %d: GlobalScore = %v, want %v", i, r.GlobalScore, want)
		}
		if i > 0 && r.Score > ranked[i-1].Score {
			t.Errorf("rank %d out of order", i)
		}
	}
}

func TestReadSkipsInvalidLines(t *testing.T) {
	in := "slate\n\n# comment\nratio\ntoolong\nab1de\ntardy\n"
	c, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"slate", "ratio", "tardy"}
	if diff := cmp.Diff(want, wordStrings(c)); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader("# nothing here\n")); err != ErrEmptyList {
		t.Errorf("err = %v, want ErrEmptyList", err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("WORDS_FILE", "")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() < 100 {
		t.Errorf("embedded list has %d words, expected a few hundred", c.Len())
	}
}

func TestChecksum(t *testing.T) {
	a := collect(t, "slate", "ratio")
	b := collect(t, "slate", "ratio")
	if a.Checksum() != b.Checksum() {
		t.Error("identical collections have different checksums")
	}
	if a.Checksum() == collect(t, "ratio", "slate").Checksum() {
		t.Error("reordered collection shares a checksum")
	}
	if a.Checksum() == collect(t, "slate", "tardy").Checksum() {
		t.Error("different collections share a checksum")
	}
}
