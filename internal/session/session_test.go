package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle-helper/internal/mask"
	"github.com/robalobadob/wordle-helper/internal/words"
)

func vocab(t *testing.T, list ...string) *words.Collection {
	t.Helper()
	ws := make([]words.Word, len(list))
	for i, s := range list {
		ws[i] = words.MustParse(s)
	}
	return words.NewCollection(ws)
}

func suggested(list []Suggestion) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Word
	}
	return out
}

func TestAddGuessValidates(t *testing.T) {
	s := New("t1", vocab(t, "slate", "ratio"))
	tests := []struct {
		word, result string
		wantErr      error
	}{
		{"slat", "bbyyb", words.ErrWordLength},
		{"sl4te", "bbyyb", words.ErrWordChar},
		{"slate", "bbyy", mask.ErrResultLength},
		{"slate", "bbxyb", mask.ErrResultSymbol},
	}
	for _, tc := range tests {
		if err := s.AddGuess(tc.word, tc.result); !errors.Is(err, tc.wantErr) {
			t.Errorf("AddGuess(%q, %q) error = %v, want %v", tc.word, tc.result, err, tc.wantErr)
		}
	}
	if got := len(s.Records()); got != 0 {
		t.Errorf("%d records after rejected guesses, want 0", got)
	}
}

func TestSuggestSolveMode(t *testing.T) {
	s := New("t1", vocab(t, "slate", "ratio", "tardy", "tails", "chant"))
	if err := s.AddGuess("slate", "bbyyb"); err != nil {
		t.Fatalf("AddGuess: %v", err)
	}

	got, err := s.Suggest(ModeSolve, 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	// slate and tails carry excluded letters, chant puts a in a forbidden
	// slot; only ratio and tardy survive.
	names := suggested(got)
	if len(names) != 2 {
		t.Fatalf("suggestions = %v, want ratio and tardy", names)
	}
	for _, n := range names {
		if n != "ratio" && n != "tardy" {
			t.Errorf("unexpected suggestion %q", n)
		}
	}
	for i, sg := range got {
		if sg.Score <= 0 || sg.GlobalScore <= 0 {
			t.Errorf("suggestion %d has non-positive scores: %+v", i, sg)
		}
		if i > 0 && sg.Score > got[i-1].Score {
			t.Errorf("suggestion %d out of order", i)
		}
	}
}

func TestSuggestLimit(t *testing.T) {
	s := New("t1", vocab(t, "slate", "ratio", "tardy", "crane", "lemon"))
	got, err := s.Suggest(ModeSolve, 2)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestSuggestInfoMode(t *testing.T) {
	s := New("t1", vocab(t, "slate", "ratio", "tardy", "chirp", "round"))
	// All greens: solve mode would keep suggesting slate, info mode treats
	// its letters as spent.
	if err := s.AddGuess("slate", "ggggg"); err != nil {
		t.Fatalf("AddGuess: %v", err)
	}
	got, err := s.Suggest(ModeInfo, 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	for _, sg := range got {
		if sg.Word == "slate" || sg.Word == "tardy" || sg.Word == "ratio" {
			t.Errorf("info mode suggested %q, which reuses solved letters", sg.Word)
		}
	}
	if len(got) != 2 { // chirp and round remain
		t.Errorf("suggestions = %v, want chirp and round", suggested(got))
	}
}

func TestSuggestUnknownMode(t *testing.T) {
	s := New("t1", vocab(t, "slate"))
	if _, err := s.Suggest(Mode("explore"), 0); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestSuggestConflict(t *testing.T) {
	s := New("t1", vocab(t, "slate", "ratio"))
	if err := s.AddGuess("slate", "gbbbb"); err != nil {
		t.Fatalf("AddGuess: %v", err)
	}
	if err := s.AddGuess("sound", "bbbbb"); err != nil {
		t.Fatalf("AddGuess: %v", err)
	}
	_, err := s.Suggest(ModeSolve, 0)
	var ce *mask.ConflictError
	if !errors.As(err, &ce) {
		t.Errorf("err = %v, want ConflictError for s both required and excluded", err)
	}
}

func TestReset(t *testing.T) {
	v := vocab(t, "slate", "ratio", "tardy")
	s := New("t1", v)
	if err := s.AddGuess("slate", "bbyyb"); err != nil {
		t.Fatalf("AddGuess: %v", err)
	}
	s.Reset()
	if got := len(s.Records()); got != 0 {
		t.Errorf("%d records after reset, want 0", got)
	}
	got, err := s.Suggest(ModeSolve, 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) != v.Len() {
		t.Errorf("suggestions = %v, want the full vocabulary back", suggested(got))
	}
}

func TestRecordsAreACopy(t *testing.T) {
	s := New("t1", vocab(t, "slate", "ratio"))
	if err := s.AddGuess("slate", "bbyyb"); err != nil {
		t.Fatalf("AddGuess: %v", err)
	}
	recs := s.Records()
	recs[0].Word = words.MustParse("ratio")
	if s.Records()[0].Word.String() != "slate" {
		t.Error("mutating the returned slice changed session state")
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("slate\nratio\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDS_FILE", path)

	start, err := words.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := New("t1", start)

	changed, err := s.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if changed {
		t.Error("reload of identical list reported a change")
	}

	if err := os.WriteFile(path, []byte("slate\nratio\ntardy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	changed, err = s.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !changed {
		t.Error("reload of a grown list reported no change")
	}
	if got := s.Vocabulary().Len(); got != 3 {
		t.Errorf("vocabulary size = %d, want 3", got)
	}
}
