package words

import "testing"

func TestLetterSet(t *testing.T) {
	var s LetterSet
	if !s.Empty() {
		t.Error("zero set not empty")
	}
	s = s.With('a').With('z').With('a')
	if s.Empty() || !s.Has('a') || !s.Has('z') || s.Has('m') {
		t.Errorf("membership wrong for %s", s)
	}
	if got := string(s.Letters()); got != "az" {
		t.Errorf("Letters = %q, want az ascending", got)
	}
	if got := s.String(); got != "a,z" {
		t.Errorf("String = %q, want a,z", got)
	}
}

func TestLetterSetAlgebra(t *testing.T) {
	a := LetterSet(0).With('a').With('b')
	b := LetterSet(0).With('b').With('c')

	u := a.Union(b)
	for _, c := range []byte{'a', 'b', 'c'} {
		if !u.Has(c) {
			t.Errorf("union missing %c", c)
		}
	}
	if !a.Intersects(b) {
		t.Error("overlapping sets report no intersection")
	}
	if a.Intersects(LetterSet(0).With('z')) {
		t.Error("disjoint sets report an intersection")
	}
	if !LetterSet(0).With('b').SubsetOf(a) {
		t.Error("subset not recognized")
	}
	if a.SubsetOf(b) {
		t.Error("non-subset reported as subset")
	}
}
