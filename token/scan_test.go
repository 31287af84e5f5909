package token

import (
	"testing"
)

func TestScanName(t *testing.T) {
	ok := []string{"grok", "9-plugin", "_x", "a", "-", "some-name_2"}
	for _, in := range ok {
		s := NewScanner([]byte(in + " rest"))
		got, scanned := s.Name()
		if !scanned || got != in {
			t.Errorf("Name(%q) = %q, %v", in, got, scanned)
		}
	}
	s := NewScanner([]byte("=> x"))
	if got, scanned := s.Name(); scanned {
		t.Errorf("Name on %q: unexpected match %q", "=> x", got)
	}
}

func TestScanBareword(t *testing.T) {
	ok := []string{"grok", "ab", "_x", "some_word2"}
	for _, in := range ok {
		s := NewScanner([]byte(in))
		got, scanned := s.Bareword()
		if !scanned || got != in {
			t.Errorf("Bareword(%q) = %q, %v", in, got, scanned)
		}
	}
	// single characters and digit starts do not scan
	for _, in := range []string{"a", "_", "9ab", "-ab"} {
		s := NewScanner([]byte(in))
		if got, scanned := s.Bareword(); scanned && got == in {
			t.Errorf("Bareword(%q): unexpected full match", in)
		}
	}
}

func TestScanNumber(t *testing.T) {
	ok := []string{"0", "123", "-4", "3.5", "-0.25", "1."}
	for _, in := range ok {
		s := NewScanner([]byte(in))
		got, scanned := s.Number()
		if !scanned || got != in {
			t.Errorf("Number(%q) = %q, %v", in, got, scanned)
		}
	}
	for _, in := range []string{".5", "-", "x1"} {
		s := NewScanner([]byte(in))
		if got, scanned := s.Number(); scanned && got == in {
			t.Errorf("Number(%q): unexpected full match", in)
		}
	}
}

func TestScanSelector(t *testing.T) {
	ok := []string{"[foo]", "[a][b][c]", "[@timestamp]", "[log.level]", "[1]"}
	for _, in := range ok {
		s := NewScanner([]byte(in))
		got, scanned := s.Selector()
		if !scanned || got != in {
			t.Errorf("Selector(%q) = %q, %v", in, got, scanned)
		}
	}
	// commas and empty segments break the selector shape
	for _, in := range []string{"[a, b]", "[]", "[a][", "x[a]"} {
		s := NewScanner([]byte(in))
		if got, scanned := s.Selector(); scanned && got == in {
			t.Errorf("Selector(%q): unexpected full match", in)
		}
	}
}

func TestScanRegexp(t *testing.T) {
	s := NewScanner([]byte(`/\/var\/log\/.*/ tail`))
	body, scanned := s.Regexp()
	if !scanned {
		t.Fatal("regexp did not scan")
	}
	if body != `\/var\/log\/.*` {
		t.Errorf("regexp body = %q", body)
	}
	s = NewScanner([]byte("/no newline\n/"))
	if _, scanned := s.Regexp(); scanned {
		t.Error("regexp scanned across a newline")
	}
}

func TestSkipSpaceComments(t *testing.T) {
	s := NewScanner([]byte("  # a comment\n\t# another\n  grok"))
	s.SkipSpace()
	got, scanned := s.Name()
	if !scanned || got != "grok" {
		t.Errorf("after SkipSpace: Name = %q, %v", got, scanned)
	}
}

func TestKeywordBoundary(t *testing.T) {
	s := NewScanner([]byte("input7 {"))
	if s.Keyword("input") {
		t.Error("Keyword matched prefix of a longer word")
	}
	s = NewScanner([]byte("if ["))
	if !s.Keyword("if") {
		t.Error("Keyword did not match at word boundary")
	}
}

func TestMarkReset(t *testing.T) {
	s := NewScanner([]byte("abc def"))
	m := s.Mark()
	s.Bareword()
	s.SkipSpace()
	s.Reset(m)
	got, _ := s.Bareword()
	if got != "abc" {
		t.Errorf("after Reset: Bareword = %q", got)
	}
}

func TestPosLineCol(t *testing.T) {
	src := []byte("ab\ncd\nef")
	doc := NewPosDoc(src)
	for _, tc := range []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
	} {
		l, c := doc.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("LineCol(%d) = (%d,%d), want (%d,%d)", tc.off, l, c, tc.line, tc.col)
		}
	}
}
