package token

import "strings"

// Scanner provides the lexical primitives of the configuration language:
// whitespace and comment skipping, literal and keyword matching, and the
// token-shaped scans (names, barewords, numbers, strings, selectors,
// regexps). The grammar itself lives in the parse package; every scan
// either consumes the matched input or leaves the scanner untouched, and
// Mark/Reset give the parser cheap backtracking.
type Scanner struct {
	src []byte
	i   int
	doc *PosDoc
}

func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src, doc: NewPosDoc(src)}
}

func (s *Scanner) Doc() *PosDoc {
	return s.doc
}

func (s *Scanner) Pos() *Pos {
	return s.doc.Pos(s.i)
}

func (s *Scanner) Mark() int {
	return s.i
}

func (s *Scanner) Reset(m int) {
	s.i = m
}

func (s *Scanner) EOF() bool {
	return s.i >= len(s.src)
}

func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.src[s.i]
}

// SkipSpace consumes whitespace and '#'-to-end-of-line comments.
func (s *Scanner) SkipSpace() {
	for s.i < len(s.src) {
		switch c := s.src[s.i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.i++
		case c == '#':
			for s.i < len(s.src) && s.src[s.i] != '\n' {
				s.i++
			}
		default:
			return
		}
	}
}

// Lit consumes lit if the input starts with it.
func (s *Scanner) Lit(lit string) bool {
	if !strings.HasPrefix(string(s.src[s.i:]), lit) {
		return false
	}
	s.i += len(lit)
	return true
}

// Keyword consumes kw only when it is not a prefix of a longer word
// (the following byte, if any, is not a name character).
func (s *Scanner) Keyword(kw string) bool {
	end := s.i + len(kw)
	if end > len(s.src) || string(s.src[s.i:end]) != kw {
		return false
	}
	if end < len(s.src) && isNameChar(s.src[end]) {
		return false
	}
	s.i = end
	return true
}

func isNameChar(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Name scans the loose identifier grammar used for plugin and attribute
// names: a run of [A-Za-z0-9_-]+, which may start with a digit or consist
// only of hyphens.
func (s *Scanner) Name() (string, bool) {
	j := s.i
	for j < len(s.src) && isNameChar(s.src[j]) {
		j++
	}
	if j == s.i {
		return "", false
	}
	w := string(s.src[s.i:j])
	s.i = j
	return w, true
}

// Bareword scans the strict identifier grammar: [A-Za-z_][A-Za-z0-9_]+,
// minimum two characters.
func (s *Scanner) Bareword() (string, bool) {
	if s.EOF() || !isWordStart(s.src[s.i]) {
		return "", false
	}
	j := s.i + 1
	for j < len(s.src) && isWordChar(s.src[j]) {
		j++
	}
	if j-s.i < 2 {
		return "", false
	}
	w := string(s.src[s.i:j])
	s.i = j
	return w, true
}

// Number scans "-"? [0-9]+ ("." [0-9]*)? and reports the lexeme.
func (s *Scanner) Number() (string, bool) {
	j := s.i
	if j < len(s.src) && s.src[j] == '-' {
		j++
	}
	d := j
	for j < len(s.src) && isDigit(s.src[j]) {
		j++
	}
	if j == d {
		return "", false
	}
	if j < len(s.src) && s.src[j] == '.' {
		j++
		for j < len(s.src) && isDigit(s.src[j]) {
			j++
		}
	}
	w := string(s.src[s.i:j])
	s.i = j
	return w, true
}

// Quoted scans a single- or double-quoted string and reports the raw
// lexeme including its quotes. The boolean reports whether the input
// started a string at all; a started but unterminated string is an error.
func (s *Scanner) Quoted() (string, bool, error) {
	if s.EOF() {
		return "", false, nil
	}
	q := s.src[s.i]
	if q != '"' && q != '\'' {
		return "", false, nil
	}
	j := s.i + 1
	for j < len(s.src) {
		switch s.src[j] {
		case '\\':
			j += 2
			continue
		case q:
			w := string(s.src[s.i : j+1])
			s.i = j + 1
			return w, true, nil
		}
		j++
	}
	return "", true, &UnterminatedErr{What: "string", Pos: s.doc.Pos(s.i)}
}

// Regexp scans a /-delimited pattern and reports the body without the
// delimiting slashes. `\/` is the only recognized escape and is kept
// verbatim in the body.
func (s *Scanner) Regexp() (string, bool) {
	if s.EOF() || s.src[s.i] != '/' {
		return "", false
	}
	j := s.i + 1
	for j < len(s.src) {
		switch {
		case s.src[j] == '\\' && j+1 < len(s.src) && s.src[j+1] == '/':
			j += 2
		case s.src[j] == '/':
			w := string(s.src[s.i+1 : j])
			s.i = j + 1
			return w, true
		case s.src[j] == '\n':
			return "", false
		default:
			j++
		}
	}
	return "", false
}

// Selector scans one or more adjacent bracketed segments like [a][b],
// each segment matching [^\[\],]+, and reports the raw concatenated text.
func (s *Scanner) Selector() (string, bool) {
	j := s.i
	segs := 0
	for j < len(s.src) && s.src[j] == '[' {
		k := j + 1
		for k < len(s.src) {
			c := s.src[k]
			if c == '[' || c == ']' || c == ',' {
				break
			}
			k++
		}
		if k == j+1 || k == len(s.src) || s.src[k] != ']' {
			break
		}
		j = k + 1
		segs++
	}
	if segs == 0 {
		return "", false
	}
	w := string(s.src[s.i:j])
	s.i = j
	return w, true
}
