package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elastide/lsconf/token"
)

// Node is the closed interface over all AST node types. Only types in
// this package implement it.
type Node interface {
	Kind() Kind
	node()
}

// String is a quoted string literal. Lexeme includes the original quote
// characters; the decoded value is computed at construction.
type String struct {
	Lexeme string
	value  string
}

// NewString builds a String from a raw lexeme (quotes included). It
// fails when the lexeme is unterminated or carries a malformed escape.
func NewString(lexeme string) (*String, error) {
	v, err := token.DecodeQuoted(lexeme)
	if err != nil {
		return nil, err
	}
	return &String{Lexeme: lexeme, value: v}, nil
}

// StringFromValue builds a canonical double-quoted String for a decoded
// value.
func StringFromValue(v string) *String {
	return &String{Lexeme: token.EncodeQuoted(v, '"'), value: v}
}

// Value reports the decoded string, without quotes.
func (s *String) Value() string {
	return s.value
}

// Quote reports the quoting character of the original lexeme.
func (s *String) Quote() byte {
	if s.Lexeme == "" {
		return '"'
	}
	return s.Lexeme[0]
}

// Bareword is an unquoted identifier token. Depending on position its
// spelling follows either the strict bareword grammar (IsBareword) or
// the looser name grammar (IsName).
type Bareword struct {
	Word string
}

// IsBareword reports whether s matches [A-Za-z_][A-Za-z0-9_]+, the
// strict two-character-minimum identifier grammar.
func IsBareword(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsName reports whether s matches the loose [A-Za-z0-9_-]+ grammar
// used for plugin and attribute names.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c == '-',
			c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// Number is a numeric literal. The integer/float distinction of the
// source is kept: integers never gain a decimal point on output.
type Number struct {
	// Lexeme is the literal as read, empty for programmatic nodes.
	Lexeme string
	IsInt  bool
	Int    int64
	Float  float64
}

func NumberFromInt(v int64) *Number {
	return &Number{IsInt: true, Int: v}
}

func NumberFromFloat(v float64) *Number {
	return &Number{Float: v}
}

// ParseNumber builds a Number from a numeric lexeme, preserving its
// kind and spelling.
func ParseNumber(lexeme string) (*Number, error) {
	if !strings.Contains(lexeme, ".") {
		i, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", lexeme, err)
		}
		return &Number{Lexeme: lexeme, IsInt: true, Int: i}, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(lexeme, "."), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", lexeme, err)
	}
	return &Number{Lexeme: lexeme, Float: f}, nil
}

// Source reports the literal spelling: the original lexeme when the
// node was parsed, a canonical rendering otherwise.
func (n *Number) Source() string {
	if n.Lexeme != "" {
		return n.Lexeme
	}
	if n.IsInt {
		return strconv.FormatInt(n.Int, 10)
	}
	s := strconv.FormatFloat(n.Float, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		// keep the float kind visible in the source form
		s += ".0"
	}
	return s
}

// Boolean is a logical literal, rendered as a lowercase bareword.
type Boolean struct {
	Value bool
}

// Regexp is a /-delimited pattern. Body excludes the delimiting slashes
// and keeps any `\/` escapes exactly as captured.
type Regexp struct {
	Body string
}

// Selector is an opaque field reference like [a][b], kept as its raw
// bracketed text and never decomposed into segments.
type Selector struct {
	Raw string
}

func (*String) Kind() Kind   { return KindString }
func (*Bareword) Kind() Kind { return KindBareword }
func (*Number) Kind() Kind   { return KindNumber }
func (*Boolean) Kind() Kind  { return KindBoolean }
func (*Regexp) Kind() Kind   { return KindRegexp }
func (*Selector) Kind() Kind { return KindSelector }

func (*String) node()   {}
func (*Bareword) node() {}
func (*Number) node()   {}
func (*Boolean) node()  {}
func (*Regexp) node()   {}
func (*Selector) node() {}
