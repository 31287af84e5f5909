package parse

import (
	"errors"
	"fmt"

	"github.com/elastide/lsconf/token"
)

var (
	// ErrEmptyInput reports input that is empty or entirely whitespace,
	// rejected before the grammar runs.
	ErrEmptyInput = errors.New("empty input")

	// ErrSyntax reports a grammar mismatch.
	ErrSyntax = errors.New("syntax error")

	// ErrLiteral reports a token that matched syntactically but failed
	// semantic decoding, such as a malformed string escape.
	ErrLiteral = errors.New("invalid literal")

	// ErrInternal reports a recovered panic during parsing.
	ErrInternal = errors.New("internal error")
)

// Error is the single error surface of this package. Every failure
// wraps one of the sentinel kinds above; Pos is set when the failure
// has a source position.
type Error struct {
	Pos      *token.Pos
	Expected string

	kind  error
	cause error
}

func (e *Error) Error() string {
	msg := "parse: " + e.kind.Error()
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	if e.Pos != nil {
		msg += " " + e.Pos.String()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

func syntaxErr(pos *token.Pos, expected string) *Error {
	return &Error{kind: ErrSyntax, Pos: pos, Expected: expected}
}

func literalErr(pos *token.Pos, cause error) *Error {
	return &Error{kind: ErrLiteral, Pos: pos, cause: cause}
}

func recoverWrap(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	*errp = &Error{kind: ErrInternal, cause: fmt.Errorf("%v", r)}
}
