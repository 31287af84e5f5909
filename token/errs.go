package token

import "fmt"

// UnterminatedErr reports a token that started but never closed, such as
// a string missing its closing quote.
type UnterminatedErr struct {
	What string
	Pos  *Pos
}

func (e *UnterminatedErr) Error() string {
	return fmt.Sprintf("unterminated %s %s", e.What, e.Pos)
}
