package ast

import "errors"

// If is the leading arm of a branch: a guard condition and a body of
// plugins or nested branches.
type If struct {
	Cond Node
	Body []Node
}

// ElseIf is a follow-up arm with its own guard.
type ElseIf struct {
	Cond Node
	Body []Node
}

// Else is the optional terminal arm; it has no guard.
type Else struct {
	Body []Node
}

// Branch is the ordered chain If (ElseIf)* (Else)?. The shape is a
// construction-time invariant, not something the parser can produce
// out of order.
type Branch struct {
	If      *If
	ElseIfs []*ElseIf
	Else    *Else
}

var errBranchNoIf = errors.New("branch must begin with an if condition")

// NewBranch assembles a branch, enforcing that the chain starts with
// an If. elseIfs and else_ may be empty/nil.
func NewBranch(if_ *If, elseIfs []*ElseIf, else_ *Else) (*Branch, error) {
	if if_ == nil {
		return nil, errBranchNoIf
	}
	return &Branch{If: if_, ElseIfs: elseIfs, Else: else_}, nil
}

// Arms reports the chain in order as generic nodes.
func (b *Branch) Arms() []Node {
	arms := make([]Node, 0, 2+len(b.ElseIfs))
	arms = append(arms, b.If)
	for _, ei := range b.ElseIfs {
		arms = append(arms, ei)
	}
	if b.Else != nil {
		arms = append(arms, b.Else)
	}
	return arms
}

func (*If) Kind() Kind     { return KindIf }
func (*ElseIf) Kind() Kind { return KindElseIf }
func (*Else) Kind() Kind   { return KindElse }
func (*Branch) Kind() Kind { return KindBranch }

func (*If) node()     {}
func (*ElseIf) node() {}
func (*Else) node()   {}
func (*Branch) node() {}
