package parse

import (
	"github.com/elastide/lsconf/ast"
)

// condition parses a boolean combination of expressions with
// precedence climbing. Chains of one tier associate left; and, xor,
// and nand bind tighter than or.
func (p *parser) condition(minPrec int) (Node, error) {
	left, err := p.expression()
	if err != nil {
		return nil, err
	}
	for {
		mark := p.s.Mark()
		p.s.SkipSpace()
		op, ok := p.boolOp()
		if !ok {
			p.s.Reset(mark)
			return left, nil
		}
		prec := ast.Precedence(op)
		if prec < minPrec {
			p.s.Reset(mark)
			return left, nil
		}
		p.s.SkipSpace()
		right, err := p.condition(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BoolExpr{Left: left, Op: op, Right: right}
	}
}

func (p *parser) boolOp() (string, bool) {
	for _, op := range []string{"and", "or", "xor", "nand"} {
		if p.s.Keyword(op) {
			return op, true
		}
	}
	return "", false
}

// expression parses one operand of a condition: a parenthesized
// condition, a negation, or an rvalue optionally followed by a
// membership, comparison, or regex-match operator.
func (p *parser) expression() (Node, error) {
	p.s.SkipSpace()
	if p.s.Lit("(") {
		inner, err := p.condition(1)
		if err != nil {
			return nil, err
		}
		p.s.SkipSpace()
		if !p.s.Lit(")") {
			return nil, syntaxErr(p.s.Pos(), "')'")
		}
		return inner, nil
	}
	notMark := p.s.Mark()
	if p.s.Lit("!") {
		if p.s.Peek() != '~' && p.s.Peek() != '=' {
			return p.negative()
		}
		p.s.Reset(notMark)
	}
	left, err := p.rvalue()
	if err != nil {
		return nil, err
	}
	mark := p.s.Mark()
	p.s.SkipSpace()
	switch {
	case p.s.Keyword("in"):
		p.s.SkipSpace()
		coll, err := p.rvalue()
		if err != nil {
			return nil, err
		}
		return &ast.In{Value: left, Collection: coll}, nil
	case p.s.Keyword("not"):
		p.s.SkipSpace()
		if !p.s.Keyword("in") {
			return nil, syntaxErr(p.s.Pos(), "'in' after 'not'")
		}
		p.s.SkipSpace()
		coll, err := p.rvalue()
		if err != nil {
			return nil, err
		}
		return &ast.NotIn{Value: left, Collection: coll}, nil
	}
	if op, ok := p.compareOp(); ok {
		p.s.SkipSpace()
		right, err := p.rvalue()
		if err != nil {
			return nil, err
		}
		return &ast.Compare{Left: left, Op: op, Right: right}, nil
	}
	if op, ok := p.regexOp(); ok {
		p.s.SkipSpace()
		pat, err := p.pattern()
		if err != nil {
			return nil, err
		}
		return &ast.RegexMatch{Left: left, Op: op, Pattern: pat}, nil
	}
	p.s.Reset(mark)
	return left, nil
}

// negative parses the rest of a negation, the '!' having been
// consumed: either !(condition) or !selector.
func (p *parser) negative() (Node, error) {
	p.s.SkipSpace()
	if p.s.Lit("(") {
		inner, err := p.condition(1)
		if err != nil {
			return nil, err
		}
		p.s.SkipSpace()
		if !p.s.Lit(")") {
			return nil, syntaxErr(p.s.Pos(), "')'")
		}
		return &ast.Not{Expr: inner}, nil
	}
	if sel, ok := p.s.Selector(); ok {
		return &ast.Not{Expr: &ast.Selector{Raw: sel}}, nil
	}
	return nil, syntaxErr(p.s.Pos(), "'(' or a selector after '!'")
}

func (p *parser) compareOp() (string, bool) {
	for _, op := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if p.s.Lit(op) {
			return op, true
		}
	}
	return "", false
}

func (p *parser) regexOp() (string, bool) {
	for _, op := range []string{"=~", "!~"} {
		if p.s.Lit(op) {
			return op, true
		}
	}
	return "", false
}

// pattern parses the right side of a regex match: a quoted string or a
// /-delimited regexp.
func (p *parser) pattern() (Node, error) {
	pos := p.s.Pos()
	lex, started, err := p.s.Quoted()
	if err != nil {
		return nil, syntaxErr(pos, "a terminated string")
	}
	if started {
		s, err := ast.NewString(lex)
		if err != nil {
			return nil, literalErr(pos, err)
		}
		return s, nil
	}
	if body, ok := p.s.Regexp(); ok {
		return &ast.Regexp{Body: body}, nil
	}
	return nil, syntaxErr(pos, "a string or regexp pattern")
}
