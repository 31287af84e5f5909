package parse

import (
	"bytes"
	"fmt"

	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/token"
)

// Fragment parses src as a single node of the requested kind. Unlike
// Parse, any kind may be the start symbol, so isolated pieces of a
// configuration (a condition, a hash, one attribute) can be parsed on
// their own. Trailing input after the node is a syntax error unless
// AllowTrailing is given.
func Fragment(kind ast.Kind, src []byte, opts ...Option) (n ast.Node, err error) {
	defer recoverWrap(&err)
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, &Error{kind: ErrEmptyInput}
	}
	p := &parser{s: token.NewScanner(src), opts: pOpts}
	p.s.SkipSpace()
	n, err = p.fragment(kind)
	if err != nil {
		return nil, err
	}
	if !pOpts.allowTrailing {
		p.s.SkipSpace()
		if !p.s.EOF() {
			return nil, syntaxErr(p.s.Pos(), "end of input after "+kind.String())
		}
	}
	return n, nil
}

func (p *parser) fragment(kind ast.Kind) (ast.Node, error) {
	pos := p.s.Pos()
	switch kind {
	case ast.KindDocument:
		return p.document()
	case ast.KindSection:
		return p.section()
	case ast.KindPlugin:
		return p.plugin()
	case ast.KindAttribute:
		return p.attribute()
	case ast.KindString:
		lex, started, err := p.s.Quoted()
		if err != nil || !started {
			return nil, syntaxErr(pos, "a quoted string")
		}
		s, err := ast.NewString(lex)
		if err != nil {
			return nil, literalErr(pos, err)
		}
		return s, nil
	case ast.KindBareword:
		w, ok := p.s.Bareword()
		if !ok {
			return nil, syntaxErr(pos, "a bareword")
		}
		return &ast.Bareword{Word: w}, nil
	case ast.KindNumber:
		lex, ok := p.s.Number()
		if !ok {
			return nil, syntaxErr(pos, "a number")
		}
		n, err := ast.ParseNumber(lex)
		if err != nil {
			return nil, literalErr(pos, err)
		}
		return n, nil
	case ast.KindBoolean:
		switch {
		case p.s.Keyword("true"):
			return &ast.Boolean{Value: true}, nil
		case p.s.Keyword("false"):
			return &ast.Boolean{Value: false}, nil
		}
		return nil, syntaxErr(pos, "true or false")
	case ast.KindRegexp:
		body, ok := p.s.Regexp()
		if !ok {
			return nil, syntaxErr(pos, "a regexp")
		}
		return &ast.Regexp{Body: body}, nil
	case ast.KindSelector:
		sel, ok := p.s.Selector()
		if !ok {
			return nil, syntaxErr(pos, "a selector")
		}
		return &ast.Selector{Raw: sel}, nil
	case ast.KindArray:
		return p.array()
	case ast.KindHash:
		return p.hash()
	case ast.KindHashEntry:
		return p.hashEntry()
	case ast.KindMethodCall:
		mc, ok, err := p.tryMethodCall()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, syntaxErr(pos, "a method call")
		}
		return mc, nil
	case ast.KindRValue:
		return p.rvalue()
	case ast.KindCompare, ast.KindRegexMatch, ast.KindIn,
		ast.KindNotIn, ast.KindNot:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if expr.Kind() != kind {
			return nil, syntaxErr(pos, "a "+kind.String()+" expression")
		}
		return expr, nil
	case ast.KindBoolExpr:
		cond, err := p.condition(1)
		if err != nil {
			return nil, err
		}
		if cond.Kind() != ast.KindBoolExpr {
			return nil, syntaxErr(pos, "a boolean combination")
		}
		return cond, nil
	case ast.KindIf:
		return p.ifArm()
	case ast.KindElseIf:
		return p.elseIfArm()
	case ast.KindElse:
		return p.elseArm()
	case ast.KindBranch:
		return p.branch()
	default:
		return nil, &Error{
			kind:  ErrInternal,
			cause: fmt.Errorf("unparseable kind %v", kind),
		}
	}
}

func (p *parser) hashEntry() (*ast.HashEntry, error) {
	key, err := p.hashKey()
	if err != nil {
		return nil, err
	}
	p.s.SkipSpace()
	if !p.s.Lit("=>") {
		return nil, syntaxErr(p.s.Pos(), "'=>' after hash key")
	}
	p.s.SkipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	return &ast.HashEntry{Key: key, Val: v}, nil
}

func (p *parser) elseIfArm() (*ast.ElseIf, error) {
	if !p.s.Keyword("else") {
		return nil, syntaxErr(p.s.Pos(), "'else'")
	}
	p.s.SkipSpace()
	if !p.s.Keyword("if") {
		return nil, syntaxErr(p.s.Pos(), "'if' after 'else'")
	}
	p.s.SkipSpace()
	cond, err := p.condition(1)
	if err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.ElseIf{Cond: cond, Body: body}, nil
}

func (p *parser) elseArm() (*ast.Else, error) {
	if !p.s.Keyword("else") {
		return nil, syntaxErr(p.s.Pos(), "'else'")
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.Else{Body: body}, nil
}
