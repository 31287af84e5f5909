package parse

import (
	"github.com/elastide/lsconf/ast"
)

// value parses an attribute value. The alternatives are ordered so a
// nested plugin wins over a bareword, and a boolean keyword wins over
// a bareword spelling of it.
func (p *parser) value() (Node, error) {
	pos := p.s.Pos()
	if pl, ok, err := p.tryPluginValue(); ok || err != nil {
		return pl, err
	}
	if p.s.Keyword("true") {
		return &ast.Boolean{Value: true}, nil
	}
	if p.s.Keyword("false") {
		return &ast.Boolean{Value: false}, nil
	}
	mark := p.s.Mark()
	if w, ok := p.s.Bareword(); ok {
		return &ast.Bareword{Word: w}, nil
	}
	p.s.Reset(mark)
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
	if lex, ok := p.s.Number(); ok {
		n, err := ast.ParseNumber(lex)
		if err != nil {
			return nil, literalErr(pos, err)
		}
		return n, nil
	}
	if p.s.Peek() == '[' {
		return p.array()
	}
	if p.s.Peek() == '{' {
		return p.hash()
	}
	return nil, syntaxErr(pos, "a value")
}

// tryPluginValue recognizes a nested plugin used as an attribute
// value, such as a codec. It backtracks when the name is not followed
// by a '{'.
func (p *parser) tryPluginValue() (*ast.Plugin, bool, error) {
	mark := p.s.Mark()
	name, err := p.nameLexeme()
	if err != nil {
		p.s.Reset(mark)
		return nil, false, nil
	}
	p.s.SkipSpace()
	if !p.s.Lit("{") {
		p.s.Reset(mark)
		return nil, false, nil
	}
	pl, err := p.pluginRest(name)
	if err != nil {
		return nil, true, err
	}
	return pl, true, nil
}

func (p *parser) array() (*ast.Array, error) {
	if !p.s.Lit("[") {
		return nil, syntaxErr(p.s.Pos(), "'['")
	}
	arr := &ast.Array{}
	p.s.SkipSpace()
	if p.s.Lit("]") {
		return arr, nil
	}
	for {
		elem, err := p.arrayElem()
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, elem)
		p.s.SkipSpace()
		if p.s.Lit(",") {
			p.s.SkipSpace()
			continue
		}
		if p.s.Lit("]") {
			return arr, nil
		}
		return nil, syntaxErr(p.s.Pos(), "',' or ']' in array")
	}
}

// arrayElem parses one array element. Arrays admit plain values plus
// the reference forms: selectors, method calls, and regexps.
func (p *parser) arrayElem() (Node, error) {
	mark := p.s.Mark()
	v, err := p.value()
	if err == nil {
		return v, nil
	}
	p.s.Reset(mark)
	if sel, ok := p.s.Selector(); ok {
		return &ast.Selector{Raw: sel}, nil
	}
	if mc, ok, mcErr := p.tryMethodCall(); ok || mcErr != nil {
		return mc, mcErr
	}
	if body, ok := p.s.Regexp(); ok {
		return &ast.Regexp{Body: body}, nil
	}
	return nil, err
}

func (p *parser) hash() (*ast.Hash, error) {
	if !p.s.Lit("{") {
		return nil, syntaxErr(p.s.Pos(), "'{'")
	}
	h := &ast.Hash{}
	for {
		p.s.SkipSpace()
		if p.s.Lit("}") {
			return h, nil
		}
		if p.s.EOF() {
			return nil, syntaxErr(p.s.Pos(), "'}' closing the hash")
		}
		entry, err := p.hashEntry()
		if err != nil {
			return nil, err
		}
		h.Entries = append(h.Entries, entry)
	}
}

// hashKey parses a number, bareword, or quoted string key.
func (p *parser) hashKey() (Node, error) {
	pos := p.s.Pos()
	if lex, ok := p.s.Number(); ok {
		n, err := ast.ParseNumber(lex)
		if err != nil {
			return nil, literalErr(pos, err)
		}
		return n, nil
	}
	if w, ok := p.s.Bareword(); ok {
		return &ast.Bareword{Word: w}, nil
	}
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
	return nil, syntaxErr(pos, "a hash key")
}

// rvalue parses a primary operand of an expression: a string, number,
// selector, array, method call, or regexp, in that order of
// preference. In this position [x] is always a selector, never a
// one-element array.
func (p *parser) rvalue() (*ast.RValue, error) {
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
		return &ast.RValue{Value: s}, nil
	}
	if lex, ok := p.s.Number(); ok {
		n, err := ast.ParseNumber(lex)
		if err != nil {
			return nil, literalErr(pos, err)
		}
		return &ast.RValue{Value: n}, nil
	}
	if sel, ok := p.s.Selector(); ok {
		return &ast.RValue{Value: &ast.Selector{Raw: sel}}, nil
	}
	if p.s.Peek() == '[' {
		arr, err := p.array()
		if err != nil {
			return nil, err
		}
		return &ast.RValue{Value: arr}, nil
	}
	if mc, ok, err := p.tryMethodCall(); ok || err != nil {
		if err != nil {
			return nil, err
		}
		return &ast.RValue{Value: mc}, nil
	}
	if body, ok := p.s.Regexp(); ok {
		return &ast.RValue{Value: &ast.Regexp{Body: body}}, nil
	}
	return nil, syntaxErr(pos, "an rvalue")
}

// tryMethodCall recognizes name(arg, ...) and backtracks when the
// bareword is not followed by '('.
func (p *parser) tryMethodCall() (*ast.MethodCall, bool, error) {
	mark := p.s.Mark()
	name, ok := p.s.Bareword()
	if !ok {
		p.s.Reset(mark)
		return nil, false, nil
	}
	p.s.SkipSpace()
	if !p.s.Lit("(") {
		p.s.Reset(mark)
		return nil, false, nil
	}
	mc := &ast.MethodCall{Name: name}
	p.s.SkipSpace()
	if p.s.Lit(")") {
		return mc, true, nil
	}
	for {
		arg, err := p.rvalue()
		if err != nil {
			return nil, true, err
		}
		mc.Args = append(mc.Args, arg)
		p.s.SkipSpace()
		if p.s.Lit(",") {
			p.s.SkipSpace()
			continue
		}
		if p.s.Lit(")") {
			return mc, true, nil
		}
		return nil, true, syntaxErr(p.s.Pos(), "',' or ')' in method call")
	}
}
