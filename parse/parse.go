// Package parse turns Logstash pipeline configuration text into an AST.
//
// The grammar is a recursive descent over token.Scanner with ordered
// alternatives and backtracking, mirroring the PEG shape of the
// language: a document is one or more typed sections, sections hold
// plugins and conditional branches, and branch guards are boolean
// combinations of comparison, membership, and regex-match expressions.
//
// Parsing is all-or-nothing: any failure aborts the whole parse and is
// reported as a *Error wrapping one of the sentinel kinds in errs.go.
package parse

import (
	"bytes"
	"fmt"
	"os"

	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/debug"
	"github.com/elastide/lsconf/token"
)

type parser struct {
	s    *token.Scanner
	opts *parseOpts
}

// Parse parses a complete configuration document. Empty or
// whitespace-only input is rejected with ErrEmptyInput before the
// grammar runs; input with no section (for example, only comments) is
// a syntax error.
func Parse(src []byte, opts ...Option) (doc *ast.Document, err error) {
	defer recoverWrap(&err)
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, &Error{kind: ErrEmptyInput}
	}
	p := &parser{s: token.NewScanner(src), opts: pOpts}
	doc, err = p.document()
	if err != nil && debug.Parse() {
		fmt.Fprintf(os.Stderr, "lsconf/parse: %v\n", err)
	}
	return doc, err
}

func (p *parser) document() (*ast.Document, error) {
	var secs []*ast.Section
	for {
		mark := p.s.Mark()
		p.s.SkipSpace()
		if p.s.EOF() {
			break
		}
		sec, err := p.section()
		if err != nil {
			if len(secs) > 0 && p.opts.allowTrailing {
				p.s.Reset(mark)
				break
			}
			return nil, err
		}
		secs = append(secs, sec)
	}
	if len(secs) == 0 {
		return nil, syntaxErr(p.s.Pos(), "an input, filter or output section")
	}
	return &ast.Document{Sections: secs}, nil
}

func (p *parser) section() (*ast.Section, error) {
	pos := p.s.Pos()
	w, ok := p.s.Name()
	if !ok || !ast.IsSectionType(w) {
		return nil, syntaxErr(pos, "an input, filter or output section")
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.Section{Type: w, Body: body}, nil
}

// blockBody parses "{" (branch|plugin)* "}".
func (p *parser) blockBody() ([]Node, error) {
	p.s.SkipSpace()
	if !p.s.Lit("{") {
		return nil, syntaxErr(p.s.Pos(), "'{'")
	}
	var items []Node
	for {
		p.s.SkipSpace()
		if p.s.Lit("}") {
			return items, nil
		}
		if p.s.EOF() {
			return nil, syntaxErr(p.s.Pos(), "'}' closing the block")
		}
		item, err := p.branchOrPlugin()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// Node aliases ast.Node for brevity in body slices.
type Node = ast.Node

func (p *parser) branchOrPlugin() (Node, error) {
	mark := p.s.Mark()
	if p.s.Keyword("if") {
		p.s.Reset(mark)
		b, err := p.branch()
		if err == nil {
			return b, nil
		}
		// the name grammar admits a plugin called "if"; fall back to
		// the plugin alternative before giving up
		p.s.Reset(mark)
		pl, perr := p.plugin()
		if perr != nil {
			return nil, err
		}
		return pl, nil
	}
	return p.plugin()
}

func (p *parser) plugin() (*ast.Plugin, error) {
	name, err := p.nameLexeme()
	if err != nil {
		return nil, err
	}
	p.s.SkipSpace()
	if !p.s.Lit("{") {
		return nil, syntaxErr(p.s.Pos(), "'{' after plugin name")
	}
	return p.pluginRest(name)
}

// pluginRest parses attributes and the closing brace, the name and
// opening brace having been consumed.
func (p *parser) pluginRest(name string) (*ast.Plugin, error) {
	var attrs []*ast.Attribute
	for {
		p.s.SkipSpace()
		if p.s.Lit("}") {
			return &ast.Plugin{Name: name, Attributes: attrs}, nil
		}
		if p.s.EOF() {
			return nil, syntaxErr(p.s.Pos(), "'}' closing the plugin")
		}
		attr, err := p.attribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
}

func (p *parser) attribute() (*ast.Attribute, error) {
	name, err := p.nameNode()
	if err != nil {
		return nil, err
	}
	p.s.SkipSpace()
	if !p.s.Lit("=>") {
		return nil, syntaxErr(p.s.Pos(), "'=>' after attribute name")
	}
	p.s.SkipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	return &ast.Attribute{Name: name, Value: v}, nil
}

// nameNode parses a name as an AST node: a quoted String or a loose
// Bareword.
func (p *parser) nameNode() (Node, error) {
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
	if w, ok := p.s.Name(); ok {
		return &ast.Bareword{Word: w}, nil
	}
	return nil, syntaxErr(pos, "a name")
}

// nameLexeme parses a name keeping its raw spelling, quotes included.
func (p *parser) nameLexeme() (string, error) {
	pos := p.s.Pos()
	lex, started, err := p.s.Quoted()
	if err != nil {
		return "", syntaxErr(pos, "a terminated string")
	}
	if started {
		if _, err := token.DecodeQuoted(lex); err != nil {
			return "", literalErr(pos, err)
		}
		return lex, nil
	}
	if w, ok := p.s.Name(); ok {
		return w, nil
	}
	return "", syntaxErr(pos, "a name")
}

func (p *parser) branch() (*ast.Branch, error) {
	ifArm, err := p.ifArm()
	if err != nil {
		return nil, err
	}
	var elseIfs []*ast.ElseIf
	var elseArm *ast.Else
	for {
		mark := p.s.Mark()
		p.s.SkipSpace()
		if !p.s.Keyword("else") {
			p.s.Reset(mark)
			break
		}
		p.s.SkipSpace()
		if p.s.Keyword("if") {
			cond, err := p.condition(1)
			if err != nil {
				return nil, err
			}
			body, err := p.blockBody()
			if err != nil {
				return nil, err
			}
			elseIfs = append(elseIfs, &ast.ElseIf{Cond: cond, Body: body})
			continue
		}
		body, err := p.blockBody()
		if err != nil {
			return nil, err
		}
		elseArm = &ast.Else{Body: body}
		break
	}
	return ast.NewBranch(ifArm, elseIfs, elseArm)
}

func (p *parser) ifArm() (*ast.If, error) {
	if !p.s.Keyword("if") {
		return nil, syntaxErr(p.s.Pos(), "'if'")
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
	return &ast.If{Cond: cond, Body: body}, nil
}
