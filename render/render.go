// Package render turns an AST back into configuration text.
//
// Layout follows the conventional logstash style: two-space indent,
// braces opening on the owning line, else arms continuing on the
// closing brace, one blank line between section items, and one blank
// line between sections. Literal nodes render their original lexemes,
// so a parse/render round trip preserves quote styles and numeric
// spellings. Parentheses in conditions are not stored on the AST; they
// are reintroduced from operator precedence alone.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/debug"
)

// RenderState holds the layout and color configuration of one render.
type RenderState struct {
	indent int

	Color func(ast.Kind, ColorAttr, string) string
}

// Render writes n to w. Documents end with a single trailing newline;
// other block nodes end at their closing brace.
func Render(n ast.Node, w io.Writer, opts ...Option) error {
	es := &RenderState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	s, err := es.node(n, 0)
	if debug.Render() {
		debug.Logf("lsconf/render: %s -> %d bytes, err=%v\n", n.Kind().String(), len(s), err)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// String renders n and reports the text.
func String(n ast.Node, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Render(n, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (es *RenderState) color(k ast.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, attr, s)
}

func (es *RenderState) ind(depth int) string {
	return strings.Repeat(" ", depth*es.indent)
}

func (es *RenderState) node(n ast.Node, depth int) (string, error) {
	switch x := n.(type) {
	case *ast.Document:
		return es.document(x)
	case *ast.Section:
		return es.section(x, depth)
	case *ast.Plugin:
		return es.plugin(x, depth)
	case *ast.Attribute:
		return es.pair(x.Name, x.Value, depth)
	case *ast.Hash:
		return es.hash(x, depth)
	case *ast.HashEntry:
		return es.pair(x.Key, x.Val, depth)
	case *ast.Branch:
		return es.branch(x, depth)
	case *ast.If:
		return es.arm("if", x.Cond, x.Body, depth)
	case *ast.ElseIf:
		return es.arm("else if", x.Cond, x.Body, depth)
	case *ast.Else:
		return es.arm("else", nil, x.Body, depth)
	case *ast.String, *ast.Bareword, *ast.Number, *ast.Boolean,
		*ast.Regexp, *ast.Selector, *ast.Array, *ast.MethodCall,
		*ast.RValue, *ast.Compare, *ast.RegexMatch, *ast.In,
		*ast.NotIn, *ast.Not, *ast.BoolExpr:
		s, err := es.inline(n)
		if err != nil {
			return "", err
		}
		return es.ind(depth) + s, nil
	default:
		return "", fmt.Errorf("render: unrenderable node %v", n.Kind())
	}
}

func (es *RenderState) document(d *ast.Document) (string, error) {
	secs := make([]string, 0, len(d.Sections))
	for _, sec := range d.Sections {
		s, err := es.section(sec, 0)
		if err != nil {
			return "", err
		}
		secs = append(secs, s)
	}
	return strings.Join(secs, "\n\n") + "\n", nil
}

func (es *RenderState) section(sec *ast.Section, depth int) (string, error) {
	var b strings.Builder
	b.WriteString(es.ind(depth))
	b.WriteString(es.color(ast.KindSection, NameColor, sec.Type))
	b.WriteString(" {\n")
	for i, item := range sec.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		s, err := es.node(item, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString(es.ind(depth))
	b.WriteString("}")
	return b.String(), nil
}

func (es *RenderState) plugin(p *ast.Plugin, depth int) (string, error) {
	var b strings.Builder
	b.WriteString(es.ind(depth))
	b.WriteString(es.color(ast.KindPlugin, NameColor, p.Name))
	b.WriteString(" {\n")
	for _, attr := range p.Attributes {
		s, err := es.pair(attr.Name, attr.Value, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString(es.ind(depth))
	b.WriteString("}")
	return b.String(), nil
}

// pair renders a name => value line; attributes and hash entries share
// the layout. Hash and plugin values open their brace on this line and
// keep their own multi-line body.
func (es *RenderState) pair(name, value ast.Node, depth int) (string, error) {
	nameStr, err := es.inline(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(es.ind(depth))
	b.WriteString(es.color(name.Kind(), FieldColor, nameStr))
	b.WriteString(" ")
	b.WriteString(es.color(ast.KindAttribute, SepColor, "=>"))
	b.WriteString(" ")
	switch v := value.(type) {
	case *ast.Hash:
		s, err := es.hash(v, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(stripFirstIndent(s))
	case *ast.Plugin:
		s, err := es.plugin(v, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(stripFirstIndent(s))
	default:
		s, err := es.inline(value)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString("\n")
	return b.String(), nil
}

func (es *RenderState) hash(h *ast.Hash, depth int) (string, error) {
	var b strings.Builder
	b.WriteString(es.ind(depth))
	b.WriteString("{\n")
	for _, entry := range h.Entries {
		s, err := es.pair(entry.Key, entry.Val, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString(es.ind(depth))
	b.WriteString("}")
	return b.String(), nil
}

func (es *RenderState) branch(br *ast.Branch, depth int) (string, error) {
	var b strings.Builder
	s, err := es.arm("if", br.If.Cond, br.If.Body, depth)
	if err != nil {
		return "", err
	}
	b.WriteString(s)
	for _, ei := range br.ElseIfs {
		s, err := es.arm("else if", ei.Cond, ei.Body, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(" " + strings.TrimPrefix(s, es.ind(depth)))
	}
	if br.Else != nil {
		s, err := es.arm("else", nil, br.Else.Body, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(" " + strings.TrimPrefix(s, es.ind(depth)))
	}
	return b.String(), nil
}

// arm renders one branch arm as a block; kw is "if", "else if", or
// "else", the latter with a nil cond.
func (es *RenderState) arm(kw string, cond ast.Node, body []Node, depth int) (string, error) {
	var b strings.Builder
	b.WriteString(es.ind(depth))
	b.WriteString(es.color(ast.KindBranch, KeywordColor, kw))
	if cond != nil {
		c, err := es.inline(cond)
		if err != nil {
			return "", err
		}
		b.WriteString(" " + c)
	}
	b.WriteString(" {\n")
	for _, item := range body {
		s, err := es.node(item, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString(es.ind(depth))
	b.WriteString("}")
	return b.String(), nil
}

// Node aliases ast.Node in body slices.
type Node = ast.Node

// stripFirstIndent removes leading whitespace from the first line so a
// block value can continue the owning line.
func stripFirstIndent(s string) string {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return strings.TrimLeft(s, " ")
	}
	return strings.TrimLeft(s[:i], " ") + s[i:]
}
