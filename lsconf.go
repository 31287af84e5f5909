// Package lsconf processes Logstash pipeline configuration files: it
// parses them into an AST, renders the AST back to canonical text, and
// converts to and from a JSON-safe tagged tree for interchange and
// comparison.
//
// The subpackages carry the layers: token holds the lexical
// primitives, ast the node types, parse the grammar, render the
// unparser, and tree the tagged bridge. This package ties them into
// the operations most callers want.
package lsconf

import (
	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/parse"
	"github.com/elastide/lsconf/render"
	"github.com/elastide/lsconf/tree"
)

// Parse parses a complete configuration document.
func Parse(src []byte, opts ...parse.Option) (*ast.Document, error) {
	return parse.Parse(src, opts...)
}

// ParseString is Parse over a string.
func ParseString(src string, opts ...parse.Option) (*ast.Document, error) {
	return parse.Parse([]byte(src), opts...)
}

// Fragment parses src as a single node of the given kind.
func Fragment(kind ast.Kind, src []byte, opts ...parse.Option) (ast.Node, error) {
	return parse.Fragment(kind, src, opts...)
}

// Render reports the canonical text of a node. Parsing the result of
// rendering a document yields an equal tree, and re-rendering that
// parse yields the same text.
func Render(n ast.Node, opts ...render.Option) (string, error) {
	return render.String(n, opts...)
}

// ToTree maps a node to its canonical tagged tree.
func ToTree(n ast.Node) (tree.Value, error) {
	return tree.FromNode(n)
}

// FromTree rebuilds a node from a canonical tagged tree.
func FromTree(v tree.Value) (ast.Node, error) {
	return tree.ToNode(v)
}

// ToJSON renders a node's canonical tree as JSON.
func ToJSON(n ast.Node) ([]byte, error) {
	v, err := tree.FromNode(n)
	if err != nil {
		return nil, err
	}
	return tree.Marshal(v)
}

// FromJSON rebuilds a node from canonical-tree JSON.
func FromJSON(data []byte) (ast.Node, error) {
	v, err := tree.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return tree.ToNode(v)
}
