// Package ast defines the abstract syntax tree of the Logstash pipeline
// configuration language.
//
// # Overview
//
// A configuration document is an ordered list of typed sections (input,
// filter, output), each containing plugins and conditional branches.
// Plugins carry attributes whose values are strings, numbers, booleans,
// arrays, hashes, or nested plugins; branch guards are expressions built
// from comparisons, regex matches, membership tests, negation, and
// boolean combination.
//
// The node set is closed: every node type is declared here and the
// parse, render, and tree packages switch exhaustively over it. Nodes
// own their children and carry no parent pointers; a tree is a plain
// value structure safe to share between readers.
//
// # Literal fidelity
//
// Leaf nodes preserve how their literal was spelled: String keeps the
// raw lexeme with its original quote character alongside the decoded
// value, Number keeps its integer-or-float kind and source lexeme,
// Regexp keeps the pattern body exactly as captured between its
// slashes, and Selector keeps the raw bracketed path. Rendering a tree
// therefore reproduces the original spelling of every literal even
// though the surrounding layout is regenerated.
//
// # Related packages
//
//   - github.com/elastide/lsconf/parse - parses text into ast nodes
//   - github.com/elastide/lsconf/render - regenerates source text
//   - github.com/elastide/lsconf/tree - canonical tagged-tree bridge
package ast
