package ast

// Array is an ordered sequence of value nodes. Order is significant and
// preserved through parse, render, and the tree bridge.
type Array struct {
	Elems []Node
}

// HashEntry is one key => value pair of a Hash. Key is a String,
// Bareword, or Number.
type HashEntry struct {
	Key Node
	Val Node
}

// Hash is an ordered list of entries. Insertion order is preserved on
// output; equality of the canonical tree form is what downstream
// comparisons use.
type Hash struct {
	Entries []*HashEntry
}

// Attribute is a name => value pair inside a plugin. Name is a String
// or Bareword; the value may be any value node, including a nested
// Plugin used codec-style.
type Attribute struct {
	Name  Node
	Value Node
}

// Plugin is a named block of attributes. Name keeps the spelling from
// the source, including quotes when the name was a quoted string. A
// plugin with zero attributes is valid.
type Plugin struct {
	Name       string
	Attributes []*Attribute
}

func (*Array) Kind() Kind     { return KindArray }
func (*HashEntry) Kind() Kind { return KindHashEntry }
func (*Hash) Kind() Kind      { return KindHash }
func (*Attribute) Kind() Kind { return KindAttribute }
func (*Plugin) Kind() Kind    { return KindPlugin }

func (*Array) node()     {}
func (*HashEntry) node() {}
func (*Hash) node()      {}
func (*Attribute) node() {}
func (*Plugin) node()    {}
