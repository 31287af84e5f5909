package ast

// SectionTypes are the valid section type tags, in declaration order.
var SectionTypes = []string{"input", "filter", "output"}

// IsSectionType reports whether s names a pipeline stage.
func IsSectionType(s string) bool {
	for _, t := range SectionTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Section is a typed list of plugins and branches: one input, filter,
// or output block.
type Section struct {
	Type string
	// Body items are *Plugin or *Branch, in source order.
	Body []Node
}

// Document is a whole configuration: an ordered list of sections.
// Multiple sections of the same type are kept distinct; merging them
// is a downstream concern.
type Document struct {
	Sections []*Section
}

func (*Section) Kind() Kind  { return KindSection }
func (*Document) Kind() Kind { return KindDocument }

func (*Section) node()  {}
func (*Document) node() {}
