package render

type Option func(*RenderState)

// Indent sets the number of spaces per nesting level. The default is
// two.
func Indent(n int) Option {
	return func(es *RenderState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// WithColors enables ANSI-colored output.
func WithColors(c *Colors) Option {
	return func(es *RenderState) { es.Color = c.Color }
}
