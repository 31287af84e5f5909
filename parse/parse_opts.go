package parse

type parseOpts struct {
	allowTrailing bool
}

type Option func(*parseOpts)

// AllowTrailing makes fragment parsing ignore unconsumed input after
// the requested node instead of treating it as a syntax error.
func AllowTrailing() Option {
	return func(o *parseOpts) { o.allowTrailing = true }
}
