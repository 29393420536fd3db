package parse

type parseOpts struct {
	stripAll bool
	maxDepth int
}

type ParseOption func(*parseOpts)

// StripAll removes whitespace everywhere, string literals included, and
// looks for delimiters without regard to quotes. A string value holding a
// space or a delimiter is then corrupted or rejected.
func StripAll() ParseOption {
	return func(o *parseOpts) { o.stripAll = true }
}

// MaxDepth rejects documents nesting objects and arrays deeper than n.
// Zero means no limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
