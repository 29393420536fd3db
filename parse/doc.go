// Package parse parses JSON text into a node tree.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.MaxDepth(64))
//
// Whitespace outside string literals is removed before parsing. The parser
// then repeatedly looks for the leftmost of { } [ ] : , and lets it decide
// what the text before it means. It builds the tree in a single forward
// pass: a closing bracket leaves a placeholder node behind, which either
// becomes the next member after a comma or moves up one level for every
// further closing bracket.
//
// # Related Packages
//
//   - github.com/signadot/simplejson/ir - Node tree
//   - github.com/signadot/simplejson/encode - Encode a node tree to text
//   - github.com/signadot/simplejson/token - Whitespace and delimiters
package parse
