// Package ir provides the node tree behind a JSON document.
//
// # Node Structure
//
// A Node holds one JSON value. Its Type says how to read it:
//
//   - NullType, BoolType, NumberType, StringType: scalars. The JSON text of
//     the scalar is kept in Value (string quotes removed, escapes kept
//     verbatim).
//   - ObjectType, ArrayType: containers. Value is empty and the members hang
//     off Child, chained through Next in document order.
//
// Members of an object carry their property name in Key. Every member
// points back at its container through Parent. These back links never own
// anything; the tree is owned through Child and Next alone.
//
// # Traversal
//
// Walk visits a tree in document order without recursion, sending Enter and
// Exit around containers and Leaf for scalars. Encoding, cloning, comparison
// and conversion are all built on it.
//
//	err := ir.Walk(root, func(n *ir.Node, ev ir.Event) error {
//	    if ev == ir.Leaf {
//	        fmt.Println(n.Key, n.ValueText())
//	    }
//	    return nil
//	})
//
// # Related Packages
//
//   - github.com/signadot/simplejson/parse - Parse text to a node tree
//   - github.com/signadot/simplejson/encode - Encode a node tree to text
package ir
