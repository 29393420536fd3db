package ir

import "fmt"

type Event int

const (
	// Enter is sent for an object or array before its members.
	Enter Event = iota
	// Leaf is sent for a scalar.
	Leaf
	// Exit is sent for an object or array after its members.
	Exit
)

func (e Event) String() string {
	switch e {
	case Enter:
		return "enter"
	case Leaf:
		return "leaf"
	case Exit:
		return "exit"
	default:
		return "<unknown event>"
	}
}

// Walk visits root and everything beneath it in document order.
//
// It descends through Child, moves across through Next and, at the end of
// a sibling chain, climbs back through Parent sending one Exit per level
// until it finds an ancestor with a next sibling. Walk never follows the
// Next link of root itself, so it may be used on a member of a larger
// tree. No recursion is involved, the depth of the tree is not limited by
// the stack.
func Walk(root *Node, f func(n *Node, ev Event) error) error {
	n := root
	for {
		if n.Type.IsLeaf() {
			if err := f(n, Leaf); err != nil {
				return err
			}
		} else {
			if err := f(n, Enter); err != nil {
				return err
			}
			if n.Child != nil {
				n = n.Child
				continue
			}
			if err := f(n, Exit); err != nil {
				return err
			}
		}
		for n != root && n.Next == nil {
			n = n.Parent
			if n == nil {
				return fmt.Errorf("%w: member without parent under %s", ErrCorrupt, root)
			}
			if err := f(n, Exit); err != nil {
				return err
			}
		}
		if n == root {
			return nil
		}
		n = n.Next
	}
}
