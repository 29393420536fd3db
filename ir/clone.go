package ir

// Clone returns a deep copy of n and its members. The copy is a standalone
// root: it has no key, parent or siblings, whatever n had.
func (n *Node) Clone() *Node {
	var (
		res *Node
		// open containers of the copy and the last member linked into each
		open  []*Node
		tails []*Node
	)
	err := Walk(n, func(y *Node, ev Event) error {
		if ev == Exit {
			open = open[:len(open)-1]
			tails = tails[:len(tails)-1]
			return nil
		}
		c := &Node{Type: y.Type, Key: y.Key, Value: y.Value}
		if len(open) == 0 {
			c.Key = ""
			res = c
		} else {
			i := len(open) - 1
			c.Parent = open[i]
			if tails[i] == nil {
				open[i].Child = c
			} else {
				tails[i].Next = c
				c.Prev = tails[i]
			}
			tails[i] = c
		}
		if ev == Enter {
			open = append(open, c)
			tails = append(tails, nil)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	return res
}
