package ir

type step struct {
	ev    Event
	typ   Type
	key   string
	value string
}

func steps(n *Node) []step {
	var res []step
	_ = Walk(n, func(y *Node, ev Event) error {
		s := step{ev: ev, typ: y.Type, value: y.Value}
		if ev != Exit && y != n && y.Parent.Type == ObjectType {
			s.key = y.Key
		}
		res = append(res, s)
		return nil
	})
	return res
}

// Equal reports whether a and b hold the same values in the same order.
// The keys of a and b themselves are not compared.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	sa, sb := steps(a), steps(b)
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
