package flowcontrol

// Names is a sequence of names with three access contracts: Each borrows
// read-only, EachMut rewrites in place, Drain consumes the sequence.
type Names struct {
	items   []string
	drained bool
}

func NewNames(items ...string) *Names {
	cp := make([]string, len(items))
	copy(cp, items)
	return &Names{items: cp}
}

// Each visits every name without modifying the sequence.
func (n *Names) Each(fn func(name string)) {
	n.mustLive()
	for _, name := range n.items {
		fn(name)
	}
}

// EachMut visits every name by reference; writes are kept.
func (n *Names) EachMut(fn func(name *string)) {
	n.mustLive()
	for i := range n.items {
		fn(&n.items[i])
	}
}

// Drain hands every name to fn and leaves the sequence unusable.
func (n *Names) Drain(fn func(name string)) {
	n.mustLive()
	items := n.items
	n.items = nil
	n.drained = true
	for _, name := range items {
		fn(name)
	}
}

// Items returns a copy of the current names.
func (n *Names) Items() []string {
	n.mustLive()
	out := make([]string, len(n.items))
	copy(out, n.items)
	return out
}

func (n *Names) Drained() bool { return n.drained }

func (n *Names) mustLive() {
	if n.drained {
		panic("names: use after Drain")
	}
}
