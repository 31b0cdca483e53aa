package customtypes

import "fmt"

// List is either Nil or a Cons cell owning the rest of the list.
type List interface {
	// Len counts the Cons cells.
	Len() uint32
	String() string
}

type Cons struct {
	Head uint32
	Tail List
}

type Nil struct{}

// NewList returns an empty list.
func NewList() List {
	return Nil{}
}

// Prepend returns a new list with elem in front of l. The returned list owns
// l; callers rebind and stop using l.
func Prepend(l List, elem uint32) List {
	if l == nil {
		l = Nil{}
	}
	return Cons{Head: elem, Tail: l}
}

// rest treats a missing tail as Nil.
func (c Cons) rest() List {
	if c.Tail == nil {
		return Nil{}
	}
	return c.Tail
}

func (c Cons) Len() uint32 { return 1 + c.rest().Len() }

func (Nil) Len() uint32 { return 0 }

func (c Cons) String() string {
	return fmt.Sprintf("%d, %s", c.Head, c.rest().String())
}

func (Nil) String() string { return "Nil" }
