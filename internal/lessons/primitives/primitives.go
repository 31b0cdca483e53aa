// Package primitives walks through scalars, tuples, arrays and slices.
package primitives

import (
	"fmt"
	"io"

	"github.com/aalvaropc/primer/internal/lessons/optional"
)

// Triple is a three element boolean tuple.
type Triple struct {
	A, B, C bool
}

func (t Triple) String() string {
	return fmt.Sprintf("(%t, %t, %t)", t.A, t.B, t.C)
}

// Single is a one element tuple. It renders with a trailing comma so it
// reads differently from a bare value.
type Single[T any] struct {
	V T
}

func (s Single[T]) String() string {
	return fmt.Sprintf("(%v,)", s.V)
}

// IntBool pairs an integer with a flag.
type IntBool struct {
	Int  int32
	Bool bool
}

type BoolInt struct {
	Bool bool
	Int  int32
}

func (p BoolInt) String() string {
	return fmt.Sprintf("(%t, %d)", p.Bool, p.Int)
}

// Reverse swaps the two halves of a pair.
func Reverse(pair IntBool) BoolInt {
	intParam, boolParam := pair.Int, pair.Bool
	return BoolInt{Bool: boolParam, Int: intParam}
}

// Get is a bounds-checked lookup: present for 0 <= i < len(xs), absent
// otherwise.
func Get[T any](xs []T, i int) optional.Option[T] {
	if i < 0 || i >= len(xs) {
		return optional.None[T]()
	}
	return optional.Some(xs[i])
}

// AnalyzeSlice prints the first element and length of s. s must not be empty.
func AnalyzeSlice(w io.Writer, s []int32) {
	fmt.Fprintf(w, "First element of the slice: %d\n", s[0])
	fmt.Fprintf(w, "The slice has %d elements\n", len(s))
}
