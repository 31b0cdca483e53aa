// Package bindings walks through mutability, block scope, shadowing and
// declare-then-initialize.
package bindings

import (
	"fmt"
	"io"
)

// Run prints the bindings walkthrough to w.
func Run(w io.Writer) {
	mutableBinding := 1
	fmt.Fprintf(w, "Before mutation: %d\n", mutableBinding)
	mutableBinding++
	fmt.Fprintf(w, "After mutation: %d\n", mutableBinding)

	longLived := 1
	{
		shortLived := 2
		fmt.Fprintf(w, "inner short: %d\n", shortLived)
	}
	fmt.Fprintf(w, "outer long: %d\n", longLived)

	Shadow(w)

	var aBinding int
	{
		x := 2
		aBinding = x * x
	}
	fmt.Fprintf(w, "A binding: %d\n", aBinding)

	var anotherBinding int
	anotherBinding = 1
	fmt.Fprintf(w, "Another binding: %d\n", anotherBinding)

	Freeze(7, 3)
}

// Shadow hides an int binding behind a string in an inner block, then
// replaces it in the outer scope.
func Shadow(w io.Writer) {
	shadowed := 1
	{
		fmt.Fprintf(w, "Before being shadowed: %d\n", shadowed)

		shadowed := "abc"
		fmt.Fprintf(w, "Shadowed in inner block: %s\n", shadowed)
	}
	fmt.Fprintf(w, "Outside inner block: %d\n", shadowed)

	shadowed = 2
	fmt.Fprintf(w, "Shadowed in outer block: %d\n", shadowed)
}

// Freeze copies start into an inner binding that is only read, then writes
// next to the outer one once the inner scope ends. It returns the inner copy
// and the final outer value.
func Freeze(start, next int32) (inner, outer int32) {
	mutableInteger := start
	{
		frozen := mutableInteger
		inner = frozen
	}
	mutableInteger = next
	return inner, mutableInteger
}
