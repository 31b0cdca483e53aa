// Package flowcontrol walks through branching, loops, iteration and every
// pattern matching form the lessons cover.
package flowcontrol

import (
	"fmt"
	"io"
	"strconv"
)

// BigN is an if/else chain used as a value.
func BigN() int {
	var n int
	if 5 < 2 {
		n = 10 * 3
	} else if 7 > 3 {
		n = 4
	} else {
		n = 9
	}
	return n
}

// CountToFive loops without a condition and exits manually at 5.
func CountToFive(w io.Writer) {
	count := uint32(0)
	for {
		count++

		if count == 1 {
			fmt.Fprintln(w, "Haha, one!")
		}

		fmt.Fprintln(w, count)

		if count == 5 {
			fmt.Fprintln(w, "I think we get the point")
			break
		}
	}
}

// LabeledBreak leaves the outer loop from inside the inner one.
func LabeledBreak(w io.Writer) {
outer:
	for {
		fmt.Fprintln(w, "Entered the outer loop")

		for {
			fmt.Fprintln(w, "Entered the inner loop")
			break outer
		}

		fmt.Fprintln(w, "This point will never be reached")
	}
	fmt.Fprintln(w, "Exited the outer loop")
}

// LoopUntil increments a counter until it reaches limit and yields counter*2.
// The counter always takes at least one step, so limits below 1 yield 2.
func LoopUntil(limit int) int {
	counter := 0
	var result int
	for {
		counter++
		if counter >= limit {
			result = counter * 2
			break
		}
	}
	return result
}

// FizzBuzz returns the word for n.
func FizzBuzz(n int) string {
	switch {
	case n%15 == 0:
		return "fizzbuzz"
	case n%3 == 0:
		return "fizz"
	case n%5 == 0:
		return "buzz"
	default:
		return strconv.Itoa(n)
	}
}

// FizzBuzzWhile prints 1..upto with a pre-test loop.
func FizzBuzzWhile(w io.Writer, upto int) {
	n := 1
	for n < upto+1 {
		fmt.Fprintln(w, FizzBuzz(n))
		n++
	}
}

// FizzBuzzRange prints 1..upto iterating a half-open range.
func FizzBuzzRange(w io.Writer, upto int) {
	for n := 0; n < upto; n++ {
		fmt.Fprintln(w, FizzBuzz(n+1))
	}
}

// FizzBuzzInclusive prints 1..upto iterating a closed range.
func FizzBuzzInclusive(w io.Writer, upto int) {
	for n := 1; n <= upto; n++ {
		fmt.Fprintln(w, FizzBuzz(n))
	}
}
