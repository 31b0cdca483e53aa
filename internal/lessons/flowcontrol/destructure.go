package flowcontrol

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aalvaropc/primer/internal/lessons/optional"
)

// Foo2 is one of Bar, Baz or Qux.
type Foo2 interface {
	isFoo2()
}

type (
	Bar struct{}
	Baz struct{}
	Qux struct{ Value uint32 }
)

func (Bar) isFoo2() {}
func (Baz) isFoo2() {}
func (Qux) isFoo2() {}

// IfLet prints one line per optional: the matched value, or the fallback
// chosen by the else/else-if chain.
func IfLet(w io.Writer, number, letter, emoticon optional.Option[int32], likeLetters bool) {
	if i, ok := number.Get(); ok {
		fmt.Fprintf(w, "Matched %d!\n", i)
	} else {
		fmt.Fprintln(w, "Didn't match a number. Let's go with a letter!")
	}

	if i, ok := letter.Get(); ok {
		fmt.Fprintf(w, "Matched %d!\n", i)
	} else {
		fmt.Fprintln(w, "Didn't match a number. Let's go with a letter!")
	}

	if i, ok := emoticon.Get(); ok {
		fmt.Fprintf(w, "Matched %d!\n", i)
	} else if likeLetters {
		fmt.Fprintln(w, "Didn't match a number. Let's go with a letter!")
	} else {
		fmt.Fprintln(w, "I don't like letters. Let's go with an emoticon :)!")
	}
}

// IfLetVariants matches single variants without requiring equality on Foo2.
func IfLetVariants(w io.Writer, a, b, c Foo2) {
	if _, ok := a.(Bar); ok {
		fmt.Fprintln(w, "a is foobar")
	}
	if _, ok := b.(Bar); ok {
		fmt.Fprintln(w, "b is foobar")
	}
	if q, ok := c.(Qux); ok {
		fmt.Fprintf(w, "c is %d\n", q.Value)
	}
	if q, ok := c.(Qux); ok && q.Value == 100 {
		fmt.Fprintln(w, "c is one hundred")
	}
}

// GetCountItem splits "3 chairs" into (3, "chairs"). A string that does not
// have that shape panics; nothing after a failed match runs.
func GetCountItem(s string) (uint64, string) {
	countStr, item, ok := strings.Cut(s, " ")
	if !ok {
		panic(fmt.Sprintf("Can't segment count item pair: '%s'", s))
	}
	count, err := strconv.ParseUint(countStr, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("Can't parse integer: '%s'", countStr))
	}
	return count, item
}

// WhileLet counts up from start until the value passes 9, then clears it.
func WhileLet(w io.Writer, start optional.Option[int32]) {
	opt := start
	for {
		i, ok := opt.Get()
		if !ok {
			break
		}
		if i > 9 {
			fmt.Fprintln(w, "Greater than 9, quit!")
			opt = optional.None[int32]()
		} else {
			fmt.Fprintf(w, "i is %d. Try again\n", i)
			opt = optional.Some(i + 1)
		}
	}
}
