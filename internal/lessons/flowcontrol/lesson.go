package flowcontrol

import (
	"fmt"
	"io"

	"github.com/aalvaropc/primer/internal/lessons/optional"
)

// Replacement is written over "Ferris" by the mutable iteration.
const Replacement = "There is a rustacean among us!"

// Run prints the control flow walkthrough to w.
func Run(w io.Writer) {
	_ = BigN()

	CountToFive(w)
	LabeledBreak(w)

	if result := LoopUntil(10); result != 20 {
		panic(fmt.Sprintf("loop result: expected 20, got %d", result))
	}

	FizzBuzzWhile(w, 100)
	FizzBuzzRange(w, 100)
	FizzBuzzInclusive(w, 100)

	iterateNames(w)

	number := 13
	fmt.Fprintf(w, "Tell me about %d\n", number)
	fmt.Fprintln(w, TellAbout(number))

	boolean := true
	fmt.Fprintf(w, "%t -> %d\n", boolean, Binary(boolean))

	fmt.Fprintln(w, MatchTriple(0, -2, 3))
	fmt.Fprintln(w, MatchSlice([]int{1, -2, 6}))

	fmt.Fprintln(w, "What color is it?")
	fmt.Fprintln(w, DescribeColor(RGB{R: 122, G: 17, B: 40}))

	references(w)

	fmt.Fprintln(w, MatchFoo(Foo{X: [2]uint32{1, 2}, Y: 3}))

	fmt.Fprintln(w, DescribeTemperature(Celsius(35)))
	fmt.Fprintln(w, Sign(4))

	fmt.Fprintln(w, "Tell me what type of person you are!")
	fmt.Fprintln(w, AgeGroup(15))
	if line, ok := DescribeAnswer(SomeNumber()); ok {
		fmt.Fprintln(w, line)
	}

	IfLet(w, optional.Some[int32](7), optional.None[int32](), optional.None[int32](), false)
	IfLetVariants(w, Bar{}, Baz{}, Qux{Value: 100})

	if count, item := GetCountItem("3 chairs"); count != 3 || item != "chairs" {
		panic(fmt.Sprintf("count item: got (%d, %q)", count, item))
	}

	WhileLet(w, optional.Some[int32](0))
}

func iterateNames(w io.Writer) {
	greet := func(name string) {
		if name == "Ferris" {
			fmt.Fprintln(w, Replacement)
			return
		}
		fmt.Fprintf(w, "Hello %s\n", name)
	}

	names := NewNames("Bob", "Frank", "Ferris")
	names.Each(greet)
	fmt.Fprintf(w, "names: %s\n", debugList(names.Items()))

	names = NewNames("Bob", "Frank", "Ferris")
	names.Drain(greet)

	names = NewNames("Bob", "Frank", "Ferris")
	names.EachMut(func(name *string) {
		if *name == "Ferris" {
			*name = Replacement
			return
		}
		*name = "Hello"
	})
	fmt.Fprintf(w, "names: %s\n", debugList(names.Items()))
}

// references shows value copies, pointer aliases and writes through a pointer.
func references(w io.Writer) {
	reference := new(int32)
	*reference = 4

	val := *reference
	fmt.Fprintf(w, "Got a value via destructuring: %d\n", val)
	fmt.Fprintf(w, "Got a value via dereferencing: %d\n", *reference)

	value := int32(5)
	r := &value
	fmt.Fprintf(w, "Got a reference to a value %d\n", *r)

	mutValue := int32(6)
	fmt.Fprintf(w, "mut_value is: %d\n", mutValue)
	m := &mutValue
	*m += 10
	fmt.Fprintf(w, "We added 10. 'mut_value': %d\n", *m)
	fmt.Fprintf(w, "mut_value is now: %d\n", mutValue)
}
