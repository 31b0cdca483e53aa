package customtypes

import (
	"fmt"
	"io"
)

// Run prints the custom types walkthrough to w.
func Run(w io.Writer) {
	name := "Peter"
	age := uint8(27)
	peter := Person{Name: name, Age: age}
	fmt.Fprintf(w, "%#v\n", peter)

	point := Point{X: 10.3, Y: 0.4}
	fmt.Fprintf(w, "Coordinates: (%v, %v)\n", point.X, point.Y)

	bottomRight := point
	bottomRight.X = 5.2
	fmt.Fprintf(w, "Second coordinate: (%v, %v)\n", bottomRight.X, bottomRight.Y)

	leftEdge, topEdge := point.X, point.Y
	_ = Rectangle{
		TopLeft:     Point{X: leftEdge, Y: topEdge},
		BottomRight: bottomRight,
	}

	_ = Unit{}

	pair := Pair{Int: 1, Float: 0.1}
	fmt.Fprintf(w, "This pair contains %v and %v\n", pair.Int, pair.Float)

	integer, decimal := pair.Int, pair.Float
	fmt.Fprintf(w, "This pair contains %v and %v\n", integer, decimal)

	rect := Square(Point{X: 0, Y: 0}, 10, 10)
	fmt.Fprintf(w, "The area of our rectangle is %v^2\n", RectArea(rect))

	events := []WebEvent{
		KeyPress{Key: 'x'},
		Paste{Text: "my test"},
		Click{X: 20, Y: 80},
		PageLoad{},
		PageUnload{},
	}
	for _, ev := range events {
		fmt.Fprintln(w, Inspect(ev))
	}

	_ = Add.Run(1, 2)

	status := Poor
	work := Civilian

	switch status {
	case Rich:
		fmt.Fprintln(w, "The rich have lots of money!")
	case Poor:
		fmt.Fprintln(w, "The poor have no money...")
	}

	switch work {
	case Civilian:
		fmt.Fprintln(w, "Civilians work!")
	case Soldier:
		fmt.Fprintln(w, "Soldiers fight!")
	}

	fmt.Fprintf(w, "Zero is %d\n", int32(Zero))
	fmt.Fprintf(w, "One is %d\n", int32(One))

	fmt.Fprintf(w, "Roses are %s\n", Red.Hex())
	fmt.Fprintf(w, "Violets are %s\n", Blue.Hex())

	list := NewList()
	list = Prepend(list, 1)
	list = Prepend(list, 2)
	list = Prepend(list, 3)

	fmt.Fprintf(w, "Linked list has length: %d\n", list.Len())
	fmt.Fprintln(w, list.String())

	n := int32(16)
	fmt.Fprintf(w, "This is %s\n", Language)
	fmt.Fprintf(w, "The threshold is %d\n", Threshold)
	size := "small"
	if IsBig(n) {
		size = "big"
	}
	fmt.Fprintf(w, "%d is %s\n", n, size)
}
