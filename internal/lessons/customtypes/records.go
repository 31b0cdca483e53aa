// Package customtypes walks through records, tagged unions, enumerations,
// constants and a recursive list.
package customtypes

import "fmt"

// Unit carries no fields.
type Unit struct{}

// Pair is a positional record.
type Pair struct {
	Int   int32
	Float float32
}

type Point struct {
	X, Y float32
}

// Rectangle is described by its top-left and bottom-right corners.
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
}

type Person struct {
	Name string
	Age  uint8
}

// GoString is the %#v debug form, field names in lower case.
func (p Person) GoString() string {
	return fmt.Sprintf("Person { name: %q, age: %d }", p.Name, p.Age)
}

// RectArea returns width*height of r.
func RectArea(r Rectangle) float32 {
	x1, y1 := r.TopLeft.X, r.TopLeft.Y
	x2, y2 := r.BottomRight.X, r.BottomRight.Y

	width := x2 - x1
	height := y2 - y1
	return width * height
}

// Square builds a rectangle anchored at topLeft.
func Square(topLeft Point, width, height float32) Rectangle {
	return Rectangle{
		TopLeft:     topLeft,
		BottomRight: Point{X: topLeft.X + width, Y: topLeft.Y + height},
	}
}
