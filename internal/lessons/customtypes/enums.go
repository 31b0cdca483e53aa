package customtypes

import "fmt"

// Operation is an arithmetic operation on two integers.
type Operation int

const (
	Add Operation = iota
	Subtract
)

func (op Operation) Run(x, y int32) int32 {
	switch op {
	case Add:
		return x + y
	case Subtract:
		return x - y
	default:
		panic(fmt.Sprintf("unreachable: operation %d", int(op)))
	}
}

type Status int

const (
	Rich Status = iota
	Poor
)

type Work int

const (
	Civilian Work = iota
	Soldier
)

// Number has implicit discriminants starting at zero.
type Number int

const (
	Zero Number = iota
	One
	Two
)

// Color has explicit RGB discriminants.
type Color int32

const (
	Red   Color = 0xff0000
	Green Color = 0x00ff00
	Blue  Color = 0x0000ff
)

// Hex renders c as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", int32(c))
}

const (
	Language  = "Go"
	Threshold = 10
)

func IsBig(n int32) bool {
	return n > Threshold
}
