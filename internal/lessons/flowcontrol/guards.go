package flowcontrol

import "fmt"

// Foo is destructured field by field in MatchFoo.
type Foo struct {
	X [2]uint32
	Y uint32
}

func MatchFoo(f Foo) string {
	switch {
	case f.X[0] == 1:
		return fmt.Sprintf("First of x is 1, b = %d,  y = %d ", f.X[1], f.Y)
	case f.Y == 2:
		return fmt.Sprintf("y is 2, i = (%d, %d)", f.X[0], f.X[1])
	default:
		return fmt.Sprintf("y = %d, we don't care about x", f.Y)
	}
}

// Temperature is either Celsius or Fahrenheit.
type Temperature interface {
	isTemperature()
}

type (
	Celsius    int32
	Fahrenheit int32
)

func (Celsius) isTemperature()    {}
func (Fahrenheit) isTemperature() {}

// DescribeTemperature uses guarded arms on each variant.
func DescribeTemperature(t Temperature) string {
	switch v := t.(type) {
	case Celsius:
		if v > 30 {
			return fmt.Sprintf("%dC is above 30 Celsius", v)
		}
		return fmt.Sprintf("%dC is below 30 Celsius", v)
	case Fahrenheit:
		if v > 86 {
			return fmt.Sprintf("%dF is above 86 Fahrenheit", v)
		}
		return fmt.Sprintf("%dF is below 86 Fahrenheit", v)
	default:
		panic(fmt.Sprintf("unreachable: unknown temperature %T", t))
	}
}

// Sign classifies an unsigned number. The last arm cannot be reached for
// any uint8 and panics if it is.
func Sign(i uint8) string {
	switch {
	case i == 0:
		return "Zero"
	case i > 0:
		return "Greater than zero"
	default:
		panic("unreachable: should never happen")
	}
}
