package flowcontrol

import "fmt"

// Color is one of Red, Blue, Green, RGB, HSV, HSL, CMY or CMYK.
type Color interface {
	isColor()
}

type (
	Red   struct{}
	Blue  struct{}
	Green struct{}
	RGB   struct{ R, G, B uint32 }
	HSV   struct{ H, S, V uint32 }
	HSL   struct{ H, S, L uint32 }
	CMY   struct{ C, M, Y uint32 }
	CMYK  struct{ C, M, Y, K uint32 }
)

func (Red) isColor()   {}
func (Blue) isColor()  {}
func (Green) isColor() {}
func (RGB) isColor()   {}
func (HSV) isColor()   {}
func (HSL) isColor()   {}
func (CMY) isColor()   {}
func (CMYK) isColor()  {}

func DescribeColor(c Color) string {
	switch v := c.(type) {
	case Red:
		return "The color is Red!"
	case Blue:
		return "The color is Blue!"
	case Green:
		return "The color is Green!"
	case RGB:
		return fmt.Sprintf("Red: %d, green: %d, and blue: %d!", v.R, v.G, v.B)
	case HSV:
		return fmt.Sprintf("Hue: %d, saturation: %d, value: %d!", v.H, v.S, v.V)
	case HSL:
		return fmt.Sprintf("Hue: %d, saturation: %d, lightness: %d!", v.H, v.S, v.L)
	case CMY:
		return fmt.Sprintf("Cyan: %d, magenta: %d, yellow: %d!", v.C, v.M, v.Y)
	case CMYK:
		return fmt.Sprintf("Cyan: %d, magenta: %d, yellow: %d, key (black): %d!", v.C, v.M, v.Y, v.K)
	default:
		panic(fmt.Sprintf("unreachable: unknown color %T", c))
	}
}
