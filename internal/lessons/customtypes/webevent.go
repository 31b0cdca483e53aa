package customtypes

import "fmt"

// WebEvent is one of PageLoad, PageUnload, KeyPress, Paste or Click.
type WebEvent interface {
	isWebEvent()
}

type (
	PageLoad   struct{}
	PageUnload struct{}
	KeyPress   struct{ Key rune }
	Paste      struct{ Text string }
	Click      struct{ X, Y int64 }
)

func (PageLoad) isWebEvent()   {}
func (PageUnload) isWebEvent() {}
func (KeyPress) isWebEvent()   {}
func (Paste) isWebEvent()      {}
func (Click) isWebEvent()      {}

// Inspect describes an event.
func Inspect(e WebEvent) string {
	switch ev := e.(type) {
	case PageLoad:
		return "Page loaded"
	case PageUnload:
		return "Page unloaded"
	case KeyPress:
		return fmt.Sprintf("Pressed %q", string(ev.Key))
	case Paste:
		return fmt.Sprintf("Pasted %q", ev.Text)
	case Click:
		return fmt.Sprintf("Clicked at x=%d, y=%d", ev.X, ev.Y)
	default:
		panic(fmt.Sprintf("unreachable: unknown web event %T", e))
	}
}
