package flowcontrol

import (
	"fmt"

	"github.com/aalvaropc/primer/internal/lessons/optional"
)

// AgeGroup binds the matched age while checking its range.
func AgeGroup(age uint32) string {
	switch n := age; {
	case n == 0:
		return "I haven't celebrated my first birthday yet"
	case n >= 1 && n <= 12:
		return fmt.Sprintf("I'm a child of age %d", n)
	case n >= 13 && n <= 19:
		return fmt.Sprintf("I'm a teen of age %d", n)
	default:
		return fmt.Sprintf("I'm an old person of age %d", n)
	}
}

func SomeNumber() optional.Option[uint32] {
	return optional.Some[uint32](42)
}

// DescribeAnswer reports ok=false for None, which prints nothing.
func DescribeAnswer(o optional.Option[uint32]) (string, bool) {
	n, ok := o.Get()
	switch {
	case !ok:
		return "", false
	case n == 42:
		return fmt.Sprintf("The Answer: %d!", n), true
	default:
		return fmt.Sprintf("Not interesting... %d", n), true
	}
}
