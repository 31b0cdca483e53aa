package flowcontrol

import "fmt"

// TellAbout matches a number against literals, alternatives and a range.
func TellAbout(n int) string {
	switch {
	case n == 1:
		return "Haha, one!"
	case n == 2 || n == 3 || n == 5 || n == 7 || n == 11:
		return "This is a prime"
	case n >= 13 && n <= 19:
		return "A teen"
	default:
		return "Ain't nothin' special"
	}
}

func Binary(b bool) int {
	switch b {
	case false:
		return 0
	default:
		return 1
	}
}

// MatchTriple destructures a three element tuple; the first arm that fits wins.
func MatchTriple(a, b, c int) string {
	switch {
	case a == 0:
		return fmt.Sprintf("0 then %d then %d", b, c)
	case a == 1:
		return "First is 1 and the rest who knows"
	case c == 2:
		return "Last is 2 and who cares about the rest"
	case a == 3 && c == 4:
		return "First is 3, last is 4, what's the middle? I don't care"
	default:
		return "Who cares as usual"
	}
}

// MatchSlice binds the head, the middle and the last element of xs.
// xs must hold at least two elements.
func MatchSlice(xs []int) string {
	if len(xs) < 2 {
		panic(fmt.Sprintf("unreachable: slice of length %d", len(xs)))
	}
	if xs[0] == 3 {
		second, tail := xs[1], xs[2:]
		return fmt.Sprintf("array[0] = 3, array[1] = %d and the other elements were %s", second, debugList(tail))
	}
	first, middle, last := xs[0], xs[1:len(xs)-1], xs[len(xs)-1]
	return fmt.Sprintf("array[0] = %d, middle = %s, array[%d] = %d", first, debugList(middle), len(xs)-1, last)
}
