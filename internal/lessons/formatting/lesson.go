package formatting

import (
	"fmt"
	"io"
)

// Structure has no String method, so only debug rendering applies.
type Structure struct {
	Value int32
}

// Run prints the formatting walkthrough to w.
func Run(w io.Writer) {
	x := 5 + 5
	y := 21

	fmt.Fprintln(w, MustRender("{0}, test, {1}, test2, {0}", x, y))
	fmt.Fprintln(w, MustRender("{first_thing}, testing, {second_thing}",
		Named("first_thing", x),
		Named("second_thing", y),
	))

	fmt.Fprintln(w, MustRender("{}", x+y))
	fmt.Fprintln(w, MustRender("{:b}", x+y))
	fmt.Fprintln(w, MustRender("{:x}", x+y))

	fmt.Fprintln(w, MustRender("{number:>5}", Named("number", y)))
	fmt.Fprintln(w, MustRender("{number:0<5}", Named("number", y)))
	fmt.Fprintln(w, MustRender("{number:0>width$}", Named("number", y), Named("width", x)))

	number := 1.0
	fmt.Fprintln(w, MustRender("{number}", Named("number", number)))

	pi := 3.141592
	fmt.Fprintln(w, MustRender("{0:.2}", pi))

	fmt.Fprintln(w, MustRender("{} vs {:?}", "plain", "plain"))
	fmt.Fprintln(w, MustRender("{:?}", Structure{Value: 3}))
}
