package primitives

import (
	"fmt"
	"io"
	"unsafe"
)

// Run prints the primitives walkthrough to w.
func Run(w io.Writer) {
	integerX := int32(0x3AB)
	_ = integerX

	testTuple := Triple{A: true, B: false, C: true}
	_ = testTuple.A
	fmt.Fprintln(w, testTuple)

	fmt.Fprintf(w, "One element tuple!: %v\n", Single[uint32]{5})
	fmt.Fprintf(w, "Literally just an integer: %v\n", uint32(5))

	xs := [5]int32{1, 2, 3, 4, 5}

	var ys [500]int32
	for i := range ys {
		ys[i] = 69
	}

	fmt.Fprintln(w, xs[3])
	fmt.Fprintln(w, ys[333])

	fmt.Fprintf(w, "Number of elements in this array: %d\n", len(xs))
	fmt.Fprintf(w, "Array occupies %d bytes\n", unsafe.Sizeof(xs))

	AnalyzeSlice(w, xs[:])
	AnalyzeSlice(w, ys[0:4])

	var emptyArray [0]uint32
	emptySlice := []uint32{}
	_, _ = emptyArray, emptySlice

	for i := 0; i < len(xs)+1; i++ {
		if v, ok := Get(xs[:], i).Get(); ok {
			fmt.Fprintf(w, "%d: %d\n", i, v)
		} else {
			fmt.Fprintf(w, "Slow down! %d is too far!\n", i)
		}
	}
}
