package primitives

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetWithinBounds(t *testing.T) {
	xs := []int32{1, 2, 3, 4, 5}
	for i, want := range xs {
		v, ok := Get(xs, i).Get()
		if !ok || v != want {
			t.Fatalf("Get(%d) = %d, %v; want %d, true", i, v, ok, want)
		}
	}
}

func TestGetOutOfBoundsIsAbsent(t *testing.T) {
	xs := []int32{1, 2, 3, 4, 5}
	for _, i := range []int{-1, 5, 6, 1000} {
		if Get(xs, i).IsSome() {
			t.Fatalf("Get(%d) should be absent", i)
		}
	}
	if Get([]string{}, 0).IsSome() {
		t.Fatalf("empty slice lookup should be absent")
	}
}

func TestGetZeroThroughLenInclusive(t *testing.T) {
	xs := []int32{1, 2, 3, 4, 5}
	present, absent := 0, 0
	for i := 0; i <= len(xs); i++ {
		if Get(xs, i).IsSome() {
			present++
		} else {
			absent++
		}
	}
	if present != 5 || absent != 1 {
		t.Fatalf("expected 5 present + 1 absent, got %d + %d", present, absent)
	}
}

func TestReverse(t *testing.T) {
	got := Reverse(IntBool{Int: 7, Bool: true})
	if got.Bool != true || got.Int != 7 {
		t.Fatalf("unexpected %+v", got)
	}
	if got.String() != "(true, 7)" {
		t.Fatalf("unexpected rendering %q", got.String())
	}
}

func TestSingleRendersTrailingComma(t *testing.T) {
	if got := (Single[uint32]{5}).String(); got != "(5,)" {
		t.Fatalf("Single rendering = %q, want %q", got, "(5,)")
	}
	if got := fmt.Sprint(Single[string]{"a"}); got != "(a,)" {
		t.Fatalf("Single rendering = %q, want %q", got, "(a,)")
	}
}

func TestRunTranscript(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf)

	want := []string{
		"(true, false, true)",
		"One element tuple!: (5,)",
		"Literally just an integer: 5",
		"4",
		"69",
		"Number of elements in this array: 5",
		"Array occupies 20 bytes",
		"First element of the slice: 1",
		"The slice has 5 elements",
		"First element of the slice: 69",
		"The slice has 4 elements",
		"0: 1",
		"1: 2",
		"2: 3",
		"3: 4",
		"4: 5",
		"Slow down! 5 is too far!",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}
