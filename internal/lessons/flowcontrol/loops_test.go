package flowcontrol

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestFizzBuzzRule(t *testing.T) {
	for n := 1; n <= 100; n++ {
		var want string
		switch {
		case n%15 == 0:
			want = "fizzbuzz"
		case n%3 == 0:
			want = "fizz"
		case n%5 == 0:
			want = "buzz"
		default:
			want = strconv.Itoa(n)
		}
		if got := FizzBuzz(n); got != want {
			t.Fatalf("FizzBuzz(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFizzBuzzStylesAgree(t *testing.T) {
	var while, rng, incl bytes.Buffer
	FizzBuzzWhile(&while, 100)
	FizzBuzzRange(&rng, 100)
	FizzBuzzInclusive(&incl, 100)

	if while.String() != rng.String() || rng.String() != incl.String() {
		t.Fatalf("iteration styles disagree")
	}
	lines := strings.Split(strings.TrimSuffix(while.String(), "\n"), "\n")
	if len(lines) != 100 {
		t.Fatalf("expected 100 lines, got %d", len(lines))
	}
	if lines[0] != "1" || lines[14] != "fizzbuzz" || lines[99] != "buzz" {
		t.Fatalf("unexpected lines: %q %q %q", lines[0], lines[14], lines[99])
	}
}

func TestLoopUntilYieldsTwiceTheLimit(t *testing.T) {
	if got := LoopUntil(10); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
}

func TestLoopUntilSmallLimits(t *testing.T) {
	cases := []struct {
		limit int
		want  int
	}{
		{limit: -3, want: 2},
		{limit: 0, want: 2},
		{limit: 1, want: 2},
		{limit: 2, want: 4},
	}
	for _, tc := range cases {
		done := make(chan int, 1)
		go func() { done <- LoopUntil(tc.limit) }()
		select {
		case got := <-done:
			if got != tc.want {
				t.Fatalf("LoopUntil(%d) = %d, want %d", tc.limit, got, tc.want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("LoopUntil(%d) did not return", tc.limit)
		}
	}
}

func TestCountToFive(t *testing.T) {
	var buf bytes.Buffer
	CountToFive(&buf)
	want := "Haha, one!\n1\n2\n3\n4\n5\nI think we get the point\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestLabeledBreakSkipsTail(t *testing.T) {
	var buf bytes.Buffer
	LabeledBreak(&buf)
	if strings.Contains(buf.String(), "never be reached") {
		t.Fatalf("statement after the inner loop ran")
	}
	want := "Entered the outer loop\nEntered the inner loop\nExited the outer loop\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestBigN(t *testing.T) {
	if BigN() != 4 {
		t.Fatalf("expected 4")
	}
}
