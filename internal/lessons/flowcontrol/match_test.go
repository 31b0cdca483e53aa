package flowcontrol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aalvaropc/primer/internal/lessons/optional"
)

func TestTellAbout(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "Haha, one!"},
		{2, "This is a prime"},
		{11, "This is a prime"},
		{13, "A teen"},
		{19, "A teen"},
		{20, "Ain't nothin' special"},
		{0, "Ain't nothin' special"},
	}
	for _, c := range cases {
		if got := TellAbout(c.n); got != c.want {
			t.Errorf("TellAbout(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestMatchTripleFirstArmWins(t *testing.T) {
	cases := []struct {
		a, b, c int
		want    string
	}{
		{0, -2, 3, "0 then -2 then 3"},
		{0, 5, 2, "0 then 5 then 2"},
		{1, 9, 2, "First is 1 and the rest who knows"},
		{7, 9, 2, "Last is 2 and who cares about the rest"},
		{3, 9, 4, "First is 3, last is 4, what's the middle? I don't care"},
		{3, 9, 5, "Who cares as usual"},
	}
	for _, c := range cases {
		if got := MatchTriple(c.a, c.b, c.c); got != c.want {
			t.Errorf("MatchTriple(%d,%d,%d) = %q, want %q", c.a, c.b, c.c, got, c.want)
		}
	}
}

func TestMatchSlice(t *testing.T) {
	if got := MatchSlice([]int{1, -2, 6}); got != "array[0] = 1, middle = [-2], array[2] = 6" {
		t.Fatalf("unexpected %q", got)
	}
	if got := MatchSlice([]int{3, -2, 6, 7}); got != "array[0] = 3, array[1] = -2 and the other elements were [6, 7]" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestDescribeColorExhaustive(t *testing.T) {
	cases := []struct {
		in   Color
		want string
	}{
		{Red{}, "The color is Red!"},
		{Blue{}, "The color is Blue!"},
		{Green{}, "The color is Green!"},
		{RGB{122, 17, 40}, "Red: 122, green: 17, and blue: 40!"},
		{HSV{1, 2, 3}, "Hue: 1, saturation: 2, value: 3!"},
		{HSL{1, 2, 3}, "Hue: 1, saturation: 2, lightness: 3!"},
		{CMY{1, 2, 3}, "Cyan: 1, magenta: 2, yellow: 3!"},
		{CMYK{1, 2, 3, 4}, "Cyan: 1, magenta: 2, yellow: 3, key (black): 4!"},
	}
	for _, c := range cases {
		if got := DescribeColor(c.in); got != c.want {
			t.Errorf("DescribeColor(%T) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDescribeTemperatureGuards(t *testing.T) {
	cases := []struct {
		in   Temperature
		want string
	}{
		{Celsius(35), "35C is above 30 Celsius"},
		{Celsius(30), "30C is below 30 Celsius"},
		{Fahrenheit(90), "90F is above 86 Fahrenheit"},
		{Fahrenheit(86), "86F is below 86 Fahrenheit"},
	}
	for _, c := range cases {
		if got := DescribeTemperature(c.in); got != c.want {
			t.Errorf("DescribeTemperature(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(0) != "Zero" || Sign(4) != "Greater than zero" || Sign(255) != "Greater than zero" {
		t.Fatalf("unexpected sign classification")
	}
}

func TestMatchFoo(t *testing.T) {
	if got := MatchFoo(Foo{X: [2]uint32{1, 2}, Y: 3}); got != "First of x is 1, b = 2,  y = 3 " {
		t.Fatalf("unexpected %q", got)
	}
	if got := MatchFoo(Foo{X: [2]uint32{5, 6}, Y: 2}); got != "y is 2, i = (5, 6)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := MatchFoo(Foo{X: [2]uint32{5, 6}, Y: 9}); got != "y = 9, we don't care about x" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestAgeGroup(t *testing.T) {
	cases := map[uint32]string{
		0:  "I haven't celebrated my first birthday yet",
		1:  "I'm a child of age 1",
		12: "I'm a child of age 12",
		15: "I'm a teen of age 15",
		40: "I'm an old person of age 40",
	}
	for age, want := range cases {
		if got := AgeGroup(age); got != want {
			t.Errorf("AgeGroup(%d) = %q, want %q", age, got, want)
		}
	}
}

func TestDescribeAnswer(t *testing.T) {
	if s, ok := DescribeAnswer(SomeNumber()); !ok || s != "The Answer: 42!" {
		t.Fatalf("unexpected %q %v", s, ok)
	}
	if s, ok := DescribeAnswer(optional.Some[uint32](7)); !ok || s != "Not interesting... 7" {
		t.Fatalf("unexpected %q %v", s, ok)
	}
	if _, ok := DescribeAnswer(optional.None[uint32]()); ok {
		t.Fatalf("expected None to print nothing")
	}
}

func TestIfLetElseIfChain(t *testing.T) {
	var buf bytes.Buffer
	IfLet(&buf, optional.None[int32](), optional.Some[int32](3), optional.None[int32](), true)
	want := "Didn't match a number. Let's go with a letter!\nMatched 3!\nDidn't match a number. Let's go with a letter!\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestIfLetVariants(t *testing.T) {
	var buf bytes.Buffer
	IfLetVariants(&buf, Bar{}, Baz{}, Qux{Value: 7})
	want := "a is foobar\nc is 7\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestGetCountItem(t *testing.T) {
	count, item := GetCountItem("3 chairs")
	if count != 3 || item != "chairs" {
		t.Fatalf("got (%d, %q)", count, item)
	}
}

func TestGetCountItemDiverges(t *testing.T) {
	for _, in := range []string{"chairs", "three chairs"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("GetCountItem(%q) should panic", in)
				}
			}()
			GetCountItem(in)
		}()
	}
}

func TestWhileLetStopsOnNone(t *testing.T) {
	var buf bytes.Buffer
	WhileLet(&buf, optional.Some[int32](8))
	want := "i is 8. Try again\ni is 9. Try again\nGreater than 9, quit!\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	WhileLet(&buf, optional.None[int32]())
	if buf.Len() != 0 {
		t.Fatalf("expected no output for None")
	}
}

func TestRunTranscript(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	if len(lines) != 354 {
		t.Fatalf("expected 354 lines, got %d", len(lines))
	}
	if lines[0] != "Haha, one!" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[len(lines)-1] != "Greater than 9, quit!" {
		t.Fatalf("unexpected last line %q", lines[len(lines)-1])
	}
	for _, want := range []string{
		`names: ["Bob", "Frank", "Ferris"]`,
		`names: ["Hello", "Hello", "There is a rustacean among us!"]`,
		"true -> 1",
		"Red: 122, green: 17, and blue: 40!",
		"mut_value is now: 16",
		"35C is above 30 Celsius",
		"I'm a teen of age 15",
		"The Answer: 42!",
		"c is one hundred",
	} {
		if !strings.Contains(buf.String(), want+"\n") {
			t.Errorf("expected line %q", want)
		}
	}
}

func TestDebugList(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"strings", debugList([]string{"Bob", "Frank"}), `["Bob", "Frank"]`},
		{"ints", debugList([]int{6, 7}), "[6, 7]"},
		{"single", debugList([]int{-2}), "[-2]"},
		{"empty", debugList([]int{}), "[]"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, c.got, c.want)
		}
	}
}
