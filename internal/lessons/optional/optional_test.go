package optional

import "testing"

func TestZeroValueIsNone(t *testing.T) {
	var o Option[int]
	if o.IsSome() {
		t.Fatalf("expected zero value to be None")
	}
	if _, ok := o.Get(); ok {
		t.Fatalf("expected Get to report absent")
	}
	if o.String() != "None" {
		t.Fatalf("expected None, got %q", o.String())
	}
}

func TestSome(t *testing.T) {
	o := Some(7)
	v, ok := o.Get()
	if !ok || v != 7 {
		t.Fatalf("expected Some(7), got %v %v", v, ok)
	}
	if o.String() != "Some(7)" {
		t.Fatalf("unexpected rendering %q", o.String())
	}
}

func TestMustGetPanicsOnNone(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("expected panic boom, got %v", r)
		}
	}()
	None[string]().MustGet("boom")
}
