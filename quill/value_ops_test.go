package quill

import "testing"

func TestTruthiness(t *testing.T) {
	cases := []struct {
		name string
		h    ObjectHandle
		want bool
	}{
		{"none", NoneHandle(), false},
		{"false", Own(NewBool(false)), false},
		{"true", Own(NewBool(true)), true},
		{"zero", Own(NewNumber(0)), false},
		{"nonzero", Own(NewNumber(-1)), true},
		{"empty string", Own(NewString("")), false},
		{"nonempty string", Own(NewString("x")), true},
	}
	for _, c := range cases {
		if got := truthy(c.h); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestValuesEqualAcrossKindsIsFalseNotError(t *testing.T) {
	eq, err := valuesEqual(Own(NewNumber(1)), Own(NewString("1")), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eq {
		t.Fatalf("expected Number(1) != String(\"1\")")
	}
}

func TestValuesEqualBothNoneIsTrue(t *testing.T) {
	eq, err := valuesEqual(NoneHandle(), NoneHandle(), nil)
	if err != nil || !eq {
		t.Fatalf("got %v, %v, want true, nil", eq, err)
	}
}

func TestValuesLessUnsupportedKindsIsError(t *testing.T) {
	_, err := valuesLess(Own(NewBool(true)), Own(NewBool(false)), nil, Position{Line: 1})
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Kind != ErrUnsupportedOperand {
		t.Fatalf("expected UnsupportedOperand RuntimeError, got %v", err)
	}
}

func TestValuesLessNumeric(t *testing.T) {
	lt, err := valuesLess(Own(NewNumber(1)), Own(NewNumber(2)), nil, Position{})
	if err != nil || !lt {
		t.Fatalf("got %v, %v, want true, nil", lt, err)
	}
}
