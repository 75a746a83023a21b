package quill

import "testing"

func TestNoneHandleIsEmpty(t *testing.T) {
	h := NoneHandle()
	if !h.IsNone() {
		t.Fatalf("expected NoneHandle to be empty")
	}
	if h.Value().Kind() != KindNone {
		t.Fatalf("expected None kind, got %v", h.Value().Kind())
	}
}

func TestOwnHandleRoundTrips(t *testing.T) {
	h := Own(NewNumber(42))
	if h.IsNone() {
		t.Fatalf("expected an owned handle to be non-empty")
	}
	n, ok := h.TryNumber()
	if !ok || n != 42 {
		t.Fatalf("got %v, %v, want 42, true", n, ok)
	}
}

func TestShareHandleNeverReleases(t *testing.T) {
	cls := NewClass("C", nil, nil)
	h := Share(NewClassValue(cls))
	h.Release()
	h.Release()
	got, ok := h.TryClass()
	if !ok || got != cls {
		t.Fatalf("shared handle should survive Release calls, got %v, %v", got, ok)
	}
}

func TestTryDowncastsFailOnKindMismatch(t *testing.T) {
	h := Own(NewString("hi"))
	if _, ok := h.TryNumber(); ok {
		t.Fatalf("expected TryNumber to fail on a String handle")
	}
	if _, ok := h.TryInstance(); ok {
		t.Fatalf("expected TryInstance to fail on a String handle")
	}
}
