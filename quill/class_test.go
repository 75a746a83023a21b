package quill

import "testing"

func TestClassLookupWalksParentChain(t *testing.T) {
	fMethod := &Method{Name: "f", Params: nil}
	parent := NewClass("Parent", nil, []*Method{fMethod})
	child := NewClass("Child", parent, nil)

	got, ok := child.Lookup("f", 0)
	if !ok || got != fMethod {
		t.Fatalf("expected child to inherit Parent.f/0, got %v, %v", got, ok)
	}
}

func TestClassLookupPrefersOwnOverrideOverParent(t *testing.T) {
	parentF := &Method{Name: "f", Params: nil}
	childF := &Method{Name: "f", Params: nil}
	parent := NewClass("Parent", nil, []*Method{parentF})
	child := NewClass("Child", parent, []*Method{childF})

	got, ok := child.Lookup("f", 0)
	if !ok || got != childF {
		t.Fatalf("expected override to win, got %v, %v", got, ok)
	}
}

func TestClassLookupDiscriminatesByArity(t *testing.T) {
	zero := &Method{Name: "f", Params: nil}
	one := &Method{Name: "f", Params: []string{"x"}}
	cls := NewClass("C", nil, []*Method{zero, one})

	got, ok := cls.Lookup("f", 0)
	if !ok || got != zero {
		t.Fatalf("f/0: got %v, %v", got, ok)
	}
	got, ok = cls.Lookup("f", 1)
	if !ok || got != one {
		t.Fatalf("f/1: got %v, %v", got, ok)
	}
	if _, ok := cls.Lookup("f", 2); ok {
		t.Fatalf("f/2 should not resolve")
	}
}

func TestClassLookupMissingMethod(t *testing.T) {
	cls := NewClass("C", nil, nil)
	if _, ok := cls.Lookup("missing", 0); ok {
		t.Fatalf("expected lookup miss on empty class")
	}
}

func TestScopeIsFlatWithNoParentChain(t *testing.T) {
	// Scope intentionally has no way to nest or chain to an enclosing
	// scope; this test documents that Get only ever sees names Defined
	// directly on it.
	s := NewScope()
	s.Define("x", Own(NewNumber(1)))
	if _, ok := s.Get("x"); !ok {
		t.Fatalf("expected x to be defined")
	}
	if _, ok := s.Get("y"); ok {
		t.Fatalf("expected y to be undefined")
	}
}
