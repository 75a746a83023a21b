package quill

import "sync/atomic"

type handleState uint8

const (
	handleEmpty handleState = iota
	handleOwned
	handleShared
)

// cell is the heap-allocated box an owned ObjectHandle reference-counts.
// Shared handles wrap a cell too (so Class()/Instance() downcasts are
// uniform) but never touch the counter: a shared referent is rooted
// elsewhere and is never considered "last handle dropped".
type cell struct {
	value Value
	refs  int32
}

// ObjectHandle is the tri-state ownership token over any Value described in
// spec §3: empty (the language-level None), owned (a freshly allocated
// value that is reference-counted and conceptually freed when the last
// handle drops), or shared (a reference to something rooted elsewhere,
// such as a Class descriptor, that a handle never frees).
//
// Go's own garbage collector reclaims the underlying cell regardless of
// this bookkeeping once no handle reaches it; the refcount exists to make
// ownership explicit and testable, not because Go needs it to avoid
// leaking memory. See DESIGN.md.
type ObjectHandle struct {
	state handleState
	c     *cell
}

// NoneHandle is the empty handle representing the language's None.
func NoneHandle() ObjectHandle { return ObjectHandle{} }

// Own allocates a fresh owned handle around v with a refcount of one.
func Own(v Value) ObjectHandle {
	return ObjectHandle{state: handleOwned, c: &cell{value: v, refs: 1}}
}

// Share wraps v in a handle that never frees its referent: used for class
// descriptors and for instances returned from NewInstance, whose lifetime
// is governed by whatever other handles already reference them.
func Share(v Value) ObjectHandle {
	return ObjectHandle{state: handleShared, c: &cell{value: v, refs: 1}}
}

// IsNone reports whether the handle carries no value.
func (h ObjectHandle) IsNone() bool { return h.c == nil }

// Value returns the boxed value, or the zero Value (KindNone) when empty.
func (h ObjectHandle) Value() Value {
	if h.c == nil {
		return Value{kind: KindNone}
	}
	return h.c.value
}

// Clone returns a handle sharing the same referent, incrementing the
// refcount when the handle is owned.
func (h ObjectHandle) Clone() ObjectHandle {
	if h.c == nil {
		return h
	}
	if h.state == handleOwned {
		atomic.AddInt32(&h.c.refs, 1)
	}
	return h
}

// Release drops one reference. Owned cells whose count reaches zero have
// no further live handle and become ordinary garbage; shared cells are
// never released because something else still roots them.
func (h ObjectHandle) Release() {
	if h.c == nil || h.state != handleOwned {
		return
	}
	atomic.AddInt32(&h.c.refs, -1)
}

// TryClass is the safe dynamic downcast to a Class descriptor.
func (h ObjectHandle) TryClass() (*Class, bool) {
	if h.c == nil {
		return nil, false
	}
	return h.c.value.ClassVal()
}

// TryInstance is the safe dynamic downcast to a ClassInstance.
func (h ObjectHandle) TryInstance() (*ClassInstance, bool) {
	if h.c == nil {
		return nil, false
	}
	return h.c.value.InstanceVal()
}

// TryNumber is the safe dynamic downcast to a Number.
func (h ObjectHandle) TryNumber() (int64, bool) {
	if h.c == nil {
		return 0, false
	}
	return h.c.value.Number()
}

// TryString is the safe dynamic downcast to a String.
func (h ObjectHandle) TryString() (string, bool) {
	if h.c == nil {
		return "", false
	}
	return h.c.value.StringVal()
}

// TryBool is the safe dynamic downcast to a Bool.
func (h ObjectHandle) TryBool() (bool, bool) {
	if h.c == nil {
		return false, false
	}
	return h.c.value.BoolVal()
}
