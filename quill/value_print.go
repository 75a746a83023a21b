package quill

import (
	"fmt"
	"io"
	"strings"
)

// printHandle writes h's human-readable representation to w following
// spec §4.1. Instances defining a zero-argument __str__ are rendered via
// that method's return value; otherwise a deterministic identity string is
// used (spec §9 Open questions, resolved).
func printHandle(h ObjectHandle, w io.Writer, ctx *Context) error {
	if h.IsNone() {
		_, err := io.WriteString(w, "None")
		return err
	}
	v := h.Value()
	switch v.Kind() {
	case KindNumber:
		n, _ := v.Number()
		_, err := fmt.Fprintf(w, "%d", n)
		return err
	case KindString:
		s, _ := v.StringVal()
		_, err := io.WriteString(w, s)
		return err
	case KindBool:
		b, _ := v.BoolVal()
		if b {
			_, err := io.WriteString(w, "True")
			return err
		}
		_, err := io.WriteString(w, "False")
		return err
	case KindClass:
		c, _ := v.ClassVal()
		_, err := fmt.Fprintf(w, "Class %s", c.Name)
		return err
	case KindInstance:
		inst, _ := v.InstanceVal()
		return printInstance(inst, w, ctx)
	default:
		_, err := io.WriteString(w, "None")
		return err
	}
}

func printInstance(inst *ClassInstance, w io.Writer, ctx *Context) error {
	if inst.Class.HasMethod("__str__", 0) {
		result, err := CallMethod(inst, "__str__", nil, ctx, Position{})
		if err != nil {
			return err
		}
		return printHandle(result, w, ctx)
	}
	_, err := fmt.Fprintf(w, "<ClassInstance of %s>", inst.Class.Name)
	return err
}

// stringify renders h through the normal print protocol into an in-memory
// buffer and returns it as plain text (spec §4.4 Stringify).
func stringify(h ObjectHandle, ctx *Context) (string, error) {
	var b strings.Builder
	if err := printHandle(h, &b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}
