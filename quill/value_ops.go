package quill

// truthy projects any handle to a boolean per spec §4.1: None is false,
// Bool is itself, Number is nonzero, String is nonempty, Class/ClassInstance
// are always true.
func truthy(h ObjectHandle) bool {
	if h.IsNone() {
		return false
	}
	v := h.Value()
	switch v.Kind() {
	case KindBool:
		b, _ := v.BoolVal()
		return b
	case KindNumber:
		n, _ := v.Number()
		return n != 0
	case KindString:
		s, _ := v.StringVal()
		return s != ""
	case KindClass, KindInstance:
		return true
	default:
		return true
	}
}

// valuesEqual implements == / != across all kinds, dispatching to a
// user-defined __eq__(rhs) on the left operand when both are instances and
// such a method exists. Mismatched kinds are unequal, never an error.
func valuesEqual(left, right ObjectHandle, ctx *Context) (bool, error) {
	if left.IsNone() && right.IsNone() {
		return true, nil
	}
	if left.IsNone() != right.IsNone() {
		return false, nil
	}
	lv, rv := left.Value(), right.Value()
	if lv.Kind() == KindInstance && rv.Kind() == KindInstance {
		inst, _ := lv.InstanceVal()
		if inst.Class.HasMethod("__eq__", 1) {
			result, err := CallMethod(inst, "__eq__", []ObjectHandle{right}, ctx, Position{})
			if err != nil {
				return false, err
			}
			return truthy(result), nil
		}
	}
	if lv.Kind() != rv.Kind() {
		return false, nil
	}
	switch lv.Kind() {
	case KindNumber:
		a, _ := lv.Number()
		b, _ := rv.Number()
		return a == b, nil
	case KindString:
		a, _ := lv.StringVal()
		b, _ := rv.StringVal()
		return a == b, nil
	case KindBool:
		a, _ := lv.BoolVal()
		b, _ := rv.BoolVal()
		return a == b, nil
	case KindClass:
		a, _ := lv.ClassVal()
		b, _ := rv.ClassVal()
		return a == b, nil
	case KindInstance:
		a, _ := lv.InstanceVal()
		b, _ := rv.InstanceVal()
		return a == b, nil
	default:
		return false, nil
	}
}

// valuesLess implements the underlying comparator for < (and, by
// composition in the evaluator, <=, >, >=): numeric and lexicographic
// ordering for matching primitive kinds, __lt__(rhs) dispatch for
// instances, and a runtime failure for anything else.
func valuesLess(left, right ObjectHandle, ctx *Context, pos Position) (bool, error) {
	lv, rv := left.Value(), right.Value()
	if lv.Kind() == KindInstance {
		inst, _ := lv.InstanceVal()
		if inst.Class.HasMethod("__lt__", 1) {
			result, err := CallMethod(inst, "__lt__", []ObjectHandle{right}, ctx, pos)
			if err != nil {
				return false, err
			}
			return truthy(result), nil
		}
	}
	if lv.Kind() == KindNumber && rv.Kind() == KindNumber {
		a, _ := lv.Number()
		b, _ := rv.Number()
		return a < b, nil
	}
	if lv.Kind() == KindString && rv.Kind() == KindString {
		a, _ := lv.StringVal()
		b, _ := rv.StringVal()
		return a < b, nil
	}
	return false, newRuntimeError(ErrUnsupportedOperand, pos, "unsupported operand types for comparison: %s and %s", lv.Kind(), rv.Kind())
}
