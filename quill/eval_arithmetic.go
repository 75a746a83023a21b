package quill

// evalOperands evaluates left then right, left-to-right, propagating any
// pending return signal from either.
func evalOperands(left, right Statement, scope *Scope, ctx *Context) (lv, rv ObjectHandle, returning bool, err error) {
	lv, returning, err = left.Execute(scope, ctx)
	if err != nil || returning {
		return lv, NoneHandle(), returning, err
	}
	rv, returning, err = right.Execute(scope, ctx)
	if err != nil || returning {
		return lv, rv, returning, err
	}
	return lv, rv, false, nil
}

func (a *Add) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(a.pos); err != nil {
		return NoneHandle(), false, err
	}
	lv, rv, returning, err := evalOperands(a.Left, a.Right, scope, ctx)
	if err != nil || returning {
		return lv, returning, err
	}
	if inst, ok := lv.TryInstance(); ok {
		if inst.Class.HasMethod("__add__", 1) {
			result, err := CallMethod(inst, "__add__", []ObjectHandle{rv}, ctx, a.pos)
			return result, false, err
		}
	}
	if ln, lok := lv.TryNumber(); lok {
		if rn, rok := rv.TryNumber(); rok {
			return Own(NewNumber(ln + rn)), false, nil
		}
	}
	if ls, lok := lv.TryString(); lok {
		if rs, rok := rv.TryString(); rok {
			return Own(NewString(ls + rs)), false, nil
		}
	}
	return NoneHandle(), false, newRuntimeError(ErrUnsupportedOperand, a.pos, "unsupported operand types for +: %s and %s", lv.Value().Kind(), rv.Value().Kind())
}

func (s *Sub) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(s.pos); err != nil {
		return NoneHandle(), false, err
	}
	lv, rv, returning, err := evalOperands(s.Left, s.Right, scope, ctx)
	if err != nil || returning {
		return lv, returning, err
	}
	ln, lok := lv.TryNumber()
	rn, rok := rv.TryNumber()
	if !lok || !rok {
		return NoneHandle(), false, newRuntimeError(ErrUnsupportedOperand, s.pos, "unsupported operand types for -: %s and %s", lv.Value().Kind(), rv.Value().Kind())
	}
	return Own(NewNumber(ln - rn)), false, nil
}

func (m *Mult) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(m.pos); err != nil {
		return NoneHandle(), false, err
	}
	lv, rv, returning, err := evalOperands(m.Left, m.Right, scope, ctx)
	if err != nil || returning {
		return lv, returning, err
	}
	ln, lok := lv.TryNumber()
	rn, rok := rv.TryNumber()
	if !lok || !rok {
		return NoneHandle(), false, newRuntimeError(ErrUnsupportedOperand, m.pos, "unsupported operand types for *: %s and %s", lv.Value().Kind(), rv.Value().Kind())
	}
	return Own(NewNumber(ln * rn)), false, nil
}

func (d *Div) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(d.pos); err != nil {
		return NoneHandle(), false, err
	}
	lv, rv, returning, err := evalOperands(d.Left, d.Right, scope, ctx)
	if err != nil || returning {
		return lv, returning, err
	}
	ln, lok := lv.TryNumber()
	rn, rok := rv.TryNumber()
	if !lok || !rok {
		return NoneHandle(), false, newRuntimeError(ErrUnsupportedOperand, d.pos, "unsupported operand types for /: %s and %s", lv.Value().Kind(), rv.Value().Kind())
	}
	if rn == 0 {
		return NoneHandle(), false, newRuntimeError(ErrDivisionByZero, d.pos, "division by zero")
	}
	// Go's integer division already truncates toward zero, matching the
	// machine-integer semantics spec §9 calls for.
	return Own(NewNumber(ln / rn)), false, nil
}

func (c *Comparison) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(c.pos); err != nil {
		return NoneHandle(), false, err
	}
	lv, rv, returning, err := evalOperands(c.Left, c.Right, scope, ctx)
	if err != nil || returning {
		return lv, returning, err
	}
	switch c.Op {
	case CompareEQ:
		eq, err := valuesEqual(lv, rv, ctx)
		if err != nil {
			return NoneHandle(), false, err
		}
		return Own(NewBool(eq)), false, nil
	case CompareNEQ:
		eq, err := valuesEqual(lv, rv, ctx)
		if err != nil {
			return NoneHandle(), false, err
		}
		return Own(NewBool(!eq)), false, nil
	case CompareLT:
		lt, err := valuesLess(lv, rv, ctx, c.pos)
		if err != nil {
			return NoneHandle(), false, err
		}
		return Own(NewBool(lt)), false, nil
	case CompareGT:
		lt, err := valuesLess(rv, lv, ctx, c.pos)
		if err != nil {
			return NoneHandle(), false, err
		}
		return Own(NewBool(lt)), false, nil
	case CompareLTE:
		gt, err := valuesLess(rv, lv, ctx, c.pos)
		if err != nil {
			return NoneHandle(), false, err
		}
		return Own(NewBool(!gt)), false, nil
	case CompareGTE:
		lt, err := valuesLess(lv, rv, ctx, c.pos)
		if err != nil {
			return NoneHandle(), false, err
		}
		return Own(NewBool(!lt)), false, nil
	default:
		return NoneHandle(), false, newRuntimeError(ErrUnsupportedOperand, c.pos, "unsupported comparison operator %s", c.Op)
	}
}

func (o *Or) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(o.pos); err != nil {
		return NoneHandle(), false, err
	}
	left, returning, err := o.Left.Execute(scope, ctx)
	if err != nil || returning {
		return left, returning, err
	}
	if truthy(left) {
		return Own(NewBool(true)), false, nil
	}
	right, returning, err := o.Right.Execute(scope, ctx)
	if err != nil || returning {
		return right, returning, err
	}
	return Own(NewBool(truthy(right))), false, nil
}

func (a *And) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(a.pos); err != nil {
		return NoneHandle(), false, err
	}
	left, returning, err := a.Left.Execute(scope, ctx)
	if err != nil || returning {
		return left, returning, err
	}
	if !truthy(left) {
		return Own(NewBool(false)), false, nil
	}
	right, returning, err := a.Right.Execute(scope, ctx)
	if err != nil || returning {
		return right, returning, err
	}
	return Own(NewBool(truthy(right))), false, nil
}

func (n *Not) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(n.pos); err != nil {
		return NoneHandle(), false, err
	}
	arg, returning, err := n.Arg.Execute(scope, ctx)
	if err != nil || returning {
		return arg, returning, err
	}
	return Own(NewBool(!truthy(arg))), false, nil
}
