package quill

func (n *NewInstance) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(n.pos); err != nil {
		return NoneHandle(), false, err
	}
	inst := NewInstanceOf(n.Class)
	if n.Class.HasMethod("__init__", len(n.Args)) {
		args := make([]ObjectHandle, len(n.Args))
		for i, a := range n.Args {
			v, returning, err := a.Execute(scope, ctx)
			if err != nil {
				return NoneHandle(), false, err
			}
			if returning {
				return v, true, nil
			}
			args[i] = v
		}
		if _, err := CallMethod(inst, "__init__", args, ctx, n.pos); err != nil {
			return NoneHandle(), false, err
		}
	}
	return Share(NewInstanceValue(inst)), false, nil
}

func (m *MethodCall) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(m.pos); err != nil {
		return NoneHandle(), false, err
	}
	objHandle, returning, err := m.Object.Execute(scope, ctx)
	if err != nil || returning {
		return objHandle, returning, err
	}
	inst, ok := objHandle.TryInstance()
	if !ok {
		// MethodCall on a non-instance silently yields None (spec §4.4 / §7).
		return NoneHandle(), false, nil
	}
	args := make([]ObjectHandle, len(m.Args))
	for i, a := range m.Args {
		v, returning, err := a.Execute(scope, ctx)
		if err != nil {
			return NoneHandle(), false, err
		}
		if returning {
			return v, true, nil
		}
		args[i] = v
	}
	result, err := CallMethod(inst, m.MethodName, args, ctx, m.pos)
	if err != nil {
		// CallMethod returns a *RuntimeError for anything that happened
		// while the method body was running (division by zero, quota and
		// recursion limits, ...); that error's Kind must survive unchanged.
		// Only the plain "no such method" error it returns itself needs a
		// Kind attached here.
		if _, ok := err.(*RuntimeError); ok {
			return NoneHandle(), false, err
		}
		return NoneHandle(), false, newRuntimeError(ErrUndefinedName, m.pos, "%s", err.Error())
	}
	return result, false, nil
}

func (c *ClassDefinition) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(c.pos); err != nil {
		return NoneHandle(), false, err
	}
	scope.Define(c.Class.Name, Share(NewClassValue(c.Class)))
	return NoneHandle(), false, nil
}
