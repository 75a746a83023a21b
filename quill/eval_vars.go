package quill

func (v *VariableValue) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(v.pos); err != nil {
		return NoneHandle(), false, err
	}
	current, ok := scope.Get(v.Name)
	if !ok {
		return NoneHandle(), false, newRuntimeError(ErrUndefinedName, v.pos, "undefined name %q", v.Name)
	}
	for _, attr := range v.Attrs {
		inst, ok := current.TryInstance()
		if !ok {
			return NoneHandle(), false, newRuntimeError(ErrNotAnInstance, v.pos, "cannot read field %q of non-instance value", attr)
		}
		field, ok := inst.Fields[attr]
		if !ok {
			return NoneHandle(), false, newRuntimeError(ErrUndefinedName, v.pos, "instance of %s has no field %q", inst.Class.Name, attr)
		}
		current = field
	}
	return current, false, nil
}

func (a *Assignment) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(a.pos); err != nil {
		return NoneHandle(), false, err
	}
	value, returning, err := a.RHS.Execute(scope, ctx)
	if err != nil {
		return NoneHandle(), false, err
	}
	if returning {
		return value, true, nil
	}
	scope.Define(a.Name, value)
	return value, false, nil
}

func (f *FieldAssignment) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(f.pos); err != nil {
		return NoneHandle(), false, err
	}
	objHandle, returning, err := f.Object.Execute(scope, ctx)
	if err != nil {
		return NoneHandle(), false, err
	}
	if returning {
		return objHandle, true, nil
	}
	inst, ok := objHandle.TryInstance()
	if !ok {
		return NoneHandle(), false, newRuntimeError(ErrAssignTarget, f.pos, "assignment target %q is not an instance", f.Field)
	}
	value, returning, err := f.RHS.Execute(scope, ctx)
	if err != nil {
		return NoneHandle(), false, err
	}
	if returning {
		return value, true, nil
	}
	inst.Fields[f.Field] = value
	return value, false, nil
}
