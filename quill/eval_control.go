package quill

func (c *Compound) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(c.pos); err != nil {
		return NoneHandle(), false, err
	}
	for _, stmt := range c.Statements {
		value, returning, err := stmt.Execute(scope, ctx)
		if err != nil {
			return NoneHandle(), false, err
		}
		if returning {
			return value, true, nil
		}
	}
	return NoneHandle(), false, nil
}

func (r *Return) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(r.pos); err != nil {
		return NoneHandle(), false, err
	}
	if r.Expr == nil {
		return NoneHandle(), true, nil
	}
	value, returning, err := r.Expr.Execute(scope, ctx)
	if err != nil {
		return NoneHandle(), false, err
	}
	if returning {
		// A return nested inside another return's expression is not valid
		// surface syntax, but propagate rather than double-signal.
		return value, true, nil
	}
	return value, true, nil
}

func (m *MethodBody) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(m.pos); err != nil {
		return NoneHandle(), false, err
	}
	value, returning, err := m.Body.Execute(scope, ctx)
	if err != nil {
		return NoneHandle(), false, err
	}
	if returning {
		return value, false, nil
	}
	return NoneHandle(), false, nil
}

func (s *IfElse) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(s.pos); err != nil {
		return NoneHandle(), false, err
	}
	cond, returning, err := s.Cond.Execute(scope, ctx)
	if err != nil || returning {
		return cond, returning, err
	}
	if truthy(cond) {
		return s.Then.Execute(scope, ctx)
	}
	if s.Else != nil {
		return s.Else.Execute(scope, ctx)
	}
	return NoneHandle(), false, nil
}
