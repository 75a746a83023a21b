package quill

import "io"

func (n *NumericConst) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(n.pos); err != nil {
		return NoneHandle(), false, err
	}
	return Share(NewNumber(n.Value)), false, nil
}

func (s *StringConst) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(s.pos); err != nil {
		return NoneHandle(), false, err
	}
	return Share(NewString(s.Value)), false, nil
}

func (b *BoolConst) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(b.pos); err != nil {
		return NoneHandle(), false, err
	}
	return Share(NewBool(b.Value)), false, nil
}

func (n *NoneLiteral) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(n.pos); err != nil {
		return NoneHandle(), false, err
	}
	return NoneHandle(), false, nil
}

func (p *Print) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(p.pos); err != nil {
		return NoneHandle(), false, err
	}
	for i, arg := range p.Args {
		if i > 0 {
			if _, err := io.WriteString(ctx.Out, " "); err != nil {
				return NoneHandle(), false, err
			}
		}
		v, returning, err := arg.Execute(scope, ctx)
		if err != nil {
			return NoneHandle(), false, err
		}
		if returning {
			return v, true, nil
		}
		if err := printHandle(v, ctx.Out, ctx); err != nil {
			return NoneHandle(), false, err
		}
	}
	if _, err := io.WriteString(ctx.Out, "\n"); err != nil {
		return NoneHandle(), false, err
	}
	return NoneHandle(), false, nil
}

func (s *Stringify) Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error) {
	if err := ctx.step(s.pos); err != nil {
		return NoneHandle(), false, err
	}
	v, returning, err := s.Arg.Execute(scope, ctx)
	if err != nil {
		return NoneHandle(), false, err
	}
	if returning {
		return v, true, nil
	}
	text, err := stringify(v, ctx)
	if err != nil {
		return NoneHandle(), false, err
	}
	return Own(NewString(text)), false, nil
}
