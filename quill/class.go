package quill

import "fmt"

// Method is a callable descriptor: a name, its ordered parameter names
// (self is implicit and not counted in arity), and a body statement.
type Method struct {
	Name   string
	Params []string
	Body   Statement
}

func (m *Method) arity() int { return len(m.Params) }

// Class carries a name, an optional parent for single inheritance, and a
// method table. Methods are grouped by name so that distinct arities of
// the same name coexist (spec §4.2 arity discrimination).
type Class struct {
	Name    string
	Parent  *Class
	methods map[string][]*Method
}

// NewClass constructs a class with the given methods, which may include
// more than one overload per name as long as their arities differ.
func NewClass(name string, parent *Class, methods []*Method) *Class {
	c := &Class{Name: name, Parent: parent, methods: make(map[string][]*Method)}
	c.addMethods(methods)
	return c
}

// addMethods registers additional overloads on c. It lets the parser
// register a class (so its body can instantiate it by name, spec §4.4)
// before that body has finished parsing, then fill in the method table
// once parsing completes.
func (c *Class) addMethods(methods []*Method) {
	for _, m := range methods {
		c.methods[m.Name] = append(c.methods[m.Name], m)
	}
}

// Lookup walks from c up through the parent chain and returns the first
// method named name whose parameter count equals arity.
func (c *Class) Lookup(name string, arity int) (*Method, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		for _, m := range cls.methods[name] {
			if m.arity() == arity {
				return m, true
			}
		}
	}
	return nil, false
}

// HasMethod is Lookup discarding the method itself.
func (c *Class) HasMethod(name string, arity int) bool {
	_, ok := c.Lookup(name, arity)
	return ok
}

// ClassInstance is a mutable object: a shared reference to its Class and a
// mutable field map. The Class pointer always outlives the instance since
// classes are bound into the root scope for the program's duration.
type ClassInstance struct {
	Class  *Class
	Fields map[string]ObjectHandle
}

// NewInstanceOf allocates a zero-field instance of c. Callers invoke
// __init__ themselves when present, per spec §4.4 NewInstance.
func NewInstanceOf(c *Class) *ClassInstance {
	return &ClassInstance{Class: c, Fields: make(map[string]ObjectHandle)}
}

// CallMethod resolves methodName/len(args) on instance's class chain,
// binds a fresh scope with self and the positional parameters, and
// executes the method body (spec §4.2 Invocation). pos is attributed to a
// recursion-limit failure only; it may be the zero Position when no call
// site is available.
func CallMethod(inst *ClassInstance, methodName string, args []ObjectHandle, ctx *Context, pos Position) (ObjectHandle, error) {
	method, ok := inst.Class.Lookup(methodName, len(args))
	if !ok {
		return NoneHandle(), fmt.Errorf("class %s has no method %s/%d", inst.Class.Name, methodName, len(args))
	}
	if err := ctx.enterCall(pos); err != nil {
		return NoneHandle(), err
	}
	defer ctx.leaveCall()
	return invokeMethod(inst, method, args, ctx)
}

func invokeMethod(inst *ClassInstance, method *Method, args []ObjectHandle, ctx *Context) (ObjectHandle, error) {
	scope := NewScope()
	scope.Define("self", Share(NewInstanceValue(inst)))
	for i, param := range method.Params {
		scope.Define(param, args[i])
	}
	result, returning, err := method.Body.Execute(scope, ctx)
	if err != nil {
		return NoneHandle(), err
	}
	_ = returning
	return result, nil
}
