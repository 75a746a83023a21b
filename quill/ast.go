package quill

// Statement is the sealed interface every AST node implements. Execute
// returns the value the node yields, a "returning" signal that propagates
// a pending Return up through Compound/IfElse frames (spec §5 strategy b),
// and an error.
type Statement interface {
	Pos() Position
	Execute(scope *Scope, ctx *Context) (ObjectHandle, bool, error)
}

type baseNode struct {
	pos Position
}

func (n baseNode) Pos() Position { return n.pos }

// NumericConst / StringConst / BoolConst return a shared handle to a fixed
// literal value computed once at parse time.
type NumericConst struct {
	baseNode
	Value int64
}

type StringConst struct {
	baseNode
	Value string
}

type BoolConst struct {
	baseNode
	Value bool
}

// NoneLiteral evaluates to the empty handle.
type NoneLiteral struct {
	baseNode
}

// VariableValue looks up Name in scope, then walks Attrs as a chain of
// instance field reads: a.b.c is VariableValue{Name: "a", Attrs: []string{"b", "c"}}.
type VariableValue struct {
	baseNode
	Name  string
	Attrs []string
}

// Assignment stores the result of RHS under Name in the current scope.
type Assignment struct {
	baseNode
	Name string
	RHS  Statement
}

// FieldAssignment evaluates Object to a ClassInstance and stores RHS into
// its field map under Field.
type FieldAssignment struct {
	baseNode
	Object *VariableValue
	Field  string
	RHS    Statement
}

// Print evaluates Args left to right and writes them space-separated,
// newline-terminated, to the context's output sink.
type Print struct {
	baseNode
	Args []Statement
}

// Stringify renders Arg through the normal print protocol into an
// in-memory buffer and returns the text as a fresh String.
type Stringify struct {
	baseNode
	Arg Statement
}

// BinaryOp is the common shape for arithmetic and comparison operators.
type BinaryOp struct {
	baseNode
	Left  Statement
	Right Statement
}

type Add struct{ BinaryOp }
type Sub struct{ BinaryOp }
type Mult struct{ BinaryOp }
type Div struct{ BinaryOp }

// CompareOp names the comparator a Comparison node applies.
type CompareOp string

const (
	CompareEQ  CompareOp = "=="
	CompareNEQ CompareOp = "!="
	CompareLT  CompareOp = "<"
	CompareLTE CompareOp = "<="
	CompareGT  CompareOp = ">"
	CompareGTE CompareOp = ">="
)

type Comparison struct {
	BinaryOp
	Op CompareOp
}

type Or struct{ BinaryOp }
type And struct{ BinaryOp }

type Not struct {
	baseNode
	Arg Statement
}

// NewInstance allocates a fresh ClassInstance of Class, invoking __init__
// with Args when the class (or an ancestor) defines it at that arity.
// Class is resolved once, at parse time, rather than looked up by name in
// the executing scope: a flat method scope (spec §4.3) holds only self and
// parameters, so a runtime lookup of ClassName would fail for any
// instantiation performed from inside a method body.
type NewInstance struct {
	baseNode
	ClassName string
	Class     *Class
	Args      []Statement
}

// MethodCall evaluates Object; if it is a ClassInstance, dispatches
// MethodName with the evaluated Args. Otherwise yields None silently.
type MethodCall struct {
	baseNode
	Object     Statement
	MethodName string
	Args       []Statement
}

// Compound executes Statements in order, discarding intermediate results.
type Compound struct {
	baseNode
	Statements []Statement
}

// Return evaluates Expr (which may be nil, meaning None) and signals a
// non-local transfer that unwinds to the nearest enclosing MethodBody.
type Return struct {
	baseNode
	Expr Statement
}

// MethodBody intercepts the "returning" signal from Body and yields its
// carried value; a body that completes normally yields the empty handle.
type MethodBody struct {
	baseNode
	Body Statement
}

// ClassDefinition binds Class into scope under its own name.
type ClassDefinition struct {
	baseNode
	Class *Class
}

// IfElse evaluates Cond under truthiness rules and executes the matching
// branch. Else may be nil.
type IfElse struct {
	baseNode
	Cond Statement
	Then Statement
	Else Statement
}
