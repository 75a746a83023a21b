package quill

import "testing"

func TestParserMethodRequiresSelf(t *testing.T) {
	_, err := ParseProgram("class C:\n  def f(x):\n    return x\n")
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Kind != ErrParse {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParserRejectsAssignmentToNonVariable(t *testing.T) {
	_, err := ParseProgram(`class C:
  def f(self):
    return 1

C().x = 1
`)
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Kind != ErrParse {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParserNewInstanceAndMethodCallDisambiguation(t *testing.T) {
	root, err := ParseProgram(`class Box:
  def __init__(self, n):
    self.n = n
  def get(self):
    return self.n

b = Box(9)
print b.get()
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	compound, ok := root.(*Compound)
	if !ok {
		t.Fatalf("expected *Compound, got %T", root)
	}
	if len(compound.Statements) != 3 {
		t.Fatalf("expected 3 top-level statements, got %d", len(compound.Statements))
	}
	if _, ok := compound.Statements[0].(*ClassDefinition); !ok {
		t.Fatalf("statement 0: expected *ClassDefinition, got %T", compound.Statements[0])
	}
	assign, ok := compound.Statements[1].(*Assignment)
	if !ok {
		t.Fatalf("statement 1: expected *Assignment, got %T", compound.Statements[1])
	}
	if _, ok := assign.RHS.(*NewInstance); !ok {
		t.Fatalf("assignment RHS: expected *NewInstance, got %T", assign.RHS)
	}
	printStmt, ok := compound.Statements[2].(*Print)
	if !ok || len(printStmt.Args) != 1 {
		t.Fatalf("statement 2: expected *Print with one argument, got %T", compound.Statements[2])
	}
	if _, ok := printStmt.Args[0].(*MethodCall); !ok {
		t.Fatalf("print argument: expected *MethodCall, got %T", printStmt.Args[0])
	}
}

func TestParserIfElse(t *testing.T) {
	root, err := ParseProgram("if x:\n  print 1\nelse:\n  print 2\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	compound := root.(*Compound)
	ifElse, ok := compound.Statements[0].(*IfElse)
	if !ok {
		t.Fatalf("expected *IfElse, got %T", compound.Statements[0])
	}
	if ifElse.Else == nil {
		t.Fatalf("expected a non-nil Else branch")
	}
}

func TestParserOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as Add(1, Mult(2, 3)), not Mult(Add(1,2), 3).
	root, err := ParseProgram("x = 1 + 2 * 3\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	compound := root.(*Compound)
	assign := compound.Statements[0].(*Assignment)
	add, ok := assign.RHS.(*Add)
	if !ok {
		t.Fatalf("expected *Add at top level, got %T", assign.RHS)
	}
	if _, ok := add.Left.(*NumericConst); !ok {
		t.Fatalf("expected Add.Left to be a literal, got %T", add.Left)
	}
	if _, ok := add.Right.(*Mult); !ok {
		t.Fatalf("expected Add.Right to be a Mult, got %T", add.Right)
	}
}
