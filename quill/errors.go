package quill

import "fmt"

// Error kinds at the core evaluator boundary (spec §7).
const (
	ErrUndefinedName      = "UndefinedName"
	ErrNotAnInstance      = "NotAnInstance"
	ErrUnsupportedOperand = "UnsupportedOperand"
	ErrDivisionByZero     = "DivisionByZero"
	ErrAssignTarget       = "AssignTargetNotInstance"
	ErrLex                = "LexError"
	ErrParse              = "ParseError"
	ErrQuotaExceeded      = "QuotaExceeded"
)

// RuntimeError is the single structured error kind the core raises to its
// embedder. Kind lets callers branch on failure category without parsing
// the message text.
type RuntimeError struct {
	Kind    string
	Message string
	Pos     Position
}

func (e *RuntimeError) Error() string {
	if e.Pos.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Pos.Line, e.Pos.Column)
}

func newRuntimeError(kind string, pos Position, format string, args ...any) error {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}
