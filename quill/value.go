package quill

// ValueKind discriminates the closed set of value variants the language
// knows about (spec §3).
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindClass:
		return "Class"
	case KindInstance:
		return "ClassInstance"
	default:
		return "unknown"
	}
}

// Value is a boxed variant. None has no Value representation of its own —
// it is represented by an empty ObjectHandle instead (spec §3).
type Value struct {
	kind ValueKind
	data any
}

func (v Value) Kind() ValueKind { return v.kind }

func NewNumber(n int64) Value  { return Value{kind: KindNumber, data: n} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewClassValue(c *Class) Value       { return Value{kind: KindClass, data: c} }
func NewInstanceValue(i *ClassInstance) Value { return Value{kind: KindInstance, data: i} }

func (v Value) Number() (int64, bool) {
	n, ok := v.data.(int64)
	return n, ok && v.kind == KindNumber
}

func (v Value) StringVal() (string, bool) {
	s, ok := v.data.(string)
	return s, ok && v.kind == KindString
}

func (v Value) BoolVal() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok && v.kind == KindBool
}

func (v Value) ClassVal() (*Class, bool) {
	c, ok := v.data.(*Class)
	return c, ok && v.kind == KindClass
}

func (v Value) InstanceVal() (*ClassInstance, bool) {
	i, ok := v.data.(*ClassInstance)
	return i, ok && v.kind == KindInstance
}
