// Package runtime implements a spec-faithful ECMAScript execution layer
// over the js package's AST: execution contexts, environment records,
// property descriptors, completion records, and reference records, per
// the Abstract Operations chapters of ECMA-262.
package runtime

import "fmt"

// ValueType discriminates the ECMAScript language types
// (https://tc39.es/ecma262/#sec-ecmascript-language-types).
type ValueType int

const (
	UndefinedType ValueType = iota
	NullType
	BooleanType
	NumberType
	StringType
	ObjectType
)

// Value is the tagged union backing every ECMAScript value this
// interpreter manipulates. Objects are referenced by ObjectID into the
// Interpreter's object heap rather than by pointer, per spec.md's own
// recommendation that a systems rewrite use a handle-based object model
// instead of Rc<RefCell<..>>-style shared pointers.
type Value struct {
	typ ValueType
	b   bool
	n   float64
	s   string
	obj ObjectID
}

// Undefined is the ECMAScript undefined value.
var Undefined = Value{typ: UndefinedType}

// Null is the ECMAScript null value.
var Null = Value{typ: NullType}

// BooleanValue constructs a Boolean value.
func BooleanValue(b bool) Value { return Value{typ: BooleanType, b: b} }

// NumberValue constructs a Number value.
func NumberValue(n float64) Value { return Value{typ: NumberType, n: n} }

// StringValue constructs a String value.
func StringValue(s string) Value { return Value{typ: StringType, s: s} }

// ObjectValue constructs a Value referencing the object at id.
func ObjectValue(id ObjectID) Value { return Value{typ: ObjectType, obj: id} }

func (v Value) Type() ValueType { return v.typ }
func (v Value) IsUndefined() bool { return v.typ == UndefinedType }
func (v Value) IsNull() bool      { return v.typ == NullType }
func (v Value) IsNullish() bool   { return v.typ == UndefinedType || v.typ == NullType }
func (v Value) IsBoolean() bool   { return v.typ == BooleanType }
func (v Value) IsNumber() bool    { return v.typ == NumberType }
func (v Value) IsString() bool    { return v.typ == StringType }
func (v Value) IsObject() bool    { return v.typ == ObjectType }

// Bool returns the underlying bool; callers must first check IsBoolean.
func (v Value) Bool() bool { return v.b }

// Number returns the underlying float64; callers must first check IsNumber.
func (v Value) Number() float64 { return v.n }

// Str returns the underlying string; callers must first check IsString.
func (v Value) Str() string { return v.s }

// Object returns the underlying ObjectID; callers must first check IsObject.
func (v Value) Object() ObjectID { return v.obj }

// SameType implements the informal "are these the same ECMAScript type"
// check used throughout the abstract operations
// (https://tc39.es/ecma262/#sec-ecmascript-language-types).
func SameType(a, b Value) bool { return a.typ == b.typ }

func (v Value) String() string {
	switch v.typ {
	case UndefinedType:
		return "undefined"
	case NullType:
		return "null"
	case BooleanType:
		return fmt.Sprintf("%v", v.b)
	case NumberType:
		return fmt.Sprintf("%v", v.n)
	case StringType:
		return v.s
	case ObjectType:
		return fmt.Sprintf("[object %d]", v.obj)
	default:
		return "<invalid>"
	}
}
