package runtime

// RefBaseKind discriminates a Reference Record's base
// (https://tc39.es/ecma262/#sec-reference-record-specification-type):
// an environment record, an actual value (for property references off an
// object/string/number), or unresolvable (no binding found).
type RefBaseKind int

const (
	RefBaseUnresolvable RefBaseKind = iota
	RefBaseEnvironment
	RefBaseValue
)

// ReferenceRecord models https://tc39.es/ecma262/#sec-reference-record-specification-type.
type ReferenceRecord struct {
	Base           RefBaseKind
	Env            *Environment // valid when Base == RefBaseEnvironment
	BaseValue      Value        // valid when Base == RefBaseValue
	ReferencedName string
	Strict         bool
}

// IsPropertyReference reports whether this reference is into a value's
// properties rather than an environment binding
// (https://tc39.es/ecma262/#sec-ispropertyreference).
func (r ReferenceRecord) IsPropertyReference() bool { return r.Base == RefBaseValue }

// IsUnresolvableReference reports whether no binding was found
// (https://tc39.es/ecma262/#sec-isunresolvablereference).
func (r ReferenceRecord) IsUnresolvableReference() bool { return r.Base == RefBaseUnresolvable }

// GetValue implements https://tc39.es/ecma262/#sec-getvalue.
func GetValue(interp *Interpreter, ref ReferenceRecord) (Value, *ThrowCompletion) {
	switch ref.Base {
	case RefBaseUnresolvable:
		return Undefined, interp.NewThrow("ReferenceError", ref.ReferencedName+" is not defined")
	case RefBaseEnvironment:
		return ref.Env.GetBindingValue(interp, ref.ReferencedName, ref.Strict)
	case RefBaseValue:
		return interp.getV(ref.BaseValue, ref.ReferencedName)
	default:
		return Undefined, nil
	}
}

// PutValue implements https://tc39.es/ecma262/#sec-putvalue.
func PutValue(interp *Interpreter, ref ReferenceRecord, v Value) *ThrowCompletion {
	switch ref.Base {
	case RefBaseUnresolvable:
		if ref.Strict {
			return interp.NewThrow("ReferenceError", ref.ReferencedName+" is not defined")
		}
		return interp.globalEnv.SetMutableBinding(interp, ref.ReferencedName, v, false)
	case RefBaseEnvironment:
		return ref.Env.SetMutableBinding(interp, ref.ReferencedName, v, ref.Strict)
	case RefBaseValue:
		return interp.setV(ref.BaseValue, ref.ReferencedName, v)
	default:
		return nil
	}
}

// ResolveBinding implements https://tc39.es/ecma262/#sec-resolvebinding,
// resolving name against the interpreter's currently running execution
// context's LexicalEnvironment.
func ResolveBinding(interp *Interpreter, name string) ReferenceRecord {
	env := interp.runningContext().LexicalEnvironment
	ref := GetIdentifierReference(env, interp, name)
	ref.Strict = false
	return ref
}
