package runtime

// EnvironmentKind discriminates the Environment Record variants of
// https://tc39.es/ecma262/#sec-environment-records. Only the two kinds
// the supported AST subset needs are modeled: Declarative (for blocks and
// function bodies) and Object (for a global object's bindings). Function
// and Module environment records are not modeled since the subset has no
// `this`-binding-changing constructs beyond the global scope.
type EnvironmentKind int

const (
	DeclarativeEnvironment EnvironmentKind = iota
	ObjectEnvironment
)

// BindingKind distinguishes a mutable ("var") binding from an immutable
// one, per https://tc39.es/ecma262/#sec-declarative-environment-records.
type BindingKind int

const (
	MutableBinding BindingKind = iota
	ImmutableBinding
)

// binding is one entry of a Declarative Environment Record's bindings, with
// the initialized flag the spec uses to distinguish a declared-but-not-yet-
// assigned binding (temporal dead zone) from one safe to read.
type binding struct {
	kind        BindingKind
	value       Value
	initialized bool
}

// Environment is an Environment Record
// (https://tc39.es/ecma262/#sec-environment-records), chained to its
// outer environment the way a Lexical Environment's [[OuterEnv]] does.
//
// Grounded structurally (not semantically) on chtml/scope.go's Scope type
// — the parent-chain shape transfers, though CHTML's Scope copies values
// by snapshot on Spawn while an Environment Record here holds live,
// mutable bindings as the spec requires.
type Environment struct {
	kind     EnvironmentKind
	outer    *Environment
	bindings map[string]*binding

	// Object Environment Record fields.
	bindingObject ObjectID
}

// NewDeclarativeEnvironment creates a Declarative Environment Record with
// the given outer environment (nil for the outermost).
func NewDeclarativeEnvironment(outer *Environment) *Environment {
	return &Environment{
		kind:     DeclarativeEnvironment,
		outer:    outer,
		bindings: make(map[string]*binding),
	}
}

// NewObjectEnvironment creates an Object Environment Record backed by the
// given object, used for the global environment
// (https://tc39.es/ecma262/#sec-object-environment-records).
func NewObjectEnvironment(obj ObjectID, outer *Environment) *Environment {
	return &Environment{
		kind:          ObjectEnvironment,
		outer:         outer,
		bindingObject: obj,
	}
}

// Outer returns this environment's outer environment, or nil at the top.
func (e *Environment) Outer() *Environment { return e.outer }

// HasBinding implements HasBinding(N)
// (https://tc39.es/ecma262/#sec-declarative-environment-records-hasbinding-n).
func (e *Environment) HasBinding(interp *Interpreter, name string) bool {
	if e.kind == ObjectEnvironment {
		obj := interp.mustObject(e.bindingObject)
		_, ok := obj.GetOwnProperty(name)
		return ok
	}
	_, ok := e.bindings[name]
	return ok
}

// CreateMutableBinding implements CreateMutableBinding(N, D).
func (e *Environment) CreateMutableBinding(interp *Interpreter, name string) {
	if e.kind == ObjectEnvironment {
		obj := interp.mustObject(e.bindingObject)
		obj.defineOwnPropertyRaw(name, PropertyDescriptor{
			Kind: DataProperty, Value: Undefined, Writable: true,
			Enumerable: true, Configurable: true,
		})
		return
	}
	e.bindings[name] = &binding{kind: MutableBinding}
}

// CreateImmutableBinding implements CreateImmutableBinding(N, S) for
// Declarative Environment Records.
func (e *Environment) CreateImmutableBinding(name string) {
	e.bindings[name] = &binding{kind: ImmutableBinding}
}

// InitializeBinding implements InitializeBinding(N, V), marking a
// previously-declared binding as having a value.
func (e *Environment) InitializeBinding(interp *Interpreter, name string, v Value) {
	if e.kind == ObjectEnvironment {
		e.SetMutableBinding(interp, name, v, false)
		return
	}
	b := e.bindings[name]
	b.value = v
	b.initialized = true
}

// SetMutableBinding implements SetMutableBinding(N, V, S).
// https://tc39.es/ecma262/#sec-declarative-environment-records-setmutablebinding-n-v-s
func (e *Environment) SetMutableBinding(interp *Interpreter, name string, v Value, strict bool) *ThrowCompletion {
	if e.kind == ObjectEnvironment {
		obj := interp.mustObject(e.bindingObject)
		obj.defineOwnPropertyRaw(name, PropertyDescriptor{
			Kind: DataProperty, Value: v, Writable: true,
			Enumerable: true, Configurable: true,
		})
		return nil
	}
	b, ok := e.bindings[name]
	if !ok {
		if strict {
			return interp.NewThrow("ReferenceError", name+" is not defined")
		}
		e.CreateMutableBinding(interp, name)
		e.InitializeBinding(interp, name, v)
		return nil
	}
	if !b.initialized {
		return interp.NewThrow("ReferenceError", name+" is not defined")
	}
	if b.kind == ImmutableBinding {
		return interp.NewThrow("TypeError", "Assignment to constant variable.")
	}
	b.value = v
	return nil
}

// GetBindingValue implements GetBindingValue(N, S).
func (e *Environment) GetBindingValue(interp *Interpreter, name string, strict bool) (Value, *ThrowCompletion) {
	if e.kind == ObjectEnvironment {
		obj := interp.mustObject(e.bindingObject)
		d, ok := obj.GetOwnProperty(name)
		if !ok {
			return Undefined, interp.NewThrow("ReferenceError", name+" is not defined")
		}
		return d.Value, nil
	}
	b, ok := e.bindings[name]
	if !ok || !b.initialized {
		return Undefined, interp.NewThrow("ReferenceError", name+" is not defined")
	}
	return b.value, nil
}

// GetIdentifierReference implements
// https://tc39.es/ecma262/#sec-getidentifierreference, walking the
// environment chain outward to find where name is bound.
func GetIdentifierReference(env *Environment, interp *Interpreter, name string) ReferenceRecord {
	for e := env; e != nil; e = e.outer {
		if e.HasBinding(interp, name) {
			return ReferenceRecord{Base: RefBaseEnvironment, Env: e, ReferencedName: name}
		}
	}
	return ReferenceRecord{Base: RefBaseUnresolvable, ReferencedName: name}
}
