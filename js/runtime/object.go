package runtime

import "github.com/chtml-engine/webengine/js"

// ObjectID indexes into an Interpreter's object heap. Using an index
// rather than a pointer or Rc<RefCell<>> (as the Rust original's Node
// graph used for the DOM) keeps the object model GC-friendly and side-steps
// the borrow-checker-motivated interior mutability the original needed;
// Go's tracing collector and index-based heap make that machinery
// unnecessary here.
type ObjectID int

// PropertyKind discriminates a data property from an accessor property
// (https://tc39.es/ecma262/#sec-property-attributes).
type PropertyKind int

const (
	DataProperty PropertyKind = iota
	AccessorProperty
)

// PropertyDescriptor models the [[Value]]/[[Writable]]/[[Get]]/[[Set]]/
// [[Enumerable]]/[[Configurable]] fields of
// https://tc39.es/ecma262/#sec-property-descriptor-specification-type.
// A PropertyDescriptor is either present (the property exists, Kind
// indicates which fields are meaningful) or the property is absent
// (represented by its absence from JSObject.properties — there is no
// sentinel "absent" PropertyDescriptor value).
type PropertyDescriptor struct {
	Kind PropertyKind

	// Data property fields.
	Value    Value
	Writable bool

	// Accessor property fields. Getter/Setter are ObjectIDs of callable
	// Function objects, or -1 if absent.
	Getter ObjectID
	Setter ObjectID

	Enumerable   bool
	Configurable bool
}

// HasGetter reports whether this accessor descriptor has a getter.
func (d PropertyDescriptor) HasGetter() bool { return d.Kind == AccessorProperty && d.Getter >= 0 }

// HasSetter reports whether this accessor descriptor has a setter.
func (d PropertyDescriptor) HasSetter() bool { return d.Kind == AccessorProperty && d.Setter >= 0 }

// NativeFunction is a Go-implemented callable, used for host/builtin
// functions (e.g. console.log) rather than ones the interpreter compiled
// from a FunctionDeclaration.
type NativeFunction func(interp *Interpreter, this Value, args []Value) (Value, *ThrowCompletion)

// JSObject is the runtime representation of an ECMAScript object
// (https://tc39.es/ecma262/#sec-object-type). Class is a label like
// "Object", "Function", or "Error" — this interpreter does not model a
// full prototype-based class hierarchy, only the fields the supported
// AST subset exercises (plain objects, and Error objects for thrown
// completions).
type JSObject struct {
	Class     string
	Prototype ObjectID // -1 if null prototype
	properties map[string]PropertyDescriptor
	keyOrder   []string // insertion order, for deterministic iteration

	// Callable objects only.
	Callable bool
	Native   NativeFunction
	// Params/Body/Closure describe a function compiled from a
	// FunctionDeclaration; unused for native functions.
	Params  []string
	Body    []js.Statement
	Closure *Environment
}

func newObject(class string, proto ObjectID) *JSObject {
	return &JSObject{
		Class:      class,
		Prototype:  proto,
		properties: make(map[string]PropertyDescriptor),
	}
}

// GetOwnProperty returns the object's own property descriptor for key,
// without walking the prototype chain
// (https://tc39.es/ecma262/#sec-ordinary-object-internal-methods-and-internal-slots-getownproperty-p).
func (o *JSObject) GetOwnProperty(key string) (PropertyDescriptor, bool) {
	d, ok := o.properties[key]
	return d, ok
}

// defineOwnPropertyRaw installs or overwrites an own property without
// running the validation steps of the full [[DefineOwnProperty]]
// algorithm: a new key is appended to the insertion order, and an
// existing property is replaced unconditionally, whatever its
// Writable/Configurable attributes.
func (o *JSObject) defineOwnPropertyRaw(key string, desc PropertyDescriptor) {
	if _, exists := o.properties[key]; !exists {
		o.keyOrder = append(o.keyOrder, key)
	}
	o.properties[key] = desc
}

// OwnPropertyKeys returns the object's own enumerable-or-not property
// keys in insertion order
// (https://tc39.es/ecma262/#sec-ordinary-object-internal-methods-and-internal-slots-ownpropertykeys).
func (o *JSObject) OwnPropertyKeys() []string {
	out := make([]string, len(o.keyOrder))
	copy(out, o.keyOrder)
	return out
}
