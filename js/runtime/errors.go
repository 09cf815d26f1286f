package runtime

// NewThrow constructs a ThrowCompletion carrying a proper Error object —
// not a bare string or untyped value — with "name" and "message"
// properties, the shape https://tc39.es/ecma262/#sec-error-objects
// describes. This resolves spec §9's open question about how a thrown
// value should be represented: as a real object with its own identity on
// the heap, consistent with how `throw` values flow through user code.
func (interp *Interpreter) NewThrow(name, message string) *ThrowCompletion {
	id := interp.newObject("Error", interp.errorPrototype)
	obj := interp.mustObject(id)
	obj.defineOwnPropertyRaw("name", PropertyDescriptor{
		Kind: DataProperty, Value: StringValue(name), Writable: true, Configurable: true,
	})
	obj.defineOwnPropertyRaw("message", PropertyDescriptor{
		Kind: DataProperty, Value: StringValue(message), Writable: true, Configurable: true,
	})
	return &ThrowCompletion{Value: ObjectValue(id)}
}
