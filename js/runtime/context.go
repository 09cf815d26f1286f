package runtime

// ExecutionContext models https://tc39.es/ecma262/#sec-execution-contexts:
// the pieces the supported subset needs are the lexical environment used
// for identifier resolution and the This value (relevant once function
// calls establish their own `this` binding — the current interpreter only
// ever runs in the global context's `this`, but the field exists so
// adding function-call contexts later doesn't require a shape change).
type ExecutionContext struct {
	LexicalEnvironment *Environment
	This               Value
}

// pushContext implements the execution context stack's "push" operation
// of https://tc39.es/ecma262/#sec-execution-contexts (the spec names this
// the "stack" without a formal push/pop operation name; grounded here on
// that informal description).
func (interp *Interpreter) pushContext(ctx *ExecutionContext) {
	interp.contextStack = append(interp.contextStack, ctx)
}

// popContext pops the running execution context.
func (interp *Interpreter) popContext() {
	interp.contextStack = interp.contextStack[:len(interp.contextStack)-1]
}

// runningContext returns the currently running execution context, per
// https://tc39.es/ecma262/#running-execution-context.
func (interp *Interpreter) runningContext() *ExecutionContext {
	return interp.contextStack[len(interp.contextStack)-1]
}
