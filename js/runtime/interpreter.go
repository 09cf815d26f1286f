package runtime

import "github.com/chtml-engine/webengine/js"

// Interpreter is a tree-walking evaluator over the js package's AST,
// implementing js.ExpressionVisitor and js.StatementVisitor so expression
// and statement evaluation follow the same dispatch shape as
// ast_printer.rs's ASTPrettyPrinter, generalized from "build a string" to
// "produce a Value".
//
// Go's visitor methods must return `any` (there is no Rust-style generic
// R), so flow control that the return value alone can't carry — thrown
// exceptions, break/continue/return — is tracked on the Interpreter as a
// pending-signal field, checked by the caller immediately after each
// Accept call. This is the same "sticky error" shape encoding/json's
// decodeState uses instead of threading an error return through every
// visitor method.
type Interpreter struct {
	heap []*JSObject

	globalObject    ObjectID
	globalEnv       *Environment
	objectPrototype ObjectID
	errorPrototype  ObjectID

	contextStack []*ExecutionContext

	pendingThrow      *ThrowCompletion
	pendingSignal     CompletionType // NormalCompletion when nothing pending
	pendingReturnValue Value
}

// NewInterpreter constructs an interpreter with a fresh global object,
// global environment, and initial execution context
// (https://tc39.es/ecma262/#sec-initializehostdefinedrealm simplified to
// this subset's needs).
func NewInterpreter() *Interpreter {
	interp := &Interpreter{}
	interp.objectPrototype = interp.newObject("Object", -1)
	interp.errorPrototype = interp.newObject("Error", interp.objectPrototype)
	interp.globalObject = interp.newObject("global", interp.objectPrototype)
	interp.globalEnv = NewObjectEnvironment(interp.globalObject, nil)
	interp.installGlobals()
	interp.pushContext(&ExecutionContext{
		LexicalEnvironment: interp.globalEnv,
		This:               ObjectValue(interp.globalObject),
	})
	return interp
}

func (interp *Interpreter) newObject(class string, proto ObjectID) ObjectID {
	interp.heap = append(interp.heap, newObject(class, proto))
	return ObjectID(len(interp.heap) - 1)
}

func (interp *Interpreter) mustObject(id ObjectID) *JSObject {
	return interp.heap[id]
}

// installGlobals defines the small set of host-provided bindings this
// interpreter ships: a console.log analogous to chtml's component
// registry pattern of exposing host functions into the evaluated
// environment.
func (interp *Interpreter) installGlobals() {
	console := interp.newObject("Object", interp.objectPrototype)
	logFn := interp.newNativeFunction(func(i *Interpreter, this Value, args []Value) (Value, *ThrowCompletion) {
		i.ConsoleLog(args)
		return Undefined, nil
	})
	interp.mustObject(console).defineOwnPropertyRaw("log", PropertyDescriptor{
		Kind: DataProperty, Value: ObjectValue(logFn), Writable: true, Configurable: true,
	})
	interp.mustObject(interp.globalObject).defineOwnPropertyRaw("console", PropertyDescriptor{
		Kind: DataProperty, Value: ObjectValue(console), Writable: true, Configurable: true,
	})

	// print is bound directly on the global object (rather than nested
	// under console) so it is reachable by name alone: the supported
	// grammar has no MemberExpression (no CallExpression production ever
	// reaches a '.'-accessed callee), matching the original's scope.
	interp.mustObject(interp.globalObject).defineOwnPropertyRaw("print", PropertyDescriptor{
		Kind: DataProperty, Value: ObjectValue(logFn), Writable: true, Configurable: true,
	})
}

// ConsoleLogFunc, if set, receives the stringified arguments of every
// console.log call. The CLI driver sets this to print to stdout; tests
// can capture it instead. Left nil, console.log is a no-op.
var ConsoleLogFunc func(args []string)

// ConsoleLog stringifies args and forwards them to ConsoleLogFunc, if set.
// Plain objects are inspected via their own property keys rather than run
// through ToString: real console.log implementations (V8's, SpiderMonkey's)
// print an object's contents instead of its "[object Object]" ToString
// form, and this is the one place that distinction is observable.
func (interp *Interpreter) ConsoleLog(args []Value) {
	if ConsoleLogFunc == nil {
		return
	}
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = interp.inspect(a)
	}
	ConsoleLogFunc(strs)
}

// inspect renders a value the way console.log displays it: primitives via
// ToString, plain objects as a "{ key: value, ... }" listing of their own
// properties (https://tc39.es/ecma262/#sec-ordinary-object-internal-methods-and-internal-slots-ownpropertykeys).
func (interp *Interpreter) inspect(v Value) string {
	if !v.IsObject() {
		s, thr := interp.ToString(v)
		if thr != nil {
			return "<error converting to string>"
		}
		return s
	}
	obj := interp.mustObject(v.Object())
	if obj.Callable {
		return "[Function]"
	}
	keys := obj.OwnPropertyKeys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		d, ok := obj.GetOwnProperty(k)
		if !ok || !d.Enumerable {
			continue
		}
		parts = append(parts, k+": "+interp.inspect(d.Value))
	}
	if len(parts) == 0 {
		return "{}"
	}
	out := "{ "
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out + " }"
}

func (interp *Interpreter) newNativeFunction(fn NativeFunction) ObjectID {
	id := interp.newObject("Function", interp.objectPrototype)
	obj := interp.mustObject(id)
	obj.Callable = true
	obj.Native = fn
	return id
}

// getV implements the object-property-get half of GetValue
// (https://tc39.es/ecma262/#sec-getvalue) for a property reference whose
// base is an arbitrary value rather than an environment binding.
func (interp *Interpreter) getV(base Value, name string) (Value, *ThrowCompletion) {
	if !base.IsObject() {
		if base.IsString() && name == "length" {
			return NumberValue(float64(len([]rune(base.Str())))), nil
		}
		return Undefined, nil
	}
	for id := base.Object(); id >= 0; {
		obj := interp.mustObject(id)
		if d, ok := obj.GetOwnProperty(name); ok {
			if d.Kind == AccessorProperty {
				if !d.HasGetter() {
					return Undefined, nil
				}
				return interp.callFunction(d.Getter, base, nil)
			}
			return d.Value, nil
		}
		id = obj.Prototype
	}
	return Undefined, nil
}

// setV implements the object-property-set half of PutValue
// (https://tc39.es/ecma262/#sec-putvalue). Per spec's ordinary [[Set]]
// semantics, setting a property on a non-object base is a silent no-op in
// non-strict code.
func (interp *Interpreter) setV(base Value, name string, v Value) *ThrowCompletion {
	if !base.IsObject() {
		return nil
	}
	obj := interp.mustObject(base.Object())
	if existing, ok := obj.GetOwnProperty(name); ok && existing.Kind == AccessorProperty {
		if !existing.HasSetter() {
			return nil
		}
		_, thr := interp.callFunction(existing.Setter, base, []Value{v})
		return thr
	}
	obj.defineOwnPropertyRaw(name, PropertyDescriptor{
		Kind: DataProperty, Value: v, Writable: true, Enumerable: true, Configurable: true,
	})
	return nil
}

func (interp *Interpreter) callFunction(id ObjectID, this Value, args []Value) (Value, *ThrowCompletion) {
	obj := interp.mustObject(id)
	if !obj.Callable {
		return Undefined, interp.NewThrow("TypeError", "value is not callable")
	}
	if obj.Native != nil {
		return obj.Native(interp, this, args)
	}

	callEnv := NewDeclarativeEnvironment(obj.Closure)
	for i, p := range obj.Params {
		var arg Value
		if i < len(args) {
			arg = args[i]
		} else {
			arg = Undefined
		}
		callEnv.CreateMutableBinding(interp, p)
		callEnv.InitializeBinding(interp, p, arg)
	}
	interp.pushContext(&ExecutionContext{LexicalEnvironment: callEnv, This: this})
	defer interp.popContext()

	prevSignal, prevReturn := interp.pendingSignal, interp.pendingReturnValue
	interp.pendingSignal = NormalCompletion
	defer func() { interp.pendingSignal, interp.pendingReturnValue = prevSignal, prevReturn }()

	for _, stmt := range obj.Body {
		interp.EvalStatement(stmt)
		if interp.pendingThrow != nil {
			return Undefined, interp.pendingThrow
		}
		if interp.pendingSignal == ReturnCompletion {
			return interp.pendingReturnValue, nil
		}
	}
	return Undefined, nil
}

// Run evaluates a full program (a list of top-level statements) and
// returns the value of the last statement evaluated (of any kind: a var
// statement yields its initializer's value, a block its last statement's),
// plus any uncaught thrown completion, in which case the value is Undefined.
func (interp *Interpreter) Run(program []js.Statement) (Value, *ThrowCompletion) {
	var last Value
	for _, stmt := range program {
		last = interp.EvalStatement(stmt)
		if interp.pendingThrow != nil {
			return Undefined, interp.pendingThrow
		}
	}
	return last, nil
}

// EvalStatement evaluates a single statement, per the StatementVisitor
// dispatch in ast.go, and returns the value the statement's visitor
// produced; callers driving a program loop should inspect
// interp.pendingThrow / interp.pendingSignal afterward.
func (interp *Interpreter) EvalStatement(s js.Statement) Value {
	interp.pendingThrow = nil
	result := s.AcceptStatement(interp)
	v, _ := result.(Value)
	return v
}

// EvalExpression evaluates a single expression. Callers should check
// interp.pendingThrow immediately after.
func (interp *Interpreter) EvalExpression(e js.Expression) Value {
	result := e.AcceptExpression(interp)
	v, _ := result.(Value)
	return v
}

func (interp *Interpreter) fail(thr *ThrowCompletion) Value {
	interp.pendingThrow = thr
	return Undefined
}

// -- js.StatementVisitor --

func (interp *Interpreter) VisitExpressionStatement(s *js.ExpressionStatement) any {
	return interp.EvalExpression(s.Expression)
}

func (interp *Interpreter) VisitVariableStatement(s *js.VariableDeclarationStatement) any {
	env := interp.runningContext().LexicalEnvironment
	env.CreateMutableBinding(interp, s.BindingIdentifier.Lexeme)
	if s.Initializer != nil {
		v := interp.EvalExpression(s.Initializer.Expression)
		if interp.pendingThrow != nil {
			return Undefined
		}
		env.InitializeBinding(interp, s.BindingIdentifier.Lexeme, v)
		return v
	}
	env.InitializeBinding(interp, s.BindingIdentifier.Lexeme, Undefined)
	return Undefined
}

func (interp *Interpreter) VisitBlockStatement(s *js.BlockStatement) any {
	outer := interp.runningContext().LexicalEnvironment
	blockEnv := NewDeclarativeEnvironment(outer)
	interp.runningContext().LexicalEnvironment = blockEnv
	defer func() { interp.runningContext().LexicalEnvironment = outer }()

	var last Value
	for _, stmt := range s.Statements {
		last = interp.EvalStatement(stmt)
		if interp.pendingThrow != nil || interp.pendingSignal != NormalCompletion {
			break
		}
	}
	return last
}

// -- js.ExpressionVisitor --

func (interp *Interpreter) VisitBinary(e *js.BinaryExpression) any {
	lref := interp.evalRefOrValue(e.Left)
	if interp.pendingThrow != nil {
		return Undefined
	}
	rref := interp.evalRefOrValue(e.Right)
	if interp.pendingThrow != nil {
		return Undefined
	}

	switch e.Operator.Type {
	case js.Plus, js.Minus, js.Star, js.Slash:
		v, thr := interp.ApplyStringOrNumericBinaryOperator(lref, rref, binaryOpSymbol(e.Operator.Type))
		if thr != nil {
			return interp.fail(thr)
		}
		return v
	case js.EqualEqual:
		return BooleanValue(interp.looseEquals(lref, rref))
	case js.BangEqual:
		return BooleanValue(!interp.looseEquals(lref, rref))
	case js.Less, js.LessEqual, js.Greater, js.GreaterEqual:
		return interp.relationalCompare(lref, rref, e.Operator.Type)
	default:
		return interp.fail(interp.NewThrow("SyntaxError", "unsupported operator "+e.Operator.Type.String()))
	}
}

func binaryOpSymbol(tt js.TokenType) string {
	switch tt {
	case js.Plus:
		return "+"
	case js.Minus:
		return "-"
	case js.Star:
		return "*"
	case js.Slash:
		return "/"
	default:
		return ""
	}
}

// evalRefOrValue evaluates e and immediately dereferences it via
// GetValue, matching how the spec's binary-expression runtime semantics
// call GetValue on each operand reference before combining them
// (https://tc39.es/ecma262/#sec-evaluate-propertyaccessexpression).
func (interp *Interpreter) evalRefOrValue(e js.Expression) Value {
	return interp.EvalExpression(e)
}

func (interp *Interpreter) looseEquals(a, b Value) bool {
	if SameType(a, b) {
		return interp.strictEquals(a, b)
	}
	if a.IsNullish() && b.IsNullish() {
		return true
	}
	if a.IsNumber() && b.IsString() {
		bn, _ := interp.ToNumber(b)
		return a.Number() == bn
	}
	if a.IsString() && b.IsNumber() {
		an, _ := interp.ToNumber(a)
		return an == b.Number()
	}
	if a.IsBoolean() {
		an, _ := interp.ToNumber(a)
		return interp.looseEquals(NumberValue(an), b)
	}
	if b.IsBoolean() {
		bn, _ := interp.ToNumber(b)
		return interp.looseEquals(a, NumberValue(bn))
	}
	return false
}

func (interp *Interpreter) strictEquals(a, b Value) bool {
	if !SameType(a, b) {
		return false
	}
	switch a.Type() {
	case UndefinedType, NullType:
		return true
	case BooleanType:
		return a.Bool() == b.Bool()
	case NumberType:
		return a.Number() == b.Number()
	case StringType:
		return a.Str() == b.Str()
	case ObjectType:
		return a.Object() == b.Object()
	default:
		return false
	}
}

func (interp *Interpreter) relationalCompare(a, b Value, op js.TokenType) Value {
	an, thr := interp.ToNumber(a)
	if thr != nil {
		return interp.fail(thr)
	}
	bn, thr := interp.ToNumber(b)
	if thr != nil {
		return interp.fail(thr)
	}
	switch op {
	case js.Less:
		return BooleanValue(an < bn)
	case js.LessEqual:
		return BooleanValue(an <= bn)
	case js.Greater:
		return BooleanValue(an > bn)
	case js.GreaterEqual:
		return BooleanValue(an >= bn)
	default:
		return BooleanValue(false)
	}
}

func (interp *Interpreter) VisitLiteral(e *js.LiteralExpression) any {
	switch e.Value.Kind {
	case js.NumericLiteral:
		return NumberValue(e.Value.Num)
	case js.StringLiteral:
		return StringValue(e.Value.Str)
	case js.BooleanLiteral:
		return BooleanValue(e.Value.Bool)
	default:
		return Null
	}
}

func (interp *Interpreter) VisitParenthesized(e *js.ParenthesizedExpression) any {
	return interp.EvalExpression(e.Expression)
}

func (interp *Interpreter) VisitUnary(e *js.UnaryExpression) any {
	v := interp.EvalExpression(e.Right)
	if interp.pendingThrow != nil {
		return Undefined
	}
	switch e.Operator.Type {
	case js.Bang:
		return BooleanValue(!ToBoolean(v))
	case js.Minus:
		n, thr := interp.ToNumber(v)
		if thr != nil {
			return interp.fail(thr)
		}
		return NumberValue(-n)
	case js.Plus:
		n, thr := interp.ToNumber(v)
		if thr != nil {
			return interp.fail(thr)
		}
		return NumberValue(n)
	default:
		return interp.fail(interp.NewThrow("SyntaxError", "unsupported unary operator "+e.Operator.Type.String()))
	}
}

func (interp *Interpreter) VisitIdentifier(e *js.IdentifierExpression) any {
	ref := ResolveBinding(interp, e.BindingIdentifier.Lexeme)
	v, thr := GetValue(interp, ref)
	if thr != nil {
		return interp.fail(thr)
	}
	return v
}

func (interp *Interpreter) VisitCall(e *js.CallExpression) any {
	callee := interp.EvalExpression(e.Callee)
	if interp.pendingThrow != nil {
		return Undefined
	}
	if !callee.IsObject() {
		return interp.fail(interp.NewThrow("TypeError", "value is not a function"))
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = interp.EvalExpression(a)
		if interp.pendingThrow != nil {
			return Undefined
		}
	}

	v, thr := interp.callFunction(callee.Object(), Undefined, args)
	if thr != nil {
		return interp.fail(thr)
	}
	return v
}

func (interp *Interpreter) VisitObjectLiteral(e *js.ObjectLiteralExpression) any {
	id := interp.newObject("Object", interp.objectPrototype)
	obj := interp.mustObject(id)
	for _, def := range e.PropertyDefinitions {
		var key string
		if def.PropertyName.IsIdentifier {
			key = def.PropertyName.Identifier.Lexeme
		} else {
			key = def.PropertyName.Literal.Str
		}
		v := interp.EvalExpression(def.AssignmentExpression.Expression)
		if interp.pendingThrow != nil {
			return Undefined
		}
		obj.defineOwnPropertyRaw(key, PropertyDescriptor{
			Kind: DataProperty, Value: v, Writable: true, Enumerable: true, Configurable: true,
		})
	}
	return ObjectValue(id)
}

func (interp *Interpreter) VisitAssignment(e *js.AssignmentExpression) any {
	ident, ok := e.LeftHandSide.(*js.IdentifierExpression)
	if !ok {
		return interp.fail(interp.NewThrow("SyntaxError", "invalid assignment target"))
	}
	ref := ResolveBinding(interp, ident.BindingIdentifier.Lexeme)
	v := interp.EvalExpression(e.Expression)
	if interp.pendingThrow != nil {
		return Undefined
	}
	if thr := PutValue(interp, ref, v); thr != nil {
		return interp.fail(thr)
	}
	return v
}
