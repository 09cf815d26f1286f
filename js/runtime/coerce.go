package runtime

import (
	"math"
	"strconv"
)

// ToBoolean implements https://tc39.es/ecma262/#sec-toboolean.
func ToBoolean(v Value) bool {
	switch v.Type() {
	case UndefinedType, NullType:
		return false
	case BooleanType:
		return v.Bool()
	case NumberType:
		n := v.Number()
		return n != 0 && !math.IsNaN(n)
	case StringType:
		return v.Str() != ""
	case ObjectType:
		return true
	default:
		return false
	}
}

// ToPrimitive implements a restricted form of
// https://tc39.es/ecma262/#sec-toprimitive: objects in this interpreter
// have no user-overridable [[DefaultValue]]/Symbol.toPrimitive, so the
// plain objects it supports convert via their Class label. preferredType
// is accepted for spec fidelity but has no effect without exotic
// toString/valueOf methods to prefer between.
func (interp *Interpreter) ToPrimitive(v Value, preferredType string) (Value, *ThrowCompletion) {
	if !v.IsObject() {
		return v, nil
	}
	obj := interp.mustObject(v.Object())
	return StringValue("[object " + obj.Class + "]"), nil
}

// ToNumber implements https://tc39.es/ecma262/#sec-tonumber.
//
// Fixes spec §9 item 1: ToNumber(undefined) is NaN the float64, not the
// string "NaN" — the original's to_number mistakenly returned a string
// literal for this case, which broke any arithmetic chaining off an
// undefined operand.
func (interp *Interpreter) ToNumber(v Value) (float64, *ThrowCompletion) {
	switch v.Type() {
	case UndefinedType:
		return math.NaN(), nil
	case NullType:
		return 0, nil
	case BooleanType:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	case NumberType:
		return v.Number(), nil
	case StringType:
		return stringToNumber(v.Str()), nil
	case ObjectType:
		prim, thr := interp.ToPrimitive(v, "number")
		if thr != nil {
			return 0, thr
		}
		if prim.IsObject() {
			return math.NaN(), nil
		}
		return interp.ToNumber(prim)
	default:
		return math.NaN(), nil
	}
}

func stringToNumber(s string) float64 {
	trimmed := trimJSWhitespace(s)
	if trimmed == "" {
		return 0
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func trimJSWhitespace(s string) string {
	start, end := 0, len(s)
	for start < end && isJSWhitespaceByte(s[start]) {
		start++
	}
	for end > start && isJSWhitespaceByte(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isJSWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// ToNumeric implements https://tc39.es/ecma262/#sec-tonumeric. This
// interpreter has no BigInt type, so it always resolves to Number.
func (interp *Interpreter) ToNumeric(v Value) (float64, *ThrowCompletion) {
	prim, thr := interp.ToPrimitive(v, "number")
	if thr != nil {
		return 0, thr
	}
	return interp.ToNumber(prim)
}

// ToString implements https://tc39.es/ecma262/#sec-tostring.
func (interp *Interpreter) ToString(v Value) (string, *ThrowCompletion) {
	switch v.Type() {
	case UndefinedType:
		return "undefined", nil
	case NullType:
		return "null", nil
	case BooleanType:
		if v.Bool() {
			return "true", nil
		}
		return "false", nil
	case NumberType:
		return numberToString(v.Number()), nil
	case StringType:
		return v.Str(), nil
	case ObjectType:
		prim, thr := interp.ToPrimitive(v, "string")
		if thr != nil {
			return "", thr
		}
		if prim.IsObject() {
			return "[object Object]", nil
		}
		return interp.ToString(prim)
	default:
		return "", nil
	}
}

func numberToString(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// ApplyStringOrNumericBinaryOperator implements
// https://tc39.es/ecma262/#sec-applystringornumericbinaryoperator for the
// '+', '-', '*', '/' operators the supported grammar's BinaryExpression
// can carry.
func (interp *Interpreter) ApplyStringOrNumericBinaryOperator(lval, rval Value, op string) (Value, *ThrowCompletion) {
	lprim, thr := interp.ToPrimitive(lval, "default")
	if thr != nil {
		return Value{}, thr
	}
	rprim, thr := interp.ToPrimitive(rval, "default")
	if thr != nil {
		return Value{}, thr
	}

	if op == "+" && (lprim.IsString() || rprim.IsString()) {
		ls, thr := interp.ToString(lprim)
		if thr != nil {
			return Value{}, thr
		}
		rs, thr := interp.ToString(rprim)
		if thr != nil {
			return Value{}, thr
		}
		return StringValue(ls + rs), nil
	}

	ln, thr := interp.ToNumeric(lprim)
	if thr != nil {
		return Value{}, thr
	}
	rn, thr := interp.ToNumeric(rprim)
	if thr != nil {
		return Value{}, thr
	}

	switch op {
	case "+":
		return NumberValue(ln + rn), nil
	case "-":
		return NumberValue(ln - rn), nil
	case "*":
		return NumberValue(ln * rn), nil
	case "/":
		return NumberValue(ln / rn), nil
	default:
		return Value{}, interp.NewThrow("TypeError", "unsupported operator "+op)
	}
}
