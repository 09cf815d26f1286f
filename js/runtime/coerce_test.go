package runtime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumberUndefinedIsNaN(t *testing.T) {
	interp := NewInterpreter()
	n, thr := interp.ToNumber(Undefined)
	assert.Nil(t, thr)
	assert.True(t, math.IsNaN(n))
}

func TestToNumberNullIsZero(t *testing.T) {
	interp := NewInterpreter()
	n, _ := interp.ToNumber(Null)
	assert.Equal(t, float64(0), n)
}

func TestToNumberStringParsesNumeric(t *testing.T) {
	interp := NewInterpreter()
	n, _ := interp.ToNumber(StringValue("  42  "))
	assert.Equal(t, float64(42), n)
}

func TestToNumberStringNonNumericIsNaN(t *testing.T) {
	interp := NewInterpreter()
	n, _ := interp.ToNumber(StringValue("abc"))
	assert.True(t, math.IsNaN(n))
}

func TestToBooleanFalsyValues(t *testing.T) {
	assert.False(t, ToBoolean(Undefined))
	assert.False(t, ToBoolean(Null))
	assert.False(t, ToBoolean(BooleanValue(false)))
	assert.False(t, ToBoolean(NumberValue(0)))
	assert.False(t, ToBoolean(NumberValue(math.NaN())))
	assert.False(t, ToBoolean(StringValue("")))
}

func TestToBooleanTruthyValues(t *testing.T) {
	assert.True(t, ToBoolean(BooleanValue(true)))
	assert.True(t, ToBoolean(NumberValue(1)))
	assert.True(t, ToBoolean(StringValue("x")))
}

func TestToStringNumber(t *testing.T) {
	interp := NewInterpreter()
	s, _ := interp.ToString(NumberValue(42))
	assert.Equal(t, "42", s)
}

func TestToStringNaN(t *testing.T) {
	interp := NewInterpreter()
	s, _ := interp.ToString(NumberValue(math.NaN()))
	assert.Equal(t, "NaN", s)
}
