package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentMutableBinding(t *testing.T) {
	interp := NewInterpreter()
	env := NewDeclarativeEnvironment(nil)
	env.CreateMutableBinding(interp, "x")
	env.InitializeBinding(interp, "x", NumberValue(1))

	v, thr := env.GetBindingValue(interp, "x", false)
	assert.Nil(t, thr)
	assert.Equal(t, float64(1), v.Number())

	thr = env.SetMutableBinding(interp, "x", NumberValue(2), false)
	assert.Nil(t, thr)
	v, _ = env.GetBindingValue(interp, "x", false)
	assert.Equal(t, float64(2), v.Number())
}

func TestEnvironmentImmutableBindingRejectsSet(t *testing.T) {
	interp := NewInterpreter()
	env := NewDeclarativeEnvironment(nil)
	env.CreateImmutableBinding("x")
	env.InitializeBinding(interp, "x", NumberValue(1))

	thr := env.SetMutableBinding(interp, "x", NumberValue(2), false)
	assert.NotNil(t, thr)
}

func TestGetIdentifierReferenceWalksOuterChain(t *testing.T) {
	interp := NewInterpreter()
	outer := NewDeclarativeEnvironment(nil)
	outer.CreateMutableBinding(interp, "x")
	outer.InitializeBinding(interp, "x", NumberValue(1))

	inner := NewDeclarativeEnvironment(outer)

	ref := GetIdentifierReference(inner, interp, "x")
	assert.False(t, ref.IsUnresolvableReference())
	v, thr := GetValue(interp, ref)
	assert.Nil(t, thr)
	assert.Equal(t, float64(1), v.Number())
}

func TestEnvironmentSetUninitializedBindingThrows(t *testing.T) {
	interp := NewInterpreter()
	env := NewDeclarativeEnvironment(nil)
	env.CreateMutableBinding(interp, "x") // declared, never initialized

	thr := env.SetMutableBinding(interp, "x", NumberValue(1), false)
	assert.NotNil(t, thr)
}

func TestGetIdentifierReferenceUnresolvable(t *testing.T) {
	interp := NewInterpreter()
	env := NewDeclarativeEnvironment(nil)
	ref := GetIdentifierReference(env, interp, "missing")
	assert.True(t, ref.IsUnresolvableReference())
}
