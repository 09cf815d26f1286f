package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeAppendChild(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	b := NewText("b")
	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Equal(t, []*Node{a, b}, parent.ChildNodes())
	assert.Equal(t, parent, a.Parent())
	assert.Nil(t, a.PreviousSibling())
	assert.Equal(t, b, a.NextSibling())
	assert.Equal(t, a, b.PreviousSibling())
}

func TestNodeInsertBefore(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	c := NewText("c")
	parent.AppendChild(a)
	parent.AppendChild(c)

	b := NewText("b")
	parent.InsertBefore(b, c)

	assert.Equal(t, []*Node{a, b, c}, parent.ChildNodes())
	assert.Equal(t, a, b.PreviousSibling())
	assert.Equal(t, c, b.NextSibling())
}

func TestNodeRemoveChild(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	b := NewText("b")
	c := NewText("c")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	parent.RemoveChild(b)

	assert.Equal(t, []*Node{a, c}, parent.ChildNodes())
	assert.Equal(t, c, a.NextSibling())
	assert.Equal(t, a, c.PreviousSibling())
	assert.Nil(t, b.Parent())
}

func TestNodeAppendChildReparents(t *testing.T) {
	first := NewElement("div")
	second := NewElement("span")
	child := NewText("x")

	first.AppendChild(child)
	second.AppendChild(child)

	assert.Empty(t, first.ChildNodes())
	assert.Equal(t, []*Node{child}, second.ChildNodes())
	assert.Equal(t, second, child.Parent())
}
