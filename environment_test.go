package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", NumberValue(1))
	v, err := env.Get(&Token{Text: "a"})
	require.NoError(t, err)
	assert.Equal(t, NumberValue(1), v)
}

func TestEnvironmentGetWalksParentChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", NumberValue(1))
	child := NewEnvironment(root)
	v, err := child.Get(&Token{Text: "a"})
	require.NoError(t, err)
	assert.Equal(t, NumberValue(1), v)
}

func TestEnvironmentGetUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(&Token{Text: "missing"})
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestEnvironmentAssignFindsNearestEnclosingScope(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", NumberValue(1))
	child := NewEnvironment(root)

	require.NoError(t, child.Assign(&Token{Text: "a"}, NumberValue(2)))

	// The binding lives in root, not child: child.values must stay empty.
	_, definedInChild := child.values["a"]
	assert.False(t, definedInChild)

	v, err := root.Get(&Token{Text: "a"})
	require.NoError(t, err)
	assert.Equal(t, NumberValue(2), v)
}

func TestEnvironmentAssignNeverCreatesABinding(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(&Token{Text: "a"}, NumberValue(1))
	require.Error(t, err)
	_, ok := env.values["a"]
	assert.False(t, ok)
}

func TestEnvironmentDefineOnlyAffectsCurrentScope(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)
	child.Define("a", NumberValue(1))

	_, err := root.Get(&Token{Text: "a"})
	assert.Error(t, err, "a child's Define must not leak into its parent")
}
