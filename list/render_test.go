package list

import (
	"bytes"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRender(t *testing.T) {
	assert.Equal(t, "(1,2,3)\n", fromValues(1, 2, 3).Render())
	assert.Equal(t, "(x)\n", fromValues("x").Render())
	assert.Equal(t, "()\n", New[int]().Render())

	l, err := NewFilled(3, "Test string")
	require.NoError(t, err)
	assert.Equal(t, "(Test string,Test string,Test string)\n", l.Render())
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := fromValues(10, 20).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("(10,20)\n")), n)
	assert.Equal(t, "(10,20)\n", buf.String())
}

func TestString(t *testing.T) {
	l := fromValues(1.5, 2.5)
	assert.Equal(t, "(1.5,2.5)", l.String())
	assert.Equal(t, "list (1.5,2.5)", fmt.Sprintf("list %v", l))
}

func TestRenderAfterSurgery(t *testing.T) {
	l := fromValues(1, 2, 3, 4)
	require.NoError(t, l.MoveToFront(l.End()))
	_, err := l.PopBack()
	require.NoError(t, err)
	l.PushBack(5)
	assert.Equal(t, "(4,1,2,5)\n", l.Render())

	single := fromValues("only")
	assert.Equal(t, "(only)\n", single.Render())
	var zero CircularList[int]
	assert.Equal(t, "()", zero.String())
}
