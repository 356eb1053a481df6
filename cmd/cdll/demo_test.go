package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDemoList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, demoList(&out, 5))
	s := out.String()
	assert.Contains(t, s, "filled (4 ints, each 5): (5,5,5,5)\n")
	assert.Contains(t, s, "letters pushed to the front: (H,G,F,E,D,C,B,A)\n")
	assert.Contains(t, s, "range from the fifth letter through the last: (D,C,B,A)\n")
	assert.Contains(t, s, "letters: (E,D,C,B,A) front E, back A\n")
	assert.Contains(t, s, "filled: (5,5,5)\n")
	assert.Contains(t, s, `[0]="this" [-1]="TEST"`)
	assert.Contains(t, s, "after setting [1]: (this,BE,a,TEST)\n")
	assert.Contains(t, s, "value: A\tTail.\nvalue: D\tHead.\n")
}

func TestDemoExcept(t *testing.T) {
	var out bytes.Buffer
	demoExcept(&out)
	s := out.String()
	assert.Contains(t, s, "decrement end of an empty list failed: could not decrement the iterator: null reference")
	assert.Contains(t, s, "pop front of an empty list failed")
	assert.Contains(t, s, "index 0 of an empty list failed")
	assert.Contains(t, s, "fill with zero elements failed")
	assert.NotContains(t, s, "succeeded")
}

func TestDemoQueue(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, demoQueue(&out))
	s := out.String()
	assert.Contains(t, s, "popped A, 4 left\npopped B, 3 left\n")
	assert.Contains(t, s, "popped E, 0 left\n")
	assert.Contains(t, s, "strings after release: ()\nEmpty: true\n")
}

func TestDemoCommand(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"demo", "queue"})
	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, out.String(), "popped C, 2 left")
}
