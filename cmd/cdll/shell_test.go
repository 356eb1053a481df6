package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, runShell(strings.NewReader(script), &out, false))
	return out.String()
}

func TestShellEditsList(t *testing.T) {
	out := runScript(t, `pushb B
pushb C
pushf A
print
at -1
set 1 big value
print
popf
popb
len
empty
quit
pushb never
`)
	assert.Equal(t, `(A,B,C)
C
(A,big value,C)
popped A
popped C
1
false
`, out)
}

func TestShellHops(t *testing.T) {
	out := runScript(t, "pushb x\npushb y\nhop 3\nrhop 3\n")
	assert.Equal(t, `0: x head
1: y tail
2: x head
0: y tail
1: x head
2: y tail
`, out)
}

func TestShellReportsErrors(t *testing.T) {
	out := runScript(t, "popf\nat 0\nfill 0 x\nhop 1\nfrob\nat one\nfill 2 z\nfront\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "error: could not remove front item: empty container", lines[0])
	assert.Equal(t, "error: index 0, length 0: index out of range", lines[1])
	assert.Equal(t, "error: could not fill list: zero elements: invalid argument", lines[2])
	assert.Equal(t, "error: could not retrieve data: null reference", lines[3])
	assert.Contains(t, lines[4], "unknown command")
	assert.Contains(t, lines[5], "not a number")
	assert.Equal(t, "z", lines[6])
}

func TestShellPrompt(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runShell(strings.NewReader("len\n"), &out, true))
	assert.Equal(t, "> 0\n> ", out.String())
}

func TestShellRelease(t *testing.T) {
	out := runScript(t, "fill 3 v\nprint\nrelease\nrelease\nprint\nempty\n")
	assert.Equal(t, "(v,v,v)\n()\ntrue\n", out)
}

func TestShellFillLimit(t *testing.T) {
	out := runScript(t, "pushb keep\nfill 4000000000 x\nfill 65537 x\nprint\nfill 65536 y\nlen\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "invalid argument")
	assert.Equal(t, "error: count 65537 above 65536: invalid argument", lines[1])
	assert.Equal(t, "(keep)", lines[2])
	assert.Equal(t, "65536", lines[3])
}
