package list

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteTo writes l as "(v1,v2,...,vn)" followed by a newline, front
// through back.
func (l *CircularList[T]) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteByte('(')
	off := l.head
	for i := 0; i < l.size; i++ {
		n := l.arena.getNode(off)
		fmt.Fprint(&buf, n.value)
		if off != l.tail {
			buf.WriteByte(',')
		}
		off = n.next
	}
	buf.WriteString(")\n")
	return buf.WriteTo(w)
}

// Render returns the text written by WriteTo.
func (l *CircularList[T]) Render() string {
	var sb strings.Builder
	_, _ = l.WriteTo(&sb)
	return sb.String()
}

func (l *CircularList[T]) String() string {
	return strings.TrimSuffix(l.Render(), "\n")
}
