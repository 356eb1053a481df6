package list

import (
	"cdll/utils/errs"
	"github.com/pkg/errors"
	"math"
)

const kBlockSize = 64

type node[T any] struct {
	value T
	next  uint32
	prev  uint32
	live  bool
}

// arena owns the nodes of a single list. Nodes are addressed by offset and
// offset 0 is never handed out, so it serves as the nil handle.
// A *node returned by getNode is only good until the next allocate.
type arena[T any] struct {
	nodes []node[T]
	free  []uint32
}

func newArena[T any]() *arena[T] {
	return &arena[T]{
		nodes: make([]node[T], 1, kBlockSize),
	}
}

func (a *arena[T]) allocate(v T) uint32 {
	if n := len(a.free); n > 0 {
		off := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[off] = node[T]{value: v, live: true}
		return off
	}
	errs.CondPanic(uint64(len(a.nodes)) > math.MaxUint32, errors.New("arena: out of node offsets"))
	a.nodes = append(a.nodes, node[T]{value: v, live: true})
	return uint32(len(a.nodes) - 1)
}

// release frees the slot at off and hands back the value it held.
func (a *arena[T]) release(off uint32) T {
	errs.CondPanic(!a.live(off), errors.Errorf("arena: release of dead node %d", off))
	n := a.getNode(off)
	v := n.value
	*n = node[T]{}
	a.free = append(a.free, off)
	return v
}

func (a *arena[T]) getNode(off uint32) *node[T] {
	return &a.nodes[off]
}

func (a *arena[T]) live(off uint32) bool {
	return off != 0 && int(off) < len(a.nodes) && a.nodes[off].live
}

// reset drops every slot. Only valid once the list holding it is empty.
func (a *arena[T]) reset() {
	errs.AssertTrue(len(a.free) == len(a.nodes)-1)
	a.nodes = a.nodes[:1]
	a.free = a.free[:0]
}
