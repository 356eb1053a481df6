// Package list implements a circular doubly-linked list.
//
// The last node links forward to the first and the first links back to the
// last, so iterators never run off either end: stepping past End() lands on
// Begin() and stepping back from Begin() lands on End(). End() refers to the
// last element, not to a position past it. Callers bound their walks with
// Len() or by comparing against a remembered position.
//
// A CircularList is not safe for concurrent use. An iterator stays bound to
// its node until that node is removed; using it afterwards is a caller error.
package list

import (
	"cdll/utils/errs"
	"github.com/pkg/errors"
)

// CircularList is a ring of nodes with O(1) insertion and removal at both
// ends. The zero value is an empty list ready to use. A CircularList must
// not be copied by value; use Clone or Assign.
type CircularList[T any] struct {
	arena *arena[T]
	head  uint32
	tail  uint32
	size  int
}

func New[T any]() *CircularList[T] {
	return new(CircularList[T]).Init()
}

// NewFilled returns a list holding n copies of v. A fill always produces a
// non-empty list, so n == 0 is rejected with errs.ErrInvalidArgument.
func NewFilled[T any](n uint, v T) (*CircularList[T], error) {
	if n == 0 {
		return nil, errors.Wrap(errs.ErrInvalidArgument, "could not fill list: zero elements")
	}
	l := New[T]()
	for i := uint(0); i < n; i++ {
		l.PushFront(v)
	}
	return l, nil
}

// NewCopy returns a deep copy of other. The copy shares no nodes with it.
func NewCopy[T any](other *CircularList[T]) *CircularList[T] {
	l := New[T]()
	l.appendAll(other)
	return l
}

// NewRange copies the elements from b through e, both included. The begin
// and end iterators of an empty list yield an empty list.
func NewRange[T any](b, e Iterator[T]) (*CircularList[T], error) {
	if b.node == 0 && e.node == 0 {
		return New[T](), nil
	}
	if !b.Valid() || !e.Valid() {
		return nil, errors.Wrap(errs.ErrNullReference, "could not copy range: bound has no position")
	}
	if b.list != e.list {
		return nil, errors.Wrap(errs.ErrInvalidArgument, "could not copy range: bounds belong to different lists")
	}
	src := b.list
	l := New[T]()
	off := b.node
	for i := 0; i < src.size; i++ {
		n := src.arena.getNode(off)
		l.PushBack(n.value)
		if off == e.node {
			return l, nil
		}
		off = n.next
	}
	return nil, errors.Wrap(errs.ErrNullReference, "could not copy range: end is not on the ring")
}

func (l *CircularList[T]) Init() *CircularList[T] {
	l.arena = newArena[T]()
	l.head, l.tail, l.size = 0, 0, 0
	return l
}

func (l *CircularList[T]) lazyInit() {
	if l.arena == nil {
		l.Init()
	}
}

func (l *CircularList[T]) Clone() *CircularList[T] {
	return NewCopy(l)
}

func (l *CircularList[T]) Len() int {
	return l.size
}

func (l *CircularList[T]) Empty() bool {
	return l.size == 0
}

func (l *CircularList[T]) PushFront(v T) {
	off := l.insert(v)
	l.head = off
	if l.size == 1 {
		l.tail = off
	}
}

func (l *CircularList[T]) PushBack(v T) {
	off := l.insert(v)
	l.tail = off
	if l.size == 1 {
		l.head = off
	}
}

func (l *CircularList[T]) PopFront() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "could not remove front item")
	}
	return l.unlink(l.head), nil
}

func (l *CircularList[T]) PopBack() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "could not remove back item")
	}
	return l.unlink(l.tail), nil
}

func (l *CircularList[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "could not access front value")
	}
	return l.arena.getNode(l.head).value, nil
}

func (l *CircularList[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "could not access back value")
	}
	return l.arena.getNode(l.tail).value, nil
}

// Release removes every element, front first. Releasing an empty list is a no-op.
func (l *CircularList[T]) Release() {
	for l.size > 0 {
		l.unlink(l.head)
	}
	if l.arena != nil {
		l.arena.reset()
	}
}

// Assign replaces the contents of l with a copy of other's elements.
// Assigning a list to itself does nothing.
func (l *CircularList[T]) Assign(other *CircularList[T]) {
	if other == l {
		return
	}
	l.Release()
	l.appendAll(other)
}

// At returns the element at index. Negative indexes count from the back,
// -1 being the last element.
func (l *CircularList[T]) At(index int) (T, error) {
	off, err := l.seek(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.arena.getNode(off).value, nil
}

// SetAt overwrites the element at index, with the indexing rules of At.
func (l *CircularList[T]) SetAt(index int, v T) error {
	off, err := l.seek(index)
	if err != nil {
		return err
	}
	l.arena.getNode(off).value = v
	return nil
}

// Begin returns an iterator at the first element, or an absent iterator
// when the list is empty.
func (l *CircularList[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, node: l.head}
}

// End returns an iterator at the last element, or an absent iterator when
// the list is empty.
func (l *CircularList[T]) End() Iterator[T] {
	return Iterator[T]{list: l, node: l.tail}
}

// Remove unlinks the element it refers to and returns its value.
// Other iterators of l stay bound to their nodes.
func (l *CircularList[T]) Remove(it Iterator[T]) (T, error) {
	if err := l.owns(it); err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(it.node), nil
}

// MoveToFront relinks the element it refers to at the front of l.
func (l *CircularList[T]) MoveToFront(it Iterator[T]) error {
	if err := l.owns(it); err != nil {
		return err
	}
	off := it.node
	if off == l.head {
		return nil
	}
	n := l.arena.getNode(off)
	l.arena.getNode(n.prev).next = n.next
	l.arena.getNode(n.next).prev = n.prev
	if off == l.tail {
		l.tail = n.prev
	}
	l.link(off, l.tail, l.head)
	l.head = off
	return nil
}

// Values returns the elements front to back.
func (l *CircularList[T]) Values() []T {
	values := make([]T, 0, l.size)
	off := l.head
	for i := 0; i < l.size; i++ {
		n := l.arena.getNode(off)
		values = append(values, n.value)
		off = n.next
	}
	return values
}

func (l *CircularList[T]) owns(it Iterator[T]) error {
	if !it.Valid() {
		return errors.Wrap(errs.ErrNullReference, "iterator has no position")
	}
	if it.list != l {
		return errors.Wrap(errs.ErrInvalidArgument, "iterator belongs to another list")
	}
	return nil
}

// insert allocates a node for v and links it between tail and head.
// The caller decides which end it becomes.
func (l *CircularList[T]) insert(v T) uint32 {
	l.lazyInit()
	off := l.arena.allocate(v)
	prev, next := l.tail, l.head
	if l.size == 0 {
		prev, next = off, off
	}
	l.link(off, prev, next)
	l.size++
	return off
}

func (l *CircularList[T]) link(off, prev, next uint32) {
	n := l.arena.getNode(off)
	n.prev = prev
	n.next = next
	l.arena.getNode(prev).next = off
	l.arena.getNode(next).prev = off
}

func (l *CircularList[T]) unlink(off uint32) T {
	n := l.arena.getNode(off)
	if l.size == 1 {
		l.head, l.tail = 0, 0
	} else {
		l.arena.getNode(n.prev).next = n.next
		l.arena.getNode(n.next).prev = n.prev
		if off == l.head {
			l.head = n.next
		}
		if off == l.tail {
			l.tail = n.prev
		}
	}
	l.size--
	return l.arena.release(off)
}

// seek resolves a signed index to a node offset, walking from whichever end
// is closer.
func (l *CircularList[T]) seek(index int) (uint32, error) {
	if index < -l.size || index >= l.size {
		return 0, errors.Wrapf(errs.ErrOutOfRange, "index %d, length %d", index, l.size)
	}
	if index < 0 {
		index += l.size
	}
	var off uint32
	if index >= l.size/2 {
		off = l.tail
		for i := l.size - 1; i > index; i-- {
			off = l.arena.getNode(off).prev
		}
	} else {
		off = l.head
		for i := 0; i < index; i++ {
			off = l.arena.getNode(off).next
		}
	}
	return off, nil
}

func (l *CircularList[T]) appendAll(src *CircularList[T]) {
	if src == nil {
		return
	}
	off := src.head
	for i := 0; i < src.size; i++ {
		n := src.arena.getNode(off)
		l.PushBack(n.value)
		off = n.next
	}
}
