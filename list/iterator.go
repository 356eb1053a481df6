package list

import (
	"cdll/utils/errs"
	"github.com/pkg/errors"
)

// Iterator is a cursor on one node of a CircularList. The zero Iterator,
// like Begin() of an empty list, has no position; stepping or
// dereferencing it fails with errs.ErrNullReference.
//
// Iterators are values: the postfix form of a step is
//
//	old := it
//	err := it.Next()
type Iterator[T any] struct {
	list *CircularList[T]
	node uint32
}

// Valid reports whether it refers to a live node.
func (it Iterator[T]) Valid() bool {
	return it.list != nil && it.list.arena != nil && it.list.arena.live(it.node)
}

// Equal reports whether both iterators refer to the same node, or both
// have no position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	if it.node == 0 || o.node == 0 {
		return it.node == o.node
	}
	return it.list == o.list && it.node == o.node
}

// Next moves it to the following node, wrapping from the last to the first.
func (it *Iterator[T]) Next() error {
	if !it.Valid() {
		return errors.Wrap(errs.ErrNullReference, "could not increment the iterator")
	}
	it.node = it.list.arena.getNode(it.node).next
	return nil
}

// Prev moves it to the preceding node, wrapping from the first to the last.
func (it *Iterator[T]) Prev() error {
	if !it.Valid() {
		return errors.Wrap(errs.ErrNullReference, "could not decrement the iterator")
	}
	it.node = it.list.arena.getNode(it.node).prev
	return nil
}

func (it Iterator[T]) Succ() (Iterator[T], error) {
	err := it.Next()
	return it, err
}

func (it Iterator[T]) Pred() (Iterator[T], error) {
	err := it.Prev()
	return it, err
}

func (it Iterator[T]) Value() (T, error) {
	if !it.Valid() {
		var zero T
		return zero, errors.Wrap(errs.ErrNullReference, "could not retrieve data")
	}
	return it.list.arena.getNode(it.node).value, nil
}

// Set overwrites the value of the node it refers to.
func (it Iterator[T]) Set(v T) error {
	if !it.Valid() {
		return errors.Wrap(errs.ErrNullReference, "could not store data")
	}
	it.list.arena.getNode(it.node).value = v
	return nil
}
