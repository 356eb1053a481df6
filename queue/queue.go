// Package queue provides a FIFO queue stored in a circular doubly-linked list.
package queue

import (
	"cdll/list"
	"io"
)

// Queue admits values at the back and hands them out from the front. It
// exposes none of the list's other ends or its indexing. The zero value is
// an empty queue ready to use. Not safe for concurrent use.
type Queue[T any] struct {
	l *list.CircularList[T]
}

func New[T any]() *Queue[T] {
	return &Queue[T]{l: list.New[T]()}
}

// NewFilled returns a queue holding n copies of v; n must be positive.
func NewFilled[T any](n uint, v T) (*Queue[T], error) {
	l, err := list.NewFilled(n, v)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{l: l}, nil
}

// NewRange returns a queue holding the elements from b through e inclusive.
func NewRange[T any](b, e list.Iterator[T]) (*Queue[T], error) {
	l, err := list.NewRange(b, e)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{l: l}, nil
}

func NewCopy[T any](other *Queue[T]) *Queue[T] {
	return &Queue[T]{l: list.NewCopy(other.l)}
}

func (q *Queue[T]) ring() *list.CircularList[T] {
	if q.l == nil {
		q.l = list.New[T]()
	}
	return q.l
}

func (q *Queue[T]) Clone() *Queue[T] {
	return NewCopy(q)
}

// Push adds v at the back.
func (q *Queue[T]) Push(v T) {
	q.ring().PushBack(v)
}

// Pop removes and returns the front value.
func (q *Queue[T]) Pop() (T, error) {
	return q.ring().PopFront()
}

func (q *Queue[T]) Begin() list.Iterator[T] { return q.ring().Begin() }
func (q *Queue[T]) End() list.Iterator[T]   { return q.ring().End() }
func (q *Queue[T]) Empty() bool             { return q.ring().Empty() }
func (q *Queue[T]) Len() int                { return q.ring().Len() }
func (q *Queue[T]) Release()                { q.ring().Release() }

// Assign replaces the contents of q with a copy of other's.
func (q *Queue[T]) Assign(other *Queue[T]) {
	if other == q {
		return
	}
	q.ring().Assign(other.l)
}

func (q *Queue[T]) WriteTo(w io.Writer) (int64, error) {
	return q.ring().WriteTo(w)
}

func (q *Queue[T]) Render() string {
	return q.ring().Render()
}

func (q *Queue[T]) String() string {
	return q.ring().String()
}
