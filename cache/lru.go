package cache

import (
	"cdll/list"
	"cdll/utils/errs"
	"github.com/pkg/errors"
)

type LRU[K comparable, V any] struct {
	m        map[K]list.Iterator[entry[K, V]]
	list     *list.CircularList[entry[K, V]]
	capacity int
}

func NewLRUReplacer[K comparable, V any](capacity int) (*LRU[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "lru capacity %d", capacity)
	}
	return &LRU[K, V]{
		m:        make(map[K]list.Iterator[entry[K, V]], capacity),
		list:     list.New[entry[K, V]](),
		capacity: capacity,
	}, nil
}

func (lru *LRU[K, V]) Get(key K) (V, bool) {
	it, ok := lru.m[key]
	if !ok {
		var zero V
		return zero, false
	}
	errs.Panic(lru.list.MoveToFront(it))
	e, err := it.Value()
	errs.Panic(err)
	return e.value, true
}

func (lru *LRU[K, V]) Put(key K, value V) {
	if it, ok := lru.m[key]; ok {
		errs.Panic(it.Set(entry[K, V]{key: key, value: value}))
		errs.Panic(lru.list.MoveToFront(it))
		return
	}
	if len(lru.m) == lru.capacity {
		lru.evict()
	}
	lru.list.PushFront(entry[K, V]{key: key, value: value})
	lru.m[key] = lru.list.Begin()
}

func (lru *LRU[K, V]) Len() int {
	return lru.list.Len()
}

func (lru *LRU[K, V]) contains(key K) bool {
	_, ok := lru.m[key]
	return ok
}

func (lru *LRU[K, V]) full() bool {
	return len(lru.m) == lru.capacity
}

// victim returns the key that the next insertion would evict.
func (lru *LRU[K, V]) victim() (K, bool) {
	e, err := lru.list.Back()
	if err != nil {
		var zero K
		return zero, false
	}
	return e.key, true
}

func (lru *LRU[K, V]) evict() {
	removed, err := lru.list.PopBack()
	errs.Panic(err)
	delete(lru.m, removed.key)
}
