// Package cache holds replacement policies whose recency order is kept in a
// circular list: the front is the most recently used entry, the back is
// the next victim.
package cache

type Replacer[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Len() int
}

type entry[K comparable, V any] struct {
	key   K
	value V
}
