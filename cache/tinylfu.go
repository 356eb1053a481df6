package cache

// samplesPerEntry sets how many recorded accesses, per unit of capacity,
// pass before the sketch counters are halved.
const samplesPerEntry = 10

// TinyLFU is an LRU guarded by a frequency filter: once full, a new key
// only displaces the LRU victim if it has been seen at least as often.
type TinyLFU[K comparable, V any] struct {
	lru    *LRU[K, V]
	sketch *sketch[K]
}

func NewTinyLFU[K comparable, V any](capacity int) (*TinyLFU[K, V], error) {
	lru, err := NewLRUReplacer[K, V](capacity)
	if err != nil {
		return nil, err
	}
	window := capacity * samplesPerEntry
	return &TinyLFU[K, V]{
		lru:    lru,
		sketch: newSketch(int64(window), window, hashKey[K]),
	}, nil
}

func (lfu *TinyLFU[K, V]) Get(key K) (V, bool) {
	lfu.sketch.Record(key)
	return lfu.lru.Get(key)
}

func (lfu *TinyLFU[K, V]) Put(key K, value V) {
	lfu.sketch.Record(key)
	if lfu.lru.contains(key) || !lfu.lru.full() {
		lfu.lru.Put(key, value)
		return
	}
	if victim, ok := lfu.lru.victim(); ok && !lfu.Allow(victim, key) {
		return
	}
	lfu.lru.Put(key, value)
}

func (lfu *TinyLFU[K, V]) Len() int {
	return lfu.lru.Len()
}

// Allow reports whether candidate may take the place of evict.
func (lfu *TinyLFU[K, V]) Allow(evict, candidate K) bool {
	return lfu.sketch.Frequency(candidate) >= lfu.sketch.Frequency(evict)
}
