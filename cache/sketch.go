package cache

import (
	"encoding/binary"
	"fmt"
	"github.com/dgryski/go-metro"
	"math/bits"
	"math/rand"
	"time"
)

const (
	sketchDepth = 4
	// sketchMinWidth keeps tiny caches from hashing every key onto a few counters.
	sketchMinWidth = 16
	counterMax     = 0x0f
)

// sketch estimates how often each key was recorded with a count-min sketch
// of 4-bit counters. Every window recordings it halves all counters, so old
// popularity fades.
type sketch[K comparable] struct {
	rows    [sketchDepth]nibbles
	seeds   [sketchDepth]uint64
	mask    uint64
	hash    func(K) uint64
	window  int
	samples int
}

func newSketch[K comparable](width int64, window int, hash func(K) uint64) *sketch[K] {
	if width < sketchMinWidth {
		width = sketchMinWidth
	}
	width = int64(1) << bits.Len64(uint64(width-1))
	s := &sketch[K]{
		mask:   uint64(width - 1),
		hash:   hash,
		window: window,
	}
	source := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range s.rows {
		s.seeds[i] = source.Uint64()
		s.rows[i] = make(nibbles, width/2)
	}
	return s
}

// Record counts one access to key, aging the sketch once the window is full.
func (s *sketch[K]) Record(key K) {
	if s.window > 0 {
		s.samples++
		if s.samples >= s.window {
			s.age()
			s.samples = 0
		}
	}
	h := s.hash(key)
	for i := range s.rows {
		s.rows[i].inc(s.slot(h, i))
	}
}

// Frequency returns the smallest counter key maps to; collisions can only
// raise it.
func (s *sketch[K]) Frequency(key K) int64 {
	h := s.hash(key)
	least := byte(counterMax)
	for i := range s.rows {
		if c := s.rows[i].at(s.slot(h, i)); c < least {
			least = c
		}
	}
	return int64(least)
}

func (s *sketch[K]) slot(h uint64, row int) uint64 {
	return (h ^ s.seeds[row]) & s.mask
}

func (s *sketch[K]) age() {
	for _, row := range s.rows {
		row.halve()
	}
}

// nibbles packs two saturating 4-bit counters per byte, the even counter in
// the low half.
type nibbles []byte

func (r nibbles) shift(i uint64) uint {
	return uint(i&1) << 2
}

func (r nibbles) at(i uint64) byte {
	return (r[i>>1] >> r.shift(i)) & counterMax
}

func (r nibbles) inc(i uint64) {
	if r.at(i) < counterMax {
		r[i>>1] += 1 << r.shift(i)
	}
}

func (r nibbles) halve() {
	for i, b := range r {
		r[i] = (b >> 1) & 0x77
	}
}

// hashKey hashes the bytes of key. Strings and integers are hashed
// directly; other keys through their Go-syntax representation.
func hashKey[K comparable](key K) uint64 {
	var buf [8]byte
	switch k := any(key).(type) {
	case string:
		return metro.Hash64Str(k, 0)
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], k)
	case int32:
		binary.LittleEndian.PutUint32(buf[:], uint32(k))
	case uint32:
		binary.LittleEndian.PutUint32(buf[:], k)
	default:
		return metro.Hash64Str(fmt.Sprintf("%#v", key), 0)
	}
	return metro.Hash64(buf[:], 0)
}
