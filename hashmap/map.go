package hashmap

import (
	"iter"

	"github.com/kbukum/seqkit/compare"
	"github.com/kbukum/seqkit/errors"
)

type entry[K, V any] struct {
	key     K
	value   V
	deleted bool
}

// Map is an insertion-ordered hash map keyed through an Equality.
type Map[K, V any] struct {
	eq      compare.Equality[K]
	buckets map[uint64][]int
	entries []entry[K, V]
	live    int
}

// New creates a Map. Without an explicit Equality, compare.DefaultEquality is used.
func New[K, V any](eq ...compare.Equality[K]) *Map[K, V] {
	m := &Map[K, V]{buckets: make(map[uint64][]int)}
	if len(eq) > 0 && eq[0] != nil {
		m.eq = eq[0]
	} else {
		m.eq = compare.DefaultEquality[K]()
	}
	return m
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.live }

func (m *Map[K, V]) find(key K) (hash uint64, pos int) {
	if !m.eq.Supports(key) {
		panic(errors.Unsupported(key))
	}
	hash = m.eq.Hash(key)
	for _, i := range m.buckets[hash] {
		if m.eq.Equals(m.entries[i].key, key) {
			return hash, i
		}
	}
	return hash, -1
}

// Set stores value under key. An existing key keeps its position and the
// new value replaces the old one. It panics with an UNSUPPORTED_VALUE
// AppError when the Equality does not support key.
func (m *Map[K, V]) Set(key K, value V) {
	hash, pos := m.find(key)
	if pos >= 0 {
		m.entries[pos].value = value
		return
	}
	m.buckets[hash] = append(m.buckets[hash], len(m.entries))
	m.entries = append(m.entries, entry[K, V]{key: key, value: value})
	m.live++
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if _, pos := m.find(key); pos >= 0 {
		return m.entries[pos].value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, pos := m.find(key)
	return pos >= 0
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	hash, pos := m.find(key)
	if pos < 0 {
		return false
	}
	bucket := m.buckets[hash]
	for i, p := range bucket {
		if p == pos {
			bucket = append(bucket[:i:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(m.buckets, hash)
	} else {
		m.buckets[hash] = bucket
	}

	var zero entry[K, V]
	m.entries[pos] = zero
	m.entries[pos].deleted = true
	m.live--

	if len(m.entries) > 32 && m.live < len(m.entries)/2 {
		m.compact()
	}
	return true
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	m.buckets = make(map[uint64][]int)
	m.entries = nil
	m.live = 0
}

// compact drops tombstones and rebuilds the bucket index.
func (m *Map[K, V]) compact() {
	entries := make([]entry[K, V], 0, m.live)
	buckets := make(map[uint64][]int, m.live)
	for _, e := range m.entries {
		if e.deleted {
			continue
		}
		h := m.eq.Hash(e.key)
		buckets[h] = append(buckets[h], len(entries))
		entries = append(entries, e)
	}
	m.entries = entries
	m.buckets = buckets
}

// All iterates key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < len(m.entries); i++ {
			e := m.entries[i]
			if e.deleted {
				continue
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys iterates keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates values in key insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
