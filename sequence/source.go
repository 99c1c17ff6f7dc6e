package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/hashmap"
)

// Sequence is a finite, pull-iterable collection. Each call to All starts a
// fresh pass when the underlying source supports it.
type Sequence[T any] interface {
	All() iter.Seq[T]
}

// Sized is implemented by sources that know their length without a pass.
type Sized interface {
	Len() int
}

// Indexed is implemented by index-addressable sources.
type Indexed[T any] interface {
	Sequence[T]
	Sized
	At(i int) T
}

// Iterator is a one-shot pull enumerator. Next returns false once exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// KeyValue is one entry of a map source.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

type sliceSource[T any] struct {
	items []T
}

func (s *sliceSource[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *sliceSource[T]) Len() int   { return len(s.items) }
func (s *sliceSource[T]) At(i int) T { return s.items[i] }

type seqSource[T any] struct {
	seq iter.Seq[T]
}

func (s *seqSource[T]) All() iter.Seq[T] { return s.seq }

type iteratorSource[T any] struct {
	it Iterator[T]
}

func (s *iteratorSource[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

type mapSource[K comparable, V any] struct {
	m map[K]V
}

func (s *mapSource[K, V]) All() iter.Seq[KeyValue[K, V]] {
	return func(yield func(KeyValue[K, V]) bool) {
		for k, v := range s.m {
			if !yield(KeyValue[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

func (s *mapSource[K, V]) Len() int { return len(s.m) }

type setSource[T comparable] struct {
	m map[T]struct{}
}

func (s *setSource[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.m {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *setSource[T]) Len() int { return len(s.m) }

type hashMapSource[K, V any] struct {
	m *hashmap.Map[K, V]
}

func (s *hashMapSource[K, V]) All() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range s.m.All() {
			if !yield(Pair[K, V]{First: k, Second: v}) {
				return
			}
		}
	}
}

func (s *hashMapSource[K, V]) Len() int { return s.m.Len() }

type hashSetSource[T any] struct {
	s *hashmap.Set[T]
}

func (s *hashSetSource[T]) All() iter.Seq[T] { return s.s.All() }
func (s *hashSetSource[T]) Len() int         { return s.s.Len() }

// emptySource is the canonical empty sequence; all values of it are equal.
type emptySource[T any] struct{}

func (emptySource[T]) All() iter.Seq[T] { return func(func(T) bool) {} }
func (emptySource[T]) Len() int         { return 0 }

// FromSlice wraps a slice. The slice is not copied; it is index-addressable
// and sized, so positional picks and counts never iterate it.
func FromSlice[T any](items []T) Wrapper[T] {
	return Wrap[T](&sliceSource[T]{items: items})
}

// Of wraps the given values.
func Of[T any](items ...T) Wrapper[T] {
	return FromSlice(items)
}

// FromSeq wraps an iter.Seq. Re-iteration is exactly as repeatable as seq.
func FromSeq[T any](seq iter.Seq[T]) Wrapper[T] {
	return Wrap[T](&seqSource[T]{seq: seq})
}

// FromIterator wraps a one-shot enumerator. A second pass yields nothing.
func FromIterator[T any](it Iterator[T]) Wrapper[T] {
	return Wrap[T](&iteratorSource[T]{it: it})
}

// FromMap wraps a Go map; entries come out in Go's map iteration order.
func FromMap[K comparable, V any](m map[K]V) Wrapper[KeyValue[K, V]] {
	return Wrap[KeyValue[K, V]](&mapSource[K, V]{m: m})
}

// FromSet wraps a set represented as map[T]struct{}.
func FromSet[T comparable](m map[T]struct{}) Wrapper[T] {
	return Wrap[T](&setSource[T]{m: m})
}

// FromHashMap wraps a hashmap.Map; entries come out in insertion order.
func FromHashMap[K, V any](m *hashmap.Map[K, V]) Wrapper[Pair[K, V]] {
	return Wrap[Pair[K, V]](&hashMapSource[K, V]{m: m})
}

// FromHashSet wraps a hashmap.Set; elements come out in insertion order.
func FromHashSet[T any](s *hashmap.Set[T]) Wrapper[T] {
	return Wrap[T](&hashSetSource[T]{s: s})
}

// Empty returns the canonical empty Wrapper for T.
func Empty[T any]() Wrapper[T] {
	return &source[T]{src: emptySource[T]{}}
}
