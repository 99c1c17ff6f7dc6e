package hashmap

import (
	"iter"

	"github.com/kbukum/seqkit/compare"
)

// Set is an insertion-ordered hash set keyed through an Equality.
type Set[T any] struct {
	m *Map[T, struct{}]
}

// NewSet creates a Set. Without an explicit Equality, compare.DefaultEquality is used.
func NewSet[T any](eq ...compare.Equality[T]) *Set[T] {
	return &Set[T]{m: New[T, struct{}](eq...)}
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.m.Has(v) {
		return false
	}
	s.m.Set(v, struct{}{})
	return true
}

// Has reports whether v is present.
func (s *Set[T]) Has(v T) bool { return s.m.Has(v) }

// Delete removes v, reporting whether it was present.
func (s *Set[T]) Delete(v T) bool { return s.m.Delete(v) }

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.m.Len() }

// Clear removes every element.
func (s *Set[T]) Clear() { s.m.Clear() }

// All iterates elements in insertion order.
func (s *Set[T]) All() iter.Seq[T] { return s.m.Keys() }
