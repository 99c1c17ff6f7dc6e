package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/compare"
	"github.com/kbukum/seqkit/hashmap"
)

// Grouping is one group produced by GroupBy: the key and the values that
// mapped to it, in source order.
type Grouping[K, V any] struct {
	Key    K
	Values Wrapper[V]
}

// grouping partitions its upstream by key. Every pass rebuilds the index
// from scratch; groups come out in first-seen key order.
type grouping[T, K, V any] struct {
	src   Sequence[T]
	key   func(T) K
	value func(T) V
	eq    compare.Equality[K]
}

func (g *grouping[T, K, V]) All() iter.Seq[Grouping[K, V]] {
	return func(yield func(Grouping[K, V]) bool) {
		index := hashmap.New[K, *[]V](g.eq)
		for v := range g.src.All() {
			k := g.key(v)
			if values, ok := index.Get(k); ok {
				*values = append(*values, g.value(v))
				continue
			}
			index.Set(k, &[]V{g.value(v)})
		}
		for k, values := range index.All() {
			if !yield(Grouping[K, V]{Key: k, Values: FromSlice(*values)}) {
				return
			}
		}
	}
}

func (g *grouping[T, K, V]) Unwrap() Sequence[Grouping[K, V]] { return g }
func (g *grouping[T, K, V]) Pipe(steps ...Step[Grouping[K, V], Wrapper[Grouping[K, V]]]) Wrapper[Grouping[K, V]] {
	return pipe[Grouping[K, V]](g, steps)
}
func (g *grouping[T, K, V]) variant() string { return "groupBy" }

// GroupBy partitions elements by key. Keys are compared with eq, or
// compare.DefaultEquality.
func GroupBy[T, K any](key func(T) K, eq ...compare.Equality[K]) Step[T, Wrapper[Grouping[K, T]]] {
	return GroupByWith(key, func(v T) T { return v }, eq...)
}

// GroupByWith partitions elements by key and projects each grouped element
// through value.
func GroupByWith[T, K, V any](key func(T) K, value func(T) V, eq ...compare.Equality[K]) Step[T, Wrapper[Grouping[K, V]]] {
	equality := equalityOf(eq)
	return func(w Wrapper[T]) Wrapper[Grouping[K, V]] {
		return &grouping[T, K, V]{src: w.Unwrap(), key: key, value: value, eq: equality}
	}
}
