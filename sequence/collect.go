package sequence

import (
	"github.com/kbukum/seqkit/compare"
	"github.com/kbukum/seqkit/hashmap"
)

// ToArray buffers the sequence into a new slice.
func ToArray[T any]() Step[T, []T] {
	return func(w Wrapper[T]) []T {
		out := collect(w.Unwrap())
		if out == nil {
			out = []T{}
		}
		return out
	}
}

// ToMap builds a Go map. On duplicate keys the last element wins.
func ToMap[T any, K comparable, V any](key func(T) K, value func(T) V) Step[T, map[K]V] {
	return func(w Wrapper[T]) map[K]V {
		out := make(map[K]V)
		for v := range w.All() {
			out[key(v)] = value(v)
		}
		return out
	}
}

// ToMultiMap builds a Go map of value lists in source order.
func ToMultiMap[T any, K comparable, V any](key func(T) K, value func(T) V) Step[T, map[K][]V] {
	return func(w Wrapper[T]) map[K][]V {
		out := make(map[K][]V)
		for v := range w.All() {
			k := key(v)
			out[k] = append(out[k], value(v))
		}
		return out
	}
}

// ToSet builds a Go set.
func ToSet[T comparable]() Step[T, map[T]struct{}] {
	return func(w Wrapper[T]) map[T]struct{} {
		out := make(map[T]struct{})
		for v := range w.All() {
			out[v] = struct{}{}
		}
		return out
	}
}

// ToHashMap builds an insertion-ordered hashmap.Map keyed through eq, or
// compare.DefaultEquality. On duplicate keys the last element wins.
func ToHashMap[T, K, V any](key func(T) K, value func(T) V, eq ...compare.Equality[K]) Step[T, *hashmap.Map[K, V]] {
	equality := equalityOf(eq)
	return func(w Wrapper[T]) *hashmap.Map[K, V] {
		out := hashmap.New[K, V](equality)
		for v := range w.All() {
			out.Set(key(v), value(v))
		}
		return out
	}
}

// ToHashSet builds an insertion-ordered hashmap.Set.
func ToHashSet[T any](eq ...compare.Equality[T]) Step[T, *hashmap.Set[T]] {
	equality := equalityOf(eq)
	return func(w Wrapper[T]) *hashmap.Set[T] {
		out := hashmap.NewSet(equality)
		for v := range w.All() {
			out.Add(v)
		}
		return out
	}
}
