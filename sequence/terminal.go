package sequence

import (
	"github.com/kbukum/seqkit/compare"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// Count returns the number of elements, without iterating when the
// sequence can report its count directly.
func Count[T any]() Step[T, int] {
	return func(w Wrapper[T]) int {
		if n, ok := DirectCount[T](w); ok {
			tracef("direct count", "count", logger.FieldCount, n)
			return n
		}
		n := 0
		for range w.All() {
			n++
		}
		return n
	}
}

// Aggregate folds the sequence left to right, seeded with its first
// element. An empty sequence fails with EMPTY_SEQUENCE.
func Aggregate[T any](fn func(acc, v T) T) TryStep[T, T] {
	return func(w Wrapper[T]) (T, error) {
		var acc T
		seeded := false
		for v := range w.All() {
			if !seeded {
				acc, seeded = v, true
				continue
			}
			acc = fn(acc, v)
		}
		if !seeded {
			return acc, errors.EmptySequence("aggregate")
		}
		return acc, nil
	}
}

// AggregateSeed folds the sequence left to right starting from seed.
func AggregateSeed[T, A any](seed A, fn func(acc A, v T) A) Step[T, A] {
	return func(w Wrapper[T]) A {
		acc := seed
		for v := range w.All() {
			acc = fn(acc, v)
		}
		return acc
	}
}

// extremum keeps the first element whose key beats every later one.
// Sorting never changes the answer, so ordered upstreams are bypassed.
func extremum[T, K any](op string, w Wrapper[T], key func(T) K, c compare.Comparer[K], wantSign int) (T, error) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for v := range unordered[T](w).All() {
		k := key(v)
		if !found {
			best, bestKey, found = v, k, true
			continue
		}
		if r := c(k, bestKey); (wantSign < 0 && r < 0) || (wantSign > 0 && r > 0) {
			best, bestKey = v, k
		}
	}
	if !found {
		return best, errors.EmptySequence(op)
	}
	return best, nil
}

func comparerOf[T any](cmp []compare.Comparer[T]) compare.Comparer[T] {
	if len(cmp) > 0 && cmp[0] != nil {
		return cmp[0]
	}
	return compare.For[T]()
}

func identity[T any](v T) T { return v }

// Min returns the smallest element. Ties keep the first one seen.
func Min[T any](cmp ...compare.Comparer[T]) TryStep[T, T] {
	c := comparerOf(cmp)
	return func(w Wrapper[T]) (T, error) { return extremum("min", w, identity[T], c, -1) }
}

// Max returns the largest element. Ties keep the first one seen.
func Max[T any](cmp ...compare.Comparer[T]) TryStep[T, T] {
	c := comparerOf(cmp)
	return func(w Wrapper[T]) (T, error) { return extremum("max", w, identity[T], c, 1) }
}

// MinBy returns the element with the smallest key.
func MinBy[T, K any](key func(T) K, cmp ...compare.Comparer[K]) TryStep[T, T] {
	c := comparerOf(cmp)
	return func(w Wrapper[T]) (T, error) { return extremum("minBy", w, key, c, -1) }
}

// MaxBy returns the element with the largest key.
func MaxBy[T, K any](key func(T) K, cmp ...compare.Comparer[K]) TryStep[T, T] {
	c := comparerOf(cmp)
	return func(w Wrapper[T]) (T, error) { return extremum("maxBy", w, key, c, 1) }
}

// Any reports whether the sequence has at least one element.
func Any[T any]() Step[T, bool] {
	return func(w Wrapper[T]) bool {
		if n, ok := DirectCount[T](w); ok {
			tracef("direct count", "any", logger.FieldCount, n)
			return n > 0
		}
		for range w.All() {
			return true
		}
		return false
	}
}

// AnyMatch reports whether pred holds for some element. It stops at the
// first match.
func AnyMatch[T any](pred func(T) bool) Step[T, bool] {
	return func(w Wrapper[T]) bool {
		for v := range w.All() {
			if pred(v) {
				return true
			}
		}
		return false
	}
}

// All reports whether pred holds for every element. It stops at the first
// failure and is true for an empty sequence.
func All[T any](pred func(T) bool) Step[T, bool] {
	return func(w Wrapper[T]) bool {
		for v := range w.All() {
			if !pred(v) {
				return false
			}
		}
		return true
	}
}

// ForEach calls fn with every element and its position and returns the
// number of elements visited.
func ForEach[T any](fn func(v T, i int)) Step[T, int] {
	return func(w Wrapper[T]) int {
		if idx, ok := w.Unwrap().(Indexed[T]); ok {
			tracef("indexed fast path", "forEach", logger.FieldCount, idx.Len())
			n := idx.Len()
			for i := range n {
				fn(idx.At(i), i)
			}
			return n
		}
		i := 0
		for v := range w.All() {
			fn(v, i)
			i++
		}
		return i
	}
}
