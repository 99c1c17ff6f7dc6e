package sequence

import (
	"math"

	"github.com/kbukum/seqkit/errors"
)

// elementAt resolves a position; negative positions count from the end.
// Indexed upstreams answer without iterating; otherwise one streaming pass
// is made, buffering at most |i| trailing elements for negative positions.
func elementAt[T any](w Wrapper[T], i int) (T, bool) {
	var zero T
	if idx, ok := w.Unwrap().(Indexed[T]); ok {
		n := idx.Len()
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return zero, false
		}
		tracef("indexed fast path", "elementAt", "index", i)
		return idx.At(i), true
	}
	if i >= 0 {
		pos := 0
		for v := range w.All() {
			if pos == i {
				return v, true
			}
			pos++
		}
		return zero, false
	}
	if i == math.MinInt {
		// |i| exceeds any possible length.
		return zero, false
	}
	size := -i
	ring := make([]T, 0, min(size, 64))
	seen := 0
	for v := range w.All() {
		if len(ring) < size {
			ring = append(ring, v)
		} else {
			ring[seen%size] = v
		}
		seen++
	}
	if seen < size {
		return zero, false
	}
	return ring[seen%size], true
}

// First returns the first element or an EMPTY_SEQUENCE error.
func First[T any]() TryStep[T, T] {
	return func(w Wrapper[T]) (T, error) {
		if v, ok := elementAt(w, 0); ok {
			return v, nil
		}
		var zero T
		return zero, errors.EmptySequence("first")
	}
}

// Last returns the last element or an EMPTY_SEQUENCE error.
func Last[T any]() TryStep[T, T] {
	return func(w Wrapper[T]) (T, error) {
		if v, ok := elementAt(w, -1); ok {
			return v, nil
		}
		var zero T
		return zero, errors.EmptySequence("last")
	}
}

// ElementAt returns the element at index, counting from the end when index
// is negative. A missing position fails with OUT_OF_RANGE.
func ElementAt[T any](index int) TryStep[T, T] {
	return func(w Wrapper[T]) (T, error) {
		if v, ok := elementAt(w, index); ok {
			return v, nil
		}
		var zero T
		return zero, errors.OutOfRange("index", index)
	}
}

// FirstOrDefault returns the first element, or def when there is none.
func FirstOrDefault[T any](def T) Step[T, T] {
	return func(w Wrapper[T]) T { return orDefault(w, 0, def) }
}

// LastOrDefault returns the last element, or def when there is none.
func LastOrDefault[T any](def T) Step[T, T] {
	return func(w Wrapper[T]) T { return orDefault(w, -1, def) }
}

// ElementAtOrDefault returns the element at index, or def when the
// position does not exist.
func ElementAtOrDefault[T any](index int, def T) Step[T, T] {
	return func(w Wrapper[T]) T { return orDefault(w, index, def) }
}

func orDefault[T any](w Wrapper[T], i int, def T) T {
	if v, ok := elementAt(w, i); ok {
		return v
	}
	return def
}
