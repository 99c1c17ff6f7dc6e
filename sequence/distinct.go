package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/compare"
	"github.com/kbukum/seqkit/hashmap"
	"github.com/kbukum/seqkit/logger"
)

// deduplication yields first occurrences only. A fresh seen-set is built
// for every pass.
type deduplication[T any] struct {
	src   Sequence[T]
	keyed bool
	eq    any
	first func() func(T) bool
}

func (d *deduplication[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		first := d.first()
		for v := range d.src.All() {
			if first(v) && !yield(v) {
				return
			}
		}
	}
}

func (d *deduplication[T]) Unwrap() Sequence[T]                          { return d }
func (d *deduplication[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](d, steps) }
func (d *deduplication[T]) variant() string                              { return "distinct" }

// Distinct drops repeated elements, keeping source order. Elements are
// compared with eq, or compare.DefaultEquality when eq is omitted.
// Applying Distinct to a key-less Distinct with the same equality returns
// it unchanged.
func Distinct[T any](eq ...compare.Equality[T]) Step[T, Wrapper[T]] {
	equality := equalityOf(eq)
	return func(w Wrapper[T]) Wrapper[T] {
		if d, ok := w.(*deduplication[T]); ok && !d.keyed && sameRef(d.eq, equality) {
			tracef("no-op", "distinct", logger.FieldReason, "already distinct")
			return w
		}
		return &deduplication[T]{
			src: w.Unwrap(),
			eq:  equality,
			first: func() func(T) bool {
				return hashmap.NewSet(equality).Add
			},
		}
	}
}

// DistinctBy drops elements whose key was already seen, keeping source
// order. Keys are compared with eq, or compare.DefaultEquality.
func DistinctBy[T, K any](key func(T) K, eq ...compare.Equality[K]) Step[T, Wrapper[T]] {
	equality := equalityOf(eq)
	return func(w Wrapper[T]) Wrapper[T] {
		return &deduplication[T]{
			src:   w.Unwrap(),
			keyed: true,
			eq:    equality,
			first: func() func(T) bool {
				seen := hashmap.NewSet(equality)
				return func(v T) bool { return seen.Add(key(v)) }
			},
		}
	}
}

func equalityOf[T any](eq []compare.Equality[T]) compare.Equality[T] {
	if len(eq) > 0 && eq[0] != nil {
		return eq[0]
	}
	return compare.DefaultEquality[T]()
}
