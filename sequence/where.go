package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/logger"
)

// filter is a fused chain of predicates. Predicates run in declaration
// order and stop at the first rejection.
type filter[T any] struct {
	src        Sequence[T]
	predicates []func(T, int) bool
}

func (f *filter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
	next:
		for v := range f.src.All() {
			idx := i
			i++
			for _, p := range f.predicates {
				if !p(v, idx) {
					continue next
				}
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (f *filter[T]) Unwrap() Sequence[T]                          { return f }
func (f *filter[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](f, steps) }
func (f *filter[T]) variant() string                              { return "where" }

// Where keeps the elements for which pred returns true.
func Where[T any](pred func(T) bool) Step[T, Wrapper[T]] {
	return WhereIndexed(func(v T, _ int) bool { return pred(v) })
}

// WhereIndexed is Where with the upstream position passed to pred.
// Chained wheres fuse and share that position.
func WhereIndexed[T any](pred func(T, int) bool) Step[T, Wrapper[T]] {
	return func(w Wrapper[T]) Wrapper[T] {
		if f, ok := w.(*filter[T]); ok {
			tracef("fused", "where", logger.FieldDepth, len(f.predicates)+1)
			predicates := make([]func(T, int) bool, 0, len(f.predicates)+1)
			predicates = append(predicates, f.predicates...)
			return &filter[T]{src: f.src, predicates: append(predicates, pred)}
		}
		return &filter[T]{src: w.Unwrap(), predicates: []func(T, int) bool{pred}}
	}
}
