package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/logger"
)

// selection is a fused chain of projectors over one upstream pass. All
// projectors see the same position index: that of the upstream element.
type selection[T any] struct {
	src        erased
	projectors []func(any, int) any
}

func (s *selection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range s.src.each {
			for _, p := range s.projectors {
				v = p(v, i)
			}
			i++
			if !yield(castTo[T](v)) {
				return
			}
		}
	}
}

func (s *selection[T]) Unwrap() Sequence[T]                          { return s }
func (s *selection[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](s, steps) }
func (s *selection[T]) variant() string                              { return "select" }

// DirectCount delegates upstream: projection keeps cardinality.
func (s *selection[T]) DirectCount() (int, bool) { return s.src.count() }

// Select projects every element through fn.
func Select[T, U any](fn func(T) U) Step[T, Wrapper[U]] {
	return SelectIndexed(func(v T, _ int) U { return fn(v) })
}

// SelectIndexed projects every element through fn, which also receives the
// element's position in the upstream sequence. Chained selects fuse into
// one pass; every projector in the chain sees the same position.
func SelectIndexed[T, U any](fn func(T, int) U) Step[T, Wrapper[U]] {
	projector := func(v any, i int) any { return fn(castTo[T](v), i) }
	return func(w Wrapper[T]) Wrapper[U] {
		if s, ok := w.(*selection[T]); ok {
			tracef("fused", "select", logger.FieldDepth, len(s.projectors)+1)
			projectors := make([]func(any, int) any, 0, len(s.projectors)+1)
			projectors = append(projectors, s.projectors...)
			return &selection[U]{src: s.src, projectors: append(projectors, projector)}
		}
		return &selection[U]{src: erase(w.Unwrap()), projectors: []func(any, int) any{projector}}
	}
}

// flattening expands every upstream element into a sub-sequence.
type flattening[T, U any] struct {
	src Sequence[T]
	fn  func(T, int) Sequence[U]
}

func (f *flattening[T, U]) All() iter.Seq[U] {
	return func(yield func(U) bool) {
		i := 0
		for v := range f.src.All() {
			inner := f.fn(v, i)
			i++
			if inner == nil {
				continue
			}
			for u := range inner.All() {
				if !yield(u) {
					return
				}
			}
		}
	}
}

func (f *flattening[T, U]) Unwrap() Sequence[U]                          { return f }
func (f *flattening[T, U]) Pipe(steps ...Step[U, Wrapper[U]]) Wrapper[U] { return pipe[U](f, steps) }
func (f *flattening[T, U]) variant() string                              { return "selectMany" }

// SelectMany maps every element to a sub-sequence and flattens the result.
// A nil sub-sequence contributes nothing.
func SelectMany[T, U any](fn func(T) Sequence[U]) Step[T, Wrapper[U]] {
	return SelectManyIndexed(func(v T, _ int) Sequence[U] { return fn(v) })
}

// SelectManyIndexed is SelectMany with the upstream position passed to fn.
func SelectManyIndexed[T, U any](fn func(T, int) Sequence[U]) Step[T, Wrapper[U]] {
	return func(w Wrapper[T]) Wrapper[U] {
		return &flattening[T, U]{src: w.Unwrap(), fn: fn}
	}
}
