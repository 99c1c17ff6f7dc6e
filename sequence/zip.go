package sequence

import (
	"iter"
)

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// zipping pulls one element from every source per step and stops at the
// first exhausted source.
type zipping[R any] struct {
	sources []erased
	combine func([]any) R
}

func (z *zipping[R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		nexts := make([]func() (any, bool), len(z.sources))
		for i, src := range z.sources {
			next, stop := iter.Pull(src.each)
			defer stop()
			nexts[i] = next
		}
		for {
			tuple := make([]any, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				tuple[i] = v
			}
			if !yield(z.combine(tuple)) {
				return
			}
		}
	}
}

func (z *zipping[R]) Unwrap() Sequence[R]                          { return z }
func (z *zipping[R]) Pipe(steps ...Step[R, Wrapper[R]]) Wrapper[R] { return pipe[R](z, steps) }
func (z *zipping[R]) variant() string                              { return "zip" }

// DirectCount is the smallest source count. It declines when any source
// cannot answer.
func (z *zipping[R]) DirectCount() (int, bool) {
	least := -1
	for _, src := range z.sources {
		n, ok := src.count()
		if !ok {
			return 0, false
		}
		if least < 0 || n < least {
			least = n
		}
	}
	return max(least, 0), true
}

// Zip pairs elements of w with elements of other by position.
func Zip[A, B any](other Sequence[B]) Step[A, Wrapper[Pair[A, B]]] {
	return ZipWith(other, func(a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
}

// ZipWith combines elements of w and other by position through fn.
func ZipWith[A, B, R any](other Sequence[B], fn func(A, B) R) Step[A, Wrapper[R]] {
	return func(w Wrapper[A]) Wrapper[R] {
		return &zipping[R]{
			sources: []erased{erase(w.Unwrap()), erase(Wrap(other).Unwrap())},
			combine: func(t []any) R { return fn(castTo[A](t[0]), castTo[B](t[1])) },
		}
	}
}

// ZipAll zips w with any number of same-typed sequences into tuples.
func ZipAll[T any](others ...Sequence[T]) Step[T, Wrapper[[]T]] {
	return func(w Wrapper[T]) Wrapper[[]T] {
		sources := make([]erased, 0, len(others)+1)
		sources = append(sources, erase(w.Unwrap()))
		for _, other := range others {
			sources = append(sources, erase(Wrap(other).Unwrap()))
		}
		return &zipping[[]T]{
			sources: sources,
			combine: func(t []any) []T {
				out := make([]T, len(t))
				for i, v := range t {
					out[i] = castTo[T](v)
				}
				return out
			},
		}
	}
}
