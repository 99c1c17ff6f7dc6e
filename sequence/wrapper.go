package sequence

import (
	"iter"
	"reflect"
)

// Wrapper is an immutable handle over a source or over pending
// transformation state. The set of implementations is closed: one variant
// per operator state, which lets each operator recognize its own prior
// application and fuse with it.
type Wrapper[T any] interface {
	Sequence[T]
	// Unwrap returns the nearest underlying raw sequence. Repeated calls
	// return the same value.
	Unwrap() Sequence[T]
	// Pipe applies same-typed steps left to right.
	Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T]

	variant() string
}

// Step is a pipeline step: intermediate operators return a Wrapper,
// terminal evaluators return a value.
type Step[T, R any] func(Wrapper[T]) R

// TryStep is a terminal evaluator that can fail.
type TryStep[T, R any] func(Wrapper[T]) (R, error)

// Apply runs step against w.
func Apply[T, R any](w Wrapper[T], step Step[T, R]) R {
	return step(w)
}

// TryApply runs a failing step against w.
func TryApply[T, R any](w Wrapper[T], step TryStep[T, R]) (R, error) {
	return step(w)
}

// Wrap returns seq itself when it already is a Wrapper, otherwise a new
// source Wrapper over it. A nil seq wraps to Empty.
func Wrap[T any](seq Sequence[T]) Wrapper[T] {
	if seq == nil {
		return Empty[T]()
	}
	if w, ok := seq.(Wrapper[T]); ok {
		return w
	}
	return &source[T]{src: seq}
}

func pipe[T any](w Wrapper[T], steps []Step[T, Wrapper[T]]) Wrapper[T] {
	for _, step := range steps {
		w = step(w)
	}
	return w
}

// source is the Wrapper over a raw sequence.
type source[T any] struct {
	src Sequence[T]
}

func (s *source[T]) All() iter.Seq[T]                             { return s.src.All() }
func (s *source[T]) Unwrap() Sequence[T]                          { return s.src }
func (s *source[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](s, steps) }
func (s *source[T]) variant() string                              { return "source" }

// DirectCount answers for sized or counting raw sources.
func (s *source[T]) DirectCount() (int, bool) { return DirectCount(s.src) }

// erased is a type-erased view of a sequence, used where fused state must
// outlive the element type of the step that created it.
type erased struct {
	each  iter.Seq[any]
	count func() (int, bool)
}

func erase[T any](seq Sequence[T]) erased {
	return erased{
		each: func(yield func(any) bool) {
			for v := range seq.All() {
				if !yield(v) {
					return
				}
			}
		},
		count: func() (int, bool) { return DirectCount(seq) },
	}
}

// castTo converts a boxed value back to T, mapping a nil box to T's zero
// value so interface-typed results survive the round trip.
func castTo[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// sameRef reports whether a and b are the same comparable value. It never
// panics on uncomparable dynamic types.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}

// collect buffers a sequence, preallocating when the count is known.
func collect[T any](seq Sequence[T]) []T {
	if idx, ok := seq.(Indexed[T]); ok {
		out := make([]T, idx.Len())
		for i := range out {
			out[i] = idx.At(i)
		}
		return out
	}
	var out []T
	if n, ok := DirectCount(seq); ok {
		out = make([]T, 0, n)
	}
	for v := range seq.All() {
		out = append(out, v)
	}
	return out
}
