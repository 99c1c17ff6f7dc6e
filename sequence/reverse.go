package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/logger"
)

// reversal yields its upstream back to front.
type reversal[T any] struct {
	src Sequence[T]
}

func (r *reversal[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		idx, ok := r.src.(Indexed[T])
		if !ok {
			idx = &sliceSource[T]{items: collect(r.src)}
		}
		for i := idx.Len() - 1; i >= 0; i-- {
			if !yield(idx.At(i)) {
				return
			}
		}
	}
}

func (r *reversal[T]) Unwrap() Sequence[T]                          { return r }
func (r *reversal[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](r, steps) }
func (r *reversal[T]) variant() string                              { return "reverse" }

// DirectCount delegates upstream.
func (r *reversal[T]) DirectCount() (int, bool) { return DirectCount(r.src) }

// Reverse yields the elements in reverse order. Reversing a reversed
// sequence cancels out and gives back the original upstream.
func Reverse[T any]() Step[T, Wrapper[T]] {
	return func(w Wrapper[T]) Wrapper[T] {
		if r, ok := w.(*reversal[T]); ok {
			tracef("cancelled", "reverse", logger.FieldReason, "double reverse")
			return Wrap(r.src)
		}
		return &reversal[T]{src: w.Unwrap()}
	}
}
