package sequence

import (
	"iter"
	"math"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// window is a fused skip/take interval over one upstream.
type window[T any] struct {
	src     Sequence[T]
	skip    int
	take    int
	limited bool
}

func (w *window[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if w.limited && w.take == 0 {
			return
		}
		if idx, ok := w.src.(Indexed[T]); ok {
			end := idx.Len()
			if w.limited && w.skip < end && w.take < end-w.skip {
				end = w.skip + w.take
			}
			for i := w.skip; i < end; i++ {
				if !yield(idx.At(i)) {
					return
				}
			}
			return
		}
		i, taken := 0, 0
		for v := range w.src.All() {
			if i < w.skip {
				i++
				continue
			}
			if !yield(v) {
				return
			}
			taken++
			if w.limited && taken >= w.take {
				return
			}
		}
	}
}

func (w *window[T]) Unwrap() Sequence[T]                          { return w }
func (w *window[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](w, steps) }
func (w *window[T]) variant() string                              { return "window" }

// DirectCount clamps the upstream count to the interval.
func (w *window[T]) DirectCount() (int, bool) {
	n, ok := DirectCount(w.src)
	if !ok {
		return 0, false
	}
	n = max(0, n-w.skip)
	if w.limited {
		n = min(n, w.take)
	}
	return n, true
}

// addSaturating adds two non-negative counts, stopping at math.MaxInt.
func addSaturating(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

// Skip bypasses the first n elements. It panics with an OUT_OF_RANGE
// error when n is negative.
func Skip[T any](n int) Step[T, Wrapper[T]] {
	if n < 0 {
		panic(errors.OutOfRange("count", n))
	}
	return func(w Wrapper[T]) Wrapper[T] {
		if n == 0 {
			return w
		}
		cur, ok := w.(*window[T])
		if !ok {
			return &window[T]{src: w.Unwrap(), skip: n}
		}
		skip := addSaturating(cur.skip, n)
		switch {
		case !cur.limited:
			tracef("fused", "skip", "skip", skip)
			return &window[T]{src: cur.src, skip: skip}
		case cur.take > n:
			tracef("fused", "skip", "skip", skip, "take", cur.take-n)
			return &window[T]{src: cur.src, skip: skip, take: cur.take - n, limited: true}
		default:
			tracef("collapsed to empty", "skip", "take", cur.take, logger.FieldCount, n,
				logger.FieldReason, "skip reaches past take")
			return Empty[T]()
		}
	}
}

// Take yields at most the first n elements. It panics with an OUT_OF_RANGE
// error when n is negative.
func Take[T any](n int) Step[T, Wrapper[T]] {
	if n < 0 {
		panic(errors.OutOfRange("count", n))
	}
	return func(w Wrapper[T]) Wrapper[T] {
		cur, ok := w.(*window[T])
		if !ok {
			return &window[T]{src: w.Unwrap(), take: n, limited: true}
		}
		take := n
		if cur.limited {
			take = min(cur.take, n)
		}
		tracef("fused", "take", "skip", cur.skip, "take", take)
		return &window[T]{src: cur.src, skip: cur.skip, take: take, limited: true}
	}
}
