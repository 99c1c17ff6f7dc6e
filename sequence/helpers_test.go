package sequence

import (
	stderrors "errors"
	"iter"
	"testing"

	"github.com/kbukum/seqkit/errors"
)

func toArray[T any](w Wrapper[T]) []T {
	return Apply(w, ToArray[T]())
}

// bruteCount counts by iterating, ignoring every capability.
func bruteCount[T any](w Wrapper[T]) int {
	n := 0
	for range w.All() {
		n++
	}
	return n
}

func rangeOf(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// streamOf is a re-iterable source with no Sized or Indexed capability.
func streamOf[T any](items ...T) Wrapper[T] {
	return FromSeq(iter.Seq[T](func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}))
}

// sliceIter is a one-shot Iterator.
type sliceIter[T any] struct {
	items []T
	pos   int
}

func (s *sliceIter[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

// countedSource reports a count but must never be iterated.
type countedSource struct {
	n int
}

func (c countedSource) All() iter.Seq[int] {
	return func(func(int) bool) { panic("countedSource must not be iterated") }
}

func (c countedSource) DirectCount() (int, bool) { return c.n, true }

func expectPanicCode(t *testing.T, code errors.ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic with %s, got %v", code, r)
		}
		if !errors.HasCode(err, code) {
			t.Errorf("expected %s, got %v", code, err)
		}
		var appErr *errors.AppError
		if !stderrors.As(err, &appErr) {
			t.Errorf("expected *AppError, got %T", err)
		}
	}()
	fn()
}
