package sequence

import (
	"iter"

	"github.com/kbukum/seqkit/logger"
)

// concatenation is a flat list of segments yielded back to back.
type concatenation[T any] struct {
	parts []Sequence[T]
}

func (c *concatenation[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, part := range c.parts {
			for v := range part.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (c *concatenation[T]) Unwrap() Sequence[T]                          { return c }
func (c *concatenation[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](c, steps) }
func (c *concatenation[T]) variant() string                              { return "concat" }

// DirectCount sums the segment counts. It declines when any segment
// cannot answer.
func (c *concatenation[T]) DirectCount() (int, bool) {
	total := 0
	for _, part := range c.parts {
		n, ok := DirectCount(part)
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

func (c *concatenation[T]) appendPart(seq Sequence[T]) {
	if nested, ok := seq.(*concatenation[T]); ok {
		c.parts = append(c.parts, nested.parts...)
		return
	}
	c.parts = append(c.parts, seq)
}

// Concat yields the elements of w followed by those of each of others.
// Nil sequences are skipped and nested concatenations are flattened.
func Concat[T any](others ...Sequence[T]) Step[T, Wrapper[T]] {
	return func(w Wrapper[T]) Wrapper[T] {
		c := &concatenation[T]{}
		if cur, ok := w.(*concatenation[T]); ok {
			tracef("fused", "concat", logger.FieldDepth, len(cur.parts)+len(others))
			c.parts = append(make([]Sequence[T], 0, len(cur.parts)+len(others)), cur.parts...)
		} else {
			c.appendPart(w.Unwrap())
		}
		for _, other := range others {
			if other == nil {
				continue
			}
			c.appendPart(Wrap(other).Unwrap())
		}
		return c
	}
}
