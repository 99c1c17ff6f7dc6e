package sequence

import (
	"iter"
	"slices"

	"github.com/kbukum/seqkit/compare"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// clause is one ordering key. A nil key sorts by the element itself.
type clause[T any] struct {
	key  func(T) any
	cmp  func(a, b any) int
	desc bool
}

func newClause[T, K any](key func(T) K, comparers []compare.Comparer[K], desc bool) clause[T] {
	c := compare.For[K]()
	if len(comparers) > 0 && comparers[0] != nil {
		c = comparers[0]
	}
	cl := clause[T]{
		cmp:  func(a, b any) int { return c(castTo[K](a), castTo[K](b)) },
		desc: desc,
	}
	if key != nil {
		cl.key = func(v T) any { return key(v) }
	}
	return cl
}

// ordering sorts its upstream by a list of clauses, first clause primary.
type ordering[T any] struct {
	src     Sequence[T]
	clauses []clause[T]
}

type slot[T any] struct {
	value T
	key   any
}

func (o *ordering[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range o.sort() {
			if !yield(s.value) {
				return
			}
		}
	}
}

// sort buffers the upstream once, then runs one stable pass per clause,
// last-declared clause first.
func (o *ordering[T]) sort() []slot[T] {
	values := collect(o.src)
	slots := make([]slot[T], len(values))
	for i, v := range values {
		slots[i].value = v
	}
	for i := len(o.clauses) - 1; i >= 0; i-- {
		c := o.clauses[i]
		for j := range slots {
			if c.key != nil {
				slots[j].key = c.key(slots[j].value)
			} else {
				slots[j].key = slots[j].value
			}
		}
		slices.SortStableFunc(slots, func(a, b slot[T]) int {
			if c.desc {
				return c.cmp(b.key, a.key)
			}
			return c.cmp(a.key, b.key)
		})
	}
	return slots
}

func (o *ordering[T]) Unwrap() Sequence[T]                          { return o }
func (o *ordering[T]) Pipe(steps ...Step[T, Wrapper[T]]) Wrapper[T] { return pipe[T](o, steps) }
func (o *ordering[T]) variant() string                              { return "order" }

// DirectCount delegates upstream: sorting keeps cardinality.
func (o *ordering[T]) DirectCount() (int, bool) { return DirectCount(o.src) }

// UnwrapUnordered returns the pre-sort upstream.
func (o *ordering[T]) UnwrapUnordered() Sequence[T] { return o.src }

func startOrdering[T any](w Wrapper[T], c clause[T]) Wrapper[T] {
	src := w.Unwrap()
	if o, ok := w.(*ordering[T]); ok {
		tracef("restarted", "orderBy", "dropped", len(o.clauses))
		src = o.src
	}
	return &ordering[T]{src: src, clauses: []clause[T]{c}}
}

func appendClause[T any](op string, w Wrapper[T], c clause[T]) Wrapper[T] {
	o, ok := w.(*ordering[T])
	if !ok {
		panic(errors.InvalidOperation(op, "requires an ordered sequence"))
	}
	tracef("fused", op, logger.FieldDepth, len(o.clauses)+1)
	clauses := make([]clause[T], 0, len(o.clauses)+1)
	clauses = append(clauses, o.clauses...)
	return &ordering[T]{src: o.src, clauses: append(clauses, c)}
}

// OrderBy sorts ascending by key, using cmp or compare.For[K]. Any prior
// ordering is discarded.
func OrderBy[T, K any](key func(T) K, cmp ...compare.Comparer[K]) Step[T, Wrapper[T]] {
	c := newClause(key, cmp, false)
	return func(w Wrapper[T]) Wrapper[T] { return startOrdering(w, c) }
}

// OrderByDescending sorts descending by key.
func OrderByDescending[T, K any](key func(T) K, cmp ...compare.Comparer[K]) Step[T, Wrapper[T]] {
	c := newClause(key, cmp, true)
	return func(w Wrapper[T]) Wrapper[T] { return startOrdering(w, c) }
}

// Order sorts the elements themselves ascending.
func Order[T any](cmp ...compare.Comparer[T]) Step[T, Wrapper[T]] {
	c := newClause[T, T](nil, cmp, false)
	return func(w Wrapper[T]) Wrapper[T] { return startOrdering(w, c) }
}

// OrderDescending sorts the elements themselves descending.
func OrderDescending[T any](cmp ...compare.Comparer[T]) Step[T, Wrapper[T]] {
	c := newClause[T, T](nil, cmp, true)
	return func(w Wrapper[T]) Wrapper[T] { return startOrdering(w, c) }
}

// ThenBy adds an ascending secondary key to an ordered sequence. Applied
// to anything else it panics with an INVALID_OPERATION error.
func ThenBy[T, K any](key func(T) K, cmp ...compare.Comparer[K]) Step[T, Wrapper[T]] {
	c := newClause(key, cmp, false)
	return func(w Wrapper[T]) Wrapper[T] { return appendClause("thenBy", w, c) }
}

// ThenByDescending adds a descending secondary key to an ordered sequence.
func ThenByDescending[T, K any](key func(T) K, cmp ...compare.Comparer[K]) Step[T, Wrapper[T]] {
	c := newClause(key, cmp, true)
	return func(w Wrapper[T]) Wrapper[T] { return appendClause("thenByDescending", w, c) }
}
