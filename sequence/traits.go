package sequence

import (
	"github.com/kbukum/seqkit/logger"
)

// Counter is the direct-count capability. ok is false when the count is
// not structurally known, in which case callers fall back to iterating.
type Counter interface {
	DirectCount() (n int, ok bool)
}

// UnorderedUnwrapper is the unordered-unwrap capability: it returns the
// pre-sort upstream so order-insensitive terminals can skip sorting. It
// returns nil to decline and never returns its receiver.
type UnorderedUnwrapper[T any] interface {
	UnwrapUnordered() Sequence[T]
}

// DirectCount asks seq for its element count without iterating it.
func DirectCount[T any](seq Sequence[T]) (int, bool) {
	switch s := seq.(type) {
	case Counter:
		return s.DirectCount()
	case Sized:
		return s.Len(), true
	}
	return 0, false
}

// unordered follows the unordered-unwrap chain as far as it goes.
func unordered[T any](seq Sequence[T]) Sequence[T] {
	for depth := 0; ; depth++ {
		u, ok := seq.(UnorderedUnwrapper[T])
		if !ok {
			return seq
		}
		next := u.UnwrapUnordered()
		if next == nil || sameRef(next, seq) {
			return seq
		}
		tracef("unordered unwrap", "unwrap", logger.FieldDepth, depth+1)
		seq = next
	}
}
