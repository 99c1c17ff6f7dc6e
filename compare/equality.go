package compare

import (
	"hash/maphash"
	"math"
	"reflect"
	"strings"
)

// Equality is an equivalence relation with a compatible hash: values that
// are Equal must produce the same Hash. Supports reports whether a value
// can be hashed at all.
type Equality[T any] interface {
	Equals(x, y T) bool
	Hash(v T) uint64
	Supports(v T) bool
}

var seed = maphash.MakeSeed()

// nanKey stands in for every NaN so that NaN equals NaN.
type nanKey struct{}

type defaultEquality[T any] struct{}

// DefaultEquality uses Go == on the dynamic value, with NaN equal to NaN and
// +0 equal to -0. Values holding slices, maps or funcs are not supported.
func DefaultEquality[T any]() Equality[T] {
	return defaultEquality[T]{}
}

func (defaultEquality[T]) Equals(x, y T) bool {
	return normalize(x) == normalize(y)
}

func (defaultEquality[T]) Hash(v T) uint64 {
	return maphash.Comparable(seed, normalize(v))
}

func (defaultEquality[T]) Supports(v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	return reflect.ValueOf(a).Comparable()
}

func normalize(v any) any {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) {
			return nanKey{}
		}
		if f == 0 {
			return float64(0)
		}
	case float32:
		if math.IsNaN(float64(f)) {
			return nanKey{}
		}
		if f == 0 {
			return float32(0)
		}
	}
	return v
}

type funcEquality[T any] struct {
	equals   func(x, y T) bool
	hash     func(v T) uint64
	supports func(v T) bool
}

// EqualityFunc builds an Equality from plain functions. A nil supports
// accepts every value.
func EqualityFunc[T any](equals func(x, y T) bool, hash func(v T) uint64, supports func(v T) bool) Equality[T] {
	return &funcEquality[T]{equals: equals, hash: hash, supports: supports}
}

func (f *funcEquality[T]) Equals(x, y T) bool { return f.equals(x, y) }
func (f *funcEquality[T]) Hash(v T) uint64    { return f.hash(v) }
func (f *funcEquality[T]) Supports(v T) bool {
	if f.supports == nil {
		return true
	}
	return f.supports(v)
}

// FoldStrings compares strings case-insensitively.
func FoldStrings() Equality[string] {
	return foldEquality
}

var foldEquality = EqualityFunc(
	strings.EqualFold,
	func(s string) uint64 { return maphash.String(seed, strings.ToLower(s)) },
	nil,
)
