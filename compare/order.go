package compare

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Comparer returns a negative number when x sorts before y, zero when they
// are equivalent and a positive number otherwise.
type Comparer[T any] func(x, y T) int

// Ordered returns cmp.Compare for an ordered type.
func Ordered[T cmp.Ordered]() Comparer[T] {
	return cmp.Compare[T]
}

// For returns the default comparer for T. Common ordered types compare
// directly; everything else goes through Default.
func For[T any]() Comparer[T] {
	var zero T
	var c any
	switch any(zero).(type) {
	case int:
		c = Comparer[int](cmp.Compare[int])
	case int64:
		c = Comparer[int64](cmp.Compare[int64])
	case float64:
		c = Comparer[float64](cmp.Compare[float64])
	case string:
		c = Comparer[string](strings.Compare)
	default:
		return func(x, y T) int { return Default(x, y) }
	}
	return c.(Comparer[T])
}

// Reverse flips the direction of c.
func Reverse[T any](c Comparer[T]) Comparer[T] {
	return func(x, y T) int { return c(y, x) }
}

type category int

const (
	catNil category = iota
	catBool
	catNumber
	catString
	catTime
	catOther
)

// Default is the total order used when no comparer is supplied. Values of
// different categories order by category; numbers compare by value across
// integer, unsigned and float kinds, with NaN before every other number.
func Default(x, y any) int {
	cx, cy := categorize(x), categorize(y)
	if cx != cy {
		return cmp.Compare(cx, cy)
	}
	switch cx {
	case catNil:
		return 0
	case catBool:
		bx, by := reflect.ValueOf(x).Bool(), reflect.ValueOf(y).Bool()
		switch {
		case bx == by:
			return 0
		case !bx:
			return -1
		default:
			return 1
		}
	case catNumber:
		return compareNumbers(reflect.ValueOf(x), reflect.ValueOf(y))
	case catString:
		return strings.Compare(reflect.ValueOf(x).String(), reflect.ValueOf(y).String())
	case catTime:
		return x.(time.Time).Compare(y.(time.Time))
	}
	if c := strings.Compare(fmt.Sprintf("%T", x), fmt.Sprintf("%T", y)); c != 0 {
		return c
	}
	return strings.Compare(fmt.Sprint(x), fmt.Sprint(y))
}

func categorize(v any) category {
	if v == nil {
		return catNil
	}
	if _, ok := v.(time.Time); ok {
		return catTime
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return catNil
		}
		return catOther
	case reflect.Bool:
		return catBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return catNumber
	case reflect.String:
		return catString
	default:
		return catOther
	}
}

func compareNumbers(x, y reflect.Value) int {
	if isFloat(x) || isFloat(y) {
		return cmp.Compare(toFloat(x), toFloat(y))
	}
	xs, ys := isSigned(x), isSigned(y)
	switch {
	case xs && ys:
		return cmp.Compare(x.Int(), y.Int())
	case !xs && !ys:
		return cmp.Compare(x.Uint(), y.Uint())
	case xs:
		if x.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(x.Int()), y.Uint())
	default:
		if y.Int() < 0 {
			return 1
		}
		return cmp.Compare(x.Uint(), uint64(y.Int()))
	}
}

func isFloat(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isFloat(v):
		return v.Float()
	case isSigned(v):
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

// IsNaN reports whether v is a floating point NaN of any float kind.
func IsNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}
