package itertools

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Predicate reports whether a value matches. Errors propagate unchanged.
type Predicate[T any] func(T) (bool, error)

// KeyFunc computes the grouping key of a value.
type KeyFunc[T, K any] func(T) (K, error)

// Combine folds v into the running total acc.
type Combine[T any] func(acc, v T) (T, error)

// Test lifts an infallible boolean function into a Predicate.
func Test[T any](fn func(T) bool) Predicate[T] {
	if fn == nil {
		return nil
	}
	return func(v T) (bool, error) { return fn(v), nil }
}

// Addable is the set of types supporting the + operator.
type Addable interface {
	constraints.Ordered | constraints.Complex
}

// Add is the default Combine used by AccumulateSum.
func Add[T Addable](acc, v T) (T, error) {
	return acc + v, nil
}

// Truther lets a type decide its own truth value.
type Truther interface {
	Truth() bool
}

// Truthy reports whether v counts as true: false, zero numbers, empty
// strings and containers, and nil references are false. Types
// implementing Truther decide for themselves.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if t, ok := v.(Truther); ok {
		return t.Truth()
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}

func mustCallable(ok bool, name string) {
	if !ok {
		panic("itertools: " + name + " requires a non-nil function")
	}
}
