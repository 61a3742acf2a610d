package store

import (
	"math"
	"reflect"
)

// As reads a boxed value as T.
//
// A value is readable as T when it holds a T (or, for interface types, a
// value implementing T), or when it is null. Null covers the untyped nil as
// well as typed nils of nilable kinds, and always reads as T's zero value.
func As[T any](boxed any) (T, bool) {
	if v, ok := boxed.(T); ok {
		return v, true
	}
	var zero T
	if isNull(boxed) {
		return zero, true
	}
	return zero, false
}

// isNull reports whether v is the null representation of any type.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// defaultEqual is the natural equality used when no comparer is supplied.
// Values whose dynamic type supports == are compared with it (pointers by
// identity); anything else falls back to a deep comparison. A float NaN
// equals another NaN of the same type, so storing NaN twice is not a change.
func defaultEqual[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}

	ra, rb := reflect.ValueOf(av), reflect.ValueOf(bv)
	if ra.Type() != rb.Type() {
		return false
	}
	if ra.Comparable() && rb.Comparable() {
		return av == bv || bothNaN(ra, rb)
	}
	return reflect.DeepEqual(av, bv)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func bothNaN(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(a.Float()) && math.IsNaN(b.Float())
	default:
		return false
	}
}
