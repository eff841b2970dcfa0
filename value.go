package equal

import (
	"reflect"
	"strconv"
	"strings"
)

// Symbol is a symbolic primitive. Symbols are coerced to their string form
// before comparison, so two symbols are equal exactly when their
// descriptions match.
type Symbol string

// String implements Stringer interface for Symbol
func (s Symbol) String() string {
	return "symbol(" + string(s) + ")"
}

// kindOf classifies a value into exactly one comparison variant.
// Values outside the model (funcs, channels, host structs) are treated as
// opaque primitives and compared by strict equality only.
func kindOf(v interface{}) Kind {
	switch v.(type) {
	case nil, bool, string, Symbol,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return Primitive
	case *Map, *Set:
		return OrderedPair
	}
	if _, ok := v.(Weak); ok {
		return WeakReferenced
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map:
		return KeyedUnordered
	default:
		return Primitive
	}
}

// strictEqual compares by reference-or-primitive identity: primitives by
// value within the same type, reference types by the reference itself
func strictEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	if av.Type().Comparable() {
		return a == b
	}
	switch av.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return av.Pointer() == bv.Pointer()
	}
	return false
}

// looseEqual compares after numeric coercion: numbers, numeric strings and
// booleans are compared by numeric value, so 1, "1" and true are all
// loosely equal
func looseEqual(a, b interface{}) bool {
	if strictEqual(a, b) {
		return true
	}
	an, aok := toNumber(a)
	bn, bok := toNumber(b)
	return aok && bok && an == bn
}

// primitiveEqual is the uniform comparison of two primitives: symbols are
// coerced to their string form first, numbers compare by value regardless
// of their width
func primitiveEqual(a, b interface{}) bool {
	if sym, ok := a.(Symbol); ok {
		a = sym.String()
	}
	if sym, ok := b.(Symbol); ok {
		b = sym.String()
	}
	if strictEqual(a, b) {
		return true
	}
	an, aok := numericValue(a)
	bn, bok := numericValue(b)
	return aok && bok && an == bn
}

// numericValue converts a numeric primitive to float64
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uintptr:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// toNumber converts a primitive to its loose numeric value, coercing
// booleans and numeric strings as well
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return numericValue(v)
}

// identityOf returns the reference identity of a value; only reference
// types carry one
func identityOf(v interface{}) (uintptr, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Pointer(), true
	}
	return 0, false
}
