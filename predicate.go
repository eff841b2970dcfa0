package equal

import (
	"github.com/go-ext/logger"
)

// Equaler is the interface that wraps Equal function allowing a host type to
// define its own uniform equality for values outside the variant model
type Equaler interface {
	Equal(interface{}) bool
}

// Predicate is an equality check; its identity within a Registry is the name
// it was registered under. A predicate must be pure: same inputs, same
// verdict, no side effects.
type Predicate func(a, b interface{}) bool

// Truthy adapts a loosely typed predicate by coercing its result to a
// boolean by truthiness. A non-boolean result is coerced and logged, never
// rejected: nil, false, zero numbers and empty strings are falsey,
// everything else is truthy.
func Truthy(fn func(a, b interface{}) interface{}) Predicate {
	return func(a, b interface{}) bool {
		return truthy(fn(a, b))
	}
}

func truthy(result interface{}) bool {
	if verdict, ok := result.(bool); ok {
		return verdict
	}
	logger.Warning("coercing a non-boolean predicate result (%T) by truthiness", result)
	switch v := result.(type) {
	case nil:
		return false
	case string:
		return v != ""
	}
	if n, ok := numericValue(result); ok {
		return n != 0
	}
	return true
}
