package equal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errNotReference = errors.New("given value is not a reference type")
	errInvalidDepth = func(depth int) error {
		return fmt.Errorf("invalid comparison depth (%d): must be 1 or greater", depth)
	}
	errUnknownMethod = func(method interface{}) error {
		return fmt.Errorf("unknown equality method (%v)", method)
	}
	errProtectedPredicate = func(name string) error {
		return fmt.Errorf("cannot replace or remove a built-in predicate (%s)", name)
	}
	errUnsupportedTarget = func(target interface{}) error {
		return fmt.Errorf("unsupported query target (%T)", target)
	}
	errNoValues = func(target interface{}) error {
		return fmt.Errorf("unsupported query target (%T): element-only container has no values", target)
	}
)

// IsInvalidDepthErr reports whether an err is an errInvalidDepth error
func IsInvalidDepthErr(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "invalid comparison depth")
}

// IsUnknownMethodErr reports whether an err is an errUnknownMethod error
func IsUnknownMethodErr(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "unknown equality method")
}

// IsProtectedPredicateErr reports whether an err is an errProtectedPredicate error
func IsProtectedPredicateErr(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "cannot replace or remove")
}

// IsUnsupportedTargetErr reports whether an err is an errUnsupportedTarget error
func IsUnsupportedTargetErr(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "unsupported query target")
}
