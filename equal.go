// Package equal implements structural ("uniform") equality over a closed set
// of value shapes, a strictness-ordered registry of named equality predicates,
// and container lookup primitives parameterized by any registered predicate.
package equal

import (
	"reflect"
)

// unbounded marks a comparison without a depth budget
const unbounded = -1

// Compare reports whether a and b are uniformly equal: equal by structure
// and value, ignoring reference identity. Cyclic values are compared safely;
// a pair already assumed equal on the active recursion path is not descended
// into again.
func Compare(a, b interface{}) bool {
	return newComparison(unbounded).compare(a, b)
}

// CompareDepth is Compare with a depth budget: content nested more than
// maxDepth container levels deep is treated as equal without inspection, so
// a finite budget makes comparison less strict, never more. maxDepth counts
// container-nesting levels entered, not recursive calls; a budget of 1
// compares one level of container content. The budget is shared across the
// whole call, including any nested predicate invocations.
func CompareDepth(a, b interface{}, maxDepth int) (bool, error) {
	if maxDepth < 1 {
		return false, errInvalidDepth(maxDepth)
	}
	return newComparison(maxDepth).compare(a, b), nil
}

// comparison carries the transient state of a single top-level comparison:
// the remaining depth budget and the identity pairs currently on the
// recursion path. It never outlives the call that created it.
type comparison struct {
	depth  int
	active map[[2]uintptr]bool
}

func newComparison(depth int) *comparison {
	return &comparison{
		depth:  depth,
		active: map[[2]uintptr]bool{},
	}
}

func (c *comparison) compare(a, b interface{}) bool {
	// Identity/primitive fast path
	if strictEqual(a, b) {
		return true
	}
	// Host types outside the variant model can define their own equality
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if eq, ok := b.(Equaler); ok {
		return eq.Equal(a)
	}
	// A primitive never equals a composite
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case Primitive:
		return primitiveEqual(a, b)
	case WeakReferenced:
		// Contents are not inspectable; vacuously equal
		return true
	}

	// Cycle guard: a pair already on the active path is assumed equal
	// rather than descended into again
	ida, aok := identityOf(a)
	idb, bok := identityOf(b)
	if aok && bok {
		pair := [2]uintptr{ida, idb}
		if c.active[pair] {
			return true
		}
		c.active[pair] = true
		defer delete(c.active, pair)
	}

	// An exhausted depth budget truncates optimistically
	if c.depth == 0 {
		return true
	}
	if c.depth > 0 {
		c.depth--
		defer func() { c.depth++ }()
	}

	switch ka {
	case Sequence:
		return c.compareSequence(a, b)
	case OrderedPair:
		return c.compareOrdered(a, b)
	case KeyedUnordered:
		return c.compareKeyed(a, b)
	}
	return false
}

// compareSequence compares element-by-element at matching positions
func (c *comparison) compareSequence(a, b interface{}) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Len() != bv.Len() {
		return false
	}
	for z := 0; z < av.Len(); z++ {
		if !c.compare(av.Index(z).Interface(), bv.Index(z).Interface()) {
			return false
		}
	}
	return true
}

// compareOrdered compares entries positionally in iteration order; order
// differences are significant even when the entries themselves match
func (c *comparison) compareOrdered(a, b interface{}) bool {
	switch at := a.(type) {
	case *Map:
		bt, ok := b.(*Map)
		if !ok || at.Len() != bt.Len() {
			return false
		}
		for z := range at.keys {
			if !c.compare(at.keys[z], bt.keys[z]) || !c.compare(at.values[z], bt.values[z]) {
				return false
			}
		}
		return true
	case *Set:
		bt, ok := b.(*Set)
		if !ok || at.Len() != bt.Len() {
			return false
		}
		for z := range at.elems {
			if !c.compare(at.elems[z], bt.elems[z]) {
				return false
			}
		}
		return true
	}
	return false
}

// compareKeyed compares member-name sets as sets and members recursively;
// member order is irrelevant. Equal sizes plus every name of a present in b
// guard against b carrying extra names.
func (c *comparison) compareKeyed(a, b interface{}) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Len() != bv.Len() {
		return false
	}
	iter := av.MapRange()
	for iter.Next() {
		member := keyedMember(bv, iter.Key().Interface())
		if !member.IsValid() {
			return false
		}
		if !c.compare(iter.Value().Interface(), member.Interface()) {
			return false
		}
	}
	return true
}

// keyedMember fetches a member of bv by a name drawn from another record.
// The name is looked up through its dynamic value, so records whose Go map
// key types differ resolve the same members in both comparison directions.
func keyedMember(bv reflect.Value, name interface{}) reflect.Value {
	keyType := bv.Type().Key()
	if name == nil {
		// Only an interface key type can hold a nil name
		if keyType.Kind() != reflect.Interface {
			return reflect.Value{}
		}
		return bv.MapIndex(reflect.Zero(keyType))
	}
	kv := reflect.ValueOf(name)
	if !kv.Type().AssignableTo(keyType) {
		return reflect.Value{}
	}
	return bv.MapIndex(kv)
}
