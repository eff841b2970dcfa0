package equal

import (
	"strconv"
)

// Kind is the classification of a value within the comparison model
type Kind int

// Value kinds
const (
	Primitive Kind = iota
	Sequence
	KeyedUnordered
	OrderedPair
	WeakReferenced
)

// String implements Stringer interface for Kind
func (k Kind) String() string {
	switch k {
	case Primitive:
		return "Primitive"
	case Sequence:
		return "Sequence"
	case KeyedUnordered:
		return "KeyedUnordered"
	case OrderedPair:
		return "OrderedPair"
	case WeakReferenced:
		return "WeakReferenced"
	default:
		return strconv.Itoa(int(k))
	}
}
