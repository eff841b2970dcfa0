package equal

import (
	"encoding/json"

	"github.com/go-ext/logger"
	"github.com/pquerna/ffjson/ffjson"
)

// Ordering is a snapshot of a registry's strictness ordering with the
// strictest method first, terminated by "none"
type Ordering []string

// Contains reports whether a method with name exists within o
func (o Ordering) Contains(name string) bool {
	return indexOf(o, name) >= 0
}

// Position returns the strictness position of name within o, or -1 if name
// is absent
func (o Ordering) Position(name string) int {
	return indexOf(o, name)
}

// StricterThan reports whether method a precedes method b within o
func (o Ordering) StricterThan(a, b string) bool {
	pa, pb := indexOf(o, a), indexOf(o, b)
	return pa >= 0 && pb >= 0 && pa < pb
}

// JSON serializes o
func (o Ordering) JSON(pretty bool) []byte {
	var result []byte
	var err error
	// Serialize an ordering
	if pretty {
		result, err = json.MarshalIndent(o, "", "\t")
	} else {
		result, err = ffjson.Marshal(o)
	}
	if err != nil {
		logger.Error(err)
	}

	return result
}

// String implements Stringer interface for Ordering
func (o Ordering) String() string {
	return string(o.JSON(false))
}
