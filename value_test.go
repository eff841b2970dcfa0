package equal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  Kind
	}{
		{"nil", nil, Primitive},
		{"int", 1, Primitive},
		{"float", 1.5, Primitive},
		{"string", "a", Primitive},
		{"bool", true, Primitive},
		{"symbol", Symbol("id"), Primitive},
		{"slice", []interface{}{1}, Sequence},
		{"typed slice", []int{1}, Sequence},
		{"array", [2]int{1, 2}, Sequence},
		{"record", map[string]interface{}{"a": 1}, KeyedUnordered},
		{"typed map", map[string]int{"a": 1}, KeyedUnordered},
		{"ordered map", NewMap(), OrderedPair},
		{"ordered set", NewSet(), OrderedPair},
		{"weak set", NewWeakSet(), WeakReferenced},
		{"weak map", NewWeakMap(), WeakReferenced},
		{"out of model", struct{ n int }{1}, Primitive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, kindOf(tc.value))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Primitive", Primitive.String())
	assert.Equal(t, "Sequence", Sequence.String())
	assert.Equal(t, "KeyedUnordered", KeyedUnordered.String())
	assert.Equal(t, "OrderedPair", OrderedPair.String())
	assert.Equal(t, "WeakReferenced", WeakReferenced.String())
	assert.Equal(t, "99", Kind(99).String())
}

func TestStrictEqual(t *testing.T) {
	assert.True(t, strictEqual(1, 1))
	assert.True(t, strictEqual("a", "a"))
	assert.True(t, strictEqual(nil, nil))
	// Different types are never strictly equal
	assert.False(t, strictEqual(1, int64(1)))
	assert.False(t, strictEqual(1, "1"))
	assert.False(t, strictEqual(nil, 0))

	// Reference types compare by the reference itself
	seq := []interface{}{1}
	assert.True(t, strictEqual(seq, seq))
	assert.False(t, strictEqual(seq, []interface{}{1}))

	record := map[string]interface{}{"a": 1}
	assert.True(t, strictEqual(record, record))
	assert.False(t, strictEqual(record, map[string]interface{}{"a": 1}))

	m := NewMap()
	assert.True(t, strictEqual(m, m))
	assert.False(t, strictEqual(m, NewMap()))
}

func TestLooseEqual(t *testing.T) {
	// Numeric coercion across numbers, numeric strings and booleans
	assert.True(t, looseEqual(1, "1"))
	assert.True(t, looseEqual("2.5", 2.5))
	assert.True(t, looseEqual(true, 1))
	assert.True(t, looseEqual(false, "0"))
	assert.True(t, looseEqual(1, int64(1)))

	assert.False(t, looseEqual(1, "one"))
	assert.False(t, looseEqual(1, 2))
	assert.False(t, looseEqual(nil, 0))
	assert.False(t, looseEqual([]interface{}{1}, []interface{}{1}))
}

func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "symbol(id)", Symbol("id").String())
}

func TestIdentityOf(t *testing.T) {
	_, ok := identityOf(1)
	assert.False(t, ok, "primitives carry no identity")
	_, ok = identityOf(nil)
	assert.False(t, ok)

	seq := []interface{}{1}
	a, ok := identityOf(seq)
	assert.True(t, ok)
	b, _ := identityOf(seq)
	assert.Equal(t, a, b, "stable for the same reference")

	other, _ := identityOf([]interface{}{2})
	assert.NotEqual(t, a, other, "distinct references differ")
}
