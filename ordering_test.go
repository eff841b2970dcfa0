package equal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdering_Lookups(t *testing.T) {
	o := Ordering{"strict", "loose", "uniform", "none"}

	assert.True(t, o.Contains("loose"))
	assert.False(t, o.Contains("missing"))

	assert.Equal(t, 0, o.Position("strict"))
	assert.Equal(t, 3, o.Position("none"))
	assert.Equal(t, -1, o.Position("missing"))

	assert.True(t, o.StricterThan("strict", "loose"))
	assert.True(t, o.StricterThan("uniform", "none"))
	assert.False(t, o.StricterThan("loose", "strict"))
	assert.False(t, o.StricterThan("strict", "missing"))
}

func TestOrdering_JSON(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("custom", sameParity))
	o := r.Ordering()

	var names []string
	require.NoError(t, json.Unmarshal(o.JSON(false), &names))
	assert.Equal(t, []string{"strict", "loose", "uniform", "custom", "none"}, names)

	names = nil
	require.NoError(t, json.Unmarshal(o.JSON(true), &names))
	assert.Equal(t, []string{"strict", "loose", "uniform", "custom", "none"}, names)

	assert.Equal(t, string(o.JSON(false)), o.String())
}

func TestOrdering_Snapshot(t *testing.T) {
	r := NewRegistry()
	o := r.Ordering()
	require.NoError(t, r.Register("custom", sameParity))
	// A snapshot does not track later registrations
	assert.False(t, o.Contains("custom"))
	assert.True(t, r.Ordering().Contains("custom"))
}
