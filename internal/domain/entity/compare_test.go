package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSelection_ToggleAddAndRemove(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()

	var sel CompareSelection
	sel.Toggle(a)
	sel.Toggle(b)
	assert.Equal(t, []uuid.UUID{a, b}, sel.IDs())

	sel.Toggle(a)
	assert.Equal(t, []uuid.UUID{b}, sel.IDs())
}

func TestCompareSelection_FullSelectionIgnoresNewIDs(t *testing.T) {
	t.Parallel()

	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	var sel CompareSelection
	sel.Toggle(a)
	sel.Toggle(b)
	sel.Toggle(c)
	require.Equal(t, MaxCompareSelection, sel.Len())

	// Silent no-op: the set stays unchanged.
	sel.Toggle(d)
	assert.Equal(t, []uuid.UUID{a, b, c}, sel.IDs())

	// Removing an existing member still works.
	sel.Toggle(b)
	assert.Equal(t, []uuid.UUID{a, c}, sel.IDs())
}

func TestCompareSelection_CanCompare(t *testing.T) {
	t.Parallel()

	var sel CompareSelection
	assert.False(t, sel.CanCompare())

	sel.Toggle(uuid.New())
	assert.False(t, sel.CanCompare())

	sel.Toggle(uuid.New())
	assert.True(t, sel.CanCompare())

	sel.Clear()
	assert.False(t, sel.CanCompare())
	assert.Zero(t, sel.Len())
}

func TestNewCompareSelection_DropsDuplicatesAndTruncates(t *testing.T) {
	t.Parallel()

	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	sel := NewCompareSelection([]uuid.UUID{a, a, b, c, d})
	// Duplicate a toggles itself off, then back in order of appearance.
	assert.LessOrEqual(t, sel.Len(), MaxCompareSelection)
	assert.Equal(t, []uuid.UUID{b, c, d}, sel.IDs())
}

func TestBuildComparison_UnionRowsSortedWithMembership(t *testing.T) {
	t.Parallel()

	r1 := &Residence{Name: "Casa Sol", Services: []string{"enfermería", "podología"}, Facilities: []string{"jardín"}}
	r2 := &Residence{Name: "Villa Luna", Services: []string{"enfermería"}, Facilities: []string{"ascensor", "jardín"}}

	cmp := BuildComparison([]*Residence{r1, r2})

	require.Len(t, cmp.Services, 2)
	assert.Equal(t, "enfermería", cmp.Services[0].Attribute)
	assert.Equal(t, []bool{true, true}, cmp.Services[0].Present)
	assert.Equal(t, "podología", cmp.Services[1].Attribute)
	assert.Equal(t, []bool{true, false}, cmp.Services[1].Present)

	require.Len(t, cmp.Facilities, 2)
	assert.Equal(t, "ascensor", cmp.Facilities[0].Attribute)
	assert.Equal(t, []bool{false, true}, cmp.Facilities[0].Present)
	assert.Equal(t, "jardín", cmp.Facilities[1].Attribute)
	assert.Equal(t, []bool{true, true}, cmp.Facilities[1].Present)

	// Column order is the given residence order.
	assert.Equal(t, "Casa Sol", cmp.Residences[0].Name)
	assert.Equal(t, "Villa Luna", cmp.Residences[1].Name)
}
