package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicer-profiles/internal/types"
)

func TestCompareGenerationAddedAndRemovedRecords(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypePrint, "kept", nil, "layer_height", "0.2"),
		record(types.RecordTypePrint, "retired", nil, "layer_height", "0.3"),
	)
	newStore := storeWith(t,
		record(types.RecordTypePrint, "kept", nil, "layer_height", "0.2"),
		record(types.RecordTypePrint, "fresh", nil, "layer_height", "0.1"),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypePrint)

	assert.Equal(t, []string{"fresh"}, diff.AddedRecords)
	assert.Equal(t, []string{"retired"}, diff.RemovedRecords)
	assert.Empty(t, diff.Changed)
}

func TestCompareGenerationDirectModification(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "layer_height", "0.2"),
		record(types.RecordTypePrint, "child", []string{"base"}, "layer_height", "0.25"),
	)
	newStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "layer_height", "0.2"),
		record(types.RecordTypePrint, "child", []string{"base"}, "layer_height", "0.3"),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypePrint)

	require.Contains(t, diff.Changed, "child")
	assert.NotContains(t, diff.Changed, "base")

	changes := diff.Changed["child"]
	require.Contains(t, changes.Modified, "layer_height")
	modified := changes.Modified["layer_height"]
	assert.Equal(t, "0.25", modified.Old)
	assert.Equal(t, "0.3", modified.New)
	assert.True(t, modified.Direct)
	assert.True(t, changes.HasDirectChanges())
}

// An ancestor edit shows up on the ancestor as a direct change and on
// every descendant as an inherited one, with the descendants listed in
// the ancestor's impact set.
func TestCompareGenerationInheritedChangeAttribution(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypePrint, "parent", nil, "x", "1"),
		record(types.RecordTypePrint, "child", []string{"parent"}, "own", "v"),
		record(types.RecordTypePrint, "grandchild", []string{"child"}),
	)
	newStore := storeWith(t,
		record(types.RecordTypePrint, "parent", nil, "x", "2"),
		record(types.RecordTypePrint, "child", []string{"parent"}, "own", "v"),
		record(types.RecordTypePrint, "grandchild", []string{"child"}),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypePrint)

	require.Contains(t, diff.Changed, "parent")
	parent := diff.Changed["parent"]
	assert.True(t, parent.Modified["x"].Direct)
	assert.Equal(t, []string{"child", "grandchild"}, parent.Affects)

	require.Contains(t, diff.Changed, "child")
	child := diff.Changed["child"]
	require.Contains(t, child.Modified, "x")
	assert.False(t, child.Modified["x"].Direct)
	assert.Equal(t, "print:parent", child.Modified["x"].NewSource)
	assert.False(t, child.HasDirectChanges())
	assert.Empty(t, child.Affects)
}

// Gaining a direct definition is a direct addition even when the record
// already inherited the identical value.
func TestCompareGenerationDirectAdditionShadowingInheritedValue(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "x", "1"),
		record(types.RecordTypePrint, "child", []string{"base"}),
	)
	newStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "x", "1"),
		record(types.RecordTypePrint, "child", []string{"base"}, "x", "1"),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypePrint)

	require.Contains(t, diff.Changed, "child")
	changes := diff.Changed["child"]
	assert.Equal(t, types.KeyChange{Value: "1", Source: "print:child", Direct: true},
		changes.Added["x"])
	assert.True(t, changes.HasDirectChanges())
	assert.NotContains(t, diff.Changed, "base")
}

// Dropping a direct definition is a direct removal even when the same
// value keeps flowing in from an ancestor.
func TestCompareGenerationDirectRemovalStillInherited(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "x", "1"),
		record(types.RecordTypePrint, "child", []string{"base"}, "x", "1"),
	)
	newStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "x", "1"),
		record(types.RecordTypePrint, "child", []string{"base"}),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypePrint)

	require.Contains(t, diff.Changed, "child")
	changes := diff.Changed["child"]
	assert.Equal(t, types.KeyChange{Value: "1", Source: "print:child", Direct: true},
		changes.Removed["x"])
	assert.True(t, changes.HasDirectChanges())
}

func TestCompareGenerationDirectRemovalWithChangedFallback(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "x", "2"),
		record(types.RecordTypePrint, "child", []string{"base"}, "x", "1"),
	)
	newStore := storeWith(t,
		record(types.RecordTypePrint, "base", nil, "x", "2"),
		record(types.RecordTypePrint, "child", []string{"base"}),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypePrint)

	changes := diff.Changed["child"]
	require.NotNil(t, changes)
	assert.Equal(t, types.KeyChange{Value: "1", Source: "print:child", Direct: true},
		changes.Removed["x"])
	assert.NotContains(t, changes.Modified, "x")
}

func TestCompareGenerationAddedAndRemovedKeys(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypeFilament, "PLA", nil, "temperature", "210", "old_only", "x"),
	)
	newStore := storeWith(t,
		record(types.RecordTypeFilament, "PLA", nil, "temperature", "210", "new_only", "y"),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypeFilament)

	changes := diff.Changed["PLA"]
	require.NotNil(t, changes)
	assert.Equal(t, types.KeyChange{Value: "y", Source: "filament:PLA", Direct: true},
		changes.Added["new_only"])
	assert.Equal(t, types.KeyChange{Value: "x", Source: "filament:PLA", Direct: true},
		changes.Removed["old_only"])
	assert.NotContains(t, changes.Modified, "temperature")
}

func TestCompareGenerationWildcardChildrenInImpactSet(t *testing.T) {
	oldStore := storeWith(t,
		record(types.RecordTypeFilament, "*common*", nil, "bed_temperature", "60"),
		record(types.RecordTypeFilament, "Generic PLA", []string{"*common*"}),
	)
	newStore := storeWith(t,
		record(types.RecordTypeFilament, "*common*", nil, "bed_temperature", "65"),
		record(types.RecordTypeFilament, "Generic PLA", []string{"*common*"}),
	)

	diff := NewComparer().CompareGeneration(oldStore, newStore, types.RecordTypeFilament)

	require.Contains(t, diff.Changed, "*common*")
	assert.Equal(t, []string{"Generic PLA"}, diff.Changed["*common*"].Affects)
	assert.Equal(t, []string{"Generic PLA"}, diff.Children["*common*"])
}

func TestCompareGenerationUnchangedRecordNotReported(t *testing.T) {
	store := storeWith(t,
		record(types.RecordTypePrint, "same", nil, "k", "v"),
	)
	other := storeWith(t,
		record(types.RecordTypePrint, "same", nil, "k", "v"),
	)

	diff := NewComparer().CompareGeneration(store, other, types.RecordTypePrint)

	assert.Empty(t, diff.Changed)
	assert.Empty(t, diff.AddedRecords)
	assert.Empty(t, diff.RemovedRecords)
}
