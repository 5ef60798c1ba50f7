package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonSet_Add(t *testing.T) {
	t.Parallel()

	var set ComparisonSet

	set, outcome := set.Add(1)
	assert.Equal(t, Added, outcome)

	set, outcome = set.Add(2)
	assert.Equal(t, Added, outcome)

	set, outcome = set.Add(1)
	assert.Equal(t, AlreadyPresent, outcome)
	require.Len(t, set, 2)

	set, outcome = set.Add(3)
	assert.Equal(t, Added, outcome)

	full, outcome := set.Add(4)
	assert.Equal(t, CapacityExceeded, outcome)
	assert.Equal(t, ComparisonSet{1, 2, 3}, full, "a rejected add leaves the set unchanged")
}

func TestComparisonSet_AddDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	set := ComparisonSet{1}
	grown, _ := set.Add(2)
	assert.Equal(t, ComparisonSet{1}, set)
	assert.Equal(t, ComparisonSet{1, 2}, grown)
}

func TestComparisonSet_Remove(t *testing.T) {
	t.Parallel()

	set := ComparisonSet{1, 2, 3}
	set = set.Remove(2)
	assert.Equal(t, ComparisonSet{1, 3}, set)

	// removing an absent id is a no-op
	assert.Equal(t, set, set.Remove(99))
	assert.Equal(t, set, set.Remove(2))
}

func TestWorkflow_CompareNeedsTwoPicks(t *testing.T) {
	t.Parallel()

	var w Workflow
	assert.Equal(t, Selecting, w.State())
	assert.False(t, w.CanCompare())
	assert.False(t, w.BeginCompare())
	assert.Equal(t, Selecting, w.State())

	w.Selection, _ = w.Selection.Add(1)
	assert.False(t, w.CanCompare())

	w.Selection, _ = w.Selection.Add(2)
	assert.True(t, w.CanCompare())
	assert.True(t, w.BeginCompare())
	assert.Equal(t, Comparing, w.State())
}

func TestWorkflow_BackKeepsSelection(t *testing.T) {
	t.Parallel()

	w := Workflow{Selection: ComparisonSet{1, 2}}
	require.True(t, w.BeginCompare())

	w.Back()
	assert.Equal(t, Selecting, w.State())
	assert.Equal(t, ComparisonSet{1, 2}, w.Selection)
}

func TestWorkflow_ClearResetsEverything(t *testing.T) {
	t.Parallel()

	w := Workflow{Selection: ComparisonSet{1, 2, 3}}
	require.True(t, w.BeginCompare())

	w.Clear()
	assert.Equal(t, Selecting, w.State())
	assert.Empty(t, w.Selection)
}
