package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSentinelLookup verifies sentinel tags and the not-found contract.
func TestSentinelLookup(t *testing.T) {
	g, err := New[int](3, 4)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		h, ok := g.rowSentinel(r)
		require.True(t, ok)
		require.Equal(t, r, g.nodes[h].row)
		require.Equal(t, -1, g.nodes[h].col)
	}
	for c := 0; c < 4; c++ {
		h, ok := g.colSentinel(c)
		require.True(t, ok)
		require.Equal(t, -1, g.nodes[h].row)
		require.Equal(t, c, g.nodes[h].col)
	}

	_, ok := g.rowSentinel(3)
	require.False(t, ok)
	_, ok = g.rowSentinel(-1)
	require.False(t, ok)
	_, ok = g.colSentinel(4)
	require.False(t, ok)
	require.Equal(t, nilHandle, g.findCell(0, 0))
	require.Equal(t, nilHandle, g.findCell(0, 9))
}

// TestSlotReuse checks that deleted cells are recycled by later inserts.
func TestSlotReuse(t *testing.T) {
	g, err := New[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Insert(1, 0, 0))
	require.NoError(t, g.Insert(2, 1, 1))
	size := len(g.nodes)

	require.NoError(t, g.Delete(0, 0))
	require.Len(t, g.free, 1)
	require.NoError(t, g.Insert(3, 0, 1))
	require.Empty(t, g.free)
	require.Equal(t, size, len(g.nodes), "insert after delete must reuse the freed slot")
	require.NoError(t, g.Check())
}

// TestCheckDetectsBrokenColumnLink unlinks a cell from its column chain only.
func TestCheckDetectsBrokenColumnLink(t *testing.T) {
	g, err := New[int](3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Insert(5, 1, 1))

	cs, _ := g.colSentinel(1)
	g.nodes[cs].down = nilHandle

	require.ErrorIs(t, g.Check(), ErrCorrupted)
	require.PanicsWithError(t, "Grid.Delete(1,1): sparse: lattice invariant violated", func() {
		_ = g.Delete(1, 1)
	})
}

// TestCheckDetectsOrderViolation swaps column tags inside a row chain.
func TestCheckDetectsOrderViolation(t *testing.T) {
	g, err := New[int](2, 4)
	require.NoError(t, err)
	require.NoError(t, g.Insert(1, 0, 1))
	require.NoError(t, g.Insert(2, 0, 3))

	h := g.findCell(0, 3)
	g.nodes[h].col = 0

	require.ErrorIs(t, g.Check(), ErrCorrupted)
}

// TestCheckDetectsCounterDrift ensures the stored-cell counter is verified.
func TestCheckDetectsCounterDrift(t *testing.T) {
	g, err := New[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Insert(1, 0, 0))
	g.count = 3

	require.ErrorIs(t, g.Check(), ErrCorrupted)
}

// TestIsNil covers the nilable-kind detection used by Insert.
func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var f func()
	require.True(t, isNil[any](nil))
	require.True(t, isNil(p))
	require.True(t, isNil(m))
	require.True(t, isNil(f))
	require.False(t, isNil(0))
	require.False(t, isNil(""))
	require.False(t, isNil(struct{}{}))
}
