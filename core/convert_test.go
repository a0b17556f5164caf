// SPDX-License-Identifier: MIT
// Direction-conversion coverage: reference sharing one way, independent
// symmetrization the other, and the attribute rejection rule.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/core"
)

// TestToDirected_SharesCanonicalRows: every stored symmetric row becomes a
// real directed edge; the renumbering map is the same object.
func TestToDirected_SharesCanonicalRows(t *testing.T) {
	t.Parallel()

	ug := triangle(t)
	dg, err := ug.ToDirected()
	require.NoError(t, err)

	require.True(t, dg.Properties().Directed)
	require.Same(t, ug.Renumbering(), dg.Renumbering())

	e, err := dg.NumEdges()
	require.NoError(t, err)
	require.EqualValues(t, 6, e, "both orientations count as directed edges")

	n, err := dg.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, n)
}

// TestToUndirected_Resymmetrizes: a directed graph runs an independent
// symmetrization pass, merging opposite weights under the graph's policy.
func TestToUndirected_Resymmetrizes(t *testing.T) {
	t.Parallel()

	dg, err := core.FromEdgeList([]int64{0, 1}, []int64{1, 0},
		core.WithDirected(true),
		core.WithWeights([]float64{2, 3}))
	require.NoError(t, err)

	ug, err := dg.ToUndirected()
	require.NoError(t, err)
	require.False(t, ug.Properties().Directed)

	e, err := ug.NumEdges()
	require.NoError(t, err)
	require.EqualValues(t, 1, e)

	_, _, attrs, err := ug.EdgeList()
	require.NoError(t, err)
	require.Equal(t, []float64{5}, attrs.Weights)
}

// TestToUndirected_RejectsIdentities: edge IDs/types cannot survive the
// mirroring pass.
func TestToUndirected_RejectsIdentities(t *testing.T) {
	t.Parallel()

	dg, err := core.FromEdgeList([]int64{0}, []int64{1},
		core.WithDirected(true),
		core.WithEdgeIDs([]int64{7}))
	require.NoError(t, err)

	_, err = dg.ToUndirected()
	require.ErrorIs(t, err, core.ErrConflictingAttributes)
}

// TestToUndirected_AlreadyUndirected shares the canonical rows verbatim.
func TestToUndirected_AlreadyUndirected(t *testing.T) {
	t.Parallel()

	ug := triangle(t)
	ug2, err := ug.ToUndirected()
	require.NoError(t, err)

	a, err := ug.NumStoredEdges()
	require.NoError(t, err)
	b, err := ug2.NumStoredEdges()
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Same(t, ug.Renumbering(), ug2.Renumbering())
}

// TestRoundTrip_DirectedUndirectedDirected keeps the edge multiset stable
// once the set is symmetric.
func TestRoundTrip_DirectedUndirectedDirected(t *testing.T) {
	t.Parallel()

	ug := triangle(t)
	dg, err := ug.ToDirected()
	require.NoError(t, err)
	ug2, err := dg.ToUndirected()
	require.NoError(t, err)

	e1, err := ug.NumEdges()
	require.NoError(t, err)
	e2, err := ug2.NumEdges()
	require.NoError(t, err)
	require.Equal(t, e1, e2)
}
