// SPDX-License-Identifier: MIT
// Concurrency hammer: many goroutines force the same lazy derivations at
// once; each view must derive exactly once and every caller must observe
// a complete, identical array.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/core"
)

// TestConcurrentDerivation_SingleFlight: 64 goroutines race first access
// to every view; derivation counters stay at one per view.
func TestConcurrentDerivation_SingleFlight(t *testing.T) {
	t.Parallel()

	// Big enough that a derivation takes a visible amount of work.
	const v = 2000
	src := make([]int64, 0, 3*v)
	dst := make([]int64, 0, 3*v)
	for i := int64(0); i < v; i++ {
		for _, d := range []int64{(i + 1) % v, (i + 7) % v, (i + 13) % v} {
			src = append(src, i)
			dst = append(dst, d)
		}
	}
	g, err := core.FromEdgeList(src, dst, core.WithDirected(true))
	require.NoError(t, err)

	const workers = 64
	var wg sync.WaitGroup
	fwds := make([]*core.CSR, workers)
	tsps := make([]*core.CSR, workers)
	errs := make([]error, workers)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			f, ferr := g.EnsureForwardCSR()
			if ferr != nil {
				errs[w] = ferr
				return
			}
			fwds[w] = f
			ts, terr := g.EnsureTransposedCSR()
			if terr != nil {
				errs[w] = terr
				return
			}
			tsps[w] = ts
			_, errs[w] = g.Degree(core.DirectionBoth)
		}()
	}
	wg.Wait()

	// Every caller saw the same fully-built arrays, error-free.
	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w], "worker %d", w)
		require.Same(t, fwds[0], fwds[w])
		require.Same(t, tsps[0], tsps[w])
	}

	stats := g.ViewStats()
	require.EqualValues(t, 1, stats.ForwardDerivations)
	require.EqualValues(t, 1, stats.TransposedDerivations)
	require.Zero(t, stats.COODerivations, "construction stored the COO; it is never derived")
}

// TestReplaceEdgeList_InFlightDerivation: a derivation racing a wholesale
// replacement must never publish into the replaced graph — afterwards the
// adjacency view always agrees with the coordinate view.
func TestReplaceEdgeList_InFlightDerivation(t *testing.T) {
	t.Parallel()

	// Big enough that the derivation often straddles the swap.
	const v = 20000
	src := make([]int64, v)
	dst := make([]int64, v)
	for i := int64(0); i < v; i++ {
		src[i] = i
		dst[i] = (i + 1) % v
	}

	for attempt := 0; attempt < 20; attempt++ {
		g, err := core.FromEdgeList(src, dst, core.WithDirected(true))
		require.NoError(t, err)

		var derr error
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, derr = g.EnsureForwardCSR()
		}()
		require.NoError(t, g.ReplaceEdgeList([]int64{0}, []int64{1},
			core.WithDirected(true)))
		<-done
		require.NoError(t, derr)

		coo, err := g.EnsureCOO()
		require.NoError(t, err)
		fwd, err := g.EnsureForwardCSR()
		require.NoError(t, err)
		require.EqualValues(t, 1, coo.Len(), "attempt %d", attempt)
		require.EqualValues(t, coo.Len(), fwd.Len(), "attempt %d", attempt)

		nv, err := g.NumVertices()
		require.NoError(t, err)
		require.EqualValues(t, 2, nv, "attempt %d", attempt)
	}
}

// TestConcurrentQueries_ReadOnly: mixed structural queries race freely on
// a warmed graph.
func TestConcurrentQueries_ReadOnly(t *testing.T) {
	t.Parallel()

	g := triangle(t)
	_, err := g.EnsureForwardCSR()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 32; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if _, err := g.Neighbors(0); err != nil {
					t.Error(err)
					return
				}
				if _, err := g.NumEdges(); err != nil {
					t.Error(err)
					return
				}
				if ok, err := g.HasEdge(1, 2); err != nil || !ok {
					t.Error("edge 1-2 expected", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
