// SPDX-License-Identifier: MIT
// Boundary coverage for the delegated queries: the fake backend below pins
// what this layer does (ID translation, lazy handle build, reply checks)
// without depending on any real backend behavior.
package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/core"
)

// fakeBackend records what it is handed and replies from a script.
type fakeBackend struct {
	builds     int
	lastSpec   core.BuildSpec
	buildErr   error
	twoFirst   []core.VertexID
	twoSecond  []core.VertexID
	sample     []core.VertexID
	lastStarts []core.VertexID
}

func (f *fakeBackend) BuildGraph(_ context.Context, spec core.BuildSpec) (core.BackendGraph, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	f.builds++
	f.lastSpec = spec
	return &fakeHandle{b: f}, nil
}

type fakeHandle struct{ b *fakeBackend }

func (h *fakeHandle) TwoHop(_ context.Context, starts []core.VertexID, _ bool) ([]core.VertexID, []core.VertexID, error) {
	h.b.lastStarts = starts
	return h.b.twoFirst, h.b.twoSecond, nil
}

func (h *fakeHandle) RandomSample(_ context.Context, _ int64, _ int) ([]core.VertexID, error) {
	return h.b.sample, nil
}

// TestTwoHop_TranslationBoundary: starts translate outward, replies
// translate back, and the handle builds exactly once.
func TestTwoHop_TranslationBoundary(t *testing.T) {
	t.Parallel()

	fb := &fakeBackend{
		twoFirst:  vids(0, 0),
		twoSecond: vids(1, 2),
	}
	g, err := core.FromEdgeList([]string{"a", "b"}, []string{"b", "c"},
		core.WithDirected(true), core.WithBackend(fb))
	require.NoError(t, err)

	pairs, err := g.TwoHopNeighbors(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, []core.Pair[string]{{"a", "b"}, {"a", "c"}}, pairs)
	require.Equal(t, vids(0), fb.lastStarts, `"a" renumbered to 0`)

	// A second delegated query reuses the handle.
	_, err = g.TwoHopNeighbors(context.Background())
	require.NoError(t, err)
	require.Nil(t, fb.lastStarts, "no starts means nil, not an empty slice")
	require.Equal(t, 1, fb.builds)
	require.EqualValues(t, 1, g.ViewStats().BackendBuilds)

	// The spec handed over was the COO of an edge-list graph.
	require.Equal(t, core.FormatCOO, fb.lastSpec.Format)
	require.True(t, fb.lastSpec.Renumber)
	require.EqualValues(t, 3, fb.lastSpec.NumVertices)
}

// TestTwoHop_UnknownStartAndNoBackend.
func TestTwoHop_UnknownStartAndNoBackend(t *testing.T) {
	t.Parallel()

	g := triangle(t, core.WithDirected(true))
	_, err := g.TwoHopNeighbors(context.Background())
	require.ErrorIs(t, err, core.ErrNoBackend)

	fb := &fakeBackend{}
	g = triangle(t, core.WithDirected(true), core.WithBackend(fb))
	_, err = g.TwoHopNeighbors(context.Background(), 99)
	require.ErrorIs(t, err, core.ErrUnknownIdentifier)
}

// TestTwoHop_MalformedReply: misaligned adapter columns are rejected.
func TestTwoHop_MalformedReply(t *testing.T) {
	t.Parallel()

	fb := &fakeBackend{twoFirst: vids(0, 1), twoSecond: vids(2)}
	g := triangle(t, core.WithDirected(true), core.WithBackend(fb))

	_, err := g.TwoHopNeighbors(context.Background())
	require.ErrorIs(t, err, core.ErrFormatValidation)
}

// TestRandomVertexSample_Boundary: sample IDs translate back; option
// misuse is caught before any backend call.
func TestRandomVertexSample_Boundary(t *testing.T) {
	t.Parallel()

	fb := &fakeBackend{sample: vids(2, 0)}
	g, err := core.FromEdgeList([]string{"a", "b"}, []string{"b", "c"},
		core.WithDirected(true), core.WithBackend(fb))
	require.NoError(t, err)

	got, err := g.RandomVertexSample(context.Background(),
		core.WithSampleCount(2), core.WithSampleSeed(7))
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a"}, got)

	_, err = g.RandomVertexSample(context.Background(), core.WithSampleCount(-1))
	require.ErrorIs(t, err, core.ErrOptionViolation)

	_, err = g.RandomVertexSample(context.Background(), nil)
	require.ErrorIs(t, err, core.ErrOptionViolation)
}

// TestBackendBuildError: a failing build surfaces unchanged and nothing
// is cached.
func TestBackendBuildError(t *testing.T) {
	t.Parallel()

	boom := errors.New("backend down")
	fb := &fakeBackend{buildErr: boom}
	g := triangle(t, core.WithDirected(true), core.WithBackend(fb))

	_, err := g.TwoHopNeighbors(context.Background())
	require.ErrorIs(t, err, boom)
	require.EqualValues(t, 0, g.ViewStats().BackendBuilds)

	// Recovery: clearing the fault lets the next query build.
	fb.buildErr = nil
	_, err = g.TwoHopNeighbors(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, fb.builds)
}

// blockingBackend parks BuildGraph between started and release, so a
// replacement can land while a build is in flight.
type blockingBackend struct {
	started chan struct{}
	release chan struct{}
	inner   fakeBackend
}

func (b *blockingBackend) BuildGraph(ctx context.Context, spec core.BuildSpec) (core.BackendGraph, error) {
	b.started <- struct{}{}
	<-b.release
	return b.inner.BuildGraph(ctx, spec)
}

// TestReplaceEdgeList_DiscardsInFlightHandle: a handle whose build was
// overtaken by ReplaceEdgeList is not cached; the next delegated query
// builds afresh against the replaced graph.
func TestReplaceEdgeList_DiscardsInFlightHandle(t *testing.T) {
	t.Parallel()

	bb := &blockingBackend{
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	g := triangle(t, core.WithDirected(true), core.WithBackend(bb))

	done := make(chan error, 1)
	go func() {
		_, err := g.TwoHopNeighbors(context.Background())
		done <- err
	}()
	<-bb.started // the first build is in flight

	require.NoError(t, g.ReplaceEdgeList([]int64{0}, []int64{1},
		core.WithDirected(true)))
	close(bb.release) // let the overtaken build finish
	require.NoError(t, <-done)

	// The stale handle was discarded: this query builds again, and the
	// spec it hands over describes the replaced graph.
	_, err := g.TwoHopNeighbors(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, bb.inner.builds)
	require.EqualValues(t, 2, bb.inner.lastSpec.NumVertices)
	require.EqualValues(t, 1, g.ViewStats().BackendBuilds)
}

// TestBuildSpec_AdjacencyFormat: adjacency-built graphs hand FormatCSR,
// and StoreTransposed selects the transposed orientation.
func TestBuildSpec_AdjacencyFormat(t *testing.T) {
	t.Parallel()

	fb := &fakeBackend{}
	g, err := core.FromAdjacency([]int64{0, 1, 2, 2}, vids(1, 2), nil,
		core.WithDirected(true),
		core.WithStoreTransposed(),
		core.WithBackend(fb))
	require.NoError(t, err)

	_, err = g.TwoHopNeighbors(context.Background())
	require.NoError(t, err)
	require.Equal(t, core.FormatCSR, fb.lastSpec.Format)
	require.True(t, fb.lastSpec.StoreTransposed)
	require.False(t, fb.lastSpec.Renumber, "adjacency construction is identity-renumbered")
	require.NotNil(t, fb.lastSpec.CSR)
	// Transposed rows group by destination: in-neighbors of 1 are {0}, of 2 are {1}.
	require.Equal(t, vids(0, 1), fb.lastSpec.CSR.Indices)
}
