// SPDX-License-Identifier: MIT
// File: graph.go
// Role: The aggregate root — Graph[K], its construction pipelines
//       (edge list, adjacency list), and wholesale replacement.
// Determinism:
//   - Construction is a fixed pipeline: validate columns → renumber →
//     symmetrize → store. Same input and options, same stored arrays.
// Concurrency:
//   - A Graph is effectively immutable after construction; the only
//     interior mutation is lazy view derivation (cache.go), guarded by
//     mu + a singleflight group. ReplaceEdgeList is the one wholesale
//     mutation and must not race in-flight queries.

package core

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/plexus/renumber"
	"github.com/katalvlaran/plexus/symmetrize"
)

// Graph is the canonical representation of one graph: a sealed renumbering
// map plus up to three mutually-consistent physical views (COO, forward
// CSR, transposed CSR), derived lazily from whichever one construction
// stored. K is the external vertex identifier type; comparable structs act
// as composite keys.
//
// A Graph must not be copied after first use (it owns a mutex and a
// singleflight group).
type Graph[K comparable] struct {
	props       Properties
	mode        EdgeSourceMode
	mergePolicy symmetrize.MergePolicy
	validate    bool

	// backendFormat is fixed by the constructor: edge-list graphs hand the
	// adapter FormatCOO, adjacency-list graphs FormatCSR.
	backendFormat Format

	rmap    *renumber.Map[K]
	backend Backend

	mu     sync.RWMutex
	flight singleflight.Group
	gen    uint64 // bumped by ReplaceEdgeList; keys the flight group

	// Views. nil = not yet derived. For undirected graphs the transposed
	// slot stays nil forever: the forward view is shared (symmetric set).
	coo *COO
	fwd *CSR
	tsp *CSR

	handle BackendGraph

	// Memoized properties; -1 / triUnknown = not yet computed.
	nodeCount int64
	edgeCount int64
	selfLoop  triState

	stats statCounters
}

// statCounters back the ViewStats snapshot.
type statCounters struct {
	cooHits, cooDerivations atomic.Int64
	fwdHits, fwdDerivations atomic.Int64
	tspHits, tspDerivations atomic.Int64
	backendBuilds           atomic.Int64
}

// FromEdgeList builds a Graph from two aligned external identifier columns
// plus optional attribute columns.
//
// Implementation stages:
//   - Stage 1: resolve options; align attribute column lengths (misaligned
//     columns fail ErrFormatValidation regardless of the validation flag —
//     they cannot be stored at all).
//   - Stage 2: renumber both columns into the dense internal space.
//   - Stage 3: symmetrize — the canonical symmetric set for undirected
//     graphs, verbatim passthrough for directed ones.
//   - Stage 4: store the COO view; when validation is on, check it against
//     the structural invariants.
//
// Returns:
//   - a fully-constructed *Graph[K]; construction never partially succeeds.
//
// Errors:
//   - ErrOptionViolation, ErrFormatValidation, ErrInvalidIdentifier,
//     ErrConflictingAttributes (edge IDs/types on an undirected graph),
//     renumber.ErrTooManyVertices.
//
// Complexity:
//   - Time O(E log E) undirected, O(E) directed; space O(V + E).
func FromEdgeList[K comparable](src, dst []K, opts ...GraphOption) (*Graph[K], error) {
	cfg, err := gatherGraphOptions(opts...)
	if err != nil {
		return nil, err
	}

	e := len(src)
	if len(dst) != e {
		return nil, fmt.Errorf("core: %s length %d, %s length %d: %w",
			ColSrc, e, ColDst, len(dst), ErrFormatValidation)
	}
	for _, col := range []struct {
		name string
		n    int
		set  bool
	}{
		{ColWeight, len(cfg.weights), cfg.weights != nil},
		{ColEdgeID, len(cfg.edgeIDs), cfg.edgeIDs != nil},
		{ColEdgeType, len(cfg.edgeTypes), cfg.edgeTypes != nil},
	} {
		if col.set && col.n != e {
			return nil, fmt.Errorf("core: %s length %d, edges %d: %w",
				col.name, col.n, e, ErrFormatValidation)
		}
	}

	// Stage 2: dense internal IDs.
	var ropts []renumber.Option
	if cfg.forceRenumber {
		ropts = append(ropts, renumber.WithForcedMapping())
	}
	if cfg.identityOnly {
		ropts = append(ropts, renumber.WithIdentityRequired())
	}
	rres, err := renumber.Renumber(src, dst, ropts...)
	if err != nil {
		return nil, err
	}

	// Stage 3: canonical storage form.
	sopts := []symmetrize.Option{
		symmetrize.WithSymmetric(!cfg.directed),
		symmetrize.WithMultiEdges(cfg.multiEdges),
		symmetrize.WithMergePolicy(cfg.mergePolicy),
	}
	if cfg.weights != nil {
		sopts = append(sopts, symmetrize.WithWeights(cfg.weights))
	}
	if cfg.edgeIDs != nil {
		sopts = append(sopts, symmetrize.WithEdgeIDs(cfg.edgeIDs))
	}
	if cfg.edgeTypes != nil {
		sopts = append(sopts, symmetrize.WithEdgeTypes(cfg.edgeTypes))
	}
	sres, err := symmetrize.Symmetrize(rres.Src, rres.Dst, sopts...)
	if err != nil {
		return nil, err
	}

	// Stage 4: seal.
	coo := &COO{
		Src: sres.Src,
		Dst: sres.Dst,
		Attrs: EdgeAttributes{
			Weights:   sres.Weights,
			EdgeIDs:   sres.EdgeIDs,
			EdgeTypes: sres.EdgeTypes,
		},
	}
	if cfg.validate {
		if err := coo.Validate(int64(rres.Map.Count())); err != nil {
			return nil, err
		}
	}
	g := newGraph[K](cfg, FormatCOO, rres.Map)
	g.coo = coo
	return g, nil
}

// FromAdjacency builds a Graph directly from a compressed adjacency list:
// offsets of length V+1 and grouped neighbor indices, with an optional
// aligned weight column. Identifiers are the dense range [0, V) by
// definition of the offsets table, so renumbering is always the identity.
//
// Behavior highlights:
//   - Rows are normalized to ascending column order (the package-wide CSR
//     invariant); the input slices are copied, never mutated.
//   - An undirected request asserts that the given adjacency is already
//     symmetric; validation does not verify closure (that check is
//     O(E log E) and the edge-list pipeline is the enforcing path).
//   - Attribute and renumbering-mode options have no meaning here and fail
//     with ErrOptionViolation.
//
// Errors:
//   - ErrOptionViolation, ErrFormatValidation.
//
// Complexity:
//   - Time O(V + E log E) (row normalization), space O(V + E).
func FromAdjacency(offsets []int64, indices []VertexID, weights []float64, opts ...GraphOption) (*Graph[int64], error) {
	cfg, err := gatherGraphOptions(opts...)
	if err != nil {
		return nil, err
	}
	if cfg.weights != nil || cfg.edgeIDs != nil || cfg.edgeTypes != nil {
		return nil, fmt.Errorf("core: attribute options apply to edge-list construction only: %w",
			ErrOptionViolation)
	}
	if cfg.forceRenumber || cfg.identityOnly {
		return nil, fmt.Errorf("core: renumbering-mode options apply to edge-list construction only: %w",
			ErrOptionViolation)
	}

	csr := &CSR{
		Offsets: append([]int64(nil), offsets...),
		Indices: append([]VertexID(nil), indices...),
	}
	if weights != nil {
		csr.Weights = append([]float64(nil), weights...)
		cfg.weights = csr.Weights // marks the graph weighted
	}
	if cfg.validate {
		// Shape first; ascending row order holds after normalization below.
		if err := csr.validateShape(); err != nil {
			return nil, err
		}
	}
	csr.sortRows()

	rmap, err := renumber.Identity(csr.NumVertices())
	if err != nil {
		return nil, err
	}
	g := newGraph[int64](cfg, FormatCSR, rmap)
	g.fwd = csr
	return g, nil
}

// newGraph assembles the shared Graph shell from resolved options.
func newGraph[K comparable](cfg graphOptions, format Format, rmap *renumber.Map[K]) *Graph[K] {
	mode := CanonicalSymmetrized
	if cfg.directed {
		mode = RawPassthrough
	}
	return &Graph[K]{
		props: Properties{
			Directed:        cfg.directed,
			Multigraph:      cfg.multiEdges,
			Weighted:        cfg.weights != nil,
			StoreTransposed: cfg.storeTransposed,
		},
		mode:          mode,
		mergePolicy:   cfg.mergePolicy,
		validate:      cfg.validate,
		backendFormat: format,
		rmap:          rmap,
		backend:       cfg.backend,
		nodeCount:     -1,
		edgeCount:     -1,
		selfLoop:      triUnknown,
	}
}

// ReplaceEdgeList rebuilds the Graph from a new edge list, running the full
// construction pipeline and swapping every view, memo, and backend handle
// in one step. On any error the Graph is left untouched.
//
// The previously wired backend survives unless the new options name one.
// Replacement is the single wholesale mutation of a Graph and must not
// race in-flight queries; derivations started before the swap resolve
// against the old generation and are discarded.
func (g *Graph[K]) ReplaceEdgeList(src, dst []K, opts ...GraphOption) error {
	ng, err := FromEdgeList(src, dst, opts...)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if ng.backend == nil {
		ng.backend = g.backend
	}
	g.props = ng.props
	g.mode = ng.mode
	g.mergePolicy = ng.mergePolicy
	g.validate = ng.validate
	g.backendFormat = ng.backendFormat
	g.rmap = ng.rmap
	g.backend = ng.backend
	g.coo, g.fwd, g.tsp = ng.coo, nil, nil
	g.handle = nil
	g.nodeCount, g.edgeCount, g.selfLoop = -1, -1, triUnknown
	g.gen++
	return nil
}

// Properties returns the structural flags fixed at construction.
func (g *Graph[K]) Properties() Properties {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.props
}

// Mode returns the edge-listing frame chosen at construction.
func (g *Graph[K]) Mode() EdgeSourceMode {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mode
}

// Renumbering exposes the sealed identifier map. Read-only by contract;
// the map has no mutating methods.
func (g *Graph[K]) Renumbering() *renumber.Map[K] { return g.rmap }
