// SPDX-License-Identifier: MIT
// File: methods_convert.go
// Role: Direction conversions — a directed sibling sharing immutable data
//       by reference, and an undirected sibling built by an independent
//       symmetrization pass.
// Concurrency:
//   - Shared data is immutable (the sealed renumbering map, published COO
//     arrays); each sibling owns fresh cache cells, memos, and counters.

package core

import (
	"fmt"

	"github.com/katalvlaran/plexus/symmetrize"
)

// ToDirected returns a directed sibling of this graph. The renumbering map
// and the coordinate view are shared by reference — both are immutable —
// so for an undirected source every stored symmetric row becomes a real
// directed edge (each undirected edge yields both orientations, self-loops
// one row).
//
// The sibling starts with fresh cache cells and no backend handle; the
// wired backend carries over.
func (g *Graph[K]) ToDirected() (*Graph[K], error) {
	coo, err := g.EnsureCOO()
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	ng := &Graph[K]{
		props: Properties{
			Directed:        true,
			Multigraph:      g.props.Multigraph,
			Weighted:        g.props.Weighted,
			StoreTransposed: g.props.StoreTransposed,
		},
		mode:          RawPassthrough,
		mergePolicy:   g.mergePolicy,
		validate:      g.validate,
		backendFormat: FormatCOO,
		rmap:          g.rmap,
		backend:       g.backend,
		coo:           coo,
		nodeCount:     -1,
		edgeCount:     -1,
		selfLoop:      g.selfLoop, // loops are direction-independent
	}
	return ng, nil
}

// ToUndirected returns an undirected sibling. An already-undirected graph
// shares its canonical coordinate view by reference; a directed graph runs
// an independent symmetrization pass over its stored rows, merging
// duplicate weights under the graph's merge policy.
//
// Errors:
//   - ErrConflictingAttributes when the directed source carries edge IDs
//     or edge types (mirrored edges would hold undefined identities),
//     ErrEmptyGraph.
func (g *Graph[K]) ToUndirected() (*Graph[K], error) {
	coo, err := g.EnsureCOO()
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	props, policy := g.props, g.mergePolicy
	g.mu.RUnlock()

	stored := coo
	if props.Directed {
		if coo.Attrs.EdgeIDs != nil || coo.Attrs.EdgeTypes != nil {
			return nil, fmt.Errorf("core: mirrored edges would carry undefined identities: %w",
				ErrConflictingAttributes)
		}
		sopts := []symmetrize.Option{
			symmetrize.WithSymmetric(true),
			symmetrize.WithMultiEdges(props.Multigraph),
			symmetrize.WithMergePolicy(policy),
		}
		if coo.Attrs.Weighted() {
			sopts = append(sopts, symmetrize.WithWeights(coo.Attrs.Weights))
		}
		sres, err := symmetrize.Symmetrize(coo.Src, coo.Dst, sopts...)
		if err != nil {
			return nil, err
		}
		stored = &COO{Src: sres.Src, Dst: sres.Dst, Attrs: EdgeAttributes{Weights: sres.Weights}}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	ng := &Graph[K]{
		props: Properties{
			Directed:        false,
			Multigraph:      props.Multigraph,
			Weighted:        props.Weighted,
			StoreTransposed: props.StoreTransposed,
		},
		mode:          CanonicalSymmetrized,
		mergePolicy:   policy,
		validate:      g.validate,
		backendFormat: FormatCOO,
		rmap:          g.rmap,
		backend:       g.backend,
		coo:           stored,
		nodeCount:     -1,
		edgeCount:     -1,
		selfLoop:      g.selfLoop,
	}
	return ng, nil
}
