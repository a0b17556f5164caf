// SPDX-License-Identifier: MIT
// File: methods_queries.go
// Role: Structural queries — counts, degrees, neighbors, membership, edge
//       listings. External identifiers at the boundary, dense internal IDs
//       inside; translation happens here and only here.
// Determinism:
//   - Neighbor and vertex listings follow ascending internal ID order;
//     degree maps are Go maps (iteration order is the caller's problem,
//     the contents are deterministic).
// Concurrency:
//   - Read paths only; memo writes go through mu.

package core

import "fmt"

// NumVertices returns V. Memoized; on first call it is read off whichever
// view exists — the offsets table of an adjacency view, or the sealed
// renumbering map for a coordinate view (the map defines the dense space
// the coordinate columns were translated into).
//
// Errors:
//   - ErrEmptyGraph when no view exists (zero-value Graph).
func (g *Graph[K]) NumVertices() (int64, error) {
	g.mu.RLock()
	if g.nodeCount >= 0 {
		defer g.mu.RUnlock()
		return g.nodeCount, nil
	}
	coo, fwd, tsp := g.coo, g.fwd, g.tsp
	gen := g.gen
	g.mu.RUnlock()

	var v int64
	switch {
	case fwd != nil:
		v = int64(fwd.NumVertices())
	case tsp != nil:
		v = int64(tsp.NumVertices())
	case coo != nil:
		v = int64(g.rmap.Count())
	default:
		return 0, ErrEmptyGraph
	}

	g.mu.Lock()
	if g.gen == gen { // discard the memo if a replacement intervened
		g.nodeCount = v
	}
	g.mu.Unlock()
	return v, nil
}

// NumEdges returns the logical edge count: stored rows for a directed
// graph, the undirected count for an undirected one (canonical rows with
// src >= dst, so each mirrored pair counts once and each self-loop once).
// Memoized.
//
// Errors:
//   - ErrEmptyGraph when no view exists.
func (g *Graph[K]) NumEdges() (int64, error) {
	g.mu.RLock()
	if g.edgeCount >= 0 {
		defer g.mu.RUnlock()
		return g.edgeCount, nil
	}
	directed := g.props.Directed
	gen := g.gen
	g.mu.RUnlock()

	var e int64
	if directed {
		stored, err := g.NumStoredEdges()
		if err != nil {
			return 0, err
		}
		e = stored
	} else {
		coo, err := g.EnsureCOO()
		if err != nil {
			return 0, err
		}
		for i := range coo.Src {
			if coo.Src[i] >= coo.Dst[i] {
				e++
			}
		}
	}

	g.mu.Lock()
	if g.gen == gen { // discard the memo if a replacement intervened
		g.edgeCount = e
	}
	g.mu.Unlock()
	return e, nil
}

// NumStoredEdges returns the raw stored row count — for an undirected
// graph that is the already-symmetrized count (the count-both-directions
// form of NumEdges).
//
// Errors:
//   - ErrEmptyGraph when no view exists.
func (g *Graph[K]) NumStoredEdges() (int64, error) {
	g.mu.RLock()
	coo, fwd, tsp := g.coo, g.fwd, g.tsp
	g.mu.RUnlock()
	switch {
	case coo != nil:
		return int64(coo.Len()), nil
	case fwd != nil:
		return int64(fwd.Len()), nil
	case tsp != nil:
		return int64(tsp.Len()), nil
	default:
		return 0, ErrEmptyGraph
	}
}

// Degree returns per-vertex degrees in the requested direction.
//
// Behavior highlights:
//   - With no subset, every structurally present vertex is reported —
//     vertices with no stored edge in either direction (possible only for
//     adjacency-list construction) are excluded.
//   - With a subset, each member is translated first (absent identifiers
//     fail ErrUnknownIdentifier — absence is not degree zero) and
//     present-but-isolated members report 0. The asymmetry against the
//     full-set case is deliberate: an explicit ask about a known vertex
//     deserves an answer, an enumeration reports only structure.
//   - DirectionBoth sums both orientations, so for undirected graphs it is
//     twice the row length (each undirected edge touches the vertex in
//     both stored orientations; a self-loop row counts once per view).
//
// Errors:
//   - ErrUnknownDirection, ErrUnknownIdentifier, ErrEmptyGraph.
//
// Complexity: O(len(subset)) or O(V), after the needed views exist.
func (g *Graph[K]) Degree(dir Direction, subset ...K) (map[K]int64, error) {
	if dir > DirectionBoth {
		return nil, fmt.Errorf("core: direction %s: %w", dir, ErrUnknownDirection)
	}

	// Both orientations are needed for DirectionBoth and for the
	// present-vertex filter of the full-set case.
	var fwd, tsp *CSR
	var err error
	if dir == DirectionOut || dir == DirectionBoth || len(subset) == 0 {
		if fwd, err = g.EnsureForwardCSR(); err != nil {
			return nil, err
		}
	}
	if dir == DirectionIn || dir == DirectionBoth || len(subset) == 0 {
		if tsp, err = g.EnsureTransposedCSR(); err != nil {
			return nil, err
		}
	}

	rowLen := func(c *CSR, id VertexID) int64 {
		return c.Offsets[id+1] - c.Offsets[id]
	}
	degreeOf := func(id VertexID) int64 {
		switch dir {
		case DirectionOut:
			return rowLen(fwd, id)
		case DirectionIn:
			return rowLen(tsp, id)
		default:
			return rowLen(fwd, id) + rowLen(tsp, id)
		}
	}

	out := make(map[K]int64)
	if len(subset) > 0 {
		ids, err := g.rmap.ToInternal(subset)
		if err != nil {
			return nil, err
		}
		for i, id := range ids {
			out[subset[i]] = degreeOf(id)
		}
		return out, nil
	}

	v, err := g.NumVertices()
	if err != nil {
		return nil, err
	}
	for id := VertexID(0); int64(id) < v; id++ {
		if rowLen(fwd, id) == 0 && rowLen(tsp, id) == 0 {
			continue // structurally absent
		}
		k, err := g.rmap.ExternalOf(id)
		if err != nil {
			return nil, err
		}
		out[k] = degreeOf(id)
	}
	return out, nil
}

// Neighbors returns the out-neighbors of v in ascending internal ID order,
// translated back to external identifiers. A vertex with no outgoing edges
// yields an empty, non-nil slice.
//
// Errors:
//   - ErrUnknownIdentifier when v is absent from the graph, ErrEmptyGraph.
func (g *Graph[K]) Neighbors(v K) ([]K, error) {
	if g.rmap == nil {
		return nil, ErrEmptyGraph
	}
	id, err := g.rmap.InternalOf(v)
	if err != nil {
		return nil, err
	}
	fwd, err := g.EnsureForwardCSR()
	if err != nil {
		return nil, err
	}
	row := fwd.Row(id)
	out := make([]K, len(row))
	for i, col := range row {
		if out[i], err = g.rmap.ExternalOf(col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// HasVertex reports whether v is a known vertex of this graph. A
// zero-value Graph knows no vertices.
func (g *Graph[K]) HasVertex(v K) bool {
	if g.rmap == nil {
		return false
	}
	_, err := g.rmap.InternalOf(v)
	return err == nil
}

// HasEdge reports whether the edge u→v is stored (for undirected graphs
// storage is symmetric, so order does not matter). Binary search over the
// ascending forward row.
//
// Errors:
//   - ErrUnknownIdentifier when either endpoint is absent, ErrEmptyGraph.
//
// Complexity: O(log deg(u)).
func (g *Graph[K]) HasEdge(u, v K) (bool, error) {
	if g.rmap == nil {
		return false, ErrEmptyGraph
	}
	uid, err := g.rmap.InternalOf(u)
	if err != nil {
		return false, err
	}
	vid, err := g.rmap.InternalOf(v)
	if err != nil {
		return false, err
	}
	fwd, err := g.EnsureForwardCSR()
	if err != nil {
		return false, err
	}
	return fwd.RowContains(uid, vid), nil
}

// HasSelfLoops reports whether any stored edge starts and ends at the same
// vertex. Computed lazily on first call and cached (the tri-state memo).
//
// Errors:
//   - ErrEmptyGraph when no view exists.
func (g *Graph[K]) HasSelfLoops() (bool, error) {
	g.mu.RLock()
	memo, gen := g.selfLoop, g.gen
	g.mu.RUnlock()
	if memo != triUnknown {
		return memo == triTrue, nil
	}

	coo, err := g.EnsureCOO()
	if err != nil {
		return false, err
	}
	found := triFalse
	for i := range coo.Src {
		if coo.Src[i] == coo.Dst[i] {
			found = triTrue
			break
		}
	}

	g.mu.Lock()
	if g.gen == gen { // discard the memo if a replacement intervened
		g.selfLoop = found
	}
	g.mu.Unlock()
	return found == triTrue, nil
}

// Vertices returns every vertex in ascending internal ID order, translated
// back to external identifiers.
//
// Errors:
//   - ErrEmptyGraph when no view exists.
func (g *Graph[K]) Vertices() ([]K, error) {
	v, err := g.NumVertices()
	if err != nil {
		return nil, err
	}
	out := make([]K, v)
	for id := VertexID(0); int64(id) < v; id++ {
		if out[id], err = g.rmap.ExternalOf(id); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EdgeList returns the edge listing in external identifiers, served from
// the frame fixed at construction: RawPassthrough lists every stored row,
// CanonicalSymmetrized lists only canonical rows (src >= dst), so each
// undirected edge appears exactly once. Attribute columns are filtered
// alongside and returned as fresh slices.
//
// Errors:
//   - ErrEmptyGraph when no view exists.
func (g *Graph[K]) EdgeList() (src, dst []K, attrs EdgeAttributes, err error) {
	coo, err := g.EnsureCOO()
	if err != nil {
		return nil, nil, EdgeAttributes{}, err
	}
	g.mu.RLock()
	mode := g.mode
	g.mu.RUnlock()

	if mode == RawPassthrough {
		// Every stored row is listed; columns copy wholesale.
		src = make([]K, 0, coo.Len())
		dst = make([]K, 0, coo.Len())
		for i := 0; i < coo.Len(); i++ {
			sk, kerr := g.rmap.ExternalOf(coo.Src[i])
			if kerr != nil {
				return nil, nil, EdgeAttributes{}, kerr
			}
			dk, kerr := g.rmap.ExternalOf(coo.Dst[i])
			if kerr != nil {
				return nil, nil, EdgeAttributes{}, kerr
			}
			src = append(src, sk)
			dst = append(dst, dk)
		}
		return src, dst, coo.Attrs.clone(), nil
	}

	for i := 0; i < coo.Len(); i++ {
		if coo.Src[i] < coo.Dst[i] {
			continue // mirror row; the canonical twin is listed instead
		}
		sk, kerr := g.rmap.ExternalOf(coo.Src[i])
		if kerr != nil {
			return nil, nil, EdgeAttributes{}, kerr
		}
		dk, kerr := g.rmap.ExternalOf(coo.Dst[i])
		if kerr != nil {
			return nil, nil, EdgeAttributes{}, kerr
		}
		src = append(src, sk)
		dst = append(dst, dk)
		if coo.Attrs.Weighted() {
			attrs.Weights = append(attrs.Weights, coo.Attrs.Weights[i])
		}
		if coo.Attrs.EdgeIDs != nil {
			attrs.EdgeIDs = append(attrs.EdgeIDs, coo.Attrs.EdgeIDs[i])
		}
		if coo.Attrs.EdgeTypes != nil {
			attrs.EdgeTypes = append(attrs.EdgeTypes, coo.Attrs.EdgeTypes[i])
		}
	}
	return src, dst, attrs, nil
}
