// SPDX-License-Identifier: MIT
// File: coo.go
// Role: Coordinate-list view — parallel source/destination columns plus the
//       tagged attribute record, with its structural validator and the
//       COO→CSR canonicalization.
// Determinism:
//   - ToCSR orders every row ascending by column; equal (row, col)
//     duplicates keep input order (stable sort).
// Concurrency:
//   - COO is plain value data; publication is guarded by Graph (cache.go).

package core

import (
	"fmt"
	"sort"
)

// COO is the coordinate-list view: edge i is (Src[i], Dst[i]) with optional
// attribute columns of identical length in Attrs.
type COO struct {
	Src   []VertexID
	Dst   []VertexID
	Attrs EdgeAttributes
}

// Len returns the stored row count E.
func (c *COO) Len() int { return len(c.Src) }

// Validate checks the structural invariants against a vertex count:
// aligned column lengths and endpoint IDs inside [0, numVertices).
// Every violation wraps ErrFormatValidation and names the offending column
// with the canonical vocabulary (ColSrc, ColDst, ...).
//
// Complexity: O(E).
func (c *COO) Validate(numVertices int64) error {
	e := len(c.Src)
	if len(c.Dst) != e {
		return fmt.Errorf("core: %s length %d, %s length %d: %w",
			ColSrc, e, ColDst, len(c.Dst), ErrFormatValidation)
	}
	if c.Attrs.Weights != nil && len(c.Attrs.Weights) != e {
		return fmt.Errorf("core: %s length %d, edges %d: %w",
			ColWeight, len(c.Attrs.Weights), e, ErrFormatValidation)
	}
	if c.Attrs.EdgeIDs != nil && len(c.Attrs.EdgeIDs) != e {
		return fmt.Errorf("core: %s length %d, edges %d: %w",
			ColEdgeID, len(c.Attrs.EdgeIDs), e, ErrFormatValidation)
	}
	if c.Attrs.EdgeTypes != nil && len(c.Attrs.EdgeTypes) != e {
		return fmt.Errorf("core: %s length %d, edges %d: %w",
			ColEdgeType, len(c.Attrs.EdgeTypes), e, ErrFormatValidation)
	}
	for i := 0; i < e; i++ {
		if int64(c.Src[i]) < 0 || int64(c.Src[i]) >= numVertices {
			return fmt.Errorf("core: %s[%d]=%d outside [0, %d): %w",
				ColSrc, i, c.Src[i], numVertices, ErrFormatValidation)
		}
		if int64(c.Dst[i]) < 0 || int64(c.Dst[i]) >= numVertices {
			return fmt.Errorf("core: %s[%d]=%d outside [0, %d): %w",
				ColDst, i, c.Dst[i], numVertices, ErrFormatValidation)
		}
	}
	return nil
}

// ToCSR groups the coordinate rows into compressed-adjacency form.
// transposed=false groups by source (forward rows), transposed=true groups
// by destination. Rows come out ascending by column; a weight column
// follows the permutation; edge IDs and edge types do not travel into CSR.
//
// Complexity: time O(E log E), space O(E).
func (c *COO) ToCSR(numVertices int, transposed bool) *CSR {
	rowOf, colOf := c.Src, c.Dst
	if transposed {
		rowOf, colOf = c.Dst, c.Src
	}

	// Stage 1: permutation sorted by (row, col); stable, so duplicate pairs
	// keep their coordinate-view order.
	perm := make([]int, c.Len())
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		pa, pb := perm[a], perm[b]
		if rowOf[pa] != rowOf[pb] {
			return rowOf[pa] < rowOf[pb]
		}
		return colOf[pa] < colOf[pb]
	})

	// Stage 2: offsets by row count, then prefix sums.
	out := &CSR{
		Offsets: make([]int64, numVertices+1),
		Indices: make([]VertexID, len(perm)),
	}
	if c.Attrs.Weights != nil {
		out.Weights = make([]float64, len(perm))
	}
	for _, p := range perm {
		out.Offsets[rowOf[p]+1]++
	}
	for i := 1; i <= numVertices; i++ {
		out.Offsets[i] += out.Offsets[i-1]
	}

	// Stage 3: fill in sorted order.
	for i, p := range perm {
		out.Indices[i] = colOf[p]
		if out.Weights != nil {
			out.Weights[i] = c.Attrs.Weights[p]
		}
	}
	return out
}
