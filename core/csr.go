// SPDX-License-Identifier: MIT
// File: csr.go
// Role: Compressed-adjacency view — offsets plus grouped column indices,
//       with its structural validator and the CSR→COO expansion.
// Determinism:
//   - ToCOO expands rows in ascending row order; within a row, stored
//     (already sorted) order is preserved.
// Concurrency:
//   - CSR is plain value data; publication is guarded by Graph (cache.go).

package core

import (
	"fmt"
	"sort"
)

// CSR is a compressed-adjacency view. Row i owns
// Indices[Offsets[i]:Offsets[i+1]], sorted ascending; whether a row means
// out-neighbors (forward) or in-neighbors (transposed) is decided by the
// Graph slot the view sits in, not by the arrays themselves.
type CSR struct {
	Offsets []int64    // length V+1, monotone, Offsets[0]=0, Offsets[V]=E
	Indices []VertexID // length E, grouped by row
	Weights []float64  // optional, length E, aligned with Indices
}

// NumVertices returns V, the row count.
func (c *CSR) NumVertices() int {
	if len(c.Offsets) == 0 {
		return 0
	}
	return len(c.Offsets) - 1
}

// Len returns the stored edge count E.
func (c *CSR) Len() int { return len(c.Indices) }

// Row returns the column slice of row id. The caller must not mutate it.
// Bounds are the caller's responsibility; Graph methods range-check first.
func (c *CSR) Row(id VertexID) []VertexID {
	return c.Indices[c.Offsets[id]:c.Offsets[id+1]]
}

// RowContains reports whether col appears in row id, by binary search over
// the ascending row invariant.
//
// Complexity: O(log deg(id)).
func (c *CSR) RowContains(id, col VertexID) bool {
	row := c.Row(id)
	i := sort.Search(len(row), func(j int) bool { return row[j] >= col })
	return i < len(row) && row[i] == col
}

// Validate checks every structural invariant this package relies on:
// an offsets table of at least one entry starting at zero, monotone
// offsets closing at E, indices inside [0, V), ascending rows, and an
// aligned weight column when present. Every violation wraps
// ErrFormatValidation.
//
// Complexity: O(V + E).
func (c *CSR) Validate() error {
	if err := c.validateShape(); err != nil {
		return err
	}
	v := c.NumVertices()
	for row := 0; row < v; row++ {
		for k := c.Offsets[row] + 1; k < c.Offsets[row+1]; k++ {
			if c.Indices[k] < c.Indices[k-1] {
				return fmt.Errorf("core: row %d not ascending at position %d: %w",
					row, k, ErrFormatValidation)
			}
		}
	}
	return nil
}

// validateShape is Validate minus the ascending-row check — construction
// from a foreign adjacency list runs it before normalizing row order.
func (c *CSR) validateShape() error {
	if len(c.Offsets) == 0 {
		return fmt.Errorf("core: offsets table is empty: %w", ErrFormatValidation)
	}
	if c.Offsets[0] != 0 {
		return fmt.Errorf("core: offsets[0]=%d, want 0: %w", c.Offsets[0], ErrFormatValidation)
	}
	v := c.NumVertices()
	for i := 1; i <= v; i++ {
		if c.Offsets[i] < c.Offsets[i-1] {
			return fmt.Errorf("core: offsets[%d]=%d below offsets[%d]=%d: %w",
				i, c.Offsets[i], i-1, c.Offsets[i-1], ErrFormatValidation)
		}
	}
	if c.Offsets[v] != int64(len(c.Indices)) {
		return fmt.Errorf("core: offsets close at %d, indices hold %d: %w",
			c.Offsets[v], len(c.Indices), ErrFormatValidation)
	}
	if c.Weights != nil && len(c.Weights) != len(c.Indices) {
		return fmt.Errorf("core: %s length %d, edges %d: %w",
			ColWeight, len(c.Weights), len(c.Indices), ErrFormatValidation)
	}
	for i, col := range c.Indices {
		if int(col) < 0 || int(col) >= v {
			return fmt.Errorf("core: index[%d]=%d outside [0, %d): %w",
				i, col, v, ErrFormatValidation)
		}
	}
	return nil
}

// ToCOO expands the adjacency back into coordinate form. transposed tells
// how to read the rows: false means rows are sources (forward view), true
// means rows are destinations. The producing view is never consumed.
//
// Complexity: time O(V + E), space O(E).
func (c *CSR) ToCOO(transposed bool) *COO {
	out := &COO{
		Src: make([]VertexID, 0, c.Len()),
		Dst: make([]VertexID, 0, c.Len()),
	}
	if c.Weights != nil {
		out.Attrs.Weights = make([]float64, 0, c.Len())
	}
	v := c.NumVertices()
	for row := 0; row < v; row++ {
		for k := c.Offsets[row]; k < c.Offsets[row+1]; k++ {
			if transposed {
				out.Src = append(out.Src, c.Indices[k])
				out.Dst = append(out.Dst, VertexID(row))
			} else {
				out.Src = append(out.Src, VertexID(row))
				out.Dst = append(out.Dst, c.Indices[k])
			}
			if c.Weights != nil {
				out.Attrs.Weights = append(out.Attrs.Weights, c.Weights[k])
			}
		}
	}
	return out
}

// sortRows orders every row ascending by column in place, carrying the
// weight column along. Construction from a foreign adjacency list uses it
// to establish the ascending-row invariant; internally derived views are
// already sorted and skip it.
func (c *CSR) sortRows() {
	v := c.NumVertices()
	for row := 0; row < v; row++ {
		lo, hi := c.Offsets[row], c.Offsets[row+1]
		seg := c.Indices[lo:hi]
		if c.Weights == nil {
			sort.Slice(seg, func(a, b int) bool { return seg[a] < seg[b] })
			continue
		}
		// Sort a permutation so the weight column follows its edge.
		wseg := c.Weights[lo:hi]
		perm := make([]int, len(seg))
		for i := range perm {
			perm[i] = i
		}
		sort.SliceStable(perm, func(a, b int) bool { return seg[perm[a]] < seg[perm[b]] })
		cols := append([]VertexID(nil), seg...)
		ws := append([]float64(nil), wseg...)
		for i, p := range perm {
			seg[i] = cols[p]
			wseg[i] = ws[p]
		}
	}
}
