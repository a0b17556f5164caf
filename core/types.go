// SPDX-License-Identifier: MIT
// File: types.go
// Role: Shared vocabulary of the representation layer — identifier alias,
//       the tagged attribute record, graph properties, enums, snapshots.
// Determinism:
//   - Enums carry stable String() names; nothing here reorders data.
// Concurrency:
//   - Everything in this file is plain value data; synchronization lives
//     with Graph (graph.go, cache.go).

package core

import (
	"fmt"

	"github.com/katalvlaran/plexus/renumber"
)

// VertexID is the dense internal vertex identifier, re-exported from
// renumber so callers of this package rarely need both imports.
type VertexID = renumber.VertexID

// MaxVertexCount mirrors the 32-bit internal ID space bound.
const MaxVertexCount = renumber.MaxVertexCount

// Canonical attribute column names. The construction pipeline and the
// backend boundary name attribute columns with exactly this vocabulary in
// diagnostics, so an error message always identifies the offending column
// the same way regardless of what the caller called it.
const (
	ColSrc      = "src"
	ColDst      = "dst"
	ColWeight   = "weights"
	ColEdgeID   = "edge_id"
	ColEdgeType = "edge_type"
)

// EdgeAttributes is the fixed tagged attribute record: absence is a nil
// slice, presence is a full column of length E. There is deliberately no
// dynamic map here — each attribute has exactly one typed home.
type EdgeAttributes struct {
	Weights   []float64
	EdgeIDs   []int64
	EdgeTypes []int32
}

// Weighted reports whether a weight column is present.
func (a EdgeAttributes) Weighted() bool { return a.Weights != nil }

// clone deep-copies every present column.
func (a EdgeAttributes) clone() EdgeAttributes {
	out := EdgeAttributes{}
	if a.Weights != nil {
		out.Weights = append([]float64(nil), a.Weights...)
	}
	if a.EdgeIDs != nil {
		out.EdgeIDs = append([]int64(nil), a.EdgeIDs...)
	}
	if a.EdgeTypes != nil {
		out.EdgeTypes = append([]int32(nil), a.EdgeTypes...)
	}
	return out
}

// Properties are the structural flags fixed at construction.
type Properties struct {
	// Directed: stored rows are one-directional. False means the stored
	// form is the canonical symmetrized set.
	Directed bool

	// Multigraph: parallel edges between the same ordered pair survive.
	Multigraph bool

	// Weighted: a weight column is attached.
	Weighted bool

	// StoreTransposed: the backend build prefers the transposed adjacency
	// orientation (algorithms that traverse in-edges first).
	StoreTransposed bool
}

// Direction selects which adjacency orientation a degree query reads.
type Direction uint8

const (
	// DirectionOut counts edges leaving a vertex (forward rows).
	DirectionOut Direction = iota
	// DirectionIn counts edges entering a vertex (transposed rows).
	DirectionIn
	// DirectionBoth sums both orientations.
	DirectionBoth
)

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "out"
	case DirectionIn:
		return "in"
	case DirectionBoth:
		return "both"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Format tags which physical layout a BuildSpec carries to the backend.
type Format uint8

const (
	// FormatCOO: coordinate list (parallel src/dst columns).
	FormatCOO Format = iota
	// FormatCSR: compressed adjacency (offsets + indices).
	FormatCSR
)

// String returns the format tag for diagnostics.
func (f Format) String() string {
	switch f {
	case FormatCOO:
		return "COO"
	case FormatCSR:
		return "CSR"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// EdgeSourceMode records — once, at construction — which frame edge
// listings are served from. No runtime shape inspection ever decides this.
type EdgeSourceMode uint8

const (
	// RawPassthrough: listings come from the stored rows as given
	// (directed graphs; every stored row is a caller-supplied edge).
	RawPassthrough EdgeSourceMode = iota
	// CanonicalSymmetrized: listings come from the canonical symmetric
	// frame, reduced to rows with src >= dst so each undirected edge
	// appears exactly once.
	CanonicalSymmetrized
)

// String returns the mode name for diagnostics.
func (m EdgeSourceMode) String() string {
	switch m {
	case RawPassthrough:
		return "RawPassthrough"
	case CanonicalSymmetrized:
		return "CanonicalSymmetrized"
	default:
		return fmt.Sprintf("EdgeSourceMode(%d)", uint8(m))
	}
}

// Pair is one two-hop result: Second is reachable from First across
// exactly one intermediate vertex.
type Pair[K comparable] struct {
	First  K
	Second K
}

// triState is the lazily-computed self-loop memo.
type triState uint8

const (
	triUnknown triState = iota
	triTrue
	triFalse
)

// ViewStats is a point-in-time snapshot of representation-cache activity:
// how often each view was served from cache versus derived, and how many
// backend handles were built. For undirected graphs the transposed view
// shares the forward arrays, so transposed accesses account against the
// forward counters.
type ViewStats struct {
	COOHits               int64
	COODerivations        int64
	ForwardHits           int64
	ForwardDerivations    int64
	TransposedHits        int64
	TransposedDerivations int64
	BackendBuilds         int64
}
