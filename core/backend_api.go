// SPDX-License-Identifier: MIT
// File: backend_api.go
// Role: The compute-backend boundary — the Backend/BackendGraph interfaces
//       and the BuildSpec record a Graph hands across it. This package
//       defines the contract; the reference implementation lives in the
//       sibling backend package.
// Concurrency:
//   - Implementations must tolerate concurrent calls on one BackendGraph;
//     the handle is shared by every delegated query of its Graph.

package core

import "context"

// BackendProperties are the structural flags a backend build needs.
type BackendProperties struct {
	// IsMultigraph: parallel edges between the same ordered pair survive.
	IsMultigraph bool
	// IsSymmetric: the payload is already the canonical symmetrized set.
	IsSymmetric bool
}

// BuildSpec is everything one backend build receives. Exactly one payload
// is populated, selected by Format; attribute columns travel inside it
// (COO carries the tagged attribute record, CSR carries weights).
type BuildSpec struct {
	Properties BackendProperties

	// Format selects the payload: FormatCOO reads the COO field, FormatCSR
	// reads the CSR field.
	Format Format
	COO    *COO
	CSR    *CSR

	// NumVertices is V. Explicit, so the backend never has to infer the
	// dense ID space from the arrays.
	NumVertices int64

	// StoreTransposed: a FormatCSR payload holds the transposed orientation
	// (rows are destinations).
	StoreTransposed bool

	// Renumber: the payload went through renumbering, so its IDs are
	// guaranteed to cover [0, V) exactly; validation may check coverage,
	// not just range.
	Renumber bool

	// Validate requests the O(E) structural checks before building.
	// Failures surface as ErrFormatValidation.
	Validate bool
}

// Backend is one compute-backend session. Sessions are explicit values
// threaded through construction (WithBackend) — there is no ambient
// process-wide backend state anywhere in this module.
type Backend interface {
	// BuildGraph turns a BuildSpec into an opaque handle. It must not
	// mutate or retain-and-mutate the arrays it is given.
	BuildGraph(ctx context.Context, spec BuildSpec) (BackendGraph, error)
}

// BackendGraph is an opaque built-graph handle.
type BackendGraph interface {
	// TwoHop enumerates distinct (first, second) pairs connected across
	// exactly one intermediate vertex, starting from starts (nil = every
	// vertex). Both returned columns are aligned and sorted ascending by
	// (first, second). validate range-checks starts first.
	TwoHop(ctx context.Context, starts []VertexID, validate bool) (first, second []VertexID, err error)

	// RandomSample draws count distinct vertices under seed. count < 0
	// returns every vertex ascending; count > V fails with ErrOutOfRange.
	// The order of a seeded draw is backend-defined but deterministic.
	RandomSample(ctx context.Context, seed int64, count int) ([]VertexID, error)
}
