// SPDX-License-Identifier: MIT

// Package core is the aggregate root of plexus: Graph[K] owns one sealed
// renumbering map and up to three mutually-consistent physical views of the
// same edge multiset, derived lazily and served to structural queries and
// compute backends.
//
// What it solves:
//
//	Construction pipelines produce one physical layout; algorithms want
//	another. A coordinate list (COO) is natural to build and stream; a
//	compressed adjacency (CSR) is natural to traverse. Rather than
//	recomputing per call or eagerly maintaining every layout, Graph derives
//	each missing view from whichever one exists, exactly once, on first use.
//
// Key concepts:
//
//   - Graph[K] — the aggregate root. Built by FromEdgeList (any comparable
//     identifier type, renumbered) or FromAdjacency (dense int64 space,
//     identity renumbering). Effectively immutable after construction;
//     ReplaceEdgeList is the single wholesale mutation.
//   - COO / CSR — the physical views. CSR rows are always sorted ascending;
//     views simultaneously populated always agree on V, E, and the edge
//     multiset because missing views are derived, never recomputed.
//   - EdgeSourceMode — fixed at construction: directed graphs list edges
//     from the raw stored frame (RawPassthrough), undirected graphs from
//     the canonical symmetrized frame reduced to src >= dst rows
//     (CanonicalSymmetrized). No runtime shape inspection decides this.
//   - EdgeAttributes — the fixed tagged attribute record (weights, edge
//     IDs, edge types). Absence is a nil column, never a missing map key.
//   - Backend / BackendGraph — the compute-backend boundary. Two-hop
//     enumeration and random sampling are delegated across it; this
//     package only translates identifiers at the boundary. Sessions are
//     explicit values wired by WithBackend; there is no ambient backend
//     state.
//
// Concurrency:
//
//	Queries may run concurrently. Lazy derivation is guarded by an RWMutex
//	plus a singleflight group, so each view derives at most once at a time
//	and callers observe "absent" or "complete" — never a partially
//	populated array. ReplaceEdgeList must not race in-flight queries.
//
// Errors (sentinels, check with errors.Is):
//
//   - ErrEmptyGraph — a query needs a view and none exists (zero-value
//     Graph).
//   - ErrFormatValidation — structural invariants violated: misaligned
//     columns, non-monotone offsets, IDs outside [0, V), malformed adapter
//     replies.
//   - ErrNoBackend — a delegated query without a wired backend.
//   - ErrOptionViolation — contradictory or malformed construction options.
//   - ErrUnknownDirection — a degree query with an undefined Direction.
//   - ErrInvalidIdentifier, ErrUnknownIdentifier, ErrOutOfRange,
//     ErrConflictingAttributes — re-exported from renumber and symmetrize.
//
// Validation is caller-controlled (WithValidation, default on): the O(E)
// structural checks at construction and the backend boundary can be turned
// off as a documented performance/safety trade-off, after which malformed
// input produces undefined downstream behavior.
//
// Quick start:
//
//	g, err := core.FromEdgeList([]string{"a", "b"}, []string{"b", "c"})
//	n, _ := g.Neighbors("a")            // ["b"]
//	deg, _ := g.Degree(core.DirectionOut)
//
// See the backend package for the in-process reference compute backend.
package core
