// SPDX-License-Identifier: MIT

// Package symmetrize converts a directed edge set into its canonical
// undirected storage form — or passes directed input through unchanged.
//
// What it does:
//
//	Undirected graphs are stored symmetrically: for every edge (u,v) with
//	u≠v the mirrored (v,u) is stored too, so forward and transposed
//	adjacency views coincide and row slicing answers "neighbors" in one
//	direction only. This package performs that expansion once, at
//	construction time, together with deduplication and attribute merging.
//
// The two paths:
//
//   - Passthrough (WithSymmetric(false)): the directed identity path.
//     Input edges come back value-for-value (freshly allocated), duplicates
//     and attributes included. Nothing is merged, mirrored, or reordered.
//   - Symmetric (default): every (u,v) with u≠v emits both orientations
//     carrying the same attributes; self-loops emit exactly once. With
//     multi-edges disabled, duplicate (u,v) pairs then collapse into one
//     edge and weights merge under the configured MergePolicy.
//
// Weight merging:
//
//	MergeSum is the default and mirrors conventional undirected-projection
//	semantics: duplicates [w1, w2] collapse to w1+w2, independent of input
//	order. MergeLast / MergeMin / MergeMax are available where summing is
//	wrong for the domain (capacities, bandwidths).
//
// Edge IDs and edge types:
//
//	Symmetrization fabricates mirrored edges that have no user-assigned
//	identity, so requesting it together with WithEdgeIDs/WithEdgeTypes is
//	rejected with ErrConflictingAttributes — never silently dropped. The
//	passthrough path carries both attributes verbatim.
//
// Determinism:
//
//	The symmetric path emits edges in canonical ascending (src, dst) order;
//	equal pairs keep input order (stable), which is what makes MergeLast
//	well-defined. The passthrough path preserves input order exactly.
//
// Errors (sentinels, check with errors.Is):
//
//   - ErrConflictingAttributes — edge IDs/types requested with symmetrization.
//   - ErrLengthMismatch — column or attribute arrays disagree on E.
//
// Complexity: O(E log E) time for the symmetric path (canonical sort),
// O(E) space. Passthrough is O(E)/O(E).
package symmetrize
