// Package plexus is a canonical graph-representation engine: feed it an
// edge list keyed by any comparable identifier type and it maintains a
// dense, memory-efficient internal form — renumbered, symmetrized, and
// served as lazily-derived coordinate/adjacency views — ready for
// downstream graph algorithms.
//
// 🚀 What is plexus?
//
//	A focused, thread-safe representation layer that brings together:
//		• Renumbering: arbitrary (even composite) vertex IDs ⇄ dense [0,V) integers
//		• Symmetrization: directed input → canonical undirected storage,
//		  deduplicated with explicit weight-merge policies
//		• Views: COO + forward/transposed CSR, derived on demand, cached,
//		  guarded so no caller ever observes a half-built array
//		• Structural queries: counts, degrees, neighbors, two-hop, sampling —
//		  external identifiers at the boundary, dense integers inside
//		• Backend adapter: hand the canonical arrays to any compute layer
//		  through one explicit session interface
//
// ✨ Why choose plexus?
//
//   - Deterministic everywhere – documented ID assignment order, sorted
//     adjacency rows, reproducible sampling under a seed
//   - Rock-solid guarantees – construction either fully succeeds or returns
//     an error; no partially-built graph ever escapes
//   - Explicit over ambient – no global backend state, no dynamic attribute
//     maps, no hidden validation gaps
//
// Everything is organized under four subpackages:
//
//	renumber/   — Map[K]: external identifiers ⇄ dense internal VertexIDs
//	symmetrize/ — directed edge sets → canonical undirected edge sets
//	core/       — Graph[K]: views, representation cache, structural queries
//	backend/    — in-process reference compute backend (two-hop, sampling)
//
// Quick ASCII example:
//
//	    a ──→ b            0 ──→ 1
//	    ↑     │     ⇒      ↑     │      (renumbered, then symmetrized
//	    └──── c            └──── 2       on request)
//
// Dive into README.md for full examples and the package-by-package tour.
//
//	go get github.com/katalvlaran/plexus
package plexus
