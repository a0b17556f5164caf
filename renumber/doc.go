// SPDX-License-Identifier: MIT

// Package renumber maps arbitrary external vertex identifiers onto the dense
// internal integer space [0, V) and back.
//
// What it solves:
//
//	Downstream representations (COO triples, CSR offset tables) and compute
//	backends want vertices as small contiguous integers. Callers have strings,
//	composite keys, sparse int64 ranges. This package owns the bidirectional
//	translation and nothing else.
//
// Key concepts:
//
//   - VertexID — the dense internal identifier, strictly 32-bit. Hot-path
//     arrays (CSR indices, COO columns) are sized by it on purpose.
//   - Map[K] — the bidirectional table. K is any comparable Go type:
//     string, int64, or a comparable struct acting as a composite key
//     (one struct field per key column).
//   - Identity skip — when every identifier is already a non-negative
//     built-in integer and the set is exactly the contiguous range [0, V),
//     no table is materialized; translation degenerates to a checked cast
//     and Map.Active() reports false.
//
// Determinism:
//
//   - Internal IDs are assigned in first-appearance order: the source
//     column is scanned first, then the destination column. The same input
//     always yields the same numbering.
//
// Errors (sentinels, check with errors.Is):
//
//   - ErrInvalidIdentifier — malformed identifier input: nil interface
//     keys, inconsistent dynamic types across a column, or identity mode
//     requested for identifiers that cannot satisfy it.
//   - ErrUnknownIdentifier — ToInternal/InternalOf lookup of an external
//     identifier absent from the map. The map never auto-extends.
//   - ErrOutOfRange — ToExternal/ExternalOf with an internal ID outside
//     [0, V).
//   - ErrLengthMismatch — source and destination columns differ in length.
//   - ErrTooManyVertices — distinct identifier count exceeds MaxVertexCount.
//
// Complexity:
//
//	Renumber is O(E) time and O(V) space (plus an O(E) bitmap probe for the
//	identity check). Single-key translation is O(1).
//
// Quick start:
//
//	res, err := renumber.Renumber([]string{"a", "b"}, []string{"b", "c"})
//	// res.Src, res.Dst are dense []VertexID; res.Map translates both ways.
//	ext, _ := res.Map.ToExternal([]renumber.VertexID{0, 1, 2}) // ["a","b","c"]
//
// The Map is immutable after construction and safe for concurrent readers.
package renumber
