// SPDX-License-Identifier: MIT
// Package renumber: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// renumber package. All functions return these sentinels (wrapped with
// context via fmt.Errorf("...: %w", Err...)) and tests check them via
// errors.Is. Panics are reserved for programmer errors in option plumbing.

package renumber

import "errors"

// NOTE ON NAMING & PREFIXING
//   - Every message is prefixed with "renumber:" so errors remain
//     attributable after wrapping.
//   - Sentinels describe the CONDITION, not the call site; call sites add
//     their own context when wrapping.
var (
	// ErrInvalidIdentifier reports malformed or inconsistent external
	// identifier input: nil interface keys, mixed dynamic types within a
	// column, non-comparable dynamic types, or an identity-mode request
	// over identifiers that are not dense non-negative integers.
	ErrInvalidIdentifier = errors.New("renumber: invalid identifier")

	// ErrUnknownIdentifier reports a lookup of an external identifier that
	// is absent from the map. The map is sealed at construction and never
	// auto-extends on lookup.
	ErrUnknownIdentifier = errors.New("renumber: unknown identifier")

	// ErrOutOfRange reports an internal ID outside the dense range [0, V).
	ErrOutOfRange = errors.New("renumber: internal id out of range")

	// ErrLengthMismatch reports source/destination columns of unequal length.
	ErrLengthMismatch = errors.New("renumber: column length mismatch")

	// ErrTooManyVertices reports that the distinct identifier count exceeds
	// MaxVertexCount (the 32-bit internal ID space).
	ErrTooManyVertices = errors.New("renumber: vertex count exceeds internal id space")
)
