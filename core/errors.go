// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors of the representation layer, plus re-exports of
//       the lower-layer sentinels so callers match everything with a
//       single import.
//
// NOTE ON NAMING & PREFIXING:
//   - Every sentinel begins with "core:" so a wrapped chain reads
//     naturally: "core: deriving forward adjacency: core: ...".
//   - Callers are expected to match with errors.Is; the re-exported vars
//     below are the same values as their origin sentinels, not copies.

package core

import (
	"errors"

	"github.com/katalvlaran/plexus/renumber"
	"github.com/katalvlaran/plexus/symmetrize"
)

var (
	// ErrEmptyGraph is returned when an operation needs stored edges or a
	// populated view and the graph has no representation at all.
	ErrEmptyGraph = errors.New("core: graph holds no representation")

	// ErrFormatValidation is returned when a representation fails its
	// structural invariants: misaligned column lengths, offsets that are
	// not monotone, indices outside [0, V), or a malformed adapter reply.
	ErrFormatValidation = errors.New("core: representation violates structural invariants")

	// ErrNoBackend is returned by delegated queries (two-hop, sampling)
	// when no compute backend was wired at construction.
	ErrNoBackend = errors.New("core: no compute backend configured")

	// ErrOptionViolation is returned when construction options are
	// mutually exclusive or carry illegal values.
	ErrOptionViolation = errors.New("core: option violation")

	// ErrUnknownDirection is returned when a degree query names a
	// Direction outside the declared enum.
	ErrUnknownDirection = errors.New("core: unknown degree direction")
)

// Re-exported sentinels. Construction and lookup failures surface errors
// from the renumber and symmetrize packages unchanged; these aliases let
// callers write errors.Is(err, core.ErrUnknownIdentifier) without
// importing the lower layers.
var (
	ErrInvalidIdentifier     = renumber.ErrInvalidIdentifier
	ErrUnknownIdentifier     = renumber.ErrUnknownIdentifier
	ErrOutOfRange            = renumber.ErrOutOfRange
	ErrConflictingAttributes = symmetrize.ErrConflictingAttributes
)
