// SPDX-License-Identifier: MIT
// Package symmetrize: sentinel error set.
// Only package-level sentinels live here; call sites wrap them with
// context via fmt.Errorf("...: %w", Err...) and tests check errors.Is.

package symmetrize

import "errors"

// NOTE ON NAMING & PREFIXING
//   - Messages carry the "symmetrize:" prefix so wrapped errors stay
//     attributable.
var (
	// ErrConflictingAttributes reports user-provided edge IDs or edge types
	// combined with symmetrization. Mirrored edges would carry undefined
	// identities; the combination is rejected outright.
	ErrConflictingAttributes = errors.New("symmetrize: edge ids/types conflict with symmetrization")

	// ErrLengthMismatch reports source/destination columns or attribute
	// arrays that disagree on the edge count E.
	ErrLengthMismatch = errors.New("symmetrize: array length mismatch")
)
