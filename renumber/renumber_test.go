// SPDX-License-Identifier: MIT
// Package renumber_test verifies the renumbering contract: dense [0,V)
// image, deterministic first-appearance order, identity skip, strict
// sentinel errors on unknown/out-of-range lookups.
package renumber_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/renumber"
)

// route models a composite external key (two columns).
type route struct {
	Code     string
	Terminal int
}

// TestRenumber_RoundTrip_Strings covers the canonical string scenario:
// a→b, b→c. The internal image must be exactly [0,V) and translation must
// round-trip losslessly.
func TestRenumber_RoundTrip_Strings(t *testing.T) {
	t.Parallel()

	// Stage 1: renumber two string columns.
	res, err := renumber.Renumber([]string{"a", "b"}, []string{"b", "c"})
	require.NoError(t, err)
	require.True(t, res.Map.Active(), "strings always materialize a table")
	require.Equal(t, 3, res.Map.Count())

	// Stage 2: the internal image is a permutation of {0,1,2}.
	seen := map[renumber.VertexID]bool{}
	for _, id := range append(append([]renumber.VertexID{}, res.Src...), res.Dst...) {
		require.GreaterOrEqual(t, int(id), 0)
		require.Less(t, int(id), 3)
		seen[id] = true
	}
	require.Len(t, seen, 3, "no gaps, no repeats in [0,V)")

	// Stage 3: to_external(to_internal(x)) == x.
	in, err := res.Map.ToInternal([]string{"a", "b", "c"})
	require.NoError(t, err)
	out, err := res.Map.ToExternal(in)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, out)
}

// TestRenumber_FirstAppearanceOrder pins the documented assignment order:
// source column first, then destination column.
func TestRenumber_FirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	res, err := renumber.Renumber([]string{"b", "a"}, []string{"a", "c"})
	require.NoError(t, err)

	ids, err := res.Map.ToInternal([]string{"b", "a", "c"})
	require.NoError(t, err)
	require.Equal(t, []renumber.VertexID{0, 1, 2}, ids,
		"b appears first in src, a second, c first new key in dst")
}

// TestRenumber_IdentitySkip verifies that dense non-negative integers pass
// through untouched, with no table materialized.
func TestRenumber_IdentitySkip(t *testing.T) {
	t.Parallel()

	res, err := renumber.Renumber([]int64{0, 1, 2}, []int64{1, 2, 0})
	require.NoError(t, err)
	require.False(t, res.Map.Active(), "dense ints skip the table")
	require.Equal(t, 3, res.Map.Count())
	require.Equal(t, []renumber.VertexID{0, 1, 2}, res.Src)
	require.Equal(t, []renumber.VertexID{1, 2, 0}, res.Dst)

	// Identity still translates with full checking.
	ext, err := res.Map.ToExternal([]renumber.VertexID{2, 0})
	require.NoError(t, err)
	require.Equal(t, []int64{2, 0}, ext)
}

// TestRenumber_ProbeRejects walks the inputs that must NOT take the
// identity path even though they are integers.
func TestRenumber_ProbeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []int64
		dst  []int64
		v    int // expected Count after mandatory renumbering
	}{
		{name: "negative ids", src: []int64{-1, 0}, dst: []int64{0, 1}, v: 3},
		{name: "gap in range", src: []int64{0, 2}, dst: []int64{2, 0}, v: 2},
		{name: "not zero based", src: []int64{1, 2}, dst: []int64{2, 3}, v: 3},
		{name: "beyond 32-bit space", src: []int64{0, 1 << 40}, dst: []int64{0, 0}, v: 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := renumber.Renumber(tc.src, tc.dst)
			require.NoError(t, err)
			require.True(t, res.Map.Active(), "probe must reject the identity skip")
			require.Equal(t, tc.v, res.Map.Count())

			// Round-trip still holds after mandatory renumbering.
			in, err := res.Map.ToInternal(tc.src)
			require.NoError(t, err)
			out, err := res.Map.ToExternal(in)
			require.NoError(t, err)
			require.Equal(t, tc.src, out)
		})
	}
}

// TestRenumber_EmptyInput: V=0 is legal, both modes.
func TestRenumber_EmptyInput(t *testing.T) {
	t.Parallel()

	intRes, err := renumber.Renumber([]int64{}, []int64{})
	require.NoError(t, err)
	require.False(t, intRes.Map.Active())
	require.Equal(t, 0, intRes.Map.Count())
	require.Empty(t, intRes.Src)

	strRes, err := renumber.Renumber([]string{}, []string{})
	require.NoError(t, err)
	require.Equal(t, 0, strRes.Map.Count())

	_, err = strRes.Map.ExternalOf(0)
	require.ErrorIs(t, err, renumber.ErrOutOfRange)
}

// TestRenumber_CompositeKeys uses a comparable struct as a two-column key.
func TestRenumber_CompositeKeys(t *testing.T) {
	t.Parallel()

	src := []route{{"LHR", 1}, {"LHR", 2}}
	dst := []route{{"LHR", 2}, {"CDG", 1}}

	res, err := renumber.Renumber(src, dst)
	require.NoError(t, err)
	require.True(t, res.Map.Active())
	require.Equal(t, 3, res.Map.Count())
	require.Equal(t, 2, res.Map.KeyWidth(), "two columns per composite key")

	// Composite keys map as a unit: same Code, different Terminal = new id.
	a, err := res.Map.InternalOf(route{"LHR", 1})
	require.NoError(t, err)
	b, err := res.Map.InternalOf(route{"LHR", 2})
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	// No partial lookups: an unseen combination is unknown.
	_, err = res.Map.InternalOf(route{"CDG", 2})
	require.ErrorIs(t, err, renumber.ErrUnknownIdentifier)
}

// TestRenumber_InterfaceKeys exercises the runtime shape validation that
// concrete key types get from the compiler.
func TestRenumber_InterfaceKeys(t *testing.T) {
	t.Parallel()

	t.Run("consistent dynamic type is accepted", func(t *testing.T) {
		t.Parallel()
		res, err := renumber.Renumber([]any{"x", "y"}, []any{"y", "z"})
		require.NoError(t, err)
		require.Equal(t, 3, res.Map.Count())
		require.Equal(t, 1, res.Map.KeyWidth())
	})

	t.Run("mixed dynamic types are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := renumber.Renumber([]any{"x", 7}, []any{"y", "z"})
		require.ErrorIs(t, err, renumber.ErrInvalidIdentifier)
	})

	t.Run("nil identifier is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := renumber.Renumber([]any{"x", nil}, []any{"y", "z"})
		require.ErrorIs(t, err, renumber.ErrInvalidIdentifier)
	})

	t.Run("non-comparable dynamic type is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := renumber.Renumber([]any{[]int{1}}, []any{[]int{2}})
		require.ErrorIs(t, err, renumber.ErrInvalidIdentifier)
	})
}

// TestRenumber_LengthMismatch: columns must align.
func TestRenumber_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := renumber.Renumber([]string{"a"}, []string{"b", "c"})
	require.ErrorIs(t, err, renumber.ErrLengthMismatch)
}

// TestRenumber_UnknownAndOutOfRange pins the two lookup sentinels on both
// physical modes.
func TestRenumber_UnknownAndOutOfRange(t *testing.T) {
	t.Parallel()

	tabled, err := renumber.Renumber([]string{"a"}, []string{"b"})
	require.NoError(t, err)
	_, err = tabled.Map.ToInternal([]string{"z"})
	require.ErrorIs(t, err, renumber.ErrUnknownIdentifier)
	_, err = tabled.Map.ToExternal([]renumber.VertexID{2})
	require.ErrorIs(t, err, renumber.ErrOutOfRange)
	_, err = tabled.Map.ExternalOf(-1)
	require.ErrorIs(t, err, renumber.ErrOutOfRange)

	ident, err := renumber.Renumber([]int{0, 1}, []int{1, 0})
	require.NoError(t, err)
	_, err = ident.Map.InternalOf(5)
	require.ErrorIs(t, err, renumber.ErrUnknownIdentifier)
	_, err = ident.Map.InternalOf(-3)
	require.ErrorIs(t, err, renumber.ErrUnknownIdentifier)
	_, err = ident.Map.ExternalOf(2)
	require.ErrorIs(t, err, renumber.ErrOutOfRange)
}

// TestRenumber_IdentityRequired: the caller-forced passthrough mode.
func TestRenumber_IdentityRequired(t *testing.T) {
	t.Parallel()

	// Dense integers satisfy the requirement.
	res, err := renumber.Renumber([]int32{0, 1}, []int32{1, 0}, renumber.WithIdentityRequired())
	require.NoError(t, err)
	require.False(t, res.Map.Active())

	// Non-integer identifiers cannot.
	_, err = renumber.Renumber([]string{"a"}, []string{"b"}, renumber.WithIdentityRequired())
	require.ErrorIs(t, err, renumber.ErrInvalidIdentifier)

	// Sparse integers cannot either.
	_, err = renumber.Renumber([]int64{0, 7}, []int64{7, 0}, renumber.WithIdentityRequired())
	require.ErrorIs(t, err, renumber.ErrInvalidIdentifier)
}

// TestRenumber_ForcedMapping materializes a table even for dense ints.
func TestRenumber_ForcedMapping(t *testing.T) {
	t.Parallel()

	res, err := renumber.Renumber([]int64{0, 1, 2}, []int64{1, 2, 0}, renumber.WithForcedMapping())
	require.NoError(t, err)
	require.True(t, res.Map.Active())
	require.Equal(t, 3, res.Map.Count())

	// First-appearance order happens to match the identity here.
	require.Equal(t, []renumber.VertexID{0, 1, 2}, res.Src)
}

// TestRenumber_OptionMisuse: option plumbing errors are programmer errors.
func TestRenumber_OptionMisuse(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = renumber.Renumber([]int{0}, []int{0}, nil)
	})
	require.Panics(t, func() {
		_, _ = renumber.Renumber([]int{0}, []int{0},
			renumber.WithForcedMapping(), renumber.WithIdentityRequired())
	})
}

// TestIdentity_Constructor covers the adjacency-list entry point.
func TestIdentity_Constructor(t *testing.T) {
	t.Parallel()

	m, err := renumber.Identity(3)
	require.NoError(t, err)
	require.False(t, m.Active())
	require.Equal(t, 3, m.Count())

	id, err := m.InternalOf(2)
	require.NoError(t, err)
	require.Equal(t, renumber.VertexID(2), id)

	_, err = m.InternalOf(3)
	require.ErrorIs(t, err, renumber.ErrUnknownIdentifier)

	_, err = renumber.Identity(-1)
	require.ErrorIs(t, err, renumber.ErrOutOfRange)
}

// TestRenumber_Uint64Overflow: values above MaxInt64 cannot take the
// identity path and must fall back to the table.
func TestRenumber_Uint64Overflow(t *testing.T) {
	t.Parallel()

	res, err := renumber.Renumber([]uint64{0, 1<<64 - 1}, []uint64{1<<64 - 1, 0})
	require.NoError(t, err)
	require.True(t, res.Map.Active())
	require.Equal(t, 2, res.Map.Count())
}
