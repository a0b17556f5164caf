// SPDX-License-Identifier: MIT
// File: types.go
// Role: VertexID, the bidirectional Map[K], and its lookup surface.
// Determinism:
//   - ToExternal/ToInternal preserve input order; no reordering, ever.
// Concurrency:
//   - Map is sealed at construction; all methods are read-only and safe
//     for concurrent use without locks.

package renumber

import (
	"fmt"
	"math"
	"reflect"
)

// VertexID is the dense internal vertex identifier.
// It is strictly 32-bit: every hot-path array (COO columns, CSR indices)
// is sized by it, so V is capped at MaxVertexCount by construction.
type VertexID int32

// MaxVertexCount is the largest vertex count the internal ID space admits.
const MaxVertexCount = math.MaxInt32

// Map is the bidirectional table between external identifiers of type K and
// internal VertexIDs. It is built exactly once by Renumber (or Identity) and
// is immutable afterward.
//
// Two physical modes back the same contract:
//   - active (Active()==true): explicit hash table + inverse slice;
//   - identity (Active()==false): the input integers already equal their
//     internal IDs, so translation is a range-checked cast and no table
//     is stored at all.
type Map[K comparable] struct {
	toInternal map[K]VertexID // active mode only
	toExternal []K            // active mode only; index = internal ID
	count      int            // V
	keyWidth   int            // composite key column count (struct fields)
	active     bool

	// identity mode casts, set by the probe; nil in active mode.
	intOf func(K) (int64, bool)
	keyOf func(int64) K
}

// Count returns V, the number of distinct vertices covered by the map.
func (m *Map[K]) Count() int { return m.count }

// Active reports whether an explicit translation table was materialized.
// False means the identity skip applied: external identifiers were already
// the dense integer range [0, V).
func (m *Map[K]) Active() bool { return m.active }

// KeyWidth returns the number of columns forming one external identifier:
// the field count for comparable-struct composite keys, 1 otherwise.
func (m *Map[K]) KeyWidth() int { return m.keyWidth }

// InternalOf translates a single external identifier.
// Fails with ErrUnknownIdentifier when the identifier is absent; the map
// never auto-extends.
//
// Complexity: O(1).
func (m *Map[K]) InternalOf(k K) (VertexID, error) {
	if m.active {
		id, ok := m.toInternal[k]
		if !ok {
			return 0, fmt.Errorf("renumber: identifier %v: %w", k, ErrUnknownIdentifier)
		}
		return id, nil
	}
	v, ok := m.intOf(k)
	if !ok || v < 0 || v >= int64(m.count) {
		return 0, fmt.Errorf("renumber: identifier %v: %w", k, ErrUnknownIdentifier)
	}
	return VertexID(v), nil
}

// ExternalOf translates a single internal ID back to its external form.
// Total over [0, V); anything else fails with ErrOutOfRange.
//
// Complexity: O(1).
func (m *Map[K]) ExternalOf(id VertexID) (K, error) {
	var zero K
	if id < 0 || int(id) >= m.count {
		return zero, fmt.Errorf("renumber: id %d outside [0, %d): %w", id, m.count, ErrOutOfRange)
	}
	if m.active {
		return m.toExternal[id], nil
	}
	return m.keyOf(int64(id)), nil
}

// ToInternal translates a batch of external identifiers, preserving order.
// The first unknown identifier aborts the batch with ErrUnknownIdentifier.
//
// Complexity: O(len(ks)).
func (m *Map[K]) ToInternal(ks []K) ([]VertexID, error) {
	out := make([]VertexID, len(ks))
	for i, k := range ks {
		id, err := m.InternalOf(k)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// ToExternal translates a batch of internal IDs, preserving order.
// The first ID outside [0, V) aborts the batch with ErrOutOfRange.
//
// Complexity: O(len(ids)).
func (m *Map[K]) ToExternal(ids []VertexID) ([]K, error) {
	out := make([]K, len(ids))
	for i, id := range ids {
		k, err := m.ExternalOf(id)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}
	return out, nil
}

// keyWidthOf resolves the composite column count for K: the field count of
// a comparable struct, the dynamic type's field count for interface keys
// (resolved from the first element), and 1 for every scalar kind.
func keyWidthOf[K comparable](sample []K) int {
	var zero K
	t := reflect.TypeOf(zero)
	if t == nil { // K is an interface type; inspect the first dynamic value
		if len(sample) == 0 {
			return 1
		}
		t = reflect.TypeOf(sample[0])
		if t == nil {
			return 1
		}
	}
	if t.Kind() == reflect.Struct {
		return t.NumField()
	}
	return 1
}
