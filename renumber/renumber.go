// SPDX-License-Identifier: MIT
// File: renumber.go
// Role: The Renumber entry point — probe, identity skip, table build.
// Determinism:
//   - Table mode assigns IDs in first-appearance order, source column
//     scanned before destination column. Documented and relied upon.
// Concurrency:
//   - Pure function: no shared state, no locks.

package renumber

import (
	"fmt"
	"math"
	"reflect"

	"github.com/RoaringBitmap/roaring/v2"
)

// Result bundles the translated edge columns with the map that produced
// them. Src and Dst are always freshly allocated.
type Result[K comparable] struct {
	Src []VertexID // internal source column, length E
	Dst []VertexID // internal destination column, length E
	Map *Map[K]    // the sealed bidirectional table
}

// Renumber translates two aligned external identifier columns into dense
// internal IDs and returns the sealed Map alongside.
//
// Implementation stages:
//   - Stage 1: resolve options; reject unequal column lengths.
//   - Stage 2: probe for the identity skip — every identifier a built-in
//     non-negative integer AND the distinct set exactly [0, V) (a roaring
//     bitmap carries the density check). WithIdentityRequired makes a
//     failed probe an error; WithForcedMapping skips the probe entirely.
//   - Stage 3: otherwise build the explicit table in first-appearance
//     order and translate both columns through it.
//
// Behavior highlights:
//   - Composite keys are comparable structs used as K; one field per key
//     column. Interface-typed K is validated at runtime: nil values, mixed
//     dynamic types, or non-comparable dynamic types fail with
//     ErrInvalidIdentifier.
//   - Empty input is legal and yields V=0.
//
// Returns:
//   - *Result[K] on success; construction never partially succeeds.
//
// Errors:
//   - ErrLengthMismatch, ErrInvalidIdentifier, ErrTooManyVertices.
//
// Determinism:
//   - Same input, same numbering. Always.
//
// Complexity:
//   - Time O(E), space O(V) (+O(E) probe bitmap in the integer case).
func Renumber[K comparable](src, dst []K, opts ...Option) (*Result[K], error) {
	cfg := gatherOptions(opts...)

	if len(src) != len(dst) {
		return nil, fmt.Errorf("renumber: source length %d, destination length %d: %w",
			len(src), len(dst), ErrLengthMismatch)
	}

	intOf, keyOf, isInt := casters[K]()

	if cfg.identityRequired {
		if !isInt {
			var zero K
			return nil, fmt.Errorf("renumber: identity required but %T is not a built-in integer kind: %w",
				zero, ErrInvalidIdentifier)
		}
		v, ok := denseProbe(src, dst, intOf)
		if !ok {
			return nil, fmt.Errorf("renumber: identity required but identifiers are not dense non-negative integers: %w",
				ErrInvalidIdentifier)
		}
		return identityResult(src, dst, v, intOf, keyOf), nil
	}

	if !cfg.forceMapping && isInt {
		if v, ok := denseProbe(src, dst, intOf); ok {
			return identityResult(src, dst, v, intOf, keyOf), nil
		}
	}

	return mappedResult(src, dst)
}

// Identity returns an identity map over int64 externals for a graph whose
// vertex set is already the dense range [0, count). Adjacency-list
// construction uses it: the offsets table defines V, no columns exist to
// renumber.
func Identity(count int) (*Map[int64], error) {
	if count < 0 {
		return nil, fmt.Errorf("renumber: identity count %d is negative: %w", count, ErrOutOfRange)
	}
	if count > MaxVertexCount {
		return nil, fmt.Errorf("renumber: identity count %d: %w", count, ErrTooManyVertices)
	}
	intOf, keyOf, _ := casters[int64]()
	return &Map[int64]{
		count:    count,
		keyWidth: 1,
		active:   false,
		intOf:    intOf,
		keyOf:    keyOf,
	}, nil
}

// identityResult seals an identity map and casts both columns through it.
// The probe already guaranteed every value lies in [0, v).
func identityResult[K comparable](src, dst []K, v int, intOf func(K) (int64, bool), keyOf func(int64) K) *Result[K] {
	m := &Map[K]{
		count:    v,
		keyWidth: 1,
		active:   false,
		intOf:    intOf,
		keyOf:    keyOf,
	}
	cast := func(ks []K) []VertexID {
		out := make([]VertexID, len(ks))
		for i, k := range ks {
			n, _ := intOf(k)
			out[i] = VertexID(n)
		}
		return out
	}
	return &Result[K]{Src: cast(src), Dst: cast(dst), Map: m}
}

// mappedResult builds the explicit table in first-appearance order and
// translates both columns through it.
func mappedResult[K comparable](src, dst []K) (*Result[K], error) {
	if err := validateKeys(src, dst); err != nil {
		return nil, err
	}

	m := &Map[K]{
		toInternal: make(map[K]VertexID, len(src)),
		active:     true,
	}
	assign := func(k K) error {
		if _, ok := m.toInternal[k]; ok {
			return nil
		}
		if len(m.toExternal) >= MaxVertexCount {
			return fmt.Errorf("renumber: distinct identifier #%d: %w", len(m.toExternal)+1, ErrTooManyVertices)
		}
		m.toInternal[k] = VertexID(len(m.toExternal))
		m.toExternal = append(m.toExternal, k)
		return nil
	}
	translate := func(ks []K) ([]VertexID, error) {
		out := make([]VertexID, len(ks))
		for i, k := range ks {
			if err := assign(k); err != nil {
				return nil, err
			}
			out[i] = m.toInternal[k]
		}
		return out, nil
	}

	is, err := translate(src)
	if err != nil {
		return nil, err
	}
	ids, err := translate(dst)
	if err != nil {
		return nil, err
	}

	m.count = len(m.toExternal)
	m.keyWidth = keyWidthOf(src)
	return &Result[K]{Src: is, Dst: ids, Map: m}, nil
}

// denseProbe reports whether the union of both columns is exactly the
// contiguous integer range [0, V), and that V. A roaring bitmap keeps the
// distinct-set bookkeeping compact for arbitrarily skewed inputs.
func denseProbe[K comparable](src, dst []K, intOf func(K) (int64, bool)) (int, bool) {
	seen := roaring.New()
	scan := func(ks []K) bool {
		for _, k := range ks {
			v, ok := intOf(k)
			// v must also leave room for V=v+1 within the 32-bit ID space.
			if !ok || v < 0 || v >= math.MaxInt32 {
				return false
			}
			seen.Add(uint32(v))
		}
		return true
	}
	if !scan(src) || !scan(dst) {
		return 0, false
	}
	if seen.IsEmpty() {
		return 0, true
	}
	card := seen.GetCardinality()
	if seen.Minimum() != 0 || uint64(seen.Maximum()) != card-1 {
		return 0, false
	}
	return int(card), true
}

// validateKeys guards the table build against interface-typed K, where the
// compiler cannot enforce a single comparable identifier shape. Concrete K
// returns immediately: comparability is compile-checked there.
func validateKeys[K comparable](src, dst []K) error {
	var zero K
	if reflect.TypeOf(zero) != nil {
		return nil
	}
	var want reflect.Type
	check := func(col string, ks []K) error {
		for i, k := range ks {
			t := reflect.TypeOf(k)
			if t == nil {
				return fmt.Errorf("renumber: %s[%d] is nil: %w", col, i, ErrInvalidIdentifier)
			}
			if !t.Comparable() {
				return fmt.Errorf("renumber: %s[%d] has non-comparable dynamic type %s: %w",
					col, i, t, ErrInvalidIdentifier)
			}
			if want == nil {
				want = t
			} else if t != want {
				return fmt.Errorf("renumber: %s[%d] has dynamic type %s, want %s: %w",
					col, i, t, want, ErrInvalidIdentifier)
			}
		}
		return nil
	}
	if err := check("src", src); err != nil {
		return err
	}
	return check("dst", dst)
}

// casters resolves the built-in integer kind of K, if any. The returned
// closures convert K⇄int64 for the identity path; ok=false means K is not
// a supported integer kind and the identity skip cannot apply.
func casters[K comparable]() (intOf func(K) (int64, bool), keyOf func(int64) K, ok bool) {
	var zero K
	switch any(zero).(type) {
	case int:
		return func(k K) (int64, bool) { return int64(any(k).(int)), true },
			func(v int64) K { return any(int(v)).(K) }, true
	case int32:
		return func(k K) (int64, bool) { return int64(any(k).(int32)), true },
			func(v int64) K { return any(int32(v)).(K) }, true
	case int64:
		return func(k K) (int64, bool) { return any(k).(int64), true },
			func(v int64) K { return any(v).(K) }, true
	case uint32:
		return func(k K) (int64, bool) { return int64(any(k).(uint32)), true },
			func(v int64) K { return any(uint32(v)).(K) }, true
	case uint:
		return func(k K) (int64, bool) {
				u := any(k).(uint)
				if uint64(u) > math.MaxInt64 {
					return 0, false
				}
				return int64(u), true
			},
			func(v int64) K { return any(uint(v)).(K) }, true
	case uint64:
		return func(k K) (int64, bool) {
				u := any(k).(uint64)
				if u > math.MaxInt64 {
					return 0, false
				}
				return int64(u), true
			},
			func(v int64) K { return any(uint64(v)).(K) }, true
	default:
		return nil, nil, false
	}
}
