// SPDX-License-Identifier: MIT
// File: symmetrize.go
// Role: Expansion, canonical ordering, and duplicate collapse.
// Determinism:
//   - Symmetric output is sorted ascending by (src, dst); equal pairs keep
//     input order (stable sort), which makes MergeLast well-defined.
// Concurrency:
//   - Pure function: no shared state, no locks.

package symmetrize

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/plexus/renumber"
)

// Result is the canonical edge set produced by Symmetrize. All slices are
// freshly allocated; absent attributes stay nil.
type Result struct {
	Src       []renumber.VertexID
	Dst       []renumber.VertexID
	Weights   []float64
	EdgeIDs   []int64
	EdgeTypes []int32
}

// Len returns the stored edge count E.
func (r *Result) Len() int { return len(r.Src) }

// Symmetrize converts a directed edge set into canonical undirected storage
// form, or passes it through unchanged when WithSymmetric(false) is given.
//
// Implementation stages:
//   - Stage 1: resolve options; validate column/attribute alignment.
//   - Stage 2: passthrough path — copy input value-for-value and return.
//   - Stage 3: symmetric path — reject edge IDs/types, mirror every (u,v)
//     with u≠v, emit self-loops once.
//   - Stage 4: canonical stable sort by (src, dst).
//   - Stage 5: multi-edges keep duplicates; otherwise duplicate pairs
//     collapse and weights merge under the configured MergePolicy.
//
// Returns:
//   - *Result with the closure invariant: (u,v) present ⇔ (v,u) present
//     for u≠v, attributes identical on both orientations.
//
// Errors:
//   - ErrLengthMismatch, ErrConflictingAttributes.
//
// Complexity:
//   - Time O(E log E) symmetric, O(E) passthrough; space O(E).
func Symmetrize(src, dst []renumber.VertexID, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts...)

	e := len(src)
	if len(dst) != e {
		return nil, fmt.Errorf("symmetrize: src length %d, dst length %d: %w", e, len(dst), ErrLengthMismatch)
	}
	if cfg.weights != nil && len(cfg.weights) != e {
		return nil, fmt.Errorf("symmetrize: weights length %d, edges %d: %w", len(cfg.weights), e, ErrLengthMismatch)
	}
	if cfg.edgeIDs != nil && len(cfg.edgeIDs) != e {
		return nil, fmt.Errorf("symmetrize: edge ids length %d, edges %d: %w", len(cfg.edgeIDs), e, ErrLengthMismatch)
	}
	if cfg.edgeTypes != nil && len(cfg.edgeTypes) != e {
		return nil, fmt.Errorf("symmetrize: edge types length %d, edges %d: %w", len(cfg.edgeTypes), e, ErrLengthMismatch)
	}

	if !cfg.symmetric {
		return passthrough(src, dst, cfg), nil
	}

	if cfg.edgeIDs != nil || cfg.edgeTypes != nil {
		return nil, fmt.Errorf("symmetrize: mirrored edges would carry undefined identities: %w",
			ErrConflictingAttributes)
	}
	return symmetric(src, dst, cfg), nil
}

// passthrough copies the input verbatim. Duplicates survive, order is
// preserved, attributes travel as-is.
func passthrough(src, dst []renumber.VertexID, cfg options) *Result {
	out := &Result{
		Src: append([]renumber.VertexID(nil), src...),
		Dst: append([]renumber.VertexID(nil), dst...),
	}
	if cfg.weights != nil {
		out.Weights = append([]float64(nil), cfg.weights...)
	}
	if cfg.edgeIDs != nil {
		out.EdgeIDs = append([]int64(nil), cfg.edgeIDs...)
	}
	if cfg.edgeTypes != nil {
		out.EdgeTypes = append([]int32(nil), cfg.edgeTypes...)
	}
	return out
}

// symmetric mirrors, sorts canonically, and (unless multi-edges) collapses
// duplicate pairs under cfg.policy.
func symmetric(src, dst []renumber.VertexID, cfg options) *Result {
	e := len(src)
	weighted := cfg.weights != nil

	// Stage 3: expansion. Mirrors are appended right after their original,
	// so append order ascends with input index — the stable sort below
	// turns that into well-defined "last write" semantics per pair.
	es := make([]renumber.VertexID, 0, 2*e)
	ed := make([]renumber.VertexID, 0, 2*e)
	var ew []float64
	if weighted {
		ew = make([]float64, 0, 2*e)
	}
	for i := 0; i < e; i++ {
		u, v := src[i], dst[i]
		es = append(es, u)
		ed = append(ed, v)
		if weighted {
			ew = append(ew, cfg.weights[i])
		}
		if u != v {
			es = append(es, v)
			ed = append(ed, u)
			if weighted {
				ew = append(ew, cfg.weights[i])
			}
		}
	}

	// Stage 4: canonical order.
	perm := make([]int, len(es))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		pa, pb := perm[a], perm[b]
		if es[pa] != es[pb] {
			return es[pa] < es[pb]
		}
		return ed[pa] < ed[pb]
	})

	if cfg.multiEdges {
		out := &Result{
			Src: make([]renumber.VertexID, len(perm)),
			Dst: make([]renumber.VertexID, len(perm)),
		}
		if weighted {
			out.Weights = make([]float64, len(perm))
		}
		for i, p := range perm {
			out.Src[i] = es[p]
			out.Dst[i] = ed[p]
			if weighted {
				out.Weights[i] = ew[p]
			}
		}
		return out
	}

	// Stage 5: collapse runs of equal (src, dst).
	out := &Result{
		Src: make([]renumber.VertexID, 0, len(perm)),
		Dst: make([]renumber.VertexID, 0, len(perm)),
	}
	if weighted {
		out.Weights = make([]float64, 0, len(perm))
	}
	for i := 0; i < len(perm); {
		p := perm[i]
		u, v := es[p], ed[p]
		var w float64
		if weighted {
			w = ew[p]
		}
		j := i + 1
		for ; j < len(perm); j++ {
			q := perm[j]
			if es[q] != u || ed[q] != v {
				break
			}
			if weighted {
				w = mergeWeights(w, ew[q], cfg.policy)
			}
		}
		out.Src = append(out.Src, u)
		out.Dst = append(out.Dst, v)
		if weighted {
			out.Weights = append(out.Weights, w)
		}
		i = j
	}
	return out
}

// mergeWeights folds the next duplicate weight into the accumulator.
func mergeWeights(acc, next float64, p MergePolicy) float64 {
	switch p {
	case MergeLast:
		return next
	case MergeMin:
		if next < acc {
			return next
		}
		return acc
	case MergeMax:
		if next > acc {
			return next
		}
		return acc
	default: // MergeSum; WithMergePolicy already rejected unknown values
		return acc + next
	}
}
