// SPDX-License-Identifier: MIT

// Package core: functional configuration for graph construction.
// This file defines:
//   - GraphOption / graphOptions (error-accumulating functional options),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherGraphOptions helper (internal) that enforces invariants.
//
// Unlike the pure-function packages below this one (renumber, symmetrize),
// option misuse here surfaces as ErrOptionViolation rather than a panic:
// construction is the public entry point of the module and its failures
// must be catchable.

package core

import (
	"fmt"

	"github.com/katalvlaran/plexus/symmetrize"
)

// Defaults (single source of truth).
const (
	// DefaultDirected: graphs store the canonical undirected form unless a
	// directed graph is requested.
	DefaultDirected = false

	// DefaultMultiEdges: duplicate pairs collapse unless parallel edges are
	// wanted.
	DefaultMultiEdges = false

	// DefaultStoreTransposed: backend builds hand over the forward
	// orientation.
	DefaultStoreTransposed = false

	// DefaultValidation: expensive structural checks run at construction.
	// Turning them off is the documented performance/safety trade-off —
	// malformed input then produces undefined behavior downstream.
	DefaultValidation = true

	// DefaultMergePolicy mirrors the symmetrize default: duplicate weights
	// are summed.
	DefaultMergePolicy = symmetrize.DefaultMergePolicy

	// DefaultSampleSeed seeds RandomVertexSample when no seed is given.
	DefaultSampleSeed int64 = 42
)

// graphOptions carries the resolved configuration for one construction.
type graphOptions struct {
	directed        bool
	multiEdges      bool
	storeTransposed bool
	validate        bool
	forceRenumber   bool
	identityOnly    bool
	mergePolicy     symmetrize.MergePolicy
	weights         []float64
	edgeIDs         []int64
	edgeTypes       []int32
	backend         Backend

	err error // first violation; construction aborts on it
}

func defaultGraphOptions() graphOptions {
	return graphOptions{
		directed:        DefaultDirected,
		multiEdges:      DefaultMultiEdges,
		storeTransposed: DefaultStoreTransposed,
		validate:        DefaultValidation,
		mergePolicy:     DefaultMergePolicy,
	}
}

// violate records the first violation only; later ones keep it intact.
func (o *graphOptions) violate(format string, args ...any) {
	if o.err == nil {
		args = append(args, ErrOptionViolation)
		o.err = fmt.Errorf("core: "+format+": %w", args...)
	}
}

// GraphOption mutates the construction configuration.
type GraphOption func(*graphOptions)

// WithDirected selects directed (true) or canonical undirected (false)
// storage. The choice is fixed for the lifetime of the graph.
func WithDirected(directed bool) GraphOption {
	return func(o *graphOptions) { o.directed = directed }
}

// WithMultiEdges(true) keeps parallel edges between the same ordered pair
// instead of collapsing them.
func WithMultiEdges(multi bool) GraphOption {
	return func(o *graphOptions) { o.multiEdges = multi }
}

// WithWeights attaches the per-edge weight column (length E, aligned with
// the identifier columns) and marks the graph weighted.
func WithWeights(w []float64) GraphOption {
	return func(o *graphOptions) { o.weights = w }
}

// WithEdgeIDs attaches the per-edge identity column. Only legal on directed
// graphs; symmetrization rejects it with ErrConflictingAttributes.
func WithEdgeIDs(ids []int64) GraphOption {
	return func(o *graphOptions) { o.edgeIDs = ids }
}

// WithEdgeTypes attaches the per-edge type column. Only legal on directed
// graphs; symmetrization rejects it with ErrConflictingAttributes.
func WithEdgeTypes(types []int32) GraphOption {
	return func(o *graphOptions) { o.edgeTypes = types }
}

// WithMergePolicy selects how duplicate undirected weights collapse.
// An undefined policy value is an option violation.
func WithMergePolicy(p symmetrize.MergePolicy) GraphOption {
	return func(o *graphOptions) {
		if p > symmetrize.MergeMax {
			o.violate("merge policy %d undefined", uint8(p))
			return
		}
		o.mergePolicy = p
	}
}

// WithStoreTransposed records that the backend build should receive the
// transposed adjacency orientation (algorithms that traverse in-edges).
func WithStoreTransposed() GraphOption {
	return func(o *graphOptions) { o.storeTransposed = true }
}

// WithValidation toggles the O(E) structural checks at construction and on
// the backend boundary. Default on.
func WithValidation(validate bool) GraphOption {
	return func(o *graphOptions) { o.validate = validate }
}

// WithForcedRenumbering always materializes an explicit translation table,
// even for identifiers that are already dense non-negative integers.
func WithForcedRenumbering() GraphOption {
	return func(o *graphOptions) { o.forceRenumber = true }
}

// WithoutRenumbering disables renumbering: identifiers must already be a
// dense non-negative integer set in [0, V), else construction fails with
// ErrInvalidIdentifier.
func WithoutRenumbering() GraphOption {
	return func(o *graphOptions) { o.identityOnly = true }
}

// WithBackend wires the compute backend session used by delegated queries
// (two-hop, sampling). The handle is built lazily on first such query.
func WithBackend(b Backend) GraphOption {
	return func(o *graphOptions) {
		if b == nil {
			o.violate("nil backend")
			return
		}
		o.backend = b
	}
}

// gatherGraphOptions folds opts over the defaults and enforces cross-flag
// invariants. The first violation aborts construction.
func gatherGraphOptions(opts ...GraphOption) (graphOptions, error) {
	cfg := defaultGraphOptions()
	for _, opt := range opts {
		if opt == nil {
			cfg.violate("nil GraphOption")
			break
		}
		opt(&cfg)
	}
	if cfg.err == nil && cfg.forceRenumber && cfg.identityOnly {
		cfg.violate("WithForcedRenumbering and WithoutRenumbering are mutually exclusive")
	}
	if cfg.err != nil {
		return graphOptions{}, cfg.err
	}
	return cfg, nil
}
