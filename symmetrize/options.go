// SPDX-License-Identifier: MIT

// Package symmetrize: functional configuration for the Symmetrize entry
// point. This file defines:
//   - MergePolicy (how duplicate undirected weights collapse),
//   - Option / options with documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: merge results never depend on input order.
//   - No dead switches: every flag changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid option plumbing
//     (programmer error); user-data problems surface as sentinel errors.

package symmetrize

import "fmt"

// MergePolicy selects how the weights of duplicate undirected edges
// collapse into one value when multi-edges are disabled.
type MergePolicy uint8

const (
	// MergeSum adds all duplicate weights (the undirected-projection
	// default: two opposite directed edges of weight w1 and w2 become one
	// undirected edge of weight w1+w2).
	MergeSum MergePolicy = iota

	// MergeLast keeps the weight of the duplicate that appeared last in
	// the input (last write wins).
	MergeLast

	// MergeMin keeps the smallest duplicate weight.
	MergeMin

	// MergeMax keeps the largest duplicate weight.
	MergeMax

	mergePolicyEnd // sentinel for validation; keep last
)

// String returns the policy name for diagnostics.
func (p MergePolicy) String() string {
	switch p {
	case MergeSum:
		return "MergeSum"
	case MergeLast:
		return "MergeLast"
	case MergeMin:
		return "MergeMin"
	case MergeMax:
		return "MergeMax"
	default:
		return fmt.Sprintf("MergePolicy(%d)", uint8(p))
	}
}

// Defaults (single source of truth).
const (
	// DefaultSymmetric: the package's verb is the default action.
	DefaultSymmetric = true

	// DefaultMultiEdges: duplicates collapse unless multi-edges are wanted.
	DefaultMultiEdges = false

	// DefaultMergePolicy: weights of collapsed duplicates are summed.
	DefaultMergePolicy = MergeSum
)

// Panic messages (programmer errors only).
const (
	panicNilOption     = "symmetrize: nil Option provided"
	panicUnknownPolicy = "symmetrize: unknown MergePolicy"
)

// options carries the resolved configuration for one Symmetrize call.
type options struct {
	symmetric  bool
	multiEdges bool
	policy     MergePolicy
	weights    []float64
	edgeIDs    []int64
	edgeTypes  []int32
}

func defaultOptions() options {
	return options{
		symmetric:  DefaultSymmetric,
		multiEdges: DefaultMultiEdges,
		policy:     DefaultMergePolicy,
	}
}

// Option mutates the Symmetrize configuration.
type Option func(*options)

// WithSymmetric selects between the symmetric path (true) and the directed
// passthrough (false).
func WithSymmetric(symmetric bool) Option {
	return func(o *options) { o.symmetric = symmetric }
}

// WithMultiEdges(true) keeps duplicate (u,v) pairs as parallel edges on the
// symmetric path instead of collapsing them. It has no effect on the
// passthrough path, which never merges anything.
func WithMultiEdges(multi bool) Option {
	return func(o *options) { o.multiEdges = multi }
}

// WithMergePolicy selects the duplicate-weight collapse rule. Panics on an
// undefined policy value (programmer error).
func WithMergePolicy(p MergePolicy) Option {
	if p >= mergePolicyEnd {
		panic(panicUnknownPolicy)
	}
	return func(o *options) { o.policy = p }
}

// WithWeights attaches the per-edge weight column (length E, aligned with
// the source/destination columns).
func WithWeights(w []float64) Option {
	return func(o *options) { o.weights = w }
}

// WithEdgeIDs attaches the per-edge identity column. Only legal together
// with WithSymmetric(false); the symmetric path rejects it.
func WithEdgeIDs(ids []int64) Option {
	return func(o *options) { o.edgeIDs = ids }
}

// WithEdgeTypes attaches the per-edge type column. Only legal together
// with WithSymmetric(false); the symmetric path rejects it.
func WithEdgeTypes(types []int32) Option {
	return func(o *options) { o.edgeTypes = types }
}

// gatherOptions folds opts over the defaults. Nil options panic with a
// stable message.
func gatherOptions(opts ...Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			panic(panicNilOption)
		}
		opt(&cfg)
	}
	return cfg
}
