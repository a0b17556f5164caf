// SPDX-License-Identifier: MIT
// File: methods_backend.go
// Role: Queries delegated across the compute-backend boundary — two-hop
//       neighborhoods and random vertex sampling. This layer translates
//       identifiers at the boundary; it never computes hops or draws
//       samples itself.
// Concurrency:
//   - The backend handle is built lazily on the first delegated query,
//     under the same singleflight discipline as the view cache.

package core

import (
	"context"
	"fmt"
)

// SampleOption configures RandomVertexSample.
type SampleOption func(*sampleOptions)

type sampleOptions struct {
	count int // -1 = every vertex
	seed  int64
	err   error
}

// WithSampleCount limits the draw to n distinct vertices. Negative n is an
// option violation; n greater than V fails at the backend with
// ErrOutOfRange.
func WithSampleCount(n int) SampleOption {
	return func(o *sampleOptions) {
		if n < 0 {
			if o.err == nil {
				o.err = fmt.Errorf("core: sample count %d negative: %w", n, ErrOptionViolation)
			}
			return
		}
		o.count = n
	}
}

// WithSampleSeed fixes the sampling seed; the default is DefaultSampleSeed.
// Equal seeds draw equal samples.
func WithSampleSeed(seed int64) SampleOption {
	return func(o *sampleOptions) { o.seed = seed }
}

// ensureBackendGraph builds the backend handle on first use and caches it.
// The BuildSpec hands over the format fixed at construction: FormatCOO for
// edge-list graphs, FormatCSR for adjacency-list graphs (transposed when
// StoreTransposed was requested).
func (g *Graph[K]) ensureBackendGraph(ctx context.Context) (BackendGraph, error) {
	g.mu.RLock()
	backend, handle, gen := g.backend, g.handle, g.gen
	g.mu.RUnlock()
	if backend == nil {
		return nil, ErrNoBackend
	}
	if handle != nil {
		return handle, nil
	}

	res, err, _ := g.flight.Do(flightKey(flightHandle, gen), func() (any, error) {
		g.mu.RLock()
		h := g.handle
		g.mu.RUnlock()
		if h != nil {
			return h, nil
		}

		spec, err := g.buildSpec()
		if err != nil {
			return nil, err
		}
		built, err := backend.BuildGraph(ctx, spec)
		if err != nil {
			return nil, err
		}

		g.mu.Lock()
		if g.gen == gen { // discard if a replacement overtook this build
			g.handle = built
			g.stats.backendBuilds.Add(1)
		}
		g.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(BackendGraph), nil
}

// buildSpec assembles the boundary record from the current views.
func (g *Graph[K]) buildSpec() (BuildSpec, error) {
	v, err := g.NumVertices()
	if err != nil {
		return BuildSpec{}, err
	}
	g.mu.RLock()
	spec := BuildSpec{
		Properties: BackendProperties{
			IsMultigraph: g.props.Multigraph,
			IsSymmetric:  !g.props.Directed,
		},
		Format:          g.backendFormat,
		NumVertices:     v,
		StoreTransposed: g.props.StoreTransposed,
		Renumber:        g.rmap.Active(),
		Validate:        g.validate,
	}
	g.mu.RUnlock()

	switch spec.Format {
	case FormatCOO:
		if spec.COO, err = g.EnsureCOO(); err != nil {
			return BuildSpec{}, err
		}
	case FormatCSR:
		if spec.StoreTransposed {
			spec.CSR, err = g.EnsureTransposedCSR()
		} else {
			spec.CSR, err = g.EnsureForwardCSR()
		}
		if err != nil {
			return BuildSpec{}, err
		}
	}
	return spec, nil
}

// TwoHopNeighbors returns every distinct (first, second) pair connected
// across exactly one intermediate vertex, starting from starts (none =
// every vertex). Pair production happens in the backend; this method
// translates identifiers both ways and preserves the adapter's ascending
// (first, second) order.
//
// Errors:
//   - ErrNoBackend, ErrUnknownIdentifier (a start identifier is absent),
//     ErrFormatValidation (malformed adapter reply), backend errors.
func (g *Graph[K]) TwoHopNeighbors(ctx context.Context, starts ...K) ([]Pair[K], error) {
	h, err := g.ensureBackendGraph(ctx)
	if err != nil {
		return nil, err
	}

	var ids []VertexID
	if len(starts) > 0 {
		if ids, err = g.rmap.ToInternal(starts); err != nil {
			return nil, err
		}
	}

	g.mu.RLock()
	validate := g.validate
	g.mu.RUnlock()
	first, second, err := h.TwoHop(ctx, ids, validate)
	if err != nil {
		return nil, err
	}
	if len(first) != len(second) {
		return nil, fmt.Errorf("core: adapter returned %d first ids, %d second ids: %w",
			len(first), len(second), ErrFormatValidation)
	}

	out := make([]Pair[K], len(first))
	for i := range first {
		if out[i].First, err = g.rmap.ExternalOf(first[i]); err != nil {
			return nil, err
		}
		if out[i].Second, err = g.rmap.ExternalOf(second[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RandomVertexSample returns a sample of distinct vertices drawn by the
// backend and translated back to external identifiers. Without
// WithSampleCount every vertex is returned in backend-defined order.
//
// Errors:
//   - ErrOptionViolation, ErrNoBackend, ErrOutOfRange (count exceeds V),
//     backend errors.
func (g *Graph[K]) RandomVertexSample(ctx context.Context, opts ...SampleOption) ([]K, error) {
	cfg := sampleOptions{count: -1, seed: DefaultSampleSeed}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("core: nil SampleOption: %w", ErrOptionViolation)
		}
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	h, err := g.ensureBackendGraph(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := h.RandomSample(ctx, cfg.seed, cfg.count)
	if err != nil {
		return nil, err
	}
	return g.rmap.ToExternal(ids)
}
