// SPDX-License-Identifier: MIT
// File: handle.go
// Role: The opaque built-graph handle — two-hop enumeration and seeded
//       random sampling over the normalized forward adjacency.
// Determinism:
//   - TwoHop output is sorted ascending by (first, second) with duplicates
//     collapsed; RandomSample under one seed always draws the same set in
//     the same order.
// Concurrency:
//   - The handle is read-only after BuildGraph; all methods are safe for
//     concurrent use.

package backend

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/katalvlaran/plexus/core"
)

// graph is the handle returned by Session.BuildGraph.
type graph struct {
	sess *Session
	fwd  *core.CSR
}

// TwoHop enumerates distinct (first, second) pairs with a path of exactly
// two forward edges between them. starts nil means every vertex. A vertex
// reachable from itself across a 2-cycle yields the (u, u) pair — the
// enumeration is purely structural.
//
// Errors:
//   - core.ErrOutOfRange when validate is set and a start ID falls outside
//     [0, V); ctx.Err() on cancellation between start vertices.
//
// Complexity: O(Σ_u Σ_{v∈N(u)} deg(v) + P log P) for P produced pairs.
func (h *graph) TwoHop(ctx context.Context, starts []core.VertexID, validate bool) (first, second []core.VertexID, err error) {
	v := h.fwd.NumVertices()
	if starts == nil {
		starts = make([]core.VertexID, v)
		for i := range starts {
			starts[i] = core.VertexID(i)
		}
	} else if validate {
		for i, u := range starts {
			if int(u) < 0 || int(u) >= v {
				return nil, nil, fmt.Errorf("backend: start[%d]=%d outside [0, %d): %w",
					i, u, v, core.ErrOutOfRange)
			}
		}
	}

	pairs := make(map[[2]core.VertexID]struct{})
	for _, u := range starts {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		for _, mid := range h.fwd.Row(u) {
			for _, w := range h.fwd.Row(mid) {
				pairs[[2]core.VertexID{u, w}] = struct{}{}
			}
		}
	}

	ordered := make([][2]core.VertexID, 0, len(pairs))
	for p := range pairs {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(a, b int) bool {
		if ordered[a][0] != ordered[b][0] {
			return ordered[a][0] < ordered[b][0]
		}
		return ordered[a][1] < ordered[b][1]
	})

	first = make([]core.VertexID, len(ordered))
	second = make([]core.VertexID, len(ordered))
	for i, p := range ordered {
		first[i], second[i] = p[0], p[1]
	}

	h.sess.log.Debug("two-hop answered",
		slog.String("session", h.sess.id.String()),
		slog.Int("starts", len(starts)),
		slog.Int("pairs", len(ordered)),
	)
	return first, second, nil
}

// RandomSample draws count distinct vertices under seed. count < 0 returns
// every vertex in ascending order; a seeded draw returns a prefix of the
// seed's permutation — deterministic, order backend-defined.
//
// Errors:
//   - core.ErrOutOfRange when count exceeds V; ctx.Err() on cancellation.
func (h *graph) RandomSample(ctx context.Context, seed int64, count int) ([]core.VertexID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v := h.fwd.NumVertices()
	if count > v {
		return nil, fmt.Errorf("backend: sample of %d from %d vertices: %w",
			count, v, core.ErrOutOfRange)
	}

	out := make([]core.VertexID, 0, v)
	if count < 0 {
		for i := 0; i < v; i++ {
			out = append(out, core.VertexID(i))
		}
	} else {
		perm := rand.New(rand.NewSource(seed)).Perm(v)
		for _, p := range perm[:count] {
			out = append(out, core.VertexID(p))
		}
	}

	h.sess.log.Debug("sample drawn",
		slog.String("session", h.sess.id.String()),
		slog.Int64("seed", seed),
		slog.Int("count", len(out)),
	)
	return out, nil
}
