// SPDX-License-Identifier: MIT
// File: cache.go
// Role: The representation cache — lazy, guarded derivation of the COO,
//       forward CSR, and transposed CSR views from whichever view exists.
// Determinism:
//   - Derivations are pure functions of the stored arrays (coo.go,
//     csr.go); deriving a view twice yields identical arrays.
// Concurrency:
//   - Each view derives at most once at a time: a singleflight group keyed
//     by view name (and replacement generation) collapses concurrent first
//     accesses, and the RWMutex publishes only fully-built arrays. Callers
//     observe "absent" or "complete", never a partially-populated view.
//   - The generation is captured when a derivation starts and re-checked
//     under the write lock before publishing: a derivation raced by
//     ReplaceEdgeList is discarded instead of leaking a stale view into
//     the replaced graph.

package core

import "fmt"

// flight keys, one per derivable artifact.
const (
	flightCOO        = "coo"
	flightForward    = "fwd"
	flightTransposed = "tsp"
	flightHandle     = "handle"
)

// flightKey scopes a derivation key to one replacement generation, so new
// callers never join a flight started before a ReplaceEdgeList swap.
func flightKey(name string, gen uint64) string {
	return fmt.Sprintf("%s@%d", name, gen)
}

// EnsureCOO returns the coordinate view, deriving it from whichever
// adjacency view is present on first access. The producing view is never
// discarded.
//
// Errors:
//   - ErrEmptyGraph when no view exists at all (zero-value Graph).
//
// Complexity: O(1) cached, O(V + E) on first derivation.
func (g *Graph[K]) EnsureCOO() (*COO, error) {
	g.mu.RLock()
	if g.coo != nil {
		defer g.mu.RUnlock()
		g.stats.cooHits.Add(1)
		return g.coo, nil
	}
	gen := g.gen
	g.mu.RUnlock()

	res, err, _ := g.flight.Do(flightKey(flightCOO, gen), func() (any, error) {
		g.mu.RLock()
		coo, fwd, tsp := g.coo, g.fwd, g.tsp
		g.mu.RUnlock()
		if coo != nil { // lost the race to an earlier flight
			return coo, nil
		}

		var derived *COO
		switch {
		case fwd != nil:
			derived = fwd.ToCOO(false)
		case tsp != nil:
			derived = tsp.ToCOO(true)
		default:
			return nil, ErrEmptyGraph
		}

		g.mu.Lock()
		if g.gen == gen { // discard if a replacement overtook this flight
			g.coo = derived
			g.stats.cooDerivations.Add(1)
		}
		g.mu.Unlock()
		return derived, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*COO), nil
}

// EnsureForwardCSR returns the forward adjacency view, deriving it from
// the coordinate view on first access (which may itself be derived from
// the transposed view first). Rows are sorted ascending — the invariant
// every binary-search consumer relies on.
//
// Errors:
//   - ErrEmptyGraph when no view exists at all.
//
// Complexity: O(1) cached, O(E log E) on first derivation.
func (g *Graph[K]) EnsureForwardCSR() (*CSR, error) {
	g.mu.RLock()
	if g.fwd != nil {
		defer g.mu.RUnlock()
		g.stats.fwdHits.Add(1)
		return g.fwd, nil
	}
	gen := g.gen
	g.mu.RUnlock()

	res, err, _ := g.flight.Do(flightKey(flightForward, gen), func() (any, error) {
		for {
			g.mu.RLock()
			fwd, cur := g.fwd, g.gen
			g.mu.RUnlock()
			if fwd != nil {
				return fwd, nil
			}

			coo, err := g.EnsureCOO()
			if err != nil {
				return nil, err
			}
			v, err := g.NumVertices()
			if err != nil {
				return nil, err
			}
			g.mu.RLock()
			replaced := g.gen != cur
			g.mu.RUnlock()
			if replaced { // the arrays may disagree; re-read both
				continue
			}

			derived := coo.ToCSR(int(v), false)
			g.mu.Lock()
			if g.gen == gen { // discard if a replacement overtook this flight
				g.fwd = derived
				g.stats.fwdDerivations.Add(1)
			}
			g.mu.Unlock()
			return derived, nil
		}
	})
	if err != nil {
		return nil, err
	}
	return res.(*CSR), nil
}

// EnsureTransposedCSR returns the transposed adjacency view. For
// undirected graphs the stored set is symmetric, so the forward view IS
// the transposed view and is returned shared (accounted against the
// forward counters). Directed graphs derive a separate grouping by
// destination.
//
// Errors:
//   - ErrEmptyGraph when no view exists at all.
//
// Complexity: O(1) cached or shared, O(E log E) on first derivation.
func (g *Graph[K]) EnsureTransposedCSR() (*CSR, error) {
	g.mu.RLock()
	directed := g.props.Directed
	g.mu.RUnlock()
	if !directed {
		return g.EnsureForwardCSR()
	}

	g.mu.RLock()
	if g.tsp != nil {
		defer g.mu.RUnlock()
		g.stats.tspHits.Add(1)
		return g.tsp, nil
	}
	gen := g.gen
	g.mu.RUnlock()

	res, err, _ := g.flight.Do(flightKey(flightTransposed, gen), func() (any, error) {
		for {
			g.mu.RLock()
			tsp, cur := g.tsp, g.gen
			g.mu.RUnlock()
			if tsp != nil {
				return tsp, nil
			}

			coo, err := g.EnsureCOO()
			if err != nil {
				return nil, err
			}
			v, err := g.NumVertices()
			if err != nil {
				return nil, err
			}
			g.mu.RLock()
			replaced := g.gen != cur
			g.mu.RUnlock()
			if replaced { // the arrays may disagree; re-read both
				continue
			}

			derived := coo.ToCSR(int(v), true)
			g.mu.Lock()
			if g.gen == gen { // discard if a replacement overtook this flight
				g.tsp = derived
				g.stats.tspDerivations.Add(1)
			}
			g.mu.Unlock()
			return derived, nil
		}
	})
	if err != nil {
		return nil, err
	}
	return res.(*CSR), nil
}

// ViewStats returns a point-in-time snapshot of cache activity.
func (g *Graph[K]) ViewStats() ViewStats {
	return ViewStats{
		COOHits:               g.stats.cooHits.Load(),
		COODerivations:        g.stats.cooDerivations.Load(),
		ForwardHits:           g.stats.fwdHits.Load(),
		ForwardDerivations:    g.stats.fwdDerivations.Load(),
		TransposedHits:        g.stats.tspHits.Load(),
		TransposedDerivations: g.stats.tspDerivations.Load(),
		BackendBuilds:         g.stats.backendBuilds.Load(),
	}
}
