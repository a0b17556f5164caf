// SPDX-License-Identifier: MIT

// Package backend is the in-process reference implementation of the
// core.Backend boundary: an explicit Session value that builds opaque
// graph handles and answers the delegated queries (two-hop enumeration,
// random vertex sampling) over plain Go slices.
//
// It exists for two reasons: it makes the module usable without any
// external compute layer, and it pins the boundary contract that a real
// accelerator-backed adapter must honor — sorted two-hop output, seeded
// deterministic sampling, validate-on-request semantics, and strictly
// read-only treatment of the arrays it is handed.
//
// Sessions are explicit: construct one with New, wire it into a graph via
// core.WithBackend(session). Each session carries a UUID identity and an
// optional slog.Logger (default: discard) that records builds and queries
// at Debug level.
//
// Determinism: two-hop output is sorted ascending by (first, second);
// RandomSample under equal seeds draws equal samples.
package backend
