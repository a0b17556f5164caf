// SPDX-License-Identifier: MIT
// File: session.go
// Role: The Session — explicit backend identity, its options, and the
//       BuildGraph entry point that normalizes either payload format into
//       the handle's internal forward adjacency.
// Concurrency:
//   - A Session is stateless after construction and safe for concurrent
//     BuildGraph calls; handles it returns are read-only and equally safe.

package backend

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/plexus/core"
)

// Option mutates the Session configuration.
type Option func(*Session)

// WithLogger attaches a structured logger; builds and queries log at Debug.
// A nil logger keeps the discard default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// Session is one explicit backend session. It implements core.Backend.
type Session struct {
	id  uuid.UUID
	log *slog.Logger
}

// New constructs a Session with a fresh UUID identity.
func New(opts ...Option) *Session {
	s := &Session{
		id:  uuid.New(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID { return s.id }

// BuildGraph validates (on request) and normalizes the payload into an
// opaque handle holding a forward adjacency. The arrays in spec are read,
// never mutated, and never retained mutably: normalization always copies.
//
// Implementation stages:
//   - Stage 1: payload presence — the field named by spec.Format must be
//     populated.
//   - Stage 2: optional validation — structural invariants of the payload,
//     V agreement, and (for renumbered payloads) exact [0, V) coverage via
//     a roaring bitmap.
//   - Stage 3: normalization — expand a transposed CSR or sort a COO into
//     the handle's forward adjacency.
//
// Errors:
//   - core.ErrFormatValidation, ctx.Err().
func (s *Session) BuildGraph(ctx context.Context, spec core.BuildSpec) (core.BackendGraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var fwd *core.CSR
	switch spec.Format {
	case core.FormatCOO:
		if spec.COO == nil {
			return nil, fmt.Errorf("backend: %s spec without payload: %w",
				spec.Format, core.ErrFormatValidation)
		}
		if spec.Validate {
			if err := spec.COO.Validate(spec.NumVertices); err != nil {
				return nil, err
			}
			if err := checkCoverage(spec, spec.COO.Src, spec.COO.Dst); err != nil {
				return nil, err
			}
		}
		fwd = spec.COO.ToCSR(int(spec.NumVertices), false)

	case core.FormatCSR:
		if spec.CSR == nil {
			return nil, fmt.Errorf("backend: %s spec without payload: %w",
				spec.Format, core.ErrFormatValidation)
		}
		if spec.Validate {
			if err := spec.CSR.Validate(); err != nil {
				return nil, err
			}
			if int64(spec.CSR.NumVertices()) != spec.NumVertices {
				return nil, fmt.Errorf("backend: offsets describe %d vertices, spec says %d: %w",
					spec.CSR.NumVertices(), spec.NumVertices, core.ErrFormatValidation)
			}
		}
		if spec.StoreTransposed {
			// Rows are destinations; regroup into forward orientation.
			fwd = spec.CSR.ToCOO(true).ToCSR(int(spec.NumVertices), false)
		} else {
			fwd = spec.CSR.ToCOO(false).ToCSR(int(spec.NumVertices), false)
		}

	default:
		return nil, fmt.Errorf("backend: format %s undefined: %w",
			spec.Format, core.ErrFormatValidation)
	}

	s.log.Debug("graph built",
		slog.String("session", s.id.String()),
		slog.String("format", spec.Format.String()),
		slog.Int64("vertices", spec.NumVertices),
		slog.Int("edges", fwd.Len()),
		slog.Bool("symmetric", spec.Properties.IsSymmetric),
		slog.Bool("multigraph", spec.Properties.IsMultigraph),
	)
	return &graph{sess: s, fwd: fwd}, nil
}

// checkCoverage enforces the renumbered-payload contract: endpoint IDs
// cover [0, V) exactly, no gaps. Identity payloads (spec.Renumber false)
// may legitimately have isolated vertices, so only renumbered ones are
// held to full coverage.
func checkCoverage(spec core.BuildSpec, src, dst []core.VertexID) error {
	if !spec.Renumber {
		return nil
	}
	seen := roaring.New()
	for _, id := range src {
		seen.Add(uint32(id))
	}
	for _, id := range dst {
		seen.Add(uint32(id))
	}
	if spec.NumVertices == 0 && seen.IsEmpty() {
		return nil
	}
	if seen.GetCardinality() != uint64(spec.NumVertices) ||
		seen.Minimum() != 0 || int64(seen.Maximum()) != spec.NumVertices-1 {
		return fmt.Errorf("backend: renumbered ids do not cover [0, %d) exactly: %w",
			spec.NumVertices, core.ErrFormatValidation)
	}
	return nil
}
