// SPDX-License-Identifier: MIT

// Package renumber: functional configuration for the Renumber entry point.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid option plumbing
//     (programmer error); user-data problems surface as sentinel errors.

package renumber

// Defaults (single source of truth).
const (
	// DefaultForceMapping keeps the automatic identity skip enabled: dense
	// non-negative integer inputs translate by checked cast, without a table.
	DefaultForceMapping = false

	// DefaultIdentityRequired leaves mode selection to the probe: inputs
	// that cannot be used verbatim are renumbered instead of rejected.
	DefaultIdentityRequired = false
)

// Panic messages (programmer errors only).
const (
	panicNilOption      = "renumber: nil Option provided"
	panicOptionConflict = "renumber: WithForcedMapping and WithIdentityRequired are mutually exclusive"
)

// options carries the resolved configuration for one Renumber call.
type options struct {
	forceMapping     bool // always materialize an explicit table
	identityRequired bool // reject inputs that cannot use the identity path
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		forceMapping:     DefaultForceMapping,
		identityRequired: DefaultIdentityRequired,
	}
}

// Option mutates the Renumber configuration.
type Option func(*options)

// WithForcedMapping always materializes an explicit translation table, even
// when the input is already a dense non-negative integer set. Use it when a
// caller needs Map.Active()==true guarantees (for example, to serialize the
// table) regardless of input shape.
func WithForcedMapping() Option {
	return func(o *options) { o.forceMapping = true }
}

// WithIdentityRequired disables renumbering: the input must already be a
// dense non-negative built-in-integer set in [0, V). Anything else fails
// with ErrInvalidIdentifier instead of being silently renumbered. This is
// the caller-forced passthrough mode.
func WithIdentityRequired() Option {
	return func(o *options) { o.identityRequired = true }
}

// gatherOptions folds opts over the defaults and enforces cross-flag
// invariants. Nil options and contradictory combinations are programmer
// errors and panic with a stable message.
func gatherOptions(opts ...Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			panic(panicNilOption)
		}
		opt(&cfg)
	}
	if cfg.forceMapping && cfg.identityRequired {
		panic(panicOptionConflict)
	}
	return cfg
}
