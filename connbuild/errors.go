// SPDX-License-Identifier: MIT
// Package: conweave/connbuild
//
// errors.go - sentinel errors for the connbuild package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context (rule name, family) via %w wrapping.
//   - No operation in this package panics at runtime; every failure mode
//     below is deterministic given its inputs and is never retried.
package connbuild

import "errors"

// ErrDuplicateRule indicates that a factory was registered under a rule name
// already bound within the same family. Registration order must not decide
// which factory wins, so the second registration fails at startup.
// Usage: if errors.Is(err, ErrDuplicateRule) { /* build misconfiguration */ }.
var ErrDuplicateRule = errors.New("connbuild: rule already registered")

// ErrRegistryFrozen indicates a registration attempted after Freeze. The
// populate phase is over; the rule tables are immutable for the remainder of
// the registry's lifetime.
// Usage: if errors.Is(err, ErrRegistryFrozen) { /* register during startup */ }.
var ErrRegistryFrozen = errors.New("connbuild: registry is frozen")

// ErrNilFactory indicates a registration with a nil factory value.
// Usage: if errors.Is(err, ErrNilFactory) { /* supply a factory */ }.
var ErrNilFactory = errors.New("connbuild: nil factory")

// ErrUnknownRule indicates a build or lookup referencing a rule name with no
// bound factory in the requested family. There is no fallback to a default
// strategy; the wrapped message names both the rule and the family.
// Usage: if errors.Is(err, ErrUnknownRule) { /* check the rule name */ }.
var ErrUnknownRule = errors.New("connbuild: unknown rule")

// ErrNilCollection indicates a build with a nil source or target collection
// handle.
// Usage: if errors.Is(err, ErrNilCollection) { /* pass both collections */ }.
var ErrNilCollection = errors.New("connbuild: nil collection")

// ErrNoSynConfigs indicates a build with an empty synapse-configuration
// sequence; every build needs at least one. Per-element well-formedness is
// delegated to the constructed strategy.
// Usage: if errors.Is(err, ErrNoSynConfigs) { /* supply syn configs */ }.
var ErrNoSynConfigs = errors.New("connbuild: at least one synapse configuration is required")

// ErrBadCollection indicates invalid parameters to NewRoundRobin (negative
// size, non-positive period, or an out-of-range first owner).
// Usage: if errors.Is(err, ErrBadCollection) { /* fix the parameters */ }.
var ErrBadCollection = errors.New("connbuild: invalid collection parameters")
