// SPDX-License-Identifier: MIT
// Package: conweave/connbuild
//
// types.go - the contracts between the dispatch core, external entity
// collections, and strategy implementations.
//
// Design contract (strict):
//   - Collections are opaque, ordered, read-only views into externally owned
//     data; the dispatch core never mutates them and never copies them.
//   - Configuration maps pass through the dispatch layer unexamined.
//   - Factories are plain function values: one concrete factory per strategy,
//     registered by rule name. The core holds no knowledge of any strategy.
//   - A constructed builder belongs to the caller; the registry keeps no
//     reference to it.
package connbuild

// Collection is an ordered, read-only view over an externally owned entity
// collection. Implementations must provide stable identity (the same i maps
// to the same ID for the collection's lifetime) and a queryable mapping from
// member to its owning-worker label. How that label is computed is the
// collection's business; strategies only need to read it.
//
// Implementations must be safe for concurrent readers.
type Collection interface {
	// Len returns the number of members.
	Len() int

	// ID returns the stable identifier of member i. Precondition: 0 <= i < Len().
	ID(i int) int64

	// OwnerOf returns the owning-worker label (phase) of member i.
	// Precondition: 0 <= i < Len().
	OwnerOf(i int) int64
}

// ConnConfig is an opaque connection-level configuration map. The dispatch
// layer forwards it to the selected factory without inspecting a single key.
type ConnConfig map[string]any

// SynConfig is one opaque per-synapse configuration map. Builds take an
// ordered, non-empty sequence of these; element well-formedness is validated
// by the constructed strategy, not here.
type SynConfig map[string]any

// ConnBuilder is a configured bipartite connection strategy instance, the
// product of a ConnFactory. Connection generation itself happens outside
// this package; ownership of the instance transfers to the caller.
type ConnBuilder interface {
	// Rule reports the registry key this builder was constructed under.
	Rule() string
}

// ThirdBuilder is a configured third-entity strategy instance: a strategy
// that additionally instantiates an auxiliary entity per relation. Ownership
// transfers to the caller.
type ThirdBuilder interface {
	// Rule reports the registry key this builder was constructed under.
	Rule() string
}

// ConnFactory constructs a bipartite strategy instance. third may be nil
// when the rule involves no third-entity population. Factories must not
// retain or mutate the collections; they may retain the configuration maps.
type ConnFactory func(sources, targets Collection, third ThirdBuilder, conn ConnConfig, syns []SynConfig) (ConnBuilder, error)

// ThirdFactory constructs a third-entity strategy instance. A third-entity
// strategy does not itself take a third builder.
type ThirdFactory func(sources, targets Collection, conn ConnConfig, syns []SynConfig) (ThirdBuilder, error)
