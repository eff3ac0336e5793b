// Package conweave is a small, deterministic toolkit for partitioning
// periodic identifier sequences among parallel workers and for dispatching
// connection-construction strategies through a name-keyed registry.
//
// 🚀 What is conweave?
//
//	A pure-Go computational core that brings together:
//		• Numeric primitives: robust expm1, half-up rounding, modular inverse
//		• Index partitioning: which slots of a round-robin-labeled sequence
//		  belong to a given worker, computed locally with no communication
//		• A two-phase strategy registry: populate once, freeze, then serve
//		  lock-free concurrent lookups for the rest of the process
//		• Builder dispatch: resolve a rule name to a factory and construct
//		  a configured connection strategy over two entity collections
//
// ✨ Why choose conweave?
//
//   - Deterministic: same inputs always yield the same partition and the
//     same constructed strategy, regardless of worker count or call order
//   - Communication-free: every worker derives its share of a globally
//     labeled sequence from four integers (period, phase0, step, phase)
//   - Extensible: new strategies register independently under their own
//     rule names; the dispatch core never learns about concrete strategies
//   - Pure Go: no cgo, no I/O, no hidden state
//
// Everything is organized under three subpackages:
//
//	numerics/  - floating-point and modular-arithmetic primitives
//	partition/ - the first-index solver for periodic sequences
//	connbuild/ - strategy registry, builder dispatch, entity collections
//
// Dive into each package's doc.go for contracts, error taxonomies, and
// worked examples.
package conweave
