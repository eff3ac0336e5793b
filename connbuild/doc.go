// Package connbuild dispatches construction of connections between two
// entity collections through a registry of pluggable strategies.
//
// The package knows nothing about any concrete strategy. External code
// registers one factory per rule name during startup; callers then resolve a
// rule by name and receive a configured strategy instance ready to generate
// connections. Two independent strategy families share one registry:
//
//   - bipartite rules, which relate a source collection to a target
//     collection (ConnFactory -> ConnBuilder), and
//   - third-entity rules, which additionally instantiate an auxiliary entity
//     per relation (ThirdFactory -> ThirdBuilder).
//
// The registry has an explicit two-phase lifecycle. During startup it is
// populated single-threaded via RegisterConn/RegisterThird; duplicate rule
// names fail loudly at registration time, so strategy selection can never
// depend on load order. Freeze ends the populate phase; from then on the
// rule tables are immutable and lookups are lock-free, so any number of
// workers may build strategy instances concurrently.
//
// Configuration maps (ConnConfig, SynConfig) are opaque here: the dispatch
// layer forwards them to the selected factory unexamined. Entity collections
// are shared, read-only views into externally owned data; this package never
// mutates them.
//
// Errors:
//
//	ErrDuplicateRule  - a rule name registered twice within one family.
//	ErrRegistryFrozen - registration attempted after Freeze.
//	ErrNilFactory     - registration with a nil factory.
//	ErrUnknownRule    - build/lookup on an unregistered rule name.
//	ErrNilCollection  - build with a nil source or target collection.
//	ErrNoSynConfigs   - build with an empty synapse-configuration sequence.
//	ErrBadCollection  - invalid RoundRobin collection parameters.
//
// All are sentinel errors; branch with errors.Is, never by string.
package connbuild
