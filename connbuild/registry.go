// SPDX-License-Identifier: MIT
// Package: conweave/connbuild
//
// registry.go - the two-phase strategy registry.
//
// Lifecycle contract (strict):
//   - Phase 1 (populate): RegisterConn/RegisterThird, mutex-guarded, during
//     single-threaded startup. Duplicate rule names fail loudly.
//   - Freeze(): ends phase 1. Idempotent.
//   - Phase 2 (serve): the rule tables are immutable; lookups read the maps
//     without taking any lock, so concurrent builds from many workers never
//     contend. Registration after Freeze fails with ErrRegistryFrozen.
//
// The registry owns its factories for its lifetime; it never owns the
// collections or the builders those factories produce.
package connbuild

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Family labels used in wrapped error messages so an UnknownRule failure
// always names both the rule and the namespace it was looked up in.
const (
	familyBipartite = "bipartite"
	familyThird     = "third-entity"
)

// Registry maps rule names to strategy factories across two independent
// namespaces (bipartite and third-entity). Create one per process during
// startup, register every known rule exactly once, then Freeze it and share
// it among workers. Multiple independent registries are fine (and what the
// tests do); nothing here is global.
type Registry struct {
	// mu guards the maps during the populate phase only.
	mu sync.Mutex
	// frozen flips once; after that the maps are read-only.
	frozen atomic.Bool

	conn  map[string]ConnFactory
	third map[string]ThirdFactory
}

// NewRegistry returns an empty registry in its populate phase.
func NewRegistry() *Registry {
	return &Registry{
		conn:  make(map[string]ConnFactory),
		third: make(map[string]ThirdFactory),
	}
}

// RegisterConn binds rule to f in the bipartite family.
// Errors: ErrNilFactory, ErrRegistryFrozen, ErrDuplicateRule (the name is
// already bound in this family; silent overwrite is never performed).
func (r *Registry) RegisterConn(rule string, f ConnFactory) error {
	if f == nil {
		return fmt.Errorf("RegisterConn(%q): %w", rule, ErrNilFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return fmt.Errorf("RegisterConn(%q): %w", rule, ErrRegistryFrozen)
	}
	if _, dup := r.conn[rule]; dup {
		return fmt.Errorf("RegisterConn: %s rule %q: %w", familyBipartite, rule, ErrDuplicateRule)
	}
	r.conn[rule] = f

	return nil
}

// RegisterThird binds rule to f in the third-entity family. The two families
// are independent: the same name may exist in both.
// Errors: ErrNilFactory, ErrRegistryFrozen, ErrDuplicateRule.
func (r *Registry) RegisterThird(rule string, f ThirdFactory) error {
	if f == nil {
		return fmt.Errorf("RegisterThird(%q): %w", rule, ErrNilFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return fmt.Errorf("RegisterThird(%q): %w", rule, ErrRegistryFrozen)
	}
	if _, dup := r.third[rule]; dup {
		return fmt.Errorf("RegisterThird: %s rule %q: %w", familyThird, rule, ErrDuplicateRule)
	}
	r.third[rule] = f

	return nil
}

// Freeze ends the populate phase. Taking the mutex here publishes every
// registration to the goroutines that will read the maps lock-free
// afterwards. Calling Freeze more than once is harmless.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen.Store(true)
	r.mu.Unlock()
}

// Frozen reports whether the populate phase has ended.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// ConnRules returns the registered bipartite rule names in sorted order.
func (r *Registry) ConnRules() []string {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	rules := make([]string, 0, len(r.conn))
	for rule := range r.conn {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	return rules
}

// ThirdRules returns the registered third-entity rule names in sorted order.
func (r *Registry) ThirdRules() []string {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	rules := make([]string, 0, len(r.third))
	for rule := range r.third {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	return rules
}

// connFactory resolves a bipartite rule. Lock-free once frozen; before that
// it serializes with registrations.
func (r *Registry) connFactory(rule string) (ConnFactory, bool) {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	f, ok := r.conn[rule]

	return f, ok
}

// thirdFactory resolves a third-entity rule; same locking discipline as
// connFactory.
func (r *Registry) thirdFactory(rule string) (ThirdFactory, bool) {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	f, ok := r.third[rule]

	return f, ok
}
