// SPDX-License-Identifier: MIT
// Package: conweave/connbuild
//
// dispatch.go - BuildBipartite and BuildThird: resolve, validate, delegate.
//
// Contract (strict):
//   - Validation order is fixed: unknown rule, then nil collections, then
//     empty synapse configs. Tests rely on it.
//   - A build mutates no state anywhere: registry reads are non-mutating and
//     the only side effect is the returned builder instance.
//   - Factory errors pass through wrapped with the rule name; the factory's
//     sentinel (if any) stays reachable via errors.Is.
package connbuild

import "fmt"

// BuildBipartite resolves rule in the bipartite family and delegates to the
// bound factory. third may be nil when the rule populates no auxiliary
// entities. Configuration maps are forwarded unexamined; validating their
// contents is the constructed strategy's job.
//
// Errors: ErrUnknownRule, ErrNilCollection, ErrNoSynConfigs, or whatever the
// factory returns (wrapped).
//
// Safe for concurrent use from any number of workers once the registry is
// frozen; each call returns an independent instance owned by the caller.
func (r *Registry) BuildBipartite(rule string, sources, targets Collection, third ThirdBuilder, conn ConnConfig, syns []SynConfig) (ConnBuilder, error) {
	f, ok := r.connFactory(rule)
	if !ok {
		return nil, fmt.Errorf("BuildBipartite: %s rule %q: %w", familyBipartite, rule, ErrUnknownRule)
	}
	if sources == nil || targets == nil {
		return nil, fmt.Errorf("BuildBipartite(%q): %w", rule, ErrNilCollection)
	}
	if len(syns) == 0 {
		return nil, fmt.Errorf("BuildBipartite(%q): %w", rule, ErrNoSynConfigs)
	}

	b, err := f(sources, targets, third, conn, syns)
	if err != nil {
		return nil, fmt.Errorf("BuildBipartite(%q): %w", rule, err)
	}

	return b, nil
}

// BuildThird resolves rule in the third-entity family and delegates to the
// bound factory; same contract as BuildBipartite minus the third argument
// (a third-entity strategy does not itself need one).
//
// Errors: ErrUnknownRule, ErrNilCollection, ErrNoSynConfigs, or the
// factory's own error (wrapped).
func (r *Registry) BuildThird(rule string, sources, targets Collection, conn ConnConfig, syns []SynConfig) (ThirdBuilder, error) {
	f, ok := r.thirdFactory(rule)
	if !ok {
		return nil, fmt.Errorf("BuildThird: %s rule %q: %w", familyThird, rule, ErrUnknownRule)
	}
	if sources == nil || targets == nil {
		return nil, fmt.Errorf("BuildThird(%q): %w", rule, ErrNilCollection)
	}
	if len(syns) == 0 {
		return nil, fmt.Errorf("BuildThird(%q): %w", rule, ErrNoSynConfigs)
	}

	b, err := f(sources, targets, conn, syns)
	if err != nil {
		return nil, fmt.Errorf("BuildThird(%q): %w", rule, err)
	}

	return b, nil
}
