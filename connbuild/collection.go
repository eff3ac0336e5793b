// SPDX-License-Identifier: MIT
// Package: conweave/connbuild
//
// collection.go - RoundRobin, a concrete Collection with cyclic ownership.
//
// Contract (strict):
//   - Member i carries ID firstID+i and owner (firstOwner + i) mod period.
//   - The value is immutable after construction; all methods are safe for
//     unsynchronized concurrent readers.
//   - FirstOwned follows the infinite-container contract of
//     partition.FirstIndex: the result may lie beyond Len(), and callers
//     bound-check it themselves. OwnedIndices is the bounded variant.
package connbuild

import (
	"fmt"

	"github.com/katalvlaran/conweave/partition"
)

// RoundRobin is an entity collection with contiguous identifiers and
// round-robin owner assignment, the labeling produced when a global
// collection is dealt out to period workers in order.
type RoundRobin struct {
	firstID    int64
	n          int
	firstOwner int64
	period     int64
}

// NewRoundRobin returns a collection of n members with IDs
// firstID..firstID+n-1, where member i is owned by worker
// (firstOwner + i) mod period.
//
// Errors: ErrBadCollection when n < 0, period < 1, or firstOwner is outside
// [0, period).
func NewRoundRobin(firstID int64, n int, firstOwner, period int64) (*RoundRobin, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewRoundRobin: n=%d: %w", n, ErrBadCollection)
	}
	if period < 1 {
		return nil, fmt.Errorf("NewRoundRobin: period=%d: %w", period, ErrBadCollection)
	}
	if firstOwner < 0 || firstOwner >= period {
		return nil, fmt.Errorf("NewRoundRobin: firstOwner=%d not in [0, %d): %w",
			firstOwner, period, ErrBadCollection)
	}

	return &RoundRobin{firstID: firstID, n: n, firstOwner: firstOwner, period: period}, nil
}

// Len returns the number of members.
func (c *RoundRobin) Len() int { return c.n }

// ID returns the identifier of member i. Precondition: 0 <= i < Len().
func (c *RoundRobin) ID(i int) int64 { return c.firstID + int64(i) }

// OwnerOf returns the owning-worker label of member i.
// Precondition: 0 <= i < Len().
func (c *RoundRobin) OwnerOf(i int) int64 {
	return (c.firstOwner + int64(i)) % c.period
}

// Period returns the number of distinct owner labels in the cycle.
func (c *RoundRobin) Period() int64 { return c.period }

// FirstOwned returns the smallest index i >= 0 such that walking the
// collection with the given step from member 0 lands on a member owned by
// owner. The index counts stepped elements, exactly as in
// partition.FirstIndex; it is NOT bound-checked against Len().
//
// Errors: partition.ErrZeroStep, partition.ErrNoSolution.
func (c *RoundRobin) FirstOwned(step, owner int64) (int64, error) {
	return partition.FirstIndex(c.period, c.firstOwner, step, owner)
}

// OwnedIndices returns every stepped index whose member belongs to owner,
// bounded by the number of stepped elements that fit in the collection.
// An owner that never appears on the walk gets an empty result, not an
// error.
func (c *RoundRobin) OwnedIndices(step, owner int64) ([]int64, error) {
	// Number of stepped elements reachable inside the collection: indices
	// 0..ceil(n/|step|)-1 in stepped units.
	abs := step
	if abs < 0 {
		abs = -abs
	}
	if abs == 0 {
		return nil, fmt.Errorf("OwnedIndices: %w", partition.ErrZeroStep)
	}
	length := (int64(c.n) + abs - 1) / abs

	owned, err := partition.Indices(c.period, c.firstOwner, step, owner, length)
	if err != nil {
		return nil, fmt.Errorf("OwnedIndices: %w", err)
	}

	return owned, nil
}
