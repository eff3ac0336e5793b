// Package partition - the first-index solver for periodic sequences.
//
// partition.go - FirstIndex, Stride, Indices.
//
// Contract (strict):
//   - Pure functions, no panics; validation failures and unsatisfiable
//     queries surface as sentinel errors (branch with errors.Is).
//   - If FirstIndex returns an index, it is the minimum i >= 0 satisfying
//     (phase0 + i*step) mod period == phase mod period; no smaller index
//     qualifies.
//   - Negative step is supported by folding step into [0, period); a step
//     that is a nonzero multiple of the period yields a constant sequence.
package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/conweave/numerics"
)

// ErrNonPositivePeriod indicates a query with period < 1.
// Usage: if errors.Is(err, ErrNonPositivePeriod) { /* fix the period */ }.
var ErrNonPositivePeriod = errors.New("partition: period must be positive")

// ErrZeroStep indicates a query with step == 0. A zero step never advances
// the phase, so the query is treated as a precondition violation rather than
// a degenerate sequence.
// Usage: if errors.Is(err, ErrZeroStep) { /* fix the step */ }.
var ErrZeroStep = errors.New("partition: step must be nonzero")

// ErrNoSolution indicates the congruence step*i == (phase - phase0)
// (mod period) has no solution: no index of the sequence ever carries the
// requested phase. This is a normal negative result, not a failure.
// Usage: if errors.Is(err, ErrNoSolution) { /* worker owns nothing */ }.
var ErrNoSolution = errors.New("partition: no index matches the requested phase")

// FirstIndex returns the smallest i >= 0 such that
//
//	(phase0 + i*step) mod period == phase mod period
//
// or ErrNoSolution when no such index exists. phase0 and phase may be any
// integers; both are compared modulo period.
//
// Algorithm: solve step*i == (phase - phase0) (mod period).
//  1. Fold step and the phase difference into [0, period).
//  2. g = gcd(step, period); if g does not divide the difference, the
//     congruence is unsatisfiable.
//  3. Otherwise invert step/g modulo period/g, multiply by the reduced
//     difference, and reduce again; that is the minimal solution of the
//     reduced congruence.
//  4. Verify the candidate against the original congruence before returning
//     it, guarding the reduced-modulus arithmetic.
//
// The sequence is conceptually infinite; callers bound-check the result
// against their actual collection length.
//
// Complexity: O(log period) via gcd and the extended Euclidean algorithm.
func FirstIndex(period, phase0, step, phase int64) (int64, error) {
	if period < 1 {
		return 0, fmt.Errorf("FirstIndex: period=%d: %w", period, ErrNonPositivePeriod)
	}
	if step == 0 {
		return 0, fmt.Errorf("FirstIndex: %w", ErrZeroStep)
	}

	// Fold both the step and the phase difference into [0, period);
	// negative steps and out-of-range phases are handled here.
	s := mod(step, period)
	d := mod(phase-phase0, period)

	// A step that is a nonzero multiple of the period produces a constant
	// sequence: every index carries phase0's phase.
	if s == 0 {
		if d == 0 {
			return 0, nil
		}

		return 0, fmt.Errorf("FirstIndex: constant sequence never reaches phase %d: %w", phase, ErrNoSolution)
	}

	// Reduce the congruence by g = gcd(s, period). Solvable iff g | d.
	g := numerics.GCD(s, period)
	if d%g != 0 {
		return 0, fmt.Errorf("FirstIndex: gcd(step, period)=%d does not divide phase difference %d: %w",
			g, d, ErrNoSolution)
	}

	// Minimal solution of (s/g)*i == (d/g) (mod period/g).
	m := period / g
	var i int64
	if m == 1 {
		// Everything is congruent modulo 1; index 0 is minimal.
		i = 0
	} else {
		inv, err := numerics.ModInverse(s/g, m)
		if err != nil {
			// Unreachable for valid inputs: s/g and m are coprime by
			// construction. Surface it rather than swallow it.
			return 0, fmt.Errorf("FirstIndex: %w", err)
		}
		i = mod((d/g)*inv, m)
	}

	// Verify against the original congruence; the reduced arithmetic must
	// reproduce the requested phase exactly.
	if mod(phase0+i*step, period) != mod(phase, period) {
		return 0, fmt.Errorf("FirstIndex: candidate %d failed verification: %w", i, ErrNoSolution)
	}

	return i, nil
}

// Stride returns the distance between consecutive indices that share a phase:
// period / gcd(step mod period, period). For a constant sequence (step a
// nonzero multiple of the period) every index shares the phase, so the
// stride is 1.
//
// Together with FirstIndex this enumerates every owned slot:
// first, first+stride, first+2*stride, ...
func Stride(period, step int64) (int64, error) {
	if period < 1 {
		return 0, fmt.Errorf("Stride: period=%d: %w", period, ErrNonPositivePeriod)
	}
	if step == 0 {
		return 0, fmt.Errorf("Stride: %w", ErrZeroStep)
	}

	s := mod(step, period)
	if s == 0 {
		return 1, nil
	}

	return period / numerics.GCD(s, period), nil
}

// Indices returns, in ascending order, every index i in [0, length) whose
// phase equals phase mod period. An unsatisfiable congruence yields an empty
// result and no error: the caller simply owns nothing. Validation failures
// (period, step) still return their sentinels.
//
// Complexity: O(log period + k) where k is the number of owned indices.
func Indices(period, phase0, step, phase, length int64) ([]int64, error) {
	first, err := FirstIndex(period, phase0, step, phase)
	if errors.Is(err, ErrNoSolution) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Indices: %w", err)
	}

	stride, err := Stride(period, step)
	if err != nil {
		return nil, fmt.Errorf("Indices: %w", err)
	}

	var owned []int64
	for i := first; i < length; i += stride {
		owned = append(owned, i)
	}

	return owned, nil
}

// mod reduces a into [0, m); unlike the built-in % it never returns a
// negative remainder. Precondition: m > 0.
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
