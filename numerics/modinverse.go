// Package numerics - modular arithmetic primitives.
//
// modinverse.go - GCD and ModInverse (extended Euclidean algorithm).
//
// Contract (strict):
//   - GCD is total: defined for all int64 pairs, result is non-negative.
//   - ModInverse validates its preconditions and returns sentinel errors;
//     it never returns a bogus inverse.
package numerics

import (
	"errors"
	"fmt"
)

// ErrNonPositiveModulus indicates ModInverse was called with a modulus m < 2;
// no multiplicative inverse is defined there.
// Usage: if errors.Is(err, ErrNonPositiveModulus) { /* fix the modulus */ }.
var ErrNonPositiveModulus = errors.New("numerics: modulus must be >= 2")

// ErrNotCoprime indicates ModInverse was called with gcd(a, m) != 1, which
// violates its precondition; a has no inverse modulo m.
// Usage: if errors.Is(err, ErrNotCoprime) { /* unsatisfied precondition */ }.
var ErrNotCoprime = errors.New("numerics: arguments are not coprime")

// GCD returns the greatest common divisor of a and b, always non-negative.
// GCD(0, 0) == 0 by convention.
// Complexity: O(log min(|a|, |b|)) divisions.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ModInverse returns b in [0, m) such that a*b == 1 (mod m), computed with
// the extended Euclidean algorithm.
//
// Preconditions (violations return sentinel errors, wrapped with context):
//   - m >= 2, else ErrNonPositiveModulus.
//   - gcd(a, m) == 1, else ErrNotCoprime.
//
// a may be negative or larger than m; it is reduced into [0, m) first.
// Complexity: O(log m) divisions, O(1) space.
func ModInverse(a, m int64) (int64, error) {
	if m < 2 {
		return 0, fmt.Errorf("ModInverse: m=%d: %w", m, ErrNonPositiveModulus)
	}

	// Reduce a into [0, m) so the coefficient bookkeeping below stays small.
	a %= m
	if a < 0 {
		a += m
	}

	// Extended Euclid on (a, m), tracking only the coefficient of a:
	// invariant s0*a == r0 (mod m) and s1*a == r1 (mod m) at every step.
	r0, r1 := a, m
	s0, s1 := int64(1), int64(0)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}

	if r0 != 1 {
		return 0, fmt.Errorf("ModInverse: gcd(%d, %d)=%d: %w", a, m, r0, ErrNotCoprime)
	}

	// |s0| < m at termination; one correction lands it in [0, m).
	if s0 < 0 {
		s0 += m
	}

	return s0, nil
}
