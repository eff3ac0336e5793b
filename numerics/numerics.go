// Package numerics - floating-point primitives.
//
// numerics.go - Expm1, IsNaN, Round, RoundFloat, Truncate, IsInteger.
//
// Contract (strict):
//   - Every function is pure: no state, no allocation, no panics.
//   - Rounding is half-up: the half-open interval [n-0.5, n+0.5) maps to n
//     for every integer n. This is NOT round-half-to-even and NOT
//     round-half-away-from-zero; midpoints always round toward +Inf.
//   - Expm1 reproduces the portable series algorithm exactly (see below)
//     so results are identical across platforms.
package numerics

import "math"

// epsilon is the double-precision machine epsilon, 2^-52: the gap between
// 1.0 and the next representable float64.
const epsilon = 0x1p-52

// integerEpsFactor scales the relative tolerance used by IsInteger.
// The tolerance is integerEpsFactor * epsilon * |x|, i.e. a value counts as
// an integer when it sits within two units in the last place of one.
const integerEpsFactor = 2

// Expm1 returns e^x - 1 without the catastrophic cancellation that naive
// exp(x)-1 suffers for small |x|.
//
// Algorithm:
//   - x == 0        -> 0 exactly.
//   - |x| >  ln 2   -> exp(x) - 1 directly; cancellation is insignificant.
//   - |x| <= ln 2   -> Taylor series x + x^2/2! + x^3/3! + ..., accumulating
//     terms while |term| > |sum| * epsilon. Termination is driven by that
//     convergence criterion, not by a fixed iteration count.
//
// Complexity: O(1) for large |x|; the series needs at most ~20 terms within
// its domain, so O(1) overall.
func Expm1(x float64) float64 {
	if x == 0 {
		return 0
	}
	if math.Abs(x) > math.Ln2 {
		return math.Exp(x) - 1
	}

	// Series: the n=1 term is x itself; start accumulating at n=2.
	sum := x
	term := x * x / 2
	n := int64(2)
	for math.Abs(term) > math.Abs(sum)*epsilon {
		sum += term
		n++
		term *= x / float64(n)
	}

	return sum
}

// IsNaN reports whether x is a not-a-number value. The comparison x != x is
// true exactly for NaN under IEEE 754, independent of the floating-point
// environment, so the result is identical for all real inputs on all
// platforms.
func IsNaN(x float64) bool {
	return x != x
}

// Round returns x rounded to the nearest integer as an int64, with midpoints
// rounded toward +Inf: [n-0.5, n+0.5) -> n for every integer n.
// So Round(0.5) == 1, Round(-0.5) == 0, Round(-1.5) == -1.
func Round(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// RoundFloat is Round with a float64 result; same half-up tie-break.
func RoundFloat(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Truncate returns the integer part of x, discarding the fractional part and
// preserving the sign: Truncate(1.9) == 1, Truncate(-1.9) == -1.
func Truncate(x float64) float64 {
	return math.Trunc(x)
}

// IsInteger reports whether x equals an integer to within floating-point
// rounding error. The tolerance is relative to |x|:
//
//	|x - RoundFloat(x)| <= integerEpsFactor * epsilon * |x|
//
// Exact integers (including 0 and negatives) always satisfy it; NaN and the
// infinities never do.
func IsInteger(x float64) bool {
	if IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	return math.Abs(x-RoundFloat(x)) <= integerEpsFactor*epsilon*math.Abs(x)
}
