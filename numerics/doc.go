// Package numerics provides the small set of robust numeric primitives that
// the rest of conweave is built on: an economical expm1, a NaN test that is
// independent of the floating-point environment, half-up rounding, truncation,
// an integer-proximity test, and the modular inverse via the extended
// Euclidean algorithm.
//
// All functions are pure and stateless; they are safe to call concurrently
// from any number of goroutines without synchronization.
//
// Errors:
//
//	ErrNonPositiveModulus - ModInverse called with m < 2.
//	ErrNotCoprime         - ModInverse called with gcd(a, m) != 1.
//
// Both are sentinel errors; branch with errors.Is, never by string.
package numerics
