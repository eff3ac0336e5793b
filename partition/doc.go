// Package partition answers one question: given an infinite sequence whose
// element i carries the phase (phase0 + i*step) mod period, what is the
// smallest i >= 0 whose phase equals a requested target?
//
// The intended use is communication-free work partitioning. A global
// collection assigns owners round-robin (period = number of workers,
// phase0 = owner of the first element); a worker that slices the collection
// with a given step calls FirstIndex with its own label as the target phase
// and learns, from four local integers, where its share begins. Stride and
// Indices extend that to the full set of owned slots.
//
// The solver works on the linear congruence step*i == (phase - phase0)
// (mod period): reduce by g = gcd(step, period), invert step/g modulo
// period/g, and verify the minimal candidate against the original congruence
// before returning it.
//
// Contract: FirstIndex assumes an infinite container. Callers must bound-check
// the returned index against the real collection length themselves (or use
// Indices, which takes a length).
//
// Errors:
//
//	ErrNonPositivePeriod - period < 1 (validation).
//	ErrZeroStep          - step == 0 (validation; a zero step is a
//	                       precondition violation, not a degenerate query).
//	ErrNoSolution        - the congruence is unsatisfiable; a normal negative
//	                       result, never a wrong index.
//
// All functions are pure and safe for unsynchronized concurrent use.
package partition
