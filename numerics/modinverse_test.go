// Package numerics_test verifies GCD and ModInverse identities and the
// loud-failure contract for violated preconditions.
package numerics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conweave/numerics"
)

// TestGCD checks the usual gcd identities, including sign normalization and
// the zero conventions.
func TestGCD(t *testing.T) {
	t.Parallel()

	tests := []struct{ a, b, want int64 }{
		{12, 18, 6},
		{18, 12, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{1, 1000003, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, numerics.GCD(tc.a, tc.b), "GCD(%d, %d)", tc.a, tc.b)
	}
}

// TestModInverseIdentity sweeps coprime pairs and checks both the defining
// identity (a * inv) mod m == 1 and the round-trip inv(inv(a)) == a mod m.
func TestModInverseIdentity(t *testing.T) {
	t.Parallel()

	for m := int64(2); m <= 60; m++ {
		for a := int64(1); a < m; a++ {
			if numerics.GCD(a, m) != 1 {
				continue
			}

			inv, err := numerics.ModInverse(a, m)
			require.NoError(t, err, "ModInverse(%d, %d)", a, m)
			require.GreaterOrEqual(t, inv, int64(0))
			require.Less(t, inv, m)
			require.Equal(t, int64(1), (a*inv)%m, "(%d * %d) mod %d", a, inv, m)

			// Round-trip: inverting the inverse recovers a.
			back, err := numerics.ModInverse(inv, m)
			require.NoError(t, err)
			require.Equal(t, a%m, back%m, "round-trip for a=%d, m=%d", a, m)
		}
	}
}

// TestModInverseNormalization checks that negative and oversized a are
// reduced into [0, m) before inversion.
func TestModInverseNormalization(t *testing.T) {
	t.Parallel()

	// -3 == 4 (mod 7), so both must yield the inverse of 4, which is 2.
	inv, err := numerics.ModInverse(-3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inv)

	inv, err = numerics.ModInverse(11, 7) // 11 == 4 (mod 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inv)
}

// TestModInverseErrors verifies the loud precondition failures: non-coprime
// arguments and degenerate moduli never produce a bogus inverse.
func TestModInverseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, m int64
		want error
	}{
		{"even_pair", 4, 8, numerics.ErrNotCoprime},
		{"shared_factor", 6, 9, numerics.ErrNotCoprime},
		{"a_zero", 0, 5, numerics.ErrNotCoprime},
		{"a_multiple_of_m", 10, 5, numerics.ErrNotCoprime},
		{"m_one", 3, 1, numerics.ErrNonPositiveModulus},
		{"m_zero", 3, 0, numerics.ErrNonPositiveModulus},
		{"m_negative", 3, -7, numerics.ErrNonPositiveModulus},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := numerics.ModInverse(tc.a, tc.m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
