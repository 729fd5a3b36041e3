package modmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hill26/modmath"
)

// TestMod_InRange verifies that Mod always lands in [0, mod), including for
// negative values — the normalization every letter index depends on.
func TestMod_InRange(t *testing.T) {
	cases := []struct {
		name       string
		value, mod int
		want       int
	}{
		{"positive below mod", 7, 26, 7},
		{"positive above mod", 441, 26, 25},
		{"exact multiple", 52, 26, 0},
		{"zero", 0, 13, 0},
		{"negative small", -1, 26, 25},
		{"negative large", -343, 26, 21},
		{"negative multiple", -52, 26, 0},
		{"mod two", -5, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := modmath.Mod(tc.value, tc.mod)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0, "result must be non-negative")
			assert.Less(t, got, tc.mod, "result must be below mod")
		})
	}
}

// TestMod_SweepNegatives sweeps a dense range of negative inputs against
// small moduli; every result must stay in range.
func TestMod_SweepNegatives(t *testing.T) {
	for _, mod := range []int{2, 13, 26} {
		for v := -3 * mod; v <= 3*mod; v++ {
			got := modmath.Mod(v, mod)
			require.GreaterOrEqual(t, got, 0, "Mod(%d, %d)", v, mod)
			require.Less(t, got, mod, "Mod(%d, %d)", v, mod)
			require.Zero(t, modmath.Mod(v-got, mod), "Mod(%d, %d) must be congruent to the input", v, mod)
		}
	}
}

// TestExtendedGCD_Bezout checks the Bézout identity a·x + b·y = g on a
// spread of pairs, including the base case b == 0.
func TestExtendedGCD_Bezout(t *testing.T) {
	pairs := [][2]int64{
		{240, 46}, {46, 240}, {26, 7}, {13, 2}, {1, 26}, {25, 26},
		{17, 0}, {0, 5}, {441, 26}, {12, 13},
	}
	for _, p := range pairs {
		g, x, y := modmath.ExtendedGCD(p[0], p[1])
		assert.Equal(t, g, p[0]*x+p[1]*y, "Bézout identity for (%d, %d)", p[0], p[1])
	}
}

// TestExtendedGCD_BaseCase pins the documented base case (a, 1, 0).
func TestExtendedGCD_BaseCase(t *testing.T) {
	g, x, y := modmath.ExtendedGCD(17, 0)
	assert.Equal(t, int64(17), g)
	assert.Equal(t, int64(1), x)
	assert.Equal(t, int64(0), y)
}

// TestInverse_PrimeModuli exercises every unit of Z_2 and Z_13 — the two
// moduli the CRT inversion actually runs in. Each inverse must verify
// a·x ≡ 1 (mod m).
func TestInverse_PrimeModuli(t *testing.T) {
	for _, mod := range []int{2, 13} {
		for a := 1; a < mod; a++ {
			inv, err := modmath.Inverse(a, mod)
			require.NoError(t, err, "a=%d mod=%d", a, mod)
			assert.Equal(t, 1, (a*inv)%mod, "a=%d mod=%d inv=%d", a, mod, inv)
			assert.GreaterOrEqual(t, inv, 0)
			assert.Less(t, inv, mod)
		}
	}
}

// TestInverse_CompositeModulus spot-checks Z_26: units invert, non-units
// report ErrNoInverse.
func TestInverse_CompositeModulus(t *testing.T) {
	inv, err := modmath.Inverse(7, 26)
	require.NoError(t, err)
	assert.Equal(t, 15, inv, "7·15 = 105 ≡ 1 (mod 26)")

	inv, err = modmath.Inverse(25, 26)
	require.NoError(t, err)
	assert.Equal(t, 25, inv, "25 ≡ -1 is its own inverse")

	for _, a := range []int{0, 2, 13, 26, 169} {
		_, err = modmath.Inverse(a, 26)
		assert.ErrorIs(t, err, modmath.ErrNoInverse, "gcd(%d, 26) != 1", a)
	}
}

// TestInverse_NegativeInput verifies the pre-reduction: -5 ≡ 21 (mod 26),
// and gcd(21, 26) = 1, so the inverse of 21 comes back.
func TestInverse_NegativeInput(t *testing.T) {
	inv, err := modmath.Inverse(-5, 26)
	require.NoError(t, err)
	assert.Equal(t, 5, inv, "21·5 = 105 ≡ 1 (mod 26)")
}
