// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/hill26/modmath"

// Det computes the determinant of m by cofactor expansion along row 0.
//
// The result is an unreduced integer — it may be negative or exceed any
// modulus. Reduction into a residue class is the caller's responsibility.
//
// Complexity: O(1) (fixed 3x3).
func Det(m Matrix3) int {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Adjugate returns the adjugate of m: the transpose of its cofactor matrix.
//
// Blueprint:
//
//	Stage 1 (Cofactors): each Cij is the 2x2 minor with sign (-1)^(i+j).
//	Stage 2 (Transpose): adj[j][i] = Cij.
//
// Entries are raw integers (cofactor subtraction can go negative); callers
// reduce them modulo their working modulus. The defining identity
// m · Adjugate(m) = Det(m) · I is what makes Adjugate/Det the inversion
// pair used by the hill package.
//
// Complexity: O(1).
func Adjugate(m Matrix3) Matrix3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	c00 := e*i - f*h
	c01 := -(d*i - f*g)
	c02 := d*h - e*g
	c10 := -(b*i - c*h)
	c11 := a*i - c*g
	c12 := -(a*h - b*g)
	c20 := b*f - c*e
	c21 := -(a*f - c*d)
	c22 := a*e - b*d

	// adjugate = transpose of the cofactor matrix
	return Matrix3{
		{c00, c10, c20},
		{c01, c11, c21},
		{c02, c12, c22},
	}
}

// ScalarMulMod multiplies every entry of m by scalar, working in Z_mod.
//
// Each entry is reduced into [0, mod) before the multiply, so raw (possibly
// negative) matrices are accepted; every result entry lands in [0, mod).
// Contract: mod > 0.
//
// Complexity: O(1).
func ScalarMulMod(m Matrix3, scalar, mod int) Matrix3 {
	var out Matrix3
	s := scalar % mod
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = modmath.Mod(modmath.Mod(m[r][c], mod)*s, mod)
		}
	}

	return out
}

// Mod reduces every entry of m into [0, mod) via modmath.Mod.
// Contract: mod > 0.
//
// Complexity: O(1).
func Mod(m Matrix3, mod int) Matrix3 {
	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = modmath.Mod(m[r][c], mod)
		}
	}

	return out
}

// MulVecMod computes m · v in Z_mod, each component reduced into [0, mod).
//
// The per-row accumulator is int64, so the product stays exact well beyond
// the letter-index magnitudes this system feeds it. Contract: mod > 0.
//
// Complexity: O(1).
func MulVecMod(m Matrix3, v Vector3, mod int) Vector3 {
	var out Vector3
	for r := 0; r < 3; r++ {
		var sum int64
		for c := 0; c < 3; c++ {
			sum += int64(m[r][c]) * int64(v[c])
		}
		out[r] = modmath.Mod(int(sum%int64(mod)), mod)
	}

	return out
}
