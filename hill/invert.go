package hill

import (
	"github.com/katalvlaran/hill26/matrix"
	"github.com/katalvlaran/hill26/modmath"
)

// CRT basis coefficients for the decomposition 26 = 2 × 13. They are the
// unique pair satisfying
//
//	13 ≡ 1 (mod 2),  13 ≡ 0 (mod 13)
//	14 ≡ 0 (mod 2),  14 ≡ 1 (mod 13)
//
// i.e. crtBasis2 = 13·inverse(13, 2) mod 26 and crtBasis13 = 2·inverse(2, 13)
// mod 26. Fixed constants of the (2, 13) pair, not derived at runtime.
const (
	crtBasis2  = 13
	crtBasis13 = 14
)

// combineResidues recombines a residue mod 2 and a residue mod 13 into the
// unique value mod 26 congruent to both, normalized into [0, 26).
func combineResidues(residueMod2, residueMod13 int) int {
	return modmath.Mod(crtBasis2*(residueMod2%mod2)+crtBasis13*(residueMod13%mod13), Mod26)
}

// InvertKey — inverse of a 3x3 key matrix modulo 26 via CRT.
//
// Description:
//
//	Direct inversion mod 26 by extended GCD fails whenever gcd(det, 26) != 1,
//	and 26 is not prime. Splitting into the coprime prime factors 2 and 13
//	lets the standard adjugate/determinant inverse run cleanly in each prime
//	modulus; the two per-entry residues then recombine uniquely into Z_26.
//
// Algorithm Outline:
//  1. det = Det(key), adj = Adjugate(key), once, over the raw integers.
//  2. Reject det ≡ 0 (mod 2) with ErrNotInvertibleMod2 and det ≡ 0 (mod 13)
//     with ErrNotInvertibleMod13 — invertibility mod 26 requires
//     invertibility mod both factors.
//  3. Invert the det residues in Z_2 and Z_13 (forced to succeed after
//     step 2; ErrDetNotInvertible guards the unreachable failure).
//  4. Reduce adj elementwise mod 2 and mod 13.
//  5. inverseMod2 = adjMod2 · detInv2 in Z_2; inverseMod13 likewise in Z_13.
//  6. Recombine each entry: (13·r2 + 14·r13) mod 26.
//
// The result has every entry in [0, 26) and satisfies
// key · InvertKey(key) ≡ I (mod 26).
//
// Errors: ErrNotInvertibleMod2, ErrNotInvertibleMod13, ErrDetNotInvertible.
//
// Complexity: O(1).
func InvertKey(key matrix.Matrix3) (matrix.Matrix3, error) {
	det := matrix.Det(key)
	adj := matrix.Adjugate(key)

	detMod2 := modmath.Mod(det, mod2)
	detMod13 := modmath.Mod(det, mod13)
	if detMod2 == 0 {
		return matrix.Matrix3{}, ErrNotInvertibleMod2
	}
	if detMod13 == 0 {
		return matrix.Matrix3{}, ErrNotInvertibleMod13
	}

	detInv2, err2 := modmath.Inverse(detMod2, mod2)
	detInv13, err13 := modmath.Inverse(detMod13, mod13)
	if err2 != nil || err13 != nil {
		return matrix.Matrix3{}, ErrDetNotInvertible
	}

	inverseMod2 := matrix.ScalarMulMod(matrix.Mod(adj, mod2), detInv2, mod2)
	inverseMod13 := matrix.ScalarMulMod(matrix.Mod(adj, mod13), detInv13, mod13)

	var inverse matrix.Matrix3
	for r := 0; r < BlockSize; r++ {
		for c := 0; c < BlockSize; c++ {
			inverse[r][c] = combineResidues(inverseMod2[r][c], inverseMod13[r][c])
		}
	}

	return inverse, nil
}
