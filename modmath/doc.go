// Package modmath provides the handful of modular-arithmetic primitives the
// Hill-cipher core is built on: positive modulo, the extended Euclidean
// algorithm, and modular inversion.
//
// ✨ Key properties:
//   - Mod always lands in [0, mod), even for negative inputs — every value
//     that ends up as a letter index passes through it.
//   - ExtendedGCD returns Bézout coefficients over int64, so intermediate
//     products never overflow for the small magnitudes this system handles.
//   - Inverse reports ErrNoInverse when gcd(a, mod) != 1; downstream this is
//     exactly how a singular key matrix announces itself.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hill26/modmath"
//
//	inv, err := modmath.Inverse(7, 26) // 15, since 7·15 = 105 ≡ 1 (mod 26)
//	if err != nil {
//	  // gcd(a, mod) != 1 — no inverse exists
//	}
//
// All functions are pure and run in O(log mod) time or better.
package modmath
