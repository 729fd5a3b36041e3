package modmath

import "errors"

// ErrNoInverse indicates that a has no multiplicative inverse modulo mod,
// i.e. gcd(a, mod) != 1.
var ErrNoInverse = errors.New("modmath: no modular inverse exists")

// Mod returns value reduced into [0, mod).
//
// Unlike Go's % operator, the result is non-negative for negative value.
// Contract: mod > 0. No error conditions.
//
// Complexity: O(1).
func Mod(value, mod int) int {
	r := value % mod
	if r < 0 {
		r += mod
	}

	return r
}

// ExtendedGCD — extended Euclidean algorithm.
//
// Description:
//
//	Computes g = gcd(a, b) together with Bézout coefficients x, y such that
//	a·x + b·y = g. The coefficients are what make modular inversion possible:
//	when g == 1, x is the inverse of a modulo b (up to reduction).
//
// Algorithm Outline:
//  1. Base case b == 0: gcd is a, with coefficients (1, 0).
//  2. Recurse on (b, a mod b), obtaining (g, x1, y1).
//  3. Back-substitute: x = y1, y = x1 - (a/b)·y1.
//
// Complexity: O(log min(a, b)) time, O(log min(a, b)) stack.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := ExtendedGCD(b, a%b)
	x = y1
	y = x1 - (a/b)*y1

	return g, x, y
}

// Inverse returns the multiplicative inverse of a modulo mod, reduced into
// [0, mod), or ErrNoInverse when gcd(a, mod) != 1.
//
// The input is normalized into [0, mod) before the gcd runs, so negative a
// is handled. Contract: mod > 0.
//
// Complexity: O(log mod).
func Inverse(a, mod int) (int, error) {
	g, x, _ := ExtendedGCD(int64(Mod(a, mod)), int64(mod))
	if g != 1 {
		return 0, ErrNoInverse
	}

	return Mod(int(x), mod), nil
}
