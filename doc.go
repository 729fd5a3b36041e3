// Package hill26 decrypts classic 3x3 Hill-cipher text over the 26-letter
// Latin alphabet, inverting the key matrix modulo 26 through its Chinese
// Remainder Theorem decomposition 26 = 2 × 13.
//
// 🚀 What is hill26?
//
//	A small, pure-Go numeric core plus a thin interactive CLI:
//		• Modular arithmetic: positive mod, extended Euclid, modular inverse
//		• Fixed-size 3x3 integer matrix algebra (determinant, adjugate, mod ops)
//		• CRT key inversion: invert mod 2 and mod 13, recombine into mod 26
//		• Block decoder: letter↔index mapping, 'X' padding, 3-letter blocks
//
// ✨ Why CRT?
//
//   - 26 is not prime, so a single extended-GCD inversion mod 26 fails for
//     any determinant sharing a factor with 26.
//   - Working independently in the coprime factors 2 and 13 — both prime —
//     the standard inverse technique applies cleanly in each, and the two
//     residues recombine uniquely into [0, 26).
//
// Everything is organized under three subpackages plus one binary:
//
//	modmath/     — positive modulo, extended GCD, modular inverse
//	matrix/      — Matrix3/Vector3 value types and mod-m algebra
//	hill/        — key parsing, CRT inversion, block decryption
//	cmd/hill26/  — interactive command-line front end
//
// Quick example:
//
//	key, _ := hill.NewKeyMatrix("GYBNQKURP")
//	inv, _ := hill.InvertKey(key)
//	fmt.Println(hill.Decrypt("POH", inv)) // ACT
//
//	go get github.com/katalvlaran/hill26
package hill26
