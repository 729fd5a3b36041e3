// Package hill implements 3x3 Hill-cipher decryption over the 26-letter
// alphabet, with key inversion performed through the Chinese Remainder
// Theorem decomposition 26 = 2 × 13.
//
// 🚀 What is the Hill cipher?
//
//	A classical polygraphic cipher: plaintext letters map to indices 0–25,
//	group into 3-element vectors, and multiply by a 3x3 key matrix mod 26.
//	Decryption multiplies by the key's inverse mod 26 — which exists only
//	when the key's determinant is coprime to 26.
//
// ✨ Key features:
//   - NewKeyMatrix — forgiving key parsing: non-letters stripped, case
//     folded, exactly 9 letters required
//   - InvertKey — CRT inversion: invert mod 2 and mod 13 independently,
//     recombine each entry into [0, 26) with the fixed (13, 14) basis
//   - Decrypt — block decoder: non-letters dropped, 'X'-padded to a
//     multiple of 3, blocks decoded strictly in order
//   - Sentinel errors for every rejection path; match with errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hill26/hill"
//
//	key, err := hill.NewKeyMatrix("GYBNQKURP")
//	if err != nil { ... }                 // ErrKeyLength / ErrKeyCharacter
//	inv, err := hill.InvertKey(key)
//	if err != nil { ... }                 // ErrNotInvertibleMod2 / ...Mod13
//	plain := hill.Decrypt("POH", inv)     // "ACT"
//
// Performance: key inversion is O(1); Decrypt is O(n) in the ciphertext
// length. Everything is pure and allocation-light.
package hill
