// Package hill: shared constants and letter/index plumbing.
// Key parsing, inversion and decryption live in keymatrix.go, invert.go and
// decrypt.go respectively.
package hill

import "strings"

// Alphabet is the 26-letter cipher alphabet; a letter's position is its
// numeric index (A=0 … Z=25).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	// Mod26 is the working modulus of the cipher.
	Mod26 = 26
	// mod2 and mod13 are the coprime factors 26 decomposes into for CRT.
	mod2  = 2
	mod13 = 13

	// BlockSize is the cipher block length in letters.
	BlockSize = 3
	// KeyLength is the required key length in letters (BlockSize squared).
	KeyLength = 9

	// padLetter right-pads ciphertext to a whole number of blocks.
	padLetter = 'X'
)

// letterIndex maps an uppercase letter to its alphabet index, or -1 when
// the rune is not in the alphabet.
func letterIndex(r rune) int {
	if r < 'A' || r > 'Z' {
		return -1
	}

	return int(r - 'A')
}

// sanitize keeps only alphabetic characters of s, upper-cased. Everything
// else — digits, punctuation, whitespace — is silently dropped.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}

	return b.String()
}
