package hill

import (
	"strings"

	"github.com/katalvlaran/hill26/matrix"
)

// Decrypt decodes ciphertext with an inverted key matrix (see InvertKey).
//
// Algorithm Outline:
//  1. Filter: keep letters only, upper-cased; digits, punctuation and
//     whitespace are silently dropped, never an error.
//  2. Pad: append 'X' until the length is a multiple of 3. The classic Hill
//     convention — and lossy: if the true plaintext's last block happened to
//     end in padding-like letters, the round trip cannot distinguish them.
//  3. Decode: split into consecutive 3-letter blocks, strictly in order;
//     each block's indices form a Vector3, multiplied by inverseKey mod 26;
//     result indices map back through Alphabet.
//
// Decrypt is total: every input produces a plaintext of uppercase letters
// whose length is the filtered-and-padded length (a multiple of 3).
//
// Complexity: O(len(ciphertext)).
func Decrypt(ciphertext string, inverseKey matrix.Matrix3) string {
	clean := sanitize(ciphertext)
	if pad := (BlockSize - len(clean)%BlockSize) % BlockSize; pad > 0 {
		clean += strings.Repeat(string(padLetter), pad)
	}

	var plaintext strings.Builder
	plaintext.Grow(len(clean))
	for i := 0; i < len(clean); i += BlockSize {
		var block matrix.Vector3
		for j := 0; j < BlockSize; j++ {
			block[j] = letterIndex(rune(clean[i+j]))
		}
		decoded := matrix.MulVecMod(inverseKey, block, Mod26)
		for j := 0; j < BlockSize; j++ {
			plaintext.WriteByte(Alphabet[decoded[j]])
		}
	}

	return plaintext.String()
}
