package hill

import "github.com/katalvlaran/hill26/matrix"

// NewKeyMatrix builds the 3x3 key matrix from keyText.
//
// The input is forgiving: non-letter characters are stripped and case is
// folded before validation, so "gy-b N q!kurp" and "GYBNQKURP" produce the
// same matrix. After filtering, exactly 9 letters must remain
// (ErrKeyLength otherwise); each maps to its alphabet index, filling the
// matrix row-major. ErrKeyCharacter guards the index lookup and is
// unreachable after sanitize.
//
// The returned matrix is a value: constructed once, immutable thereafter.
//
// Complexity: O(len(keyText)).
func NewKeyMatrix(keyText string) (matrix.Matrix3, error) {
	var key matrix.Matrix3

	cleaned := sanitize(keyText)
	if len(cleaned) != KeyLength {
		return key, ErrKeyLength
	}
	for i, r := range cleaned {
		idx := letterIndex(r)
		if idx < 0 {
			return matrix.Matrix3{}, ErrKeyCharacter
		}
		key[i/BlockSize][i%BlockSize] = idx
	}

	return key, nil
}
