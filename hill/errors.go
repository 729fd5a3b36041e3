package hill

import "errors"

var (
	// ErrKeyLength indicates the key did not contain exactly 9 alphabetic
	// characters after filtering.
	ErrKeyLength = errors.New("hill: key must contain exactly 9 alphabetic characters (A-Z)")
	// ErrKeyCharacter indicates a key character mapped to no letter index.
	// Unreachable after filtering; kept as a defensive guard.
	ErrKeyCharacter = errors.New("hill: key contains invalid character")
	// ErrNotInvertibleMod2 indicates det(key) ≡ 0 (mod 2): no inverse mod 26.
	ErrNotInvertibleMod2 = errors.New("hill: key determinant is 0 modulo 2 - not invertible mod 26")
	// ErrNotInvertibleMod13 indicates det(key) ≡ 0 (mod 13): no inverse mod 26.
	ErrNotInvertibleMod13 = errors.New("hill: key determinant is 0 modulo 13 - not invertible mod 26")
	// ErrDetNotInvertible indicates a determinant inverse computation failed
	// despite the parity checks passing. Should be unreachable: after the
	// mod-2/mod-13 rejections the residues are units in their prime moduli.
	ErrDetNotInvertible = errors.New("hill: determinant not invertible modulo 2 or 13")
)
