// SPDX-License-Identifier: MIT

// Package matrix: domain types for fixed-size modular linear algebra.
// This file intentionally contains ONLY the value types; all operations live
// in matrix.go per the global conventions. There is no errors.go — with
// dimensions fixed by the types, no operation has a failure mode.
package matrix

// Matrix3 is a 3x3 integer matrix, row-major.
//
// Two semantic variants occur across the package: "raw" (arbitrary integers,
// possibly negative, as produced by cofactor subtraction in Det/Adjugate)
// and "reduced mod m" (every entry in [0, m), as produced by Mod and the
// *Mod operations). The distinction is a calling convention: any entry that
// will be read as a letter index must have passed through a reduction first.
//
// Matrix3 is a value type. Operations copy it; no function retains or
// aliases its argument.
type Matrix3 [3][3]int

// Vector3 is a 3-element integer column vector — one plaintext or
// ciphertext block of letter indices.
type Vector3 [3]int
