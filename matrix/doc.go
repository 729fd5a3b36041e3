// Package matrix provides fixed-size 3x3 integer matrix algebra over
// residue classes, the linear-algebra substrate of the Hill-cipher core.
//
// The matrix package provides:
//
//   - Matrix3 and Vector3 value types — plain [3][3]int / [3]int arrays,
//     copied by value, never aliased, never resized.
//   - Det and Adjugate over the raw integers (entries may be negative);
//     reduction into a residue class is always a separate, explicit step.
//   - ScalarMulMod, Mod and MulVecMod for arithmetic in Z_m, every result
//     entry normalized into [0, m).
//
// The fixed-size array types are deliberate: the system is defined only for
// 3x3, so dimensions are carried by the type and no operation can fail on
// shape. Raw vs reduced is a documented convention, not a type distinction —
// callers reduce exactly once, at the point a result becomes a residue.
//
// See the hill package for how these compose into CRT key inversion.
package matrix
