// Package qr: in-place Givens rotation primitives.
//
// The rotation pair (c, s) is derived from (a, b) as c = a/r, s = b/r with
// r = sqrt(a² + b²), so c² + s² == 1 in the scalar type (a complex-orthogonal
// rotation for complex scalars). When (a, b) maps to r == 0 there is nothing
// to rotate and the call is a no-op by convention.

package qr

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// rotationPair derives (c, s) from (a, b); ok is false for the degenerate
// zero pair.
func rotationPair[T scalar.Number](a, b T) (c, s T, ok bool) {
	r := scalar.Sqrt(a*a + b*b)
	if r == 0 {
		return 0, 0, false
	}
	return a / r, b / r, true
}

// GivensLeft applies the rotation derived from (a, b) to rows i and j of m,
// in place:
//
//	row_i ←  c·row_i + s·row_j
//	row_j ← -s·row_i + c·row_j
//
// With (a, b) = (m[i,k], m[j,k]) this zeroes m[j,k].
// Contract (fatal): i != j, both valid row indices.
// Complexity: O(cols).
func GivensLeft[T scalar.Number](m *matrix.Matrix[T], i, j int, a, b T) {
	mustRotate(i, j, m.Rows())
	c, s, ok := rotationPair(a, b)
	if !ok {
		return
	}
	var mi, mj T
	for k := 0; k < m.Cols(); k++ {
		mi, mj = m.At(i, k), m.At(j, k)
		m.Set(i, k, c*mi+s*mj)
		m.Set(j, k, -s*mi+c*mj)
	}
}

// GivensRight applies the transposed rotation derived from (a, b) to columns
// i and j of m, in place:
//
//	col_i ←  c·col_i + s·col_j
//	col_j ← -s·col_i + c·col_j
//
// With (a, b) = (m[k,i], m[k,j]) this zeroes m[k,j]. Because the rotation is
// the transpose of GivensLeft's, a left/right pair with the same (a, b)
// cancels in a product: (M·Gᵀ)·(G·N) == M·N.
// Contract (fatal): i != j, both valid column indices.
// Complexity: O(rows).
func GivensRight[T scalar.Number](m *matrix.Matrix[T], i, j int, a, b T) {
	mustRotate(i, j, m.Cols())
	c, s, ok := rotationPair(a, b)
	if !ok {
		return
	}
	var mi, mj T
	for k := 0; k < m.Rows(); k++ {
		mi, mj = m.At(k, i), m.At(k, j)
		m.Set(k, i, c*mi+s*mj)
		m.Set(k, j, -s*mi+c*mj)
	}
}

// mustRotate guards the rotation index contract against limit (row count for
// left rotations, column count for right rotations).
func mustRotate(i, j, limit int) {
	if i == j {
		panic(PanicSameIndex)
	}
	if i < 0 || i >= limit || j < 0 || j >= limit {
		panic(PanicIndexRange)
	}
}
