// Package qr: the Hermitian predicate.

package qr

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// IsHermitian reports whether a equals its own conjugate transpose within
// eps: |a[i,j] - conj(a[j,i])| <= eps for every pair. For real scalars this
// is plain symmetry. Non-square and nil matrices are not Hermitian.
// Complexity: O(n²), upper triangle plus the diagonal.
func IsHermitian[T scalar.Number](a *matrix.Matrix[T], eps float64) bool {
	if a == nil || a.Rows() != a.Cols() {
		return false
	}
	n := a.Rows()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if scalar.Abs(a.At(i, j)-scalar.Conj(a.At(j, i))) > eps {
				return false
			}
		}
	}
	return true
}
