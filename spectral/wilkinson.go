// Package spectral: the Wilkinson shift heuristic.

package spectral

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// Contract violation messages (no magic strings).
const (
	// PanicNot2x2 — WilkinsonShift requires an exactly 2×2 block.
	PanicNot2x2 = "spectral: Wilkinson shift requires a 2x2 matrix"

	// PanicAsymmetric — WilkinsonShift requires m[0,1] == m[1,0].
	PanicAsymmetric = "spectral: Wilkinson shift requires a symmetric matrix"
)

// WilkinsonShift computes the shift for a symmetric 2×2 block m:
//
//	d     = (m[0,0] − m[1,1]) / 2
//	c     = |d| + sqrt(d² + m[0,1]²)
//	shift = m[1,1] − sign(d)·m[0,1]² / c
//
// This is the eigenvalue of m closer to m[1,1]; re-centering an iteration on
// it accelerates convergence of the trailing block.
//
// Conventions pinned here:
//   - sign(0) = 0 (see scalar.Sign), so a block with equal diagonal entries
//     shifts by exactly m[1,1] — e.g. [[2,1],[1,2]] yields exactly 2.
//   - A fully degenerate block (d == 0 and m[0,1] == 0, hence c == 0)
//     returns m[1,1] instead of dividing 0 by 0.
//
// Contract (fatal): m must be exactly 2×2 with m[0,1] == m[1,0].
// Complexity: O(1).
func WilkinsonShift[T scalar.Number](m *matrix.Matrix[T]) T {
	if m == nil || m.Rows() != 2 || m.Cols() != 2 {
		panic(PanicNot2x2)
	}
	if m.At(0, 1) != m.At(1, 0) {
		panic(PanicAsymmetric)
	}

	var (
		off = m.At(0, 1)
		d   = (m.At(0, 0) - m.At(1, 1)) / scalar.FromFloat[T](2)
		c   = scalar.AbsT(d) + scalar.Sqrt(d*d+off*off)
	)
	if c == 0 {
		return m.At(1, 1) // degenerate zero block: the shift is the entry itself
	}
	return m.At(1, 1) - scalar.Sign(d)*off*off/c
}
