// Package spectral: shifted QR iteration for Hermitian eigen-decomposition.

package spectral

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// PanicNotHermitian — Decompose requires a Hermitian input matrix.
const PanicNotHermitian = "spectral: decomposition requires a Hermitian matrix"

// SpectralPair bundles the result of Decompose: D converges toward a
// diagonal matrix holding the eigenvalues, and Q accumulates the orthogonal
// (unitary) transform whose columns approximate the eigenvectors. Both are
// freshly allocated and independent of the input.
type SpectralPair[T scalar.Number] struct {
	D *matrix.Matrix[T]
	Q *matrix.Matrix[T]
}

// Decompose runs the shifted QR iteration on a Hermitian matrix m.
//
// Per iteration, with the constant shift σ = opts.Shift:
//
//	Q, R ← Householder(D − σ·I)
//	D    ← R·Q + σ·I
//	acc  ← acc·Q
//	RoundZeroes(D, opts.Epsilon)
//
// The iteration count is fixed (opts.Iterations, default 100) — no
// convergence is detected or reported; results for matrices with closely
// spaced or repeated eigenvalues may be inaccurate within the budget. When
// opts.Tolerance > 0 the loop exits early once D is numerically diagonal.
//
// The Wilkinson shift helper is deliberately not used here: only the
// caller-supplied constant shift is applied (see package doc).
//
// Contract (fatal): m must be Hermitian within opts.Epsilon.
// Complexity: O(iterations · n³).
func Decompose[T scalar.Number](m *matrix.Matrix[T], opts *Options[T]) SpectralPair[T] {
	o := gatherOptions(opts)
	if !qr.IsHermitian(m, o.Epsilon) {
		panic(PanicNotHermitian)
	}

	var (
		d      = m.Clone()
		n      = d.Rows()
		shiftI = matrix.IdentityScaled(n, o.Shift)
		acc    = matrix.Identity[T](n)
	)
	for it := 0; it < o.Iterations; it++ {
		q, r := qr.Householder(matrix.Diff(d, shiftI))
		d = matrix.Mul(r, q).Add(shiftI)
		acc.MulRight(q)

		d.RoundZeroes(o.Epsilon)
		if o.Tolerance > 0 && offDiagonalBelow(d, o.Tolerance) {
			break
		}
	}

	return SpectralPair[T]{D: d, Q: acc}
}

// offDiagonalBelow reports whether every off-diagonal magnitude of m falls
// below tol, i.e. m is numerically diagonal.
func offDiagonalBelow[T scalar.Number](m *matrix.Matrix[T], tol float64) bool {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if i != j && scalar.Abs(m.At(i, j)) >= tol {
				return false
			}
		}
	}
	return true
}
