// Package spectral: implicit-shift QR sweep for bidiagonal matrices.

package spectral

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// PanicBidiagonalTooSmall — the sweep needs a trailing 2×2 block, so both
// dimensions must be at least 2.
const PanicBidiagonalTooSmall = "spectral: bidiagonal input must be at least 2x2"

// BidiagonalSVD bundles the result of BidiagonalQR: U (left factor, square
// of the input row count), S (near-diagonal, holding the singular values on
// its diagonal) and VT (right factor transposed, square of the input column
// count). The invariant U·S·VT == input holds exactly up to rounding at
// every point of the iteration.
type BidiagonalSVD[T scalar.Number] struct {
	U  *matrix.Matrix[T]
	S  *matrix.Matrix[T]
	VT *matrix.Matrix[T]
}

// BidiagonalQR runs the implicit-shift bulge-chasing QR sweep on a matrix b
// that is assumed to be in upper bidiagonal form already (this package does
// not bidiagonalize general inputs).
//
// Each sweep:
//  1. forms the trailing 2×2 block of the implicit BᵗB from the last two
//     columns/rows of the working matrix S,
//  2. takes its Wilkinson shift,
//  3. introduces the bulge with a column rotation derived from
//     (S[0,0]² − shift, S[0,1]·S[0,0]) and chases it down the matrix with
//     alternating column/row Givens rotations — every column rotation is
//     mirrored into VT and every row rotation into U so the product
//     U·S·VT never changes,
//  4. flushes sub-Epsilon noise from S.
//
// The sweep count is fixed (opts.Iterations, default 100) and applied
// uniformly with no deflation of already-converged singular values. The
// diagonal of S approximates the singular values but is neither sorted nor
// sign-normalized — callers needing canonical form must post-process. When
// opts.Tolerance > 0 the loop exits early once S is numerically diagonal.
// opts.Shift is ignored: the shift is derived per sweep.
//
// Contract (fatal): b must be at least 2×2.
// Complexity: O(iterations · (r + c) · min(r, c)).
func BidiagonalQR[T scalar.Number](b *matrix.Matrix[T], opts *Options[T]) BidiagonalSVD[T] {
	o := gatherOptions(opts)
	if b == nil || b.Rows() < 2 || b.Cols() < 2 {
		panic(PanicBidiagonalTooSmall)
	}

	var (
		s    = b.Clone()
		r    = s.Rows()
		c    = s.Cols()
		size = min(r, c)
		u    = matrix.Identity[T](r)
		vt   = matrix.Identity[T](c)
		f, g T
	)
	for it := 0; it < o.Iterations; it++ {
		// Trailing 2×2 block of the implicit tridiagonal BᵗB. The [0,0]
		// entry picks up the superdiagonal square from row r-3 when it
		// exists (column c-2 is entered from above in BᵗB).
		minor := s.Submatrix(r-2, r, c-2, c)
		bb := matrix.NewSquare[T](2)
		var super T
		if r >= 3 {
			super = s.At(r-3, c-2)
		}
		bb.Set(0, 0, minor.At(0, 0)*minor.At(0, 0)+super*super)
		bb.Set(1, 0, minor.At(0, 0)*minor.At(0, 1))
		bb.Set(0, 1, bb.At(1, 0))
		bb.Set(1, 1, minor.At(0, 1)*minor.At(0, 1)+minor.At(1, 1)*minor.At(1, 1))

		shift := WilkinsonShift(bb)

		for i := 0; i < size; i++ {
			// Column step: introduce (i == 0) or advance (i > 0) the bulge.
			if i+1 < c {
				if i > 0 {
					f, g = s.At(i-1, i), s.At(i-1, i+1)
				} else {
					f, g = s.At(0, 0)*s.At(0, 0)-shift, s.At(0, 1)*s.At(0, 0)
				}
				qr.GivensLeft(vt, i, i+1, f, g)
				qr.GivensRight(s, i, i+1, f, g)
			}

			// Row step: chase the bulge one position down, restoring the
			// bidiagonal structure below the diagonal.
			if i+1 < r {
				f, g = s.At(i, i), s.At(i+1, i)
				qr.GivensRight(u, i, i+1, f, g)
				qr.GivensLeft(s, i, i+1, f, g)
			}
		}

		s.RoundZeroes(o.Epsilon)
		if o.Tolerance > 0 && offDiagonalBelow(s, o.Tolerance) {
			break
		}
	}

	return BidiagonalSVD[T]{U: u, S: s, VT: vt}
}
