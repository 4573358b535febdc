// Package qr: Householder QR factorization.

package qr

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// Contract violation messages (single source of truth, no magic strings).
const (
	// PanicEmptyFactor — factorization of a nil or zero-sized matrix.
	PanicEmptyFactor = "qr: factorization requires a non-empty matrix"

	// PanicSameIndex — a Givens rotation with i == j is undefined.
	PanicSameIndex = "qr: rotation indices must differ"

	// PanicIndexRange — a Givens rotation index is out of bounds.
	PanicIndexRange = "qr: rotation index out of range"
)

// reflectTol guards against dividing by a vanishing reflector norm; columns
// whose sub-diagonal mass is below this are already in upper-triangular form
// and are skipped (which also keeps Q == I for diagonal inputs).
const reflectTol = 1e-30

// Householder factors a into q·r using Householder reflections.
//
// Contract (fatal): a must be non-nil and non-empty.
//
// Postconditions:
//   - q is a.Rows()×a.Rows() and unitary (orthogonal for real scalars);
//   - r has the shape of a, upper-triangular in its leading square block;
//   - q·r reproduces a within floating-point tolerance.
//
// A column whose entries below the diagonal are already (numerically) zero
// is skipped rather than reflected, so an upper-triangular input yields
// q == I and r == a exactly.
//
// Complexity: O(n·r·c) time for an r×c input with n = min(r, c),
// O(r²) memory for q.
func Householder[T scalar.Number](a *matrix.Matrix[T]) (q, r *matrix.Matrix[T]) {
	if a == nil || a.IsEmpty() {
		panic(PanicEmptyFactor)
	}
	var (
		rows = a.Rows()
		cols = a.Cols()
		n    = min(rows, cols)
		one  = scalar.FromFloat[T](1)
		two  = scalar.FromFloat[T](2)
	)
	r = a.Clone()
	q = matrix.Identity[T](rows)
	v := make([]T, rows) // reflector, reused across columns

	for k := 0; k < n; k++ {
		// Mass of column k strictly below the diagonal; nothing to
		// annihilate means no reflection for this column.
		below := 0.0
		for i := k + 1; i < rows; i++ {
			below += scalar.Abs(r.At(i, k)) * scalar.Abs(r.At(i, k))
		}
		if below < reflectTol {
			continue
		}

		// Column norm from the diagonal down, as a real scalar of T.
		norm2 := below + scalar.Abs(r.At(k, k))*scalar.Abs(r.At(k, k))
		norm := scalar.Sqrt(scalar.FromFloat[T](norm2))

		// alpha = -phase(r_kk)·‖x‖; a zero pivot takes phase +1.
		phase := scalar.Sign(r.At(k, k))
		if phase == 0 {
			phase = one
		}
		alpha := -phase * norm

		// Reflector v = x - alpha·e_k over rows k..rows-1.
		for i := 0; i < rows; i++ {
			v[i] = 0
		}
		for i := k; i < rows; i++ {
			v[i] = r.At(i, k)
		}
		v[k] -= alpha

		// beta = v†v; tau = 2/beta. beta is real-positive by construction.
		beta := 0.0
		for i := k; i < rows; i++ {
			beta += scalar.Abs(v[i]) * scalar.Abs(v[i])
		}
		if beta < reflectTol {
			continue
		}
		tau := two / scalar.FromFloat[T](beta)

		// r ← H·r with H = I - tau·v·v†: update columns k..cols-1.
		var sum T
		for j := k; j < cols; j++ {
			sum = 0
			for i := k; i < rows; i++ {
				sum += scalar.Conj(v[i]) * r.At(i, j)
			}
			for i := k; i < rows; i++ {
				r.Set(i, j, r.At(i, j)-tau*v[i]*sum)
			}
		}

		// q ← q·H (right-accumulation keeps q = H_0·H_1·…·H_{n-1} overall,
		// i.e. the factor with q·r == a).
		for i := 0; i < rows; i++ {
			sum = 0
			for l := k; l < rows; l++ {
				sum += q.At(i, l) * v[l]
			}
			for j := k; j < rows; j++ {
				q.Set(i, j, q.At(i, j)-tau*sum*scalar.Conj(v[j]))
			}
		}
	}

	return q, r
}
