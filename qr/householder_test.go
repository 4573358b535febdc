// Package qr_test: Householder factorization contract tests — reconstruction,
// unitarity, triangularity and the fatal-empty contract.
package qr_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
	"github.com/katalvlaran/lvlinalg/scalar"
)

const tol = 1e-10

// randomDense returns a deterministic pseudo-random r×c matrix.
func randomDense(r, c int, seed int64) *matrix.Matrix[float64] {
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New[float64](r, c)
	m.ApplyToEach(func(v *float64) { *v = rng.Float64()*2 - 1 })
	return m
}

// assertNear fails unless a and b agree element-wise within eps.
func assertNear[T scalar.Number](t *testing.T, want, got *matrix.Matrix[T], eps float64, msg string) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), msg)
	require.Equal(t, want.Cols(), got.Cols(), msg)
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			if scalar.Abs(want.At(i, j)-got.At(i, j)) > eps {
				t.Fatalf("%s: element [%d,%d]: want %v, got %v", msg, i, j, want.At(i, j), got.At(i, j))
			}
		}
	}
}

// assertUnitary fails unless q†·q ≈ I.
func assertUnitary[T scalar.Number](t *testing.T, q *matrix.Matrix[T], eps float64) {
	t.Helper()
	prod := matrix.Mul(matrix.Conjugated(q), q)
	assertNear(t, matrix.Identity[T](q.Rows()), prod, eps, "q†·q must be identity")
}

// TestHouseholder_Reconstruction checks a == q·r on random square and
// rectangular inputs.
func TestHouseholder_Reconstruction(t *testing.T) {
	for _, tc := range []struct {
		name string
		a    *matrix.Matrix[float64]
	}{
		{"square_3x3", randomDense(3, 3, 1)},
		{"square_6x6", randomDense(6, 6, 2)},
		{"tall_5x3", randomDense(5, 3, 3)},
		{"wide_3x5", randomDense(3, 5, 4)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q, r := qr.Householder(tc.a)

			require.Equal(t, tc.a.Rows(), q.Rows(), "q must be square of size a.Rows()")
			require.Equal(t, tc.a.Rows(), q.Cols())
			require.Equal(t, tc.a.Rows(), r.Rows(), "r must keep the input shape")
			require.Equal(t, tc.a.Cols(), r.Cols())

			assertNear(t, tc.a, matrix.Mul(q, r), tol, "q·r must reproduce a")
			assertUnitary(t, q, tol)
		})
	}
}

// TestHouseholder_UpperTriangular checks that r's leading square block has
// (numerically) zero entries below the diagonal.
func TestHouseholder_UpperTriangular(t *testing.T) {
	a := randomDense(4, 4, 5)
	_, r := qr.Householder(a)

	for i := 1; i < r.Rows(); i++ {
		for j := 0; j < i && j < r.Cols(); j++ {
			assert.InDelta(t, 0.0, r.At(i, j), tol, "r[%d,%d] below the diagonal", i, j)
		}
	}
}

// TestHouseholder_DiagonalFixedPoint: an already upper-triangular (here
// diagonal) input must factor as q == I, r == a exactly — no reflection is
// performed when there is nothing to annihilate.
func TestHouseholder_DiagonalFixedPoint(t *testing.T) {
	a := matrix.NewDiagonal([]float64{5, 3})
	q, r := qr.Householder(a)

	assert.True(t, q.Equal(matrix.Identity[float64](2)), "q must be the exact identity")
	assert.True(t, r.Equal(a), "r must be the exact input")
}

// TestHouseholder_Complex verifies reconstruction and unitarity for a
// complex input.
func TestHouseholder_Complex(t *testing.T) {
	a := matrix.FromRows([][]complex128{
		{complex(1, 1), complex(2, -1)},
		{complex(0, 3), complex(-1, 2)},
	})
	q, r := qr.Householder(a)

	assertNear(t, a, matrix.Mul(q, r), tol, "q·r must reproduce a (complex)")
	assertUnitary(t, q, tol)
	assert.InDelta(t, 0.0, scalar.Abs(r.At(1, 0)), tol, "r must be upper-triangular")
}

// TestHouseholder_EmptyContract pins the fatal-empty precondition.
func TestHouseholder_EmptyContract(t *testing.T) {
	assert.PanicsWithValue(t, qr.PanicEmptyFactor, func() {
		var empty matrix.Matrix[float64]
		qr.Householder(&empty)
	})
	assert.PanicsWithValue(t, qr.PanicEmptyFactor, func() {
		qr.Householder[float64](nil)
	})
}
