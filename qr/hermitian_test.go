// Package qr_test: the Hermitian predicate.
package qr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/qr"
)

func TestIsHermitian_RealSymmetric(t *testing.T) {
	sym := matrix.FromRows([][]float64{
		{2, 1, 0},
		{1, 3, -4},
		{0, -4, 1},
	})
	assert.True(t, qr.IsHermitian(sym, matrix.DefaultEpsilon))

	asym := sym.Clone()
	asym.Set(0, 2, 5)
	assert.False(t, qr.IsHermitian(asym, matrix.DefaultEpsilon))
}

func TestIsHermitian_Complex(t *testing.T) {
	// Hermitian: real diagonal, conjugate-mirrored off-diagonal.
	h := matrix.FromRows([][]complex128{
		{complex(2, 0), complex(1, -3)},
		{complex(1, 3), complex(5, 0)},
	})
	assert.True(t, qr.IsHermitian(h, matrix.DefaultEpsilon))

	// Symmetric but NOT Hermitian: off-diagonal pair equal instead of conjugate.
	s := matrix.FromRows([][]complex128{
		{complex(2, 0), complex(1, 3)},
		{complex(1, 3), complex(5, 0)},
	})
	assert.False(t, qr.IsHermitian(s, matrix.DefaultEpsilon))

	// Complex diagonal entry breaks Hermitian-ness.
	d := h.Clone()
	d.Set(0, 0, complex(2, 1))
	assert.False(t, qr.IsHermitian(d, matrix.DefaultEpsilon))
}

func TestIsHermitian_Shape(t *testing.T) {
	assert.False(t, qr.IsHermitian(matrix.New[float64](2, 3), matrix.DefaultEpsilon),
		"non-square matrices are never Hermitian")
	assert.False(t, qr.IsHermitian[float64](nil, matrix.DefaultEpsilon))
}

func TestIsHermitian_Tolerance(t *testing.T) {
	m := matrix.FromRows([][]float64{
		{1, 2 + 1e-12},
		{2, 1},
	})
	assert.True(t, qr.IsHermitian(m, 1e-9), "asymmetry below eps is accepted")
	assert.False(t, qr.IsHermitian(m, 1e-15), "asymmetry above eps is rejected")
}
