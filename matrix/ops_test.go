// Package matrix_test: algebra kernels — element-wise ops, scaling,
// multiplication and the compound/allocating split.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// randomDense returns an r×c matrix with deterministic pseudo-random entries.
func randomDense(r, c int, seed int64) *matrix.Matrix[float64] {
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New[float64](r, c)
	m.ApplyToEach(func(v *float64) { *v = rng.Float64()*2 - 1 })
	return m
}

// TestAdditiveInverse checks (A + B) - B == A exactly for integer-valued
// entries (no rounding is involved in exact float addition of small ints).
func TestAdditiveInverse(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, -2}, {3, 4}})
	b := matrix.FromRows([][]float64{{5, 6}, {-7, 8}})

	got := matrix.Diff(matrix.Sum(a, b), b)
	assert.True(t, got.Equal(a), "(A+B)-B must reproduce A")
}

// TestAddSub_InPlace verifies compound forms mutate the receiver.
func TestAddSub_InPlace(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]float64{{1, 1}, {1, 1}})

	a.Add(b)
	assert.Equal(t, 5.0, a.At(1, 1), "Add mutates in place")
	a.Sub(b).Sub(b)
	assert.Equal(t, 1.0, a.At(1, 0), "chained Sub returns the receiver")
}

// TestScale covers in-place and allocating scalar multiplication.
func TestScale(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, -2}, {0, 4}})
	doubled := matrix.Scaled(a, 2.0)
	assert.Equal(t, -4.0, doubled.At(0, 1))
	assert.Equal(t, -2.0, a.At(0, 1), "Scaled must not mutate the source")

	a.Scale(-1.0)
	assert.Equal(t, 2.0, a.At(0, 1))
}

// TestMul_Literal pins a hand-computed product.
func TestMul_Literal(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := matrix.FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3×2

	got := matrix.Mul(a, b)
	want := matrix.FromRows([][]float64{{58, 64}, {139, 154}})
	assert.True(t, got.Equal(want), "Mul mismatch: got %v", got)
}

// TestMul_IdentityNeutrality checks A·I == A and I·A == A.
func TestMul_IdentityNeutrality(t *testing.T) {
	a := randomDense(3, 5, 42)

	right := matrix.Mul(a, matrix.Identity[float64](a.Cols()))
	left := matrix.Mul(matrix.Identity[float64](a.Rows()), a)
	assert.True(t, right.Equal(a), "A·I must equal A")
	assert.True(t, left.Equal(a), "I·A must equal A")
}

// TestMulRight verifies the compound product form.
func TestMulRight(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]float64{{0, 1}, {1, 0}})

	a.MulRight(b) // column swap
	want := matrix.FromRows([][]float64{{2, 1}, {4, 3}})
	assert.True(t, a.Equal(want))
}

// TestMul_Complex ensures accumulation happens in the scalar type.
func TestMul_Complex(t *testing.T) {
	a := matrix.FromRows([][]complex128{{complex(0, 1)}}) // 1×1, value i
	got := matrix.Mul(a, a)
	assert.Equal(t, complex(-1, 0), got.At(0, 0), "i·i must be -1")
}

// TestShapeContracts pins dimension mismatches as fatal.
func TestShapeContracts(t *testing.T) {
	a := matrix.NewSquare[float64](2)
	b := matrix.New[float64](2, 3)

	assert.PanicsWithValue(t, matrix.PanicDimensionMismatch, func() { a.Clone().Add(b) })
	assert.PanicsWithValue(t, matrix.PanicDimensionMismatch, func() { a.Clone().Sub(b) })
	assert.PanicsWithValue(t, matrix.PanicDimensionMismatch, func() { matrix.Mul(b, b) })
	assert.PanicsWithValue(t, matrix.PanicNilMatrix, func() { matrix.Sum[float64](a, nil) })
}

// TestApplyToEachIndexed visits every cell with correct coordinates.
func TestApplyToEachIndexed(t *testing.T) {
	m := matrix.New[float64](2, 3)
	m.ApplyToEachIndexed(func(v *float64, i, j int) { *v = float64(10*i + j) })

	require.Equal(t, 0.0, m.At(0, 0))
	require.Equal(t, 2.0, m.At(0, 2))
	require.Equal(t, 12.0, m.At(1, 2))
}
