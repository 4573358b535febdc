// Package matrix: basic algebra kernels.
//
// Each operation comes in two forms, mirroring compound vs binary operators:
//   - in-place compound methods (Add, Sub, Scale, MulRight) mutate the
//     receiver and return it for chaining;
//   - allocating package functions (Sum, Diff, Scaled, Mul) leave operands
//     untouched and return a fresh matrix.
//
// All shape requirements are contracts: mismatches panic with
// PanicDimensionMismatch (see validators.go).

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// Add adds rhs element-wise into m and returns m.
// Contract: identical shapes.
// Complexity: O(r·c).
func (m *Matrix[T]) Add(rhs *Matrix[T]) *Matrix[T] {
	mustNotNil(rhs)
	mustSameShape(m, rhs)
	for i := range m.data {
		m.data[i] += rhs.data[i]
	}
	return m
}

// Sub subtracts rhs element-wise from m and returns m.
// Contract: identical shapes.
// Complexity: O(r·c).
func (m *Matrix[T]) Sub(rhs *Matrix[T]) *Matrix[T] {
	mustNotNil(rhs)
	mustSameShape(m, rhs)
	for i := range m.data {
		m.data[i] -= rhs.data[i]
	}
	return m
}

// Scale multiplies every element of m by k and returns m.
// Complexity: O(r·c).
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	for i := range m.data {
		m.data[i] *= k
	}
	return m
}

// MulRight replaces m with m·rhs.
// Contract: m.Cols() == rhs.Rows().
// Complexity: O(r·k·c) time, O(r·c) memory for the product buffer.
func (m *Matrix[T]) MulRight(rhs *Matrix[T]) *Matrix[T] {
	*m = *Mul(m, rhs)
	return m
}

// Sum returns a + b as a fresh matrix.
// Contract: identical shapes.
func Sum[T scalar.Number](a, b *Matrix[T]) *Matrix[T] {
	mustNotNil(a, b)
	return a.Clone().Add(b)
}

// Diff returns a - b as a fresh matrix.
// Contract: identical shapes.
func Diff[T scalar.Number](a, b *Matrix[T]) *Matrix[T] {
	mustNotNil(a, b)
	return a.Clone().Sub(b)
}

// Scaled returns k·m as a fresh matrix.
func Scaled[T scalar.Number](m *Matrix[T], k T) *Matrix[T] {
	mustNotNil(m)
	return m.Clone().Scale(k)
}

// Mul returns the matrix product a·b as a fresh a.Rows()×b.Cols() matrix,
// accumulating in T via the standard triple loop.
// Contract: a.Cols() == b.Rows().
// Complexity: O(a.Rows()·a.Cols()·b.Cols()).
func Mul[T scalar.Number](a, b *Matrix[T]) *Matrix[T] {
	mustNotNil(a, b)
	if a.Cols() != b.rows {
		panic(PanicDimensionMismatch)
	}
	var (
		n, k, c = a.rows, a.Cols(), b.Cols()
		out     = New[T](n, c)
		sum     T
	)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			sum = 0
			for l := 0; l < k; l++ {
				sum += a.data[i*k+l] * b.data[l*c+j]
			}
			out.data[i*c+j] = sum
		}
	}
	return out
}

// ApplyToEach invokes fn on a pointer to every element, in row-major order.
// Complexity: O(r·c).
func (m *Matrix[T]) ApplyToEach(fn func(v *T)) {
	for i := range m.data {
		fn(&m.data[i])
	}
}

// ApplyToEachIndexed invokes fn on every element together with its (row,
// column) position, in row-major order.
// Complexity: O(r·c).
func (m *Matrix[T]) ApplyToEachIndexed(fn func(v *T, i, j int)) {
	cols := m.Cols()
	if cols == 0 {
		return
	}
	for i := range m.data {
		fn(&m.data[i], i/cols, i%cols)
	}
}
