// Package matrix: in-place transpose and conjugate transpose.
//
// Transpose does NOT allocate a second buffer. Reinterpreting the row-major
// buffer under a row/column swap induces a permutation of flat indices:
// for a buffer of length N with R original rows, the element at flat index i
// (0 < i < N-1) belongs at (R·i) mod (N-1) after transposition, while 0 and
// N-1 are fixed points. The kernel walks each permutation cycle once,
// swapping pairwise and marking visited indices, so every element moves
// exactly once.

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// Transpose transposes m in place by following permutation cycles.
// Afterwards the row count equals the old column count.
// Complexity: O(r·c) time, O(r·c) bits for the visited markers.
func (m *Matrix[T]) Transpose() {
	size := len(m.data)
	if size <= 1 {
		return // empty or 1×1: nothing moves
	}
	var (
		cols    = m.Cols()   // new row count, fixed before rows changes
		last    = size - 1   // fixed point and cycle modulus
		visited = make([]bool, size)
		j       int
	)
	for i := 1; i < size; i++ {
		if visited[i] {
			continue
		}
		j = i
		for {
			if j != last {
				j = (m.rows * j) % last
			}
			m.data[i], m.data[j] = m.data[j], m.data[i]
			visited[j] = true
			if j == i {
				break
			}
		}
	}
	m.rows = cols
}

// Conjugate performs the conjugate transpose in place: Transpose, then —
// only when T is a complex kind — element-wise conjugation. For real kinds
// it is exactly Transpose.
// Complexity: O(r·c).
func (m *Matrix[T]) Conjugate() {
	m.Transpose()
	if scalar.IsComplex[T]() {
		m.ApplyToEach(func(v *T) { *v = scalar.Conj(*v) })
	}
}

// Transposed returns a transposed copy, leaving m untouched.
// Complexity: O(r·c).
func Transposed[T scalar.Number](m *Matrix[T]) *Matrix[T] {
	mustNotNil(m)
	out := m.Clone()
	out.Transpose()
	return out
}

// Conjugated returns a conjugate-transposed copy, leaving m untouched.
// Complexity: O(r·c).
func Conjugated[T scalar.Number](m *Matrix[T]) *Matrix[T] {
	mustNotNil(m)
	out := m.Clone()
	out.Conjugate()
	return out
}
