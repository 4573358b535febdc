// Package matrix: the Matrix[T] container, its constructors and accessors.
//
// Storage model:
//   - One flat row-major slice; element (i, j) lives at data[i*cols+j].
//   - rows is stored, cols is derived as len(data)/rows (0 for the zero
//     value), so the len(data) == rows*cols invariant cannot drift.

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// Matrix is a dense rows×cols array of scalars T in row-major order.
// The zero value is an empty matrix (0×0); every constructor below produces
// a matrix with rows > 0 and cols > 0 or panics.
type Matrix[T scalar.Number] struct {
	rows int // number of rows; 0 only for the zero value
	data []T // flat backing storage, length == rows*cols
}

// NewSquare returns an n×n zero-filled matrix.
// Panics with PanicBadShape if n <= 0.
// Complexity: O(n²).
func NewSquare[T scalar.Number](n int) *Matrix[T] {
	return New[T](n, n)
}

// New returns a rows×cols zero-filled matrix.
// Panics with PanicBadShape if either dimension is non-positive.
// Complexity: O(rows·cols).
func New[T scalar.Number](rows, cols int) *Matrix[T] {
	mustPositive(rows, cols)
	return &Matrix[T]{rows: rows, data: make([]T, rows*cols)}
}

// NewFilled returns a rows×cols matrix with every element set to v.
// Panics with PanicBadShape if either dimension is non-positive.
// Complexity: O(rows·cols).
func NewFilled[T scalar.Number](rows, cols int, v T) *Matrix[T] {
	m := New[T](rows, cols)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// NewDiagonal returns a square matrix with diag on the main diagonal and
// zeros elsewhere.
// Panics with PanicEmptyDiag if diag is empty.
// Complexity: O(n²) for n = len(diag).
func NewDiagonal[T scalar.Number](diag []T) *Matrix[T] {
	if len(diag) == 0 {
		panic(PanicEmptyDiag)
	}
	m := NewSquare[T](len(diag))
	for i, v := range diag {
		m.data[i*len(diag)+i] = v
	}
	return m
}

// FromRows builds a matrix from a nested row literal.
// Panics with PanicBadShape on an empty literal (or empty first row) and
// with PanicRaggedRows when rows differ in length.
// Complexity: O(rows·cols).
func FromRows[T scalar.Number](rows [][]T) *Matrix[T] {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic(PanicBadShape)
	}
	cols := len(rows[0])
	m := &Matrix[T]{rows: len(rows), data: make([]T, 0, len(rows)*cols)}
	for _, row := range rows {
		if len(row) != cols {
			panic(PanicRaggedRows)
		}
		m.data = append(m.data, row...)
	}
	return m
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity[T scalar.Number](n int) *Matrix[T] {
	return IdentityScaled(n, scalar.FromFloat[T](1))
}

// IdentityScaled returns an n×n matrix with v on the diagonal and zeros
// elsewhere (v·I).
// Panics with PanicBadShape if n <= 0.
// Complexity: O(n²).
func IdentityScaled[T scalar.Number](n int, v T) *Matrix[T] {
	if n <= 0 {
		panic(PanicBadShape)
	}
	diag := make([]T, n)
	for i := range diag {
		diag[i] = v
	}
	return NewDiagonal(diag)
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns, derived from the buffer length.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m.rows == 0 {
		return 0
	}
	return len(m.data) / m.rows
}

// At returns the element at (i, j).
// Panics with PanicOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) T {
	m.mustIndex(i, j)
	return m.data[i*m.Cols()+j]
}

// Set assigns v at (i, j).
// Panics with PanicOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.mustIndex(i, j)
	m.data[i*m.Cols()+j] = v
}

// Clone returns a deep copy; the result owns an independent buffer.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, data: make([]T, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports structural equality: same row count and element-wise equal
// buffers. Matrices have no total order; equality is the only comparison.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Equal(rhs *Matrix[T]) bool {
	if rhs == nil || m.rows != rhs.rows || len(m.data) != len(rhs.data) {
		return false
	}
	for i := range m.data {
		if m.data[i] != rhs.data[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether m is the zero value (no storage).
// Complexity: O(1).
func (m *Matrix[T]) IsEmpty() bool { return m.rows == 0 }
