// Package matrix: extraction of rows, columns, diagonals and submatrices.
// Every extractor returns a fresh owned copy — never a view into the source
// buffer — so the result can be mutated freely.

package matrix

// Row returns row i as a fresh 1×cols matrix.
// Panics with PanicOutOfRange if i is not a valid row index.
// Complexity: O(cols).
func (m *Matrix[T]) Row(i int) *Matrix[T] {
	m.mustIndex(i, 0)
	cols := m.Cols()
	out := New[T](1, cols)
	copy(out.data, m.data[i*cols:(i+1)*cols])
	return out
}

// Column returns column j as a fresh rows×1 matrix.
// Panics with PanicOutOfRange if j is not a valid column index.
// Complexity: O(rows).
func (m *Matrix[T]) Column(j int) *Matrix[T] {
	m.mustIndex(0, j)
	cols := m.Cols()
	out := New[T](m.rows, 1)
	for i := 0; i < m.rows; i++ {
		out.data[i] = m.data[i*cols+j]
	}
	return out
}

// Diag returns the main diagonal as a fresh min(rows,cols)×1 matrix,
// or 1×min(rows,cols) when transpose is true.
// Complexity: O(min(rows,cols)).
func (m *Matrix[T]) Diag(transpose bool) *Matrix[T] {
	size := min(m.rows, m.Cols())
	if size == 0 {
		panic(PanicBadShape)
	}
	out := New[T](size, 1)
	cols := m.Cols()
	for i := 0; i < size; i++ {
		out.data[i] = m.data[i*cols+i]
	}
	if transpose {
		out.Transpose()
	}
	return out
}

// Submatrix returns the block over half-open row range [r0, r1) and column
// range [c0, c1) as a fresh (r1-r0)×(c1-c0) matrix.
// Panics with PanicBadRange on an empty or out-of-bounds range.
// Complexity: O((r1-r0)·(c1-c0)).
func (m *Matrix[T]) Submatrix(r0, r1, c0, c1 int) *Matrix[T] {
	if r0 < 0 || r1 > m.rows || r0 >= r1 || c0 < 0 || c1 > m.Cols() || c0 >= c1 {
		panic(PanicBadRange)
	}
	cols := m.Cols()
	out := New[T](r1-r0, c1-c0)
	for i := r0; i < r1; i++ {
		copy(out.data[(i-r0)*(c1-c0):(i-r0+1)*(c1-c0)], m.data[i*cols+c0:i*cols+c1])
	}
	return out
}
