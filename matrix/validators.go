// Package matrix: contract messages and centralized guards.
//
// Purpose:
//   - Provide a single, canonical source of truth for precondition checks.
//   - Keep constructors and kernels minimal by delegating shape/index guards
//     here.
//
// Contract policy:
//   - Precondition violations are programmer errors, not recoverable
//     conditions: every guard panics with one of the named message constants
//     below. Nothing is clamped, and no error channel exists for contracts.
//   - Messages are prefixed with "matrix: ..." for consistency and to allow
//     easy grepping across stack traces. No magic strings at call sites.

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// Contract violation messages (single source of truth, no magic strings).
const (
	// PanicBadShape — a constructor received a non-positive dimension.
	PanicBadShape = "matrix: dimensions must be > 0"

	// PanicOutOfRange — a row or column index is outside valid bounds.
	PanicOutOfRange = "matrix: index out of range"

	// PanicDimensionMismatch — operand shapes are incompatible
	// (Add/Sub different shapes, or Mul where a.Cols() != b.Rows()).
	PanicDimensionMismatch = "matrix: dimension mismatch"

	// PanicRaggedRows — a nested-literal row differs in length from the first.
	PanicRaggedRows = "matrix: literal rows must all share one length"

	// PanicEmptyDiag — the diagonal sequence for NewDiagonal is empty.
	PanicEmptyDiag = "matrix: diagonal sequence must not be empty"

	// PanicBadRange — a Submatrix range is empty or out of bounds.
	PanicBadRange = "matrix: submatrix range out of bounds"

	// PanicNilMatrix — a nil *Matrix was passed where a value is required.
	PanicNilMatrix = "matrix: nil matrix"
)

// mustPositive guards constructor dimensions.
func mustPositive(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(PanicBadShape)
	}
}

// mustNotNil guards package-level binary operations against nil operands.
func mustNotNil[T scalar.Number](ms ...*Matrix[T]) {
	for _, m := range ms {
		if m == nil {
			panic(PanicNilMatrix)
		}
	}
}

// mustIndex guards element access; i is a row index, j a column index.
func (m *Matrix[T]) mustIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.Cols() {
		panic(PanicOutOfRange)
	}
}

// mustSameShape guards element-wise binary operations.
func mustSameShape[T scalar.Number](a, b *Matrix[T]) {
	if a.rows != b.rows || a.Cols() != b.Cols() {
		panic(PanicDimensionMismatch)
	}
}
