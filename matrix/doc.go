// Package matrix provides the generic dense Matrix[T] container that every
// lvlinalg kernel operates on, together with its basic algebra.
//
// 🚀 What is matrix.Matrix[T]?
//
//	A two-dimensional array of real or complex floating-point scalars,
//	stored as one contiguous row-major slice:
//	  • Constructors: square / rectangular (optionally filled), diagonal,
//	    nested-literal rows, scaled identity
//	  • Algebra: element-wise Add/Sub, scalar Scale, matrix Mul — each with
//	    an in-place compound form and an allocating binary counterpart
//	  • Extraction: Row, Column, Diag, Submatrix — always fresh owned copies
//	  • Transforms: in-place cycle-following Transpose, Conjugate
//	    (conjugate transpose), and their non-mutating wrappers
//	  • Hygiene: RoundZeroes flushes numerical noise below a threshold
//
// ⚙️ Semantics worth knowing:
//
//   - A Matrix exclusively owns its buffer. Clone is the deep copy; plain
//     struct assignment shares the buffer and must be treated as a move.
//   - Equality (Equal) is structural: same row count, element-wise equal
//     buffer. Matrices have no total order — there is deliberately no
//     Less/Compare surface.
//   - All input validation is a contract, not a recoverable error: dimension
//     mismatches, zero-sized construction, ragged literals and out-of-range
//     indices panic immediately (see validators.go for the message set).
//     Nothing is clamped or auto-corrected.
//
// Complexity:
//
//	At/Set are O(1); Add/Sub/Scale/RoundZeroes are O(r·c);
//	Mul is the standard O(r·k·c) triple loop;
//	Transpose is O(r·c) time plus O(r·c) bits of visited markers, moving
//	every element exactly once along its permutation cycle.
package matrix
