// Package lvlinalg is a compact playground for dense linear algebra over
// real and complex floating-point scalars — from the matrix container up
// to iterative spectral solvers.
//
// 🚀 What is lvlinalg?
//
//	A small, deterministic, generics-first library that brings together:
//		• Dense matrices: flat row-major storage, basic algebra, in-place
//		  cycle-following transpose and conjugate transpose
//		• Factorizations: Householder QR and Givens rotation primitives
//		• Spectral solvers: shifted-QR symmetric eigen-decomposition and an
//		  implicit-shift bidiagonal QR sweep for singular values, both driven
//		  by the Wilkinson shift heuristic
//
// ✨ Why choose lvlinalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Generic by design – one code path for float32/float64/complex64/complex128
//   - Pure Go – no cgo, no hidden deps
//   - Fail-fast contracts – precondition violations panic immediately instead
//     of silently producing garbage
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/   — numeric capability layer shared by all kernels (Conj, Abs, Sqrt, Sign)
//	matrix/   — the generic dense Matrix[T] container and its basic algebra
//	qr/       — Householder QR, Givens rotations, the Hermitian predicate
//	spectral/ — Wilkinson shift, eigen-decomposition, bidiagonal SVD sweep
//
// Quick taste:
//
//	m := matrix.FromRows([][]float64{{2, 1}, {1, 2}})
//	pair := spectral.Decompose(m, nil)     // D ≈ diag(3, 1), Q orthogonal
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
