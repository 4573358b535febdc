// Package qr provides the orthogonal-transform primitives the spectral
// solvers are built on: Householder QR factorization, in-place Givens
// rotations, and the Hermitian predicate.
//
// 🚀 What lives here?
//
//   - Householder(a) → (q, r): a == q·r within floating-point tolerance,
//     q square and unitary of size a.Rows(), r the same shape as a and
//     upper-triangular in its leading square block.
//   - GivensLeft / GivensRight: the 2×2 rotation derived from a pair (a, b),
//     applied in place to two rows (left) or two columns (right), zeroing
//     the targeted sub-/super-diagonal entry.
//   - IsHermitian(a, eps): a equals its own conjugate transpose within eps
//     (plain symmetry for real scalars).
//
// All kernels are generic over real and complex scalars: inner products are
// conjugated, and the Householder reflection uses the phase sign(a_kk), so
// the same code path is correct on both axes.
//
// Contracts (fatal, not recoverable): factoring an empty matrix, rotating
// with i == j, or rotating out-of-range indices panics immediately.
//
// Pairing convention: GivensRight applies the transposed rotation of
// GivensLeft, so a left/right pair with the same (a, b) cancels exactly —
// the invariant the bidiagonal SVD sweep relies on to keep U·S·VT constant.
package qr
