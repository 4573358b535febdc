// Package spectral implements the iterative eigen/singular-value solvers:
// a shifted QR iteration for Hermitian eigen-decomposition and an
// implicit-shift bidiagonal QR sweep for singular values, both driven by the
// Wilkinson shift heuristic.
//
// 🚀 What lives here?
//
//   - WilkinsonShift(m): the shift derived from a symmetric 2×2 block that
//     re-centers an iteration near the eigenvalue closer to m[1,1].
//   - Decompose(m, opts): repeated "factor, swap, re-add the shift" rounds —
//     D ← R·Q + shift·I with (Q, R) = Householder(D − shift·I) — while the
//     orthogonal transform accumulates into Q. D drifts toward diagonal;
//     the diagonal approximates the eigenvalues, Q's columns the
//     eigenvectors.
//   - BidiagonalQR(b, opts): the Golub–Kahan-style sweep. Each round takes
//     the Wilkinson shift of the trailing 2×2 block of the implicit BᵗB,
//     introduces a bulge with one column rotation, and chases it down the
//     matrix with alternating row/column Givens rotations, accumulating U
//     and VT so that U·S·VT stays equal to the input throughout.
//
// ⚙️ Behavior contract:
//
//   - Iteration is a FIXED budget (DefaultIterations) — there is no
//     convergence test, no deflation, and no non-convergence error: an
//     insufficient budget silently yields an inaccurate result. Options.
//     Tolerance > 0 opts into an early exit once the working matrix is
//     numerically diagonal; the default of 0 preserves exact fixed-count
//     behavior.
//   - The Wilkinson helper is intentionally not wired into Decompose: the
//     iteration uses the caller-supplied constant shift only. Matrices with
//     closely spaced or repeated eigenvalues may therefore converge slowly
//     or not at all within the budget.
//   - Singular values produced by BidiagonalQR are neither sorted nor
//     sign-normalized; that post-processing is the caller's responsibility.
//   - Preconditions are fatal: Decompose panics on non-Hermitian input,
//     WilkinsonShift on a block that is not 2×2-symmetric, BidiagonalQR on
//     inputs smaller than 2×2.
//
// After every round the working matrix is scrubbed with RoundZeroes so
// rounding drift below Options.Epsilon cannot masquerade as structure.
package spectral
