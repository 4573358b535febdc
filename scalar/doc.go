// Package scalar is the numeric capability layer shared by every lvlinalg
// kernel. It defines the Number constraint — the four real and complex
// floating-point kinds — together with the handful of scalar operations that
// generic linear-algebra code needs but the language does not provide
// uniformly across real and complex types: conjugation, magnitude, principal
// square root, and the sign map v ↦ v/|v|.
//
// Design notes:
//
//   - Number deliberately lists the concrete kinds (no ~ approximation).
//     Every helper dispatches with a type switch, and exact kinds keep that
//     dispatch total; defined types over float64 etc. gain nothing in a
//     numeric kernel and would silently miss the switch arms.
//   - All helpers are pure, allocation-free and O(1).
//   - Sign(0) is pinned to 0 (not ±1). The Wilkinson shift relies on this
//     convention: for an already-diagonal 2×2 block the shift collapses to
//     the trailing diagonal entry.
package scalar
