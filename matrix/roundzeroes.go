// Package matrix: numerical-noise hygiene for iterative kernels.

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// DefaultEpsilon is the default noise threshold for RoundZeroes and the
// structural checks built on it. Iterative kernels flush entries below this
// magnitude after every sweep so rounding drift cannot pollute convergence.
const DefaultEpsilon = 1e-9

// RoundZeroes flushes numerical noise in place: every component whose
// magnitude falls below eps becomes exactly 0 (for complex kinds the real
// and imaginary parts are flushed independently). Pass DefaultEpsilon unless
// the caller has a reason for a different policy.
// Complexity: O(r·c).
func (m *Matrix[T]) RoundZeroes(eps float64) {
	for i := range m.data {
		m.data[i] = scalar.Flush(m.data[i], eps)
	}
}
