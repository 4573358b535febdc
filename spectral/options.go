// Package spectral: solver configuration.
//
// Design goals (same rules as the rest of the library):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Documented defaults as constants — the single source of truth.
//   - Safe by construction: nonsensical parameter values are programmer
//     errors and panic with the named messages below.

package spectral

import (
	"math"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// DEFAULTS — single source of truth for nil-options behavior.
const (
	// DefaultIterations is the fixed iteration budget applied when the
	// caller does not override it. There is no convergence test behind it.
	DefaultIterations = 100

	// DefaultEpsilon is the RoundZeroes noise threshold applied after every
	// iteration/sweep, and the symmetry tolerance of the Hermitian guard.
	DefaultEpsilon = 1e-9

	// DefaultTolerance disables the early exit: 0 means "run the whole
	// budget", preserving fixed-iteration behavior for compatibility.
	DefaultTolerance = 0.0
)

// Contract violation messages (no magic strings).
const (
	// PanicIterationsInvalid — Iterations must be non-negative.
	PanicIterationsInvalid = "spectral: Iterations must be non-negative"

	// PanicEpsilonInvalid — Epsilon must be finite and non-negative.
	PanicEpsilonInvalid = "spectral: Epsilon must be finite and non-negative"

	// PanicToleranceInvalid — Tolerance must be finite and non-negative.
	PanicToleranceInvalid = "spectral: Tolerance must be finite and non-negative"
)

// Options configures the iterative solvers.
//
// Fields:
//   - Shift      — constant spectral shift for Decompose (D − Shift·I is
//     factored each round; the shift is re-added afterwards). Ignored by
//     BidiagonalQR, which derives its shift per sweep via WilkinsonShift.
//   - Iterations — fixed iteration budget (default DefaultIterations).
//   - Epsilon    — RoundZeroes threshold applied after every round.
//   - Tolerance  — optional early-exit threshold: when > 0, iteration stops
//     as soon as every off-diagonal magnitude of the working matrix falls
//     below it. 0 (the default) disables the check entirely.
//
// Example:
//
//	opts := spectral.DefaultOptions[float64]()
//	opts.Iterations = 500
//	pair := spectral.Decompose(m, &opts)
type Options[T scalar.Number] struct {
	Shift      T
	Iterations int
	Epsilon    float64
	Tolerance  float64
}

// DefaultOptions returns the documented defaults (zero shift, fixed
// 100-iteration budget, DefaultEpsilon scrubbing, no early exit).
func DefaultOptions[T scalar.Number]() Options[T] {
	return Options[T]{
		Iterations: DefaultIterations,
		Epsilon:    DefaultEpsilon,
		Tolerance:  DefaultTolerance,
	}
}

// gatherOptions resolves a possibly-nil caller value against the defaults
// and enforces the parameter contracts.
func gatherOptions[T scalar.Number](opts *Options[T]) Options[T] {
	if opts == nil {
		return DefaultOptions[T]()
	}
	o := *opts
	if o.Iterations < 0 {
		panic(PanicIterationsInvalid)
	}
	if o.Epsilon < 0 || math.IsInf(o.Epsilon, 0) || math.IsNaN(o.Epsilon) {
		panic(PanicEpsilonInvalid)
	}
	if o.Tolerance < 0 || math.IsInf(o.Tolerance, 0) || math.IsNaN(o.Tolerance) {
		panic(PanicToleranceInvalid)
	}
	return o
}
