// Package scalar: generic helpers over the Number constraint.
// All dispatch happens through exhaustive type switches; Number admits
// exactly the four kinds the switches cover, so the trailing returns are
// unreachable and exist only to satisfy the compiler.

package scalar

import (
	"math"
	"math/cmplx"
)

// Number restricts generic code to real or complex floating-point scalars.
// Any other instantiation is rejected at compile time.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// IsComplex reports whether T is one of the complex kinds.
// Complexity: O(1).
func IsComplex[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	}
	return false
}

// Conj returns the complex conjugate of v; for real kinds it is the identity.
// Complexity: O(1).
func Conj[T Number](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}
	return v
}

// Abs returns |v| as a float64, regardless of the scalar kind.
// Use it for noise thresholds and convergence checks.
// Complexity: O(1).
func Abs[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0 // unreachable
}

// AbsT returns |v| embedded back into T (a real-valued scalar of kind T),
// so magnitude terms can participate in T-typed arithmetic.
// Complexity: O(1).
func AbsT[T Number](v T) T {
	return FromFloat[T](Abs(v))
}

// Sqrt returns the principal square root of v.
// Real kinds use math.Sqrt (NaN for negative inputs); complex kinds use
// cmplx.Sqrt.
// Complexity: O(1).
func Sqrt[T Number](v T) T {
	switch x := any(v).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(x)))).(T)
	case float64:
		return any(math.Sqrt(x)).(T)
	case complex64:
		return any(complex64(cmplx.Sqrt(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Sqrt(x)).(T)
	}
	var zero T
	return zero // unreachable
}

// Sign maps v to v/|v| and 0 to 0.
// For real kinds this is the usual -1/0/+1 sign; for complex kinds it is the
// unit-modulus phase of v. The Sign(0)=0 convention is load-bearing for the
// Wilkinson shift (see package doc).
// Complexity: O(1).
func Sign[T Number](v T) T {
	var zero T
	if v == zero {
		return zero
	}
	return v / AbsT(v)
}

// FromFloat embeds a float64 into T: a plain conversion for real kinds, the
// real axis for complex kinds.
// Complexity: O(1).
func FromFloat[T Number](f float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(f)).(T)
	case float64:
		return any(f).(T)
	case complex64:
		return any(complex64(complex(f, 0))).(T)
	case complex128:
		return any(complex(f, 0)).(T)
	}
	return zero // unreachable
}

// Flush zeroes numerical noise in v: any component (the value itself for
// real kinds, the real and imaginary parts independently for complex kinds)
// whose magnitude falls below eps is replaced with 0.
// Complexity: O(1).
func Flush[T Number](v T, eps float64) T {
	switch x := any(v).(type) {
	case float32:
		if math.Abs(float64(x)) < eps {
			return any(float32(0)).(T)
		}
	case float64:
		if math.Abs(x) < eps {
			return any(float64(0)).(T)
		}
	case complex64:
		re, im := float64(real(x)), float64(imag(x))
		if math.Abs(re) < eps {
			re = 0
		}
		if math.Abs(im) < eps {
			im = 0
		}
		return any(complex64(complex(re, im))).(T)
	case complex128:
		re, im := real(x), imag(x)
		if math.Abs(re) < eps {
			re = 0
		}
		if math.Abs(im) < eps {
			im = 0
		}
		return any(complex(re, im)).(T)
	}
	return v
}
