package polyalgebra

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// structuralZeroTolerance is the absolute tolerance used to treat an inexact
// (Real/Complex) coefficient as structurally zero, per spec section 3.
// A hard-coded constant per the original implementation; it is not
// configurable per call.
const structuralZeroTolerance = 1e-4

// Real is an IEEE-754 double used as a polynomial coefficient.
type Real float64

// NewZero returns 0.
func (x Real) NewZero() Real { return 0 }

// NewOne returns 1.
func (x Real) NewOne() Real { return 1 }

// IsZero reports |x| < 1e-4.
func (x Real) IsZero() bool { return math.Abs(float64(x)) < structuralZeroTolerance }

// Equal reports whether x and y are within the structural-zero tolerance
// of each other.
func (x Real) Equal(y Real) bool { return Real(x - y).IsZero() }

// Add returns x+y.
func (x Real) Add(y Real) (Real, error) { return x + y, nil }

// Sub returns x-y.
func (x Real) Sub(y Real) (Real, error) { return x - y, nil }

// Mul returns x*y.
func (x Real) Mul(y Real) (Real, error) { return x * y, nil }

// Div returns x/y.
func (x Real) Div(y Real) (Real, error) {
	if y.IsZero() {
		return 0, errDivByZero("Real.Div")
	}
	return x / y, nil
}

// Neg returns -x.
func (x Real) Neg() Real { return -x }

// Pow returns x^n; negative n inverts first.
func (x Real) Pow(n int) (Real, error) {
	if n < 0 {
		if x.IsZero() {
			return 0, errDivByZero("Real.Pow")
		}
		return powByRepeatedSquaring[Real](1/x, -n)
	}
	return powByRepeatedSquaring[Real](x, n)
}

// Characteristic is always 0 for Real.
func (x Real) Characteristic() int { return 0 }

// String renders integral values without a trailing ".0", matching the
// original Python __str__'s `is_integer()` special case.
func (x Real) String() string {
	f := float64(x)
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

var _ Field[Real] = Real(0)

// Complex is a pair of doubles used as a polynomial coefficient.
type Complex complex128

// NewZero returns 0.
func (x Complex) NewZero() Complex { return 0 }

// NewOne returns 1.
func (x Complex) NewOne() Complex { return 1 }

// IsZero reports |x| < 1e-4.
func (x Complex) IsZero() bool { return cmplx.Abs(complex128(x)) < structuralZeroTolerance }

// Equal reports whether x and y are within the structural-zero tolerance
// of each other.
func (x Complex) Equal(y Complex) bool { return Complex(x - y).IsZero() }

// Add returns x+y.
func (x Complex) Add(y Complex) (Complex, error) { return x + y, nil }

// Sub returns x-y.
func (x Complex) Sub(y Complex) (Complex, error) { return x - y, nil }

// Mul returns x*y.
func (x Complex) Mul(y Complex) (Complex, error) { return x * y, nil }

// Div returns x/y.
func (x Complex) Div(y Complex) (Complex, error) {
	if y.IsZero() {
		return 0, errDivByZero("Complex.Div")
	}
	return x / y, nil
}

// Neg returns -x.
func (x Complex) Neg() Complex { return -x }

// Pow returns x^n; negative n inverts first.
func (x Complex) Pow(n int) (Complex, error) {
	if n < 0 {
		if x.IsZero() {
			return 0, errDivByZero("Complex.Pow")
		}
		return powByRepeatedSquaring[Complex](1/x, -n)
	}
	return powByRepeatedSquaring[Complex](x, n)
}

// Characteristic is always 0 for Complex.
func (x Complex) Characteristic() int { return 0 }

// String renders as "(a+bi)", snapping near-zero parts to exactly zero.
func (x Complex) String() string {
	re, im := real(x), imag(x)
	if math.Abs(re) < structuralZeroTolerance {
		re = 0
	}
	if math.Abs(im) < structuralZeroTolerance {
		im = 0
	}
	return fmt.Sprintf("(%g%+gi)", re, im)
}

var _ Field[Complex] = Complex(0)
