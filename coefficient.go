// Package polyalgebra implements a multivariate polynomial algebra kernel:
// monomial and polynomial arithmetic over several coefficient fields,
// Gröbner bases via Buchberger's algorithm, ideal arithmetic, polynomial
// GCD/LCM, square-free decomposition, implicitization, univariate root
// finding and zero-dimensional system solving.
package polyalgebra

import "github.com/pkg/errors"

// A Field is a coefficient kind: the algebraic domain a Polynomial's
// coefficients are drawn from. Implementations are Rational, *FiniteField,
// Real and Complex. Arithmetic is pure-value (no mutation of the receiver),
// since every entity in this package is an immutable value object.
type Field[K any] interface {
	// NewZero returns the additive identity, parameterized the same way as
	// the receiver (e.g. the same finite-field modulus).
	NewZero() K
	// NewOne returns the multiplicative identity, parameterized like NewZero.
	NewOne() K
	// IsZero reports structural zero: exact equality to zero for Rational
	// and FiniteField, and |x| below an absolute tolerance for Real/Complex.
	IsZero() bool
	// Equal reports whether the receiver and y denote the same value.
	// Implementations that carry a parameter (FiniteField's prime) require
	// matching parameters; mismatches are reported through Add/Sub/... , not
	// through Equal, which simply returns false.
	Equal(y K) bool
	// Add returns x+y.
	Add(y K) (K, error)
	// Sub returns x-y.
	Sub(y K) (K, error)
	// Mul returns x*y.
	Mul(y K) (K, error)
	// Div returns x/y. Fails if y is structurally zero.
	Div(y K) (K, error)
	// Neg returns -x.
	Neg() K
	// Pow returns x^n for any integer n (negative n inverts first).
	Pow(n int) (K, error)
	// Characteristic returns the characteristic of the field: 0 for
	// Rational/Real/Complex, p for FiniteField(p).
	Characteristic() int
	// String returns the canonical textual form, used for pretty-printing
	// only (never for semantic equality).
	String() string
}

// errKindMismatch is returned when two coefficients of incompatible
// parameterization (e.g. different FiniteField primes) are combined.
func errKindMismatch(op string) error {
	return errors.Errorf("%s: coefficients are over incompatible fields", op)
}

// errDivByZero is returned when dividing by a structurally zero coefficient.
func errDivByZero(op string) error {
	return errors.Errorf("%s: division by zero", op)
}

// powByRepeatedSquaring computes base^n for n >= 0 using the field's Mul,
// via fast exponentiation (square-and-multiply), mirroring the repeated
// squaring used throughout the original Python rational/GaloisField/
// Polynomial __pow__ implementations and the teacher's nag.Polynomial.Pow.
func powByRepeatedSquaring[K Field[K]](base K, n int) (K, error) {
	result := base.NewOne()
	b := base
	for n > 0 {
		if n%2 == 1 {
			var err error
			result, err = result.Mul(b)
			if err != nil {
				var zero K
				return zero, err
			}
		}
		var err error
		b, err = b.Mul(b)
		if err != nil {
			var zero K
			return zero, err
		}
		n /= 2
	}
	return result, nil
}
