package polyalgebra

import (
	"math/big"

	"github.com/pkg/errors"
)

// Normalize scales f to a canonical representative of its associate class,
// matching original_source's normalizeCoefficients(f, toIntegers=False)
// dispatch. When toIntegers is true and K is Rational, f is scaled to
// relatively prime integer coefficients with a positive leading
// coefficient under graded-lex (the convention varieties.py's
// implicitization routines use). Otherwise f is divided by its graded-lex
// leading coefficient so the leading term is monic (the default, used by
// polynomialGCD/polynomialLCM/squareFreePart).
func Normalize[K Field[K]](f Polynomial[K], permutation []string, toIntegers bool) (Polynomial[K], error) {
	if f.IsZeroPolynomial() {
		return f, nil
	}
	if rf, ok := any(f).(Polynomial[Rational]); ok && toIntegers {
		normalized, err := normalizeRationalToIntegers(rf, permutation)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "Normalize")
		}
		return any(normalized).(Polynomial[K]), nil
	}
	lc, _ := LeadingCoefficient(f, permutation, GradedLex)
	inv, err := lc.Pow(-1)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "Normalize")
	}
	return f.MulScalar(inv)
}

func normalizeRationalToIntegers(f Polynomial[Rational], permutation []string) (Polynomial[Rational], error) {
	terms := f.Terms()
	l := big.NewInt(1)
	d := big.NewInt(0)
	for _, c := range terms {
		l = new(big.Int).Div(new(big.Int).Mul(l, c.Denominator()), new(big.Int).GCD(nil, nil, l, c.Denominator()))
		d = new(big.Int).GCD(nil, nil, d, c.Numerator())
	}
	if d.Sign() == 0 {
		d = big.NewInt(1)
	}
	scale, err := newRationalBig(l, d)
	if err != nil {
		return Polynomial[Rational]{}, errors.Wrap(err, "normalizeRationalToIntegers")
	}
	scaled, err := f.MulScalar(scale)
	if err != nil {
		return Polynomial[Rational]{}, errors.Wrap(err, "normalizeRationalToIntegers")
	}
	lc, _ := LeadingCoefficient(scaled, permutation, GradedLex)
	if lc.Numerator().Sign() < 0 {
		scaled = scaled.Neg()
	}
	return scaled, nil
}

// PolynomialLCM returns the least common multiple of f and g, computed as
// the single generator of the intersection of the principal ideals (f)
// and (g).
func PolynomialLCM[K Field[K]](f, g Polynomial[K], permutation []string) (Polynomial[K], error) {
	If, err := NewIdeal(f)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "PolynomialLCM")
	}
	Ig, err := NewIdeal(g)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "PolynomialLCM")
	}
	inter, err := If.Intersection(Ig)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "PolynomialLCM")
	}
	gens := inter.Generators()
	if len(gens) != 1 {
		return Polynomial[K]{}, errors.Errorf("PolynomialLCM: intersection of principal ideals was not principal (%d generators)", len(gens))
	}
	return Normalize(gens[0], permutation, false)
}

// PolynomialGCD returns the greatest common divisor of f and g, obtained
// by dividing their product by their lcm.
func PolynomialGCD[K Field[K]](f, g Polynomial[K], permutation []string) (Polynomial[K], error) {
	l, err := PolynomialLCM(f, g, permutation)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "PolynomialGCD")
	}
	prod, err := f.Mul(g)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "PolynomialGCD")
	}
	quotients, r, err := Divide(prod, []Polynomial[K]{l}, permutation, GradedLex)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "PolynomialGCD")
	}
	if !r.IsZeroPolynomial() {
		return Polynomial[K]{}, errors.Errorf("PolynomialGCD: lcm did not divide f*g exactly")
	}
	return Normalize(quotients[0], permutation, false)
}

// PolynomialGCDAll left-folds PolynomialGCD over fs and normalizes the
// result. Fails if fs is empty.
func PolynomialGCDAll[K Field[K]](permutation []string, fs ...Polynomial[K]) (Polynomial[K], error) {
	if len(fs) == 0 {
		return Polynomial[K]{}, errors.Errorf("PolynomialGCDAll: at least one polynomial is required")
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		var err error
		acc, err = PolynomialGCD(acc, f, permutation)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "PolynomialGCDAll")
		}
	}
	return Normalize(acc, permutation, false)
}

// PolynomialLCMAll left-folds PolynomialLCM over fs and normalizes the
// result. Fails if fs is empty.
func PolynomialLCMAll[K Field[K]](permutation []string, fs ...Polynomial[K]) (Polynomial[K], error) {
	if len(fs) == 0 {
		return Polynomial[K]{}, errors.Errorf("PolynomialLCMAll: at least one polynomial is required")
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		var err error
		acc, err = PolynomialLCM(acc, f, permutation)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "PolynomialLCMAll")
		}
	}
	return Normalize(acc, permutation, false)
}

// SquareFreePart returns f divided by gcd(f, df/dx1, ..., df/dxn),
// normalized. Only defined in characteristic zero.
func SquareFreePart[K Field[K]](f Polynomial[K], permutation []string) (Polynomial[K], error) {
	if f.Proto().Characteristic() != 0 {
		return Polynomial[K]{}, errors.Errorf("SquareFreePart: undefined in positive characteristic")
	}
	if f.IsZeroPolynomial() {
		return f, nil
	}
	group := []Polynomial[K]{f}
	for _, v := range f.Variables() {
		dv, err := Derivative(f, v, 1)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "SquareFreePart")
		}
		if !dv.IsZeroPolynomial() {
			group = append(group, dv)
		}
	}
	if len(group) == 1 {
		return Normalize(f, permutation, false)
	}
	d, err := PolynomialGCDAll(permutation, group...)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SquareFreePart")
	}
	quotients, r, err := Divide(f, []Polynomial[K]{d}, permutation, GradedLex)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SquareFreePart")
	}
	if !r.IsZeroPolynomial() {
		return Polynomial[K]{}, errors.Errorf("SquareFreePart: gcd did not divide f exactly")
	}
	return Normalize(quotients[0], permutation, false)
}
