package polyalgebra

import "github.com/pkg/errors"

// RationalFunction is a fraction of two polynomials over the same kind,
// with a non-zero denominator.
type RationalFunction[K Field[K]] struct {
	num Polynomial[K]
	den Polynomial[K]
}

// NewRationalFunction returns num/den. Fails if den is the zero polynomial
// or num and den have mismatched coefficient kinds.
func NewRationalFunction[K Field[K]](num, den Polynomial[K]) (RationalFunction[K], error) {
	if den.IsZeroPolynomial() {
		return RationalFunction[K]{}, errors.Errorf("NewRationalFunction: denominator cannot be zero")
	}
	if err := sameKind([]Polynomial[K]{num, den}); err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "NewRationalFunction")
	}
	return RationalFunction[K]{num: num, den: den}, nil
}

// Numerator returns the numerator.
func (x RationalFunction[K]) Numerator() Polynomial[K] { return x.num }

// Denominator returns the denominator.
func (x RationalFunction[K]) Denominator() Polynomial[K] { return x.den }

// Add returns x+y = (x.num*y.den + y.num*x.den) / (x.den*y.den).
func (x RationalFunction[K]) Add(y RationalFunction[K]) (RationalFunction[K], error) {
	ad, err := x.num.Mul(y.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Add")
	}
	bc, err := y.num.Mul(x.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Add")
	}
	num, err := ad.Add(bc)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Add")
	}
	den, err := x.den.Mul(y.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Add")
	}
	r, err := NewRationalFunction(num, den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Add")
	}
	return r, nil
}

// Sub returns x-y = (x.num*y.den - y.num*x.den) / (x.den*y.den).
func (x RationalFunction[K]) Sub(y RationalFunction[K]) (RationalFunction[K], error) {
	ad, err := x.num.Mul(y.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Sub")
	}
	bc, err := y.num.Mul(x.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Sub")
	}
	num, err := ad.Sub(bc)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Sub")
	}
	den, err := x.den.Mul(y.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Sub")
	}
	r, err := NewRationalFunction(num, den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Sub")
	}
	return r, nil
}

// Mul returns x*y = (x.num*y.num) / (x.den*y.den).
func (x RationalFunction[K]) Mul(y RationalFunction[K]) (RationalFunction[K], error) {
	num, err := x.num.Mul(y.num)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Mul")
	}
	den, err := x.den.Mul(y.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Mul")
	}
	r, err := NewRationalFunction(num, den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Mul")
	}
	return r, nil
}

// Div returns x/y = (x.num*y.den) / (x.den*y.num). Fails if y.num is zero.
func (x RationalFunction[K]) Div(y RationalFunction[K]) (RationalFunction[K], error) {
	if y.num.IsZeroPolynomial() {
		return RationalFunction[K]{}, errDivByZero("RationalFunction.Div")
	}
	num, err := x.num.Mul(y.den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Div")
	}
	den, err := x.den.Mul(y.num)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Div")
	}
	r, err := NewRationalFunction(num, den)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Div")
	}
	return r, nil
}

// Pow returns x^n; negative n inverts numerator and denominator first.
func (x RationalFunction[K]) Pow(n int) (RationalFunction[K], error) {
	base := x
	if n < 0 {
		if x.num.IsZeroPolynomial() {
			return RationalFunction[K]{}, errDivByZero("RationalFunction.Pow")
		}
		base = RationalFunction[K]{num: x.den, den: x.num}
		n = -n
	}
	num, err := base.num.Pow(n)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Pow")
	}
	den, err := base.den.Pow(n)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Pow")
	}
	return NewRationalFunction(num, den)
}

func (x RationalFunction[K]) permutation() []string {
	return sortedUnion(x.num.Variables(), x.den.Variables())
}

// Reduce divides both numerator and denominator by their polynomial GCD.
func (x RationalFunction[K]) Reduce() (RationalFunction[K], error) {
	perm := x.permutation()
	g, err := PolynomialGCD(x.num, x.den, perm)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Reduce")
	}
	numQ, numR, err := Divide(x.num, []Polynomial[K]{g}, perm, GradedLex)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Reduce")
	}
	denQ, denR, err := Divide(x.den, []Polynomial[K]{g}, perm, GradedLex)
	if err != nil {
		return RationalFunction[K]{}, errors.Wrap(err, "RationalFunction.Reduce")
	}
	if !numR.IsZeroPolynomial() || !denR.IsZeroPolynomial() {
		return RationalFunction[K]{}, errors.Errorf("RationalFunction.Reduce: gcd did not divide exactly")
	}
	return NewRationalFunction(numQ[0], denQ[0])
}

// Equal reports whether x and y represent the same rational function,
// i.e. (x-y).Numerator() is the zero polynomial. A kind mismatch is
// reported as not-equal rather than as an error.
func (x RationalFunction[K]) Equal(y RationalFunction[K]) bool {
	d, err := x.Sub(y)
	if err != nil {
		return false
	}
	return d.num.IsZeroPolynomial()
}

// String renders x as "num" when the denominator is 1, otherwise
// "(num)/(den)".
func (x RationalFunction[K]) String() string {
	if x.den.Len() == 1 {
		if c, ok := x.den.Terms()[ConstantMonomial()]; ok && c.Equal(c.NewOne()) {
			return x.num.String()
		}
	}
	return "(" + x.num.String() + ")/(" + x.den.String() + ")"
}
