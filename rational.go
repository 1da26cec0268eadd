package polyalgebra

import (
	"math/big"

	"github.com/pkg/errors"
)

// Rational is an exact fraction in reduced form with a strictly positive
// denominator, backed by math/big.Int the way the teacher's nag.Rat wraps
// *big.Rat. Zero is represented as 0/1.
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRational returns the reduced fraction numerator/denominator.
func NewRational(numerator, denominator int64) (Rational, error) {
	return newRationalBig(big.NewInt(numerator), big.NewInt(denominator))
}

// RationalFromInt returns the integer n embedded as a Rational.
func RationalFromInt(n int64) Rational {
	r, _ := NewRational(n, 1)
	return r
}

func newRationalBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, errors.Errorf("NewRational: denominator cannot be zero")
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	if g.Sign() == 0 {
		g.SetInt64(1)
	}
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Rational{num: n, den: d}, nil
}

// Numerator returns the reduced numerator.
func (x Rational) Numerator() *big.Int { return new(big.Int).Set(x.num) }

// Denominator returns the reduced, strictly positive denominator.
func (x Rational) Denominator() *big.Int { return new(big.Int).Set(x.den) }

func (x Rational) zeroed() bool { return x.num == nil || x.den == nil }

func (x Rational) norm() Rational {
	if x.zeroed() {
		return Rational{num: big.NewInt(0), den: big.NewInt(1)}
	}
	return x
}

// NewZero returns the additive identity 0.
func (x Rational) NewZero() Rational { return Rational{num: big.NewInt(0), den: big.NewInt(1)} }

// NewOne returns the multiplicative identity 1.
func (x Rational) NewOne() Rational { return Rational{num: big.NewInt(1), den: big.NewInt(1)} }

// IsZero reports whether x is exactly zero.
func (x Rational) IsZero() bool {
	x = x.norm()
	return x.num.Sign() == 0
}

// Equal reports exact equality on reduced form.
func (x Rational) Equal(y Rational) bool {
	x, y = x.norm(), y.norm()
	return x.num.Cmp(y.num) == 0 && x.den.Cmp(y.den) == 0
}

// Add returns x+y.
func (x Rational) Add(y Rational) (Rational, error) {
	x, y = x.norm(), y.norm()
	num := new(big.Int).Add(new(big.Int).Mul(x.num, y.den), new(big.Int).Mul(y.num, x.den))
	den := new(big.Int).Mul(x.den, y.den)
	return newRationalBig(num, den)
}

// Sub returns x-y.
func (x Rational) Sub(y Rational) (Rational, error) {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x Rational) Mul(y Rational) (Rational, error) {
	x, y = x.norm(), y.norm()
	return newRationalBig(new(big.Int).Mul(x.num, y.num), new(big.Int).Mul(x.den, y.den))
}

// Div returns x/y.
func (x Rational) Div(y Rational) (Rational, error) {
	y = y.norm()
	if y.num.Sign() == 0 {
		return Rational{}, errDivByZero("Rational.Div")
	}
	return x.Mul(Rational{num: y.den, den: y.num})
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	x = x.norm()
	return Rational{num: new(big.Int).Neg(x.num), den: new(big.Int).Set(x.den)}
}

// Pow returns x^n; negative n inverts first.
func (x Rational) Pow(n int) (Rational, error) {
	x = x.norm()
	if n < 0 {
		if x.num.Sign() == 0 {
			return Rational{}, errDivByZero("Rational.Pow")
		}
		inv := Rational{num: x.den, den: x.num}
		return powByRepeatedSquaring[Rational](inv, -n)
	}
	return powByRepeatedSquaring[Rational](x, n)
}

// Characteristic is always 0 for Rational.
func (x Rational) Characteristic() int { return 0 }

// Less reports x < y using cross multiplication (denominators are positive).
func (x Rational) Less(y Rational) bool {
	x, y = x.norm(), y.norm()
	return new(big.Int).Mul(x.num, y.den).Cmp(new(big.Int).Mul(y.num, x.den)) < 0
}

// LessEqual reports x <= y.
func (x Rational) LessEqual(y Rational) bool { return x.Less(y) || x.Equal(y) }

// String returns "n" when the denominator is 1, otherwise "n/d".
func (x Rational) String() string {
	x = x.norm()
	if x.den.Cmp(big.NewInt(1)) == 0 {
		return x.num.String()
	}
	return x.num.String() + "/" + x.den.String()
}

var _ Field[Rational] = Rational{}
