package polyalgebra

import "testing"

func TestRationalFunctionArithmetic(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)

	// 1/x + 1/x = 2/x
	inv, err := NewRationalFunction(ConstantPolynomial(one), x)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	sum, err := inv.Add(inv)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	two := RationalFromInt(2)
	want, err := NewRationalFunction(ConstantPolynomial(two), x)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !sum.Equal(want) {
		t.Errorf("1/x + 1/x = %v, want %v", sum, want)
	}
}

func TestRationalFunctionMulDivPow(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)

	xOverY, err := NewRationalFunction(x, y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	yOverX, err := NewRationalFunction(y, x)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	product, err := xOverY.Mul(yOverX)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	unit, err := NewRationalFunction(ConstantPolynomial(one), ConstantPolynomial(one))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !product.Equal(unit) {
		t.Errorf("(x/y)*(y/x) = %v, want 1", product)
	}

	quotient, err := xOverY.Div(xOverY)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !quotient.Equal(unit) {
		t.Errorf("(x/y)/(x/y) = %v, want 1", quotient)
	}

	squared, err := xOverY.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	x2, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	y2, err := y.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	wantSq, err := NewRationalFunction(x2, y2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !squared.Equal(wantSq) {
		t.Errorf("(x/y)^2 = %v, want %v", squared, wantSq)
	}

	inverted, err := xOverY.Pow(-1)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !inverted.Equal(yOverX) {
		t.Errorf("(x/y)^-1 = %v, want %v", inverted, yOverX)
	}
}

func TestRationalFunctionReduce(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)

	// (x^2 y) / (x y^2) reduces to x/y.
	x2, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	num, err := x2.Mul(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	y2, err := y.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	den, err := x.Mul(y2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err := NewRationalFunction(num, den)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	reduced, err := f.Reduce()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	want, err := NewRationalFunction(x, y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !reduced.Equal(want) {
		t.Errorf("reduced = %v, want %v", reduced, want)
	}
}

func TestNewRationalFunctionRejectsZeroDenominator(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	zero := ConstantPolynomial(RationalFromInt(0))
	if _, err := NewRationalFunction(x, zero); err == nil {
		t.Errorf("expected error for zero denominator")
	}
}

func TestRationalFunctionString(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	unit, err := NewRationalFunction(x, ConstantPolynomial(one))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got := unit.String(); got != "x" {
		t.Errorf("String() = %q, want %q", got, "x")
	}
}
