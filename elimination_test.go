package polyalgebra

import "testing"

func TestPolynomialImplicitizationParabola(t *testing.T) {
	// x = cos-like rational param is awkward polynomially; use the simple
	// parabola y = x^2, i.e. x(u) = u, y(u) = u^2.
	one := RationalFromInt(1)
	u, _ := DefineVariable[Rational]("u", one)
	u2, err := u.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	kept, err := PolynomialImplicitization(map[string]Polynomial[Rational]{
		"x": u,
		"y": u2,
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(kept) == 0 {
		t.Fatalf("expected at least one implicit equation")
	}
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)
	x2, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	relation, err := x2.Sub(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	I, err := NewIdeal(kept...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	ok, err := I.Contains(relation)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !ok {
		t.Errorf("implicit ideal should contain x^2 - y")
	}
}

func TestPolynomialImplicitizationRejectsEmpty(t *testing.T) {
	if _, err := PolynomialImplicitization[Rational](nil); err == nil {
		t.Errorf("expected error for empty coords")
	}
}

func TestRationalImplicitization(t *testing.T) {
	// x(u) = u, y(u) = 1/u traces xy = 1.
	one := RationalFromInt(1)
	u, _ := DefineVariable[Rational]("u", one)

	kept, err := RationalImplicitization(
		map[string]Polynomial[Rational]{"x": u, "y": ConstantPolynomial(one)},
		map[string]Polynomial[Rational]{"x": ConstantPolynomial(one), "y": u},
	)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(kept) == 0 {
		t.Fatalf("expected at least one implicit equation")
	}
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)
	xy, err := x.Mul(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	relation, err := xy.Sub(ConstantPolynomial(one))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	I, err := NewIdeal(kept...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	ok, err := I.Contains(relation)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !ok {
		t.Errorf("implicit ideal should contain xy - 1")
	}
}

func TestRationalImplicitizationRejectsMismatchedSizes(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	_, err := RationalImplicitization(
		map[string]Polynomial[Rational]{"x": x},
		map[string]Polynomial[Rational]{},
	)
	if err == nil {
		t.Errorf("expected error for mismatched numerator/denominator maps")
	}
}
