package polyalgebra

import "testing"

func TestPolynomialArithmetic(t *testing.T) {
	one := RationalFromInt(1)
	x, err := DefineVariable("x", one)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	y, err := DefineVariable("y", one)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	sum, err := x.Add(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got, want := sum.Len(), 2; got != want {
		t.Errorf("len(x+y) = %d, want %d", got, want)
	}

	// (x+y)^2 = x^2 + 2xy + y^2
	squared, err := sum.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got, want := squared.Len(), 3; got != want {
		t.Errorf("len((x+y)^2) = %d, want %d", got, want)
	}
	v, err := squared.Evaluate(map[string]Rational{"x": RationalFromInt(2), "y": RationalFromInt(3)})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !v.Equal(RationalFromInt(25)) {
		t.Errorf("(2+3)^2 = %v, want 25", v)
	}
}

func TestPolynomialCancellationDropsZeroTerms(t *testing.T) {
	one := RationalFromInt(1)
	x, err := DefineVariable("x", one)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	diff, err := x.Sub(x)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !diff.IsZeroPolynomial() {
		t.Errorf("x-x should be the zero polynomial, got %v", diff)
	}
}

func TestPolynomialLeadingMonomial(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)
	x2, _ := x.Pow(2)
	f, err := x2.Add(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	m, ok := LeadingMonomial(f, []string{"x", "y"}, Lex)
	if !ok {
		t.Fatalf("expected a leading monomial")
	}
	if want := NewMonomial(map[string]int{"x": 2}); !m.Equal(want) {
		t.Errorf("leading monomial = %v, want %v", m, want)
	}
}

func TestPolynomialEqualAcrossKindMismatch(t *testing.T) {
	one5, err := NewFiniteField(1, 5)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	one7, err := NewFiniteField(1, 7)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, _ := DefineVariable("x", one5)
	g, _ := DefineVariable("x", one7)
	if f.Equal(g) {
		t.Errorf("polynomials over GF(5) and GF(7) should never compare equal")
	}
}

func TestPolynomialString(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)
	x2, _ := x.Pow(2)
	f, err := x2.Sub(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got, want := f.String(), "x² - y"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
