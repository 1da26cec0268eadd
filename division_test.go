package polyalgebra

import "testing"

func TestDivideReconstructsDividend(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)
	perm := []string{"x", "y"}

	x2y, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	x2y, err = x2y.Mul(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	xy2, err := x.Mul(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	xy2, err = xy2.Mul(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	one0, err := ConstantPolynomial(one).Neg().Add(x2y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err := one0.Add(xy2) // f = x^2y + xy^2 - 1
	if err != nil {
		t.Fatalf("%+v", err)
	}

	g1, err := x.Mul(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	g1, err = g1.Sub(ConstantPolynomial(one)) // g1 = xy - 1
	if err != nil {
		t.Fatalf("%+v", err)
	}
	g2, err := y.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	g2, err = g2.Sub(ConstantPolynomial(one)) // g2 = y^2 - 1
	if err != nil {
		t.Fatalf("%+v", err)
	}

	q, r, err := Divide(f, []Polynomial[Rational]{g1, g2}, perm, Lex)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	reconstructed := r
	for i, qi := range q {
		g := g1
		if i == 1 {
			g = g2
		}
		term, err := qi.Mul(g)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		reconstructed, err = reconstructed.Add(term)
		if err != nil {
			t.Fatalf("%+v", err)
		}
	}
	if !reconstructed.Equal(f) {
		t.Errorf("sum(q_i*g_i)+r = %v, want %v", reconstructed, f)
	}
}

func TestNormalFormOfMember(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	f, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	r, err := NormalForm(f, []Polynomial[Rational]{x}, []string{"x"}, Lex)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !r.IsZeroPolynomial() {
		t.Errorf("NormalForm(x^2, [x]) = %v, want 0", r)
	}
}
