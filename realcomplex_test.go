package polyalgebra

import "testing"

func TestRealArithmeticAndTolerance(t *testing.T) {
	a, b := Real(1.0), Real(3.0)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if sum != 4.0 {
		t.Errorf("1+3 = %v, want 4", sum)
	}

	tiny := Real(1e-5)
	if !tiny.IsZero() {
		t.Errorf("%v should be treated as structurally zero", tiny)
	}
	notTiny := Real(1e-2)
	if notTiny.IsZero() {
		t.Errorf("%v should not be treated as zero", notTiny)
	}
}

func TestComplexArithmetic(t *testing.T) {
	i := Complex(complex(0, 1))
	prod, err := i.Mul(i)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !prod.Equal(Complex(complex(-1, 0))) {
		t.Errorf("i*i = %v, want -1", prod)
	}
}

func TestRealDivByZero(t *testing.T) {
	one := Real(1.0)
	if _, err := one.Div(Real(0.0)); err == nil {
		t.Errorf("expected division-by-zero error")
	}
}
