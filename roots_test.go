package polyalgebra

import (
	"math"
	"sort"
	"testing"
)

func TestFindRationalRoots(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	// (x-2)(x+3) = x^2 + x - 6
	x2, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err := x2.Add(x)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err = f.Sub(ConstantPolynomial(RationalFromInt(6)))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	roots, err := FindRationalRoots(f)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2: %v", len(roots), roots)
	}
	want := map[string]bool{"2": true, "-3": true}
	for _, r := range roots {
		if !want[r.String()] {
			t.Errorf("unexpected root %v", r)
		}
		delete(want, r.String())
	}
	if len(want) != 0 {
		t.Errorf("missing roots %v", want)
	}
}

func TestFindRationalRootsRejectsZeroPolynomial(t *testing.T) {
	x, _ := DefineVariable[Rational]("x", RationalFromInt(1))
	zero, err := x.Sub(x)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err := FindRationalRoots(zero); err == nil {
		t.Errorf("expected error for the zero polynomial")
	}
}

func TestFindFiniteFieldRoots(t *testing.T) {
	one, err := NewFiniteField(1, 5)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	x, _ := DefineVariable("x", one)
	// x^2 - 1 = 0 over GF(5): roots 1 and 4.
	x2, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err := x2.Sub(ConstantPolynomial(one))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	roots, err := FindFiniteFieldRoots(f)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2: %v", len(roots), roots)
	}
	got := make([]int, len(roots))
	for i, r := range roots {
		got[i] = int(r.Int())
	}
	sort.Ints(got)
	if got[0] != 1 || got[1] != 4 {
		t.Errorf("roots = %v, want [1 4]", got)
	}
}

func TestFindComplexRootsOfUnity(t *testing.T) {
	one := Complex(complex(1, 0))
	x, _ := DefineVariable("x", one)
	x3, err := x.Pow(3)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err := x3.Sub(ConstantPolynomial(one)) // x^3 - 1
	if err != nil {
		t.Fatalf("%+v", err)
	}
	roots, err := FindComplexRoots(f)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3: %v", len(roots), roots)
	}
	for _, r := range roots {
		v, err := f.Evaluate(map[string]Complex{"x": r})
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if math.Hypot(real(complex128(v)), imag(complex128(v))) > 1e-4 {
			t.Errorf("root %v does not satisfy x^3=1: f(root) = %v", r, v)
		}
	}
}

func TestFindRealRoots(t *testing.T) {
	one := Real(1)
	x, _ := DefineVariable("x", one)
	// (x-1)(x-2) = x^2 - 3x + 2
	x2, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	threeX, err := x.MulScalar(Real(3))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err := x2.Sub(threeX)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err = f.Add(ConstantPolynomial(Real(2)))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	roots, err := FindRealRoots(f)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2: %v", len(roots), roots)
	}
	got := make([]float64, len(roots))
	for i, r := range roots {
		got[i] = float64(r)
	}
	sort.Float64s(got)
	if math.Abs(got[0]-1) > 1e-4 || math.Abs(got[1]-2) > 1e-4 {
		t.Errorf("roots = %v, want [1 2]", got)
	}
}
