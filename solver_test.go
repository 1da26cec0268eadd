package polyalgebra

import "testing"

func TestSolveFiniteFieldSystem(t *testing.T) {
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

	result, err := SolveFiniteFieldSystem([]Polynomial[*FiniteField]{f}, []string{"x"})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if result.Outcome != Solved {
		t.Fatalf("outcome = %v, want Solved", result.Outcome)
	}
	if len(result.Solutions) != 2 {
		t.Fatalf("got %d solutions, want 2: %v", len(result.Solutions), result.Solutions)
	}
}

func TestSolveFiniteFieldSystemNoSolutions(t *testing.T) {
	one, err := NewFiniteField(1, 3)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	x, _ := DefineVariable("x", one)
	// x^2 + 1 = 0 over GF(3) has no solution (squares in GF(3) are 0,1).
	x2, err := x.Pow(2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f, err := x2.Add(ConstantPolynomial(one))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	result, err := SolveFiniteFieldSystem([]Polynomial[*FiniteField]{f}, []string{"x"})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if result.Outcome != NoSolutionsFound {
		t.Errorf("outcome = %v, want NoSolutionsFound", result.Outcome)
	}
}

func TestSolveFiniteFieldSystemRejectsEmpty(t *testing.T) {
	if _, err := SolveFiniteFieldSystem(nil, []string{"x"}); err == nil {
		t.Errorf("expected error for empty system")
	}
}

func TestCharacteristicEquations(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)
	// x + y = 3, x - y = 1 => x = 2, y = 1.
	f1, err := x.Add(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f1, err = f1.Sub(ConstantPolynomial(RationalFromInt(3)))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f2, err := x.Sub(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	f2, err = f2.Sub(ConstantPolynomial(one))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	eqs, err := CharacteristicEquations([]Polynomial[Rational]{f1, f2})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	for _, v := range []string{"x", "y"} {
		eq, ok := eqs[v]
		if !ok {
			t.Fatalf("missing characteristic equation for %s", v)
			continue
		}
		roots, err := FindRationalRoots(eq)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if len(roots) != 1 {
			t.Errorf("characteristic equation for %s has %d roots, want 1", v, len(roots))
		}
	}
}

func TestCharacteristicEquationsRejectsEmpty(t *testing.T) {
	if _, err := CharacteristicEquations[Rational](nil); err == nil {
		t.Errorf("expected error for empty system")
	}
}

// TestCharacteristicEquationsPositiveDimensional checks that a
// positive-dimensional system (the line x=y has infinitely many solutions)
// fails outright rather than silently omitting the offending variable.
func TestCharacteristicEquationsPositiveDimensional(t *testing.T) {
	one := RationalFromInt(1)
	x, _ := DefineVariable[Rational]("x", one)
	y, _ := DefineVariable[Rational]("y", one)
	f, err := x.Sub(y)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if _, err := CharacteristicEquations([]Polynomial[Rational]{f}); err == nil {
		t.Errorf("expected error for positive-dimensional system, got nil")
	}
}
