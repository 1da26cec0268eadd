package polyalgebra

import "github.com/pkg/errors"

// SolveOutcome tags the shape of a system-solving result: the zero value
// is never a valid outcome, forcing callers to check it explicitly.
type SolveOutcome int

const (
	_ SolveOutcome = iota
	// Solved means Solutions holds every variable assignment satisfying F.
	Solved
	// Inconsistent means the Gröbner basis was {1}: no solutions exist
	// over any extension field.
	Inconsistent
	// InfinitelyMany means no univariate element was found while
	// residual constraints remained: the projection is positive-
	// dimensional.
	InfinitelyMany
	// NoSolutionsFound means every branch of back-substitution dead-ended.
	NoSolutionsFound
)

// SolveResult is the outcome of SolveSystem or SolveFiniteFieldSystem.
type SolveResult[K Field[K]] struct {
	Outcome   SolveOutcome
	Solutions []map[string]K
}

func substituteVariable[K Field[K]](f Polynomial[K], variable string, value K) (Polynomial[K], error) {
	out := Zero(f.Proto())
	for m, c := range f.Terms() {
		valPow, err := value.Pow(m.Exponent(variable))
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "substituteVariable")
		}
		coeff, err := c.Mul(valPow)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "substituteVariable")
		}
		remaining := make(map[string]int)
		for _, v := range m.Variables() {
			if v != variable {
				remaining[v] = m.Exponent(v)
			}
		}
		term := singleTerm(NewMonomial(remaining), coeff)
		var err2 error
		out, err2 = out.Add(term)
		if err2 != nil {
			return Polynomial[K]{}, errors.Wrap(err2, "substituteVariable")
		}
	}
	return out, nil
}

// backSubstitute implements the recursive step of the system solver: drop
// zero polynomials, fail on a surviving nonzero constant, pick the first
// univariate element, find its roots, substitute each into every
// polynomial of G, and recurse on the nonzero residuals.
func backSubstitute[K Field[K]](G []Polynomial[K], findRoots func(Polynomial[K]) ([]K, error)) ([]map[string]K, SolveOutcome, error) {
	var nonzero []Polynomial[K]
	for _, g := range G {
		if !g.IsZeroPolynomial() {
			nonzero = append(nonzero, g)
		}
	}
	if len(nonzero) == 0 {
		return []map[string]K{{}}, Solved, nil
	}
	for _, g := range nonzero {
		if len(g.Variables()) == 0 {
			return nil, NoSolutionsFound, nil
		}
	}

	idx, variable := -1, ""
	for i, g := range nonzero {
		if vs := g.Variables(); len(vs) == 1 {
			idx, variable = i, vs[0]
			break
		}
	}
	if idx == -1 {
		return nil, InfinitelyMany, nil
	}

	roots, err := findRoots(nonzero[idx])
	if err != nil {
		return nil, 0, errors.Wrap(err, "backSubstitute")
	}

	var solutions []map[string]K
	for _, r := range roots {
		var residual []Polynomial[K]
		for _, g := range nonzero {
			sub, err := substituteVariable(g, variable, r)
			if err != nil {
				return nil, 0, errors.Wrap(err, "backSubstitute")
			}
			if !sub.IsZeroPolynomial() {
				residual = append(residual, sub)
			}
		}
		subSolutions, outcome, err := backSubstitute(residual, findRoots)
		if err != nil {
			return nil, 0, errors.Wrap(err, "backSubstitute")
		}
		switch outcome {
		case InfinitelyMany:
			return nil, InfinitelyMany, nil
		case NoSolutionsFound:
			continue
		case Solved:
			for _, s := range subSolutions {
				merged := map[string]K{variable: r}
				for k, v := range s {
					merged[k] = v
				}
				solutions = append(solutions, merged)
			}
		}
	}
	if len(solutions) == 0 {
		return nil, NoSolutionsFound, nil
	}
	return solutions, Solved, nil
}

// SolveSystem solves the zero-dimensional system F = 0 over K by computing
// a lex Gröbner basis and running recursive back-substitution, using
// findRoots to resolve each univariate factor encountered along the way.
func SolveSystem[K Field[K]](F []Polynomial[K], permutation []string, findRoots func(Polynomial[K]) ([]K, error)) (SolveResult[K], error) {
	if len(F) == 0 {
		return SolveResult[K]{}, errors.Errorf("SolveSystem: F must be non-empty")
	}
	basis, err := GetGroebnerBasis(F, permutation, Lex, true)
	if err != nil {
		return SolveResult[K]{}, errors.Wrap(err, "SolveSystem")
	}
	if len(basis) == 1 && len(basis[0].Variables()) == 0 {
		return SolveResult[K]{Outcome: Inconsistent}, nil
	}

	solutions, outcome, err := backSubstitute(basis, findRoots)
	if err != nil {
		return SolveResult[K]{}, errors.Wrap(err, "SolveSystem")
	}
	return SolveResult[K]{Outcome: outcome, Solutions: solutions}, nil
}

func cartesianAssignments(vars []string, elems []*FiniteField) []map[string]*FiniteField {
	if len(vars) == 0 {
		return []map[string]*FiniteField{{}}
	}
	rest := cartesianAssignments(vars[1:], elems)
	var out []map[string]*FiniteField
	for _, e := range elems {
		for _, r := range rest {
			assignment := map[string]*FiniteField{vars[0]: e}
			for k, v := range r {
				assignment[k] = v
			}
			out = append(out, assignment)
		}
	}
	return out
}

// SolveFiniteFieldSystem solves F = 0 over GF(p) by brute-force enumeration
// of the finite Cartesian product of field elements.
func SolveFiniteFieldSystem(F []Polynomial[*FiniteField], permutation []string) (SolveResult[*FiniteField], error) {
	if len(F) == 0 {
		return SolveResult[*FiniteField]{}, errors.Errorf("SolveFiniteFieldSystem: F must be non-empty")
	}
	p := F[0].Proto().Prime()
	elems, err := AllElements(p)
	if err != nil {
		return SolveResult[*FiniteField]{}, errors.Wrap(err, "SolveFiniteFieldSystem")
	}

	var solutions []map[string]*FiniteField
	for _, assignment := range cartesianAssignments(permutation, elems) {
		allZero := true
		for _, f := range F {
			v, err := f.Evaluate(assignment)
			if err != nil {
				return SolveResult[*FiniteField]{}, errors.Wrap(err, "SolveFiniteFieldSystem")
			}
			if !v.IsZero() {
				allZero = false
				break
			}
		}
		if allZero {
			solutions = append(solutions, assignment)
		}
	}
	if len(solutions) == 0 {
		return SolveResult[*FiniteField]{Outcome: NoSolutionsFound}, nil
	}
	return SolveResult[*FiniteField]{Outcome: Solved, Solutions: solutions}, nil
}

// CharacteristicEquations returns, for each variable appearing in F, the
// unique univariate-in-that-variable element of a lex Gröbner basis
// ranking the variable last. Per spec.md section 4.11, a variable with no
// such element is a positive-dimensional projection and "do not exist" is
// an observable outcome for the whole call, not a per-variable omission:
// matching original_source/Algebra/solver.py's characteristicEquations,
// which aborts and discards any equations already found for other
// variables the moment one variable lacks a unique univariate element,
// this returns an error rather than a partial map.
func CharacteristicEquations[K Field[K]](F []Polynomial[K]) (map[string]Polynomial[K], error) {
	if len(F) == 0 {
		return nil, errors.Errorf("CharacteristicEquations: F must be non-empty")
	}
	vars := unionVariables(F)
	result := make(map[string]Polynomial[K])
	for _, v := range vars {
		var others []string
		for _, w := range vars {
			if w != v {
				others = append(others, w)
			}
		}
		permutation := append(append([]string{}, others...), v)
		basis, err := GetGroebnerBasis(F, permutation, Lex, true)
		if err != nil {
			return nil, errors.Wrap(err, "CharacteristicEquations")
		}
		var found []Polynomial[K]
		for _, g := range basis {
			if vs := g.Variables(); len(vs) == 1 && vs[0] == v {
				found = append(found, g)
			}
		}
		if len(found) != 1 {
			return nil, errors.Errorf("CharacteristicEquations: no unique characteristic equation for %q (positive-dimensional projection)", v)
		}
		result[v] = found[0]
	}
	return result, nil
}
