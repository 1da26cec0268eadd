package polyalgebra

import (
	"sort"

	"github.com/pkg/errors"
)

func variableSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, v := range names {
		set[v] = struct{}{}
	}
	return set
}

func onlyVariablesIn[K Field[K]](f Polynomial[K], allowed map[string]struct{}) bool {
	for _, v := range f.Variables() {
		if _, ok := allowed[v]; !ok {
			return false
		}
	}
	return true
}

// PolynomialImplicitization computes the implicit equations of the
// parametric variety x_i = f_i(u_1,...,u_k) given by coords (coordinate
// variable name -> defining polynomial). It introduces each coordinate
// variable, computes a lex Gröbner basis ranking the parameters above the
// coordinates, and returns the subset of the basis whose variables lie
// entirely among the coordinates, normalized.
func PolynomialImplicitization[K Field[K]](coords map[string]Polynomial[K]) ([]Polynomial[K], error) {
	if len(coords) == 0 {
		return nil, errors.Errorf("PolynomialImplicitization: coords must be non-empty")
	}
	var proto K
	coordNames := make([]string, 0, len(coords))
	for name, f := range coords {
		coordNames = append(coordNames, name)
		proto = f.Proto()
	}
	sort.Strings(coordNames)

	paramSet := make(map[string]struct{})
	for _, f := range coords {
		for _, v := range f.Variables() {
			paramSet[v] = struct{}{}
		}
	}
	for _, name := range coordNames {
		delete(paramSet, name)
	}
	params := make([]string, 0, len(paramSet))
	for v := range paramSet {
		params = append(params, v)
	}
	sort.Strings(params)

	one := proto.NewOne()
	var generators []Polynomial[K]
	for _, name := range coordNames {
		xi, err := DefineVariable[K](name, one)
		if err != nil {
			return nil, errors.Wrap(err, "PolynomialImplicitization")
		}
		g, err := coords[name].Sub(xi)
		if err != nil {
			return nil, errors.Wrap(err, "PolynomialImplicitization")
		}
		generators = append(generators, g)
	}

	permutation := append(append([]string{}, params...), coordNames...)
	basis, err := GetGroebnerBasis(generators, permutation, Lex, true)
	if err != nil {
		return nil, errors.Wrap(err, "PolynomialImplicitization")
	}

	coordAllowed := variableSet(coordNames)
	var kept []Polynomial[K]
	for _, g := range basis {
		if onlyVariablesIn(g, coordAllowed) {
			normalized, err := Normalize(g, coordNames, true)
			if err != nil {
				return nil, errors.Wrap(err, "PolynomialImplicitization")
			}
			kept = append(kept, normalized)
		}
	}
	if len(kept) == 0 {
		return nil, errors.Errorf("PolynomialImplicitization: no implicit equation found")
	}
	return kept, nil
}

// RationalImplicitization computes the implicit equations of the
// parametric variety x_i = numerators[i]/denominators[i](u_1,...,u_k). It
// adds a saturation variable ranked highest together with the parameters,
// includes {p_i - x_i*q_i} and 1 - t*prod(q_i), and eliminates the
// parameters and the saturation variable.
func RationalImplicitization[K Field[K]](numerators, denominators map[string]Polynomial[K]) ([]Polynomial[K], error) {
	if len(numerators) == 0 || len(numerators) != len(denominators) {
		return nil, errors.Errorf("RationalImplicitization: numerators and denominators must be non-empty and the same size")
	}
	var proto K
	coordNames := make([]string, 0, len(numerators))
	for name, f := range numerators {
		if _, ok := denominators[name]; !ok {
			return nil, errors.Errorf("RationalImplicitization: %q has a numerator but no denominator", name)
		}
		coordNames = append(coordNames, name)
		proto = f.Proto()
	}
	sort.Strings(coordNames)

	paramSet := make(map[string]struct{})
	for _, name := range coordNames {
		for _, v := range numerators[name].Variables() {
			paramSet[v] = struct{}{}
		}
		for _, v := range denominators[name].Variables() {
			paramSet[v] = struct{}{}
		}
	}
	for _, name := range coordNames {
		delete(paramSet, name)
	}
	params := make([]string, 0, len(paramSet))
	for v := range paramSet {
		params = append(params, v)
	}
	sort.Strings(params)

	one := proto.NewOne()
	t, err := DefineVariable[K](SaturationVariable, one)
	if err != nil {
		return nil, errors.Wrap(err, "RationalImplicitization")
	}

	var generators []Polynomial[K]
	qProduct := ConstantPolynomial(one)
	for _, name := range coordNames {
		xi, err := DefineVariable[K](name, one)
		if err != nil {
			return nil, errors.Wrap(err, "RationalImplicitization")
		}
		xq, err := xi.Mul(denominators[name])
		if err != nil {
			return nil, errors.Wrap(err, "RationalImplicitization")
		}
		g, err := numerators[name].Sub(xq)
		if err != nil {
			return nil, errors.Wrap(err, "RationalImplicitization")
		}
		generators = append(generators, g)
		qProduct, err = qProduct.Mul(denominators[name])
		if err != nil {
			return nil, errors.Wrap(err, "RationalImplicitization")
		}
	}
	tQ, err := t.Mul(qProduct)
	if err != nil {
		return nil, errors.Wrap(err, "RationalImplicitization")
	}
	saturation, err := ConstantPolynomial(one).Sub(tQ)
	if err != nil {
		return nil, errors.Wrap(err, "RationalImplicitization")
	}
	generators = append(generators, saturation)

	permutation := append(append([]string{SaturationVariable}, params...), coordNames...)
	basis, err := GetGroebnerBasis(generators, permutation, Lex, true)
	if err != nil {
		return nil, errors.Wrap(err, "RationalImplicitization")
	}

	coordAllowed := variableSet(coordNames)
	var kept []Polynomial[K]
	for _, g := range basis {
		if onlyVariablesIn(g, coordAllowed) {
			normalized, err := Normalize(g, coordNames, true)
			if err != nil {
				return nil, errors.Wrap(err, "RationalImplicitization")
			}
			kept = append(kept, normalized)
		}
	}
	if len(kept) == 0 {
		return nil, errors.Errorf("RationalImplicitization: no implicit equation found")
	}
	return kept, nil
}
