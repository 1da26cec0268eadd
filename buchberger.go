package polyalgebra

import (
	"sort"

	"github.com/pkg/errors"
)

// SPolynomial returns S(f, g) = (lcm/LT(f))*(1/LC(f))*f - (lcm/LT(g))*(1/LC(g))*g,
// the combination designed to cancel the leading terms of f and g.
// Either argument being the zero polynomial is an error: the leading term
// is undefined.
func SPolynomial[K Field[K]](f, g Polynomial[K], permutation []string, order Order) (Polynomial[K], error) {
	ltf, ok := LeadingMonomial(f, permutation, order)
	if !ok {
		return Polynomial[K]{}, errors.Errorf("SPolynomial: f is the zero polynomial")
	}
	ltg, ok := LeadingMonomial(g, permutation, order)
	if !ok {
		return Polynomial[K]{}, errors.Errorf("SPolynomial: g is the zero polynomial")
	}
	lcf, _ := LeadingCoefficient(f, permutation, order)
	lcg, _ := LeadingCoefficient(g, permutation, order)

	l := LCM(ltf, ltg)
	mf, err := l.Div(ltf)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SPolynomial")
	}
	mg, err := l.Div(ltg)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SPolynomial")
	}
	invLcf, err := lcf.Pow(-1)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SPolynomial")
	}
	invLcg, err := lcg.Pow(-1)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SPolynomial")
	}

	tf, err := singleTerm(mf, invLcf).Mul(f)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SPolynomial")
	}
	tg, err := singleTerm(mg, invLcg).Mul(g)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "SPolynomial")
	}
	return tf.Sub(tg)
}

// coprime reports whether the monomials a and b share no variable, i.e.
// their lcm equals their product (the LCM criterion, applied to leading
// monomials).
func coprime(a, b Monomial) bool {
	return LCM(a, b).Equal(a.Mul(b))
}

// extend grows G by S-polynomial reduction until a full pass adds nothing,
// applying the LCM and (asymmetric, k > j) chain criteria to skip pairs
// that cannot contribute a new basis element. The chain criterion here
// scans only k > j, matching the documented weaker-than-classical form;
// see DESIGN.md for the rationale.
func extend[K Field[K]](G []Polynomial[K], permutation []string, order Order) ([]Polynomial[K], error) {
	for {
		lt := make([]Monomial, len(G))
		for i, gi := range G {
			m, ok := LeadingMonomial(gi, permutation, order)
			if !ok {
				return nil, errors.Errorf("extend: basis element %d is the zero polynomial", i)
			}
			lt[i] = m
		}

		H := append([]Polynomial[K]{}, G...)
		for i := 0; i < len(G); i++ {
			for j := i + 1; j < len(G); j++ {
				if coprime(lt[i], lt[j]) {
					continue
				}
				l := LCM(lt[i], lt[j])
				chained := false
				for k := j + 1; k < len(G); k++ {
					if lt[k].Divides(l) {
						chained = true
						break
					}
				}
				if chained {
					continue
				}

				s, err := SPolynomial(G[i], G[j], permutation, order)
				if err != nil {
					return nil, errors.Wrap(err, "extend")
				}
				_, r, err := Divide(s, G, permutation, order)
				if err != nil {
					return nil, errors.Wrap(err, "extend")
				}
				if !r.IsZeroPolynomial() {
					H = append(H, r)
				}
			}
		}

		if len(H) == len(G) {
			return G, nil
		}
		G = H
	}
}

// minimalize drops any basis element whose leading monomial is divisible
// by another element's leading monomial, leaving a minimal basis.
func minimalize[K Field[K]](G []Polynomial[K], permutation []string, order Order) ([]Polynomial[K], error) {
	lt := make([]Monomial, len(G))
	for i, gi := range G {
		m, ok := LeadingMonomial(gi, permutation, order)
		if !ok {
			return nil, errors.Errorf("minimalize: basis element %d is the zero polynomial", i)
		}
		lt[i] = m
	}
	keep := make([]bool, len(G))
	for i := range G {
		keep[i] = true
	}
	for i := range G {
		for k := range G {
			if i == k || !keep[k] {
				continue
			}
			if lt[k].Divides(lt[i]) && !(lt[k].Equal(lt[i]) && k > i) {
				keep[i] = false
				break
			}
		}
	}
	var out []Polynomial[K]
	for i, gi := range G {
		if keep[i] {
			out = append(out, gi)
		}
	}
	return out, nil
}

// reduceBasis replaces each element by its remainder modulo the others,
// repeating until a full pass leaves every element unchanged.
func reduceBasis[K Field[K]](G []Polynomial[K], permutation []string, order Order) ([]Polynomial[K], error) {
	for {
		changed := false
		for i := range G {
			others := make([]Polynomial[K], 0, len(G)-1)
			others = append(others, G[:i]...)
			others = append(others, G[i+1:]...)
			if len(others) == 0 {
				continue
			}
			_, r, err := Divide(G[i], others, permutation, order)
			if err != nil {
				return nil, errors.Wrap(err, "reduceBasis")
			}
			if !r.Equal(G[i]) {
				G[i] = r
				changed = true
			}
		}
		if !changed {
			return G, nil
		}
	}
}

// monicize scales each basis element so its leading coefficient is 1.
func monicize[K Field[K]](G []Polynomial[K], permutation []string, order Order) ([]Polynomial[K], error) {
	out := make([]Polynomial[K], len(G))
	for i, gi := range G {
		lc, ok := LeadingCoefficient(gi, permutation, order)
		if !ok {
			return nil, errors.Errorf("monicize: basis element %d is the zero polynomial", i)
		}
		inv, err := lc.Pow(-1)
		if err != nil {
			return nil, errors.Wrap(err, "monicize")
		}
		scaled, err := gi.MulScalar(inv)
		if err != nil {
			return nil, errors.Wrap(err, "monicize")
		}
		out[i] = scaled
	}
	return out, nil
}

// sortBasis orders basis elements by decreasing leading monomial, for a
// deterministic, reproducible presentation.
func sortBasis[K Field[K]](G []Polynomial[K], permutation []string, order Order) {
	sort.SliceStable(G, func(i, j int) bool {
		li, _ := LeadingMonomial(G[i], permutation, order)
		lj, _ := LeadingMonomial(G[j], permutation, order)
		return order(li, lj, permutation) > 0
	})
}

// GetGroebnerBasis returns the reduced Gröbner basis of the ideal
// generated by G under the given variable permutation and monomial order.
// When normalize is true, every element is scaled to have leading
// coefficient 1.
func GetGroebnerBasis[K Field[K]](G []Polynomial[K], permutation []string, order Order, normalize bool) ([]Polynomial[K], error) {
	if len(G) == 0 {
		return nil, errors.Errorf("GetGroebnerBasis: generator list must be non-empty")
	}
	var nonZero []Polynomial[K]
	for _, g := range G {
		if !g.IsZeroPolynomial() {
			nonZero = append(nonZero, g)
		}
	}
	if len(nonZero) == 0 {
		return nil, errors.Errorf("GetGroebnerBasis: all generators are zero")
	}

	extended, err := extend(nonZero, permutation, order)
	if err != nil {
		return nil, errors.Wrap(err, "GetGroebnerBasis")
	}
	minimal, err := minimalize(extended, permutation, order)
	if err != nil {
		return nil, errors.Wrap(err, "GetGroebnerBasis")
	}
	reduced, err := reduceBasis(minimal, permutation, order)
	if err != nil {
		return nil, errors.Wrap(err, "GetGroebnerBasis")
	}
	var final []Polynomial[K]
	for _, g := range reduced {
		if !g.IsZeroPolynomial() {
			final = append(final, g)
		}
	}
	if normalize {
		final, err = monicize(final, permutation, order)
		if err != nil {
			return nil, errors.Wrap(err, "GetGroebnerBasis")
		}
	}
	sortBasis(final, permutation, order)
	return final, nil
}
