package polyalgebra

import "github.com/pkg/errors"

// singleTerm returns the one-term polynomial coeff*mono.
func singleTerm[K Field[K]](mono Monomial, coeff K) Polynomial[K] {
	return NewPolynomial(coeff, map[Monomial]K{mono: coeff})
}

// Divide performs multivariate division of f by the ordered basis G under
// the given variable permutation and monomial order, returning one
// quotient per divisor and a remainder such that f = sum(q_i*g_i) + r and
// no term of r is divisible by the leading term of any g_i.
//
// G is scanned in index order on each step; the first divisor whose
// leading monomial divides the working leading monomial wins. This
// determines which quotient grows and is part of the documented contract:
// reduction results depend on divisor order.
func Divide[K Field[K]](f Polynomial[K], G []Polynomial[K], permutation []string, order Order) ([]Polynomial[K], Polynomial[K], error) {
	if len(G) == 0 {
		return nil, Polynomial[K]{}, errors.Errorf("Divide: divisor list must be non-empty")
	}
	proto := f.proto
	quotients := make([]Polynomial[K], len(G))
	for i := range quotients {
		quotients[i] = Zero[K](proto)
	}
	p := f
	r := Zero[K](proto)

	for !p.IsZeroPolynomial() {
		ltp, _ := LeadingMonomial(p, permutation, order)
		lcp, _ := LeadingCoefficient(p, permutation, order)

		matched := false
		for i, gi := range G {
			ltgi, ok := LeadingMonomial(gi, permutation, order)
			if !ok {
				continue
			}
			quoMono, err := ltp.Div(ltgi)
			if err != nil {
				continue
			}
			lcgi, _ := LeadingCoefficient(gi, permutation, order)
			quoCoeff, err := lcp.Div(lcgi)
			if err != nil {
				return nil, Polynomial[K]{}, errors.Wrap(err, "Divide")
			}
			t := singleTerm(quoMono, quoCoeff)

			quotients[i], err = quotients[i].Add(t)
			if err != nil {
				return nil, Polynomial[K]{}, errors.Wrap(err, "Divide")
			}
			tg, err := t.Mul(gi)
			if err != nil {
				return nil, Polynomial[K]{}, errors.Wrap(err, "Divide")
			}
			p, err = p.Sub(tg)
			if err != nil {
				return nil, Polynomial[K]{}, errors.Wrap(err, "Divide")
			}
			matched = true
			break
		}

		if !matched {
			lt := singleTerm(ltp, lcp)
			var err error
			r, err = r.Add(lt)
			if err != nil {
				return nil, Polynomial[K]{}, errors.Wrap(err, "Divide")
			}
			p, err = p.Sub(lt)
			if err != nil {
				return nil, Polynomial[K]{}, errors.Wrap(err, "Divide")
			}
		}
	}

	return quotients, r, nil
}

// NormalForm returns only the remainder of dividing f by G.
func NormalForm[K Field[K]](f Polynomial[K], G []Polynomial[K], permutation []string, order Order) (Polynomial[K], error) {
	_, r, err := Divide(f, G, permutation, order)
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "NormalForm")
	}
	return r, nil
}
