package polyalgebra

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// term is one (monomial, coefficient) pair of a Polynomial.
type term[K Field[K]] struct {
	mono  Monomial
	coeff K
}

// Polynomial is a sparse multivariate polynomial: a mapping from monomials
// to coefficients of a single Field kind K, plus a representative
// coefficient (proto) used to synthesize new zero/one coefficients with the
// right parameterization (e.g. the same FiniteField modulus). The mapping
// never contains a structurally-zero coefficient. Polynomials are value
// objects: every operation below returns a fresh Polynomial.
type Polynomial[K Field[K]] struct {
	proto K
	terms map[string]term[K]
}

// NewPolynomial returns the polynomial with the given monomial->coefficient
// terms, stripping structurally-zero coefficients. proto is used to
// synthesize zero/one coefficients for later operations (e.g. the modulus
// of a FiniteField); if termMap is non-empty, any term's coefficient may
// serve as proto and the explicit argument may be its own NewZero().
func NewPolynomial[K Field[K]](proto K, termMap map[Monomial]K) Polynomial[K] {
	terms := make(map[string]term[K], len(termMap))
	for m, c := range termMap {
		if c.IsZero() {
			continue
		}
		terms[m.key()] = term[K]{mono: m, coeff: c}
	}
	return Polynomial[K]{proto: proto, terms: terms}
}

// Zero returns the zero polynomial over the same kind as proto.
func Zero[K Field[K]](proto K) Polynomial[K] {
	return Polynomial[K]{proto: proto, terms: map[string]term[K]{}}
}

// ConstantPolynomial returns the constant polynomial c.
func ConstantPolynomial[K Field[K]](c K) Polynomial[K] {
	return NewPolynomial(c, map[Monomial]K{ConstantMonomial(): c})
}

// DefineVariable returns the polynomial 1*name over the kind of one.
func DefineVariable[K Field[K]](name string, one K) (Polynomial[K], error) {
	if !IsAllowedVariable(name) {
		return Polynomial[K]{}, errors.Errorf("DefineVariable: %q is not a supported variable name", name)
	}
	return NewPolynomial(one, map[Monomial]K{VariableMonomial(name): one}), nil
}

// Proto returns the representative coefficient used to synthesize new
// zero/one values of f's kind.
func (f Polynomial[K]) Proto() K { return f.proto }

// Terms returns the (monomial, coefficient) pairs of f in no particular
// order; use String or a Order-based sort for a canonical presentation.
func (f Polynomial[K]) Terms() map[Monomial]K {
	out := make(map[Monomial]K, len(f.terms))
	for _, t := range f.terms {
		out[t.mono] = t.coeff
	}
	return out
}

// Len returns the number of non-zero terms.
func (f Polynomial[K]) Len() int { return len(f.terms) }

// IsZeroPolynomial reports whether f has no terms.
func (f Polynomial[K]) IsZeroPolynomial() bool { return len(f.terms) == 0 }

// Variables returns the variables appearing in f, sorted alphabetically.
func (f Polynomial[K]) Variables() []string {
	set := make(map[string]struct{})
	for _, t := range f.terms {
		for _, v := range t.mono.Variables() {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// TotalDegree returns the maximum monomial degree, or -1 for the zero
// polynomial.
func (f Polynomial[K]) TotalDegree() int {
	if f.IsZeroPolynomial() {
		return -1
	}
	max := 0
	for _, t := range f.terms {
		if d := t.mono.Degree(); d > max {
			max = d
		}
	}
	return max
}

func cloneTerms[K Field[K]](f Polynomial[K]) map[string]term[K] {
	out := make(map[string]term[K], len(f.terms))
	for k, t := range f.terms {
		out[k] = t
	}
	return out
}

// Add returns f+g.
func (f Polynomial[K]) Add(g Polynomial[K]) (Polynomial[K], error) {
	out := cloneTerms(f)
	for key, t := range g.terms {
		if existing, ok := out[key]; ok {
			c, err := existing.coeff.Add(t.coeff)
			if err != nil {
				return Polynomial[K]{}, errors.Wrap(err, "Polynomial.Add")
			}
			if c.IsZero() {
				delete(out, key)
			} else {
				out[key] = term[K]{mono: t.mono, coeff: c}
			}
		} else {
			out[key] = t
		}
	}
	return Polynomial[K]{proto: f.proto, terms: out}, nil
}

// Neg returns -f.
func (f Polynomial[K]) Neg() Polynomial[K] {
	out := make(map[string]term[K], len(f.terms))
	for key, t := range f.terms {
		out[key] = term[K]{mono: t.mono, coeff: t.coeff.Neg()}
	}
	return Polynomial[K]{proto: f.proto, terms: out}
}

// Sub returns f-g.
func (f Polynomial[K]) Sub(g Polynomial[K]) (Polynomial[K], error) {
	r, err := f.Add(g.Neg())
	if err != nil {
		return Polynomial[K]{}, errors.Wrap(err, "Polynomial.Sub")
	}
	return r, nil
}

// Mul returns f*g.
func (f Polynomial[K]) Mul(g Polynomial[K]) (Polynomial[K], error) {
	out := make(map[string]term[K])
	for _, tf := range f.terms {
		for _, tg := range g.terms {
			m := tf.mono.Mul(tg.mono)
			c, err := tf.coeff.Mul(tg.coeff)
			if err != nil {
				return Polynomial[K]{}, errors.Wrap(err, "Polynomial.Mul")
			}
			key := m.key()
			if existing, ok := out[key]; ok {
				c, err = existing.coeff.Add(c)
				if err != nil {
					return Polynomial[K]{}, errors.Wrap(err, "Polynomial.Mul")
				}
			}
			if c.IsZero() {
				delete(out, key)
			} else {
				out[key] = term[K]{mono: m, coeff: c}
			}
		}
	}
	proto := f.proto
	return Polynomial[K]{proto: proto, terms: out}, nil
}

// MulScalar returns f scaled by the constant c (same kind as f).
func (f Polynomial[K]) MulScalar(c K) (Polynomial[K], error) {
	return f.Mul(ConstantPolynomial(c))
}

// Pow returns f^n for a non-negative integer n, via fast exponentiation.
func (f Polynomial[K]) Pow(n int) (Polynomial[K], error) {
	if n < 0 {
		return Polynomial[K]{}, errors.Errorf("Polynomial.Pow: exponent must be non-negative, got %d", n)
	}
	result := ConstantPolynomial(f.proto.NewOne())
	base := f
	for n > 0 {
		if n%2 == 1 {
			var err error
			result, err = result.Mul(base)
			if err != nil {
				return Polynomial[K]{}, errors.Wrap(err, "Polynomial.Pow")
			}
		}
		var err error
		base, err = base.Mul(base)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "Polynomial.Pow")
		}
		n /= 2
	}
	return result, nil
}

// Evaluate returns f(point), requiring point to supply every variable of f.
func (f Polynomial[K]) Evaluate(point map[string]K) (K, error) {
	result := f.proto.NewZero()
	for _, t := range f.terms {
		term := t.coeff
		for _, v := range t.mono.Variables() {
			val, ok := point[v]
			if !ok {
				var zero K
				return zero, errors.Errorf("Polynomial.Evaluate: missing value for variable %q", v)
			}
			p, err := val.Pow(t.mono.Exponent(v))
			if err != nil {
				var zero K
				return zero, errors.Wrap(err, "Polynomial.Evaluate")
			}
			term, err = term.Mul(p)
			if err != nil {
				var zero K
				return zero, errors.Wrap(err, "Polynomial.Evaluate")
			}
		}
		var err error
		result, err = result.Add(term)
		if err != nil {
			var zero K
			return zero, errors.Wrap(err, "Polynomial.Evaluate")
		}
	}
	return result, nil
}

// Equal reports whether f and g are the same polynomial, i.e. (f-g) is
// identically zero. A kind mismatch (e.g. differing FiniteField primes)
// is reported as not-equal rather than as an error.
func (f Polynomial[K]) Equal(g Polynomial[K]) bool {
	d, err := f.Sub(g)
	if err != nil {
		return false
	}
	return d.IsZeroPolynomial()
}

// LeadingMonomial returns the greatest monomial of f under order given
// permutation, and false if f is the zero polynomial (leading term is
// undefined).
func LeadingMonomial[K Field[K]](f Polynomial[K], permutation []string, order Order) (Monomial, bool) {
	var best Monomial
	found := false
	for _, t := range f.terms {
		if !found || order(t.mono, best, permutation) > 0 {
			best = t.mono
			found = true
		}
	}
	return best, found
}

// LeadingCoefficient returns the coefficient of f's leading monomial.
func LeadingCoefficient[K Field[K]](f Polynomial[K], permutation []string, order Order) (K, bool) {
	m, ok := LeadingMonomial(f, permutation, order)
	if !ok {
		var zero K
		return zero, false
	}
	return f.terms[m.key()].coeff, true
}

// sortedTerms returns f's terms sorted by decreasing (total degree, max
// exponent), matching the original Python Polynomial.sortCoefficients used
// by __str__.
func sortedTerms[K Field[K]](f Polynomial[K]) []term[K] {
	out := make([]term[K], 0, len(f.terms))
	for _, t := range f.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].mono.Degree(), out[j].mono.Degree()
		if di != dj {
			return di > dj
		}
		mi, mj := out[i].mono.MaxExponent(), out[j].mono.MaxExponent()
		if mi != mj {
			return mi > mj
		}
		return out[i].mono.key() < out[j].mono.key()
	})
	return out
}

// String renders f with terms sorted by decreasing (total degree, max
// exponent), matching the original Python Polynomial.__str__.
func (f Polynomial[K]) String() string {
	if f.IsZeroPolynomial() {
		return "0"
	}
	var b strings.Builder
	for i, t := range sortedTerms(f) {
		s := t.coeff.String()
		neg := strings.HasPrefix(s, "-")
		if i > 0 {
			if neg {
				b.WriteString(" - ")
				s = s[1:]
			} else {
				b.WriteString(" + ")
			}
		} else if neg {
			b.WriteString("-")
			s = s[1:]
		}
		if t.mono.Equal(ConstantMonomial()) {
			b.WriteString(s)
		} else if s == "1" {
			b.WriteString(t.mono.String())
		} else {
			b.WriteString(s)
			b.WriteString(t.mono.String())
		}
	}
	return b.String()
}
