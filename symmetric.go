package polyalgebra

import (
	"math/big"

	"github.com/pkg/errors"
)

func intTimes[K Field[K]](x K, n int) (K, error) {
	acc := x.NewZero()
	for i := 0; i < n; i++ {
		var err error
		acc, err = acc.Add(x)
		if err != nil {
			return acc, errors.Wrap(err, "intTimes")
		}
	}
	return acc, nil
}

func derivativeOnce[K Field[K]](f Polynomial[K], variable string) (Polynomial[K], error) {
	out := Zero(f.Proto())
	for m, c := range f.Terms() {
		e := m.Exponent(variable)
		if e == 0 {
			continue
		}
		exponents := make(map[string]int, len(m.Variables()))
		for _, v := range m.Variables() {
			exponents[v] = m.Exponent(v)
		}
		exponents[variable] = e - 1
		coeff, err := intTimes(c, e)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "derivativeOnce")
		}
		term := singleTerm(NewMonomial(exponents), coeff)
		out, err = out.Add(term)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "derivativeOnce")
		}
	}
	return out, nil
}

// Derivative returns the partial derivative of f with respect to variable,
// applied order times (order >= 0; order == 0 returns f unchanged).
func Derivative[K Field[K]](f Polynomial[K], variable string, order int) (Polynomial[K], error) {
	if order < 0 {
		return Polynomial[K]{}, errors.Errorf("Derivative: order must be non-negative, got %d", order)
	}
	result := f
	for i := 0; i < order; i++ {
		var err error
		result, err = derivativeOnce(result, variable)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "Derivative")
		}
	}
	return result, nil
}

func combinations(vars []string, k int) [][]string {
	if k == 0 {
		return [][]string{{}}
	}
	if k > len(vars) {
		return nil
	}
	var out [][]string
	// Include vars[0], choose k-1 from the rest, then exclude vars[0].
	for _, rest := range combinations(vars[1:], k-1) {
		combo := append([]string{vars[0]}, rest...)
		out = append(out, combo)
	}
	out = append(out, combinations(vars[1:], k)...)
	return out
}

// ElementarySymmetric returns the k-th elementary symmetric polynomial in
// vars: the sum of all products of k-element subsets of vars.
func ElementarySymmetric[K Field[K]](k int, vars []string, one K) (Polynomial[K], error) {
	if k < 0 || k > len(vars) {
		return Polynomial[K]{}, errors.Errorf("ElementarySymmetric: k=%d out of range for %d variables", k, len(vars))
	}
	result := Zero(one)
	for _, combo := range combinations(vars, k) {
		term := ConstantPolynomial(one)
		for _, v := range combo {
			vp, err := DefineVariable(v, one)
			if err != nil {
				return Polynomial[K]{}, errors.Wrap(err, "ElementarySymmetric")
			}
			term, err = term.Mul(vp)
			if err != nil {
				return Polynomial[K]{}, errors.Wrap(err, "ElementarySymmetric")
			}
		}
		var err error
		result, err = result.Add(term)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "ElementarySymmetric")
		}
	}
	return result, nil
}

// PowerSum returns the k-th power-sum symmetric polynomial in vars: the
// sum of vars[i]^k.
func PowerSum[K Field[K]](k int, vars []string, one K) (Polynomial[K], error) {
	result := Zero(one)
	for _, v := range vars {
		vp, err := DefineVariable(v, one)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "PowerSum")
		}
		powered, err := vp.Pow(k)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "PowerSum")
		}
		result, err = result.Add(powered)
		if err != nil {
			return Polynomial[K]{}, errors.Wrap(err, "PowerSum")
		}
	}
	return result, nil
}

func embedRationalValue(c Rational, p int) (*FiniteField, error) {
	pBig := big.NewInt(int64(p))
	numMod := new(big.Int).Mod(c.Numerator(), pBig)
	denMod := new(big.Int).Mod(c.Denominator(), pBig)
	denInv := new(big.Int).ModInverse(denMod, pBig)
	if denInv == nil {
		return nil, errors.Errorf("Embed: denominator %s has no inverse mod %d", c.Denominator().String(), p)
	}
	val := new(big.Int).Mod(new(big.Int).Mul(numMod, denInv), pBig)
	return NewFiniteField(val.Int64(), p)
}

// EmbedRationalToFiniteField re-embeds a Rational polynomial into GF(p) by
// reducing each coefficient's numerator and denominator mod p and dividing.
// Fails if any denominator vanishes mod p.
func EmbedRationalToFiniteField(f Polynomial[Rational], p int) (Polynomial[*FiniteField], error) {
	zero, err := NewFiniteField(0, p)
	if err != nil {
		return Polynomial[*FiniteField]{}, errors.Wrap(err, "EmbedRationalToFiniteField")
	}
	terms := make(map[Monomial]*FiniteField)
	for m, c := range f.Terms() {
		v, err := embedRationalValue(c, p)
		if err != nil {
			return Polynomial[*FiniteField]{}, errors.Wrap(err, "EmbedRationalToFiniteField")
		}
		terms[m] = v
	}
	return NewPolynomial(zero, terms), nil
}
