package polyalgebra

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/groebner-lab/polyalgebra/numtheory"
)

const durandKernerTolerance = 1e-6

func univariateVariable[K Field[K]](f Polynomial[K]) (string, error) {
	vars := f.Variables()
	if len(vars) > 1 {
		return "", errors.Errorf("univariate operation on multivariate polynomial: variables %v", vars)
	}
	if len(vars) == 0 {
		return "", nil
	}
	return vars[0], nil
}

// FindRationalRoots returns the distinct rational roots of a univariate
// Rational polynomial via the rational-root theorem: candidates are
// ±p/q with p dividing the scaled trailing coefficient (the lowest-degree
// non-zero one) and q dividing the scaled leading coefficient (0 is
// included as a candidate), filtered by direct evaluation.
func FindRationalRoots(f Polynomial[Rational]) ([]Rational, error) {
	variable, err := univariateVariable(f)
	if err != nil {
		return nil, errors.Wrap(err, "FindRationalRoots")
	}
	if f.IsZeroPolynomial() {
		return nil, errors.Errorf("FindRationalRoots: the zero polynomial has infinitely many roots")
	}
	if variable == "" {
		return nil, nil
	}

	dens := make([]int64, 0, f.Len())
	for _, c := range f.Terms() {
		dens = append(dens, c.Denominator().Int64())
	}
	l, err := numtheory.IntegerLCM(dens...)
	if err != nil {
		return nil, errors.Wrap(err, "FindRationalRoots")
	}
	scaled, err := f.MulScalar(RationalFromInt(l))
	if err != nil {
		return nil, errors.Wrap(err, "FindRationalRoots")
	}

	degree := scaled.TotalDegree()
	coeffs := make([]*big.Int, degree+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(0)
	}
	for m, c := range scaled.Terms() {
		coeffs[m.Exponent(variable)] = c.Numerator()
	}
	low := 0
	for coeffs[low].Sign() == 0 {
		low++
	}
	trailing, leading := coeffs[low], coeffs[degree]

	var pValues, qValues []int64
	if trailing.Sign() == 0 {
		pValues = []int64{0}
	} else {
		pValues, err = numtheory.Divisors(new(big.Int).Abs(trailing).Int64())
		if err != nil {
			return nil, errors.Wrap(err, "FindRationalRoots")
		}
	}
	qValues, err = numtheory.Divisors(new(big.Int).Abs(leading).Int64())
	if err != nil {
		return nil, errors.Wrap(err, "FindRationalRoots")
	}

	candidates := map[string]Rational{RationalFromInt(0).String(): RationalFromInt(0)}
	for _, p := range pValues {
		if p == 0 {
			continue
		}
		for _, q := range qValues {
			for _, sign := range []int64{1, -1} {
				cand, err := NewRational(sign*p, q)
				if err != nil {
					return nil, errors.Wrap(err, "FindRationalRoots")
				}
				candidates[cand.String()] = cand
			}
		}
	}

	var roots []Rational
	for _, cand := range candidates {
		v, err := f.Evaluate(map[string]Rational{variable: cand})
		if err != nil {
			return nil, errors.Wrap(err, "FindRationalRoots")
		}
		if v.IsZero() {
			roots = append(roots, cand)
		}
	}
	return roots, nil
}

// FindFiniteFieldRoots returns every root of a univariate FiniteField(p)
// polynomial by brute-force enumeration of GF(p).
func FindFiniteFieldRoots(f Polynomial[*FiniteField]) ([]*FiniteField, error) {
	variable, err := univariateVariable(f)
	if err != nil {
		return nil, errors.Wrap(err, "FindFiniteFieldRoots")
	}
	if variable == "" {
		return nil, nil
	}
	elems, err := AllElements(f.Proto().Prime())
	if err != nil {
		return nil, errors.Wrap(err, "FindFiniteFieldRoots")
	}
	var roots []*FiniteField
	for _, e := range elems {
		v, err := f.Evaluate(map[string]*FiniteField{variable: e})
		if err != nil {
			return nil, errors.Wrap(err, "FindFiniteFieldRoots")
		}
		if v.IsZero() {
			roots = append(roots, e)
		}
	}
	return roots, nil
}

// FindComplexRoots finds every root of a univariate Complex polynomial via
// Durand-Kerner, starting from the n-th roots of unity (n = total
// degree), iterating up to 1000 times or until every |f(z_i)| < 1e-6.
// Non-convergence is tolerated silently: the best approximation after the
// iteration cap is returned. Near-zero real/imaginary parts are snapped to
// zero, and a root at zero is added if f(0) is within tolerance and not
// already present.
func FindComplexRoots(f Polynomial[Complex]) ([]Complex, error) {
	variable, err := univariateVariable(f)
	if err != nil {
		return nil, errors.Wrap(err, "FindComplexRoots")
	}
	if f.IsZeroPolynomial() {
		return nil, errors.Errorf("FindComplexRoots: the zero polynomial has infinitely many roots")
	}
	n := f.TotalDegree()
	if variable == "" || n <= 0 {
		return nil, nil
	}

	point := func(z complex128) map[string]Complex { return map[string]Complex{variable: Complex(z)} }

	zs := make([]complex128, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		zs[k] = cmplx.Exp(complex(0, theta))
	}

	for iter := 0; iter < 1000; iter++ {
		next := make([]complex128, n)
		maxAbs := 0.0
		for i := range zs {
			fz, err := f.Evaluate(point(zs[i]))
			if err != nil {
				return nil, errors.Wrap(err, "FindComplexRoots")
			}
			if a := cmplx.Abs(complex128(fz)); a > maxAbs {
				maxAbs = a
			}
			denom := complex128(1)
			for j := range zs {
				if j != i {
					denom *= zs[i] - zs[j]
				}
			}
			if denom == 0 {
				next[i] = zs[i]
				continue
			}
			next[i] = zs[i] - complex128(fz)/denom
		}
		zs = next
		if maxAbs < durandKernerTolerance {
			break
		}
	}

	roots := make([]Complex, n)
	for i, z := range zs {
		re, im := real(z), imag(z)
		if math.Abs(re) < durandKernerTolerance {
			re = 0
		}
		if math.Abs(im) < durandKernerTolerance {
			im = 0
		}
		roots[i] = Complex(complex(re, im))
	}

	zeroVal, err := f.Evaluate(point(0))
	if err == nil && cmplx.Abs(complex128(zeroVal)) < durandKernerTolerance {
		haveZero := false
		for _, r := range roots {
			if cmplx.Abs(complex128(r)) < durandKernerTolerance {
				haveZero = true
				break
			}
		}
		if !haveZero {
			roots = append(roots, Complex(0))
		}
	}
	return roots, nil
}

// FindRealRoots returns the real roots of a univariate Real polynomial by
// embedding it into Complex, running Durand-Kerner, and projecting the
// roots whose imaginary part is within tolerance of zero.
func FindRealRoots(f Polynomial[Real]) ([]Real, error) {
	terms := make(map[Monomial]Complex, f.Len())
	for m, c := range f.Terms() {
		terms[m] = Complex(complex(float64(c), 0))
	}
	cf := NewPolynomial[Complex](0, terms)
	complexRoots, err := FindComplexRoots(cf)
	if err != nil {
		return nil, errors.Wrap(err, "FindRealRoots")
	}
	var roots []Real
	for _, r := range complexRoots {
		if math.Abs(imag(complex128(r))) < durandKernerTolerance {
			roots = append(roots, Real(real(complex128(r))))
		}
	}
	return roots, nil
}
