package polyalgebra

import (
	"reflect"
	"sort"
	"sync"

	"github.com/jba/omap"
	"github.com/pkg/errors"
)

// Ideal holds a list of generator polynomials, the union of their
// variables, and a lazily-computed reduced Gröbner basis together with the
// permutation, order and normalize flag it was last computed under. The
// basis cache is a single slot keyed on all three: callers are expected to settle on one
// monomial order for an ideal's lifetime (mixing orders across calls still
// works, it just defeats the cache). Computing the basis never holds the
// lock: a second concurrent request may recompute rather than block, but
// both calls are pure functions of the same generators and converge on an
// equal result.
type Ideal[K Field[K]] struct {
	generators []Polynomial[K]
	variables  []string

	mu                sync.Mutex
	cachedPermutation []string
	cachedOrder       uintptr
	cachedNormalize   bool
	cachedBasis       []Polynomial[K]
	haveCache         bool
}

func sameKind[K Field[K]](ps []Polynomial[K]) error {
	if len(ps) == 0 {
		return nil
	}
	c0 := ps[0].Proto().Characteristic()
	for _, p := range ps[1:] {
		if p.Proto().Characteristic() != c0 {
			return errors.Errorf("kind mismatch: characteristics %d and %d", c0, p.Proto().Characteristic())
		}
	}
	return nil
}

func dedupPolynomials[K Field[K]](ps []Polynomial[K]) []Polynomial[K] {
	seen := omap.NewMapFunc[string, Polynomial[K]](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	for _, p := range ps {
		seen.Set(p.String(), p)
	}
	out := make([]Polynomial[K], 0, seen.Len())
	for _, p := range seen.All() {
		out = append(out, p)
	}
	return out
}

func unionVariables[K Field[K]](ps []Polynomial[K]) []string {
	set := make(map[string]struct{})
	for _, p := range ps {
		for _, v := range p.Variables() {
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

// NewIdeal returns the ideal generated by the given (non-zero-count)
// polynomials. Generators are deduplicated by their canonical string form.
func NewIdeal[K Field[K]](generators ...Polynomial[K]) (*Ideal[K], error) {
	if len(generators) == 0 {
		return nil, errors.Errorf("NewIdeal: at least one generator is required")
	}
	if err := sameKind(generators); err != nil {
		return nil, errors.Wrap(err, "NewIdeal")
	}
	gens := dedupPolynomials(generators)
	return &Ideal[K]{generators: gens, variables: unionVariables(gens)}, nil
}

// Generators returns the ideal's generators.
func (I *Ideal[K]) Generators() []Polynomial[K] {
	out := make([]Polynomial[K], len(I.generators))
	copy(out, I.generators)
	return out
}

// Variables returns the sorted union of the generators' variables.
func (I *Ideal[K]) Variables() []string {
	out := make([]string, len(I.variables))
	copy(out, I.variables)
	return out
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CalculateGroebnerBasis returns the reduced Gröbner basis of the ideal
// under the given variable permutation and order, computing it lazily and
// caching it for subsequent calls with the same permutation, order and
// normalize flag. Orders are told apart by function identity.
func (I *Ideal[K]) CalculateGroebnerBasis(permutation []string, order Order, normalize bool) ([]Polynomial[K], error) {
	orderKey := reflect.ValueOf(order).Pointer()
	I.mu.Lock()
	if I.haveCache && stringsEqual(I.cachedPermutation, permutation) && I.cachedOrder == orderKey && I.cachedNormalize == normalize {
		basis := I.cachedBasis
		I.mu.Unlock()
		return basis, nil
	}
	I.mu.Unlock()

	basis, err := GetGroebnerBasis(I.generators, permutation, order, normalize)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.CalculateGroebnerBasis")
	}

	I.mu.Lock()
	I.cachedPermutation = append([]string{}, permutation...)
	I.cachedOrder = orderKey
	I.cachedNormalize = normalize
	I.cachedBasis = basis
	I.haveCache = true
	I.mu.Unlock()
	return basis, nil
}

// reducedLexBasis is the canonical basis used for membership, equality and
// containment: reduced, monic, lex order over the ideal's own variables.
func (I *Ideal[K]) reducedLexBasis() ([]Polynomial[K], error) {
	return I.CalculateGroebnerBasis(I.variables, Lex, true)
}

// Contains reports whether f is a member of the ideal, i.e. its normal
// form modulo the reduced lex basis is zero.
func (I *Ideal[K]) Contains(f Polynomial[K]) (bool, error) {
	basis, err := I.reducedLexBasis()
	if err != nil {
		return false, errors.Wrap(err, "Ideal.Contains")
	}
	nf, err := NormalForm(f, basis, I.variables, Lex)
	if err != nil {
		return false, errors.Wrap(err, "Ideal.Contains")
	}
	return nf.IsZeroPolynomial(), nil
}

func basisSetEqual[K Field[K]](a, b []Polynomial[K]) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, pa := range a {
		found := false
		for j, pb := range b {
			if used[j] {
				continue
			}
			if pa.Equal(pb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equal reports whether I and J generate the same ideal, by comparing
// their reduced lex Gröbner bases as sets over the union of both ideals'
// variables.
func (I *Ideal[K]) Equal(J *Ideal[K]) (bool, error) {
	perm := sortedUnion(I.variables, J.variables)
	basisI, err := I.CalculateGroebnerBasis(perm, Lex, true)
	if err != nil {
		return false, errors.Wrap(err, "Ideal.Equal")
	}
	basisJ, err := J.CalculateGroebnerBasis(perm, Lex, true)
	if err != nil {
		return false, errors.Wrap(err, "Ideal.Equal")
	}
	return basisSetEqual(basisI, basisJ), nil
}

func sortedUnion(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		set[v] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ContainedIn reports whether I is a subset of J, i.e. every generator of
// I is a member of J.
func (I *Ideal[K]) ContainedIn(J *Ideal[K]) (bool, error) {
	for _, f := range I.generators {
		ok, err := J.Contains(f)
		if err != nil {
			return false, errors.Wrap(err, "Ideal.ContainedIn")
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Sum returns I + J: the ideal generated by the concatenation (deduplicated)
// of both generator lists.
func (I *Ideal[K]) Sum(J *Ideal[K]) (*Ideal[K], error) {
	all := append(append([]Polynomial[K]{}, I.generators...), J.generators...)
	sum, err := NewIdeal(all...)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.Sum")
	}
	return sum, nil
}

// Product returns I * J: the ideal generated by all pairwise products of
// generators.
func (I *Ideal[K]) Product(J *Ideal[K]) (*Ideal[K], error) {
	if err := sameKind(append(append([]Polynomial[K]{}, I.generators...), J.generators...)); err != nil {
		return nil, errors.Wrap(err, "Ideal.Product")
	}
	var products []Polynomial[K]
	for _, f := range I.generators {
		for _, g := range J.generators {
			p, err := f.Mul(g)
			if err != nil {
				return nil, errors.Wrap(err, "Ideal.Product")
			}
			products = append(products, p)
		}
	}
	prod, err := NewIdeal(products...)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.Product")
	}
	return prod, nil
}

func containsVariable[K Field[K]](f Polynomial[K], name string) bool {
	for _, v := range f.Variables() {
		if v == name {
			return true
		}
	}
	return false
}

// Intersection returns I ∩ J by introducing a fresh variable ranked
// highest in lex, computing the Gröbner basis of {t*f : f in I} ∪
// {(1-t)*g : g in J}, and keeping the subset of the basis whose variables
// do not include t.
func (I *Ideal[K]) Intersection(J *Ideal[K]) (*Ideal[K], error) {
	if err := sameKind(append(append([]Polynomial[K]{}, I.generators...), J.generators...)); err != nil {
		return nil, errors.Wrap(err, "Ideal.Intersection")
	}
	one := I.generators[0].Proto().NewOne()
	t, err := DefineVariable[K](SaturationVariable, one)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.Intersection")
	}
	oneMinusT, err := ConstantPolynomial(one).Sub(t)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.Intersection")
	}

	var gens []Polynomial[K]
	for _, f := range I.generators {
		tf, err := t.Mul(f)
		if err != nil {
			return nil, errors.Wrap(err, "Ideal.Intersection")
		}
		gens = append(gens, tf)
	}
	for _, g := range J.generators {
		og, err := oneMinusT.Mul(g)
		if err != nil {
			return nil, errors.Wrap(err, "Ideal.Intersection")
		}
		gens = append(gens, og)
	}

	permutation := append([]string{SaturationVariable}, sortedUnion(I.variables, J.variables)...)
	basis, err := GetGroebnerBasis(gens, permutation, Lex, true)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.Intersection")
	}

	var kept []Polynomial[K]
	for _, g := range basis {
		if !containsVariable(g, SaturationVariable) {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		return nil, errors.Errorf("Ideal.Intersection: intersection is the zero ideal")
	}
	result, err := NewIdeal(kept...)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.Intersection")
	}
	return result, nil
}

// EliminationIdeal returns the elimination ideal of I with respect to the
// given variables: compute a lex basis ranking those variables highest,
// and keep the subset whose variables avoid them entirely.
func (I *Ideal[K]) EliminationIdeal(eliminate []string) (*Ideal[K], error) {
	elimSet := make(map[string]struct{}, len(eliminate))
	for _, v := range eliminate {
		elimSet[v] = struct{}{}
	}
	var remaining []string
	for _, v := range I.variables {
		if _, ok := elimSet[v]; !ok {
			remaining = append(remaining, v)
		}
	}
	permutation := append(append([]string{}, eliminate...), remaining...)

	basis, err := I.CalculateGroebnerBasis(permutation, Lex, true)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.EliminationIdeal")
	}
	var kept []Polynomial[K]
	for _, g := range basis {
		eliminated := false
		for _, v := range g.Variables() {
			if _, ok := elimSet[v]; ok {
				eliminated = true
				break
			}
		}
		if !eliminated {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		return nil, errors.Errorf("Ideal.EliminationIdeal: elimination ideal is the zero ideal")
	}
	result, err := NewIdeal(kept...)
	if err != nil {
		return nil, errors.Wrap(err, "Ideal.EliminationIdeal")
	}
	return result, nil
}
