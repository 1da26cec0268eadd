package polyalgebra

import (
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/groebner-lab/polyalgebra/numtheory"
)

// primeRegistry is the module-wide read-mostly table of validated primes a
// FiniteField may be constructed over, mirroring original_source's
// GaloisField.PRIMES / getMorePrimes. The only mutation path is
// ExtendPrimesUpTo, made atomic with respect to concurrent readers by mu,
// per spec section 5.
type primeRegistry struct {
	mu     sync.RWMutex
	bound  int
	primes map[int]struct{}
}

var primes = newPrimeRegistry()

func newPrimeRegistry() *primeRegistry {
	r := &primeRegistry{primes: make(map[int]struct{})}
	for _, p := range numtheory.SieveUpTo(1000) {
		r.primes[p] = struct{}{}
	}
	r.bound = 1000
	return r
}

// ExtendPrimesUpTo grows the set of allowed finite-field moduli to include
// every prime <= n. Safe for concurrent use; callers that need a guarantee
// that it precedes all FiniteField construction should call it once at
// initialization, per spec section 5.
func ExtendPrimesUpTo(n int) {
	primes.mu.Lock()
	defer primes.mu.Unlock()
	if n <= primes.bound {
		return
	}
	for _, p := range numtheory.SieveUpTo(n) {
		primes.primes[p] = struct{}{}
	}
	primes.bound = n
}

// IsAllowedPrime reports whether p is in the currently validated prime set.
func IsAllowedPrime(p int) bool {
	primes.mu.RLock()
	defer primes.mu.RUnlock()
	_, ok := primes.primes[p]
	return ok
}

// AllowedPrimes returns the currently validated primes in increasing order.
func AllowedPrimes() []int {
	primes.mu.RLock()
	defer primes.mu.RUnlock()
	out := make([]int, 0, len(primes.primes))
	for p := range primes.primes {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// FiniteField is an integer modulo a validated prime p, i.e. an element of
// GF(p). Arithmetic between FiniteField values with differing p fails.
type FiniteField struct {
	n *big.Int
	p *big.Int
}

// NewFiniteField returns n mod p as an element of GF(p).
//
// Fails if p is not in the validated prime set (see ExtendPrimesUpTo).
func NewFiniteField(n int64, p int) (*FiniteField, error) {
	if !IsAllowedPrime(p) {
		return nil, errors.Errorf("NewFiniteField: %d is not a validated prime", p)
	}
	pb := big.NewInt(int64(p))
	nb := new(big.Int).Mod(big.NewInt(n), pb)
	return &FiniteField{n: nb, p: pb}, nil
}

// Prime returns the modulus p.
func (x *FiniteField) Prime() int { return int(x.p.Int64()) }

// Int returns the residue in [0, p).
func (x *FiniteField) Int() int64 { return x.n.Int64() }

func (x *FiniteField) samePrime(y *FiniteField) bool { return x.p.Cmp(y.p) == 0 }

// NewZero returns 0 in the same field as x.
func (x *FiniteField) NewZero() *FiniteField { return &FiniteField{n: big.NewInt(0), p: new(big.Int).Set(x.p)} }

// NewOne returns 1 in the same field as x.
func (x *FiniteField) NewOne() *FiniteField { return &FiniteField{n: big.NewInt(1), p: new(big.Int).Set(x.p)} }

// IsZero reports whether x is exactly zero.
func (x *FiniteField) IsZero() bool { return x.n.Sign() == 0 }

// Equal reports whether x and y have the same prime and residue.
func (x *FiniteField) Equal(y *FiniteField) bool {
	return x.samePrime(y) && x.n.Cmp(y.n) == 0
}

// Add returns x+y mod p.
func (x *FiniteField) Add(y *FiniteField) (*FiniteField, error) {
	if !x.samePrime(y) {
		return nil, errKindMismatch("FiniteField.Add")
	}
	n := new(big.Int).Mod(new(big.Int).Add(x.n, y.n), x.p)
	return &FiniteField{n: n, p: new(big.Int).Set(x.p)}, nil
}

// Sub returns x-y mod p.
func (x *FiniteField) Sub(y *FiniteField) (*FiniteField, error) {
	if !x.samePrime(y) {
		return nil, errKindMismatch("FiniteField.Sub")
	}
	n := new(big.Int).Mod(new(big.Int).Sub(x.n, y.n), x.p)
	return &FiniteField{n: n, p: new(big.Int).Set(x.p)}, nil
}

// Mul returns x*y mod p.
func (x *FiniteField) Mul(y *FiniteField) (*FiniteField, error) {
	if !x.samePrime(y) {
		return nil, errKindMismatch("FiniteField.Mul")
	}
	n := new(big.Int).Mod(new(big.Int).Mul(x.n, y.n), x.p)
	return &FiniteField{n: n, p: new(big.Int).Set(x.p)}, nil
}

// Div returns x/y mod p, using the modular inverse of y via the extended
// Euclidean algorithm.
func (x *FiniteField) Div(y *FiniteField) (*FiniteField, error) {
	if !x.samePrime(y) {
		return nil, errKindMismatch("FiniteField.Div")
	}
	yInv, err := y.Inv()
	if err != nil {
		return nil, err
	}
	return x.Mul(yInv)
}

// Inv returns the modular inverse of x.
func (x *FiniteField) Inv() (*FiniteField, error) {
	if x.n.Sign() == 0 {
		return nil, errDivByZero("FiniteField.Inv")
	}
	inv := new(big.Int).ModInverse(x.n, x.p)
	return &FiniteField{n: inv, p: new(big.Int).Set(x.p)}, nil
}

// Neg returns -x mod p.
func (x *FiniteField) Neg() *FiniteField {
	n := new(big.Int).Mod(new(big.Int).Neg(x.n), x.p)
	return &FiniteField{n: n, p: new(big.Int).Set(x.p)}
}

// Pow returns x^n mod p via square-and-multiply; negative n inverts first.
func (x *FiniteField) Pow(n int) (*FiniteField, error) {
	if n < 0 {
		inv, err := x.Inv()
		if err != nil {
			return nil, err
		}
		return powByRepeatedSquaring[*FiniteField](inv, -n)
	}
	return powByRepeatedSquaring[*FiniteField](x, n)
}

// Characteristic returns the modulus p.
func (x *FiniteField) Characteristic() int { return int(x.p.Int64()) }

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
}

// String returns the residue as a decimal string with the modulus
// rendered as a trailing Unicode subscript, e.g. "3₅" for 3 mod 5.
func (x *FiniteField) String() string {
	var b strings.Builder
	b.WriteString(x.n.String())
	for _, d := range x.p.String() {
		b.WriteRune(subscripts[d])
	}
	return b.String()
}

// AllElements enumerates every element of GF(p) in increasing order.
func AllElements(p int) ([]*FiniteField, error) {
	if !IsAllowedPrime(p) {
		return nil, errors.Errorf("AllElements: %d is not a validated prime", p)
	}
	out := make([]*FiniteField, p)
	for i := 0; i < p; i++ {
		out[i], _ = NewFiniteField(int64(i), p)
	}
	return out, nil
}

var _ Field[*FiniteField] = (*FiniteField)(nil)
