package polyalgebra

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SaturationVariable is the reserved sentinel variable name used to
// introduce a fresh, highest-ranked variable for intersection, GCD/LCM and
// rational-implicitization saturation. It must never clash with user input.
const SaturationVariable = "_"

// AllowedVariables is the supported variable alphabet: Latin A-Z, a-z, and
// a documented set of Greek letters, plus the saturation sentinel.
var AllowedVariables = buildAllowedVariables()

func buildAllowedVariables() map[string]struct{} {
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
		"αβγδεζηθικλμνξοπρςστυφχψω"
	out := make(map[string]struct{})
	for _, r := range letters {
		out[string(r)] = struct{}{}
	}
	out[SaturationVariable] = struct{}{}
	return out
}

// IsAllowedVariable reports whether name is in the supported alphabet.
func IsAllowedVariable(name string) bool {
	_, ok := AllowedVariables[name]
	return ok
}

// Monomial is an immutable sparse mapping variable-name -> positive integer
// exponent. Variables with exponent zero are absent; the empty monomial is
// the constant 1. Identity depends only on the sorted sequence of
// (variable, exponent) pairs.
type Monomial struct {
	exp map[string]int
}

// NewMonomial returns the monomial with the given exponents, dropping any
// zero exponents.
func NewMonomial(exponents map[string]int) Monomial {
	m := make(map[string]int, len(exponents))
	for v, e := range exponents {
		if e != 0 {
			m[v] = e
		}
	}
	return Monomial{exp: m}
}

// ConstantMonomial returns the constant monomial 1.
func ConstantMonomial() Monomial { return Monomial{} }

// VariableMonomial returns the monomial consisting of var^1.
func VariableMonomial(variable string) Monomial {
	return NewMonomial(map[string]int{variable: 1})
}

// Exponent returns the exponent of variable in m (0 if absent).
func (m Monomial) Exponent(variable string) int { return m.exp[variable] }

// Variables returns the variables appearing in m, sorted alphabetically.
func (m Monomial) Variables() []string {
	out := make([]string, 0, len(m.exp))
	for v := range m.exp {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Degree returns the sum of the exponents.
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m.exp {
		d += e
	}
	return d
}

// MaxExponent returns the largest exponent appearing in m (0 for the
// constant monomial).
func (m Monomial) MaxExponent() int {
	max := 0
	for _, e := range m.exp {
		if e > max {
			max = e
		}
	}
	return max
}

// Equal reports whether m and other are the same monomial.
func (m Monomial) Equal(other Monomial) bool {
	if len(m.exp) != len(other.exp) {
		return false
	}
	for v, e := range m.exp {
		if other.exp[v] != e {
			return false
		}
	}
	return true
}

// key returns the canonical string used as a map key for polynomial term
// storage and as the hash surrogate for Monomial, since maps are not
// directly comparable in Go (Monomial wraps one).
func (m Monomial) key() string {
	vars := m.Variables()
	var b strings.Builder
	for i, v := range vars {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(m.exp[v]))
	}
	return b.String()
}

// Mul returns the product monomial: exponents add.
func (m Monomial) Mul(other Monomial) Monomial {
	out := make(map[string]int, len(m.exp)+len(other.exp))
	for v, e := range m.exp {
		out[v] = e
	}
	for v, e := range other.exp {
		out[v] += e
	}
	return NewMonomial(out)
}

// Div returns m / other. Fails if any resulting exponent would be negative.
func (m Monomial) Div(other Monomial) (Monomial, error) {
	out := make(map[string]int, len(m.exp))
	for v, e := range m.exp {
		out[v] = e
	}
	for v, e := range other.exp {
		out[v] -= e
	}
	for _, e := range out {
		if e < 0 {
			return Monomial{}, errors.Errorf("Monomial.Div: %s does not divide %s", other.String(), m.String())
		}
	}
	return NewMonomial(out), nil
}

// Divides reports whether m divides other, i.e. other/m succeeds.
func (m Monomial) Divides(other Monomial) bool {
	_, err := other.Div(m)
	return err == nil
}

// LCM returns the least common multiple (pointwise max of exponents).
func LCM(a, b Monomial) Monomial {
	out := make(map[string]int, len(a.exp)+len(b.exp))
	for v, e := range a.exp {
		out[v] = e
	}
	for v, e := range b.exp {
		if e > out[v] {
			out[v] = e
		}
	}
	return NewMonomial(out)
}

// GCD returns the greatest common divisor (pointwise min of exponents).
func GCD(a, b Monomial) Monomial {
	out := make(map[string]int)
	for v, e := range a.exp {
		if be, ok := b.exp[v]; ok {
			if m := min(e, be); m > 0 {
				out[v] = m
			}
		}
	}
	return NewMonomial(out)
}

// superscripts maps digits to Unicode superscripts, matching the original
// Monomial.__str__.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

// String renders m as e.g. "x²y³z⁴", or "1" for the constant monomial.
func (m Monomial) String() string {
	if len(m.exp) == 0 {
		return "1"
	}
	var b strings.Builder
	for _, v := range m.Variables() {
		b.WriteString(v)
		e := m.exp[v]
		if e != 1 {
			for _, d := range strconv.Itoa(e) {
				b.WriteRune(superscripts[d])
			}
		}
	}
	return b.String()
}
