// Package numtheory implements small-integer number-theoretic utilities:
// gcd, lcm, the extended Euclidean algorithm, divisor enumeration and a
// sieve of Eratosthenes, grounded on original_source/NumberTheory/
// modularArithmetic.py and arithmeticFunctions.py. The core package
// consumes SieveUpTo only as an opaque prime-producing predicate, as
// spec.md section 1 requires.
package numtheory

import (
	"sort"

	"github.com/pkg/errors"
)

func euclid(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// IntegerGCD returns the greatest common divisor of the given integers.
func IntegerGCD(args ...int64) (int64, error) {
	if len(args) == 0 {
		return 0, errors.Errorf("IntegerGCD: at least one argument must be provided")
	}
	result := args[0]
	for _, a := range args[1:] {
		result = euclid(result, a)
	}
	if result < 0 {
		result = -result
	}
	return result, nil
}

// IntegerLCM returns the least common multiple of the given integers.
func IntegerLCM(args ...int64) (int64, error) {
	if len(args) == 0 {
		return 0, errors.Errorf("IntegerLCM: at least one argument must be provided")
	}
	result := args[0]
	for _, a := range args[1:] {
		g := euclid(result, a)
		if g == 0 {
			result = 0
			continue
		}
		result = result / g * a
	}
	if result < 0 {
		result = -result
	}
	return result, nil
}

// ExtendedEuclid returns (d, u, v) such that d = gcd(a, b) and u*a + v*b = d.
func ExtendedEuclid(a, b int64) (d, u, v int64) {
	x, y, prevX, prevY := int64(0), int64(1), int64(1), int64(0)
	for b != 0 {
		q := a / b
		a, b = b, a%b
		x, prevX = prevX-q*x, x
		y, prevY = prevY-q*y, y
	}
	if a < 0 {
		return -a, -prevX, -prevY
	}
	return a, prevX, prevY
}

// Divisors returns the divisors of n in increasing order, computed in
// O(sqrt(n)) time.
func Divisors(n int64) ([]int64, error) {
	if n < 1 {
		return nil, errors.Errorf("Divisors: argument must be a positive integer")
	}
	var small, large []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i == 0 {
			small = append(small, i)
			if i != n/i {
				large = append(large, n/i)
			}
		}
	}
	for i, j := 0, len(large)-1; i < j; i, j = i+1, j-1 {
		large[i], large[j] = large[j], large[i]
	}
	return append(small, large...), nil
}

// SieveUpTo returns every prime <= n in increasing order via the sieve of
// Eratosthenes.
func SieveUpTo(n int) []int {
	if n < 2 {
		return nil
	}
	isComposite := make([]bool, n+1)
	var out []int
	for i := 2; i <= n; i++ {
		if isComposite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j <= n; j += i {
			isComposite[j] = true
		}
	}
	sort.Ints(out)
	return out
}
