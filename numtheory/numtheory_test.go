package numtheory

import (
	"fmt"
	"slices"
	"testing"
)

func TestIntegerGCDAndLCM(t *testing.T) {
	g, err := IntegerGCD(12, 18, 24)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if g != 6 {
		t.Errorf("gcd(12,18,24) = %d, want 6", g)
	}
	l, err := IntegerLCM(4, 6)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if l != 12 {
		t.Errorf("lcm(4,6) = %d, want 12", l)
	}
}

func TestExtendedEuclid(t *testing.T) {
	tests := []struct{ a, b int64 }{
		{35, 15}, {101, 7}, {0, 5}, {-6, 4},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, u, v := ExtendedEuclid(test.a, test.b)
			want, err := IntegerGCD(test.a, test.b)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if d != want {
				t.Errorf("gcd(%d,%d) = %d, want %d", test.a, test.b, d, want)
			}
			if u*test.a+v*test.b != d {
				t.Errorf("%d*%d + %d*%d != %d", u, test.a, v, test.b, d)
			}
		})
	}
}

func TestDivisors(t *testing.T) {
	got, err := Divisors(28)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	want := []int64{1, 2, 4, 7, 14, 28}
	if !slices.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestSieveUpTo(t *testing.T) {
	got := SieveUpTo(30)
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if !slices.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}
