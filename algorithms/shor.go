// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/katalvlaran/qcircuit/circuit"
	"github.com/katalvlaran/qcircuit/gate"
	"github.com/katalvlaran/qcircuit/matrix"
)

// Factor returns the prime factorisation of n in ascending order.
//
// Each composite is split by, in order: a factor of two, an integer root
// when n is a perfect power, or Shor's method. The latter picks a random
// base a; gcd(a, n) > 1 already splits n, otherwise the period r of a^x mod n
// is estimated from a measurement of the period-finding circuit
// (H^{⊗t}, U_a, QFT_t with t = bitlen(n)) and gcd(a^{r/2} ± 1, n) is tried.
func Factor(n int, opts ...Option) ([]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("Factor(%d): %w", n, ErrBadNumber)
	}
	o := buildOptions(opts)

	var primes []int
	pending := []int{n}
	for len(pending) > 0 {
		m := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if isPrime(m) {
			primes = append(primes, m)
			continue
		}
		d, err := split(m, o)
		if err != nil {
			return nil, fmt.Errorf("Factor(%d): %w", n, err)
		}
		pending = append(pending, d, m/d)
	}
	sort.Ints(primes)

	return primes, nil
}

// split returns a non-trivial divisor of the composite n.
func split(n int, o options) (int, error) {
	if n%2 == 0 {
		return 2, nil
	}
	if b, ok := perfectPower(n); ok {
		return b, nil
	}

	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		a := 2 + o.rng.IntN(n-3)
		if g := gcd(a, n); g > 1 {
			o.logger.Debug("lucky base", "n", n, "a", a, "gcd", g)
			return g, nil
		}

		r, err := findPeriod(a, n, o)
		if err != nil {
			return 0, err
		}
		if r == 0 || r%2 == 1 || powMod(a, r, n) != 1 {
			o.logger.Debug("unusable period", "n", n, "a", a, "r", r)
			continue
		}
		h := powMod(a, r/2, n)
		if h == n-1 {
			continue
		}
		for _, d := range []int{gcd(h+1, n), gcd(h-1, n)} {
			if d > 1 && d < n {
				o.logger.Debug("split", "n", n, "a", a, "r", r, "d", d)
				return d, nil
			}
		}
	}

	return 0, fmt.Errorf("%d after %d bases: %w", n, o.maxAttempts, ErrNoFactor)
}

// BuildPeriodFinder returns the period-finding circuit for a^x mod n over
// t = bitlen(n) counting qubits (lines 0..t-1) and t work qubits.
func BuildPeriodFinder(a, n int, opts ...Option) (*circuit.Circuit, error) {
	return buildPeriodFinder(a, n, buildOptions(opts))
}

func buildPeriodFinder(a, n int, o options) (*circuit.Circuit, error) {
	if n < 2 || a < 1 || a >= n {
		return nil, fmt.Errorf("period finder a=%d n=%d: %w", a, n, ErrBadArgument)
	}
	t := bits.Len(uint(n))
	q := 2 * t
	if q > o.maxQubits {
		return nil, fmt.Errorf("%d needs %d qubits, limit %d: %w", n, q, o.maxQubits, ErrTooLarge)
	}

	u, err := modExpGate(a, n, t)
	if err != nil {
		return nil, err
	}
	c, err := circuit.New(q, o.circuitOptions()...)
	if err != nil {
		return nil, err
	}
	h, err := c.AddGate(gate.Spec{Kind: gate.KindH, Width: t})
	if err != nil {
		return nil, err
	}
	uid, err := c.Add(u)
	if err != nil {
		return nil, err
	}
	f, err := c.AddGate(gate.Spec{Kind: gate.KindQFT, Width: t})
	if err != nil {
		return nil, err
	}

	count, work := lines(0, t), lines(t, q)
	for _, w := range []struct {
		from      circuit.NodeID
		fromPorts []int
		to        circuit.NodeID
		toPorts   []int
	}{
		{circuit.Boundary, count, h, nil},
		{h, nil, uid, count},
		{circuit.Boundary, work, uid, work},
		{uid, count, f, nil},
		{f, nil, circuit.Boundary, count},
		{uid, work, circuit.Boundary, work},
	} {
		if _, err = c.AddWires(w.from, w.fromPorts, w.to, w.toPorts); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// findPeriod measures the counting register until it is non-zero and turns
// the reading into a period candidate. It returns 0 when every measurement
// read zero.
func findPeriod(a, n int, o options) (int, error) {
	c, err := buildPeriodFinder(a, n, o)
	if err != nil {
		return 0, err
	}
	t := c.Size() / 2
	in := make([]int, c.Size())

	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		out, _, err := measure(c, in, o)
		if err != nil {
			return 0, err
		}
		if y := value(out[:t]); y != 0 {
			return denominator(y, 1<<t, n), nil
		}
	}

	return 0, nil
}

// modExpGate builds U|x,y⟩ = |x, y ⊕ (a^x mod n)⟩ on t+t qubits.
func modExpGate(a, n, t int) (*gate.Gate, error) {
	dim := 1 << (2 * t)
	m, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, err
	}
	mask := 1<<t - 1
	for col := 0; col < dim; col++ {
		x, y := col>>t, col&mask
		row := x<<t | (y ^ powMod(a, x, n))
		if err = m.Set(row, col, 1); err != nil {
			return nil, err
		}
	}

	return gate.New(m, "U")
}

// denominator returns the denominator of the last continued-fraction
// convergent of y/q whose denominator stays below limit.
func denominator(y, q, limit int) int {
	kPrev, k := 0, 1
	best := 1
	num, den := q, y // expand y/q: the first term is 0, k starts at 1
	for den != 0 {
		a := num / den
		num, den = den, num-a*den
		kPrev, k = k, a*k+kPrev
		if k >= limit {
			break
		}
		best = k
	}

	return best
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// powMod returns b^e mod m.
func powMod(b, e, m int) int {
	result := 1 % m
	b %= m
	for e > 0 {
		if e&1 == 1 {
			result = result * b % m
		}
		b = b * b % m
		e >>= 1
	}

	return result
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// perfectPower returns b > 1 with b^k = n for some k >= 2.
func perfectPower(n int) (int, bool) {
	for k := 2; 1<<k <= n; k++ {
		b := int(math.Round(math.Pow(float64(n), 1/float64(k))))
		for _, c := range []int{b - 1, b, b + 1} {
			if c > 1 && intPow(c, k) == n {
				return c, true
			}
		}
	}

	return 0, false
}

func intPow(b, k int) int {
	r := 1
	for ; k > 0; k-- {
		r *= b
	}

	return r
}
