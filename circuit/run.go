// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"
)

// Method selects the execution strategy of Run.
type Method int

const (
	// MethodAuto picks the cheaper strategy by cost estimate; ties go to
	// MethodSumOverHistories.
	MethodAuto Method = iota
	// MethodSumOverHistories enumerates every output and every assignment of
	// the internal wires and sums the products of gate matrix entries.
	// Cost O(gates·2^(n+internal)).
	MethodSumOverHistories
	// MethodStateVector evolves the 2^n state vector gate by gate.
	// Cost O(gates·2^(2n)). The final state must be a classical basis state.
	MethodStateVector
)

// String returns a short method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodSumOverHistories:
		return "sum-over-histories"
	case MethodStateVector:
		return "state-vector"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ValidateInput checks that in has one 0/1 entry per qubit line.
func (c *Circuit) ValidateInput(in []int) error {
	if len(in) != c.size {
		return fmt.Errorf("%d bits for %d qubits: %w", len(in), c.size, ErrInputLength)
	}
	for i, b := range in {
		if b != 0 && b != 1 {
			return fmt.Errorf("bit %d = %d: %w", i, b, ErrInputNotBinary)
		}
	}

	return nil
}

// Costs returns the work estimates of both strategies:
// gates·2^(n+internal) and gates·2^(2n).
func (c *Circuit) Costs() (sumOverHistories, stateVector float64) {
	g := float64(len(c.nodes))
	internal := len(c.InternalWires())

	return math.Ldexp(g, c.size+internal), math.Ldexp(g, 2*c.size)
}

// Choose resolves MethodAuto into a concrete strategy.
func (c *Circuit) Choose(m Method) (Method, error) {
	switch m {
	case MethodSumOverHistories, MethodStateVector:
		return m, nil
	case MethodAuto:
		s1, s2 := c.Costs()
		if s2 < s1 {
			return MethodStateVector, nil
		}

		return MethodSumOverHistories, nil
	default:
		return m, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}
}

// prepare validates the input, resolves the method and sorts if needed.
func (c *Circuit) prepare(in []int, m Method) (Method, error) {
	if err := c.ValidateInput(in); err != nil {
		return m, err
	}
	m, err := c.Choose(m)
	if err != nil {
		return m, err
	}
	if !c.sorted {
		if err = c.Sort(); err != nil {
			return m, err
		}
	}

	return m, nil
}

// Distribution computes the outcome weights for input in. weights[o] is the
// probability of the big-endian output bit-string o (qubit 0 is the most
// significant bit). The strategy actually used is returned alongside.
func (c *Circuit) Distribution(in []int, m Method) ([]float64, Method, error) {
	m, err := c.prepare(in, m)
	if err != nil {
		return nil, m, fmt.Errorf("Distribution: %w", err)
	}

	var weights []float64
	switch m {
	case MethodSumOverHistories:
		weights = c.sumOverHistories(in)
	case MethodStateVector:
		weights, err = c.stateVector(in)
	}
	if err != nil {
		return nil, m, fmt.Errorf("Distribution: %w", err)
	}

	return weights, m, nil
}

// Run executes the circuit on the classical input in and returns one
// measured output bit-vector drawn from the outcome distribution.
// Check and Sort are applied first when the circuit changed since the last
// sort.
func (c *Circuit) Run(in []int, m Method) ([]int, error) {
	s1, s2 := c.Costs()
	c.logger.Debug("run", "input", in, "method", m, "costSOH", s1, "costSV", s2)

	weights, used, err := c.Distribution(in, m)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	o := c.sample(weights)
	out := bitsOf(o, c.size)
	c.logger.Debug("measured", "method", used, "outcome", out, "p", weights[o])

	return out, nil
}

// sample draws one index with probability proportional to its weight.
func (c *Circuit) sample(weights []float64) int {
	var total float64
	last := 0
	for i, w := range weights {
		total += w
		if w > 0 {
			last = i
		}
	}
	r := c.rng.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}

	return last
}

// bitsOf expands index into n big-endian bits.
func bitsOf(index, n int) []int {
	bits := make([]int, n)
	for i := range bits {
		bits[i] = (index >> (n - 1 - i)) & 1
	}

	return bits
}

// indexOf packs big-endian bits into an integer.
func indexOf(bits []int) int {
	idx := 0
	for _, b := range bits {
		idx = idx<<1 | b
	}

	return idx
}
