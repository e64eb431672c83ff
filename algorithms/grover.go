// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qcircuit/circuit"
	"github.com/katalvlaran/qcircuit/gate"
	"github.com/katalvlaran/qcircuit/matrix"
)

// GroverResult is the outcome of one Grover search.
type GroverResult struct {
	Value      int            // measured value
	Bits       []int          // measured bits, qubit 0 first
	Iterations int            // oracle+diffusion rounds applied
	Method     circuit.Method // strategy that produced the measurement
}

// GroverIterations returns ⌊π/4·√2^n⌋, at least 1.
func GroverIterations(n int) int {
	k := int(math.Pi / 4 * math.Sqrt(math.Ldexp(1, n)))
	if k < 1 {
		k = 1
	}

	return k
}

// BuildGrover returns the search circuit over n qubits for the single
// marked value: H^{⊗n} followed by one gate G^k that applies k Grover
// rounds G = D·O, where O = I - 2|marked⟩⟨marked| and
// D = H^{⊗n}(2|0⟩⟨0| - I)H^{⊗n}. The circuit has n internal wires
// whatever k is.
func BuildGrover(n, marked int, opts ...Option) (*circuit.Circuit, int, error) {
	return buildGrover(n, marked, buildOptions(opts))
}

func buildGrover(n, marked int, o options) (*circuit.Circuit, int, error) {
	if n < 1 || marked < 0 || marked >= 1<<n {
		return nil, 0, fmt.Errorf("Grover(n=%d, marked=%d): %w", n, marked, ErrBadArgument)
	}
	k := o.iterations
	if k == 0 {
		k = GroverIterations(n)
	}

	round, err := groverMatrix(n, marked)
	if err != nil {
		return nil, 0, err
	}
	rounds := round
	for i := 1; i < k; i++ {
		if rounds, err = matrix.Mul(round, rounds); err != nil {
			return nil, 0, err
		}
	}
	g, err := gate.New(rounds, fmt.Sprintf("G^%d", k))
	if err != nil {
		return nil, 0, err
	}

	c, err := circuit.New(n, o.circuitOptions()...)
	if err != nil {
		return nil, 0, err
	}
	h, err := c.AddGate(gate.Spec{Kind: gate.KindH, Width: n})
	if err != nil {
		return nil, 0, err
	}
	id, err := c.Add(g)
	if err != nil {
		return nil, 0, err
	}
	for _, w := range []struct{ from, to circuit.NodeID }{
		{circuit.Boundary, h},
		{h, id},
		{id, circuit.Boundary},
	} {
		if _, err = c.AddWires(w.from, nil, w.to, nil); err != nil {
			return nil, 0, err
		}
	}

	return c, k, nil
}

// Grover searches 2^n values for marked and returns one measurement.
// With the default iteration count the marked value is measured with
// probability close to 1.
func Grover(n, marked int, opts ...Option) (GroverResult, error) {
	o := buildOptions(opts)
	c, k, err := buildGrover(n, marked, o)
	if err != nil {
		return GroverResult{}, err
	}

	bits, m, err := measure(c, make([]int, n), o)
	if err != nil {
		return GroverResult{}, fmt.Errorf("Grover: %w", err)
	}
	res := GroverResult{Value: value(bits), Bits: bits, Iterations: k, Method: m}
	o.logger.Debug("grover", "n", n, "marked", marked, "found", res.Value, "iterations", k, "method", m)

	return res, nil
}

// groverMatrix returns D·O for one marked value.
func groverMatrix(n, marked int) (*matrix.Dense, error) {
	dim := 1 << n
	oracle := matrix.Identity(dim)
	if err := oracle.Set(marked, marked, -1); err != nil {
		return nil, err
	}

	mirror := matrix.Identity(dim)
	for i := 1; i < dim; i++ {
		if err := mirror.Set(i, i, -1); err != nil {
			return nil, err
		}
	}
	h, err := matrix.TensorPower(matrix.Hadamard(), n)
	if err != nil {
		return nil, err
	}
	diffusion, err := matrix.Mul(h, mirror)
	if err != nil {
		return nil, err
	}
	if diffusion, err = matrix.Mul(diffusion, h); err != nil {
		return nil, err
	}

	return matrix.Mul(diffusion, oracle)
}
