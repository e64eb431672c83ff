// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qcircuit/matrix"
)

// stateVector runs evolve and decodes the final state into definite bits,
// so a superposed final state fails with ErrNotBasisState.
func (c *Circuit) stateVector(in []int) ([]float64, error) {
	state, err := c.evolve(in)
	if err != nil {
		return nil, err
	}

	bits, err := matrix.DecodeBits(state)
	if errors.Is(err, matrix.ErrNotBasisState) {
		return nil, fmt.Errorf("%w: %w", ErrNotBasisState, err)
	}
	if err != nil {
		return nil, err
	}
	weights := make([]float64, 1<<c.size)
	weights[indexOf(bits)] = 1

	return weights, nil
}

// evolve pushes the tensor-product input state through the sorted gates.
// Position i of the state always holds line i: before a gate, the lines on
// its ports are swapped into the leading positions, the gate is applied as
// M⊗I, and the swaps are undone. The final permutation moves each line to
// the boundary output it reaches.
func (c *Circuit) evolve(in []int) (*matrix.Dense, error) {
	state, err := matrix.BasisState(in)
	if err != nil {
		return nil, err
	}

	for _, id := range c.order {
		if state, err = c.applyGate(state, id); err != nil {
			return nil, err
		}
	}

	perm, err := c.StartQubits()
	if err != nil {
		return nil, err
	}
	p, err := matrix.Permutation(perm)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(p, state)
}

// applyGate applies one gate to the state, routing its lines through the
// leading positions.
func (c *Circuit) applyGate(state *matrix.Dense, id NodeID) (*matrix.Dense, error) {
	n := c.size
	g := c.nodes[id].g
	k := g.Len()

	at := make([]int, n)  // at[position] = line
	pos := make([]int, n) // pos[line] = position
	for i := range at {
		at[i], pos[i] = i, i
	}

	var (
		swaps []*matrix.Dense
		err   error
	)
	for t := 0; t < k; t++ {
		line, err := c.StartQubit(id, t)
		if err != nil {
			return nil, err
		}
		if at[t] == line {
			continue
		}
		j := pos[line]
		s, err := matrix.Transposition(t, j, n)
		if err != nil {
			return nil, err
		}
		swaps = append(swaps, s)
		other := at[t]
		at[t], at[j] = line, other
		pos[line], pos[other] = t, j
	}

	op := g.Matrix()
	if k < n {
		if op, err = matrix.Kron(op, matrix.Identity(1<<(n-k))); err != nil {
			return nil, err
		}
	}

	for _, s := range swaps {
		if state, err = matrix.Mul(s, state); err != nil {
			return nil, err
		}
	}
	if state, err = matrix.Mul(op, state); err != nil {
		return nil, err
	}
	for i := len(swaps) - 1; i >= 0; i-- {
		if state, err = matrix.Mul(swaps[i], state); err != nil {
			return nil, err
		}
	}

	return state, nil
}
