// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/katalvlaran/qcircuit/circuit"
	"github.com/katalvlaran/qcircuit/gate"
)

// NewPaperCircuit builds the 7-gate, 6-qubit reversible example.
// For input (b0, b1, 0, 0, 0, 0) it outputs
// (b0, b1, ¬b0, ¬b1, ¬b0∧¬b1, b0∨b1).
//
// Lines 0 and 1 are copied onto lines 2 and 3 by two CNOTs and negated,
// T writes ¬b0∧¬b1 onto line 4, and a third CNOT with a final X copies and
// negates that onto line 5.
func NewPaperCircuit(opts ...circuit.Option) (*circuit.Circuit, error) {
	c, err := circuit.New(6, opts...)
	if err != nil {
		return nil, err
	}

	b := &builder{c: c}
	cn1 := b.gate(gate.Spec{Kind: gate.KindCNOT})
	cn2 := b.gate(gate.Spec{Kind: gate.KindCNOT})
	x1 := b.gate(gate.Spec{Kind: gate.KindX, Width: 1})
	x2 := b.gate(gate.Spec{Kind: gate.KindX, Width: 1})
	t := b.gate(gate.Spec{Kind: gate.KindToffoli})
	cn3 := b.gate(gate.Spec{Kind: gate.KindCNOT})
	x3 := b.gate(gate.Spec{Kind: gate.KindX, Width: 1})

	b.wires(circuit.Boundary, []int{0, 2}, cn1, nil)
	b.wires(cn1, []int{0}, circuit.Boundary, []int{0})
	b.wires(cn1, []int{1}, x1, nil)
	b.wires(circuit.Boundary, []int{1, 3}, cn2, nil)
	b.wires(cn2, []int{0}, circuit.Boundary, []int{1})
	b.wires(cn2, []int{1}, x2, nil)
	b.wires(x1, nil, t, []int{0})
	b.wires(x2, nil, t, []int{1})
	b.wires(circuit.Boundary, []int{4}, t, []int{2})
	b.wires(t, []int{0, 1}, circuit.Boundary, []int{2, 3})
	b.wires(t, []int{2}, cn3, []int{0})
	b.wires(circuit.Boundary, []int{5}, cn3, []int{1})
	b.wires(cn3, []int{0}, circuit.Boundary, []int{4})
	b.wires(cn3, []int{1}, x3, nil)
	b.wires(x3, nil, circuit.Boundary, []int{5})
	if b.err != nil {
		return nil, b.err
	}

	return c, nil
}

// builder records the first construction error and skips the rest.
type builder struct {
	c   *circuit.Circuit
	err error
}

func (b *builder) gate(spec gate.Spec) circuit.NodeID {
	if b.err != nil {
		return circuit.Boundary
	}
	id, err := b.c.AddGate(spec)
	b.err = err

	return id
}

func (b *builder) wires(from circuit.NodeID, fromPorts []int, to circuit.NodeID, toPorts []int) {
	if b.err != nil {
		return
	}
	_, b.err = b.c.AddWires(from, fromPorts, to, toPorts)
}
