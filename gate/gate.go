// SPDX-License-Identifier: MIT

// Package gate defines the unitary operations placed in a circuit.
//
// A Gate of arity k carries a 2^k × 2^k unitary matrix and a display name.
// Every gate, built-in or custom, is validated at construction:
//
//   - the matrix is square,
//   - its dimension is an exact power of two (k = log2(dim) >= 1),
//   - it is unitary: round(M·M†, 12) == I.
//
// A gate is immutable. The only state it carries besides its matrix is the
// identity of the circuit it was added to, set exactly once by circuit.Add.
package gate

import (
	"fmt"
	"math/bits"

	"github.com/google/uuid"

	"github.com/katalvlaran/qcircuit/internal/ownership"
	"github.com/katalvlaran/qcircuit/matrix"
)

// Gate is a validated unitary operation over Len() qubit lines.
type Gate struct {
	kind  Kind
	name  string
	arity int
	m     *matrix.Dense
	owner uuid.UUID // uuid.Nil until attached
}

// New builds a custom gate from an arbitrary unitary matrix.
// The matrix is copied; later changes to m do not affect the gate.
func New(m *matrix.Dense, name string) (*Gate, error) {
	return build(KindCustom, name, m)
}

// build validates m and wraps it into a Gate of the given kind.
func build(kind Kind, name string, m *matrix.Dense) (*Gate, error) {
	if m == nil {
		return nil, fmt.Errorf("gate %q: %w", name, matrix.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("gate %q: %dx%d: %w", name, m.Rows(), m.Cols(), ErrNonSquare)
	}
	dim := m.Rows()
	if dim < 2 || dim&(dim-1) != 0 {
		return nil, fmt.Errorf("gate %q: dim %d: %w", name, dim, ErrNotPowerOfTwo)
	}
	if !matrix.IsUnitary(m) {
		return nil, fmt.Errorf("gate %q: %w", name, ErrNotUnitary)
	}
	if name == "" {
		name = kind.String()
	}

	return &Gate{
		kind:  kind,
		name:  name,
		arity: bits.TrailingZeros(uint(dim)),
		m:     m.Clone(),
	}, nil
}

// Kind reports which catalogue entry built the gate.
func (g *Gate) Kind() Kind { return g.kind }

// Name returns the display name.
func (g *Gate) Name() string { return g.name }

// Len returns the arity: the number of qubit lines the gate acts on.
func (g *Gate) Len() int { return g.arity }

// Dim returns the matrix dimension 2^Len().
func (g *Gate) Dim() int { return 1 << g.arity }

// Matrix returns a copy of the gate's unitary.
func (g *Gate) Matrix() *matrix.Dense { return g.m.Clone() }

func init() {
	ownership.Register(func(v any, owner uuid.UUID) error {
		g, ok := v.(*Gate)
		if !ok {
			return fmt.Errorf("claim %T: %w", v, ownership.ErrNotGate)
		}

		return g.attach(owner)
	})
}

// attach records owner as the gate's parent circuit. It succeeds once;
// later calls fail with ErrAlreadyAttached.
func (g *Gate) attach(owner uuid.UUID) error {
	if g.owner != uuid.Nil {
		return fmt.Errorf("gate %q owned by %s: %w", g.name, g.owner, ErrAlreadyAttached)
	}
	g.owner = owner

	return nil
}

// Owner returns the parent circuit's ID, or uuid.Nil for a standalone gate.
func (g *Gate) Owner() uuid.UUID { return g.owner }

// String returns "name/k".
func (g *Gate) String() string {
	return fmt.Sprintf("%s/%d", g.name, g.arity)
}
