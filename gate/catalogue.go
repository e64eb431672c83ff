// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"

	"github.com/katalvlaran/qcircuit/matrix"
)

// Kind tags the catalogue entry a gate was built from.
type Kind int

const (
	KindCustom Kind = iota
	KindH
	KindX
	KindY
	KindZ
	KindSqrtNot
	KindPhaseShift
	KindCNOT
	KindToffoli
	KindQFT
)

var kindNames = map[Kind]string{
	KindCustom:     "U",
	KindH:          "H",
	KindX:          "X",
	KindY:          "Y",
	KindZ:          "Z",
	KindSqrtNot:    "SNOT",
	KindPhaseShift: "R",
	KindCNOT:       "CNOT",
	KindToffoli:    "T",
	KindQFT:        "QFT",
}

// String returns the default display name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Spec describes a gate to build by kind. Width is the qubit count for
// width-parameterized kinds (H, X, Y, Z, SqrtNot, PhaseShift, QFT); CNOT and
// Toffoli take Width 0 or their fixed arity. Theta is the phase-shift angle.
// Matrix and Name are used by KindCustom; Name also overrides the display
// name of any other kind.
type Spec struct {
	Kind   Kind
	Width  int
	Theta  float64
	Matrix *matrix.Dense
	Name   string
}

// FromSpec builds the gate described by s.
func FromSpec(s Spec) (*Gate, error) {
	var (
		g   *Gate
		err error
	)
	switch s.Kind {
	case KindCustom:
		return New(s.Matrix, s.Name)
	case KindH:
		g, err = H(s.Width)
	case KindX:
		g, err = X(s.Width)
	case KindY:
		g, err = Y(s.Width)
	case KindZ:
		g, err = Z(s.Width)
	case KindSqrtNot:
		g, err = SqrtNot(s.Width)
	case KindPhaseShift:
		g, err = PhaseShift(s.Width, s.Theta)
	case KindCNOT:
		if err = fixedWidth(s.Width, 2); err == nil {
			g, err = CNOT()
		}
	case KindToffoli:
		if err = fixedWidth(s.Width, 3); err == nil {
			g, err = Toffoli()
		}
	case KindQFT:
		g, err = QFT(s.Width)
	default:
		return nil, fmt.Errorf("%v: %w", s.Kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, err
	}
	if s.Name != "" {
		g.name = s.Name
	}

	return g, nil
}

func fixedWidth(width, arity int) error {
	if width != 0 && width != arity {
		return fmt.Errorf("width %d, want %d: %w", width, arity, ErrBadWidth)
	}

	return nil
}

// widened self-tensors a 1-qubit generator width times.
func widened(kind Kind, one *matrix.Dense, width int) (*Gate, error) {
	if width < 1 {
		return nil, fmt.Errorf("%v width %d: %w", kind, width, ErrBadWidth)
	}
	m, err := matrix.TensorPower(one, width)
	if err != nil {
		return nil, err
	}

	return build(kind, kind.String(), m)
}

// H returns the Hadamard gate on width qubits (H^{⊗width}).
func H(width int) (*Gate, error) { return widened(KindH, matrix.Hadamard(), width) }

// X returns the Pauli-X (NOT) gate on width qubits.
func X(width int) (*Gate, error) { return widened(KindX, matrix.PauliX(), width) }

// Y returns the Pauli-Y gate on width qubits.
func Y(width int) (*Gate, error) { return widened(KindY, matrix.PauliY(), width) }

// Z returns the Pauli-Z gate on width qubits.
func Z(width int) (*Gate, error) { return widened(KindZ, matrix.PauliZ(), width) }

// SqrtNot returns the square-root-of-NOT gate on width qubits.
func SqrtNot(width int) (*Gate, error) { return widened(KindSqrtNot, matrix.SqrtNot(), width) }

// PhaseShift returns the phase-shift gate R(θ) on width qubits.
func PhaseShift(width int, theta float64) (*Gate, error) {
	return widened(KindPhaseShift, matrix.PhaseShift(theta), width)
}

// CNOT returns the 2-qubit controlled-NOT; port 0 is the control.
func CNOT() (*Gate, error) { return build(KindCNOT, KindCNOT.String(), matrix.CNOT()) }

// Toffoli returns the 3-qubit "T" gate: ports 0 and 1 control a flip of port 2.
func Toffoli() (*Gate, error) { return build(KindToffoli, KindToffoli.String(), matrix.Toffoli()) }

// QFT returns the quantum Fourier transform on k qubits.
func QFT(k int) (*Gate, error) {
	if k < 1 {
		return nil, fmt.Errorf("QFT width %d: %w", k, ErrBadWidth)
	}
	m, err := matrix.QFT(k)
	if err != nil {
		return nil, err
	}

	return build(KindQFT, KindQFT.String(), m)
}
