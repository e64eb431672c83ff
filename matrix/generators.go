// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Identity returns the n×n identity matrix. It returns nil for n < 1.
func Identity(n int) *Dense {
	if n < 1 {
		return nil
	}
	m := newDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Zero returns a rows×cols zero matrix.
func Zero(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Column builds a column vector from values.
func Column(values ...complex128) (*Dense, error) {
	if len(values) == 0 {
		return nil, ErrBadShape
	}
	m := newDense(len(values), 1)
	copy(m.data, values)

	return m, nil
}

// Basis embeds a classical bit as the standard basis vector
// |0⟩ = (1,0)ᵀ or |1⟩ = (0,1)ᵀ.
func Basis(bit int) (*Dense, error) {
	switch bit {
	case 0:
		return Column(1, 0)
	case 1:
		return Column(0, 1)
	default:
		return nil, fmt.Errorf("Basis(%d): %w", bit, ErrBadBit)
	}
}

// BasisState returns the 2^n column vector for the classical bit-string
// bits, i.e. Tensor(Basis(bits[0]), ..., Basis(bits[n-1])).
func BasisState(bits []int) (*Dense, error) {
	if len(bits) == 0 {
		return nil, ErrBadShape
	}
	vs := make([]*Dense, len(bits))
	var err error
	for i, b := range bits {
		if vs[i], err = Basis(b); err != nil {
			return nil, err
		}
	}

	return Tensor(vs...)
}

// PauliX returns the bit-flip matrix [[0,1],[1,0]].
func PauliX() *Dense {
	return mustFromRows([][]complex128{{0, 1}, {1, 0}})
}

// PauliY returns [[0,-i],[i,0]].
func PauliY() *Dense {
	return mustFromRows([][]complex128{{0, -1i}, {1i, 0}})
}

// PauliZ returns the phase-flip matrix [[1,0],[0,-1]].
func PauliZ() *Dense {
	return mustFromRows([][]complex128{{1, 0}, {0, -1}})
}

// Hadamard returns the 1-qubit Hadamard matrix 2^(-1/2)·[[1,1],[1,-1]].
func Hadamard() *Dense {
	h := complex(1/math.Sqrt2, 0)

	return mustFromRows([][]complex128{{h, h}, {h, -h}})
}

// SqrtNot returns the square root of NOT: ½·[[1+i,1-i],[1-i,1+i]].
func SqrtNot() *Dense {
	p, q := complex(0.5, 0.5), complex(0.5, -0.5)

	return mustFromRows([][]complex128{{p, q}, {q, p}})
}

// PhaseShift returns [[1,0],[0,e^{iθ}]].
func PhaseShift(theta float64) *Dense {
	return mustFromRows([][]complex128{{1, 0}, {0, cmplx.Exp(complex(0, theta))}})
}

// CNOT returns the 2-qubit controlled-NOT; qubit 0 is the control.
func CNOT() *Dense {
	return mustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
}

// Toffoli returns the 3-qubit "T" gate: the 8×8 identity with its last two
// rows swapped, so the third qubit flips when the first two are both 1.
func Toffoli() *Dense {
	m := Identity(8)
	m.data[6*8+6], m.data[6*8+7] = 0, 1
	m.data[7*8+6], m.data[7*8+7] = 1, 0

	return m
}

// QFT returns the normalized discrete quantum Fourier transform on k qubits:
// the n×n matrix (n = 2^k) with entries n^(-1/2)·exp(2πi·j·l/n).
func QFT(k int) (*Dense, error) {
	if k < 1 {
		return nil, fmt.Errorf("QFT(%d): %w", k, ErrBadShape)
	}
	n := 1 << k
	norm := complex(1/math.Sqrt(float64(n)), 0)
	m := newDense(n, n)
	var j, l int
	for j = 0; j < n; j++ {
		for l = 0; l < n; l++ {
			// reduce j*l mod n first so the angle stays small and exact
			angle := 2 * math.Pi * float64((j*l)%n) / float64(n)
			m.data[j*n+l] = norm * cmplx.Exp(complex(0, angle))
		}
	}

	return m, nil
}
