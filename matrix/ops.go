// SPDX-License-Identifier: MIT
// Package matrix provides the algebra kernels: product, Kronecker product,
// tensor folds, conjugate transpose, rounding and unitarity. All functions
// validate operands fail-fast and return fresh results; operands are never
// mutated.

package matrix

import (
	"fmt"
	"math"
)

// Places is the number of decimal places kept by IsUnitary and Untensor
// when comparing against exact 0/1 values.
const Places = 12

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opKron      = "Kron"
	opTensor    = "Tensor"
	opTensorPow = "TensorPower"
	opUntensor  = "Untensor"
	opPerm      = "Permutation"
	opTransp    = "Transposition"
	opConjT     = "ConjugateTranspose"
	opRound     = "Round"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the standard product C = A·B.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch unless a.Cols() == b.Rows().
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res := newDense(a.r, b.c)
	var i, j, k int
	var aik complex128
	// i→k→j keeps the inner loop on contiguous rows of b and res.
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// Kron computes the Kronecker product A ⊗ B of shape (r1·r2)×(c1·c2):
// block (i,j) of the result is a[i][j]·B.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
func Kron(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opKron, ErrNilMatrix)
	}

	rows, cols := a.r*b.r, a.c*b.c
	res := newDense(rows, cols)
	var i, j, k, l int
	var aij complex128
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			aij = a.data[i*a.c+j]
			if aij == 0 {
				continue
			}
			for k = 0; k < b.r; k++ {
				for l = 0; l < b.c; l++ {
					res.data[(i*b.r+k)*cols+j*b.c+l] = aij * b.data[k*b.c+l]
				}
			}
		}
	}

	return res, nil
}

// Tensor left-folds Kron across ms in the given order:
// Tensor(A, B, C) == Kron(Kron(A, B), C). A single operand is cloned.
//
// Errors:
//   - ErrEmptyTensor when called with no operands.
//   - ErrNilMatrix if any operand is nil.
func Tensor(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opTensor, ErrEmptyTensor)
	}
	if ms[0] == nil {
		return nil, matrixErrorf(opTensor, ErrNilMatrix)
	}

	acc := ms[0].Clone()
	var err error
	for idx := 1; idx < len(ms); idx++ {
		if acc, err = Kron(acc, ms[idx]); err != nil {
			return nil, matrixErrorf(opTensor, fmt.Errorf("operand %d: %w", idx, err))
		}
	}

	return acc, nil
}

// TensorPower returns m ⊗ m ⊗ ... ⊗ m (k copies). k must be >= 1.
func TensorPower(m *Dense, k int) (*Dense, error) {
	if k < 1 {
		return nil, matrixErrorf(opTensorPow, ErrBadShape)
	}
	ms := make([]*Dense, k)
	for i := range ms {
		ms[i] = m
	}
	res, err := Tensor(ms...)
	if err != nil {
		return nil, matrixErrorf(opTensorPow, err)
	}

	return res, nil
}

// ConjugateTranspose returns A†.
func ConjugateTranspose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opConjT, ErrNilMatrix)
	}
	res := newDense(a.c, a.r)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			v := a.data[i*a.c+j]
			res.data[j*a.r+i] = complex(real(v), -imag(v))
		}
	}

	return res, nil
}

// Round returns a copy of a with real and imaginary parts rounded to the
// given number of decimal places.
func Round(a *Dense, places int) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opRound, ErrNilMatrix)
	}
	scale := math.Pow(10, float64(places))
	res := a.Clone()
	for idx, v := range res.data {
		res.data[idx] = complex(roundTo(real(v), scale), roundTo(imag(v), scale))
	}

	return res, nil
}

func roundTo(x, scale float64) float64 {
	r := math.Round(x*scale) / scale
	if r == 0 {
		return 0 // collapse -0
	}

	return r
}

// Equal reports exact elementwise equality of shape and contents.
// Use Round first when comparing results of floating-point computation.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// IsUnitary reports whether round(A·A†, Places) == I.
// Non-square matrices are never unitary.
func IsUnitary(a *Dense) bool {
	if a == nil || !a.IsSquare() {
		return false
	}
	adj, err := ConjugateTranspose(a)
	if err != nil {
		return false
	}
	prod, err := Mul(a, adj)
	if err != nil {
		return false
	}
	rounded, err := Round(prod, Places)
	if err != nil {
		return false
	}

	return Equal(rounded, Identity(a.r))
}
