// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an operation tag)
// and tests match them via errors.Is. No function panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows is returned by NewFromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: row lengths are not consistent")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows, or Untensor on an odd-length vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyTensor is returned by Tensor when called without operands.
	ErrEmptyTensor = errors.New("matrix: tensor of an empty list")

	// ErrBadPermutation is returned when a qubit ordering is not a permutation of 0..m-1.
	ErrBadPermutation = errors.New("matrix: invalid permutation")

	// ErrNotVector is returned when a column vector was required.
	ErrNotVector = errors.New("matrix: not a column vector")

	// ErrNotBasisState is returned by Untensor when the vector is not an exact
	// classical product basis state (e.g. a genuine superposition).
	ErrNotBasisState = errors.New("matrix: vector is not a classical basis state")

	// ErrBadBit is returned by Basis for values other than 0 and 1.
	ErrBadBit = errors.New("matrix: bit must be 0 or 1")
)
