// SPDX-License-Identifier: MIT

package gate

import "errors"

var (
	// ErrNonSquare is returned when a gate matrix is not square.
	ErrNonSquare = errors.New("gate: matrix is not square")

	// ErrNotPowerOfTwo is returned when the matrix dimension is not 2^k for k >= 1.
	ErrNotPowerOfTwo = errors.New("gate: dimension is not a power of two")

	// ErrNotUnitary is returned when round(M·M†, 12) != I.
	ErrNotUnitary = errors.New("gate: matrix is not unitary")

	// ErrBadWidth is returned for a qubit count a gate kind cannot take.
	ErrBadWidth = errors.New("gate: invalid qubit width")

	// ErrUnknownKind is returned by FromSpec for an unsupported Kind.
	ErrUnknownKind = errors.New("gate: unknown gate kind")

	// ErrAlreadyAttached is returned when a gate that already belongs to a
	// circuit is attached again.
	ErrAlreadyAttached = errors.New("gate: gate already has a parent circuit")
)
