// SPDX-License-Identifier: MIT

package algorithms

import "errors"

var (
	// ErrBadArgument is returned for a qubit count or marked value out of range.
	ErrBadArgument = errors.New("algorithms: argument out of range")

	// ErrBadNumber is returned by Factor for numbers below 2.
	ErrBadNumber = errors.New("algorithms: number must be at least 2")

	// ErrTooLarge is returned when period finding would need more qubits
	// than allowed by WithMaxQubits, or when a measurement would cost more
	// than WithMaxCost allows.
	ErrTooLarge = errors.New("algorithms: number too large to simulate")

	// ErrNoFactor is returned when no split was found within the attempt budget.
	ErrNoFactor = errors.New("algorithms: no factor found")
)
