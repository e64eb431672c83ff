// SPDX-License-Identifier: MIT

// Package ownership carries the gate-to-circuit claim between package gate,
// which stores the owner, and package circuit, which is the only caller
// allowed to set it.
package ownership

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNoClaimer is returned by Claim before a claimer is registered.
	ErrNoClaimer = errors.New("ownership: no claimer registered")

	// ErrNotGate is returned when Claim is given something other than a gate.
	ErrNotGate = errors.New("ownership: value is not a gate")
)

var claim func(v any, owner uuid.UUID) error

// Register installs the claim function. Package gate calls it from init.
func Register(f func(v any, owner uuid.UUID) error) { claim = f }

// Claim records owner on v, which must be a *gate.Gate.
func Claim(v any, owner uuid.UUID) error {
	if claim == nil {
		return ErrNoClaimer
	}

	return claim(v, owner)
}
