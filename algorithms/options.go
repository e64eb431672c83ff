// SPDX-License-Identifier: MIT

package algorithms

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/qcircuit/circuit"
)

// Option configures Grover and Factor.
type Option func(*options)

type options struct {
	rng         *rand.Rand
	logger      *log.Logger
	maxAttempts int // Factor: random bases tried per split
	maxQubits   int // Factor: largest period-finding circuit
	iterations  int // Grover: 0 means ⌊π/4·√2^n⌋
	maxCost     float64 // largest Costs() estimate a measurement may start
}

func defaultOptions() options {
	return options{
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:      log.Default().WithPrefix("algorithms"),
		maxAttempts: 20,
		maxQubits:   10,
		maxCost:     1 << 26,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// circuitOptions passes the random source and logger down to the circuits.
func (o options) circuitOptions() []circuit.Option {
	return []circuit.Option{circuit.WithRand(o.rng), circuit.WithLogger(o.logger)}
}

// WithRand sets the random source for base selection and measurement.
// A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed makes runs reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithLogger sets the logger for the algorithms and their circuits.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxAttempts bounds the random bases Factor tries per split and the
// measurements per base. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithMaxQubits bounds the size of the period-finding circuit.
// Values below 1 are ignored.
func WithMaxQubits(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxQubits = n
		}
	}
}

// WithIterations overrides the number of Grover iterations.
// Values below 1 are ignored.
func WithIterations(k int) Option {
	return func(o *options) {
		if k > 0 {
			o.iterations = k
		}
	}
}

// WithMaxCost bounds the cost estimate (circuit.Costs) of any strategy a
// measurement may start, including the sum-over-histories retry.
// The default is 2^26. Values not above 0 are ignored.
func WithMaxCost(limit float64) Option {
	return func(o *options) {
		if limit > 0 {
			o.maxCost = limit
		}
	}
}
