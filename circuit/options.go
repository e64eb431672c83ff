// SPDX-License-Identifier: MIT

package circuit

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// Option configures a Circuit at construction.
type Option func(*Circuit)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand sets the random source used by the measurement draw.
// A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *Circuit) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed makes the measurement draw reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Circuit) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}
