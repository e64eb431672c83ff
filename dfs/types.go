// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Visitation states used by the traversals.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil Graph is passed to TopologicalSort
	// or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a back-edge was met during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Graph is the read-only view of a directed graph the traversals need.
// Vertices are identified by integer handles; Successors(v) lists the heads
// of the edges leaving v. Duplicated successors are allowed and harmless.
//
// Vertices fixes the order in which DFS roots are tried, so an
// implementation returning a stable order gets a deterministic result.
type Graph interface {
	Vertices() []int
	Successors(v int) []int
}

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
