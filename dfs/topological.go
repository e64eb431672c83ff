// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Graph       // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state map[int]int // visitation state: 0=White,1=Gray,2=Black
	order []int       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g:
// for every edge u→v, u appears before v.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns an error wrapping ErrCycleDetected that
// names the vertex where the back-edge closed.
// You may pass WithCancelContext(ctx) to enable cancellation.
//
// The visitation marks live in a map local to the call, so g is never
// written to and the sort can be repeated after g changes.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[int]int, len(verts)), // all vertices start as White (0)
		order: make([]int, 0, len(verts)),    // capacity hint for post-order
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Gray means a back-edge
	if t.state[id] == Gray {
		return fmt.Errorf("%w: at vertex %d", ErrCycleDetected, id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	// 3. Explore each outgoing edge
	for _, next := range t.graph.Successors(id) {
		if err := t.visit(next); err != nil {
			return err
		}
	}

	// 4. Finished: record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
