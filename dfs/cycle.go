// SPDX-License-Identifier: MIT

package dfs

// FindCycle returns one directed cycle of g as a closed walk [v0, v1, ..., v0],
// or nil when g is acyclic. Roots are tried in g.Vertices() order and the
// first back-edge met wins, so the answer is deterministic for a stable g.
// Self-loops are reported as [v, v].
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	state := make(map[int]int, len(verts))
	path := make([]int, 0, len(verts)) // current DFS stack

	var walk func(id int) []int
	walk = func(id int) []int {
		state[id] = Gray
		path = append(path, id)
		for _, next := range g.Successors(id) {
			switch state[next] {
			case White:
				if c := walk(next); c != nil {
					return c
				}
			case Gray:
				return closeCycle(path, next)
			}
		}
		path = path[:len(path)-1]
		state[id] = Black

		return nil
	}

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		if c := walk(v); c != nil {
			return c, nil
		}
	}

	return nil, nil
}

// closeCycle copies the stack segment starting at start and appends start.
func closeCycle(path []int, start int) []int {
	idx := len(path) - 1
	for idx >= 0 && path[idx] != start {
		idx--
	}
	seq := append([]int(nil), path[idx:]...)

	return append(seq, start)
}
