// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversals over small directed graphs
// whose vertices are integer handles.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of the vertices of a
//     directed acyclic graph using three-colour marking (White, Gray, Black)
//     and reverse post-order, returning ErrCycleDetected on a back-edge.
//   - FindCycle: reports one concrete cycle as a closed walk, used to
//     explain a failed sort.
//
// Both traversals keep their marks in maps local to the call; the Graph is
// only read through the Graph interface, so callers can keep their vertices
// immutable and re-run a sort after editing the graph.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph is nil
//   - ErrCycleDetected   cycle discovered while sorting
//   - context.Canceled   sort cancelled via WithCancelContext
package dfs
