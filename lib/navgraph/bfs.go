// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package navgraph

// VertexSet is a set of vertex IDs, used as the obstacle set for
// route queries.
type VertexSet map[VertexID]struct{}

// NewVertexSet builds a set containing the given IDs.
func NewVertexSet(ids ...VertexID) VertexSet {
	set := make(VertexSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set. Safe on a nil set.
func (s VertexSet) Contains(id VertexID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s VertexSet) Add(id VertexID) { s[id] = struct{}{} }

// Remove deletes id from the set.
func (s VertexSet) Remove(id VertexID) { delete(s, id) }

// FindPath returns the fewest-hops path from start to goal, treating
// every vertex in occupied as impassable. The result runs from start
// to goal inclusive; nil means no route exists.
//
// The search is an unweighted breadth-first search. Neighbors expand
// in adjacency order and the first discovery of a vertex wins, so
// results are deterministic for a given graph and occupancy. The
// start vertex is exempt from the occupancy test (the searcher is
// standing on it), and start == goal returns the single-vertex path
// immediately. An occupied goal is unreachable.
func (g *Graph) FindPath(start, goal VertexID, occupied VertexSet) []VertexID {
	if !g.Contains(start) || !g.Contains(goal) {
		return nil
	}
	if start == goal {
		return []VertexID{start}
	}
	if occupied.Contains(goal) {
		return nil
	}

	// parent records each vertex's discovery predecessor; start maps
	// to itself as the chain terminator.
	parent := map[VertexID]VertexID{start: start}
	frontier := []VertexID{start}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		for _, neighbor := range g.adjacency[current] {
			if _, seen := parent[neighbor]; seen {
				continue
			}
			if occupied.Contains(neighbor) {
				continue
			}
			parent[neighbor] = current
			if neighbor == goal {
				return reconstructPath(parent, start, goal)
			}
			frontier = append(frontier, neighbor)
		}
	}
	return nil
}

// reconstructPath walks the parent chain from goal back to start and
// reverses it.
func reconstructPath(parent map[VertexID]VertexID, start, goal VertexID) []VertexID {
	var reversed []VertexID
	for v := goal; ; v = parent[v] {
		reversed = append(reversed, v)
		if v == start {
			break
		}
	}
	path := make([]VertexID, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}
