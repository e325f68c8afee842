// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package reservation provides mutual exclusion over vertices and
// lanes. The ledger knows nothing about the graph or the fleet:
// resources and holders are plain integers, and the fleet layer is
// responsible for requesting and releasing in the right order.
package reservation

import (
	"fmt"
	"sort"
)

// LaneKey identifies an undirected lane by its endpoints in canonical
// order (A <= B). Both directions of travel contend for the same key.
type LaneKey struct {
	A, B int
}

// NewLaneKey returns the canonical key for the lane between a and b,
// regardless of argument order.
func NewLaneKey(a, b int) LaneKey {
	if a > b {
		a, b = b, a
	}
	return LaneKey{A: a, B: b}
}

// String renders the key as "a-b" for logs and status output.
func (k LaneKey) String() string {
	return fmt.Sprintf("%d-%d", k.A, k.B)
}

// Ledger tracks exclusive holds on vertices and lanes. Each resource
// has at most one holder. Requests are idempotent for the current
// holder, and releases by anyone else are silent no-ops, so a stale
// or duplicated release never disturbs the actual holder.
//
// The ledger never initiates anything. It answers requests in the
// order the fleet manager makes them; callers serialize access.
type Ledger struct {
	vertices map[int]int
	lanes    map[LaneKey]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		vertices: make(map[int]int),
		lanes:    make(map[LaneKey]int),
	}
}

// RequestVertex grants the vertex to holder when it is free or
// already held by the same holder. Returns false when another holder
// has it.
func (l *Ledger) RequestVertex(vertex, holder int) bool {
	if current, held := l.vertices[vertex]; held && current != holder {
		return false
	}
	l.vertices[vertex] = holder
	return true
}

// ReleaseVertex removes the hold on vertex if holder currently holds
// it. Releasing a free vertex, or one held by someone else, does
// nothing.
func (l *Ledger) ReleaseVertex(vertex, holder int) {
	if current, held := l.vertices[vertex]; held && current == holder {
		delete(l.vertices, vertex)
	}
}

// RequestLane grants the lane between a and b to holder when it is
// free or already held by the same holder. Returns false when another
// holder has it. Direction of travel is irrelevant.
func (l *Ledger) RequestLane(a, b, holder int) bool {
	key := NewLaneKey(a, b)
	if current, held := l.lanes[key]; held && current != holder {
		return false
	}
	l.lanes[key] = holder
	return true
}

// ReleaseLane removes the hold on the lane between a and b if holder
// currently holds it.
func (l *Ledger) ReleaseLane(a, b, holder int) {
	key := NewLaneKey(a, b)
	if current, held := l.lanes[key]; held && current == holder {
		delete(l.lanes, key)
	}
}

// VertexHolder returns the holder of vertex, if any.
func (l *Ledger) VertexHolder(vertex int) (holder int, held bool) {
	holder, held = l.vertices[vertex]
	return holder, held
}

// LaneHolder returns the holder of the lane between a and b, if any.
func (l *Ledger) LaneHolder(a, b int) (holder int, held bool) {
	holder, held = l.lanes[NewLaneKey(a, b)]
	return holder, held
}

// OccupiedVertices returns the held vertices in ascending order.
func (l *Ledger) OccupiedVertices() []int {
	vertices := make([]int, 0, len(l.vertices))
	for vertex := range l.vertices {
		vertices = append(vertices, vertex)
	}
	sort.Ints(vertices)
	return vertices
}

// OccupiedLanes returns the held lane keys ordered by (A, B).
func (l *Ledger) OccupiedLanes() []LaneKey {
	lanes := make([]LaneKey, 0, len(l.lanes))
	for key := range l.lanes {
		lanes = append(lanes, key)
	}
	sort.Slice(lanes, func(i, j int) bool {
		if lanes[i].A != lanes[j].A {
			return lanes[i].A < lanes[j].A
		}
		return lanes[i].B < lanes[j].B
	})
	return lanes
}

// ReleaseAllHeldBy removes every hold owned by holder and returns
// what was released, sorted. The tick never calls this: agent removal
// deliberately keeps its holds in place, and operators reclaim them
// explicitly.
func (l *Ledger) ReleaseAllHeldBy(holder int) (vertices []int, lanes []LaneKey) {
	for vertex, current := range l.vertices {
		if current == holder {
			vertices = append(vertices, vertex)
			delete(l.vertices, vertex)
		}
	}
	for key, current := range l.lanes {
		if current == holder {
			lanes = append(lanes, key)
			delete(l.lanes, key)
		}
	}
	sort.Ints(vertices)
	sort.Slice(lanes, func(i, j int) bool {
		if lanes[i].A != lanes[j].A {
			return lanes[i].A < lanes[j].A
		}
		return lanes[i].B < lanes[j].B
	})
	return vertices, lanes
}
