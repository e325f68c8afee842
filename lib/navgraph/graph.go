// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package navgraph

import (
	"fmt"
	"math"
)

// VertexID identifies a vertex by its index into the graph's vertex
// list. IDs are dense: a graph with N vertices uses 0..N-1.
type VertexID int

// Vertex is one stopping point in the travel network.
type Vertex struct {
	// X, Y is the vertex position in layout units. Lane lengths are
	// euclidean distances between endpoint positions.
	X, Y float64

	// Name is an optional human-readable label. Empty means unnamed;
	// Graph.VertexName renders unnamed vertices as "V<id>".
	Name string

	// Charger marks vertices where agents may charge.
	Charger bool
}

// Lane is an undirected connection between two vertices. Agents
// traverse lanes in either direction.
type Lane struct {
	// A, B are the endpoint vertex IDs. Order carries no meaning.
	A, B VertexID

	// SpeedLimit caps agent speed on this lane in layout units per
	// second. Zero means unlimited.
	SpeedLimit float64
}

// Graph is an immutable travel network. Construct with New. All
// methods are safe for concurrent readers.
type Graph struct {
	vertices  []Vertex
	lanes     []Lane
	adjacency [][]VertexID

	// limits indexes lane speed limits by directed endpoint pair.
	// Both directions of every lane are present, so lookups never
	// canonicalize.
	limits map[[2]VertexID]float64
}

// New builds a graph from vertex and lane lists. Lane endpoints must
// reference valid vertices, self-loops are rejected, and at most one
// lane may connect any vertex pair. The input slices are copied.
func New(vertices []Vertex, lanes []Lane) (*Graph, error) {
	g := &Graph{
		vertices:  append([]Vertex(nil), vertices...),
		lanes:     append([]Lane(nil), lanes...),
		adjacency: make([][]VertexID, len(vertices)),
		limits:    make(map[[2]VertexID]float64, 2*len(lanes)),
	}

	seen := make(map[[2]VertexID]bool, len(lanes))
	for i, lane := range g.lanes {
		if !g.Contains(lane.A) {
			return nil, fmt.Errorf("lane %d: vertex %d out of range (graph has %d vertices)", i, lane.A, len(vertices))
		}
		if !g.Contains(lane.B) {
			return nil, fmt.Errorf("lane %d: vertex %d out of range (graph has %d vertices)", i, lane.B, len(vertices))
		}
		if lane.A == lane.B {
			return nil, fmt.Errorf("lane %d: self-loop at vertex %d", i, lane.A)
		}

		key := [2]VertexID{lane.A, lane.B}
		if lane.B < lane.A {
			key = [2]VertexID{lane.B, lane.A}
		}
		if seen[key] {
			return nil, fmt.Errorf("lane %d: duplicate lane between vertices %d and %d", i, lane.A, lane.B)
		}
		seen[key] = true

		g.adjacency[lane.A] = append(g.adjacency[lane.A], lane.B)
		g.adjacency[lane.B] = append(g.adjacency[lane.B], lane.A)
		g.limits[[2]VertexID{lane.A, lane.B}] = lane.SpeedLimit
		g.limits[[2]VertexID{lane.B, lane.A}] = lane.SpeedLimit
	}

	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// LaneCount returns the number of lanes.
func (g *Graph) LaneCount() int { return len(g.lanes) }

// Contains reports whether id is a valid vertex index.
func (g *Graph) Contains(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Position returns the layout coordinates of a vertex. The id must be
// a valid vertex index.
func (g *Graph) Position(id VertexID) (x, y float64) {
	v := g.vertices[id]
	return v.X, v.Y
}

// VertexName returns the vertex label, or "V<id>" when the vertex is
// unnamed or the id is out of range.
func (g *Graph) VertexName(id VertexID) string {
	if g.Contains(id) {
		if name := g.vertices[id].Name; name != "" {
			return name
		}
	}
	return fmt.Sprintf("V%d", int(id))
}

// IsCharger reports whether the vertex is a charging station. Out of
// range IDs report false.
func (g *Graph) IsCharger(id VertexID) bool {
	return g.Contains(id) && g.vertices[id].Charger
}

// Neighbors returns the vertices directly connected to id, in lane
// declaration order. The returned slice is a copy.
func (g *Graph) Neighbors(id VertexID) []VertexID {
	if !g.Contains(id) {
		return nil
	}
	return append([]VertexID(nil), g.adjacency[id]...)
}

// HasLane reports whether a lane connects a and b (either direction).
func (g *Graph) HasLane(a, b VertexID) bool {
	_, ok := g.limits[[2]VertexID{a, b}]
	return ok
}

// SpeedLimit returns the speed limit of the lane between a and b.
// Zero means unlimited, or that no such lane exists.
func (g *Graph) SpeedLimit(a, b VertexID) float64 {
	return g.limits[[2]VertexID{a, b}]
}

// Distance returns the euclidean distance between the positions of
// two vertices. Both ids must be valid vertex indexes.
func (g *Graph) Distance(a, b VertexID) float64 {
	va, vb := g.vertices[a], g.vertices[b]
	return math.Hypot(vb.X-va.X, vb.Y-va.Y)
}

// Vertices returns a copy of the vertex list.
func (g *Graph) Vertices() []Vertex {
	return append([]Vertex(nil), g.vertices...)
}

// Lanes returns a copy of the lane list.
func (g *Graph) Lanes() []Lane {
	return append([]Lane(nil), g.lanes...)
}
