// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// AgentInfo is the wire representation of one agent. Returned by the
// agent-level actions and, as a list, by ActionAgents.
type AgentInfo struct {
	// ID is the agent's fleet-unique identifier, assigned at spawn
	// and never reused.
	ID int `json:"id"`

	// State is one of the State* constants.
	State string `json:"state"`

	// Vertex is the agent's logical position: the vertex it last
	// occupied. While moving it remains the departure side of the
	// current hop until arrival.
	Vertex int `json:"vertex"`

	// VertexName is the topology's display name for Vertex.
	// Unnamed vertices render as "V<id>".
	VertexName string `json:"vertex_name"`

	// X, Y interpolate the agent's physical position along its
	// current hop. At rest they equal the vertex coordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Previous is the vertex the agent most recently departed, or
	// null before its first hop.
	Previous *int `json:"previous,omitempty"`

	// Destination is the goal of the current task, or null when the
	// agent has none.
	Destination *int `json:"destination,omitempty"`

	// Path lists the remaining hops, nearest first. Empty when the
	// agent is not on a task.
	Path []int `json:"path,omitempty"`

	// Progress is the fraction of the current hop already covered,
	// in [0, 1).
	Progress float64 `json:"progress"`

	// Speed is the agent's nominal speed in units per second. Lane
	// speed limits cap the effective speed below this.
	Speed float64 `json:"speed"`

	// Color is the agent's display color as a #rrggbb hex string.
	Color string `json:"color"`
}

// AgentList is the response to ActionAgents. Agents appear in spawn
// order, matching the order the simulation steps them.
type AgentList struct {
	Agents []AgentInfo `json:"agents"`
}

// RouteCacheStats reports route memoization effectiveness.
type RouteCacheStats struct {
	// Entries is the number of memoized routes currently held.
	Entries int `json:"entries"`

	// Hits and Misses count queries since daemon start.
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// StatusInfo is the response to ActionStatus.
type StatusInfo struct {
	// Topology is the display name of the loaded topology file.
	Topology string `json:"topology"`

	// Fingerprint is the topology's content fingerprint in hex.
	// Clients compare it to detect that two daemons simulate the
	// same layout.
	Fingerprint string `json:"fingerprint"`

	// Vertices and Lanes count the topology's elements.
	Vertices int `json:"vertices"`
	Lanes    int `json:"lanes"`

	// Agents is the fleet size.
	Agents int `json:"agents"`

	// States counts agents per state name. States with no agents are
	// omitted.
	States map[string]int `json:"states,omitempty"`

	// Ticks is the number of simulation steps executed since start.
	Ticks uint64 `json:"ticks"`

	// Paused reports whether the simulation is frozen.
	Paused bool `json:"paused"`

	// TickIntervalMS is the configured automatic tick interval, or 0
	// when the daemon only ticks on request.
	TickIntervalMS int `json:"tick_interval_ms"`

	// UptimeSeconds is how long the daemon has been running.
	UptimeSeconds float64 `json:"uptime_seconds"`

	RouteCache RouteCacheStats `json:"route_cache"`
}

// VertexInfo describes one topology vertex in ActionMap responses.
// Name is the effective display name; unnamed vertices render as
// "V<id>".
type VertexInfo struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	IsCharger bool    `json:"is_charger,omitempty"`
}

// LaneInfo describes one topology lane in ActionMap responses.
// Endpoints are reported in canonical order (A <= B).
type LaneInfo struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	Length float64 `json:"length"`

	// SpeedLimit caps effective speed on this lane; 0 means no
	// limit.
	SpeedLimit float64 `json:"speed_limit,omitempty"`
}

// MapInfo is the response to ActionMap.
type MapInfo struct {
	Name        string       `json:"name"`
	Fingerprint string       `json:"fingerprint"`
	Vertices    []VertexInfo `json:"vertices"`
	Lanes       []LaneInfo   `json:"lanes"`
}

// VertexHold reports one held vertex in ActionOccupancy responses.
type VertexHold struct {
	Vertex int `json:"vertex"`
	Holder int `json:"holder"`
}

// LaneHold reports one held lane in ActionOccupancy responses.
// Endpoints are in canonical order (A <= B).
type LaneHold struct {
	A      int `json:"a"`
	B      int `json:"b"`
	Holder int `json:"holder"`
}

// OccupancyInfo is the response to ActionOccupancy. Both lists are
// sorted: vertices ascending, lanes by (A, B).
type OccupancyInfo struct {
	Vertices []VertexHold `json:"vertices"`
	Lanes    []LaneHold   `json:"lanes"`
}

// LaneRef identifies a lane by its endpoints, in canonical order.
type LaneRef struct {
	A int `json:"a"`
	B int `json:"b"`
}

// ReclaimResult is the response to ActionReclaim, listing the
// resources that were freed.
type ReclaimResult struct {
	Holder   int       `json:"holder"`
	Vertices []int     `json:"vertices"`
	Lanes    []LaneRef `json:"lanes"`
}

// TickResult is the response to ActionTick.
type TickResult struct {
	// Ticks is the total step count after this tick. Unchanged when
	// the simulation is paused.
	Ticks uint64 `json:"ticks"`

	// DtSeconds is the simulated time the step covered.
	DtSeconds float64 `json:"dt_seconds"`

	// Paused reports whether the tick was skipped because the
	// simulation is frozen.
	Paused bool `json:"paused"`
}

// PauseResult is the response to ActionPause and ActionResume.
type PauseResult struct {
	// Paused is the simulation's state after the action.
	Paused bool `json:"paused"`

	// Affected is the number of agents flipped between MOVING and
	// WAITING.
	Affected int `json:"affected"`
}

// SpeedResult is the response to ActionSetSpeed.
type SpeedResult struct {
	Speed    float64 `json:"speed"`
	Affected int     `json:"affected"`
}
