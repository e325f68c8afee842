// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"
	"time"

	"github.com/switchyard-project/switchyard/lib/schema"
	"github.com/switchyard-project/switchyard/lib/service"
)

// --- Status tests ---

func TestHandleStatus(t *testing.T) {
	d, fakeClock := newTestDaemon(t)
	spawnAt(t, d, 0)
	spawnAt(t, d, 3)
	assignTo(t, d, 0, 2)
	tickMS(t, d, 500)
	fakeClock.Advance(90 * time.Second)

	result, err := call(t, d.handleStatus, nil)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	status := result.(schema.StatusInfo)

	if status.Topology != "test-yard" {
		t.Errorf("topology: got %q, want test-yard", status.Topology)
	}
	if status.Fingerprint != d.fingerprint.String() {
		t.Errorf("fingerprint: got %q, want %q", status.Fingerprint, d.fingerprint)
	}
	if status.Vertices != 4 || status.Lanes != 3 {
		t.Errorf("topology size: got %d vertices %d lanes, want 4 and 3", status.Vertices, status.Lanes)
	}
	if status.Agents != 2 {
		t.Errorf("agents: got %d, want 2", status.Agents)
	}
	if status.States[schema.StateMoving] != 1 || status.States[schema.StateIdle] != 1 {
		t.Errorf("states: got %v, want one MOVING and one IDLE", status.States)
	}
	if status.Ticks != 1 {
		t.Errorf("ticks: got %d, want 1", status.Ticks)
	}
	if status.Paused {
		t.Error("paused: got true, want false")
	}
	if status.TickIntervalMS != 100 {
		t.Errorf("tick interval: got %d, want 100", status.TickIntervalMS)
	}
	if status.UptimeSeconds != 90 {
		t.Errorf("uptime: got %v, want 90", status.UptimeSeconds)
	}
	if status.RouteCache.Entries != 1 || status.RouteCache.Misses != 1 || status.RouteCache.Hits != 0 {
		t.Errorf("route cache: got %+v, want one memoized miss", status.RouteCache)
	}
}

func TestHandleStatusEmptyFleet(t *testing.T) {
	d, _ := newTestDaemon(t)

	result, err := call(t, d.handleStatus, nil)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	status := result.(schema.StatusInfo)

	if status.Agents != 0 {
		t.Errorf("agents: got %d, want 0", status.Agents)
	}
	if len(status.States) != 0 {
		t.Errorf("states: got %v, want empty", status.States)
	}
	if status.Ticks != 0 {
		t.Errorf("ticks: got %d, want 0", status.Ticks)
	}
	if status.UptimeSeconds != 0 {
		t.Errorf("uptime: got %v, want 0", status.UptimeSeconds)
	}
}

// --- Agent list tests ---

func TestHandleAgents(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	spawnAt(t, d, 2)
	spawnAt(t, d, 3)

	result, err := call(t, d.handleAgents, nil)
	if err != nil {
		t.Fatalf("agents: %v", err)
	}
	list := result.(schema.AgentList)

	if len(list.Agents) != 3 {
		t.Fatalf("got %d agents, want 3", len(list.Agents))
	}
	for i, agent := range list.Agents {
		if agent.ID != i {
			t.Errorf("agent %d has id %d, want spawn order", i, agent.ID)
		}
	}
	if list.Agents[1].VertexName != "dock-b" {
		t.Errorf("agent 1 vertex name: got %q, want dock-b", list.Agents[1].VertexName)
	}
}

func TestHandleAgentsEmptyFleet(t *testing.T) {
	d, _ := newTestDaemon(t)

	result, err := call(t, d.handleAgents, nil)
	if err != nil {
		t.Fatalf("agents: %v", err)
	}
	if list := result.(schema.AgentList); len(list.Agents) != 0 {
		t.Errorf("got %d agents, want 0", len(list.Agents))
	}
}

// --- Single agent tests ---

func TestHandleAgentMidTransit(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)
	tickMS(t, d, 500)

	agent := agentByID(t, d, 0)
	if agent.State != schema.StateMoving {
		t.Errorf("state: got %q, want %q", agent.State, schema.StateMoving)
	}
	if agent.Vertex != 0 {
		t.Errorf("vertex: got %d, want the departure side 0", agent.Vertex)
	}
	if agent.Progress != 0.5 {
		t.Errorf("progress: got %v, want 0.5", agent.Progress)
	}
	if agent.X != 0.5 || agent.Y != 0 {
		t.Errorf("position: got (%v, %v), want (0.5, 0)", agent.X, agent.Y)
	}
	if agent.Previous != nil {
		t.Errorf("previous before first arrival: got %d, want nil", *agent.Previous)
	}

	tickMS(t, d, 500)

	agent = agentByID(t, d, 0)
	if agent.Vertex != 1 {
		t.Errorf("vertex after arrival: got %d, want 1", agent.Vertex)
	}
	if agent.Previous == nil || *agent.Previous != 0 {
		t.Errorf("previous: got %v, want 0", agent.Previous)
	}
	if len(agent.Path) != 1 || agent.Path[0] != 2 {
		t.Errorf("path: got %v, want [2]", agent.Path)
	}
	if agent.Progress != 0 {
		t.Errorf("progress after arrival: got %v, want 0", agent.Progress)
	}
}

func TestHandleAgentUnknown(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleAgent, map[string]any{"agent": 5})
	requireCode(t, err, schema.CodeUnknownAgent)
}

func TestHandleAgentMissingField(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleAgent, map[string]any{})
	requireCode(t, err, service.CodeBadRequest)
}

// --- Map tests ---

func TestHandleMap(t *testing.T) {
	d, _ := newTestDaemon(t)

	result, err := call(t, d.handleMap, nil)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	info := result.(schema.MapInfo)

	if info.Name != "test-yard" {
		t.Errorf("name: got %q, want test-yard", info.Name)
	}
	if info.Fingerprint != d.fingerprint.String() {
		t.Errorf("fingerprint: got %q, want %q", info.Fingerprint, d.fingerprint)
	}

	if len(info.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(info.Vertices))
	}
	dock := info.Vertices[0]
	if dock.ID != 0 || dock.Name != "dock-a" || dock.X != 0 || dock.Y != 0 || dock.IsCharger {
		t.Errorf("vertex 0: got %+v", dock)
	}
	charger := info.Vertices[3]
	if charger.Name != "charge-1" || !charger.IsCharger {
		t.Errorf("vertex 3: got %+v, want the charger", charger)
	}

	if len(info.Lanes) != 3 {
		t.Fatalf("got %d lanes, want 3", len(info.Lanes))
	}
	for _, lane := range info.Lanes {
		if lane.A > lane.B {
			t.Errorf("lane %+v endpoints not canonical", lane)
		}
		if lane.Length != 1 {
			t.Errorf("lane %d-%d length: got %v, want 1", lane.A, lane.B, lane.Length)
		}
		if lane.SpeedLimit != 0 {
			t.Errorf("lane %d-%d speed limit: got %v, want unlimited", lane.A, lane.B, lane.SpeedLimit)
		}
	}
}

// --- Occupancy tests ---

func TestHandleOccupancy(t *testing.T) {
	d, _ := newTestDaemon(t)

	occupancy := queryOccupancy(t, d)
	if len(occupancy.Vertices) != 0 || len(occupancy.Lanes) != 0 {
		t.Errorf("fresh daemon occupancy: got %+v, want empty", occupancy)
	}

	spawnAt(t, d, 0)
	spawnAt(t, d, 3)

	occupancy = queryOccupancy(t, d)
	wantVertices := []schema.VertexHold{{Vertex: 0, Holder: 0}, {Vertex: 3, Holder: 1}}
	if len(occupancy.Vertices) != 2 || occupancy.Vertices[0] != wantVertices[0] || occupancy.Vertices[1] != wantVertices[1] {
		t.Errorf("vertices: got %v, want %v", occupancy.Vertices, wantVertices)
	}
	if len(occupancy.Lanes) != 0 {
		t.Errorf("lanes: got %v, want empty", occupancy.Lanes)
	}

	// Mid-hop the mover holds the arrival vertex and the lane between;
	// its departure vertex was vacated at assignment.
	assignTo(t, d, 0, 2)
	tickMS(t, d, 500)

	occupancy = queryOccupancy(t, d)
	wantVertices = []schema.VertexHold{{Vertex: 1, Holder: 0}, {Vertex: 3, Holder: 1}}
	if len(occupancy.Vertices) != 2 || occupancy.Vertices[0] != wantVertices[0] || occupancy.Vertices[1] != wantVertices[1] {
		t.Errorf("mid-hop vertices: got %v, want %v", occupancy.Vertices, wantVertices)
	}
	if len(occupancy.Lanes) != 1 || occupancy.Lanes[0] != (schema.LaneHold{A: 0, B: 1, Holder: 0}) {
		t.Errorf("lanes: got %v, want [{0 1 0}]", occupancy.Lanes)
	}

	// Completing the task hands everything back; only the idle agent's
	// vertex stays held.
	tickMS(t, d, 500)
	tickMS(t, d, 1000)

	occupancy = queryOccupancy(t, d)
	if len(occupancy.Vertices) != 1 || occupancy.Vertices[0] != (schema.VertexHold{Vertex: 3, Holder: 1}) {
		t.Errorf("post-completion vertices: got %v, want only the idle agent", occupancy.Vertices)
	}
	if len(occupancy.Lanes) != 0 {
		t.Errorf("post-completion lanes: got %v, want empty", occupancy.Lanes)
	}
}

func queryOccupancy(t *testing.T, d *Daemon) schema.OccupancyInfo {
	t.Helper()
	result, err := call(t, d.handleOccupancy, nil)
	if err != nil {
		t.Fatalf("occupancy: %v", err)
	}
	return result.(schema.OccupancyInfo)
}
