// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/switchyard-project/switchyard/lib/schema"
	"github.com/switchyard-project/switchyard/lib/service"
)

// --- Spawn tests ---

func TestHandleSpawn(t *testing.T) {
	d, _ := newTestDaemon(t)

	agent := spawnAt(t, d, 0)

	if agent.ID != 0 {
		t.Errorf("id: got %d, want 0", agent.ID)
	}
	if agent.State != schema.StateIdle {
		t.Errorf("state: got %q, want %q", agent.State, schema.StateIdle)
	}
	if agent.Vertex != 0 {
		t.Errorf("vertex: got %d, want 0", agent.Vertex)
	}
	if agent.VertexName != "dock-a" {
		t.Errorf("vertex name: got %q, want dock-a", agent.VertexName)
	}
	if agent.X != 0 || agent.Y != 0 {
		t.Errorf("position: got (%v, %v), want (0, 0)", agent.X, agent.Y)
	}
	if agent.Speed != 1 {
		t.Errorf("speed: got %v, want 1", agent.Speed)
	}
	if agent.Color == "" {
		t.Error("expected a display color")
	}
	if agent.Previous != nil {
		t.Errorf("previous: got %d, want nil", *agent.Previous)
	}
	if agent.Destination != nil {
		t.Errorf("destination: got %d, want nil", *agent.Destination)
	}
	if len(agent.Path) != 0 {
		t.Errorf("path: got %v, want empty", agent.Path)
	}
}

func TestHandleSpawnAssignsSequentialIDs(t *testing.T) {
	d, _ := newTestDaemon(t)

	first := spawnAt(t, d, 0)
	second := spawnAt(t, d, 2)

	if first.ID != 0 || second.ID != 1 {
		t.Errorf("ids: got %d and %d, want 0 and 1", first.ID, second.ID)
	}
	if first.Color == second.Color {
		t.Errorf("both agents got color %q", first.Color)
	}
}

func TestHandleSpawnOccupiedVertex(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	_, err := call(t, d.handleSpawn, map[string]any{"vertex": 0})
	requireCode(t, err, schema.CodeVertexOccupied)
}

func TestHandleSpawnUnknownVertex(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleSpawn, map[string]any{"vertex": 99})
	requireCode(t, err, schema.CodeUnknownVertex)
}

func TestHandleSpawnMissingVertex(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleSpawn, map[string]any{})
	requireCode(t, err, service.CodeBadRequest)
}

// A removed agent's spawn hold survives until reclaimed, so the vertex
// stays closed to new spawns in between.
func TestHandleSpawnAfterRemoveNeedsReclaim(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	if _, err := call(t, d.handleRemove, map[string]any{"agent": 0}); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, err := call(t, d.handleSpawn, map[string]any{"vertex": 0})
	requireCode(t, err, schema.CodeVertexOccupied)

	if _, err := call(t, d.handleReclaim, map[string]any{"holder": 0}); err != nil {
		t.Fatalf("reclaim: %v", err)
	}

	agent := spawnAt(t, d, 0)
	if agent.ID != 1 {
		t.Errorf("id after respawn: got %d, want 1", agent.ID)
	}
}

// --- Assign tests ---

func TestHandleAssign(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	agent := assignTo(t, d, 0, 2)

	if agent.State != schema.StateMoving {
		t.Errorf("state: got %q, want %q", agent.State, schema.StateMoving)
	}
	if agent.Destination == nil || *agent.Destination != 2 {
		t.Errorf("destination: got %v, want 2", agent.Destination)
	}
	wantPath := []int{1, 2}
	if len(agent.Path) != len(wantPath) {
		t.Fatalf("path: got %v, want %v", agent.Path, wantPath)
	}
	for i, vertex := range wantPath {
		if agent.Path[i] != vertex {
			t.Fatalf("path: got %v, want %v", agent.Path, wantPath)
		}
	}
	if agent.Vertex != 0 {
		t.Errorf("vertex: got %d, want 0 until the first hop lands", agent.Vertex)
	}
}

// Assigning an agent its own vertex is a one-hop route that completes
// on the next tick without moving.
func TestHandleAssignTrivialGoal(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	agent := assignTo(t, d, 0, 0)
	if agent.State != schema.StateMoving {
		t.Errorf("state: got %q, want %q", agent.State, schema.StateMoving)
	}
	if len(agent.Path) != 1 || agent.Path[0] != 0 {
		t.Errorf("path: got %v, want [0]", agent.Path)
	}

	tickMS(t, d, 100)

	agent = agentByID(t, d, 0)
	if agent.State != schema.StateTaskComplete {
		t.Errorf("state after tick: got %q, want %q", agent.State, schema.StateTaskComplete)
	}
	if agent.Vertex != 0 {
		t.Errorf("vertex: got %d, want 0", agent.Vertex)
	}
}

func TestHandleAssignUnknownAgent(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleAssign, map[string]any{"agent": 7, "goal": 2})
	requireCode(t, err, schema.CodeUnknownAgent)
}

func TestHandleAssignUnknownGoal(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	_, err := call(t, d.handleAssign, map[string]any{"agent": 0, "goal": 99})
	requireCode(t, err, schema.CodeUnknownVertex)
}

func TestHandleAssignWhileCharging(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 3)
	if _, err := call(t, d.handleCharge, map[string]any{"agent": 0}); err != nil {
		t.Fatalf("charge: %v", err)
	}

	_, err := call(t, d.handleAssign, map[string]any{"agent": 0, "goal": 2})
	requireCode(t, err, schema.CodeAgentCharging)
}

// Every route to dock-b runs through the hub; an agent parked there
// makes the goal unreachable.
func TestHandleAssignNoRoute(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	spawnAt(t, d, 1)

	_, err := call(t, d.handleAssign, map[string]any{"agent": 0, "goal": 2})
	requireCode(t, err, schema.CodeNoRoute)
}

func TestHandleAssignOccupiedGoal(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	spawnAt(t, d, 2)

	_, err := call(t, d.handleAssign, map[string]any{"agent": 0, "goal": 2})
	requireCode(t, err, schema.CodeNoRoute)
}

func TestHandleAssignMissingFields(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	_, err := call(t, d.handleAssign, map[string]any{"agent": 0})
	requireCode(t, err, service.CodeBadRequest)

	_, err = call(t, d.handleAssign, map[string]any{"goal": 2})
	requireCode(t, err, service.CodeBadRequest)
}

// --- Charge tests ---

func TestHandleChargeAndStopCharging(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 3)

	result, err := call(t, d.handleCharge, map[string]any{"agent": 0})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if agent := result.(schema.AgentInfo); agent.State != schema.StateCharging {
		t.Errorf("state: got %q, want %q", agent.State, schema.StateCharging)
	}

	result, err = call(t, d.handleStopCharging, map[string]any{"agent": 0})
	if err != nil {
		t.Fatalf("stop-charging: %v", err)
	}
	if agent := result.(schema.AgentInfo); agent.State != schema.StateIdle {
		t.Errorf("state: got %q, want %q", agent.State, schema.StateIdle)
	}
}

func TestHandleChargeNotAtCharger(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	_, err := call(t, d.handleCharge, map[string]any{"agent": 0})
	requireCode(t, err, schema.CodeNotAtCharger)
}

func TestHandleChargeNotIdle(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 3)
	assignTo(t, d, 0, 2)

	_, err := call(t, d.handleCharge, map[string]any{"agent": 0})
	requireCode(t, err, schema.CodeNotIdle)
}

func TestHandleStopChargingNotCharging(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 3)

	_, err := call(t, d.handleStopCharging, map[string]any{"agent": 0})
	requireCode(t, err, schema.CodeNotCharging)
}

func TestHandleChargeUnknownAgent(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleCharge, map[string]any{"agent": 4})
	requireCode(t, err, schema.CodeUnknownAgent)
}

// --- Remove and reclaim tests ---

func TestHandleRemove(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	result, err := call(t, d.handleRemove, map[string]any{"agent": 0})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if result != nil {
		t.Errorf("remove result: got %v, want nil", result)
	}

	_, err = call(t, d.handleAgent, map[string]any{"agent": 0})
	requireCode(t, err, schema.CodeUnknownAgent)
}

func TestHandleRemoveUnknownAgent(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleRemove, map[string]any{"agent": 0})
	requireCode(t, err, schema.CodeUnknownAgent)
}

func TestHandleReclaimLiveAgent(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	_, err := call(t, d.handleReclaim, map[string]any{"holder": 0})
	requireCode(t, err, schema.CodeAgentLive)
}

// Removing a mid-lane agent leaves its vertex and lane grants in
// place; reclaim frees all of them at once.
func TestHandleReclaimMidRouteHoldings(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)
	tickMS(t, d, 500)

	if _, err := call(t, d.handleRemove, map[string]any{"agent": 0}); err != nil {
		t.Fatalf("remove: %v", err)
	}

	result, err := call(t, d.handleReclaim, map[string]any{"holder": 0})
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	reclaimed := result.(schema.ReclaimResult)

	if reclaimed.Holder != 0 {
		t.Errorf("holder: got %d, want 0", reclaimed.Holder)
	}
	if len(reclaimed.Vertices) != 1 || reclaimed.Vertices[0] != 1 {
		t.Fatalf("vertices: got %v, want [1]", reclaimed.Vertices)
	}
	if len(reclaimed.Lanes) != 1 || reclaimed.Lanes[0] != (schema.LaneRef{A: 0, B: 1}) {
		t.Errorf("lanes: got %v, want [{0 1}]", reclaimed.Lanes)
	}
}

func TestHandleReclaimNothingHeld(t *testing.T) {
	d, _ := newTestDaemon(t)

	result, err := call(t, d.handleReclaim, map[string]any{"holder": 42})
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	reclaimed := result.(schema.ReclaimResult)

	if len(reclaimed.Vertices) != 0 {
		t.Errorf("vertices: got %v, want empty", reclaimed.Vertices)
	}
	if len(reclaimed.Lanes) != 0 {
		t.Errorf("lanes: got %v, want empty", reclaimed.Lanes)
	}
}

// --- Set-speed tests ---

func TestHandleSetSpeedSingleAgent(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	spawnAt(t, d, 2)

	result, err := call(t, d.handleSetSpeed, map[string]any{"agent": 0, "speed": 2.5})
	if err != nil {
		t.Fatalf("set-speed: %v", err)
	}
	speed := result.(schema.SpeedResult)
	if speed.Speed != 2.5 || speed.Affected != 1 {
		t.Errorf("result: got %+v, want speed 2.5 affecting 1", speed)
	}

	if agent := agentByID(t, d, 0); agent.Speed != 2.5 {
		t.Errorf("agent 0 speed: got %v, want 2.5", agent.Speed)
	}
	if agent := agentByID(t, d, 1); agent.Speed != 1 {
		t.Errorf("agent 1 speed: got %v, want untouched 1", agent.Speed)
	}
}

func TestHandleSetSpeedFleetWide(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	spawnAt(t, d, 2)

	result, err := call(t, d.handleSetSpeed, map[string]any{"speed": 0.5})
	if err != nil {
		t.Fatalf("set-speed: %v", err)
	}
	speed := result.(schema.SpeedResult)
	if speed.Speed != 0.5 || speed.Affected != 2 {
		t.Errorf("result: got %+v, want speed 0.5 affecting 2", speed)
	}

	for id := 0; id < 2; id++ {
		if agent := agentByID(t, d, id); agent.Speed != 0.5 {
			t.Errorf("agent %d speed: got %v, want 0.5", id, agent.Speed)
		}
	}
}

func TestHandleSetSpeedRejectsNonPositive(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)

	_, err := call(t, d.handleSetSpeed, map[string]any{"agent": 0, "speed": 0})
	requireCode(t, err, schema.CodeBadSpeed)

	_, err = call(t, d.handleSetSpeed, map[string]any{"speed": -1})
	requireCode(t, err, schema.CodeBadSpeed)

	// An omitted speed decodes as zero and is rejected the same way.
	_, err = call(t, d.handleSetSpeed, map[string]any{"agent": 0})
	requireCode(t, err, schema.CodeBadSpeed)
}

func TestHandleSetSpeedUnknownAgent(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleSetSpeed, map[string]any{"agent": 9, "speed": 2})
	requireCode(t, err, schema.CodeUnknownAgent)
}

// --- Pause and resume tests ---

func TestHandlePauseAndResume(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)
	spawnAt(t, d, 3)

	result, err := call(t, d.handlePause, nil)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	paused := result.(schema.PauseResult)
	if !paused.Paused || paused.Affected != 1 {
		t.Errorf("pause: got %+v, want paused with 1 agent parked", paused)
	}

	if agent := agentByID(t, d, 0); agent.State != schema.StateWaiting {
		t.Errorf("mover state: got %q, want %q", agent.State, schema.StateWaiting)
	}
	if agent := agentByID(t, d, 1); agent.State != schema.StateIdle {
		t.Errorf("idle state: got %q, want untouched %q", agent.State, schema.StateIdle)
	}

	// Ticks are no-ops while frozen: no step is counted and no time
	// passes for the fleet.
	tick := tickMS(t, d, 500)
	if !tick.Paused || tick.Ticks != 0 || tick.DtSeconds != 0 {
		t.Errorf("tick while paused: got %+v, want skipped", tick)
	}
	if agent := agentByID(t, d, 0); agent.Progress != 0 {
		t.Errorf("progress while paused: got %v, want 0", agent.Progress)
	}

	result, err = call(t, d.handleResume, nil)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	resumed := result.(schema.PauseResult)
	if resumed.Paused || resumed.Affected != 1 {
		t.Errorf("resume: got %+v, want unpaused with 1 agent promoted", resumed)
	}

	tick = tickMS(t, d, 1000)
	if tick.Paused || tick.Ticks != 1 {
		t.Errorf("tick after resume: got %+v, want step 1", tick)
	}
	if agent := agentByID(t, d, 0); agent.Vertex != 1 {
		t.Errorf("vertex after resumed tick: got %d, want 1", agent.Vertex)
	}
}

func TestHandlePauseIdempotent(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)

	if _, err := call(t, d.handlePause, nil); err != nil {
		t.Fatalf("pause: %v", err)
	}
	result, err := call(t, d.handlePause, nil)
	if err != nil {
		t.Fatalf("second pause: %v", err)
	}
	paused := result.(schema.PauseResult)
	if !paused.Paused || paused.Affected != 0 {
		t.Errorf("second pause: got %+v, want paused with nothing left to park", paused)
	}
}

// --- Tick tests ---

func TestHandleTickDefaultsToInterval(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)

	result, err := call(t, d.handleTick, map[string]any{})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	tick := result.(schema.TickResult)
	if tick.DtSeconds != 0.1 {
		t.Errorf("dt: got %v, want the 100ms interval", tick.DtSeconds)
	}
	if tick.Ticks != 1 {
		t.Errorf("ticks: got %d, want 1", tick.Ticks)
	}

	if agent := agentByID(t, d, 0); agent.Progress != 0.1 {
		t.Errorf("progress: got %v, want 0.1", agent.Progress)
	}
}

func TestHandleTickExplicitDt(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)

	tick := tickMS(t, d, 250)
	if tick.DtSeconds != 0.25 {
		t.Errorf("dt: got %v, want 0.25", tick.DtSeconds)
	}

	agent := agentByID(t, d, 0)
	if agent.Progress != 0.25 {
		t.Errorf("progress: got %v, want 0.25", agent.Progress)
	}
	if agent.X != 0.25 || agent.Y != 0 {
		t.Errorf("position: got (%v, %v), want (0.25, 0)", agent.X, agent.Y)
	}
}

func TestHandleTickRejectsNegativeDt(t *testing.T) {
	d, _ := newTestDaemon(t)

	_, err := call(t, d.handleTick, map[string]any{"dt_ms": -5})
	requireCode(t, err, service.CodeBadRequest)
}

func TestHandleTickRequiresDtWithoutInterval(t *testing.T) {
	d, _ := newTestDaemon(t)
	d.tickInterval = 0

	_, err := call(t, d.handleTick, map[string]any{})
	requireCode(t, err, service.CodeBadRequest)

	if tick := tickMS(t, d, 100); tick.Ticks != 1 {
		t.Errorf("explicit tick: got %+v, want step 1", tick)
	}
}

// A zero-dt tick moves nobody but still runs blocked-agent recovery.
func TestHandleTickZeroDtRunsRecovery(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)
	blocker := spawnAt(t, d, 1)

	tickMS(t, d, 100)
	if agent := agentByID(t, d, 0); agent.State != schema.StateWaiting {
		t.Fatalf("state with hub held: got %q, want %q", agent.State, schema.StateWaiting)
	}

	if _, err := call(t, d.handleRemove, map[string]any{"agent": blocker.ID}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := call(t, d.handleReclaim, map[string]any{"holder": blocker.ID}); err != nil {
		t.Fatalf("reclaim: %v", err)
	}

	tick := tickMS(t, d, 0)
	if tick.DtSeconds != 0 {
		t.Errorf("dt: got %v, want 0", tick.DtSeconds)
	}

	agent := agentByID(t, d, 0)
	if agent.State != schema.StateMoving {
		t.Errorf("state after recovery: got %q, want %q", agent.State, schema.StateMoving)
	}
	if agent.Progress != 0 {
		t.Errorf("progress: got %v, want 0 (recovery does not move)", agent.Progress)
	}
}

// Full contention lifecycle: an agent blocked by a parked rival waits
// without giving up its route, then recovers and finishes once the
// rival's holdings are reclaimed.
func TestBlockedAgentRecoversAfterReclaim(t *testing.T) {
	d, _ := newTestDaemon(t)
	spawnAt(t, d, 0)
	assignTo(t, d, 0, 2)
	blocker := spawnAt(t, d, 1)

	tickMS(t, d, 100)

	agent := agentByID(t, d, 0)
	if agent.State != schema.StateWaiting {
		t.Fatalf("state: got %q, want %q", agent.State, schema.StateWaiting)
	}
	if agent.Vertex != 0 || agent.Progress != 0 {
		t.Errorf("blocked agent moved: vertex %d progress %v", agent.Vertex, agent.Progress)
	}
	if len(agent.Path) != 2 {
		t.Errorf("blocked agent lost its route: path %v", agent.Path)
	}

	if _, err := call(t, d.handleRemove, map[string]any{"agent": blocker.ID}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := call(t, d.handleReclaim, map[string]any{"holder": blocker.ID}); err != nil {
		t.Fatalf("reclaim: %v", err)
	}

	// Recovery pass re-routes; movement resumes the tick after.
	tickMS(t, d, 100)
	if agent := agentByID(t, d, 0); agent.State != schema.StateMoving {
		t.Fatalf("state after reclaim: got %q, want %q", agent.State, schema.StateMoving)
	}

	tickMS(t, d, 1000)
	if agent := agentByID(t, d, 0); agent.Vertex != 1 {
		t.Fatalf("vertex: got %d, want 1", agent.Vertex)
	}

	tickMS(t, d, 1000)
	agent = agentByID(t, d, 0)
	if agent.State != schema.StateTaskComplete {
		t.Errorf("state: got %q, want %q", agent.State, schema.StateTaskComplete)
	}
	if agent.Vertex != 2 {
		t.Errorf("vertex: got %d, want 2", agent.Vertex)
	}
	if agent.Previous == nil || *agent.Previous != 1 {
		t.Errorf("previous: got %v, want 1", agent.Previous)
	}
	if len(agent.Path) != 0 {
		t.Errorf("path: got %v, want empty", agent.Path)
	}
}
