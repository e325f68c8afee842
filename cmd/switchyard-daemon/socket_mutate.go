// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	"github.com/switchyard-project/switchyard/lib/codec"
	"github.com/switchyard-project/switchyard/lib/fleet"
	"github.com/switchyard-project/switchyard/lib/navgraph"
	"github.com/switchyard-project/switchyard/lib/schema"
	"github.com/switchyard-project/switchyard/lib/service"
)

// --- Mutation request types ---
//
// Required integer fields are pointers: zero is a valid vertex and
// agent ID, so omission cannot be detected from the zero value.

// spawnRequest is the payload for the "spawn" action.
type spawnRequest struct {
	Vertex *int `cbor:"vertex"`
}

// agentRequest is the shared payload for actions addressing one agent
// by ID: charge, stop-charging, remove, and the agent query.
type agentRequest struct {
	Agent *int `cbor:"agent"`
}

// assignRequest is the payload for the "assign" action.
type assignRequest struct {
	Agent *int `cbor:"agent"`
	Goal  *int `cbor:"goal"`
}

// reclaimRequest is the payload for the "reclaim" action. Holder is an
// agent ID, normally one that no longer names a live agent.
type reclaimRequest struct {
	Holder *int `cbor:"holder"`
}

// setSpeedRequest is the payload for the "set-speed" action. A nil
// Agent applies the speed to the whole fleet.
type setSpeedRequest struct {
	Agent *int    `cbor:"agent"`
	Speed float64 `cbor:"speed"`
}

// tickRequest is the payload for the "tick" action. A nil DtMS falls
// back to the daemon's configured interval.
type tickRequest struct {
	DtMS *int `cbor:"dt_ms"`
}

// --- Mutation handlers ---

// handleSpawn places a new agent on a vertex.
func (d *Daemon) handleSpawn(ctx context.Context, raw []byte) (any, error) {
	var request spawnRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}
	vertex, err := requireInt("vertex", request.Vertex)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	agent, err := d.manager.Spawn(navgraph.VertexID(vertex))
	if err != nil {
		return nil, d.refuse(schema.ActionSpawn, err)
	}
	return d.agentInfo(agent), nil
}

// handleAssign gives an agent a destination. The returned snapshot
// carries the planned route.
func (d *Daemon) handleAssign(ctx context.Context, raw []byte) (any, error) {
	var request assignRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}
	id, err := requireInt("agent", request.Agent)
	if err != nil {
		return nil, err
	}
	goal, err := requireInt("goal", request.Goal)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.manager.Assign(fleet.AgentID(id), navgraph.VertexID(goal)); err != nil {
		return nil, d.refuse(schema.ActionAssign, err)
	}
	agent, _ := d.manager.Agent(fleet.AgentID(id))
	return d.agentInfo(agent), nil
}

// handleCharge starts charging an idle agent parked on a charger.
func (d *Daemon) handleCharge(ctx context.Context, raw []byte) (any, error) {
	var request agentRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}
	id, err := requireInt("agent", request.Agent)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.manager.Charge(fleet.AgentID(id)); err != nil {
		return nil, d.refuse(schema.ActionCharge, err)
	}
	agent, _ := d.manager.Agent(fleet.AgentID(id))
	return d.agentInfo(agent), nil
}

// handleStopCharging returns a charging agent to idle.
func (d *Daemon) handleStopCharging(ctx context.Context, raw []byte) (any, error) {
	var request agentRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}
	id, err := requireInt("agent", request.Agent)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.manager.StopCharging(fleet.AgentID(id)); err != nil {
		return nil, d.refuse(schema.ActionStopCharging, err)
	}
	agent, _ := d.manager.Agent(fleet.AgentID(id))
	return d.agentInfo(agent), nil
}

// handleRemove deletes an agent. Whatever it held stays held under
// its ID until an explicit reclaim.
func (d *Daemon) handleRemove(ctx context.Context, raw []byte) (any, error) {
	var request agentRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}
	id, err := requireInt("agent", request.Agent)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.manager.Remove(fleet.AgentID(id)); err != nil {
		return nil, d.refuse(schema.ActionRemove, err)
	}
	return nil, nil
}

// handleReclaim releases everything still held under a removed
// agent's ID and reports what was freed.
func (d *Daemon) handleReclaim(ctx context.Context, raw []byte) (any, error) {
	var request reclaimRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}
	holder, err := requireInt("holder", request.Holder)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	vertices, lanes, err := d.manager.ReclaimHoldings(fleet.AgentID(holder))
	if err != nil {
		return nil, d.refuse(schema.ActionReclaim, err)
	}

	result := schema.ReclaimResult{
		Holder:   holder,
		Vertices: vertices,
		Lanes:    make([]schema.LaneRef, 0, len(lanes)),
	}
	if result.Vertices == nil {
		result.Vertices = []int{}
	}
	for _, lane := range lanes {
		result.Lanes = append(result.Lanes, schema.LaneRef{A: lane.A, B: lane.B})
	}
	return result, nil
}

// handleSetSpeed changes one agent's nominal speed, or every agent's
// when the request names none.
func (d *Daemon) handleSetSpeed(ctx context.Context, raw []byte) (any, error) {
	var request setSpeedRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if request.Agent == nil {
		if err := d.manager.SetAllSpeeds(request.Speed); err != nil {
			return nil, d.refuse(schema.ActionSetSpeed, err)
		}
		return schema.SpeedResult{Speed: request.Speed, Affected: d.manager.Len()}, nil
	}

	if err := d.manager.SetSpeed(fleet.AgentID(*request.Agent), request.Speed); err != nil {
		return nil, d.refuse(schema.ActionSetSpeed, err)
	}
	return schema.SpeedResult{Speed: request.Speed, Affected: 1}, nil
}

// handlePause freezes the simulation. Ticks become no-ops until
// resume; moving agents park in WAITING but keep their grants.
func (d *Daemon) handlePause(ctx context.Context, raw []byte) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	affected := d.manager.PauseAll()
	return schema.PauseResult{Paused: d.manager.Paused(), Affected: affected}, nil
}

// handleResume unfreezes the simulation and puts parked agents back
// on their routes.
func (d *Daemon) handleResume(ctx context.Context, raw []byte) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	affected := d.manager.ResumeAll()
	return schema.PauseResult{Paused: d.manager.Paused(), Affected: affected}, nil
}

// handleTick advances the simulation by one explicit step.
// Deployments with tick_interval_ms 0 drive all time this way; a
// running automatic loop tolerates interleaved manual ticks because
// both serialize on the daemon lock.
func (d *Daemon) handleTick(ctx context.Context, raw []byte) (any, error) {
	var request tickRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, service.Errorf(service.CodeBadRequest, "decoding request: %v", err)
	}

	var dt float64
	switch {
	case request.DtMS != nil:
		if *request.DtMS < 0 {
			return nil, service.Errorf(service.CodeBadRequest, "dt_ms must be non-negative, got %d", *request.DtMS)
		}
		dt = float64(*request.DtMS) / 1000
	case d.tickInterval > 0:
		dt = d.tickInterval.Seconds()
	default:
		return nil, service.Errorf(service.CodeBadRequest, "dt_ms is required when the daemon has no tick interval")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	paused := d.manager.Paused()
	if paused {
		dt = 0
	} else {
		d.manager.Tick(dt)
	}
	return schema.TickResult{
		Ticks:     d.manager.TickCount(),
		DtSeconds: dt,
		Paused:    paused,
	}, nil
}
