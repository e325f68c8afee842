// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/switchyard-project/switchyard/lib/codec"
	"github.com/switchyard-project/switchyard/lib/fleet"
	"github.com/switchyard-project/switchyard/lib/navgraph"
	"github.com/switchyard-project/switchyard/lib/schema"
	"github.com/switchyard-project/switchyard/lib/service"
)

// --- Query handlers ---

// handleStatus reports daemon health and fleet counters.
func (d *Daemon) handleStatus(ctx context.Context, raw []byte) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	graph := d.manager.Graph()

	states := make(map[string]int)
	for state, count := range d.manager.StateCounts() {
		states[state.String()] = count
	}

	cache := d.manager.RouteCache()
	hits, misses := cache.Stats()

	return schema.StatusInfo{
		Topology:       d.topologyName,
		Fingerprint:    d.fingerprint.String(),
		Vertices:       graph.VertexCount(),
		Lanes:          graph.LaneCount(),
		Agents:         d.manager.Len(),
		States:         states,
		Ticks:          d.manager.TickCount(),
		Paused:         d.manager.Paused(),
		TickIntervalMS: int(d.tickInterval / time.Millisecond),
		UptimeSeconds:  d.uptime().Seconds(),
		RouteCache: schema.RouteCacheStats{
			Entries: cache.Len(),
			Hits:    hits,
			Misses:  misses,
		},
	}, nil
}

// handleAgents lists every agent in spawn order.
func (d *Daemon) handleAgents(ctx context.Context, raw []byte) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	agents := d.manager.Agents()
	list := schema.AgentList{Agents: make([]schema.AgentInfo, 0, len(agents))}
	for _, agent := range agents {
		list.Agents = append(list.Agents, d.agentInfo(agent))
	}
	return list, nil
}

// handleAgent reports one agent in full detail.
func (d *Daemon) handleAgent(ctx context.Context, raw []byte) (any, error) {
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

	agent, ok := d.manager.Agent(fleet.AgentID(id))
	if !ok {
		return nil, d.refuse(schema.ActionAgent, fmt.Errorf("agent %d: %w", id, fleet.ErrUnknownAgent))
	}
	return d.agentInfo(agent), nil
}

// handleMap describes the loaded topology.
func (d *Daemon) handleMap(ctx context.Context, raw []byte) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	graph := d.manager.Graph()

	info := schema.MapInfo{
		Name:        d.topologyName,
		Fingerprint: d.fingerprint.String(),
		Vertices:    make([]schema.VertexInfo, 0, graph.VertexCount()),
		Lanes:       make([]schema.LaneInfo, 0, graph.LaneCount()),
	}
	for id, vertex := range graph.Vertices() {
		info.Vertices = append(info.Vertices, schema.VertexInfo{
			ID:        id,
			Name:      graph.VertexName(navgraph.VertexID(id)),
			X:         vertex.X,
			Y:         vertex.Y,
			IsCharger: vertex.Charger,
		})
	}
	for _, lane := range graph.Lanes() {
		a, b := lane.A, lane.B
		if a > b {
			a, b = b, a
		}
		info.Lanes = append(info.Lanes, schema.LaneInfo{
			A:          int(a),
			B:          int(b),
			Length:     graph.Distance(lane.A, lane.B),
			SpeedLimit: lane.SpeedLimit,
		})
	}
	return info, nil
}

// handleOccupancy lists every held vertex and lane with its holder.
// Output is sorted by the ledger: vertices ascending, lanes by
// endpoint pair.
func (d *Daemon) handleOccupancy(ctx context.Context, raw []byte) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ledger := d.manager.Ledger()

	info := schema.OccupancyInfo{
		Vertices: []schema.VertexHold{},
		Lanes:    []schema.LaneHold{},
	}
	for _, vertex := range ledger.OccupiedVertices() {
		holder, _ := ledger.VertexHolder(vertex)
		info.Vertices = append(info.Vertices, schema.VertexHold{
			Vertex: vertex,
			Holder: holder,
		})
	}
	for _, lane := range ledger.OccupiedLanes() {
		holder, _ := ledger.LaneHolder(lane.A, lane.B)
		info.Lanes = append(info.Lanes, schema.LaneHold{
			A:      lane.A,
			B:      lane.B,
			Holder: holder,
		})
	}
	return info, nil
}

// agentInfo snapshots one agent for the wire. Callers hold d.mu.
func (d *Daemon) agentInfo(agent *fleet.Agent) schema.AgentInfo {
	graph := d.manager.Graph()
	x, y := agent.Position(graph)

	info := schema.AgentInfo{
		ID:         int(agent.ID()),
		State:      agent.State().String(),
		Vertex:     int(agent.CurrentVertex()),
		VertexName: graph.VertexName(agent.CurrentVertex()),
		X:          x,
		Y:          y,
		Progress:   agent.Progress(),
		Speed:      agent.Speed(),
		Color:      agent.Color(),
	}
	if previous, ok := agent.PreviousVertex(); ok {
		value := int(previous)
		info.Previous = &value
	}
	if destination, ok := agent.Destination(); ok {
		value := int(destination)
		info.Destination = &value
	}
	if path := agent.Path(); len(path) > 0 {
		info.Path = make([]int, len(path))
		for i, vertex := range path {
			info.Path[i] = int(vertex)
		}
	}
	return info
}
