// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Control socket action names. These are the strings clients place in
// the "action" field of a request. Request fields beyond "action" are
// noted per constant; all are CBOR-encoded.
//
// Mutation actions.
const (
	// ActionSpawn places a new agent on a vertex. Fields: "vertex"
	// (int). Returns [AgentInfo].
	ActionSpawn = "spawn"

	// ActionAssign gives an agent a destination. Fields: "agent"
	// (int), "goal" (int). Returns [AgentInfo] with the planned
	// route.
	ActionAssign = "assign"

	// ActionCharge starts charging an idle agent parked on a charger
	// vertex. Fields: "agent" (int). Returns [AgentInfo].
	ActionCharge = "charge"

	// ActionStopCharging returns a charging agent to idle. Fields:
	// "agent" (int). Returns [AgentInfo].
	ActionStopCharging = "stop-charging"

	// ActionRemove deletes an agent from the fleet. Resources the
	// agent held stay held under its ID until reclaimed. Fields:
	// "agent" (int). Returns no data.
	ActionRemove = "remove"

	// ActionReclaim releases every vertex and lane still held under
	// a removed agent's ID. Refused while the agent is live. Fields:
	// "holder" (int). Returns [ReclaimResult].
	ActionReclaim = "reclaim"

	// ActionSetSpeed changes nominal speed, in units per second.
	// Fields: "speed" (float), "agent" (int, optional; fleet-wide
	// when omitted). Returns [SpeedResult].
	ActionSetSpeed = "set-speed"

	// ActionPause halts the simulation. Moving agents are parked in
	// WAITING and ticks become no-ops until resume. No fields.
	// Returns [PauseResult].
	ActionPause = "pause"

	// ActionResume restarts a paused simulation. No fields. Returns
	// [PauseResult].
	ActionResume = "resume"

	// ActionTick advances the simulation manually by one step.
	// Fields: "dt_ms" (int, optional; defaults to the daemon's
	// configured tick interval). Returns [TickResult].
	ActionTick = "tick"
)

// Query actions.
const (
	// ActionStatus reports daemon health and fleet counters. No
	// fields. Returns [StatusInfo].
	ActionStatus = "status"

	// ActionAgents lists every agent in spawn order. No fields.
	// Returns [AgentList].
	ActionAgents = "agents"

	// ActionAgent reports one agent. Fields: "agent" (int). Returns
	// [AgentInfo].
	ActionAgent = "agent"

	// ActionMap describes the loaded topology. No fields. Returns
	// [MapInfo].
	ActionMap = "map"

	// ActionOccupancy lists every held vertex and lane with its
	// holder. No fields. Returns [OccupancyInfo].
	ActionOccupancy = "occupancy"
)

// Error codes for failure responses. Each action's documentation in
// the daemon lists which of these it can return; clients branch on
// the code, never on the message text.
const (
	// CodeUnknownAgent: no agent with the requested ID.
	CodeUnknownAgent = "unknown-agent"

	// CodeUnknownVertex: vertex ID outside the loaded topology.
	CodeUnknownVertex = "unknown-vertex"

	// CodeVertexOccupied: spawn refused because the vertex is held.
	CodeVertexOccupied = "vertex-occupied"

	// CodeNoRoute: no collision-free route currently exists.
	CodeNoRoute = "no-route"

	// CodeAgentCharging: the agent must stop charging first.
	CodeAgentCharging = "agent-charging"

	// CodeNotIdle: the action requires an idle agent.
	CodeNotIdle = "not-idle"

	// CodeNotCharging: the agent is not charging.
	CodeNotCharging = "not-charging"

	// CodeNotAtCharger: the agent is not parked on a charger vertex.
	CodeNotAtCharger = "not-at-charger"

	// CodeBadSpeed: speed must be positive.
	CodeBadSpeed = "bad-speed"

	// CodeAgentLive: reclaim refused because the agent still exists.
	CodeAgentLive = "agent-live"
)

// Agent state names as they appear in [AgentInfo.State] and
// [StatusInfo.States]. Defined here so clients can filter without
// depending on the fleet engine.
const (
	StateIdle         = "IDLE"
	StateMoving       = "MOVING"
	StateWaiting      = "WAITING"
	StateCharging     = "CHARGING"
	StateTaskComplete = "TASK_COMPLETE"
)
