// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import "errors"

// Sentinel errors for refused operations. All of them are non-fatal:
// the offending request is rejected and simulation state is left
// untouched. Callers classify with errors.Is.
var (
	// ErrUnknownAgent is returned when an agent ID does not name a
	// live agent.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrUnknownVertex is returned when a vertex ID is outside the
	// graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrVertexOccupied is returned when the requested spawn vertex
	// is already held.
	ErrVertexOccupied = errors.New("vertex occupied")

	// ErrNoRoute is returned when no path to the destination exists
	// under the current occupancy.
	ErrNoRoute = errors.New("no route to destination")

	// ErrAgentCharging is returned when a charging agent is assigned
	// a task. Charging must be stopped first.
	ErrAgentCharging = errors.New("agent is charging")

	// ErrNotIdle is returned when charging is requested for an agent
	// that is not idle.
	ErrNotIdle = errors.New("agent is not idle")

	// ErrNotCharging is returned when stop-charging is requested for
	// an agent that is not charging.
	ErrNotCharging = errors.New("agent is not charging")

	// ErrNotAtCharger is returned when charging is requested away
	// from a charging station.
	ErrNotAtCharger = errors.New("agent is not at a charging station")

	// ErrBadSpeed is returned for zero or negative speed values.
	ErrBadSpeed = errors.New("speed must be positive")

	// ErrAgentLive is returned when reclaiming resources still held
	// by a live agent. The agent must be removed first.
	ErrAgentLive = errors.New("agent is live")
)
