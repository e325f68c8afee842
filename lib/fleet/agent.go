// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"fmt"

	"github.com/switchyard-project/switchyard/lib/navgraph"
)

// AgentID identifies an agent. IDs are assigned sequentially at spawn
// and never reused within a manager's lifetime.
type AgentID int

// State is an agent's lifecycle state.
type State int

const (
	// StateIdle: stationed at a vertex with no task.
	StateIdle State = iota

	// StateMoving: traversing the lanes of its path.
	StateMoving

	// StateWaiting: has a path but could not acquire the next hop's
	// resources. The recovery pass retries routing every tick.
	StateWaiting

	// StateCharging: charging at a charging station.
	StateCharging

	// StateTaskComplete: reached its destination. The agent holds no
	// resources and keeps reporting its final position.
	StateTaskComplete
)

// String returns the canonical state name used in logs and on the
// wire.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateMoving:
		return "MOVING"
	case StateWaiting:
		return "WAITING"
	case StateCharging:
		return "CHARGING"
	case StateTaskComplete:
		return "TASK_COMPLETE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DefaultSpeed is the nominal agent speed at spawn, in layout units
// per second.
const DefaultSpeed = 1.0

// agentPalette is the display color rotation. An agent's color is
// agentPalette[id % len(agentPalette)].
var agentPalette = []string{
	"#FF0000", "#0000FF", "#00FF00", "#FFA500", "#800080",
	"#00FFFF", "#FF00FF", "#A52A2A", "#008000", "#000080",
}

// Agent is one mobile unit in the fleet. The manager drives all
// movement and resource bookkeeping; the agent itself owns only its
// state machine and the kinematics of a single lane traversal.
//
// The path invariant: the head of the path is the NEXT vertex to
// enter, not the vertex the agent stands on. The one exception is the
// trivial single-vertex route, where the head equals the current
// vertex so that the arrival logic still completes the task.
type Agent struct {
	id          AgentID
	state       State
	current     navgraph.VertexID
	previous    navgraph.VertexID
	destination navgraph.VertexID
	path        []navgraph.VertexID
	progress    float64
	speed       float64
	color       string
}

// newAgent creates an idle agent standing at vertex. The previous and
// destination fields start at -1 (none).
func newAgent(id AgentID, vertex navgraph.VertexID) *Agent {
	return &Agent{
		id:          id,
		state:       StateIdle,
		current:     vertex,
		previous:    -1,
		destination: -1,
		speed:       DefaultSpeed,
		color:       agentPalette[int(id)%len(agentPalette)],
	}
}

// ID returns the agent's identifier.
func (a *Agent) ID() AgentID { return a.id }

// State returns the agent's lifecycle state.
func (a *Agent) State() State { return a.state }

// CurrentVertex returns the vertex the agent stands on, or is
// departing from while mid-lane.
func (a *Agent) CurrentVertex() navgraph.VertexID { return a.current }

// PreviousVertex returns the last vertex the agent departed, if any.
func (a *Agent) PreviousVertex() (navgraph.VertexID, bool) {
	return a.previous, a.previous >= 0
}

// Destination returns the final goal of the agent's task, if one has
// been assigned.
func (a *Agent) Destination() (navgraph.VertexID, bool) {
	return a.destination, a.destination >= 0
}

// Path returns a copy of the remaining hops.
func (a *Agent) Path() []navgraph.VertexID {
	return append([]navgraph.VertexID(nil), a.path...)
}

// Progress returns the agent's position along the current lane, in
// [0, 1). Meaningful only while a path is present.
func (a *Agent) Progress() float64 { return a.progress }

// Speed returns the nominal speed in layout units per second.
func (a *Agent) Speed() float64 { return a.speed }

// Color returns the agent's display color as a hex string.
func (a *Agent) Color() string { return a.color }

// BeginTask installs a route and puts the agent in motion. The path
// must be non-empty, with the head being the next vertex to enter
// (or the current vertex, for the trivial in-place route). Progress
// resets, so reassigning a mid-lane agent snaps it back to its
// current vertex.
func (a *Agent) BeginTask(path []navgraph.VertexID) {
	a.path = path
	a.destination = path[len(path)-1]
	a.progress = 0
	a.state = StateMoving
}

// StartCharging transitions IDLE to CHARGING. Any other state returns
// ErrNotIdle.
func (a *Agent) StartCharging() error {
	if a.state != StateIdle {
		return fmt.Errorf("agent %d is %s: %w", a.id, a.state, ErrNotIdle)
	}
	a.state = StateCharging
	return nil
}

// StopCharging transitions CHARGING back to IDLE. Any other state
// returns ErrNotCharging.
func (a *Agent) StopCharging() error {
	if a.state != StateCharging {
		return fmt.Errorf("agent %d is %s: %w", a.id, a.state, ErrNotCharging)
	}
	a.state = StateIdle
	return nil
}

// Pause demotes MOVING to WAITING. Reports whether the agent changed
// state.
func (a *Agent) Pause() bool {
	if a.state != StateMoving {
		return false
	}
	a.state = StateWaiting
	return true
}

// Resume promotes WAITING to MOVING. Reports whether the agent
// changed state. Resuming a genuinely blocked agent is harmless: it
// demotes itself again when the acquisition fails next tick.
func (a *Agent) Resume() bool {
	if a.state != StateWaiting {
		return false
	}
	a.state = StateMoving
	return true
}

// SetSpeed replaces the nominal speed. Zero and negative values are
// rejected with ErrBadSpeed.
func (a *Agent) SetSpeed(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("agent %d speed %v: %w", a.id, speed, ErrBadSpeed)
	}
	a.speed = speed
	return nil
}

// Advance moves the agent along its current lane by dt seconds and
// reports whether it snapped onto the lane's far vertex. Effective
// speed is the nominal speed capped by the lane's limit (zero limit
// means uncapped). Travel beyond the far vertex is discarded: the
// manager decides the next hop on the following tick. A zero-length
// lane snaps immediately.
//
// Advance does not touch the path or any reservations; arrival
// bookkeeping belongs to the manager.
func (a *Agent) Advance(g *navgraph.Graph, dt float64) bool {
	if a.state != StateMoving || len(a.path) == 0 {
		return false
	}
	next := a.path[0]

	effective := a.speed
	if limit := g.SpeedLimit(a.current, next); limit > 0 && limit < effective {
		effective = limit
	}

	laneLength := g.Distance(a.current, next)
	remaining := (1 - a.progress) * laneLength
	if effective*dt >= remaining {
		a.previous = a.current
		a.current = next
		a.progress = 0
		return true
	}
	a.progress += effective * dt / laneLength
	return false
}

// Position returns the agent's display position: the interpolated
// point along the lane to the path head while in transit, otherwise
// the current vertex.
func (a *Agent) Position(g *navgraph.Graph) (x, y float64) {
	if len(a.path) == 0 || a.state == StateTaskComplete {
		return g.Position(a.current)
	}
	cx, cy := g.Position(a.current)
	nx, ny := g.Position(a.path[0])
	return cx + (nx-cx)*a.progress, cy + (ny-cy)*a.progress
}
