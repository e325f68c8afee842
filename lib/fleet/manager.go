// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"fmt"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/switchyard-project/switchyard/lib/navgraph"
	"github.com/switchyard-project/switchyard/lib/reservation"
)

// Manager owns the agents, the reservation ledger, and the tick. All
// methods mutate shared state and must be externally serialized; see
// the package comment.
type Manager struct {
	graph  *navgraph.Graph
	ledger *reservation.Ledger
	routes *navgraph.PathCache

	// agents preserves insertion order; iteration order during the
	// tick IS the scheduling priority (earlier spawns win contested
	// resources).
	agents *orderedmap.OrderedMap[AgentID, *Agent]

	nextID AgentID
	ticks  uint64
	paused bool

	logger *slog.Logger
}

// NewManager creates a manager for the given graph. routeCacheSize
// bounds the BFS memo (zero or less disables it). A nil logger falls
// back to slog.Default().
func NewManager(graph *navgraph.Graph, routeCacheSize int, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		graph:  graph,
		ledger: reservation.NewLedger(),
		routes: navgraph.NewPathCache(graph, routeCacheSize),
		agents: orderedmap.New[AgentID, *Agent](),
		logger: logger,
	}
}

// Graph returns the travel network the fleet operates on.
func (m *Manager) Graph() *navgraph.Graph { return m.graph }

// Ledger returns the reservation ledger, for introspection.
func (m *Manager) Ledger() *reservation.Ledger { return m.ledger }

// RouteCache returns the BFS memo, for introspection.
func (m *Manager) RouteCache() *navgraph.PathCache { return m.routes }

// TickCount returns the number of completed (non-frozen) ticks.
func (m *Manager) TickCount() uint64 { return m.ticks }

// Paused reports whether the fleet is paused.
func (m *Manager) Paused() bool { return m.paused }

// Len returns the number of live agents.
func (m *Manager) Len() int { return m.agents.Len() }

// Agent returns the agent with the given ID, if it is live.
func (m *Manager) Agent(id AgentID) (*Agent, bool) {
	return m.agents.Get(id)
}

// Agents returns the live agents in spawn order.
func (m *Manager) Agents() []*Agent {
	agents := make([]*Agent, 0, m.agents.Len())
	for pair := m.agents.Oldest(); pair != nil; pair = pair.Next() {
		agents = append(agents, pair.Value)
	}
	return agents
}

// StateCounts returns the number of live agents in each state.
func (m *Manager) StateCounts() map[State]int {
	counts := make(map[State]int)
	for pair := m.agents.Oldest(); pair != nil; pair = pair.Next() {
		counts[pair.Value.state]++
	}
	return counts
}

// Spawn creates an idle agent at the given vertex. The vertex must
// exist and be free; the new agent holds it from this moment on. IDs
// are allocated only on success, so refused spawns leave no gap in
// the sequence.
func (m *Manager) Spawn(vertex navgraph.VertexID) (*Agent, error) {
	if !m.graph.Contains(vertex) {
		return nil, fmt.Errorf("spawn at vertex %d: %w", vertex, ErrUnknownVertex)
	}
	if !m.ledger.RequestVertex(int(vertex), int(m.nextID)) {
		holder, _ := m.ledger.VertexHolder(int(vertex))
		return nil, fmt.Errorf("spawn at %s held by agent %d: %w", m.graph.VertexName(vertex), holder, ErrVertexOccupied)
	}

	agent := newAgent(m.nextID, vertex)
	m.agents.Set(agent.id, agent)
	m.nextID++

	m.logger.Info("agent spawned", "agent", agent.id, "vertex", m.graph.VertexName(vertex))
	return agent, nil
}

// Assign routes the agent to goal and puts it in motion. The route is
// computed against a snapshot of the currently held vertices, so a
// destination that is free right now but contested later simply
// blocks the agent en route. A route that actually moves the agent
// releases its hold on the departure vertex immediately; the next
// hop's vertex and lane are acquired during movement. Reassigning a
// moving agent replaces its path; resources acquired for the
// abandoned route stay held until an arrival hands them back, or an
// operator reclaims them.
func (m *Manager) Assign(id AgentID, goal navgraph.VertexID) error {
	agent, ok := m.agents.Get(id)
	if !ok {
		return fmt.Errorf("assign to agent %d: %w", id, ErrUnknownAgent)
	}
	if !m.graph.Contains(goal) {
		return fmt.Errorf("assign agent %d to vertex %d: %w", id, goal, ErrUnknownVertex)
	}
	if agent.state == StateCharging {
		return fmt.Errorf("assign to agent %d: %w", id, ErrAgentCharging)
	}

	path := m.routes.FindPath(agent.current, goal, m.occupancy())
	if path == nil {
		return fmt.Errorf("agent %d from %s to %s: %w", id,
			m.graph.VertexName(agent.current), m.graph.VertexName(goal), ErrNoRoute)
	}

	// A route that leaves the vertex gives up the hold on it now;
	// ground is re-acquired hop by hop. Only the in-place route keeps
	// standing on its hold.
	if len(path) > 1 {
		m.ledger.ReleaseVertex(int(agent.current), int(agent.id))
	}

	agent.BeginTask(routeHops(path))
	m.logger.Info("task assigned",
		"agent", id,
		"destination", m.graph.VertexName(goal),
		"hops", len(agent.path),
	)
	return nil
}

// Charge puts an idle agent at a charging station into CHARGING.
func (m *Manager) Charge(id AgentID) error {
	agent, ok := m.agents.Get(id)
	if !ok {
		return fmt.Errorf("charge agent %d: %w", id, ErrUnknownAgent)
	}
	if !m.graph.IsCharger(agent.current) {
		return fmt.Errorf("agent %d at %s: %w", id, m.graph.VertexName(agent.current), ErrNotAtCharger)
	}
	if err := agent.StartCharging(); err != nil {
		return err
	}
	m.logger.Info("agent charging", "agent", id, "vertex", m.graph.VertexName(agent.current))
	return nil
}

// StopCharging returns a charging agent to IDLE.
func (m *Manager) StopCharging(id AgentID) error {
	agent, ok := m.agents.Get(id)
	if !ok {
		return fmt.Errorf("stop charging agent %d: %w", id, ErrUnknownAgent)
	}
	if err := agent.StopCharging(); err != nil {
		return err
	}
	m.logger.Info("agent stopped charging", "agent", id)
	return nil
}

// Remove deletes the agent from the registry. Resources the agent
// holds stay held under its ID: the gap a mid-route removal leaves is
// preserved, and ReclaimHoldings is the explicit operator path to
// free it.
func (m *Manager) Remove(id AgentID) error {
	if _, ok := m.agents.Get(id); !ok {
		return fmt.Errorf("remove agent %d: %w", id, ErrUnknownAgent)
	}
	m.agents.Delete(id)
	m.logger.Info("agent removed", "agent", id)
	return nil
}

// ReclaimHoldings force-releases everything held under the given
// holder ID and returns what was freed. Live agents are refused:
// stripping a mover's holds would let another agent enter the same
// lane.
func (m *Manager) ReclaimHoldings(holder AgentID) (vertices []int, lanes []reservation.LaneKey, err error) {
	if _, live := m.agents.Get(holder); live {
		return nil, nil, fmt.Errorf("reclaim holdings of agent %d: %w", holder, ErrAgentLive)
	}
	vertices, lanes = m.ledger.ReleaseAllHeldBy(int(holder))
	if len(vertices) > 0 || len(lanes) > 0 {
		m.logger.Info("holdings reclaimed", "holder", holder, "vertices", len(vertices), "lanes", len(lanes))
	}
	return vertices, lanes, nil
}

// SetSpeed replaces one agent's nominal speed.
func (m *Manager) SetSpeed(id AgentID, speed float64) error {
	agent, ok := m.agents.Get(id)
	if !ok {
		return fmt.Errorf("set speed for agent %d: %w", id, ErrUnknownAgent)
	}
	return agent.SetSpeed(speed)
}

// SetAllSpeeds replaces every agent's nominal speed, the fleet-wide
// simulation speed control.
func (m *Manager) SetAllSpeeds(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("fleet speed %v: %w", speed, ErrBadSpeed)
	}
	for pair := m.agents.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.speed = speed
	}
	m.logger.Info("fleet speed set", "speed", speed)
	return nil
}

// PauseAll demotes every MOVING agent to WAITING and freezes the
// tick; Tick is a no-op until ResumeAll. Returns the number of agents
// demoted.
func (m *Manager) PauseAll() int {
	paused := 0
	for pair := m.agents.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Pause() {
			paused++
		}
	}
	m.paused = true
	m.logger.Info("fleet paused", "agents", paused)
	return paused
}

// ResumeAll unfreezes the tick and promotes every WAITING agent back
// to MOVING. Agents that were blocked rather than paused demote
// themselves again at their next failed acquisition. Returns the
// number of agents promoted.
func (m *Manager) ResumeAll() int {
	resumed := 0
	for pair := m.agents.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Resume() {
			resumed++
		}
	}
	m.paused = false
	m.logger.Info("fleet resumed", "agents", resumed)
	return resumed
}

// Tick advances the simulation by dt seconds. No-op while paused.
//
// Two passes run over the agents in spawn order. The movement pass
// advances each MOVING agent, acquiring the next hop's vertex and
// then its lane first; either refusal demotes the agent to WAITING
// without surrendering anything it already holds. The recovery pass
// then re-routes each WAITING agent against a fresh occupancy
// snapshot, so an earlier recovery in the same tick influences the
// later ones. Recovered agents start moving on the next tick.
//
// A dt of zero is a valid tick: nobody moves (zero-length lanes still
// snap), but recovery runs.
func (m *Manager) Tick(dt float64) {
	if m.paused {
		return
	}
	m.ticks++

	for pair := m.agents.Oldest(); pair != nil; pair = pair.Next() {
		agent := pair.Value
		if agent.state == StateMoving && len(agent.path) > 0 {
			m.moveAgent(agent, dt)
		}
	}

	for pair := m.agents.Oldest(); pair != nil; pair = pair.Next() {
		agent := pair.Value
		if agent.state == StateWaiting && len(agent.path) > 0 {
			m.recoverAgent(agent)
		}
	}
}

// moveAgent runs one movement step: acquire the next hop's resources,
// advance the kinematics, and on arrival hand back what the agent no
// longer needs.
func (m *Manager) moveAgent(agent *Agent, dt float64) {
	next := agent.path[0]

	// The trivial in-place hop needs no resources: the agent already
	// holds its own vertex.
	if next != agent.current {
		if !m.ledger.RequestVertex(int(next), int(agent.id)) {
			holder, _ := m.ledger.VertexHolder(int(next))
			agent.state = StateWaiting
			m.logger.Debug("agent blocked on vertex",
				"agent", agent.id, "vertex", next, "holder", holder)
			return
		}
		if !m.ledger.RequestLane(int(agent.current), int(next), int(agent.id)) {
			// The vertex granted above stays held; holds are only
			// surrendered on arrival.
			holder, _ := m.ledger.LaneHolder(int(agent.current), int(next))
			agent.state = StateWaiting
			m.logger.Debug("agent blocked on lane",
				"agent", agent.id, "lane", reservation.NewLaneKey(int(agent.current), int(next)), "holder", holder)
			return
		}
	}

	if agent.Advance(m.graph, dt) {
		m.handleArrival(agent)
	}
}

// handleArrival releases the lane and vertex behind the agent, pops
// the completed hop, and on an empty path finishes the task. Task
// completion releases the final vertex too: a TASK_COMPLETE agent
// holds nothing.
func (m *Manager) handleArrival(agent *Agent) {
	if agent.previous >= 0 {
		m.ledger.ReleaseLane(int(agent.previous), int(agent.current), int(agent.id))
		m.ledger.ReleaseVertex(int(agent.previous), int(agent.id))
	}

	agent.path = agent.path[1:]
	if len(agent.path) > 0 {
		return
	}

	agent.state = StateTaskComplete
	m.ledger.ReleaseVertex(int(agent.current), int(agent.id))
	m.logger.Info("task complete", "agent", agent.id, "vertex", m.graph.VertexName(agent.current))
}

// recoverAgent retries routing for a blocked agent against the
// current occupancy. On success the new route replaces the old one
// and the agent moves again starting next tick.
func (m *Manager) recoverAgent(agent *Agent) {
	path := m.routes.FindPath(agent.current, agent.destination, m.occupancy())
	if path == nil {
		return
	}
	agent.path = routeHops(path)
	agent.state = StateMoving
	m.logger.Info("agent rerouted",
		"agent", agent.id,
		"destination", m.graph.VertexName(agent.destination),
		"hops", len(agent.path),
	)
}

// occupancy snapshots the held vertices as a route obstacle set. The
// requesting agent's own current vertex may be in the set; the search
// exempts its start vertex, so departure is never self-blocked.
func (m *Manager) occupancy() navgraph.VertexSet {
	held := m.ledger.OccupiedVertices()
	occupied := make(navgraph.VertexSet, len(held))
	for _, vertex := range held {
		occupied.Add(navgraph.VertexID(vertex))
	}
	return occupied
}

// routeHops converts a full route (start..goal) into the stored hop
// list whose head is the next vertex to enter. The trivial
// single-vertex route is kept whole so arrival handling still
// completes it.
func routeHops(path []navgraph.VertexID) []navgraph.VertexID {
	if len(path) > 1 {
		return path[1:]
	}
	return path
}
