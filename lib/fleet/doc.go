// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package fleet owns the agents and drives the simulation tick.
//
// The Manager composes a navgraph.Graph (immutable terrain), a
// reservation.Ledger (who holds which vertex or lane), and an
// insertion-ordered agent registry. Each Tick runs two passes over
// the agents in spawn order: the movement pass advances MOVING agents
// that can acquire their next hop's vertex and lane, demoting refused
// agents to WAITING; the recovery pass re-routes WAITING agents
// around the current occupancy. Spawn order is the scheduling policy:
// earlier agents win contested resources every tick, and there is no
// fairness mechanism beyond it.
//
// The model is cooperative and single-threaded. Nothing here locks;
// callers serialize all access to a Manager, the way the daemon
// serializes its socket handlers and tick loop behind one mutex.
package fleet
