// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Switchyard-daemon is the simulation service. It owns the fleet: the
// navigation graph loaded from a topology file, every agent, the
// reservation ledger, and the tick loop that advances movement. All
// control flows through a Unix socket using the CBOR protocol; the
// switchyard CLI is the usual client.
//
// # Startup
//
// The daemon reads a YAML configuration file named by --config (no
// search-path discovery; deployments say exactly which file they run
// from). It loads the topology, builds the graph and the fleet
// manager, binds the control socket, and starts ticking at the
// configured interval. A tick_interval_ms of zero disables automatic
// ticking entirely; time then advances only through the "tick" action,
// which is how tests and stepped deployments drive the simulation.
//
// # Concurrency
//
// The simulation core is single-threaded on purpose. Socket handlers
// and the tick loop all serialize on one mutex, so every action
// observes the fleet between ticks, never mid-tick. The socket server
// itself accepts connections concurrently; only the simulation access
// is serialized.
//
// # Socket API
//
// Clients connect to the control socket and send one CBOR request per
// connection. The "action" field determines the operation: spawn,
// assign, charge, stop-charging, remove, reclaim, set-speed, pause,
// resume, tick, status, agents, agent, map, occupancy. Refused
// operations carry a stable error code (unknown-agent,
// vertex-occupied, no-route, ...) so clients can react without
// parsing prose.
package main
