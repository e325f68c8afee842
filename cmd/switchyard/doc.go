// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Switchyard is the operator CLI for a running switchyard daemon. It
// provides subcommands for individual agents (agent spawn, assign,
// charge, remove), whole-simulation control (fleet status, pause,
// tick, occupancy), and topology inspection (topo info, show). All
// commands talk CBOR over the daemon's unix control socket.
package main
