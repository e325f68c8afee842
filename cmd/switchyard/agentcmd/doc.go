// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package agentcmd implements the "switchyard agent" CLI subcommand
// group for operating on individual agents: spawning, task
// assignment, charging, speed changes, removal, and inspection.
//
// Commands connect to the simulation daemon's control socket. The
// socket path defaults to the standard daemon location and can be
// overridden with --socket or the SWITCHYARD_SOCKET environment
// variable. Every command supports --json for machine-readable
// output.
package agentcmd
