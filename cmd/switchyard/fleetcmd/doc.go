// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package fleetcmd implements the "switchyard fleet" subcommand group:
// whole-simulation operations against a running daemon. It covers the
// status summary, pausing and resuming the clock, manual tick
// stepping, fleet-wide speed changes, and the reservation occupancy
// view.
//
// Commands connect over the daemon control socket (--socket, or the
// SWITCHYARD_SOCKET environment variable) and support --json for
// machine-readable output.
package fleetcmd
