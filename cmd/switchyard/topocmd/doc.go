// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package topocmd implements the "switchyard topo" subcommand group:
// inspection of the topology loaded by a running daemon. The daemon's
// map is immutable for its lifetime, so these commands answer from
// whatever was loaded at startup; the fingerprint identifies exactly
// which map that is.
//
// Commands connect over the daemon control socket (--socket, or the
// SWITCHYARD_SOCKET environment variable) and support --json for
// machine-readable output.
package topocmd
