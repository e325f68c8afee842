// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the control socket plumbing shared by the
// daemon and the CLI.
//
// The protocol is CBOR request-response over a Unix socket. Each
// connection carries exactly one request and one response: the client
// writes a CBOR map containing at least an "action" field, the server
// routes it to the registered handler, writes a Response envelope,
// and closes. CBOR is self-delimiting, so there is no framing layer.
//
//   - [SocketServer] is the daemon side: register handlers with
//     Handle, then Serve until the context is cancelled.
//   - [Client] is the CLI side: Call marshals the request, reads the
//     envelope, and decodes the data payload into the caller's type.
//
// Failures travel with a stable machine-readable code alongside the
// human-readable message. Handlers return [*Error] to set the code;
// the client surfaces it as [*ServiceError] so callers classify with
// errors.As instead of string matching.
//
// The socket has no authentication layer. Filesystem permissions on
// the socket path decide who can drive the fleet, the same way they
// decide who can read the daemon's configuration.
package service
