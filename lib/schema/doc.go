// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the wire contract between the Switchyard
// daemon and its clients: the control socket action names, the
// machine-readable error codes those actions can fail with, and the
// Go structs for response payloads.
//
// Action constants (Action*) are the strings clients place in the
// request's "action" field. Error code constants (Code*) appear in
// the "code" field of failure responses; transport-level codes
// (bad-request, unknown-action, internal) are defined in lib/service
// next to the server that produces them.
//
// Response types are serialized as CBOR on the socket and re-emitted
// as JSON by the CLI's --json mode. JSON struct tags are used so that
// the fxamacker/cbor library's json-tag fallback provides correct
// field naming for both formats (see lib/codec doc.go for the tagging
// convention). Request payloads are small enough that clients send
// plain field maps; their field names are documented on each action
// constant.
//
// This package depends on no other Switchyard packages.
package schema
