// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration.
//
// Switchyard uses two serialization formats with a clear boundary:
//
//   - JSON for what people touch: topology documents on disk (JSONC),
//     daemon configuration (YAML), and CLI --json output.
//   - CBOR for the wire: every request and response on the daemon's
//     control socket.
//
// This package holds the shared encoding and decoding modes so every
// package encodes identically without duplicating configuration. The
// encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (the control socket):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// # Struct Tag Rules
//
// The struct tag on a type documents its serialization contract:
//
//   - `cbor` tag: the type is only ever serialized as CBOR and never
//     appears in JSON output.
//   - `json` tag: the type serves both JSON and CBOR. fxamacker/cbor
//     reads `json` tags as a fallback when `cbor` tags are absent, so
//     one tag controls field naming and omitempty for both formats.
//     The socket protocol types are in this category: the CLI prints
//     them as JSON and the socket carries them as CBOR.
//
// Never put both tags on one field; the choice of tag is what records
// the contract.
package codec
