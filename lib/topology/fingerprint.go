// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package topology

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/zeebo/blake3"
)

// documentDomainKey is the BLAKE3 keyed-hash domain for topology
// fingerprints. The byte values are the ASCII encoding of the domain
// name, zero-padded to 32 bytes, so the key is inspectable in hex
// dumps.
var documentDomainKey = [32]byte{
	's', 'w', 'i', 't', 'c', 'h', 'y', 'a', 'r', 'd', '.',
	't', 'o', 'p', 'o', 'l', 'o', 'g', 'y', '.',
	'd', 'o', 'c', 'u', 'm', 'e', 'n', 't', 0, 0, 0, 0,
}

// Fingerprint is a 32-byte BLAKE3 keyed digest of a document's parsed
// content.
type Fingerprint [32]byte

// String returns the fingerprint as lowercase hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 12 hex characters, for logs and status
// lines.
func (f Fingerprint) Short() string {
	return f.String()[:12]
}

// MarshalText implements encoding.TextMarshaler. Fingerprints travel
// as hex text in both JSON and CBOR payloads.
func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fingerprint) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(f) {
		return fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), len(f))
	}
	copy(f[:], decoded)
	return nil
}

// Fingerprint digests the parsed building name, vertices, and lanes.
// Comments, formatting, and unknown attributes in the source file do
// not affect it; coordinates, names, charger flags, lane endpoints,
// and speed limits do. Two documents with the same fingerprint
// describe the same travel network.
func (d *Document) Fingerprint() Fingerprint {
	hasher, err := blake3.NewKeyed(documentDomainKey[:])
	if err != nil {
		panic("topology: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var buf [8]byte
	writeInt := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		hasher.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		hasher.Write(buf[:])
	}

	writeInt(len(d.BuildingName))
	hasher.Write([]byte(d.BuildingName))

	writeInt(len(d.Vertices))
	for _, vertex := range d.Vertices {
		writeFloat(vertex.X)
		writeFloat(vertex.Y)
		writeInt(len(vertex.Name))
		hasher.Write([]byte(vertex.Name))
		if vertex.Charger {
			hasher.Write([]byte{1})
		} else {
			hasher.Write([]byte{0})
		}
	}
	writeInt(len(d.Lanes))
	for _, lane := range d.Lanes {
		writeInt(int(lane.A))
		writeInt(int(lane.B))
		writeFloat(lane.SpeedLimit)
	}

	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}
