// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package navgraph

import (
	"encoding/binary"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/blake3"
)

// occupancyDomainKey is the BLAKE3 keyed-hash domain for occupancy
// digests. The byte values are the ASCII encoding of the domain name,
// zero-padded to 32 bytes, so the key is inspectable in hex dumps.
var occupancyDomainKey = [32]byte{
	's', 'w', 'i', 't', 'c', 'h', 'y', 'a', 'r', 'd', '.',
	'n', 'a', 'v', 'g', 'r', 'a', 'p', 'h', '.',
	'o', 'c', 'c', 'u', 'p', 'a', 'n', 'c', 'y', 0, 0, 0,
}

// Digest returns the BLAKE3 keyed hash of the set's IDs in sorted
// order, so the digest is independent of map iteration order. Two
// sets digest equal exactly when they contain the same IDs.
func (s VertexSet) Digest() [32]byte {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	hasher, err := blake3.NewKeyed(occupancyDomainKey[:])
	if err != nil {
		panic("navgraph: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	var buf [8]byte
	for _, id := range ids {
		binary.BigEndian.PutUint64(buf[:], uint64(id))
		hasher.Write(buf[:])
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// routeKey identifies one route query: endpoints plus the occupancy
// digest at query time.
type routeKey struct {
	start, goal VertexID
	occupancy   [32]byte
}

// PathCache memoizes FindPath results in a fixed-capacity LRU. The
// graph is immutable, so an entry stays valid for every later query
// with the same endpoints and occupied set; unreachable results are
// cached too, which pays off when a blocked agent retries the same
// query tick after tick.
//
// The hit and miss counters are unsynchronized: callers serialize
// access the same way the fleet manager is serialized.
type PathCache struct {
	graph   *Graph
	entries *lru.Cache[routeKey, []VertexID]
	hits    uint64
	misses  uint64
}

// NewPathCache creates a cache over g holding up to capacity routes.
// A capacity of zero or less disables memoization: FindPath falls
// through to the graph on every call.
func NewPathCache(g *Graph, capacity int) *PathCache {
	cache := &PathCache{graph: g}
	if capacity > 0 {
		entries, err := lru.New[routeKey, []VertexID](capacity)
		if err != nil {
			panic("navgraph: LRU initialization failed: " + err.Error())
		}
		cache.entries = entries
	}
	return cache
}

// FindPath returns the same result as Graph.FindPath, serving
// repeated queries from the memo. The returned slice is the caller's
// to keep and mutate.
func (c *PathCache) FindPath(start, goal VertexID, occupied VertexSet) []VertexID {
	if c.entries == nil {
		return c.graph.FindPath(start, goal, occupied)
	}

	key := routeKey{start: start, goal: goal, occupancy: occupied.Digest()}
	if path, ok := c.entries.Get(key); ok {
		c.hits++
		return clonePath(path)
	}

	c.misses++
	path := c.graph.FindPath(start, goal, occupied)
	c.entries.Add(key, clonePath(path))
	return path
}

// Stats reports the hit and miss counts since construction.
func (c *PathCache) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

// Len returns the number of memoized routes.
func (c *PathCache) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}

func clonePath(path []VertexID) []VertexID {
	if path == nil {
		return nil
	}
	return append([]VertexID(nil), path...)
}
