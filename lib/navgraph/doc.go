// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package navgraph models the static travel network: vertices with
// layout positions, undirected lanes connecting them, and
// occupancy-aware shortest-path search.
//
// A Graph is immutable after construction. Route queries take the
// current vertex occupancy as a parameter, so the same graph serves
// every agent and every tick. PathCache adds an LRU memo over
// FindPath keyed by the query and an occupancy digest; because the
// graph never changes, cached routes stay valid for identical
// occupancy forever.
package navgraph
