// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/switchyard-project/switchyard/lib/clock"
	"github.com/switchyard-project/switchyard/lib/fleet"
	"github.com/switchyard-project/switchyard/lib/topology"
)

// Daemon is the core service state. One instance per process.
//
// mu serializes every socket handler and the tick loop: the fleet
// manager is single-threaded and all access goes through this lock.
// Handlers therefore observe the simulation between ticks, never in
// the middle of one.
type Daemon struct {
	mu      sync.Mutex
	manager *fleet.Manager

	topologyName string
	fingerprint  topology.Fingerprint

	// tickInterval is the automatic tick period. Zero means the loop
	// never runs and time advances only through the tick action.
	tickInterval time.Duration

	startedAt time.Time
	clock     clock.Clock
	logger    *slog.Logger
}

// runTickLoop advances the simulation at the configured interval until
// ctx is cancelled. The dt passed to each tick is the measured time
// between firings, not the nominal interval, so a loop that falls
// behind under load catches up instead of dilating simulated time.
func (d *Daemon) runTickLoop(ctx context.Context) {
	// Capture the baseline before the ticker exists: once the ticker
	// is registered the clock may fire immediately.
	last := d.clock.Now()
	ticker := d.clock.NewTicker(d.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			d.tick(dt)
		}
	}
}

// tick advances the simulation by dt seconds under the daemon lock.
func (d *Daemon) tick(dt float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.manager.Tick(dt)
}

// uptime reports how long the daemon has been running.
func (d *Daemon) uptime() time.Duration {
	return d.clock.Now().Sub(d.startedAt)
}
