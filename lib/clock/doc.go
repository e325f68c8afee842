// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Anything that ticks, sleeps, or reads the wall clock accepts a
// Clock instead of calling the time package directly: Real() in
// production, Fake() in tests. The fake advances only under test
// control, so time-driven behavior (the simulation tick loop above
// all) is tested without real sleeping.
//
// The synchronization pattern for goroutines that wait on the fake:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go runLoop(c)          // registers a ticker or sleep
//	c.WaitForTimers(1)     // block until the waiter is registered
//	c.Advance(time.Second) // fire it deterministically
//
// WaitForTimers removes the race between a goroutine registering its
// timer and the test advancing past the deadline.
package clock
