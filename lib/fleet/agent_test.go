// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleet

import (
	"errors"
	"testing"

	"github.com/switchyard-project/switchyard/lib/navgraph"
)

// testGrid builds the six-vertex network shared by the package tests:
//
//	0-1-2
//	|   |
//	3-4-5
//
// Every lane has unit length. Lane 1-2 carries a 0.5 speed limit,
// vertex 0 is named "dock", and vertex 2 is a charging station.
func testGrid(t *testing.T) *navgraph.Graph {
	t.Helper()
	g, err := navgraph.New(
		[]navgraph.Vertex{
			{X: 0, Y: 0, Name: "dock"},
			{X: 1, Y: 0},
			{X: 2, Y: 0, Charger: true},
			{X: 0, Y: 1},
			{X: 1, Y: 1},
			{X: 2, Y: 1},
		},
		[]navgraph.Lane{
			{A: 0, B: 1},
			{A: 1, B: 2, SpeedLimit: 0.5},
			{A: 0, B: 3},
			{A: 2, B: 5},
			{A: 3, B: 4},
			{A: 4, B: 5},
		},
	)
	if err != nil {
		t.Fatalf("building test graph: %v", err)
	}
	return g
}

func TestNewAgentDefaults(t *testing.T) {
	t.Parallel()

	a := newAgent(3, 5)
	if got, want := a.ID(), AgentID(3); got != want {
		t.Errorf("ID() = %d, want %d", got, want)
	}
	if got, want := a.State(), StateIdle; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
	if got, want := a.CurrentVertex(), navgraph.VertexID(5); got != want {
		t.Errorf("CurrentVertex() = %d, want %d", got, want)
	}
	if _, ok := a.PreviousVertex(); ok {
		t.Error("new agent reports a previous vertex")
	}
	if _, ok := a.Destination(); ok {
		t.Error("new agent reports a destination")
	}
	if got := a.Path(); len(got) != 0 {
		t.Errorf("Path() = %v, want empty", got)
	}
	if got, want := a.Speed(), DefaultSpeed; got != want {
		t.Errorf("Speed() = %v, want %v", got, want)
	}
	if got, want := a.Color(), agentPalette[3]; got != want {
		t.Errorf("Color() = %q, want %q", got, want)
	}
}

func TestAgentColorWrapsPalette(t *testing.T) {
	t.Parallel()

	if got, want := newAgent(12, 0).Color(), agentPalette[2]; got != want {
		t.Errorf("Color() = %q, want %q", got, want)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		state State
		want  string
	}{
		{StateIdle, "IDLE"},
		{StateMoving, "MOVING"},
		{StateWaiting, "WAITING"},
		{StateCharging, "CHARGING"},
		{StateTaskComplete, "TASK_COMPLETE"},
		{State(99), "State(99)"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tc.state), got, tc.want)
		}
	}
}

func TestBeginTaskInstallsRoute(t *testing.T) {
	t.Parallel()

	a := newAgent(0, 0)
	a.progress = 0.7
	a.BeginTask([]navgraph.VertexID{1, 2})

	if got, want := a.State(), StateMoving; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
	dest, ok := a.Destination()
	if !ok || dest != 2 {
		t.Errorf("Destination() = %d, %t, want 2, true", dest, ok)
	}
	if got := a.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0 after new task", got)
	}
	if got := a.Path(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Path() = %v, want [1 2]", got)
	}
}

func TestChargingTransitions(t *testing.T) {
	t.Parallel()

	a := newAgent(0, 2)
	if err := a.StartCharging(); err != nil {
		t.Fatalf("StartCharging() from IDLE: %v", err)
	}
	if got, want := a.State(), StateCharging; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
	if err := a.StartCharging(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("StartCharging() while charging = %v, want ErrNotIdle", err)
	}
	if err := a.StopCharging(); err != nil {
		t.Fatalf("StopCharging(): %v", err)
	}
	if got, want := a.State(), StateIdle; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
	if err := a.StopCharging(); !errors.Is(err, ErrNotCharging) {
		t.Errorf("StopCharging() while idle = %v, want ErrNotCharging", err)
	}

	a.BeginTask([]navgraph.VertexID{1})
	if err := a.StartCharging(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("StartCharging() while moving = %v, want ErrNotIdle", err)
	}
}

func TestPauseResume(t *testing.T) {
	t.Parallel()

	a := newAgent(0, 0)
	if a.Pause() {
		t.Error("Pause() on idle agent reported a change")
	}
	if a.Resume() {
		t.Error("Resume() on idle agent reported a change")
	}

	a.BeginTask([]navgraph.VertexID{1})
	if !a.Pause() {
		t.Error("Pause() on moving agent reported no change")
	}
	if got, want := a.State(), StateWaiting; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
	if !a.Resume() {
		t.Error("Resume() on waiting agent reported no change")
	}
	if got, want := a.State(), StateMoving; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func TestSetSpeedValidation(t *testing.T) {
	t.Parallel()

	a := newAgent(0, 0)
	if err := a.SetSpeed(2.5); err != nil {
		t.Fatalf("SetSpeed(2.5): %v", err)
	}
	if got := a.Speed(); got != 2.5 {
		t.Errorf("Speed() = %v, want 2.5", got)
	}
	if err := a.SetSpeed(0); !errors.Is(err, ErrBadSpeed) {
		t.Errorf("SetSpeed(0) = %v, want ErrBadSpeed", err)
	}
	if err := a.SetSpeed(-1); !errors.Is(err, ErrBadSpeed) {
		t.Errorf("SetSpeed(-1) = %v, want ErrBadSpeed", err)
	}
	if got := a.Speed(); got != 2.5 {
		t.Errorf("Speed() = %v after rejected updates, want 2.5", got)
	}
}

func TestAdvancePartialThenSnap(t *testing.T) {
	t.Parallel()
	g := testGrid(t)

	a := newAgent(0, 0)
	a.BeginTask([]navgraph.VertexID{1})

	if a.Advance(g, 0.5) {
		t.Fatal("Advance(0.5) on unit lane snapped early")
	}
	if got := a.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", got)
	}
	if x, y := a.Position(g); x != 0.5 || y != 0 {
		t.Errorf("Position() = (%v, %v), want (0.5, 0)", x, y)
	}

	if !a.Advance(g, 0.5) {
		t.Fatal("Advance(0.5) at midpoint did not snap")
	}
	if got, want := a.CurrentVertex(), navgraph.VertexID(1); got != want {
		t.Errorf("CurrentVertex() = %d, want %d", got, want)
	}
	prev, ok := a.PreviousVertex()
	if !ok || prev != 0 {
		t.Errorf("PreviousVertex() = %d, %t, want 0, true", prev, ok)
	}
	if got := a.Progress(); got != 0 {
		t.Errorf("Progress() = %v after snap, want 0", got)
	}
	// Advance never pops the path; arrival bookkeeping is the
	// manager's job.
	if got := a.Path(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Path() = %v after snap, want [1]", got)
	}
}

func TestAdvanceDiscardsOvershoot(t *testing.T) {
	t.Parallel()
	g := testGrid(t)

	a := newAgent(0, 0)
	a.BeginTask([]navgraph.VertexID{1})
	if !a.Advance(g, 10) {
		t.Fatal("Advance(10) did not snap")
	}
	if got, want := a.CurrentVertex(), navgraph.VertexID(1); got != want {
		t.Errorf("CurrentVertex() = %d, want %d (one hop only)", got, want)
	}
	if got := a.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0 (overshoot discarded)", got)
	}
}

func TestAdvanceHonorsSpeedLimit(t *testing.T) {
	t.Parallel()
	g := testGrid(t)

	// Lane 1-2 is limited to 0.5; the nominal speed of 1.0 is capped.
	a := newAgent(0, 1)
	a.BeginTask([]navgraph.VertexID{2})
	if a.Advance(g, 1) {
		t.Fatal("Advance(1) snapped despite the lane limit")
	}
	if got := a.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", got)
	}

	// A nominal speed below the limit is not raised to it.
	slow := newAgent(1, 1)
	if err := slow.SetSpeed(0.25); err != nil {
		t.Fatalf("SetSpeed(0.25): %v", err)
	}
	slow.BeginTask([]navgraph.VertexID{2})
	if slow.Advance(g, 1) {
		t.Fatal("Advance(1) snapped at quarter speed")
	}
	if got := slow.Progress(); got != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", got)
	}
}

func TestAdvanceZeroDt(t *testing.T) {
	t.Parallel()
	g := testGrid(t)

	a := newAgent(0, 0)
	a.BeginTask([]navgraph.VertexID{1})
	if a.Advance(g, 0) {
		t.Fatal("Advance(0) snapped on a unit lane")
	}
	if got := a.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0", got)
	}
}

func TestAdvanceZeroLengthHop(t *testing.T) {
	t.Parallel()

	// The degenerate in-place hop has zero remaining distance and
	// snaps even with no time elapsed.
	g := testGrid(t)
	a := newAgent(0, 4)
	a.BeginTask([]navgraph.VertexID{4})
	if !a.Advance(g, 0) {
		t.Fatal("Advance(0) did not snap an in-place hop")
	}
	if got, want := a.CurrentVertex(), navgraph.VertexID(4); got != want {
		t.Errorf("CurrentVertex() = %d, want %d", got, want)
	}
}

func TestAdvanceRequiresMovingState(t *testing.T) {
	t.Parallel()
	g := testGrid(t)

	a := newAgent(0, 0)
	if a.Advance(g, 1) {
		t.Error("Advance() moved an agent with no task")
	}

	a.BeginTask([]navgraph.VertexID{1})
	a.Pause()
	if a.Advance(g, 1) {
		t.Error("Advance() moved a waiting agent")
	}
	if got := a.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0", got)
	}
}

func TestPositionAtVertex(t *testing.T) {
	t.Parallel()
	g := testGrid(t)

	a := newAgent(0, 5)
	if x, y := a.Position(g); x != 2 || y != 1 {
		t.Errorf("Position() = (%v, %v), want (2, 1)", x, y)
	}
}
