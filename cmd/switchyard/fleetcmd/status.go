// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleetcmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// statusParams holds the parameters for the fleet status command.
type statusParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func statusCommand() *cli.Command {
	var params statusParams

	return &cli.Command{
		Name:    "status",
		Summary: "Show daemon and simulation status",
		Usage:   "switchyard fleet status [flags]",
		Description: `Display daemon health and simulation state: loaded topology, uptime,
tick progress, pause state, agent counts by state, and route cache
statistics.`,
		Examples: []cli.Example{
			{
				Description: "Show daemon status",
				Command:     "switchyard fleet status",
			},
			{
				Description: "Show daemon status as JSON",
				Command:     "switchyard fleet status --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			var status schema.StatusInfo
			if err := params.Call(schema.ActionStatus, nil, &status); err != nil {
				return fmt.Errorf("fetching status: %w", err)
			}

			if done, err := params.EmitJSON(status); done {
				return err
			}

			interval := "manual"
			if status.TickIntervalMS > 0 {
				interval = (time.Duration(status.TickIntervalMS) * time.Millisecond).String()
			}
			paused := "no"
			if status.Paused {
				paused = "yes"
			}
			agents := strconv.Itoa(status.Agents)
			if breakdown := formatStates(status.States); breakdown != "" {
				agents = fmt.Sprintf("%d (%s)", status.Agents, breakdown)
			}
			uptime := time.Duration(status.UptimeSeconds * float64(time.Second))

			fmt.Fprintf(os.Stderr, "Switchyard Daemon Status\n")
			fmt.Fprintf(os.Stderr, "  Topology:      %s (%s)\n", status.Topology, shortFingerprint(status.Fingerprint))
			fmt.Fprintf(os.Stderr, "  Map:           %d vertices, %d lanes\n", status.Vertices, status.Lanes)
			fmt.Fprintf(os.Stderr, "  Uptime:        %s\n", formatDuration(uptime))
			fmt.Fprintf(os.Stderr, "  Tick interval: %s\n", interval)
			fmt.Fprintf(os.Stderr, "  Ticks:         %d\n", status.Ticks)
			fmt.Fprintf(os.Stderr, "  Paused:        %s\n", paused)
			fmt.Fprintf(os.Stderr, "  Agents:        %s\n", agents)
			fmt.Fprintf(os.Stderr, "  Route cache:   %d entries, %d hits, %d misses\n",
				status.RouteCache.Entries, status.RouteCache.Hits, status.RouteCache.Misses)
			return nil
		},
	}
}

// stateOrder fixes the display order of the agent state breakdown.
// Map iteration would shuffle the line between invocations.
var stateOrder = []string{"MOVING", "WAITING", "IDLE", "CHARGING", "TASK_COMPLETE"}

// formatStates renders non-zero state counts as "2 MOVING, 1 IDLE".
// Returns "" when every count is zero.
func formatStates(states map[string]int) string {
	parts := make([]string, 0, len(states))
	for _, state := range stateOrder {
		if count := states[state]; count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, state))
		}
	}
	return strings.Join(parts, ", ")
}

// shortFingerprint trims a hex topology fingerprint to the
// 12-character form used in status lines.
func shortFingerprint(fingerprint string) string {
	if len(fingerprint) > 12 {
		return fingerprint[:12]
	}
	return fingerprint
}

// formatDuration formats a duration as a human-readable string with
// days, hours, minutes, and seconds.
func formatDuration(duration time.Duration) string {
	days := int(duration.Hours()) / 24
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
