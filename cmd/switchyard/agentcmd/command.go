// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
)

// Command returns the "agent" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "agent",
		Summary: "Operate on individual agents",
		Description: `Commands for operating on individual agents: spawn one onto the map,
give it a destination, start or stop charging, change its speed, and
remove it from the fleet.

Vertices and agents are addressed by integer ID. Removing an agent
does not release the vertex and lanes it held; reclaim them explicitly
once whatever occupied the agent's physical footprint is cleared.`,
		Subcommands: []*cli.Command{
			spawnCommand(),
			assignCommand(),
			chargeCommand(),
			stopChargingCommand(),
			removeCommand(),
			reclaimCommand(),
			setSpeedCommand(),
			showCommand(),
			listCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Spawn an agent at vertex 3",
				Command:     "switchyard agent spawn 3",
			},
			{
				Description: "Send agent 0 to vertex 7",
				Command:     "switchyard agent assign 0 7",
			},
			{
				Description: "List every agent",
				Command:     "switchyard agent list",
			},
			{
				Description: "Show agent 0 in detail, as JSON",
				Command:     "switchyard agent show 0 --json",
			},
			{
				Description: "Remove agent 0 and free its reservations",
				Command:     "switchyard agent remove 0 && switchyard agent reclaim 0",
			},
		},
	}
}

// parseID parses a positional integer ID, naming the argument in the
// error so "invalid agent ID" and "invalid vertex ID" read naturally.
func parseID(kind, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID %q", kind, raw)
	}
	return id, nil
}

// formatVertex renders a vertex as "name (id)" for text output.
func formatVertex(name string, id int) string {
	return fmt.Sprintf("%s (%d)", name, id)
}

// formatPath renders the remaining hops as "1 -> 4 -> 7".
func formatPath(path []int) string {
	if len(path) == 0 {
		return "-"
	}
	parts := make([]string, len(path))
	for i, vertex := range path {
		parts[i] = strconv.Itoa(vertex)
	}
	return strings.Join(parts, " -> ")
}
