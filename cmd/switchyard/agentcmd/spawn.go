// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// spawnParams holds the parameters for the spawn command.
type spawnParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func spawnCommand() *cli.Command {
	var params spawnParams

	return &cli.Command{
		Name:    "spawn",
		Summary: "Place a new agent on a vertex",
		Usage:   "switchyard agent spawn <vertex> [flags]",
		Description: `Place a new agent on the given vertex. The agent comes up idle,
holding a reservation on its spawn vertex, with a fleet-unique ID and
a display color assigned by the daemon.

Spawning is refused when the vertex is already held, including by a
removed agent whose holdings have not been reclaimed.`,
		Examples: []cli.Example{
			{
				Description: "Spawn an agent at vertex 3",
				Command:     "switchyard agent spawn 3",
			},
			{
				Description: "Spawn and capture the assigned ID",
				Command:     "switchyard agent spawn 3 --json | jq .id",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("vertex ID required\n\nUsage: switchyard agent spawn <vertex> [flags]")
			}
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}
			vertex, err := parseID("vertex", args[0])
			if err != nil {
				return err
			}

			var agent schema.AgentInfo
			if err := params.Call(schema.ActionSpawn, map[string]any{"vertex": vertex}, &agent); err != nil {
				return fmt.Errorf("spawning agent: %w", err)
			}

			if done, err := params.EmitJSON(agent); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Spawned agent %d at %s.\n",
				agent.ID, formatVertex(agent.VertexName, agent.Vertex))
			return nil
		},
	}
}
