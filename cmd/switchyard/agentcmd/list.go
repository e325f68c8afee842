// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// listParams holds the parameters for the list command.
type listParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List every agent in the fleet",
		Usage:   "switchyard agent list [flags]",
		Description: `List all agents with their state, position, and destination. Agents
are ordered by ID.`,
		Examples: []cli.Example{
			{
				Description: "List all agents",
				Command:     "switchyard agent list",
			},
			{
				Description: "List all agents as JSON",
				Command:     "switchyard agent list --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			var list schema.AgentList
			if err := params.Call(schema.ActionAgents, nil, &list); err != nil {
				return fmt.Errorf("listing agents: %w", err)
			}

			if done, err := params.EmitJSON(list); done {
				return err
			}

			if len(list.Agents) == 0 {
				fmt.Fprintln(os.Stderr, "No agents.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "ID\tSTATE\tVERTEX\tPOSITION\tDEST\tSPEED\tCOLOR\n")
			for _, agent := range list.Agents {
				destination := "-"
				if agent.Destination != nil {
					destination = strconv.Itoa(*agent.Destination)
				}
				fmt.Fprintf(writer, "%d\t%s\t%s\t(%.2f, %.2f)\t%s\t%g\t%s\n",
					agent.ID,
					agent.State,
					formatVertex(agent.VertexName, agent.Vertex),
					agent.X,
					agent.Y,
					destination,
					agent.Speed,
					agent.Color,
				)
			}
			writer.Flush()
			return nil
		},
	}
}
