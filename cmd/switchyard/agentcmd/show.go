// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// showParams holds the parameters for the show command.
type showParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show one agent in detail",
		Usage:   "switchyard agent show <agent> [flags]",
		Description: `Display one agent's full state: lifecycle state, position, speed,
and the active route when a task is in flight.`,
		Examples: []cli.Example{
			{
				Description: "Inspect agent 0",
				Command:     "switchyard agent show 0",
			},
			{
				Description: "Inspect agent 0 as JSON",
				Command:     "switchyard agent show 0 --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			agentID, err := singleAgentArg("show", args)
			if err != nil {
				return err
			}

			var agent schema.AgentInfo
			if err := params.Call(schema.ActionAgent, map[string]any{"agent": agentID}, &agent); err != nil {
				return fmt.Errorf("showing agent: %w", err)
			}

			if done, err := params.EmitJSON(agent); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "Agent:\t%d\n", agent.ID)
			fmt.Fprintf(writer, "State:\t%s\n", agent.State)
			fmt.Fprintf(writer, "Vertex:\t%s\n", formatVertex(agent.VertexName, agent.Vertex))
			if agent.Previous != nil {
				fmt.Fprintf(writer, "Previous:\t%d\n", *agent.Previous)
			}
			fmt.Fprintf(writer, "Position:\t(%.2f, %.2f)\n", agent.X, agent.Y)
			fmt.Fprintf(writer, "Speed:\t%g\n", agent.Speed)
			fmt.Fprintf(writer, "Color:\t%s\n", agent.Color)

			if agent.Destination != nil {
				fmt.Fprintf(writer, "\nRoute:\n")
				fmt.Fprintf(writer, "  Destination:\t%d\n", *agent.Destination)
				fmt.Fprintf(writer, "  Path:\t%s\n", formatPath(agent.Path))
				if len(agent.Path) > 0 {
					fmt.Fprintf(writer, "  Progress:\t%.0f%% along lane to %d\n",
						agent.Progress*100, agent.Path[0])
				}
			}
			writer.Flush()
			return nil
		},
	}
}
