// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleetcmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// occupancyParams holds the parameters for the occupancy command.
type occupancyParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func occupancyCommand() *cli.Command {
	var params occupancyParams

	return &cli.Command{
		Name:    "occupancy",
		Summary: "List held vertices and lanes",
		Usage:   "switchyard fleet occupancy [flags]",
		Description: `List every held vertex and lane with the agent ID holding it,
ordered by vertex and by lane endpoints. Holdings of removed agents
appear until reclaimed; that is how stale reservations are found.`,
		Examples: []cli.Example{
			{
				Description: "See who holds what",
				Command:     "switchyard fleet occupancy",
			},
			{
				Description: "Occupancy as JSON",
				Command:     "switchyard fleet occupancy --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			var info schema.OccupancyInfo
			if err := params.Call(schema.ActionOccupancy, nil, &info); err != nil {
				return fmt.Errorf("fetching occupancy: %w", err)
			}

			if done, err := params.EmitJSON(info); done {
				return err
			}

			if len(info.Vertices) == 0 && len(info.Lanes) == 0 {
				fmt.Fprintln(os.Stderr, "Nothing is held.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			if len(info.Vertices) > 0 {
				fmt.Fprintf(writer, "VERTEX\tHOLDER\n")
				for _, hold := range info.Vertices {
					fmt.Fprintf(writer, "%d\t%d\n", hold.Vertex, hold.Holder)
				}
			}
			if len(info.Lanes) > 0 {
				if len(info.Vertices) > 0 {
					fmt.Fprintln(writer)
				}
				fmt.Fprintf(writer, "LANE\tHOLDER\n")
				for _, hold := range info.Lanes {
					fmt.Fprintf(writer, "%d-%d\t%d\n", hold.A, hold.B, hold.Holder)
				}
			}
			writer.Flush()
			return nil
		},
	}
}
