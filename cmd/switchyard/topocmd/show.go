// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package topocmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// showParams holds the parameters for the topo show command.
type showParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "List every vertex and lane",
		Usage:   "switchyard topo show [flags]",
		Description: `Dump the full topology: every vertex with its position and charger
flag, and every lane with its length and speed limit. Lanes are
listed once with endpoints in ascending order; travel is permitted
in both directions.`,
		Examples: []cli.Example{
			{
				Description: "Dump every vertex and lane",
				Command:     "switchyard topo show",
			},
			{
				Description: "Dump the map as JSON",
				Command:     "switchyard topo show --json",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			var info schema.MapInfo
			if err := params.Call(schema.ActionMap, nil, &info); err != nil {
				return fmt.Errorf("fetching topology: %w", err)
			}

			if done, err := params.EmitJSON(info); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "VERTEX\tNAME\tPOSITION\tCHARGER\n")
			for _, vertex := range info.Vertices {
				charger := "-"
				if vertex.IsCharger {
					charger = "yes"
				}
				fmt.Fprintf(writer, "%d\t%s\t(%.2f, %.2f)\t%s\n",
					vertex.ID, vertex.Name, vertex.X, vertex.Y, charger)
			}

			fmt.Fprintln(writer)
			fmt.Fprintf(writer, "LANE\tLENGTH\tLIMIT\n")
			for _, lane := range info.Lanes {
				limit := "-"
				if lane.SpeedLimit > 0 {
					limit = fmt.Sprintf("%g", lane.SpeedLimit)
				}
				fmt.Fprintf(writer, "%d-%d\t%.2f\t%s\n", lane.A, lane.B, lane.Length, limit)
			}
			writer.Flush()
			return nil
		},
	}
}
