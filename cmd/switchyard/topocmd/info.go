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

// infoParams holds the parameters for the topo info command.
type infoParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

// infoResult is the JSON output of the topo info command.
type infoResult struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
	Vertices    int    `json:"vertices"`
	Chargers    int    `json:"chargers"`
	Lanes       int    `json:"lanes"`
}

func infoCommand() *cli.Command {
	var params infoParams

	return &cli.Command{
		Name:    "info",
		Summary: "Summarize the loaded topology",
		Usage:   "switchyard topo info [flags]",
		Description: `Display the loaded topology's name, fingerprint, and size. The
fingerprint is a content hash of the map's vertices and lanes;
identical fingerprints mean identical maps regardless of file name.`,
		Examples: []cli.Example{
			{
				Description: "Summarize the loaded map",
				Command:     "switchyard topo info",
			},
			{
				Description: "Compare maps across two daemons",
				Command:     "switchyard topo info --json | jq .fingerprint",
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

			chargers := 0
			for _, vertex := range info.Vertices {
				if vertex.IsCharger {
					chargers++
				}
			}
			result := infoResult{
				Name:        info.Name,
				Fingerprint: info.Fingerprint,
				Vertices:    len(info.Vertices),
				Chargers:    chargers,
				Lanes:       len(info.Lanes),
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "Topology:\t%s\n", result.Name)
			fmt.Fprintf(writer, "Fingerprint:\t%s\n", result.Fingerprint)
			fmt.Fprintf(writer, "Vertices:\t%d\n", result.Vertices)
			fmt.Fprintf(writer, "Chargers:\t%d\n", result.Chargers)
			fmt.Fprintf(writer, "Lanes:\t%d\n", result.Lanes)
			writer.Flush()
			return nil
		},
	}
}
