// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package topocmd

import (
	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
)

// Command returns the "topo" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "topo",
		Summary: "Inspect the loaded topology",
		Description: `Commands for inspecting the topology the daemon loaded at startup.
The map never changes while the daemon runs; swap maps by restarting
the daemon with a different topology file.`,
		Subcommands: []*cli.Command{
			infoCommand(),
			showCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Summarize the loaded map",
				Command:     "switchyard topo info",
			},
			{
				Description: "Dump every vertex and lane",
				Command:     "switchyard topo show",
			},
		},
	}
}
