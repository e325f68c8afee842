// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleetcmd

import (
	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
)

// Command returns the "fleet" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "fleet",
		Summary: "Operate on the simulation as a whole",
		Description: `Commands for operating on the simulation as a whole: inspect daemon
status, pause and resume the clock, step time manually, change every
agent's speed at once, and list the current vertex and lane
reservations.`,
		Subcommands: []*cli.Command{
			statusCommand(),
			pauseCommand(),
			resumeCommand(),
			tickCommand(),
			setSpeedCommand(),
			occupancyCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Show daemon status",
				Command:     "switchyard fleet status",
			},
			{
				Description: "Freeze the simulation",
				Command:     "switchyard fleet pause",
			},
			{
				Description: "Advance one manual step of 250 simulated milliseconds",
				Command:     "switchyard fleet tick --dt-ms 250",
			},
			{
				Description: "See who holds what",
				Command:     "switchyard fleet occupancy",
			},
		},
	}
}
