// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/switchyard-project/switchyard/cmd/switchyard/agentcmd"
	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/cmd/switchyard/fleetcmd"
	"github.com/switchyard-project/switchyard/cmd/switchyard/topocmd"
	"github.com/switchyard-project/switchyard/lib/process"
	"github.com/switchyard-project/switchyard/lib/version"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}

// rootCommand builds the complete switchyard CLI command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "switchyard",
		Description: `Switchyard: collision-free movement simulation for vehicle fleets.

Drive a running switchyard daemon: spawn agents onto the map, give
them destinations, step or pause simulated time, and inspect which
agent holds which piece of track.`,
		Subcommands: []*cli.Command{
			agentcmd.Command(),
			fleetcmd.Command(),
			topocmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("switchyard %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Check the daemon is up and see the loaded map",
				Command:     "switchyard fleet status",
			},
			{
				Description: "Spawn an agent and send it somewhere",
				Command:     "switchyard agent spawn 3 && switchyard agent assign 0 7",
			},
			{
				Description: "Watch the fleet",
				Command:     "watch switchyard agent list",
			},
			{
				Description: "Talk to a daemon on a non-default socket",
				Command:     "switchyard fleet status --socket /tmp/switchyard.sock",
			},
		},
	}
}
