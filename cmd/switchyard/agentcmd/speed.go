// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// setSpeedParams holds the parameters for the set-speed command.
type setSpeedParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func setSpeedCommand() *cli.Command {
	var params setSpeedParams

	return &cli.Command{
		Name:    "set-speed",
		Summary: "Set one agent's cruise speed",
		Usage:   "switchyard agent set-speed <agent> <speed> [flags]",
		Description: `Set a single agent's cruise speed in distance units per second.
The speed must be positive; lane speed limits still cap the
effective speed on each lane. Use "switchyard fleet set-speed" to
change every agent at once.`,
		Examples: []cli.Example{
			{
				Description: "Slow agent 1 to half a unit per second",
				Command:     "switchyard agent set-speed 1 0.5",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("agent ID and speed required\n\nUsage: switchyard agent set-speed <agent> <speed> [flags]")
			}
			if len(args) > 2 {
				return fmt.Errorf("unexpected argument: %s", args[2])
			}
			agentID, err := parseID("agent", args[0])
			if err != nil {
				return err
			}
			speed, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid speed %q", args[1])
			}

			var result schema.SpeedResult
			fields := map[string]any{"agent": agentID, "speed": speed}
			if err := params.Call(schema.ActionSetSpeed, fields, &result); err != nil {
				return fmt.Errorf("setting speed: %w", err)
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Agent %d speed set to %g.\n", agentID, result.Speed)
			return nil
		},
	}
}
