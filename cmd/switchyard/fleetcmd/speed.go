// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleetcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// setSpeedParams holds the parameters for the fleet set-speed command.
type setSpeedParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func setSpeedCommand() *cli.Command {
	var params setSpeedParams

	return &cli.Command{
		Name:    "set-speed",
		Summary: "Set every agent's cruise speed",
		Usage:   "switchyard fleet set-speed <speed> [flags]",
		Description: `Set every agent's cruise speed in distance units per second. The
speed must be positive; lane speed limits still cap the effective
speed on each lane. Use "switchyard agent set-speed" for a single
agent.`,
		Examples: []cli.Example{
			{
				Description: "Slow the whole fleet to half a unit per second",
				Command:     "switchyard fleet set-speed 0.5",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("speed required\n\nUsage: switchyard fleet set-speed <speed> [flags]")
			}
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}
			speed, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid speed %q", args[0])
			}

			var result schema.SpeedResult
			if err := params.Call(schema.ActionSetSpeed, map[string]any{"speed": speed}, &result); err != nil {
				return fmt.Errorf("setting fleet speed: %w", err)
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Fleet speed set to %g (%d agents affected).\n", result.Speed, result.Affected)
			return nil
		},
	}
}
