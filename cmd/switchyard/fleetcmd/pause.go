// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleetcmd

import (
	"fmt"
	"os"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// --- pause ---

// pauseParams holds the parameters for the pause command.
type pauseParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func pauseCommand() *cli.Command {
	var params pauseParams

	return &cli.Command{
		Name:    "pause",
		Summary: "Freeze the simulation",
		Usage:   "switchyard fleet pause [flags]",
		Description: `Freeze the simulation. Ticks become no-ops until resume, moving
agents park in WAITING, and every reservation stays exactly where it
is. Pausing an already-paused simulation is harmless.`,
		Examples: []cli.Example{
			{
				Description: "Freeze the simulation",
				Command:     "switchyard fleet pause",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			var result schema.PauseResult
			if err := params.Call(schema.ActionPause, nil, &result); err != nil {
				return fmt.Errorf("pausing simulation: %w", err)
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Simulation paused (%d agents parked).\n", result.Affected)
			return nil
		},
	}
}

// --- resume ---

// resumeParams holds the parameters for the resume command.
type resumeParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func resumeCommand() *cli.Command {
	var params resumeParams

	return &cli.Command{
		Name:    "resume",
		Summary: "Unfreeze the simulation",
		Usage:   "switchyard fleet resume [flags]",
		Description: `Unfreeze a paused simulation. Parked agents return to MOVING and
continue their routes on the next tick. Agents that were blocked
before the pause simply park again when their next hop is still
held.`,
		Examples: []cli.Example{
			{
				Description: "Unfreeze the simulation",
				Command:     "switchyard fleet resume",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			var result schema.PauseResult
			if err := params.Call(schema.ActionResume, nil, &result); err != nil {
				return fmt.Errorf("resuming simulation: %w", err)
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Simulation resumed (%d agents released).\n", result.Affected)
			return nil
		},
	}
}
