// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package fleetcmd

import (
	"fmt"
	"os"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// tickParams holds the parameters for the tick command. DtMS uses -1
// as the unset sentinel: 0 is a meaningful value (a recovery-only
// step that advances no motion), so absence cannot be zero.
type tickParams struct {
	cli.DaemonConnection
	cli.JSONOutput
	DtMS int `flag:"dt-ms" desc:"simulated milliseconds to advance (default: the daemon's tick interval)" default:"-1"`
}

func tickCommand() *cli.Command {
	var params tickParams

	return &cli.Command{
		Name:    "tick",
		Summary: "Advance the simulation one step",
		Usage:   "switchyard fleet tick [flags]",
		Description: `Advance the simulation by one explicit step. Without --dt-ms the
daemon uses its configured tick interval; daemons running with
tick_interval_ms 0 require --dt-ms on every tick. A --dt-ms of 0
performs departure and arrival processing without advancing any
motion.

Ticking a paused simulation is accepted but changes nothing.`,
		Examples: []cli.Example{
			{
				Description: "Advance by the daemon's tick interval",
				Command:     "switchyard fleet tick",
			},
			{
				Description: "Advance by 250 simulated milliseconds",
				Command:     "switchyard fleet tick --dt-ms 250",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.DtMS < -1 {
				return fmt.Errorf("invalid --dt-ms %d: must be non-negative", params.DtMS)
			}

			fields := map[string]any{}
			if params.DtMS >= 0 {
				fields["dt_ms"] = params.DtMS
			}

			var result schema.TickResult
			if err := params.Call(schema.ActionTick, fields, &result); err != nil {
				return fmt.Errorf("ticking simulation: %w", err)
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			if result.Paused {
				fmt.Fprintf(os.Stderr, "Simulation is paused; tick not applied (still at tick %d).\n", result.Ticks)
				return nil
			}
			fmt.Fprintf(os.Stderr, "Advanced to tick %d (dt %gs).\n", result.Ticks, result.DtSeconds)
			return nil
		},
	}
}
