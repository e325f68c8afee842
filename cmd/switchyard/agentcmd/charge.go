// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// --- charge ---

// chargeParams holds the parameters for the charge command.
type chargeParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func chargeCommand() *cli.Command {
	var params chargeParams

	return &cli.Command{
		Name:    "charge",
		Summary: "Start charging an idle agent",
		Usage:   "switchyard agent charge <agent> [flags]",
		Description: `Put an idle agent into the charging state. The agent must be parked
on a charger vertex; a charging agent refuses task assignment until
stop-charging returns it to idle.`,
		Examples: []cli.Example{
			{
				Description: "Start charging agent 2",
				Command:     "switchyard agent charge 2",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			agentID, err := singleAgentArg("charge", args)
			if err != nil {
				return err
			}

			var agent schema.AgentInfo
			if err := params.Call(schema.ActionCharge, map[string]any{"agent": agentID}, &agent); err != nil {
				return fmt.Errorf("starting charge: %w", err)
			}

			if done, err := params.EmitJSON(agent); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Agent %d is charging at %s.\n",
				agent.ID, formatVertex(agent.VertexName, agent.Vertex))
			return nil
		},
	}
}

// --- stop-charging ---

// stopChargingParams holds the parameters for the stop-charging
// command.
type stopChargingParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func stopChargingCommand() *cli.Command {
	var params stopChargingParams

	return &cli.Command{
		Name:    "stop-charging",
		Summary: "Return a charging agent to idle",
		Usage:   "switchyard agent stop-charging <agent> [flags]",
		Description: `Return a charging agent to the idle state, making it assignable
again.`,
		Examples: []cli.Example{
			{
				Description: "Stop charging agent 2",
				Command:     "switchyard agent stop-charging 2",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			agentID, err := singleAgentArg("stop-charging", args)
			if err != nil {
				return err
			}

			var agent schema.AgentInfo
			if err := params.Call(schema.ActionStopCharging, map[string]any{"agent": agentID}, &agent); err != nil {
				return fmt.Errorf("stopping charge: %w", err)
			}

			if done, err := params.EmitJSON(agent); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Agent %d stopped charging.\n", agent.ID)
			return nil
		},
	}
}

// singleAgentArg parses the one-agent positional form shared by
// charge, stop-charging, remove, reclaim, and show.
func singleAgentArg(command string, args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("agent ID required\n\nUsage: switchyard agent %s <agent> [flags]", command)
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	return parseID("agent", args[0])
}
