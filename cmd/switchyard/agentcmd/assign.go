// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// assignParams holds the parameters for the assign command.
type assignParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func assignCommand() *cli.Command {
	var params assignParams

	return &cli.Command{
		Name:    "assign",
		Summary: "Give an agent a destination",
		Usage:   "switchyard agent assign <agent> <goal> [flags]",
		Description: `Route an agent to a goal vertex. The daemon plans a collision-free
path around everything currently held by other agents and the agent
starts moving on the next tick.

Assignment is refused while the agent is charging, and fails with
no-route when every path to the goal crosses an occupied vertex. An
agent that is already moving is re-routed toward the new goal.`,
		Examples: []cli.Example{
			{
				Description: "Send agent 0 to vertex 7",
				Command:     "switchyard agent assign 0 7",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			if len(args) < 2 {
				return fmt.Errorf("agent and goal IDs required\n\nUsage: switchyard agent assign <agent> <goal> [flags]")
			}
			if len(args) > 2 {
				return fmt.Errorf("unexpected argument: %s", args[2])
			}
			agentID, err := parseID("agent", args[0])
			if err != nil {
				return err
			}
			goal, err := parseID("vertex", args[1])
			if err != nil {
				return err
			}

			var agent schema.AgentInfo
			if err := params.Call(schema.ActionAssign, map[string]any{
				"agent": agentID,
				"goal":  goal,
			}, &agent); err != nil {
				return fmt.Errorf("assigning task: %w", err)
			}

			if done, err := params.EmitJSON(agent); done {
				return err
			}

			fmt.Fprintf(os.Stderr, "Assigned agent %d to vertex %d (path: %s).\n",
				agent.ID, goal, formatPath(agent.Path))
			return nil
		},
	}
}
