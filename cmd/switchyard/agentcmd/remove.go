// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// removeParams holds the parameters for the remove command.
type removeParams struct {
	cli.DaemonConnection
}

func removeCommand() *cli.Command {
	var params removeParams

	return &cli.Command{
		Name:    "remove",
		Summary: "Remove an agent from the fleet",
		Usage:   "switchyard agent remove <agent> [flags]",
		Description: `Remove an agent from the fleet. The agent's vertex and lane
holdings are NOT released; run reclaim afterwards once the physical
unit is confirmed clear of the track.`,
		Examples: []cli.Example{
			{
				Description: "Remove agent 3, then free what it held",
				Command:     "switchyard agent remove 3 && switchyard agent reclaim 3",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			agentID, err := singleAgentArg("remove", args)
			if err != nil {
				return err
			}

			if err := params.Call(schema.ActionRemove, map[string]any{"agent": agentID}, nil); err != nil {
				return fmt.Errorf("removing agent: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Removed agent %d (held resources remain until reclaimed).\n", agentID)
			return nil
		},
	}
}
