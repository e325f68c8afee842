// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package agentcmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
	"github.com/switchyard-project/switchyard/lib/schema"
)

// reclaimParams holds the parameters for the reclaim command.
type reclaimParams struct {
	cli.DaemonConnection
	cli.JSONOutput
}

func reclaimCommand() *cli.Command {
	var params reclaimParams

	return &cli.Command{
		Name:    "reclaim",
		Summary: "Release resources held by a removed agent",
		Usage:   "switchyard agent reclaim <agent> [flags]",
		Description: `Release every vertex and lane still held under a removed agent's
ID. Refuses while the agent is live; remove it first. Run this only
after the physical unit is confirmed clear of the track.`,
		Examples: []cli.Example{
			{
				Description: "Free everything agent 3 still held",
				Command:     "switchyard agent reclaim 3",
			},
		},
		Params: func() any { return &params },
		Run: func(args []string) error {
			agentID, err := singleAgentArg("reclaim", args)
			if err != nil {
				return err
			}

			var result schema.ReclaimResult
			if err := params.Call(schema.ActionReclaim, map[string]any{"holder": agentID}, &result); err != nil {
				return fmt.Errorf("reclaiming holdings: %w", err)
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}

			if len(result.Vertices) == 0 && len(result.Lanes) == 0 {
				fmt.Fprintf(os.Stderr, "Nothing held by agent %d.\n", agentID)
				return nil
			}
			fmt.Fprintf(os.Stderr, "Reclaimed from agent %d: vertices [%s], lanes [%s].\n",
				agentID, formatVertexList(result.Vertices), formatLaneList(result.Lanes))
			return nil
		},
	}
}

func formatVertexList(vertices []int) string {
	parts := make([]string, 0, len(vertices))
	for _, vertex := range vertices {
		parts = append(parts, strconv.Itoa(vertex))
	}
	return strings.Join(parts, ", ")
}

func formatLaneList(lanes []schema.LaneRef) string {
	parts := make([]string, 0, len(lanes))
	for _, lane := range lanes {
		parts = append(parts, fmt.Sprintf("%d-%d", lane.A, lane.B))
	}
	return strings.Join(parts, ", ")
}
