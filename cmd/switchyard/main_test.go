// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/switchyard-project/switchyard/cmd/switchyard/cli"
)

// TestRootCommandTree verifies the top-level command groups exist and
// that every leaf in the tree is runnable.
func TestRootCommandTree(t *testing.T) {
	root := rootCommand()

	if root.Name != "switchyard" {
		t.Errorf("root name: got %q, want %q", root.Name, "switchyard")
	}

	expectedGroups := map[string]bool{
		"agent":   false,
		"fleet":   false,
		"topo":    false,
		"version": false,
	}
	for _, sub := range root.Subcommands {
		if _, expected := expectedGroups[sub.Name]; !expected {
			t.Errorf("unexpected top-level command: %q", sub.Name)
			continue
		}
		expectedGroups[sub.Name] = true
	}
	for name, found := range expectedGroups {
		if !found {
			t.Errorf("missing top-level command: %q", name)
		}
	}

	walkCommands(root, nil, func(command *cli.Command, path []string) {
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor Subcommands set", strings.Join(path, " "))
		}
	})
}

// TestLeafCommandsHaveUsage verifies every runnable leaf documents its
// invocation. Group commands synthesize usage from their name, but a
// leaf's positional arguments only show up if Usage is set.
func TestLeafCommandsHaveUsage(t *testing.T) {
	walkCommands(rootCommand(), nil, func(command *cli.Command, path []string) {
		if command.Run == nil || len(command.Subcommands) > 0 {
			return
		}
		if command.Name == "version" {
			return
		}
		if command.Usage == "" {
			t.Errorf("%s: leaf command missing Usage", strings.Join(path, " "))
		}
		if command.Summary == "" {
			t.Errorf("%s: leaf command missing Summary", strings.Join(path, " "))
		}
	})
}

// walkCommands recursively visits every command in the tree, calling
// visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
