// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the switchyard
// operator CLI.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a parameter struct
// factory, and a Run function. Commands are assembled into a tree in
// cmd/switchyard/main.go and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// Flags are declared on parameter structs via struct tags (see
// [BindFlags]) rather than registered imperatively. A command's
// [Command.Params] factory returns a pointer to its params struct;
// Execute binds the tagged fields to a [pflag.FlagSet], parses, and
// calls Run with the remaining positional arguments. Structs that
// manage their own flags ([DaemonConnection] among them) implement
// [FlagBinder] and are embedded in params structs.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
package cli
