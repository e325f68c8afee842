// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the
// Switchyard daemon.
//
// Configuration is loaded from a single file named by the daemon's
// --config flag (via [LoadFile]). There are no fallbacks, no
// ~/.config discovery, and no automatic file search. This ensures
// deterministic, auditable configuration with no hidden overrides.
//
// Variable expansion is performed on path fields after loading:
// ${VAR} and ${VAR:-default} patterns are expanded from the
// environment. No other environment variables override config
// values.
//
// Key exports:
//
//   - [Config] -- daemon settings: socket, topology, tick cadence
//   - [Default] -- returns a Config with development defaults
//   - [LoadFile] -- the single entry point for loading
//
// This package depends on no other Switchyard packages.
package config
