// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the daemon configuration.
type Config struct {
	// Socket is the Unix socket path for the control socket.
	Socket string `yaml:"socket"`

	// Topology is the path of the topology document. JSONC comments
	// are allowed.
	Topology string `yaml:"topology"`

	// TickIntervalMS is the automatic tick cadence in milliseconds.
	// 0 disables the internal ticker; the simulation then advances
	// only on explicit tick requests.
	TickIntervalMS int `yaml:"tick_interval_ms"`

	// PathCacheSize caps the number of memoized routes. 0 disables
	// route memoization.
	PathCacheSize int `yaml:"path_cache_size"`

	// LogLevel is the minimum log level: debug, info, warn, or
	// error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration. These defaults are used
// as a base before loading the config file. The topology path has no
// default: every deployment must name its map.
func Default() *Config {
	return &Config{
		Socket:         "/run/switchyard/control.sock",
		TickIntervalMS: 100,
		PathCacheSize:  512,
		LogLevel:       "info",
	}
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment
// variables do not override config values. The only expansion
// performed is ${VAR} and ${VAR:-default} in path fields for
// portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.Socket = expandVars(cfg.Socket)
	cfg.Topology = expandVars(cfg.Topology)

	return cfg, nil
}

// Validate checks the configuration for errors. All problems are
// reported at once, joined into a single error.
func (c *Config) Validate() error {
	var errs []error

	if c.Socket == "" {
		errs = append(errs, fmt.Errorf("socket is required"))
	}
	if c.Topology == "" {
		errs = append(errs, fmt.Errorf("topology is required"))
	}
	if c.TickIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("tick_interval_ms must not be negative, got %d", c.TickIntervalMS))
	}
	if c.PathCacheSize < 0 {
		errs = append(errs, fmt.Errorf("path_cache_size must not be negative, got %d", c.PathCacheSize))
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Level returns the slog level named by LogLevel. Unknown names fall
// back to info; Validate rejects them first.
func (c *Config) Level() slog.Level {
	level, ok := parseLevel(c.LogLevel)
	if !ok {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(name string) (slog.Level, bool) {
	switch name {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// environment.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}
