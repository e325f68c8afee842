// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/switchyard-project/switchyard/lib/clock"
	"github.com/switchyard-project/switchyard/lib/config"
	"github.com/switchyard-project/switchyard/lib/fleet"
	"github.com/switchyard-project/switchyard/lib/process"
	"github.com/switchyard-project/switchyard/lib/service"
	"github.com/switchyard-project/switchyard/lib/topology"
	"github.com/switchyard-project/switchyard/lib/version"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	var (
		configPath  string
		showVersion bool
	)

	pflag.StringVar(&configPath, "config", "", "path to the daemon configuration file (required)")
	pflag.BoolVar(&showVersion, "version", false, "print version information and exit")
	pflag.Parse()

	if showVersion {
		fmt.Printf("switchyard-daemon %s\n", version.Info())
		return nil
	}

	if configPath == "" {
		return fmt.Errorf("--config is required")
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	doc, err := topology.LoadFile(cfg.Topology)
	if err != nil {
		return fmt.Errorf("loading topology: %w", err)
	}
	graph, err := doc.Graph()
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	name := doc.BuildingName
	if name == "" {
		name = topology.NameFromPath(cfg.Topology)
	}
	fingerprint := doc.Fingerprint()
	logger.Info("topology loaded",
		"name", name,
		"fingerprint", fingerprint.Short(),
		"vertices", graph.VertexCount(),
		"lanes", graph.LaneCount(),
	)

	clk := clock.Real()

	daemon := &Daemon{
		manager:      fleet.NewManager(graph, cfg.PathCacheSize, logger),
		topologyName: name,
		fingerprint:  fingerprint,
		tickInterval: time.Duration(cfg.TickIntervalMS) * time.Millisecond,
		startedAt:    clk.Now(),
		clock:        clk,
		logger:       logger,
	}

	// Start the socket server in a goroutine.
	socketServer := service.NewSocketServer(cfg.Socket, logger)
	daemon.registerActions(socketServer)

	socketDone := make(chan error, 1)
	go func() {
		socketDone <- socketServer.Serve(ctx)
	}()

	if daemon.tickInterval > 0 {
		go daemon.runTickLoop(ctx)
	} else {
		logger.Info("automatic ticking disabled, time advances via the tick action")
	}

	logger.Info("daemon running",
		"socket", cfg.Socket,
		"topology", name,
		"tick_interval", daemon.tickInterval,
	)

	// Wait for shutdown signal.
	<-ctx.Done()
	logger.Info("shutting down")

	// Wait for the socket server to drain active connections.
	if err := <-socketDone; err != nil {
		logger.Error("socket server error", "error", err)
	}

	return nil
}
