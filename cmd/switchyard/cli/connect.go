// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/switchyard-project/switchyard/lib/service"
)

// DefaultSocketPath is the daemon control socket path used when
// neither the --socket flag nor the SWITCHYARD_SOCKET environment
// variable overrides it. It matches the socket path in the reference
// daemon configuration.
const DefaultSocketPath = "/run/switchyard/control.sock"

// SocketEnvVar is the environment variable consulted for the default
// socket path, so a shell session pointed at a non-standard daemon
// does not need --socket on every command.
const SocketEnvVar = "SWITCHYARD_SOCKET"

// callTimeout bounds a single daemon request. Every action is an
// in-memory query or mutation under the daemon's fleet mutex, so a
// healthy daemon answers in microseconds; the deadline exists to fail
// fast when the daemon is wedged.
const callTimeout = 30 * time.Second

// DaemonConnection manages the socket flag for commands that talk to
// the simulation daemon. Embed it in a command's params struct; it
// implements [FlagBinder] so [BindFlags] registers the --socket flag
// with environment-aware defaults.
type DaemonConnection struct {
	SocketPath string
}

// AddFlags registers the --socket flag. The default comes from the
// SWITCHYARD_SOCKET environment variable if set, otherwise from
// [DefaultSocketPath].
func (c *DaemonConnection) AddFlags(flagSet *pflag.FlagSet) {
	socketDefault := DefaultSocketPath
	if envSocket := os.Getenv(SocketEnvVar); envSocket != "" {
		socketDefault = envSocket
	}
	flagSet.StringVar(&c.SocketPath, "socket", socketDefault, "daemon control socket path")
}

// Call sends one action to the daemon and decodes the response data
// into result (pass nil to discard it). Each call opens a fresh
// connection; the daemon serves one request per connection. Daemon
// refusals come back as *service.ServiceError carrying the stable
// error code.
func (c *DaemonConnection) Call(action string, fields map[string]any, result any) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	return service.NewClient(c.SocketPath).Call(ctx, action, fields, result)
}
