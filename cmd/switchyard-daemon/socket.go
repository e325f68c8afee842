// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"

	"github.com/switchyard-project/switchyard/lib/fleet"
	"github.com/switchyard-project/switchyard/lib/schema"
	"github.com/switchyard-project/switchyard/lib/service"
)

// registerActions registers all socket API actions on the server.
// Mutations live in socket_mutate.go, queries in socket_query.go.
func (d *Daemon) registerActions(server *service.SocketServer) {
	server.Handle(schema.ActionSpawn, d.handleSpawn)
	server.Handle(schema.ActionAssign, d.handleAssign)
	server.Handle(schema.ActionCharge, d.handleCharge)
	server.Handle(schema.ActionStopCharging, d.handleStopCharging)
	server.Handle(schema.ActionRemove, d.handleRemove)
	server.Handle(schema.ActionReclaim, d.handleReclaim)
	server.Handle(schema.ActionSetSpeed, d.handleSetSpeed)
	server.Handle(schema.ActionPause, d.handlePause)
	server.Handle(schema.ActionResume, d.handleResume)
	server.Handle(schema.ActionTick, d.handleTick)

	server.Handle(schema.ActionStatus, d.handleStatus)
	server.Handle(schema.ActionAgents, d.handleAgents)
	server.Handle(schema.ActionAgent, d.handleAgent)
	server.Handle(schema.ActionMap, d.handleMap)
	server.Handle(schema.ActionOccupancy, d.handleOccupancy)
}

// refuse logs a refused operation at warn and translates fleet
// sentinels into coded service errors. Every simulation refusal is
// non-fatal; clients branch on the code.
func (d *Daemon) refuse(action string, err error) error {
	d.logger.Warn("request refused", "action", action, "error", err)
	return coded(err)
}

// coded maps a fleet sentinel in err's chain to its wire code. Errors
// matching no sentinel pass through unchanged and surface to the
// client as internal.
func coded(err error) error {
	var code string
	switch {
	case errors.Is(err, fleet.ErrUnknownAgent):
		code = schema.CodeUnknownAgent
	case errors.Is(err, fleet.ErrUnknownVertex):
		code = schema.CodeUnknownVertex
	case errors.Is(err, fleet.ErrVertexOccupied):
		code = schema.CodeVertexOccupied
	case errors.Is(err, fleet.ErrNoRoute):
		code = schema.CodeNoRoute
	case errors.Is(err, fleet.ErrAgentCharging):
		code = schema.CodeAgentCharging
	case errors.Is(err, fleet.ErrNotIdle):
		code = schema.CodeNotIdle
	case errors.Is(err, fleet.ErrNotCharging):
		code = schema.CodeNotCharging
	case errors.Is(err, fleet.ErrNotAtCharger):
		code = schema.CodeNotAtCharger
	case errors.Is(err, fleet.ErrBadSpeed):
		code = schema.CodeBadSpeed
	case errors.Is(err, fleet.ErrAgentLive):
		code = schema.CodeAgentLive
	default:
		return err
	}
	return &service.Error{Code: code, Message: err.Error()}
}

// requireInt extracts a required integer request field. Zero is a
// valid vertex and agent ID, so omission is detected by pointer.
func requireInt(field string, value *int) (int, error) {
	if value == nil {
		return 0, service.Errorf(service.CodeBadRequest, "missing required field: %s", field)
	}
	return *value, nil
}
