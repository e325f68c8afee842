// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/switchyard-project/switchyard/lib/codec"
)

// dialTimeout is the maximum time to wait for a connection to the
// service socket. This is separate from the server's read/write
// timeouts; it covers only the connect phase.
const dialTimeout = 5 * time.Second

// responseReadTimeout is how long the client waits for the server to
// send a response after writing the request. Matched to the server's
// readTimeout + writeTimeout to account for handler execution time.
const responseReadTimeout = 45 * time.Second

// maxResponseSize is the maximum size of a single CBOR response.
// Matches the server's maxRequestSize for symmetry.
const maxResponseSize = 1024 * 1024

// ServiceError is a failure response from the daemon. Code carries
// the machine-readable error code so callers classify failures with
// errors.As instead of matching message strings.
type ServiceError struct {
	Action  string
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("action %q failed: %s", e.Action, e.Message)
}

// Client issues requests to a daemon's control socket. Each request
// opens a fresh connection, sends one CBOR request, and reads one
// CBOR response.
//
// The zero value is not usable; construct with NewClient.
type Client struct {
	socketPath string
}

// NewClient creates a client for the daemon listening on socketPath.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

// Call sends a request for the given action and decodes the
// response's data field into result. Pass nil as result to discard
// the data field. The fields map supplies the action-specific request
// fields; the action name is injected automatically.
//
// A failure response is returned as a *ServiceError.
func (c *Client) Call(ctx context.Context, action string, fields map[string]any, result any) error {
	request, err := buildRequest(action, fields)
	if err != nil {
		return err
	}

	response, err := c.send(ctx, request)
	if err != nil {
		return fmt.Errorf("action %q: %w", action, err)
	}

	if !response.OK {
		return &ServiceError{Action: action, Code: response.Code, Message: response.Error}
	}

	if result != nil {
		if response.Data == nil {
			return fmt.Errorf("action %q: response has no data", action)
		}
		if err := codec.Unmarshal(response.Data, result); err != nil {
			return fmt.Errorf("action %q: decoding response data: %w", action, err)
		}
	}
	return nil
}

// buildRequest assembles the request map with the action field
// injected alongside the caller's fields.
func buildRequest(action string, fields map[string]any) ([]byte, error) {
	request := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		if key == "action" {
			return nil, errors.New(`request fields must not set "action"`)
		}
		request[key] = value
	}
	request["action"] = action

	encoded, err := codec.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	return encoded, nil
}

// send performs one request-response cycle on a fresh connection.
func (c *Client) send(ctx context.Context, request []byte) (*Response, error) {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	} else {
		conn.SetDeadline(time.Now().Add(responseReadTimeout))
	}

	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	// Half-close the write side so the server sees a complete request
	// even if it reads to EOF.
	if unixConn, ok := conn.(*net.UnixConn); ok {
		unixConn.CloseWrite()
	}

	var response Response
	if err := codec.NewDecoder(io.LimitReader(conn, maxResponseSize)).Decode(&response); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return &response, nil
}
