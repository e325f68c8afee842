// Copyright 2026 The Switchyard Authors
// SPDX-License-Identifier: Apache-2.0

// Package topology loads travel network documents. Documents are
// authored as JSONC (JSON extended with // line comments, /* block
// comments */, and trailing commas) and describe the vertices and
// lanes the fleet moves on:
//
//	{
//	  "building_name": "yard-a",
//	  "levels": {
//	    "level1": {
//	      "vertices": [
//	        [0.0, 0.0, {"name": "dock"}],
//	        [1.0, 0.0],
//	        [2.0, 0.0, {"name": "bay", "is_charger": true}],
//	      ],
//	      "lanes": [
//	        [0, 1],
//	        [1, 2, {"speed_limit": 1.5}],
//	      ]
//	    }
//	  }
//	}
//
// A vertex is an [x, y] pair with an optional attribute object; a
// lane is a [from, to] pair of vertex indexes with an optional
// attribute object. Unknown attributes are ignored. The outer levels
// map is optional: a document may also put vertices and lanes at the
// root. Multi-level documents are read through their "level1" entry
// only.
//
// Parsing checks entry structure; index validity, self-loops, and
// duplicate lanes are checked when the document is turned into a
// graph with [Document.Graph].
package topology

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/switchyard-project/switchyard/lib/navgraph"
)

// primaryLevel is the level read from multi-level documents. Only one
// level is simulated; the outer map reserves room for future floors.
const primaryLevel = "level1"

// Document is a parsed topology: vertices and lanes in file order,
// ready to build a [navgraph.Graph].
type Document struct {
	// BuildingName is the document's own display name, or empty when
	// the file declares none. Callers fall back to [NameFromPath].
	BuildingName string

	Vertices []navgraph.Vertex
	Lanes    []navgraph.Lane
}

// levelSection is the on-disk shape of one level. Entries stay raw
// until parseVertex and parseLane pick their heterogeneous arrays
// apart.
type levelSection struct {
	Vertices []json.RawMessage `json:"vertices"`
	Lanes    []json.RawMessage `json:"lanes"`
}

// fileSection is the on-disk shape of a whole document: either a
// levels map or a bare level at the root. The building name sits at
// the root in both layouts.
type fileSection struct {
	BuildingName string                  `json:"building_name"`
	Levels       map[string]levelSection `json:"levels"`
	Vertices     []json.RawMessage       `json:"vertices"`
	Lanes        []json.RawMessage       `json:"lanes"`
}

// vertexAttributes is the optional third element of a vertex entry.
type vertexAttributes struct {
	Name      string `json:"name"`
	IsCharger bool   `json:"is_charger"`
}

// laneAttributes is the optional third element of a lane entry.
type laneAttributes struct {
	SpeedLimit float64 `json:"speed_limit"`
}

// Parse strips JSONC comments and trailing commas from data, then
// decodes the result into a Document. A document must declare at
// least one vertex.
func Parse(data []byte) (*Document, error) {
	var file fileSection
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return nil, fmt.Errorf("parsing topology: %w", err)
	}

	section := levelSection{Vertices: file.Vertices, Lanes: file.Lanes}
	if file.Levels != nil {
		level, ok := file.Levels[primaryLevel]
		if !ok {
			return nil, fmt.Errorf("topology has a levels map but no %q entry", primaryLevel)
		}
		section = level
	}

	if len(section.Vertices) == 0 {
		return nil, errors.New("topology has no vertices")
	}

	doc := &Document{
		BuildingName: file.BuildingName,
		Vertices:     make([]navgraph.Vertex, 0, len(section.Vertices)),
		Lanes:        make([]navgraph.Lane, 0, len(section.Lanes)),
	}
	for index, raw := range section.Vertices {
		vertex, err := parseVertex(index, raw)
		if err != nil {
			return nil, err
		}
		doc.Vertices = append(doc.Vertices, vertex)
	}
	for index, raw := range section.Lanes {
		lane, err := parseLane(index, raw)
		if err != nil {
			return nil, err
		}
		doc.Lanes = append(doc.Lanes, lane)
	}
	return doc, nil
}

// LoadFile reads a JSONC topology file from disk and parses it.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Graph builds the immutable travel network from the document.
// Errors name the offending entry (out-of-range index, self-loop,
// duplicate lane).
func (d *Document) Graph() (*navgraph.Graph, error) {
	return navgraph.New(d.Vertices, d.Lanes)
}

// NameFromPath extracts a topology name from a file path by stripping
// the directory prefix and the file extension. For example,
// "deploy/topologies/warehouse-east.jsonc" returns "warehouse-east".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	extension := filepath.Ext(base)
	return strings.TrimSuffix(base, extension)
}

// parseVertex decodes one [x, y, attributes?] entry.
func parseVertex(index int, raw json.RawMessage) (navgraph.Vertex, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return navgraph.Vertex{}, fmt.Errorf("vertex %d: %w", index, err)
	}
	if len(fields) < 2 {
		return navgraph.Vertex{}, fmt.Errorf("vertex %d: want [x, y] with optional attributes, got %d elements", index, len(fields))
	}

	var vertex navgraph.Vertex
	if err := json.Unmarshal(fields[0], &vertex.X); err != nil {
		return navgraph.Vertex{}, fmt.Errorf("vertex %d: x coordinate: %w", index, err)
	}
	if err := json.Unmarshal(fields[1], &vertex.Y); err != nil {
		return navgraph.Vertex{}, fmt.Errorf("vertex %d: y coordinate: %w", index, err)
	}

	if len(fields) >= 3 {
		var attributes vertexAttributes
		if err := json.Unmarshal(fields[2], &attributes); err != nil {
			return navgraph.Vertex{}, fmt.Errorf("vertex %d: attributes: %w", index, err)
		}
		vertex.Name = attributes.Name
		vertex.Charger = attributes.IsCharger
	}
	return vertex, nil
}

// parseLane decodes one [from, to, attributes?] entry.
func parseLane(index int, raw json.RawMessage) (navgraph.Lane, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return navgraph.Lane{}, fmt.Errorf("lane %d: %w", index, err)
	}
	if len(fields) < 2 {
		return navgraph.Lane{}, fmt.Errorf("lane %d: want [from, to] with optional attributes, got %d elements", index, len(fields))
	}

	var from, to int
	if err := json.Unmarshal(fields[0], &from); err != nil {
		return navgraph.Lane{}, fmt.Errorf("lane %d: from vertex: %w", index, err)
	}
	if err := json.Unmarshal(fields[1], &to); err != nil {
		return navgraph.Lane{}, fmt.Errorf("lane %d: to vertex: %w", index, err)
	}

	lane := navgraph.Lane{A: navgraph.VertexID(from), B: navgraph.VertexID(to)}
	if len(fields) >= 3 {
		var attributes laneAttributes
		if err := json.Unmarshal(fields[2], &attributes); err != nil {
			return navgraph.Lane{}, fmt.Errorf("lane %d: attributes: %w", index, err)
		}
		if attributes.SpeedLimit < 0 {
			return navgraph.Lane{}, fmt.Errorf("lane %d: negative speed_limit %v", index, attributes.SpeedLimit)
		}
		lane.SpeedLimit = attributes.SpeedLimit
	}
	return lane, nil
}
