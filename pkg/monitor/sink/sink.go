package sink

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"strings"

	"github.com/Azure/PartnerMonitor-RP/pkg/env"
)

// Sink is the regional telemetry destination: an event hub plus the
// authorization rule used to write to it.
type Sink struct {
	EventHubName        string `json:"eventHubName,omitempty"`
	AuthorizationRuleID string `json:"authorizationRuleId,omitempty"`
}

// Directory maps resource locations to regional sinks.
type Directory interface {
	Lookup(location string) (Sink, bool)
}

type directory struct {
	sinks map[string]Sink
}

var _ Directory = &directory{}

// NewDirectory returns a Directory over a static table.  Location keys are
// matched case-insensitively.
func NewDirectory(sinks map[string]Sink) Directory {
	d := &directory{
		sinks: make(map[string]Sink, len(sinks)),
	}
	for location, s := range sinks {
		d.sinks[strings.ToLower(location)] = s
	}
	return d
}

// NewDirectoryFromEnv reads the sink table from the SINK_DIRECTORY
// configuration variable, a JSON object keyed by location.
func NewDirectoryFromEnv(_env env.Core) (Directory, error) {
	if err := _env.ValidateVars("SINK_DIRECTORY"); err != nil {
		return nil, err
	}

	var sinks map[string]Sink
	err := json.Unmarshal([]byte(_env.GetEnv("SINK_DIRECTORY")), &sinks)
	if err != nil {
		return nil, err
	}

	return NewDirectory(sinks), nil
}

// Lookup resolves the sink for a location.  A miss is not an error: the
// caller records the resource as unmonitorable with reason
// LocationNotSupported.
func (d *directory) Lookup(location string) (Sink, bool) {
	s, ok := d.sinks[strings.ToLower(location)]
	return s, ok
}
