package sink

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	d := NewDirectory(map[string]Sink{
		"EastUS": {
			EventHubName:        "partner-eastus",
			AuthorizationRuleID: "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.EventHub/namespaces/ns/authorizationRules/send",
		},
	})

	for _, location := range []string{"eastus", "EASTUS", "EastUS"} {
		s, ok := d.Lookup(location)
		if !ok {
			t.Errorf("lookup %q missed", location)
			continue
		}
		if s.EventHubName != "partner-eastus" {
			t.Errorf("lookup %q returned %q", location, s.EventHubName)
		}
	}

	if _, ok := d.Lookup("westeurope"); ok {
		t.Error("lookup of unknown location succeeded")
	}
}
