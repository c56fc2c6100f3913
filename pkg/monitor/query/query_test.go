package query

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
	"testing"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
)

func TestBuild(t *testing.T) {
	for _, tt := range []struct {
		name              string
		filteringTags     []api.FilteringTag
		includeTypeFilter bool
		want              string
	}{
		{
			name: "no tags, no type filter",
			want: "resources | project id, location",
		},
		{
			name: "include tag",
			filteringTags: []api.FilteringTag{
				{Name: "env", Value: "prod", Action: api.TagActionInclude},
			},
			want: "resources | where (tags['env'] =~ 'prod') | project id, location",
		},
		{
			name: "multiple include tags ored together",
			filteringTags: []api.FilteringTag{
				{Name: "env", Value: "prod", Action: api.TagActionInclude},
				{Name: "team", Value: "data", Action: api.TagActionInclude},
			},
			want: "resources | where (tags['env'] =~ 'prod' or tags['team'] =~ 'data') | project id, location",
		},
		{
			name: "exclude tag",
			filteringTags: []api.FilteringTag{
				{Name: "env", Value: "dev", Action: api.TagActionExclude},
			},
			want: "resources | where not (tags['env'] =~ 'dev') | project id, location",
		},
		{
			name: "include and exclude",
			filteringTags: []api.FilteringTag{
				{Name: "env", Value: "prod", Action: api.TagActionInclude},
				{Name: "tier", Value: "test", Action: api.TagActionExclude},
			},
			want: "resources | where (tags['env'] =~ 'prod') | where not (tags['tier'] =~ 'test') | project id, location",
		},
		{
			name: "empty value matches present and empty",
			filteringTags: []api.FilteringTag{
				{Name: "env", Value: "", Action: api.TagActionInclude},
			},
			want: "resources | where ((isnotnull(tags['env']) and tags['env'] == '')) | project id, location",
		},
		{
			name: "embedded quotes are escaped",
			filteringTags: []api.FilteringTag{
				{Name: "na'me", Value: `va\lue`, Action: api.TagActionInclude},
			},
			want: `resources | where (tags['na\'me'] =~ 'va\\lue') | project id, location`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.filteringTags, tt.includeTypeFilter)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildTypeFilter(t *testing.T) {
	got := Build(nil, true)

	if !strings.HasPrefix(got, "resources | where type in ('") {
		t.Errorf("missing type filter clause: %q", got)
	}
	if !strings.HasSuffix(got, ") | project id, location") {
		t.Errorf("missing projection: %q", got)
	}
	for _, resourceType := range SupportedResourceTypes() {
		if !strings.Contains(got, "'"+resourceType+"'") {
			t.Errorf("type filter missing %q", resourceType)
		}
	}
}

func TestSupportedResourceTypesIsACopy(t *testing.T) {
	types := SupportedResourceTypes()
	types[0] = "tampered"

	if SupportedResourceTypes()[0] == "tampered" {
		t.Error("SupportedResourceTypes returned the backing slice")
	}
}
