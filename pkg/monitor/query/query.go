package query

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
)

// PageSize is the number of rows requested per resource graph page.
const PageSize = 1000

// supportedResourceTypes is the allow-list of resource types which support
// streaming diagnostic logs to an event hub.  It is deliberately immutable:
// callers get a copy from SupportedResourceTypes.
var supportedResourceTypes = []string{
	"microsoft.apimanagement/service",
	"microsoft.cache/redis",
	"microsoft.cdn/profiles",
	"microsoft.containerservice/managedclusters",
	"microsoft.dbforpostgresql/servers",
	"microsoft.documentdb/databaseaccounts",
	"microsoft.eventhub/namespaces",
	"microsoft.keyvault/vaults",
	"microsoft.logic/workflows",
	"microsoft.network/applicationgateways",
	"microsoft.network/loadbalancers",
	"microsoft.servicebus/namespaces",
	"microsoft.sql/servers",
	"microsoft.sql/servers/databases",
	"microsoft.storage/storageaccounts",
	"microsoft.web/sites",
}

// SupportedResourceTypes returns a copy of the resource type allow-list.
func SupportedResourceTypes() []string {
	types := make([]string, len(supportedResourceTypes))
	copy(types, supportedResourceTypes)
	return types
}

// Build composes the resource graph query selecting the monitoring candidate
// set.  The query is a series of piped where clauses: an optional resource
// type filter, one clause matching any include tag, one clause rejecting all
// exclude tags, and a trailing projection to id and location.
func Build(filteringTags []api.FilteringTag, includeTypeFilter bool) string {
	clauses := []string{"resources"}

	if includeTypeFilter {
		quoted := make([]string, 0, len(supportedResourceTypes))
		for _, t := range supportedResourceTypes {
			quoted = append(quoted, "'"+escape(t)+"'")
		}
		clauses = append(clauses, "where type in ("+strings.Join(quoted, ", ")+")")
	}

	var includes, excludes []string
	for _, tag := range filteringTags {
		switch tag.Action {
		case api.TagActionInclude:
			includes = append(includes, tagPredicate(tag))
		case api.TagActionExclude:
			excludes = append(excludes, tagPredicate(tag))
		}
	}

	if len(includes) > 0 {
		clauses = append(clauses, "where ("+strings.Join(includes, " or ")+")")
	}
	if len(excludes) > 0 {
		clauses = append(clauses, "where not ("+strings.Join(excludes, " or ")+")")
	}

	clauses = append(clauses, "project id, location")

	return strings.Join(clauses, " | ")
}

// tagPredicate compiles one filtering tag to a query predicate.  A tag with
// an empty value matches resources where the key is present and empty rather
// than testing equality.
func tagPredicate(tag api.FilteringTag) string {
	name := escape(tag.Name)

	if tag.Value == "" {
		return "(isnotnull(tags['" + name + "']) and tags['" + name + "'] == '')"
	}

	return "tags['" + name + "'] =~ '" + escape(tag.Value) + "'"
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}
