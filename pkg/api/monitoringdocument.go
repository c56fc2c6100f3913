package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// MonitoringRelationshipDocuments represents monitoring relationship documents.
// pkg/database/cosmosdb requires its definition.
type MonitoringRelationshipDocuments struct {
	Count                           int                               `json:"_count,omitempty"`
	ResourceID                      string                            `json:"_rid,omitempty"`
	MonitoringRelationshipDocuments []*MonitoringRelationshipDocument `json:"Documents,omitempty"`
}

// MonitoringRelationshipDocument represents a monitoring relationship document.
// pkg/database/cosmosdb requires its definition.
type MonitoringRelationshipDocument struct {
	ID          string `json:"id,omitempty"`
	ResourceID  string `json:"_rid,omitempty"`
	Timestamp   int    `json:"_ts,omitempty"`
	Self        string `json:"_self,omitempty"`
	ETag        string `json:"_etag,omitempty"`
	Attachments string `json:"_attachments,omitempty"`

	Key          string `json:"key,omitempty"`
	PartitionKey string `json:"partitionKey,omitempty"`

	MonitoringRelationship *MonitoringRelationship `json:"monitoringRelationship,omitempty"`
}

// MonitoringStatusDocuments represents monitoring status documents.
// pkg/database/cosmosdb requires its definition.
type MonitoringStatusDocuments struct {
	Count                     int                         `json:"_count,omitempty"`
	ResourceID                string                      `json:"_rid,omitempty"`
	MonitoringStatusDocuments []*MonitoringStatusDocument `json:"Documents,omitempty"`
}

// MonitoringStatusDocument represents a monitoring status document.
// pkg/database/cosmosdb requires its definition.
type MonitoringStatusDocument struct {
	ID          string `json:"id,omitempty"`
	ResourceID  string `json:"_rid,omitempty"`
	Timestamp   int    `json:"_ts,omitempty"`
	Self        string `json:"_self,omitempty"`
	ETag        string `json:"_etag,omitempty"`
	Attachments string `json:"_attachments,omitempty"`

	Key          string `json:"key,omitempty"`
	PartitionKey string `json:"partitionKey,omitempty"`

	MonitoringStatus *MonitoringStatus `json:"monitoringStatus,omitempty"`
}
