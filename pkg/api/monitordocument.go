package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// MonitorDocuments represents monitor documents.
// pkg/database/cosmosdb requires its definition.
type MonitorDocuments struct {
	Count            int                `json:"_count,omitempty"`
	ResourceID       string             `json:"_rid,omitempty"`
	MonitorDocuments []*MonitorDocument `json:"Documents,omitempty"`
}

// MonitorDocument represents a monitor document.
// pkg/database/cosmosdb requires its definition.
type MonitorDocument struct {
	ID          string `json:"id,omitempty"`
	ResourceID  string `json:"_rid,omitempty"`
	Timestamp   int    `json:"_ts,omitempty"`
	Self        string `json:"_self,omitempty"`
	ETag        string `json:"_etag,omitempty"`
	Attachments string `json:"_attachments,omitempty"`

	Key          string `json:"key,omitempty"`
	PartitionKey string `json:"partitionKey,omitempty"`

	Monitor *Monitor `json:"monitor,omitempty"`
}
