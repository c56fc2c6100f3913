package database

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"strings"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database/cosmosdb"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/uuid"
)

type monitoringStatuses struct {
	c             cosmosdb.MonitoringStatusDocumentClient
	uuidGenerator uuid.Generator
}

// MonitoringStatuses is the database interface for MonitoringStatusDocuments.
// A status row records whether a resource is monitored for a partner, and why
// not if it is not.
type MonitoringStatuses interface {
	Upsert(context.Context, *api.MonitoringStatus) (*api.MonitoringStatusDocument, error)
	ListByPartner(ctx context.Context, tenantID, partnerEntityID string) ([]*api.MonitoringStatus, error)
	Delete(ctx context.Context, tenantID, partnerEntityID, resourceID string) error
}

// NewMonitoringStatuses returns a new MonitoringStatuses
func NewMonitoringStatuses(dbc cosmosdb.DatabaseClient, dbid, collid string) MonitoringStatuses {
	return &monitoringStatuses{
		c:             cosmosdb.NewMonitoringStatusDocumentClient(dbc, dbid, collid),
		uuidGenerator: uuid.DefaultGenerator,
	}
}

func (c *monitoringStatuses) Upsert(ctx context.Context, status *api.MonitoringStatus) (*api.MonitoringStatusDocument, error) {
	if err := validateKeyParts(status.TenantID, status.PartnerEntityID, status.MonitoredResourceID); err != nil {
		return nil, err
	}

	key := lowerKey(status.TenantID, status.PartnerEntityID, status.MonitoredResourceID)
	partitionKey := strings.ToLower(status.TenantID)

	// reuse the existing document id if the row already exists so that the
	// upsert replaces instead of conflicting on the unique key
	docs, err := c.c.Query(ctx, partitionKey, &cosmosdb.Query{
		Query: "SELECT * FROM MonitoringStatuses doc WHERE doc.key = @key",
		Parameters: []cosmosdb.Parameter{
			{
				Name:  "@key",
				Value: key,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	doc := &api.MonitoringStatusDocument{
		ID:               c.uuidGenerator.Generate(),
		Key:              key,
		PartitionKey:     partitionKey,
		MonitoringStatus: status,
	}
	if len(docs) > 0 {
		doc.ID = docs[0].ID
	}

	return c.c.Create(ctx, doc.PartitionKey, doc, &cosmosdb.Options{IsUpsert: true})
}

func (c *monitoringStatuses) ListByPartner(ctx context.Context, tenantID, partnerEntityID string) ([]*api.MonitoringStatus, error) {
	if err := validateKeyParts(tenantID, partnerEntityID); err != nil {
		return nil, err
	}

	docs, err := c.c.Query(ctx, strings.ToLower(tenantID), &cosmosdb.Query{
		Query: "SELECT * FROM MonitoringStatuses doc WHERE LOWER(doc.monitoringStatus.partnerEntityId) = @partnerEntityId",
		Parameters: []cosmosdb.Parameter{
			{
				Name:  "@partnerEntityId",
				Value: strings.ToLower(partnerEntityID),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	statuses := make([]*api.MonitoringStatus, 0, len(docs))
	for _, doc := range docs {
		if doc.MonitoringStatus != nil {
			statuses = append(statuses, doc.MonitoringStatus)
		}
	}
	return statuses, nil
}

func (c *monitoringStatuses) Delete(ctx context.Context, tenantID, partnerEntityID, resourceID string) error {
	if err := validateKeyParts(tenantID, partnerEntityID, resourceID); err != nil {
		return err
	}

	key := lowerKey(tenantID, partnerEntityID, resourceID)

	docs, err := c.c.Query(ctx, strings.ToLower(tenantID), &cosmosdb.Query{
		Query: "SELECT * FROM MonitoringStatuses doc WHERE doc.key = @key",
		Parameters: []cosmosdb.Parameter{
			{
				Name:  "@key",
				Value: key,
			},
		},
	})
	if err != nil {
		return err
	}

	for _, doc := range docs {
		err = c.c.Delete(ctx, doc.PartitionKey, doc, &cosmosdb.Options{NoETag: true})
		if err != nil && !cosmosdb.IsErrorStatusCode(err, http.StatusNotFound) {
			return err
		}
	}

	return nil
}
