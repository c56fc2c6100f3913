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

type monitoringRelationships struct {
	c             cosmosdb.MonitoringRelationshipDocumentClient
	uuidGenerator uuid.Generator
}

// MonitoringRelationships is the database interface for
// MonitoringRelationshipDocuments.  A relationship row records that a partner
// owns a diagnostic setting on a resource.
type MonitoringRelationships interface {
	Create(context.Context, *api.MonitoringRelationship) (*api.MonitoringRelationshipDocument, error)
	ListByResource(ctx context.Context, tenantID, resourceID string) ([]*api.MonitoringRelationship, error)
	ListByPartner(ctx context.Context, tenantID, partnerEntityID string) ([]*api.MonitoringRelationship, error)
	Delete(ctx context.Context, tenantID, partnerEntityID, resourceID string) error
}

// NewMonitoringRelationships returns a new MonitoringRelationships
func NewMonitoringRelationships(dbc cosmosdb.DatabaseClient, dbid, collid string) MonitoringRelationships {
	return &monitoringRelationships{
		c:             cosmosdb.NewMonitoringRelationshipDocumentClient(dbc, dbid, collid),
		uuidGenerator: uuid.DefaultGenerator,
	}
}

func (c *monitoringRelationships) Create(ctx context.Context, relationship *api.MonitoringRelationship) (*api.MonitoringRelationshipDocument, error) {
	if err := validateKeyParts(relationship.TenantID, relationship.PartnerEntityID, relationship.MonitoredResourceID); err != nil {
		return nil, err
	}

	doc := &api.MonitoringRelationshipDocument{
		ID:                     c.uuidGenerator.Generate(),
		Key:                    lowerKey(relationship.TenantID, relationship.PartnerEntityID, relationship.MonitoredResourceID),
		PartitionKey:           strings.ToLower(relationship.TenantID),
		MonitoringRelationship: relationship,
	}

	return c.c.Create(ctx, doc.PartitionKey, doc, nil)
}

func (c *monitoringRelationships) ListByResource(ctx context.Context, tenantID, resourceID string) ([]*api.MonitoringRelationship, error) {
	if err := validateKeyParts(tenantID, resourceID); err != nil {
		return nil, err
	}

	docs, err := c.c.Query(ctx, strings.ToLower(tenantID), &cosmosdb.Query{
		Query: "SELECT * FROM MonitoringRelationships doc WHERE LOWER(doc.monitoringRelationship.monitoredResourceId) = @resourceId",
		Parameters: []cosmosdb.Parameter{
			{
				Name:  "@resourceId",
				Value: strings.ToLower(resourceID),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return relationshipsFromDocuments(docs), nil
}

func (c *monitoringRelationships) ListByPartner(ctx context.Context, tenantID, partnerEntityID string) ([]*api.MonitoringRelationship, error) {
	if err := validateKeyParts(tenantID, partnerEntityID); err != nil {
		return nil, err
	}

	docs, err := c.c.Query(ctx, strings.ToLower(tenantID), &cosmosdb.Query{
		Query: "SELECT * FROM MonitoringRelationships doc WHERE LOWER(doc.monitoringRelationship.partnerEntityId) = @partnerEntityId",
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

	return relationshipsFromDocuments(docs), nil
}

func (c *monitoringRelationships) Delete(ctx context.Context, tenantID, partnerEntityID, resourceID string) error {
	if err := validateKeyParts(tenantID, partnerEntityID, resourceID); err != nil {
		return err
	}

	key := lowerKey(tenantID, partnerEntityID, resourceID)

	docs, err := c.c.Query(ctx, strings.ToLower(tenantID), &cosmosdb.Query{
		Query: "SELECT * FROM MonitoringRelationships doc WHERE doc.key = @key",
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

func relationshipsFromDocuments(docs []*api.MonitoringRelationshipDocument) []*api.MonitoringRelationship {
	relationships := make([]*api.MonitoringRelationship, 0, len(docs))
	for _, doc := range docs {
		if doc.MonitoringRelationship != nil {
			relationships = append(relationships, doc.MonitoringRelationship)
		}
	}
	return relationships
}
