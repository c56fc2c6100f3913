package database

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database/cosmosdb"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/PartnerMonitor-RP/pkg/$GOPACKAGE Monitors,MonitoringRelationships,MonitoringStatuses

type monitors struct {
	c             cosmosdb.MonitorDocumentClient
	uuidGenerator uuid.Generator
}

// Monitors is the database interface for MonitorDocuments
type Monitors interface {
	Create(context.Context, *api.MonitorDocument) (*api.MonitorDocument, error)
	Get(ctx context.Context, tenantID, partnerEntityID string) (*api.MonitorDocument, error)
	Update(context.Context, *api.MonitorDocument) (*api.MonitorDocument, error)
	Patch(ctx context.Context, tenantID, partnerEntityID string, f func(*api.MonitorDocument) error) (*api.MonitorDocument, error)
	Delete(context.Context, *api.MonitorDocument) error
	ListAll(context.Context) ([]*api.MonitorDocument, error)
}

// NewMonitors returns a new Monitors
func NewMonitors(dbc cosmosdb.DatabaseClient, dbid, collid string) Monitors {
	return &monitors{
		c:             cosmosdb.NewMonitorDocumentClient(dbc, dbid, collid),
		uuidGenerator: uuid.DefaultGenerator,
	}
}

func (c *monitors) Create(ctx context.Context, doc *api.MonitorDocument) (*api.MonitorDocument, error) {
	if doc.Key != strings.ToLower(doc.Key) {
		return nil, fmt.Errorf("key %q is not lower case", doc.Key)
	}

	doc.ID = c.uuidGenerator.Generate()
	doc.PartitionKey = partitionKeyFromKey(doc.Key)

	return c.c.Create(ctx, doc.PartitionKey, doc, nil)
}

func (c *monitors) Get(ctx context.Context, tenantID, partnerEntityID string) (*api.MonitorDocument, error) {
	if err := validateKeyParts(tenantID, partnerEntityID); err != nil {
		return nil, err
	}

	key := lowerKey(tenantID, partnerEntityID)

	docs, err := c.c.Query(ctx, partitionKeyFromKey(key), &cosmosdb.Query{
		Query: "SELECT * FROM Monitors doc WHERE doc.key = @key",
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

	switch len(docs) {
	case 0:
		return nil, &cosmosdb.Error{StatusCode: http.StatusNotFound}
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("read %d documents, expected <= 1", len(docs))
	}
}

func (c *monitors) Update(ctx context.Context, doc *api.MonitorDocument) (*api.MonitorDocument, error) {
	return c.c.Replace(ctx, doc.PartitionKey, doc, nil)
}

func (c *monitors) Patch(ctx context.Context, tenantID, partnerEntityID string, f func(*api.MonitorDocument) error) (doc *api.MonitorDocument, err error) {
	err = cosmosdb.RetryOnPreconditionFailed(func() (err error) {
		doc, err = c.Get(ctx, tenantID, partnerEntityID)
		if err != nil {
			return
		}

		err = f(doc)
		if err != nil {
			return
		}

		doc, err = c.Update(ctx, doc)
		return
	})

	return
}

func (c *monitors) Delete(ctx context.Context, doc *api.MonitorDocument) error {
	return c.c.Delete(ctx, doc.PartitionKey, doc, &cosmosdb.Options{NoETag: true})
}

func (c *monitors) ListAll(ctx context.Context) ([]*api.MonitorDocument, error) {
	return c.c.ListAll(ctx)
}

// partitionKeyFromKey derives the partition key (the tenant id) from a
// document key.
func partitionKeyFromKey(key string) string {
	return strings.SplitN(key, "/", 2)[0]
}
