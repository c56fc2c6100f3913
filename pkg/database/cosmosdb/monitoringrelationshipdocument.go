package cosmosdb

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
)

// MonitoringRelationshipDocumentClient is a MonitoringRelationshipDocument client
type MonitoringRelationshipDocumentClient interface {
	Create(ctx context.Context, partitionkey string, newdoc *api.MonitoringRelationshipDocument, options *Options) (*api.MonitoringRelationshipDocument, error)
	Get(ctx context.Context, partitionkey, id string, options *Options) (*api.MonitoringRelationshipDocument, error)
	Delete(ctx context.Context, partitionkey string, doc *api.MonitoringRelationshipDocument, options *Options) error
	Query(ctx context.Context, partitionkey string, query *Query) ([]*api.MonitoringRelationshipDocument, error)
}

type monitoringRelationshipDocumentClient struct {
	c    DatabaseClient
	path string
}

var _ MonitoringRelationshipDocumentClient = &monitoringRelationshipDocumentClient{}

// NewMonitoringRelationshipDocumentClient returns a new MonitoringRelationshipDocument client
func NewMonitoringRelationshipDocumentClient(c DatabaseClient, dbid, collid string) MonitoringRelationshipDocumentClient {
	return &monitoringRelationshipDocumentClient{
		c:    c,
		path: "dbs/" + dbid + "/colls/" + collid,
	}
}

func (c *monitoringRelationshipDocumentClient) Create(ctx context.Context, partitionkey string, newdoc *api.MonitoringRelationshipDocument, options *Options) (doc *api.MonitoringRelationshipDocument, err error) {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)

	expectedStatusCodes := []int{http.StatusCreated}
	if options != nil && options.IsUpsert {
		headers.Set("x-ms-documentdb-is-upsert", "True")
		expectedStatusCodes = append(expectedStatusCodes, http.StatusOK)
	}

	_, err = c.c.do(ctx, http.MethodPost, c.path+"/docs", "docs", c.path, newdoc, &doc, headers, expectedStatusCodes...)
	return
}

func (c *monitoringRelationshipDocumentClient) Get(ctx context.Context, partitionkey, id string, options *Options) (doc *api.MonitoringRelationshipDocument, err error) {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)

	_, err = c.c.do(ctx, http.MethodGet, c.path+"/docs/"+id, "docs", c.path+"/docs/"+id, nil, &doc, headers, http.StatusOK)
	return
}

func (c *monitoringRelationshipDocumentClient) Delete(ctx context.Context, partitionkey string, doc *api.MonitoringRelationshipDocument, options *Options) error {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)
	if options == nil || !options.NoETag {
		headers.Set("If-Match", doc.ETag)
	}

	_, err := c.c.do(ctx, http.MethodDelete, c.path+"/docs/"+doc.ID, "docs", c.path+"/docs/"+doc.ID, nil, nil, headers, http.StatusNoContent)
	return err
}

func (c *monitoringRelationshipDocumentClient) Query(ctx context.Context, partitionkey string, query *Query) (docs []*api.MonitoringRelationshipDocument, err error) {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-isquery", "True")
	headers.Set("Content-Type", "application/query+json")
	if partitionkey != "" {
		headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)
	} else {
		headers.Set("x-ms-documentdb-query-enablecrosspartition", "True")
	}
	headers.Set("x-ms-max-item-count", "-1")

	for {
		var page api.MonitoringRelationshipDocuments
		respHeaders, err := c.c.do(ctx, http.MethodPost, c.path+"/docs", "docs", c.path, query, &page, headers, http.StatusOK)
		if err != nil {
			return nil, err
		}

		docs = append(docs, page.MonitoringRelationshipDocuments...)

		continuation := respHeaders.Get("x-ms-continuation")
		if continuation == "" {
			return docs, nil
		}
		headers.Set("x-ms-continuation", continuation)
	}
}
