package cosmosdb

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
)

// MonitoringStatusDocumentClient is a MonitoringStatusDocument client
type MonitoringStatusDocumentClient interface {
	Create(ctx context.Context, partitionkey string, newdoc *api.MonitoringStatusDocument, options *Options) (*api.MonitoringStatusDocument, error)
	Get(ctx context.Context, partitionkey, id string, options *Options) (*api.MonitoringStatusDocument, error)
	Delete(ctx context.Context, partitionkey string, doc *api.MonitoringStatusDocument, options *Options) error
	Query(ctx context.Context, partitionkey string, query *Query) ([]*api.MonitoringStatusDocument, error)
}

type monitoringStatusDocumentClient struct {
	c    DatabaseClient
	path string
}

var _ MonitoringStatusDocumentClient = &monitoringStatusDocumentClient{}

// NewMonitoringStatusDocumentClient returns a new MonitoringStatusDocument client
func NewMonitoringStatusDocumentClient(c DatabaseClient, dbid, collid string) MonitoringStatusDocumentClient {
	return &monitoringStatusDocumentClient{
		c:    c,
		path: "dbs/" + dbid + "/colls/" + collid,
	}
}

func (c *monitoringStatusDocumentClient) Create(ctx context.Context, partitionkey string, newdoc *api.MonitoringStatusDocument, options *Options) (doc *api.MonitoringStatusDocument, err error) {
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

func (c *monitoringStatusDocumentClient) Get(ctx context.Context, partitionkey, id string, options *Options) (doc *api.MonitoringStatusDocument, err error) {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)

	_, err = c.c.do(ctx, http.MethodGet, c.path+"/docs/"+id, "docs", c.path+"/docs/"+id, nil, &doc, headers, http.StatusOK)
	return
}

func (c *monitoringStatusDocumentClient) Delete(ctx context.Context, partitionkey string, doc *api.MonitoringStatusDocument, options *Options) error {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)
	if options == nil || !options.NoETag {
		headers.Set("If-Match", doc.ETag)
	}

	_, err := c.c.do(ctx, http.MethodDelete, c.path+"/docs/"+doc.ID, "docs", c.path+"/docs/"+doc.ID, nil, nil, headers, http.StatusNoContent)
	return err
}

func (c *monitoringStatusDocumentClient) Query(ctx context.Context, partitionkey string, query *Query) (docs []*api.MonitoringStatusDocument, err error) {
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
		var page api.MonitoringStatusDocuments
		respHeaders, err := c.c.do(ctx, http.MethodPost, c.path+"/docs", "docs", c.path, query, &page, headers, http.StatusOK)
		if err != nil {
			return nil, err
		}

		docs = append(docs, page.MonitoringStatusDocuments...)

		continuation := respHeaders.Get("x-ms-continuation")
		if continuation == "" {
			return docs, nil
		}
		headers.Set("x-ms-continuation", continuation)
	}
}
