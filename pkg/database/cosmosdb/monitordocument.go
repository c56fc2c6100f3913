package cosmosdb

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
)

// MonitorDocumentClient is a MonitorDocument client
type MonitorDocumentClient interface {
	Create(ctx context.Context, partitionkey string, newdoc *api.MonitorDocument, options *Options) (*api.MonitorDocument, error)
	Get(ctx context.Context, partitionkey, id string, options *Options) (*api.MonitorDocument, error)
	Replace(ctx context.Context, partitionkey string, doc *api.MonitorDocument, options *Options) (*api.MonitorDocument, error)
	Delete(ctx context.Context, partitionkey string, doc *api.MonitorDocument, options *Options) error
	Query(ctx context.Context, partitionkey string, query *Query) ([]*api.MonitorDocument, error)
	ListAll(ctx context.Context) ([]*api.MonitorDocument, error)
}

type monitorDocumentClient struct {
	c    DatabaseClient
	path string
}

var _ MonitorDocumentClient = &monitorDocumentClient{}

// NewMonitorDocumentClient returns a new MonitorDocument client
func NewMonitorDocumentClient(c DatabaseClient, dbid, collid string) MonitorDocumentClient {
	return &monitorDocumentClient{
		c:    c,
		path: "dbs/" + dbid + "/colls/" + collid,
	}
}

func (c *monitorDocumentClient) Create(ctx context.Context, partitionkey string, newdoc *api.MonitorDocument, options *Options) (doc *api.MonitorDocument, err error) {
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

func (c *monitorDocumentClient) Get(ctx context.Context, partitionkey, id string, options *Options) (doc *api.MonitorDocument, err error) {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)

	_, err = c.c.do(ctx, http.MethodGet, c.path+"/docs/"+id, "docs", c.path+"/docs/"+id, nil, &doc, headers, http.StatusOK)
	return
}

func (c *monitorDocumentClient) Replace(ctx context.Context, partitionkey string, newdoc *api.MonitorDocument, options *Options) (doc *api.MonitorDocument, err error) {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)
	if options == nil || !options.NoETag {
		headers.Set("If-Match", newdoc.ETag)
	}

	_, err = c.c.do(ctx, http.MethodPut, c.path+"/docs/"+newdoc.ID, "docs", c.path+"/docs/"+newdoc.ID, newdoc, &doc, headers, http.StatusOK)
	return
}

func (c *monitorDocumentClient) Delete(ctx context.Context, partitionkey string, doc *api.MonitorDocument, options *Options) error {
	headers := http.Header{}
	headers.Set("x-ms-documentdb-partitionkey", `["`+partitionkey+`"]`)
	if options == nil || !options.NoETag {
		headers.Set("If-Match", doc.ETag)
	}

	_, err := c.c.do(ctx, http.MethodDelete, c.path+"/docs/"+doc.ID, "docs", c.path+"/docs/"+doc.ID, nil, nil, headers, http.StatusNoContent)
	return err
}

func (c *monitorDocumentClient) Query(ctx context.Context, partitionkey string, query *Query) (docs []*api.MonitorDocument, err error) {
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
		var page api.MonitorDocuments
		respHeaders, err := c.c.do(ctx, http.MethodPost, c.path+"/docs", "docs", c.path, query, &page, headers, http.StatusOK)
		if err != nil {
			return nil, err
		}

		docs = append(docs, page.MonitorDocuments...)

		continuation := respHeaders.Get("x-ms-continuation")
		if continuation == "" {
			return docs, nil
		}
		headers.Set("x-ms-continuation", continuation)
	}
}

func (c *monitorDocumentClient) ListAll(ctx context.Context) ([]*api.MonitorDocument, error) {
	return c.Query(ctx, "", &Query{Query: "SELECT * FROM Monitors"})
}
