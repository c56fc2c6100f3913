package discovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"

	sdkresourcegraph "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/query"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient/azuresdk/armresourcegraph"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/PartnerMonitor-RP/pkg/monitor/$GOPACKAGE ResourceDiscovery

// ResourceDiscovery returns the monitoring candidate set for a subscription.
type ResourceDiscovery interface {
	Discover(ctx context.Context, subscriptionID string, filteringTags []api.FilteringTag) ([]api.MonitoredResource, error)
}

type resourceDiscovery struct {
	log    *logrus.Entry
	client armresourcegraph.Client
}

var _ ResourceDiscovery = &resourceDiscovery{}

// NewResourceDiscovery returns a new ResourceDiscovery
func NewResourceDiscovery(log *logrus.Entry, client armresourcegraph.Client) ResourceDiscovery {
	return &resourceDiscovery{
		log:    log,
		client: client,
	}
}

// Discover executes the candidate query against the resource graph,
// following the continuation token until all pages are read.  Any error
// fails the whole pass: callers treat it as transient and retry later.
func (d *resourceDiscovery) Discover(ctx context.Context, subscriptionID string, filteringTags []api.FilteringTag) ([]api.MonitoredResource, error) {
	q := query.Build(filteringTags, true)
	resultFormat := sdkresourcegraph.ResultFormatObjectArray

	var resources []api.MonitoredResource
	var skipToken *string

	for {
		top := int32(query.PageSize)
		resp, err := d.client.Resources(ctx, sdkresourcegraph.QueryRequest{
			Subscriptions: []*string{&subscriptionID},
			Query:         &q,
			Options: &sdkresourcegraph.QueryRequestOptions{
				Top:          &top,
				SkipToken:    skipToken,
				ResultFormat: &resultFormat,
			},
		}, nil)
		if err != nil {
			return nil, err
		}

		page, err := parseRows(resp.Data)
		if err != nil {
			return nil, err
		}
		resources = append(resources, page...)

		if resp.SkipToken == nil || *resp.SkipToken == "" {
			return resources, nil
		}
		skipToken = resp.SkipToken
	}
}

// parseRows converts the resource graph's untyped row data into resources.
func parseRows(data interface{}) ([]api.MonitoredResource, error) {
	if data == nil {
		return nil, nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var resources []api.MonitoredResource
	err = json.Unmarshal(b, &resources)
	if err != nil {
		return nil, err
	}

	return resources, nil
}
