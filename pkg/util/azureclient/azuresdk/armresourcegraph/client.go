package armresourcegraph

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"

	"github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient/azuresdk/$GOPACKAGE Client

// Client is a minimal interface for Azure Resource Graph Client
type Client interface {
	Resources(ctx context.Context, query armresourcegraph.QueryRequest, options *armresourcegraph.ClientResourcesOptions) (armresourcegraph.ClientResourcesResponse, error)
}

type client struct {
	*armresourcegraph.Client
}

var _ Client = &client{}

// NewClient creates a new Resource Graph Client
func NewClient(environment *azureclient.Environment, credential azcore.TokenCredential) (Client, error) {
	options := arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: environment.Cloud,
		},
	}
	c, err := armresourcegraph.NewClient(credential, &options)
	if err != nil {
		return nil, err
	}
	return &client{Client: c}, nil
}
