package discovery

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"

	sdkresourcegraph "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
	"github.com/go-test/deep"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	mock_armresourcegraph "github.com/Azure/PartnerMonitor-RP/pkg/util/mocks/azureclient/azuresdk/armresourcegraph"
	utilerror "github.com/Azure/PartnerMonitor-RP/test/util/error"
)

func pointerTo[T any](v T) *T { return &v }

func TestDiscoverFollowsSkipToken(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	client := mock_armresourcegraph.NewMockClient(controller)

	client.EXPECT().
		Resources(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q sdkresourcegraph.QueryRequest, _ *sdkresourcegraph.ClientResourcesOptions) (sdkresourcegraph.ClientResourcesResponse, error) {
			if q.Options.SkipToken != nil {
				t.Errorf("first page requested with skip token %q", *q.Options.SkipToken)
			}
			return sdkresourcegraph.ClientResourcesResponse{
				QueryResponse: sdkresourcegraph.QueryResponse{
					Data: []interface{}{
						map[string]interface{}{"id": "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/a", "location": "eastus"},
					},
					SkipToken: pointerTo("page2"),
				},
			}, nil
		})

	client.EXPECT().
		Resources(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q sdkresourcegraph.QueryRequest, _ *sdkresourcegraph.ClientResourcesOptions) (sdkresourcegraph.ClientResourcesResponse, error) {
			if q.Options.SkipToken == nil || *q.Options.SkipToken != "page2" {
				t.Error("second page requested without continuation token")
			}
			return sdkresourcegraph.ClientResourcesResponse{
				QueryResponse: sdkresourcegraph.QueryResponse{
					Data: []interface{}{
						map[string]interface{}{"id": "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/b", "location": "westus"},
					},
				},
			}, nil
		})

	d := NewResourceDiscovery(logrus.NewEntry(logrus.StandardLogger()), client)

	resources, err := d.Discover(ctx, "sub", nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []api.MonitoredResource{
		{ID: "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/a", Location: "eastus"},
		{ID: "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/b", Location: "westus"},
	}
	for _, diff := range deep.Equal(resources, want) {
		t.Error(diff)
	}
}

func TestDiscoverPropagatesErrors(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	client := mock_armresourcegraph.NewMockClient(controller)
	client.EXPECT().
		Resources(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sdkresourcegraph.ClientResourcesResponse{}, errors.New("throttled"))

	d := NewResourceDiscovery(logrus.NewEntry(logrus.StandardLogger()), client)

	_, err := d.Discover(ctx, "sub", nil)
	utilerror.AssertErrorMessage(t, err, "throttled")
}
