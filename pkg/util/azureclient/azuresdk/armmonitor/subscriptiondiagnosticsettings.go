package armmonitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient"
)

// The monitor SDK carries no client for subscription scoped diagnostic
// settings, so the few calls we need are made directly against
// Microsoft.Insights over the ARM pipeline.
const subscriptionDiagnosticSettingsAPIVersion = "2017-05-01-preview"

// SubscriptionLogSettings enables a single activity log category.
type SubscriptionLogSettings struct {
	Category *string `json:"category,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty"`
}

// SubscriptionDiagnosticSettings routes the subscription's activity log to an
// event hub.
type SubscriptionDiagnosticSettings struct {
	EventHubName                *string                    `json:"eventHubName,omitempty"`
	EventHubAuthorizationRuleID *string                    `json:"eventHubAuthorizationRuleId,omitempty"`
	Logs                        []*SubscriptionLogSettings `json:"logs,omitempty"`
}

// SubscriptionDiagnosticSettingsResource is a subscription diagnostic setting
// as returned by ARM.
type SubscriptionDiagnosticSettingsResource struct {
	ID         *string                         `json:"id,omitempty"`
	Name       *string                         `json:"name,omitempty"`
	Type       *string                         `json:"type,omitempty"`
	Properties *SubscriptionDiagnosticSettings `json:"properties,omitempty"`
}

type subscriptionDiagnosticSettingsResourceCollection struct {
	Value []*SubscriptionDiagnosticSettingsResource `json:"value,omitempty"`
}

// SubscriptionDiagnosticSettingsClient is a minimal client for subscription
// scoped diagnostic settings
type SubscriptionDiagnosticSettingsClient interface {
	CreateOrUpdate(ctx context.Context, name string, parameters SubscriptionDiagnosticSettingsResource) (SubscriptionDiagnosticSettingsResource, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]*SubscriptionDiagnosticSettingsResource, error)
}

type subscriptionDiagnosticSettingsClient struct {
	subscriptionID string
	internal       *arm.Client
}

var _ SubscriptionDiagnosticSettingsClient = &subscriptionDiagnosticSettingsClient{}

// NewSubscriptionDiagnosticSettingsClient creates a new SubscriptionDiagnosticSettingsClient
func NewSubscriptionDiagnosticSettingsClient(environment *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential) (SubscriptionDiagnosticSettingsClient, error) {
	options := arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: environment.Cloud,
		},
	}
	client, err := arm.NewClient("armmonitor.SubscriptionDiagnosticSettingsClient", "v0.1.0", credential, &options)
	if err != nil {
		return nil, err
	}
	return &subscriptionDiagnosticSettingsClient{
		subscriptionID: subscriptionID,
		internal:       client,
	}, nil
}

func (c *subscriptionDiagnosticSettingsClient) CreateOrUpdate(ctx context.Context, name string, parameters SubscriptionDiagnosticSettingsResource) (SubscriptionDiagnosticSettingsResource, error) {
	req, err := c.newRequest(ctx, http.MethodPut, name)
	if err != nil {
		return SubscriptionDiagnosticSettingsResource{}, err
	}
	err = runtime.MarshalAsJSON(req, parameters)
	if err != nil {
		return SubscriptionDiagnosticSettingsResource{}, err
	}

	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return SubscriptionDiagnosticSettingsResource{}, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusCreated) {
		return SubscriptionDiagnosticSettingsResource{}, runtime.NewResponseError(resp)
	}

	var result SubscriptionDiagnosticSettingsResource
	err = runtime.UnmarshalAsJSON(resp, &result)
	if err != nil {
		return SubscriptionDiagnosticSettingsResource{}, err
	}
	return result, nil
}

func (c *subscriptionDiagnosticSettingsClient) Delete(ctx context.Context, name string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, name)
	if err != nil {
		return err
	}

	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusNoContent) {
		return runtime.NewResponseError(resp)
	}
	return nil
}

func (c *subscriptionDiagnosticSettingsClient) List(ctx context.Context) ([]*SubscriptionDiagnosticSettingsResource, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return nil, runtime.NewResponseError(resp)
	}

	var result subscriptionDiagnosticSettingsResourceCollection
	err = runtime.UnmarshalAsJSON(resp, &result)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

func (c *subscriptionDiagnosticSettingsClient) newRequest(ctx context.Context, method, name string) (*policy.Request, error) {
	urlPath := "/subscriptions/" + url.PathEscape(c.subscriptionID) + "/providers/Microsoft.Insights/diagnosticSettings"
	if name != "" {
		urlPath += "/" + url.PathEscape(name)
	}

	req, err := runtime.NewRequest(ctx, method, runtime.JoinPaths(c.internal.Endpoint(), urlPath))
	if err != nil {
		return nil, err
	}

	reqQP := req.Raw().URL.Query()
	reqQP.Set("api-version", subscriptionDiagnosticSettingsAPIVersion)
	req.Raw().URL.RawQuery = reqQP.Encode()
	req.Raw().Header["Accept"] = []string{"application/json"}
	return req, nil
}
