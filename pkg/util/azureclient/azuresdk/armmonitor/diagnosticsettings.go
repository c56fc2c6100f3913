package armmonitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"

	"github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient/azuresdk/$GOPACKAGE DiagnosticSettingsClient,DiagnosticSettingsCategoryClient,SubscriptionDiagnosticSettingsClient

// DiagnosticSettingsClient is a minimal interface for Azure DiagnosticSettingsClient
type DiagnosticSettingsClient interface {
	CreateOrUpdate(ctx context.Context, resourceURI string, name string, parameters armmonitor.DiagnosticSettingsResource, options *armmonitor.DiagnosticSettingsClientCreateOrUpdateOptions) (armmonitor.DiagnosticSettingsClientCreateOrUpdateResponse, error)
	Delete(ctx context.Context, resourceURI string, name string, options *armmonitor.DiagnosticSettingsClientDeleteOptions) (armmonitor.DiagnosticSettingsClientDeleteResponse, error)
	DiagnosticSettingsClientAddons
}

type diagnosticSettingsClient struct {
	*armmonitor.DiagnosticSettingsClient
}

var _ DiagnosticSettingsClient = &diagnosticSettingsClient{}

// NewDiagnosticSettingsClient creates a new DiagnosticSettingsClient
func NewDiagnosticSettingsClient(environment *azureclient.Environment, credential azcore.TokenCredential) (DiagnosticSettingsClient, error) {
	options := arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: environment.Cloud,
		},
	}
	client, err := armmonitor.NewDiagnosticSettingsClient(credential, &options)
	if err != nil {
		return nil, err
	}
	return &diagnosticSettingsClient{DiagnosticSettingsClient: client}, nil
}

// DiagnosticSettingsCategoryClient is a minimal interface for Azure DiagnosticSettingsCategoryClient
type DiagnosticSettingsCategoryClient interface {
	DiagnosticSettingsCategoryClientAddons
}

type diagnosticSettingsCategoryClient struct {
	*armmonitor.DiagnosticSettingsCategoryClient
}

var _ DiagnosticSettingsCategoryClient = &diagnosticSettingsCategoryClient{}

// NewDiagnosticSettingsCategoryClient creates a new DiagnosticSettingsCategoryClient
func NewDiagnosticSettingsCategoryClient(environment *azureclient.Environment, credential azcore.TokenCredential) (DiagnosticSettingsCategoryClient, error) {
	options := arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: environment.Cloud,
		},
	}
	client, err := armmonitor.NewDiagnosticSettingsCategoryClient(credential, &options)
	if err != nil {
		return nil, err
	}
	return &diagnosticSettingsCategoryClient{DiagnosticSettingsCategoryClient: client}, nil
}
