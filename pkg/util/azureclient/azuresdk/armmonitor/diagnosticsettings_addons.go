package armmonitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
)

// DiagnosticSettingsClientAddons contains addons for DiagnosticSettingsClient
type DiagnosticSettingsClientAddons interface {
	List(ctx context.Context, resourceURI string) ([]*armmonitor.DiagnosticSettingsResource, error)
}

func (c *diagnosticSettingsClient) List(ctx context.Context, resourceURI string) (result []*armmonitor.DiagnosticSettingsResource, err error) {
	pager := c.NewListPager(resourceURI, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}

	return result, nil
}

// DiagnosticSettingsCategoryClientAddons contains addons for DiagnosticSettingsCategoryClient
type DiagnosticSettingsCategoryClientAddons interface {
	List(ctx context.Context, resourceURI string) ([]*armmonitor.DiagnosticSettingsCategoryResource, error)
}

func (c *diagnosticSettingsCategoryClient) List(ctx context.Context, resourceURI string) (result []*armmonitor.DiagnosticSettingsCategoryResource, err error) {
	pager := c.NewListPager(resourceURI, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}

	return result, nil
}
