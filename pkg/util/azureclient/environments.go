package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
)

// Environment contains the cloud-specific information needed by the RP.
type Environment struct {
	Name  string
	Cloud cloud.Configuration

	// Microsoft identity platform scopes used by the RP
	// See https://learn.microsoft.com/EN-US/azure/active-directory/develop/scopes-oidc#the-default-scope
	ResourceManagerScope string

	CosmosDBDNSSuffix string
}

var (
	// PublicCloud contains the public Azure cloud environment.
	PublicCloud = Environment{
		Name:                 "AzureCloud",
		Cloud:                cloud.AzurePublic,
		ResourceManagerScope: "https://management.azure.com/.default",
		CosmosDBDNSSuffix:    "documents.azure.com",
	}

	// USGovernmentCloud contains the US Gov cloud environment.
	USGovernmentCloud = Environment{
		Name:                 "AzureUSGovernment",
		Cloud:                cloud.AzureGovernment,
		ResourceManagerScope: "https://management.usgovcloudapi.net/.default",
		CosmosDBDNSSuffix:    "documents.azure.us",
	}
)

// EnvironmentFromName returns the Environment corresponding to the common
// name specified.
func EnvironmentFromName(name string) (Environment, error) {
	switch strings.ToUpper(name) {
	case "AZUREPUBLICCLOUD", "AZURECLOUD":
		return PublicCloud, nil
	case "AZUREUSGOVERNMENTCLOUD", "AZUREUSGOVERNMENT":
		return USGovernmentCloud, nil
	}

	return Environment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}
