package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient"
)

type ServiceComponent string

const (
	COMPONENT_RP      ServiceComponent = "RP"
	COMPONENT_SWEEPER ServiceComponent = "SWEEPER"
	COMPONENT_TOOLING ServiceComponent = "TOOLING"
)

// Core collects basic configuration information which is expected to be
// available on any service VMSS.
type Core interface {
	IsLocalDevelopmentMode() bool
	Environment() *azureclient.Environment
	SubscriptionID() string
	TenantID() string
	Location() string
	NewMSITokenCredential() (azcore.TokenCredential, error)

	GetEnv(string) string
	ValidateVars(...string) error

	Component() string
	Logger() *logrus.Entry
}

type core struct {
	cfg *viper.Viper

	environment    *azureclient.Environment
	subscriptionID string
	tenantID       string
	location       string

	isLocalDevelopmentMode bool

	component    ServiceComponent
	componentLog *logrus.Entry
}

func (c *core) IsLocalDevelopmentMode() bool {
	return c.isLocalDevelopmentMode
}

func (c *core) Environment() *azureclient.Environment {
	return c.environment
}

func (c *core) SubscriptionID() string {
	return c.subscriptionID
}

func (c *core) TenantID() string {
	return c.tenantID
}

func (c *core) Location() string {
	return c.location
}

func (c *core) Component() string {
	return string(c.component)
}

func (c *core) Logger() *logrus.Entry {
	return c.componentLog
}

func (c *core) GetEnv(name string) string {
	return c.cfg.GetString(name)
}

func (c *core) ValidateVars(vars ...string) error {
	return ValidateVars(c.cfg, vars...)
}

func (c *core) NewMSITokenCredential() (azcore.TokenCredential, error) {
	if !c.isLocalDevelopmentMode {
		return azidentity.NewManagedIdentityCredential(nil)
	}

	for _, key := range []string{
		"AZURE_CLIENT_ID",
		"AZURE_CLIENT_SECRET",
		"AZURE_TENANT_ID",
	} {
		if _, found := os.LookupEnv(key); !found {
			return nil, fmt.Errorf("environment variable %q unset (development mode)", key)
		}
	}

	return azidentity.NewClientSecretCredential(
		os.Getenv("AZURE_TENANT_ID"),
		os.Getenv("AZURE_CLIENT_ID"),
		os.Getenv("AZURE_CLIENT_SECRET"),
		nil)
}

func NewCore(ctx context.Context, log *logrus.Entry, component ServiceComponent, cfg *viper.Viper) (Core, error) {
	isLocalDevelopmentMode := IsLocalDevelopmentModeFromConfig(cfg)
	componentLog := log.WithField("component", strings.ReplaceAll(strings.ToLower(string(component)), "_", "-"))
	if isLocalDevelopmentMode {
		log.Info("running in local development mode")
	}

	if err := ValidateVars(cfg, "AZURE_SUBSCRIPTION_ID", "AZURE_TENANT_ID", "LOCATION"); err != nil {
		return nil, err
	}

	environmentName := cfg.GetString("AZURE_ENVIRONMENT")
	if environmentName == "" {
		environmentName = "AzurePublicCloud"
	}

	environment, err := azureclient.EnvironmentFromName(environmentName)
	if err != nil {
		return nil, err
	}

	return &core{
		cfg: cfg,

		environment:    &environment,
		subscriptionID: cfg.GetString("AZURE_SUBSCRIPTION_ID"),
		tenantID:       cfg.GetString("AZURE_TENANT_ID"),
		location:       cfg.GetString("LOCATION"),

		isLocalDevelopmentMode: isLocalDevelopmentMode,

		component:    component,
		componentLog: componentLog,
	}, nil
}
