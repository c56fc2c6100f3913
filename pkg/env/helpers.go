package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvDatabaseName        = "DATABASE_NAME"
	EnvDatabaseAccountName = "DATABASE_ACCOUNT_NAME"
)

// IsLocalDevelopmentModeFromConfig returns true when the RP is running in
// local development mode.
func IsLocalDevelopmentModeFromConfig(cfg *viper.Viper) bool {
	return strings.EqualFold(cfg.GetString("RP_MODE"), "development")
}

// ValidateVars iterates over all the elements of vars and returns an error if
// any of them are unset in the configuration.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	var unset []string

	for _, v := range vars {
		if cfg.GetString(v) == "" {
			unset = append(unset, v)
		}
	}

	if len(unset) == 1 {
		return fmt.Errorf("environment variable %q unset", unset[0])
	}

	if len(unset) > 1 {
		return fmt.Errorf("environment variables %s unset", strings.Join(unset, ", "))
	}

	return nil
}

// DBAccountName fetches the database account name from the configuration.
func DBAccountName(c Core) (string, error) {
	if err := c.ValidateVars(EnvDatabaseAccountName); err != nil {
		return "", err
	}

	return c.GetEnv(EnvDatabaseAccountName), nil
}

// DBName returns the database name to use.
func DBName(c Core) (string, error) {
	if !c.IsLocalDevelopmentMode() {
		return "PartnerMonitor", nil
	}

	if err := c.ValidateVars(EnvDatabaseName); err != nil {
		return "", fmt.Errorf("%v (development mode)", err.Error())
	}

	return c.GetEnv(EnvDatabaseName), nil
}
