package database

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/database/cosmosdb"
	"github.com/Azure/PartnerMonitor-RP/pkg/env"
)

const (
	collMonitors                = "Monitors"
	collMonitoringRelationships = "MonitoringRelationships"
	collMonitoringStatuses      = "MonitoringStatuses"
)

// Database is the database connection holder.
type Database struct {
	Monitors                Monitors
	MonitoringRelationships MonitoringRelationships
	MonitoringStatuses      MonitoringStatuses
}

// NewDatabaseClientFromEnv creates a new cosmosdb.DatabaseClient from the
// environment.  The account master key is read from DATABASE_ACCOUNT_KEY.
func NewDatabaseClientFromEnv(ctx context.Context, _env env.Core, log *logrus.Entry) (cosmosdb.DatabaseClient, error) {
	accountName, err := env.DBAccountName(_env)
	if err != nil {
		return nil, err
	}

	if err = _env.ValidateVars("DATABASE_ACCOUNT_KEY"); err != nil {
		return nil, err
	}

	authorizer, err := cosmosdb.NewMasterKeyAuthorizer(_env.GetEnv("DATABASE_ACCOUNT_KEY"))
	if err != nil {
		return nil, err
	}

	return cosmosdb.NewDatabaseClient(log, http.DefaultClient, accountName+"."+_env.Environment().CosmosDBDNSSuffix, authorizer), nil
}

// NewDatabase returns the set of collection clients for the given database.
func NewDatabase(dbc cosmosdb.DatabaseClient, dbid string) *Database {
	return &Database{
		Monitors:                NewMonitors(dbc, dbid, collMonitors),
		MonitoringRelationships: NewMonitoringRelationships(dbc, dbid, collMonitoringRelationships),
		MonitoringStatuses:      NewMonitoringStatuses(dbc, dbid, collMonitoringStatuses),
	}
}

// lowerKey builds the lower-cased lookup key for a document.  Uniqueness is
// enforced by the collections' unique key policy on /key.
func lowerKey(parts ...string) string {
	return strings.ToLower(strings.Join(parts, "/"))
}

func validateKeyParts(parts ...string) error {
	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("id cannot be empty")
		}
	}
	return nil
}
