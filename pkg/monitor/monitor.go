package monitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database"
	"github.com/Azure/PartnerMonitor-RP/pkg/env"
	"github.com/Azure/PartnerMonitor-RP/pkg/metrics"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/diagnostics"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/discovery"
)

// defaultMaxConcurrentOperations bounds the fan-out when applying an action
// batch.  The diagnostic-settings API rate limits aggressively; unbounded
// fan-out compounds with 429s and locked scopes.
const defaultMaxConcurrentOperations = 10

// Reconciler drives the monitoring state of one tenant's resources towards
// the partner's declared tag rules.  It is stateless between passes: every
// pass re-reads the rules, the ledger and the live resource inventory.
type Reconciler struct {
	log *logrus.Entry
	env env.Core
	m   metrics.Emitter

	monitors      database.Monitors
	relationships database.MonitoringRelationships
	statuses      database.MonitoringStatuses

	discovery    discovery.ResourceDiscovery
	synchronizer diagnostics.Synchronizer

	maxConcurrentOperations int
}

// NewReconciler returns a new Reconciler
func NewReconciler(log *logrus.Entry, _env env.Core, m metrics.Emitter, db *database.Database, rd discovery.ResourceDiscovery, synchronizer diagnostics.Synchronizer) (*Reconciler, error) {
	r := &Reconciler{
		log: log,
		env: _env,
		m:   m,

		monitors:      db.Monitors,
		relationships: db.MonitoringRelationships,
		statuses:      db.MonitoringStatuses,

		discovery:    rd,
		synchronizer: synchronizer,

		maxConcurrentOperations: defaultMaxConcurrentOperations,
	}

	if value := _env.GetEnv("MAX_CONCURRENT_OPERATIONS"); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		r.maxConcurrentOperations = i
	}

	return r, nil
}

// reconcileResources runs one full resource-level diff/apply cycle for the
// monitor.  Only the construction of the three sets can fail the pass; once
// classification is done, apply absorbs per-item failures.
func (r *Reconciler) reconcileResources(ctx context.Context, monitor *api.Monitor) error {
	var discovered []api.MonitoredResource

	if monitor.Enabled && monitor.TagRules != nil && monitor.TagRules.SendActivityLogs {
		var err error
		discovered, err = r.discovery.Discover(ctx, monitor.SubscriptionID, monitor.TagRules.FilteringTags)
		if err != nil {
			return fmt.Errorf("discovering resources: %w", err)
		}
	}

	monitored, err := r.relationships.ListByPartner(ctx, monitor.TenantID, monitor.Name)
	if err != nil {
		return fmt.Errorf("listing monitoring relationships: %w", err)
	}

	tracked, err := r.statuses.ListByPartner(ctx, monitor.TenantID, monitor.Name)
	if err != nil {
		return fmt.Errorf("listing monitoring statuses: %w", err)
	}

	r.apply(ctx, monitor, computeActions(discovered, monitored, tracked))
	return nil
}

func validateIdentifiers(ids map[string]string) error {
	for name, value := range ids {
		if value == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}
	}
	return nil
}
