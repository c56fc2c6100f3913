package monitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database/cosmosdb"
)

// ProcessTagRuleUpdate reconciles resource-level monitoring against the
// monitor's stored tag rules and toggles subscription-level monitoring to
// match sendSubscriptionLogs.  It runs regardless of the monitor's
// provisioning state: a rule update is an explicit instruction.
func (r *Reconciler) ProcessTagRuleUpdate(ctx context.Context, tenantID, partnerEntityID string) error {
	err := validateIdentifiers(map[string]string{
		"tenantID":        tenantID,
		"partnerEntityID": partnerEntityID,
	})
	if err != nil {
		return err
	}

	doc, err := r.monitors.Get(ctx, tenantID, partnerEntityID)
	if err != nil {
		if cosmosdb.IsErrorStatusCode(err, 404) {
			return nil
		}
		return err
	}

	err = r.reconcileResources(ctx, doc.Monitor)
	if err != nil {
		return err
	}

	return r.reconcileSubscription(ctx, doc.Monitor)
}

// reconcileSubscription toggles the subscription-scope diagnostic setting.
// Subscription monitoring is recorded in the ledger under a pseudo-resource
// id of the bare subscription path.
func (r *Reconciler) reconcileSubscription(ctx context.Context, monitor *api.Monitor) error {
	resourceID := subscriptionResourceID(monitor.SubscriptionID)

	existing, err := r.relationships.ListByResource(ctx, monitor.TenantID, resourceID)
	if err != nil {
		return err
	}

	var current *api.MonitoringRelationship
	for _, relationship := range existing {
		if relationship.PartnerEntityID == monitor.Name {
			current = relationship
			break
		}
	}

	desired := monitor.Enabled && monitor.TagRules != nil && monitor.TagRules.SendSubscriptionLogs

	switch {
	case desired && current == nil:
		r.startMonitoring(ctx, r.log, monitor, startAction{
			resource: api.MonitoredResource{
				ID:       resourceID,
				Location: monitor.Location,
			},
			reason: api.ReasonCapturedByRules,
		})
	case !desired && current != nil:
		r.stopMonitoring(ctx, r.log, current)
	}

	return nil
}
