package monitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/diagnostics"
)

// apply executes the three action lists in order: starts, then stops, then
// tracking cleanup.  New resources begin streaming before sink quota is
// reclaimed from departing ones, which narrows the window in which a
// resource that should be monitored is rejected on quota.  Per-item
// failures are logged and counted; they never cancel sibling items or fail
// the batch.
func (r *Reconciler) apply(ctx context.Context, monitor *api.Monitor, a *actions) {
	start := time.Now()
	log := r.log.WithFields(logrus.Fields{
		"tenantID":        monitor.TenantID,
		"partnerEntityID": monitor.Name,
	})

	dims := map[string]string{
		"tenantID":        monitor.TenantID,
		"partnerEntityID": monitor.Name,
	}
	r.m.EmitGauge("reconcile.actions.start", int64(len(a.start)), dims)
	r.m.EmitGauge("reconcile.actions.stop", int64(len(a.stop)), dims)
	r.m.EmitGauge("reconcile.actions.stoptracking", int64(len(a.stopTracking)), dims)

	g := &errgroup.Group{}
	g.SetLimit(r.maxConcurrentOperations)
	for _, action := range a.start {
		g.Go(func() error {
			r.startMonitoring(ctx, log, monitor, action)
			return nil
		})
	}
	_ = g.Wait()

	g = &errgroup.Group{}
	g.SetLimit(r.maxConcurrentOperations)
	for _, relationship := range a.stop {
		g.Go(func() error {
			r.stopMonitoring(ctx, log, relationship)
			return nil
		})
	}
	_ = g.Wait()

	g = &errgroup.Group{}
	g.SetLimit(r.maxConcurrentOperations)
	for _, resourceID := range a.stopTracking {
		g.Go(func() error {
			r.stopTracking(ctx, log, monitor, resourceID)
			return nil
		})
	}
	_ = g.Wait()

	r.m.EmitFloat("reconcile.apply.duration", time.Since(start).Seconds(), dims)
}

// startMonitoring installs a diagnostic setting on one resource and records
// the outcome.  The status row is written before the relationship row: a
// crash in between leaves a tracked-but-unmonitored row which the next pass
// repairs, never a relationship without a status.
func (r *Reconciler) startMonitoring(ctx context.Context, log *logrus.Entry, monitor *api.Monitor, action startAction) {
	log = log.WithField("resourceID", action.resource.ID)

	result := r.synchronizer.Ensure(ctx, diagnostics.Target{
		ResourceID:     action.resource.ID,
		Location:       action.resource.Location,
		IsSubscription: isSubscriptionScope(action.resource.ID),
	}, monitor.ID, monitor.TenantID)

	reason := result.Reason
	if result.OK && action.reason.IsProtected() {
		reason = action.reason
	}

	_, err := r.statuses.Upsert(ctx, &api.MonitoringStatus{
		TenantID:            monitor.TenantID,
		PartnerEntityID:     monitor.Name,
		MonitoredResourceID: action.resource.ID,
		Location:            action.resource.Location,
		IsMonitored:         result.OK,
		Reason:              reason,
	})
	if err != nil {
		log.WithError(err).Error("upserting monitoring status")
		r.m.EmitGauge("reconcile.start.errors", 1, nil)
		return
	}

	if !result.OK {
		log.Infof("not monitored: %s", result.Reason)
		return
	}

	_, err = r.relationships.Create(ctx, &api.MonitoringRelationship{
		TenantID:               monitor.TenantID,
		PartnerEntityID:        monitor.Name,
		MonitoredResourceID:    action.resource.ID,
		DiagnosticSettingsName: result.SettingName,
		EventHubName:           result.EventHubName,
		AuthorizationRuleID:    result.AuthorizationRuleID,
	})
	if err != nil {
		log.WithError(err).Error("creating monitoring relationship")
		r.m.EmitGauge("reconcile.start.errors", 1, nil)
	}
}

// stopMonitoring removes a diagnostic setting and the ledger rows behind it.
// The relationship row is deleted before the status row so that a crash in
// between never leaves a relationship without a status.
func (r *Reconciler) stopMonitoring(ctx context.Context, log *logrus.Entry, relationship *api.MonitoringRelationship) {
	log = log.WithField("resourceID", relationship.MonitoredResourceID)

	ok := r.synchronizer.Remove(ctx, diagnostics.Target{
		ResourceID:     relationship.MonitoredResourceID,
		IsSubscription: isSubscriptionScope(relationship.MonitoredResourceID),
	}, relationship.DiagnosticSettingsName)
	if !ok {
		log.Error("removing diagnostic setting failed, keeping ledger rows for retry")
		r.m.EmitGauge("reconcile.stop.errors", 1, nil)
		return
	}

	err := r.relationships.Delete(ctx, relationship.TenantID, relationship.PartnerEntityID, relationship.MonitoredResourceID)
	if err != nil {
		log.WithError(err).Error("deleting monitoring relationship")
		r.m.EmitGauge("reconcile.stop.errors", 1, nil)
		return
	}

	err = r.statuses.Delete(ctx, relationship.TenantID, relationship.PartnerEntityID, relationship.MonitoredResourceID)
	if err != nil {
		log.WithError(err).Error("deleting monitoring status")
		r.m.EmitGauge("reconcile.stop.errors", 1, nil)
	}
}

// stopTracking is pure ledger cleanup: nothing was ever installed on the
// resource under this pairing.
func (r *Reconciler) stopTracking(ctx context.Context, log *logrus.Entry, monitor *api.Monitor, resourceID string) {
	err := r.statuses.Delete(ctx, monitor.TenantID, monitor.Name, resourceID)
	if err != nil {
		log.WithError(err).WithField("resourceID", resourceID).Error("deleting monitoring status")
		r.m.EmitGauge("reconcile.stoptracking.errors", 1, nil)
	}
}
