package monitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database/cosmosdb"
)

// ProcessAutoMonitorSweep runs one background reconciliation pass for a
// partner.  The returned provisioning state drives the caller's outer
// retry loop:
//
//   - the monitor document is gone: Deleted, terminal.
//   - the monitor is not yet, or no longer, Succeeded: its current state is
//     returned without running the diff, to avoid racing a monitor that is
//     still provisioning or being destroyed.
//   - tag rules not yet written: Creating, keep sweeping.
//   - otherwise the diff runs and Succeeded is returned.
func (r *Reconciler) ProcessAutoMonitorSweep(ctx context.Context, tenantID, partnerEntityID string) (api.ProvisioningState, error) {
	err := validateIdentifiers(map[string]string{
		"tenantID":        tenantID,
		"partnerEntityID": partnerEntityID,
	})
	if err != nil {
		return "", err
	}

	doc, err := r.monitors.Get(ctx, tenantID, partnerEntityID)
	if err != nil {
		if cosmosdb.IsErrorStatusCode(err, 404) {
			return api.ProvisioningStateDeleted, nil
		}
		return "", err
	}

	state := doc.Monitor.ProvisioningState
	if state == "" {
		state = api.ProvisioningStateNotSpecified
	}
	if state != api.ProvisioningStateSucceeded {
		return state, nil
	}

	if doc.Monitor.TagRules == nil {
		return api.ProvisioningStateCreating, nil
	}

	err = r.reconcileResources(ctx, doc.Monitor)
	if err != nil {
		return api.ProvisioningStateFailed, err
	}

	return api.ProvisioningStateSucceeded, nil
}
