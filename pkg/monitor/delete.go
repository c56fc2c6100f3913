package monitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/PartnerMonitor-RP/pkg/database/cosmosdb"
)

// ProcessDelete tears down everything the partner owns: every installed
// diagnostic setting, the ledger rows behind them, subscription-level
// monitoring, and finally the monitor document itself.  The document is
// deleted last so that a partial teardown is retried on the next call.
func (r *Reconciler) ProcessDelete(ctx context.Context, tenantID, partnerEntityID string) error {
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

	monitored, err := r.relationships.ListByPartner(ctx, tenantID, partnerEntityID)
	if err != nil {
		return err
	}

	tracked, err := r.statuses.ListByPartner(ctx, tenantID, partnerEntityID)
	if err != nil {
		return err
	}

	r.apply(ctx, doc.Monitor, computeDeleteActions(monitored, tracked))

	// subscription rows are excluded from the diff, stop them here
	for _, relationship := range monitored {
		if isSubscriptionScope(relationship.MonitoredResourceID) &&
			relationship.PartnerEntityID == partnerEntityID {
			r.stopMonitoring(ctx, r.log, relationship)
		}
	}

	return r.monitors.Delete(ctx, doc)
}
