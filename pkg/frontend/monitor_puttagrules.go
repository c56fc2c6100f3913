package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database/cosmosdb"
	"github.com/Azure/PartnerMonitor-RP/pkg/frontend/middleware"
)

// putTagRules stores the partner's new tag rules on the monitor document and
// reconciles immediately.  The monitor's provisioning state tracks the
// reconciliation outcome.
func (f *frontend) putTagRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := ctx.Value(middleware.ContextKeyLog).(*logrus.Entry)

	b, err := f._putTagRules(ctx, r)

	reply(log, w, b, err)
}

func (f *frontend) _putTagRules(ctx context.Context, r *http.Request) ([]byte, error) {
	tenantID, monitorID, cloudErr := requestIdentifiers(r)
	if cloudErr != nil {
		return nil, cloudErr
	}

	body := ctx.Value(middleware.ContextKeyBody).([]byte)

	var tagRules api.MonitoringTagRules
	err := json.Unmarshal(body, &tagRules)
	if err != nil {
		return nil, api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidRequestContent, "", "The request content was invalid and could not be deserialized: "+err.Error())
	}

	doc, err := f.db.Monitors.Patch(ctx, tenantID, monitorID, func(doc *api.MonitorDocument) error {
		doc.Monitor.TagRules = &tagRules
		doc.Monitor.ProvisioningState = api.ProvisioningStateUpdating
		return nil
	})
	if err != nil {
		if cosmosdb.IsErrorStatusCode(err, http.StatusNotFound) {
			return nil, api.NewCloudError(http.StatusNotFound, api.CloudErrorCodeNotFound, "", "The monitor '"+monitorID+"' was not found.")
		}
		return nil, err
	}

	reconcileErr := f.reconciler.ProcessTagRuleUpdate(ctx, tenantID, monitorID)

	state := api.ProvisioningStateSucceeded
	if reconcileErr != nil {
		state = api.ProvisioningStateFailed
	}

	doc, err = f.db.Monitors.Patch(ctx, tenantID, monitorID, func(doc *api.MonitorDocument) error {
		doc.Monitor.ProvisioningState = state
		return nil
	})
	if err != nil {
		return nil, err
	}

	if reconcileErr != nil {
		return nil, reconcileErr
	}

	return json.MarshalIndent(doc.Monitor, "", "    ")
}
