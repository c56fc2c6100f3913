package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/frontend/middleware"
)

func (f *frontend) postSweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := ctx.Value(middleware.ContextKeyLog).(*logrus.Entry)

	b, err := f._postSweep(ctx, r)

	reply(log, w, b, err)
}

func (f *frontend) _postSweep(ctx context.Context, r *http.Request) ([]byte, error) {
	tenantID, monitorID, cloudErr := requestIdentifiers(r)
	if cloudErr != nil {
		return nil, cloudErr
	}

	state, err := f.reconciler.ProcessAutoMonitorSweep(ctx, tenantID, monitorID)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(map[string]string{
		"provisioningState": state.String(),
	}, "", "    ")
}
