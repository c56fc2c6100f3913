package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/frontend/middleware"
)

func (f *frontend) deleteMonitor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := ctx.Value(middleware.ContextKeyLog).(*logrus.Entry)

	err := f._deleteMonitor(ctx, r)
	if err != nil {
		reply(log, w, nil, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (f *frontend) _deleteMonitor(ctx context.Context, r *http.Request) error {
	tenantID, monitorID, cloudErr := requestIdentifiers(r)
	if cloudErr != nil {
		return cloudErr
	}

	return f.reconciler.ProcessDelete(ctx, tenantID, monitorID)
}
