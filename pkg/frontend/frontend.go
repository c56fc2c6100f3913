package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database"
	"github.com/Azure/PartnerMonitor-RP/pkg/env"
	"github.com/Azure/PartnerMonitor-RP/pkg/frontend/middleware"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/uuid"
)

// Reconciler is the engine surface the frontend drives.
type Reconciler interface {
	ProcessTagRuleUpdate(ctx context.Context, tenantID, partnerEntityID string) error
	ProcessAutoMonitorSweep(ctx context.Context, tenantID, partnerEntityID string) (api.ProvisioningState, error)
	ProcessDelete(ctx context.Context, tenantID, partnerEntityID string) error
}

type frontend struct {
	baseLog *logrus.Entry
	env     env.Core
	db      *database.Database

	reconciler Reconciler

	l net.Listener

	ready atomic.Value
}

// Runnable represents a runnable object
type Runnable interface {
	Run(stop <-chan struct{})
}

// NewFrontend returns a new runnable frontend
func NewFrontend(ctx context.Context, baseLog *logrus.Entry, _env env.Core, db *database.Database, reconciler Reconciler) (Runnable, error) {
	f := &frontend{
		baseLog: baseLog,
		env:     _env,
		db:      db,

		reconciler: reconciler,
	}

	address := _env.GetEnv("RP_LISTEN_ADDRESS")
	if address == "" {
		address = ":8443"
	}

	var err error
	f.l, err = net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	f.ready.Store(true)

	return f, nil
}

func (f *frontend) getReady(w http.ResponseWriter, r *http.Request) {
	if f.ready.Load().(bool) {
		api.WriteCloudError(w, &api.CloudError{StatusCode: http.StatusOK})
	} else {
		api.WriteError(w, http.StatusInternalServerError, api.CloudErrorCodeInternalServerError, "", "Internal server error.")
	}
}

func (f *frontend) router() chi.Router {
	r := chi.NewRouter()

	logMiddleware := middleware.LogMiddleware{
		EnvironmentName: f.env.Environment().Name,
		Location:        f.env.Location(),
		BaseLog:         f.baseLog,
	}

	r.Use(logMiddleware.Log)
	r.Use(middleware.Panic)
	r.Use(middleware.Body)

	r.Get("/healthz/ready", f.getReady)

	r.Route("/monitors/{monitorID}", func(r chi.Router) {
		r.Put("/tagrules", f.putTagRules)
		r.Post("/sweep", f.postSweep)
		r.Delete("/", f.deleteMonitor)
	})

	return r
}

func (f *frontend) Run(stop <-chan struct{}) {
	go func() {
		<-stop
		f.baseLog.Print("marking frontend not ready")
		f.ready.Store(false)
	}()

	err := http.Serve(f.l, f.router())
	f.baseLog.Error(err)
}

// requestIdentifiers extracts and validates the tenant and monitor
// identifiers every route requires.
func requestIdentifiers(r *http.Request) (tenantID, monitorID string, cloudErr *api.CloudError) {
	tenantID = r.URL.Query().Get("tenantId")
	if tenantID == "" {
		return "", "", api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "tenantId", "The query parameter 'tenantId' is required.")
	}
	if !uuid.IsValid(tenantID) {
		return "", "", api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "tenantId", "The query parameter 'tenantId' must be a valid GUID.")
	}

	monitorID = chi.URLParam(r, "monitorID")
	if monitorID == "" {
		return "", "", api.NewCloudError(http.StatusBadRequest, api.CloudErrorCodeInvalidParameter, "monitorID", "The path parameter 'monitorID' is required.")
	}

	return tenantID, monitorID, nil
}
