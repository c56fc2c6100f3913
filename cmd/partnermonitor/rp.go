package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/PartnerMonitor-RP/pkg/database"
	"github.com/Azure/PartnerMonitor-RP/pkg/env"
	"github.com/Azure/PartnerMonitor-RP/pkg/frontend"
	"github.com/Azure/PartnerMonitor-RP/pkg/metrics/noop"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/diagnostics"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/discovery"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/sink"
	"github.com/Azure/PartnerMonitor-RP/pkg/service"
	armmonitorclient "github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient/azuresdk/armmonitor"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient/azuresdk/armresourcegraph"
)

func rp(ctx context.Context, log *logrus.Entry, cfg *viper.Viper) error {
	_env, err := env.NewCore(ctx, log, env.COMPONENT_RP, cfg)
	if err != nil {
		return err
	}

	credential, err := _env.NewMSITokenCredential()
	if err != nil {
		return err
	}

	graphClient, err := armresourcegraph.NewClient(_env.Environment(), credential)
	if err != nil {
		return err
	}

	settings, err := armmonitorclient.NewDiagnosticSettingsClient(_env.Environment(), credential)
	if err != nil {
		return err
	}

	categories, err := armmonitorclient.NewDiagnosticSettingsCategoryClient(_env.Environment(), credential)
	if err != nil {
		return err
	}

	subscriptionSettings, err := armmonitorclient.NewSubscriptionDiagnosticSettingsClient(_env.Environment(), _env.SubscriptionID(), credential)
	if err != nil {
		return err
	}

	dbc, err := database.NewDatabaseClientFromEnv(ctx, _env, log.WithField("component", "database"))
	if err != nil {
		return err
	}

	dbName, err := env.DBName(_env)
	if err != nil {
		return err
	}

	db := database.NewDatabase(dbc, dbName)

	sinks, err := sink.NewDirectoryFromEnv(_env)
	if err != nil {
		return err
	}

	policy := diagnostics.SharedAcrossPartners
	if _env.GetEnv("SHARING_POLICY") == "isolated" {
		policy = diagnostics.IsolatedPerPartner
	}

	m := &noop.Noop{}

	synchronizer := diagnostics.NewSynchronizer(log.WithField("component", "diagnostics"), settings, categories, subscriptionSettings, sinks, policy)
	rd := discovery.NewResourceDiscovery(log.WithField("component", "discovery"), graphClient)

	reconciler, err := monitor.NewReconciler(log.WithField("component", "reconciler"), _env, m, db, rd, synchronizer)
	if err != nil {
		return err
	}

	f, err := frontend.NewFrontend(ctx, log.WithField("component", "frontend"), _env, db, reconciler)
	if err != nil {
		return err
	}

	s, err := service.NewSweeper(log.WithField("component", "sweeper"), _env, m, db.Monitors, reconciler)
	if err != nil {
		return err
	}

	sigterm := make(chan os.Signal, 1)
	stop := make(chan struct{})
	signal.Notify(sigterm, syscall.SIGTERM)

	log.Print("listening")
	go s.Run(ctx, stop)
	go f.Run(stop)

	<-sigterm
	log.Print("received SIGTERM")
	close(stop)

	return nil
}
