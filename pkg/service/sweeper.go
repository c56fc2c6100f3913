package service

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/database"
	"github.com/Azure/PartnerMonitor-RP/pkg/env"
	"github.com/Azure/PartnerMonitor-RP/pkg/metrics"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/recover"
)

const (
	defaultMaxWorkers    = 20
	defaultSweepInterval = 5 * time.Minute
)

// Sweeper is the engine surface the background service drives.
type Sweeper interface {
	ProcessAutoMonitorSweep(ctx context.Context, tenantID, partnerEntityID string) (api.ProvisioningState, error)
}

type sweeper struct {
	baseLog *logrus.Entry
	env     env.Core
	m       metrics.Emitter

	monitors database.Monitors
	engine   Sweeper

	interval   time.Duration
	maxWorkers int

	stopping atomic.Value
}

// Runnable represents a runnable object
type Runnable interface {
	Run(context.Context, <-chan struct{})
}

// NewSweeper returns a runnable background sweeper.  Every interval it
// walks all monitor documents and runs one reconciliation pass per partner.
// Non-terminal provisioning states are left to the next tick.
func NewSweeper(log *logrus.Entry, _env env.Core, m metrics.Emitter, monitors database.Monitors, engine Sweeper) (Runnable, error) {
	s := &sweeper{
		baseLog: log,
		env:     _env,
		m:       m,

		monitors: monitors,
		engine:   engine,

		interval:   defaultSweepInterval,
		maxWorkers: defaultMaxWorkers,
	}

	if value := _env.GetEnv("SWEEP_INTERVAL"); value != "" {
		interval, err := time.ParseDuration(value)
		if err != nil {
			return nil, err
		}
		s.interval = interval
	}

	if value := _env.GetEnv("MAX_WORKERS"); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		s.maxWorkers = i
	}

	s.stopping.Store(false)

	return s, nil
}

func (s *sweeper) Run(ctx context.Context, stop <-chan struct{}) {
	defer recover.Panic(s.baseLog)

	t := time.NewTicker(s.interval)
	defer t.Stop()

	go func() {
		defer recover.Panic(s.baseLog)

		<-stop
		s.baseLog.Print("stopping")
		s.stopping.Store(true)
	}()

	for !s.stopping.Load().(bool) {
		s.sweepAll(ctx)

		select {
		case <-t.C:
		case <-stop:
		}
	}
}

func (s *sweeper) sweepAll(ctx context.Context) {
	start := time.Now()

	docs, err := s.monitors.ListAll(ctx)
	if err != nil {
		s.baseLog.WithError(err).Error("listing monitors")
		s.m.EmitGauge("sweep.list.errors", 1, nil)
		return
	}

	g := &errgroup.Group{}
	g.SetLimit(s.maxWorkers)

	for _, doc := range docs {
		g.Go(func() error {
			defer recover.Panic(s.baseLog)

			log := s.baseLog.WithFields(logrus.Fields{
				"tenantID":        doc.Monitor.TenantID,
				"partnerEntityID": doc.Monitor.Name,
			})

			state, err := s.engine.ProcessAutoMonitorSweep(ctx, doc.Monitor.TenantID, doc.Monitor.Name)
			if err != nil {
				log.WithError(err).Error("sweep failed")
				s.m.EmitGauge("sweep.errors", 1, nil)
				return nil
			}

			log.Printf("sweep returned %s", state)
			return nil
		})
	}
	_ = g.Wait()

	s.m.EmitGauge("sweep.monitors", int64(len(docs)), nil)
	s.m.EmitFloat("sweep.duration", time.Since(start).Seconds(), nil)
}
