package service

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/env"
	"github.com/Azure/PartnerMonitor-RP/pkg/metrics/noop"
	mock_database "github.com/Azure/PartnerMonitor-RP/pkg/util/mocks/database"
	utilerror "github.com/Azure/PartnerMonitor-RP/test/util/error"
)

type fakeEngine struct {
	mu    sync.Mutex
	calls map[string]int

	err error
}

func (e *fakeEngine) ProcessAutoMonitorSweep(ctx context.Context, tenantID, partnerEntityID string) (api.ProvisioningState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.calls == nil {
		e.calls = map[string]int{}
	}
	e.calls[tenantID+"/"+partnerEntityID]++

	if e.err != nil {
		return api.ProvisioningStateFailed, e.err
	}
	return api.ProvisioningStateSucceeded, nil
}

func testEnv(t *testing.T, set map[string]string) env.Core {
	cfg := viper.New()
	cfg.Set("AZURE_SUBSCRIPTION_ID", "sub")
	cfg.Set("AZURE_TENANT_ID", "tenant")
	cfg.Set("LOCATION", "eastus")
	for k, v := range set {
		cfg.Set(k, v)
	}

	_env, err := env.NewCore(context.Background(), logrus.NewEntry(logrus.StandardLogger()), env.COMPONENT_SWEEPER, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return _env
}

func monitorDoc(tenantID, name string) *api.MonitorDocument {
	return &api.MonitorDocument{
		Monitor: &api.Monitor{
			Name:     name,
			TenantID: tenantID,
		},
	}
}

func TestNewSweeperConfiguration(t *testing.T) {
	for _, tt := range []struct {
		name           string
		set            map[string]string
		wantInterval   time.Duration
		wantMaxWorkers int
		wantErr        string
	}{
		{
			name:           "defaults",
			wantInterval:   defaultSweepInterval,
			wantMaxWorkers: defaultMaxWorkers,
		},
		{
			name:           "overridden",
			set:            map[string]string{"SWEEP_INTERVAL": "30s", "MAX_WORKERS": "5"},
			wantInterval:   30 * time.Second,
			wantMaxWorkers: 5,
		},
		{
			name:    "bad interval",
			set:     map[string]string{"SWEEP_INTERVAL": "soon"},
			wantErr: `time: invalid duration "soon"`,
		},
		{
			name:    "bad worker count",
			set:     map[string]string{"MAX_WORKERS": "many"},
			wantErr: `strconv.Atoi: parsing "many": invalid syntax`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			runnable, err := NewSweeper(logrus.NewEntry(logrus.StandardLogger()), testEnv(t, tt.set), &noop.Noop{}, nil, nil)
			if tt.wantErr != "" {
				utilerror.AssertErrorMessage(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			s := runnable.(*sweeper)
			if s.interval != tt.wantInterval {
				t.Errorf("got interval %s", s.interval)
			}
			if s.maxWorkers != tt.wantMaxWorkers {
				t.Errorf("got max workers %d", s.maxWorkers)
			}
		})
	}
}

func TestSweepAll(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	monitors := mock_database.NewMockMonitors(controller)
	monitors.EXPECT().ListAll(ctx).Return([]*api.MonitorDocument{
		monitorDoc("tenant1", "partner1"),
		monitorDoc("tenant1", "partner2"),
		monitorDoc("tenant2", "partner3"),
	}, nil)

	engine := &fakeEngine{}

	s := &sweeper{
		baseLog: logrus.NewEntry(logrus.StandardLogger()),
		m:       &noop.Noop{},

		monitors: monitors,
		engine:   engine,

		maxWorkers: defaultMaxWorkers,
	}

	s.sweepAll(ctx)

	if len(engine.calls) != 3 {
		t.Errorf("got calls %v", engine.calls)
	}
	for _, key := range []string{"tenant1/partner1", "tenant1/partner2", "tenant2/partner3"} {
		if engine.calls[key] != 1 {
			t.Errorf("got %d calls for %s", engine.calls[key], key)
		}
	}
}

func TestSweepAllSurvivesPartnerFailures(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	monitors := mock_database.NewMockMonitors(controller)
	monitors.EXPECT().ListAll(ctx).Return([]*api.MonitorDocument{
		monitorDoc("tenant", "partner1"),
		monitorDoc("tenant", "partner2"),
	}, nil)

	engine := &fakeEngine{err: errors.New("throttled")}

	s := &sweeper{
		baseLog: logrus.NewEntry(logrus.StandardLogger()),
		m:       &noop.Noop{},

		monitors: monitors,
		engine:   engine,

		maxWorkers: defaultMaxWorkers,
	}

	s.sweepAll(ctx)

	// every partner is attempted even when all of them fail
	if len(engine.calls) != 2 {
		t.Errorf("got calls %v", engine.calls)
	}
}

func TestSweepAllToleratesListFailure(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	monitors := mock_database.NewMockMonitors(controller)
	monitors.EXPECT().ListAll(ctx).Return(nil, errors.New("database unavailable"))

	s := &sweeper{
		baseLog: logrus.NewEntry(logrus.StandardLogger()),
		m:       &noop.Noop{},

		monitors: monitors,
		engine:   &fakeEngine{},

		maxWorkers: defaultMaxWorkers,
	}

	s.sweepAll(ctx)
}

func TestRunStops(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	monitors := mock_database.NewMockMonitors(controller)
	monitors.EXPECT().ListAll(ctx).Return(nil, nil).AnyTimes()

	s := &sweeper{
		baseLog: logrus.NewEntry(logrus.StandardLogger()),
		m:       &noop.Noop{},

		monitors: monitors,
		engine:   &fakeEngine{},

		interval:   time.Millisecond,
		maxWorkers: defaultMaxWorkers,
	}
	s.stopping.Store(false)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		s.Run(ctx, stop)
		close(done)
	}()

	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
