package diagnostics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/sink"
	armmonitorclient "github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient/azuresdk/armmonitor"
	mock_armmonitor "github.com/Azure/PartnerMonitor-RP/pkg/util/mocks/azureclient/azuresdk/armmonitor"
	"github.com/Azure/PartnerMonitor-RP/test/util/deterministicuuid"
)

const (
	testResourceID = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/account1"
	testMonitorID  = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.PartnerMonitor/monitors/partner1"
	testTenantID   = "11111111-1111-1111-1111-111111111111"
	testRuleID     = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.EventHub/namespaces/ns/authorizationRules/send"
)

func pointerTo[T any](v T) *T { return &v }

func testSinks() sink.Directory {
	return sink.NewDirectory(map[string]sink.Sink{
		"eastus": {
			EventHubName:        "partner-eastus",
			AuthorizationRuleID: testRuleID,
		},
	})
}

func testSynchronizer(settings *mock_armmonitor.MockDiagnosticSettingsClient, categories *mock_armmonitor.MockDiagnosticSettingsCategoryClient, subscriptionSettings *mock_armmonitor.MockSubscriptionDiagnosticSettingsClient, policy SharingPolicy) *synchronizer {
	return &synchronizer{
		log: logrus.NewEntry(logrus.StandardLogger()),

		settings:             settings,
		categories:           categories,
		subscriptionSettings: subscriptionSettings,
		sinks:                testSinks(),

		policy:        policy,
		uuidGenerator: deterministicuuid.NewTestUUIDGenerator(deterministicuuid.DIAGNOSTIC_SETTINGS),
	}
}

func logCategories(names ...string) []*armmonitor.DiagnosticSettingsCategoryResource {
	resources := make([]*armmonitor.DiagnosticSettingsCategoryResource, 0, len(names))
	for _, name := range names {
		resources = append(resources, &armmonitor.DiagnosticSettingsCategoryResource{
			Name: pointerTo(name),
			Properties: &armmonitor.DiagnosticSettingsCategory{
				CategoryType: pointerTo(armmonitor.CategoryTypeLogs),
			},
		})
	}
	return resources
}

func existingSetting(name, ruleID string) *armmonitor.DiagnosticSettingsResource {
	return &armmonitor.DiagnosticSettingsResource{
		Name: pointerTo(name),
		Properties: &armmonitor.DiagnosticSettings{
			EventHubAuthorizationRuleID: pointerTo(ruleID),
		},
	}
}

func TestEnsureReusesMatchingSetting(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
	categories := mock_armmonitor.NewMockDiagnosticSettingsCategoryClient(controller)

	categories.EXPECT().List(ctx, testResourceID).Return(logCategories("AuditLogs"), nil).Times(2)
	settings.EXPECT().List(ctx, testResourceID).Return([]*armmonitor.DiagnosticSettingsResource{
		existingSetting("PARTNER_DS_existing", testRuleID),
	}, nil).Times(2)

	s := testSynchronizer(settings, categories, nil, SharedAcrossPartners)

	target := Target{ResourceID: testResourceID, Location: "eastus"}

	// two consecutive calls return the same name and never write
	for i := 0; i < 2; i++ {
		result := s.Ensure(ctx, target, testMonitorID, testTenantID)
		if !result.OK {
			t.Fatalf("ensure failed with reason %s", result.Reason)
		}
		if result.SettingName != "PARTNER_DS_existing" {
			t.Errorf("got setting name %q", result.SettingName)
		}
		if result.EventHubName != "partner-eastus" || result.AuthorizationRuleID != testRuleID {
			t.Errorf("got sink %q %q", result.EventHubName, result.AuthorizationRuleID)
		}
	}
}

func TestEnsureRespectsQuota(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
	categories := mock_armmonitor.NewMockDiagnosticSettingsCategoryClient(controller)

	full := make([]*armmonitor.DiagnosticSettingsResource, 0, maxDiagnosticSettings)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		full = append(full, existingSetting(name, "/other/rule/"+name))
	}

	categories.EXPECT().List(ctx, testResourceID).Return(logCategories("AuditLogs"), nil)
	settings.EXPECT().List(ctx, testResourceID).Return(full, nil)

	s := testSynchronizer(settings, categories, nil, SharedAcrossPartners)

	result := s.Ensure(ctx, Target{ResourceID: testResourceID, Location: "eastus"}, testMonitorID, testTenantID)
	if result.OK {
		t.Fatal("ensure succeeded against a full target")
	}
	if result.Reason != api.ReasonDiagnosticSettingsLimitReached {
		t.Errorf("got reason %s", result.Reason)
	}
}

func TestEnsureCreatesSetting(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
	categories := mock_armmonitor.NewMockDiagnosticSettingsCategoryClient(controller)

	categories.EXPECT().List(ctx, testResourceID).Return(logCategories("AuditLogs", "SignInLogs"), nil)
	settings.EXPECT().List(ctx, testResourceID).Return(nil, nil)
	settings.EXPECT().
		CreateOrUpdate(ctx, testResourceID, gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ string, name string, parameters armmonitor.DiagnosticSettingsResource, _ *armmonitor.DiagnosticSettingsClientCreateOrUpdateOptions) (armmonitor.DiagnosticSettingsClientCreateOrUpdateResponse, error) {
			if !strings.HasPrefix(name, "PARTNER_DS_") {
				t.Errorf("got setting name %q", name)
			}
			if len(parameters.Properties.Logs) != 2 {
				t.Errorf("got %d log settings", len(parameters.Properties.Logs))
			}
			for _, l := range parameters.Properties.Logs {
				if !*l.Enabled {
					t.Errorf("category %s not enabled", *l.Category)
				}
			}
			if *parameters.Properties.EventHubAuthorizationRuleID != testRuleID {
				t.Errorf("got rule id %q", *parameters.Properties.EventHubAuthorizationRuleID)
			}
			return armmonitor.DiagnosticSettingsClientCreateOrUpdateResponse{}, nil
		})

	s := testSynchronizer(settings, categories, nil, SharedAcrossPartners)

	result := s.Ensure(ctx, Target{ResourceID: testResourceID, Location: "eastus"}, testMonitorID, testTenantID)
	if !result.OK {
		t.Fatalf("ensure failed with reason %s", result.Reason)
	}
	if result.Reason != api.ReasonCapturedByRules {
		t.Errorf("got reason %s", result.Reason)
	}
}

func TestEnsureFailureReasons(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name       string
		location   string
		categories []*armmonitor.DiagnosticSettingsCategoryResource
		createErr  error
		want       api.Reason
	}{
		{
			name:     "location without sink",
			location: "westeurope",
			want:     api.ReasonLocationNotSupported,
		},
		{
			name:     "resource type without log categories",
			location: "eastus",
			want:     api.ReasonResourceTypeNotSupported,
		},
		{
			name:       "scope locked",
			location:   "eastus",
			categories: logCategories("AuditLogs"),
			createErr:  &azcore.ResponseError{StatusCode: http.StatusConflict, ErrorCode: "ScopeLocked"},
			want:       api.ReasonScopeLocked,
		},
		{
			name:       "other conflict",
			location:   "eastus",
			categories: logCategories("AuditLogs"),
			createErr:  &azcore.ResponseError{StatusCode: http.StatusConflict, ErrorCode: "Conflict"},
			want:       api.ReasonConflictStatus,
		},
		{
			name:       "unclassified error",
			location:   "eastus",
			categories: logCategories("AuditLogs"),
			createErr:  errors.New("sadness"),
			want:       api.ReasonOther,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
			categories := mock_armmonitor.NewMockDiagnosticSettingsCategoryClient(controller)

			if tt.location == "eastus" {
				categories.EXPECT().List(ctx, testResourceID).Return(tt.categories, nil)
			}
			if tt.createErr != nil {
				settings.EXPECT().List(ctx, testResourceID).Return(nil, nil)
				settings.EXPECT().
					CreateOrUpdate(ctx, testResourceID, gomock.Any(), gomock.Any(), nil).
					Return(armmonitor.DiagnosticSettingsClientCreateOrUpdateResponse{}, tt.createErr)
			}

			s := testSynchronizer(settings, categories, nil, SharedAcrossPartners)

			result := s.Ensure(ctx, Target{ResourceID: testResourceID, Location: tt.location}, testMonitorID, testTenantID)
			if result.OK {
				t.Fatal("ensure succeeded")
			}
			if result.Reason != tt.want {
				t.Errorf("got reason %s, want %s", result.Reason, tt.want)
			}
		})
	}
}

func TestEnsureIsolatedPolicyIgnoresForeignSettings(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
	categories := mock_armmonitor.NewMockDiagnosticSettingsCategoryClient(controller)

	categories.EXPECT().List(ctx, testResourceID).Return(logCategories("AuditLogs"), nil)
	// a setting targets the right sink but belongs to another partner
	settings.EXPECT().List(ctx, testResourceID).Return([]*armmonitor.DiagnosticSettingsResource{
		existingSetting("PARTNER_DS_OTHERPARTNER_1", testRuleID),
	}, nil)
	settings.EXPECT().
		CreateOrUpdate(ctx, testResourceID, gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ string, name string, _ armmonitor.DiagnosticSettingsResource, _ *armmonitor.DiagnosticSettingsClientCreateOrUpdateOptions) (armmonitor.DiagnosticSettingsClientCreateOrUpdateResponse, error) {
			if !strings.HasPrefix(name, "PARTNER_DS_PARTNER1_") {
				t.Errorf("got setting name %q", name)
			}
			return armmonitor.DiagnosticSettingsClientCreateOrUpdateResponse{}, nil
		})

	s := testSynchronizer(settings, categories, nil, IsolatedPerPartner)

	result := s.Ensure(ctx, Target{ResourceID: testResourceID, Location: "eastus"}, testMonitorID, testTenantID)
	if !result.OK {
		t.Fatalf("ensure failed with reason %s", result.Reason)
	}
}

func TestEnsureIsolatedPolicyReusesOwnSetting(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
	categories := mock_armmonitor.NewMockDiagnosticSettingsCategoryClient(controller)

	categories.EXPECT().List(ctx, testResourceID).Return(logCategories("AuditLogs"), nil)
	settings.EXPECT().List(ctx, testResourceID).Return([]*armmonitor.DiagnosticSettingsResource{
		existingSetting("PARTNER_DS_PARTNER1_1", testRuleID),
	}, nil)

	s := testSynchronizer(settings, categories, nil, IsolatedPerPartner)

	result := s.Ensure(ctx, Target{ResourceID: testResourceID, Location: "eastus"}, testMonitorID, testTenantID)
	if !result.OK {
		t.Fatalf("ensure failed with reason %s", result.Reason)
	}
	if result.SettingName != "PARTNER_DS_PARTNER1_1" {
		t.Errorf("got setting name %q", result.SettingName)
	}
}

func TestEnsureSubscription(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	subscriptionSettings := mock_armmonitor.NewMockSubscriptionDiagnosticSettingsClient(controller)

	subscriptionSettings.EXPECT().List(ctx).Return(nil, nil)
	subscriptionSettings.EXPECT().
		CreateOrUpdate(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string, parameters armmonitorclient.SubscriptionDiagnosticSettingsResource) (armmonitorclient.SubscriptionDiagnosticSettingsResource, error) {
			if len(parameters.Properties.Logs) != len(subscriptionLogCategories) {
				t.Errorf("got %d categories", len(parameters.Properties.Logs))
			}
			return armmonitorclient.SubscriptionDiagnosticSettingsResource{}, nil
		})

	s := testSynchronizer(nil, nil, subscriptionSettings, SharedAcrossPartners)

	result := s.Ensure(ctx, Target{ResourceID: "/subscriptions/sub", Location: "eastus", IsSubscription: true}, testMonitorID, testTenantID)
	if !result.OK {
		t.Fatalf("ensure failed with reason %s", result.Reason)
	}
}

func TestEnsureSubscriptionReusesMatchingSetting(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	subscriptionSettings := mock_armmonitor.NewMockSubscriptionDiagnosticSettingsClient(controller)

	subscriptionSettings.EXPECT().List(ctx).Return([]*armmonitorclient.SubscriptionDiagnosticSettingsResource{
		{
			Name: pointerTo("PARTNER_DS_existing"),
			Properties: &armmonitorclient.SubscriptionDiagnosticSettings{
				EventHubAuthorizationRuleID: pointerTo(testRuleID),
			},
		},
	}, nil)

	s := testSynchronizer(nil, nil, subscriptionSettings, SharedAcrossPartners)

	result := s.Ensure(ctx, Target{ResourceID: "/subscriptions/sub", Location: "eastus", IsSubscription: true}, testMonitorID, testTenantID)
	if !result.OK {
		t.Fatalf("ensure failed with reason %s", result.Reason)
	}
	if result.SettingName != "PARTNER_DS_existing" {
		t.Errorf("got setting name %q", result.SettingName)
	}
}

func TestRemoveSubscriptionSetting(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	subscriptionSettings := mock_armmonitor.NewMockSubscriptionDiagnosticSettingsClient(controller)

	subscriptionSettings.EXPECT().List(ctx).Return([]*armmonitorclient.SubscriptionDiagnosticSettingsResource{
		{Name: pointerTo("PARTNER_DS_1")},
	}, nil)
	subscriptionSettings.EXPECT().Delete(ctx, "PARTNER_DS_1").Return(nil)

	s := testSynchronizer(nil, nil, subscriptionSettings, SharedAcrossPartners)

	if !s.Remove(ctx, Target{ResourceID: "/subscriptions/sub", IsSubscription: true}, "PARTNER_DS_1") {
		t.Error("remove reported failure")
	}
}

func TestRemoveAbsentSettingIsNoop(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
	settings.EXPECT().List(ctx, testResourceID).Return([]*armmonitor.DiagnosticSettingsResource{
		existingSetting("SOMETHING_ELSE", testRuleID),
	}, nil)

	s := testSynchronizer(settings, nil, nil, SharedAcrossPartners)

	if !s.Remove(ctx, Target{ResourceID: testResourceID}, "PARTNER_DS_gone") {
		t.Error("remove of absent setting reported failure")
	}
}

func TestRemoveDeletesNamedSetting(t *testing.T) {
	ctx := context.Background()
	controller := gomock.NewController(t)
	defer controller.Finish()

	settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
	settings.EXPECT().List(ctx, testResourceID).Return([]*armmonitor.DiagnosticSettingsResource{
		existingSetting("PARTNER_DS_1", testRuleID),
	}, nil)
	settings.EXPECT().Delete(ctx, testResourceID, "PARTNER_DS_1", nil).Return(armmonitor.DiagnosticSettingsClientDeleteResponse{}, nil)

	s := testSynchronizer(settings, nil, nil, SharedAcrossPartners)

	if !s.Remove(ctx, Target{ResourceID: testResourceID}, "PARTNER_DS_1") {
		t.Error("remove reported failure")
	}
}

func TestRemoveTolerances(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name      string
		listErr   error
		deleteErr error
		want      bool
	}{
		{
			name:    "resource gone",
			listErr: &azcore.ResponseError{StatusCode: http.StatusNotFound},
			want:    true,
		},
		{
			name:    "list fails",
			listErr: errors.New("sadness"),
			want:    false,
		},
		{
			name:      "scope locked on delete",
			deleteErr: &azcore.ResponseError{StatusCode: http.StatusConflict, ErrorCode: "ScopeLocked"},
			want:      true,
		},
		{
			name:      "delete fails",
			deleteErr: errors.New("sadness"),
			want:      false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			settings := mock_armmonitor.NewMockDiagnosticSettingsClient(controller)
			if tt.listErr != nil {
				settings.EXPECT().List(ctx, testResourceID).Return(nil, tt.listErr)
			} else {
				settings.EXPECT().List(ctx, testResourceID).Return([]*armmonitor.DiagnosticSettingsResource{
					existingSetting("PARTNER_DS_1", testRuleID),
				}, nil)
				settings.EXPECT().Delete(ctx, testResourceID, "PARTNER_DS_1", nil).Return(armmonitor.DiagnosticSettingsClientDeleteResponse{}, tt.deleteErr)
			}

			s := testSynchronizer(settings, nil, nil, SharedAcrossPartners)

			got := s.Remove(ctx, Target{ResourceID: testResourceID}, "PARTNER_DS_1")
			if got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
		})
	}
}
