package diagnostics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
	"github.com/Azure/PartnerMonitor-RP/pkg/monitor/sink"
	armmonitorclient "github.com/Azure/PartnerMonitor-RP/pkg/util/azureclient/azuresdk/armmonitor"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/azureerrors"
	"github.com/Azure/PartnerMonitor-RP/pkg/util/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/PartnerMonitor-RP/pkg/monitor/$GOPACKAGE Synchronizer

// maxDiagnosticSettings is the platform quota of diagnostic settings per
// resource or subscription.
const maxDiagnosticSettings = 5

const settingNamePrefix = "PARTNER_DS"

// SharingPolicy controls whether a diagnostic setting pointing at the right
// sink may be reused across partners or only within one partner.
type SharingPolicy int

const (
	SharedAcrossPartners SharingPolicy = iota
	IsolatedPerPartner
)

// Target identifies what the diagnostic setting is attached to: a single
// resource, or a whole subscription.
type Target struct {
	ResourceID     string
	Location       string
	IsSubscription bool
}

// Result is the outcome of an Ensure call.  Failures carry the reason which
// is persisted to the ledger; errors are never propagated so that the caller
// can continue with the rest of the batch.
type Result struct {
	OK                  bool
	Reason              api.Reason
	SettingName         string
	EventHubName        string
	AuthorizationRuleID string
}

// Synchronizer ensures that a target has exactly one diagnostic setting
// pointing at the correct regional sink, and removes named settings on
// request.  It holds no state of its own: every call starts from the
// target's current settings list.
type Synchronizer interface {
	Ensure(ctx context.Context, target Target, monitorID, tenantID string) Result
	Remove(ctx context.Context, target Target, settingName string) bool
}

type synchronizer struct {
	log *logrus.Entry

	settings             armmonitorclient.DiagnosticSettingsClient
	categories           armmonitorclient.DiagnosticSettingsCategoryClient
	subscriptionSettings armmonitorclient.SubscriptionDiagnosticSettingsClient
	sinks                sink.Directory

	policy        SharingPolicy
	uuidGenerator uuid.Generator
}

var _ Synchronizer = &synchronizer{}

// NewSynchronizer returns a new Synchronizer
func NewSynchronizer(log *logrus.Entry, settings armmonitorclient.DiagnosticSettingsClient, categories armmonitorclient.DiagnosticSettingsCategoryClient, subscriptionSettings armmonitorclient.SubscriptionDiagnosticSettingsClient, sinks sink.Directory, policy SharingPolicy) Synchronizer {
	return &synchronizer{
		log: log,

		settings:             settings,
		categories:           categories,
		subscriptionSettings: subscriptionSettings,
		sinks:                sinks,

		policy:        policy,
		uuidGenerator: uuid.DefaultGenerator,
	}
}

func (s *synchronizer) Ensure(ctx context.Context, target Target, monitorID, tenantID string) Result {
	log := s.log.WithFields(logrus.Fields{
		"target":    target.ResourceID,
		"monitorID": monitorID,
		"tenantID":  tenantID,
	})

	desired, ok := s.sinks.Lookup(target.Location)
	if !ok {
		log.Infof("no sink for location %q", target.Location)
		return Result{Reason: api.ReasonLocationNotSupported}
	}

	if target.IsSubscription {
		return s.ensureSubscription(ctx, log, desired, monitorID)
	}
	return s.ensureResource(ctx, log, target, desired, monitorID)
}

func (s *synchronizer) ensureResource(ctx context.Context, log *logrus.Entry, target Target, desired sink.Sink, monitorID string) Result {
	categories, err := s.logCategories(ctx, target.ResourceID)
	if err != nil {
		return s.failure(log, err)
	}
	if len(categories) == 0 {
		log.Info("resource type exposes no log categories")
		return Result{Reason: api.ReasonResourceTypeNotSupported}
	}

	existing, err := s.settings.List(ctx, target.ResourceID)
	if err != nil {
		return s.failure(log, err)
	}

	for _, setting := range existing {
		if s.reusable(setting.Name, setting.Properties, desired, monitorID) {
			return Result{
				OK:                  true,
				Reason:              api.ReasonCapturedByRules,
				SettingName:         *setting.Name,
				EventHubName:        desired.EventHubName,
				AuthorizationRuleID: desired.AuthorizationRuleID,
			}
		}
	}

	if len(existing) >= maxDiagnosticSettings {
		log.Infof("diagnostic settings limit reached (%d)", len(existing))
		return Result{Reason: api.ReasonDiagnosticSettingsLimitReached}
	}

	name := s.newSettingName(monitorID)

	logs := make([]*armmonitor.LogSettings, 0, len(categories))
	enabled := true
	for i := range categories {
		logs = append(logs, &armmonitor.LogSettings{
			Category: &categories[i],
			Enabled:  &enabled,
		})
	}

	_, err = s.settings.CreateOrUpdate(ctx, target.ResourceID, name, armmonitor.DiagnosticSettingsResource{
		Properties: &armmonitor.DiagnosticSettings{
			EventHubName:                &desired.EventHubName,
			EventHubAuthorizationRuleID: &desired.AuthorizationRuleID,
			Logs:                        logs,
		},
	}, nil)
	if err != nil {
		return s.failure(log, err)
	}

	return Result{
		OK:                  true,
		Reason:              api.ReasonCapturedByRules,
		SettingName:         name,
		EventHubName:        desired.EventHubName,
		AuthorizationRuleID: desired.AuthorizationRuleID,
	}
}

// subscriptionLogCategories are the activity log categories available at
// subscription scope.  Unlike resources, these are fixed: a subscription
// never fails the category check.
var subscriptionLogCategories = []string{
	"Administrative",
	"Security",
	"ServiceHealth",
	"Alert",
	"Recommendation",
	"Policy",
	"Autoscale",
	"ResourceHealth",
}

func (s *synchronizer) ensureSubscription(ctx context.Context, log *logrus.Entry, desired sink.Sink, monitorID string) Result {
	existing, err := s.subscriptionSettings.List(ctx)
	if err != nil {
		return s.failure(log, err)
	}

	for _, setting := range existing {
		var properties *armmonitor.DiagnosticSettings
		if setting.Properties != nil {
			// enough of the resource-scoped shape for the shared reuse check
			properties = &armmonitor.DiagnosticSettings{
				EventHubName:                setting.Properties.EventHubName,
				EventHubAuthorizationRuleID: setting.Properties.EventHubAuthorizationRuleID,
			}
		}
		if s.reusable(setting.Name, properties, desired, monitorID) {
			return Result{
				OK:                  true,
				Reason:              api.ReasonCapturedByRules,
				SettingName:         *setting.Name,
				EventHubName:        desired.EventHubName,
				AuthorizationRuleID: desired.AuthorizationRuleID,
			}
		}
	}

	if len(existing) >= maxDiagnosticSettings {
		log.Infof("subscription diagnostic settings limit reached (%d)", len(existing))
		return Result{Reason: api.ReasonDiagnosticSettingsLimitReached}
	}

	name := s.newSettingName(monitorID)

	logs := make([]*armmonitorclient.SubscriptionLogSettings, 0, len(subscriptionLogCategories))
	enabled := true
	for i := range subscriptionLogCategories {
		logs = append(logs, &armmonitorclient.SubscriptionLogSettings{
			Category: &subscriptionLogCategories[i],
			Enabled:  &enabled,
		})
	}

	_, err = s.subscriptionSettings.CreateOrUpdate(ctx, name, armmonitorclient.SubscriptionDiagnosticSettingsResource{
		Properties: &armmonitorclient.SubscriptionDiagnosticSettings{
			EventHubName:                &desired.EventHubName,
			EventHubAuthorizationRuleID: &desired.AuthorizationRuleID,
			Logs:                        logs,
		},
	})
	if err != nil {
		return s.failure(log, err)
	}

	return Result{
		OK:                  true,
		Reason:              api.ReasonCapturedByRules,
		SettingName:         name,
		EventHubName:        desired.EventHubName,
		AuthorizationRuleID: desired.AuthorizationRuleID,
	}
}

func (s *synchronizer) Remove(ctx context.Context, target Target, settingName string) bool {
	log := s.log.WithFields(logrus.Fields{
		"target":      target.ResourceID,
		"settingName": settingName,
	})

	if target.IsSubscription {
		return s.removeSubscription(ctx, log, settingName)
	}
	return s.removeResource(ctx, log, target, settingName)
}

func (s *synchronizer) removeResource(ctx context.Context, log *logrus.Entry, target Target, settingName string) bool {
	existing, err := s.settings.List(ctx, target.ResourceID)
	if err != nil {
		if azureerrors.IsNotFoundError(err) {
			// resource itself is gone: nothing to clean up
			return true
		}
		log.WithError(err).Error("listing diagnostic settings")
		return false
	}

	found := false
	for _, setting := range existing {
		if setting.Name != nil && strings.EqualFold(*setting.Name, settingName) {
			found = true
			break
		}
	}
	if !found {
		return true
	}

	_, err = s.settings.Delete(ctx, target.ResourceID, settingName, nil)
	return s.removeOutcome(log, err)
}

func (s *synchronizer) removeSubscription(ctx context.Context, log *logrus.Entry, settingName string) bool {
	existing, err := s.subscriptionSettings.List(ctx)
	if err != nil {
		if azureerrors.IsNotFoundError(err) {
			return true
		}
		log.WithError(err).Error("listing subscription diagnostic settings")
		return false
	}

	found := false
	for _, setting := range existing {
		if setting.Name != nil && strings.EqualFold(*setting.Name, settingName) {
			found = true
			break
		}
	}
	if !found {
		return true
	}

	err = s.subscriptionSettings.Delete(ctx, settingName)
	return s.removeOutcome(log, err)
}

func (s *synchronizer) removeOutcome(log *logrus.Entry, err error) bool {
	switch {
	case err == nil:
		return true
	case azureerrors.IsNotFoundError(err):
		return true
	case azureerrors.IsScopeLockedError(err):
		// the platform purges the setting once the lock is released;
		// blocking ledger cleanup on it would leave orphaned tracking rows
		log.Info("target scope is locked, treating removal as complete")
		return true
	default:
		log.WithError(err).Error("deleting diagnostic setting")
		return false
	}
}

// reusable decides whether an existing setting already satisfies the desired
// sink.  Under SharedAcrossPartners any setting targeting the sink's
// authorization rule counts; under IsolatedPerPartner the setting must also
// carry this monitor's name prefix.
func (s *synchronizer) reusable(name *string, properties *armmonitor.DiagnosticSettings, desired sink.Sink, monitorID string) bool {
	if name == nil || properties == nil || properties.EventHubAuthorizationRuleID == nil {
		return false
	}

	if !strings.EqualFold(*properties.EventHubAuthorizationRuleID, desired.AuthorizationRuleID) {
		return false
	}

	if s.policy == IsolatedPerPartner {
		return strings.HasPrefix(strings.ToUpper(*name), s.settingPrefix(monitorID))
	}

	return true
}

func (s *synchronizer) settingPrefix(monitorID string) string {
	name := monitorID[strings.LastIndexByte(monitorID, '/')+1:]
	return settingNamePrefix + "_" + strings.ToUpper(name)
}

func (s *synchronizer) newSettingName(monitorID string) string {
	if s.policy == IsolatedPerPartner {
		return s.settingPrefix(monitorID) + "_" + s.uuidGenerator.Generate()
	}
	return settingNamePrefix + "_" + s.uuidGenerator.Generate()
}

// logCategories lists the target's supported log categories.  Metric-only
// categories are filtered out.
func (s *synchronizer) logCategories(ctx context.Context, resourceID string) ([]string, error) {
	resources, err := s.categories.List(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, category := range resources {
		if category.Name == nil || category.Properties == nil || category.Properties.CategoryType == nil {
			continue
		}
		if *category.Properties.CategoryType == armmonitor.CategoryTypeLogs {
			categories = append(categories, *category.Name)
		}
	}

	return categories, nil
}

// failure classifies an ARM error into a persisted reason.  The error is
// logged and swallowed: a failed item must not fail the batch.
func (s *synchronizer) failure(log *logrus.Entry, err error) Result {
	switch {
	case azureerrors.IsScopeLockedError(err):
		log.WithError(err).Warn("target scope is locked")
		return Result{Reason: api.ReasonScopeLocked}
	case azureerrors.IsConflictError(err):
		log.WithError(err).Warn("conflict applying diagnostic setting")
		return Result{Reason: api.ReasonConflictStatus}
	default:
		log.WithError(err).Error("applying diagnostic setting")
		return Result{Reason: api.ReasonOther}
	}
}
