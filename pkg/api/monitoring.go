package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// MonitoringRelationship records that a partner owns a diagnostic setting on
// a resource.  One row per (tenant, partner, resource); created when
// monitoring starts and deleted when it stops.
type MonitoringRelationship struct {
	TenantID               string `json:"tenantId,omitempty"`
	PartnerEntityID        string `json:"partnerEntityId,omitempty"`
	MonitoredResourceID    string `json:"monitoredResourceId,omitempty"`
	DiagnosticSettingsName string `json:"diagnosticSettingsName,omitempty"`
	EventHubName           string `json:"eventHubName,omitempty"`
	AuthorizationRuleID    string `json:"authorizationRuleId,omitempty"`
}

// MonitoringStatus records whether a resource is monitored for a partner and,
// if not, why.  Its keyspace is a superset of MonitoringRelationship's: a
// resource can be tracked (status row exists) without being monitored.
type MonitoringStatus struct {
	TenantID            string `json:"tenantId,omitempty"`
	PartnerEntityID     string `json:"partnerEntityId,omitempty"`
	MonitoredResourceID string `json:"monitoredResourceId,omitempty"`
	Location            string `json:"location,omitempty"`
	IsMonitored         bool   `json:"isMonitored,omitempty"`
	Reason              Reason `json:"reason,omitempty"`
}

// Reason explains a monitoring status.
type Reason string

const (
	ReasonCapturedByRules                Reason = "CapturedByRules"
	ReasonCreatedByUser                  Reason = "CreatedByUser"
	ReasonLocationNotSupported           Reason = "LocationNotSupported"
	ReasonResourceTypeNotSupported       Reason = "ResourceTypeNotSupported"
	ReasonDiagnosticSettingsLimitReached Reason = "DiagnosticSettingsLimitReached"
	ReasonConflictStatus                 Reason = "ConflictStatus"
	ReasonScopeLocked                    Reason = "ScopeLocked"
	ReasonOther                          Reason = "Other"
)

// IsProtected returns true if status rows with this reason must never be
// removed by the automatic set diff.  A user explicitly asked for monitoring;
// only an explicit delete may untrack the resource.
func (r Reason) IsProtected() bool {
	return r == ReasonCreatedByUser
}
