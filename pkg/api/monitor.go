package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import "strings"

// Monitor represents a partner monitor resource.  One monitor exists per
// partner entity; its tag rules drive which resources in the subscription
// stream diagnostic logs to the partner's sink.
type Monitor struct {
	ID                string            `json:"id,omitempty"`
	Name              string            `json:"name,omitempty"`
	TenantID          string            `json:"tenantId,omitempty"`
	SubscriptionID    string            `json:"subscriptionId,omitempty"`
	Location          string            `json:"location,omitempty"`
	Enabled           bool              `json:"enabled,omitempty"`
	ProvisioningState ProvisioningState `json:"provisioningState,omitempty"`
	TagRules          *MonitoringTagRules `json:"tagRules,omitempty"`
}

// MonitoringTagRules is the partner's declared intent.  It is re-read on
// every reconciliation pass, never cached across passes.
type MonitoringTagRules struct {
	SendActivityLogs     bool           `json:"sendActivityLogs,omitempty"`
	SendSubscriptionLogs bool           `json:"sendSubscriptionLogs,omitempty"`
	FilteringTags        []FilteringTag `json:"filteringTags,omitempty"`
}

// TagAction represents a filtering tag action
type TagAction string

const (
	TagActionInclude TagAction = "Include"
	TagActionExclude TagAction = "Exclude"
)

// FilteringTag is a single include/exclude predicate over resource tags.  An
// empty Value means "key must be present and empty".
type FilteringTag struct {
	Name   string    `json:"name,omitempty"`
	Value  string    `json:"value,omitempty"`
	Action TagAction `json:"action,omitempty"`
}

// MonitoredResource is a candidate or monitored Azure resource.  Identity is
// the upper-cased resource ID.
type MonitoredResource struct {
	ID       string `json:"id,omitempty"`
	Location string `json:"location,omitempty"`
}

// Key returns the normalized identity of the resource.
func (r MonitoredResource) Key() string {
	return strings.ToUpper(r.ID)
}

// ProvisioningState represents a provisioning state
type ProvisioningState string

// ProvisioningState constants
const (
	ProvisioningStateNotSpecified ProvisioningState = "NotSpecified"
	ProvisioningStateAccepted     ProvisioningState = "Accepted"
	ProvisioningStateCreating     ProvisioningState = "Creating"
	ProvisioningStateUpdating     ProvisioningState = "Updating"
	ProvisioningStateDeleting     ProvisioningState = "Deleting"
	ProvisioningStateDeleted      ProvisioningState = "Deleted"
	ProvisioningStateCanceled     ProvisioningState = "Canceled"
	ProvisioningStateFailed       ProvisioningState = "Failed"
	ProvisioningStateSucceeded    ProvisioningState = "Succeeded"
)

// IsTerminal returns true if state is Terminal
func (t ProvisioningState) IsTerminal() bool {
	return t == ProvisioningStateSucceeded || t == ProvisioningStateFailed ||
		t == ProvisioningStateCanceled || t == ProvisioningStateDeleted
}

func (t ProvisioningState) String() string {
	return string(t)
}
