package monitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
)

// startAction is one resource to begin monitoring.  reason records why it
// entered the start list so that a user-requested resource keeps its
// CreatedByUser marking across passes.
type startAction struct {
	resource api.MonitoredResource
	reason   api.Reason
}

// actions is the outcome of one classification pass.  The three lists are
// pairwise disjoint by resource id.
type actions struct {
	start        []startAction
	stop         []*api.MonitoringRelationship
	stopTracking []string
}

// computeActions classifies every resource known to this pass into one of
// the three action lists, purely from in-memory sets keyed on the
// upper-cased resource id:
//
//   - discovered and not monitored: start.
//   - monitored, not discovered, not user-created: stop.
//   - tracked but unmonitored, not discovered, user-created: start (the user
//     asked for monitoring explicitly, so it is retried even though the tag
//     rules no longer select the resource).
//   - tracked but unmonitored, not discovered, otherwise: stop tracking.
//
// Subscription-scope ledger rows are carried by tag-rule processing, not by
// resource discovery, and are excluded here so that a sweep never tears down
// subscription monitoring.
func computeActions(discovered []api.MonitoredResource, monitored []*api.MonitoringRelationship, tracked []*api.MonitoringStatus) *actions {
	discoveredSet := make(map[string]api.MonitoredResource, len(discovered))
	for _, resource := range discovered {
		discoveredSet[resource.Key()] = resource
	}

	monitoredSet := make(map[string]*api.MonitoringRelationship, len(monitored))
	for _, relationship := range monitored {
		if isSubscriptionScope(relationship.MonitoredResourceID) {
			continue
		}
		monitoredSet[strings.ToUpper(relationship.MonitoredResourceID)] = relationship
	}

	trackedSet := make(map[string]*api.MonitoringStatus, len(tracked))
	for _, status := range tracked {
		if isSubscriptionScope(status.MonitoredResourceID) {
			continue
		}
		trackedSet[strings.ToUpper(status.MonitoredResourceID)] = status
	}

	a := &actions{}

	for key, resource := range discoveredSet {
		if _, ok := monitoredSet[key]; ok {
			continue
		}

		reason := api.ReasonCapturedByRules
		if status, ok := trackedSet[key]; ok && status.Reason.IsProtected() {
			reason = status.Reason
		}
		a.start = append(a.start, startAction{resource: resource, reason: reason})
	}

	for key, relationship := range monitoredSet {
		if _, ok := discoveredSet[key]; ok {
			continue
		}
		if status, ok := trackedSet[key]; ok && status.Reason.IsProtected() {
			continue
		}
		a.stop = append(a.stop, relationship)
	}

	for key, status := range trackedSet {
		if _, ok := discoveredSet[key]; ok {
			continue
		}
		if _, ok := monitoredSet[key]; ok {
			continue
		}
		if status.IsMonitored {
			// monitored per the ledger but the relationship row is
			// missing: a crash between status upsert and relationship
			// create.  The next matching pass repairs it; nothing was
			// installed under this pairing that we know how to remove.
			continue
		}

		if status.Reason.IsProtected() {
			a.start = append(a.start, startAction{
				resource: api.MonitoredResource{
					ID:       status.MonitoredResourceID,
					Location: status.Location,
				},
				reason: status.Reason,
			})
			continue
		}

		a.stopTracking = append(a.stopTracking, status.MonitoredResourceID)
	}

	return a
}

// computeDeleteActions builds the delete-everything classification: stop all
// monitored resources and untrack every remaining non-user-created status
// row.
func computeDeleteActions(monitored []*api.MonitoringRelationship, tracked []*api.MonitoringStatus) *actions {
	a := &actions{}

	monitoredSet := make(map[string]struct{}, len(monitored))
	for _, relationship := range monitored {
		if isSubscriptionScope(relationship.MonitoredResourceID) {
			continue
		}
		monitoredSet[strings.ToUpper(relationship.MonitoredResourceID)] = struct{}{}
		a.stop = append(a.stop, relationship)
	}

	for _, status := range tracked {
		if isSubscriptionScope(status.MonitoredResourceID) {
			continue
		}
		if _, ok := monitoredSet[strings.ToUpper(status.MonitoredResourceID)]; ok {
			continue
		}
		if status.Reason.IsProtected() {
			continue
		}
		a.stopTracking = append(a.stopTracking, status.MonitoredResourceID)
	}

	return a
}

// isSubscriptionScope reports whether id names a bare subscription rather
// than a resource within one.
func isSubscriptionScope(id string) bool {
	upper := strings.ToUpper(id)
	return strings.HasPrefix(upper, "/SUBSCRIPTIONS/") && !strings.Contains(upper, "/PROVIDERS/")
}

// subscriptionResourceID returns the pseudo-resource id under which
// subscription-scope monitoring is recorded in the ledger.
func subscriptionResourceID(subscriptionID string) string {
	return "/subscriptions/" + subscriptionID
}
