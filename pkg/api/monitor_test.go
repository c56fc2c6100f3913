package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import "testing"

func TestProvisioningStateIsTerminal(t *testing.T) {
	for _, tt := range []struct {
		state ProvisioningState
		want  bool
	}{
		{state: ProvisioningStateSucceeded, want: true},
		{state: ProvisioningStateFailed, want: true},
		{state: ProvisioningStateCanceled, want: true},
		{state: ProvisioningStateDeleted, want: true},
		{state: ProvisioningStateNotSpecified},
		{state: ProvisioningStateAccepted},
		{state: ProvisioningStateCreating},
		{state: ProvisioningStateUpdating},
		{state: ProvisioningStateDeleting},
	} {
		t.Run(tt.state.String(), func(t *testing.T) {
			if tt.state.IsTerminal() != tt.want {
				t.Errorf("IsTerminal(%s) != %v", tt.state, tt.want)
			}
		})
	}
}

func TestMonitoredResourceKey(t *testing.T) {
	a := MonitoredResource{ID: "/subscriptions/sub/resourceGroups/RG/providers/Microsoft.Storage/storageAccounts/sa"}
	b := MonitoredResource{ID: "/SUBSCRIPTIONS/SUB/RESOURCEGROUPS/rg/PROVIDERS/microsoft.storage/STORAGEACCOUNTS/SA"}

	if a.Key() != b.Key() {
		t.Errorf("%q != %q", a.Key(), b.Key())
	}
}

func TestReasonIsProtected(t *testing.T) {
	for _, reason := range []Reason{
		ReasonCapturedByRules,
		ReasonLocationNotSupported,
		ReasonResourceTypeNotSupported,
		ReasonDiagnosticSettingsLimitReached,
		ReasonConflictStatus,
		ReasonScopeLocked,
		ReasonOther,
	} {
		if reason.IsProtected() {
			t.Errorf("%s is protected", reason)
		}
	}

	if !ReasonCreatedByUser.IsProtected() {
		t.Error("CreatedByUser is not protected")
	}
}
