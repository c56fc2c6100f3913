package armmonitor

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

func pointerTo[T any](v T) *T { return &v }

type staticTokenCredential struct{}

func (staticTokenCredential) GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{
		Token:     "token",
		ExpiresOn: time.Now().Add(time.Hour),
	}, nil
}

func testSubscriptionDiagnosticSettingsClient(t *testing.T, h http.HandlerFunc) (*subscriptionDiagnosticSettingsClient, *httptest.Server) {
	ts := httptest.NewTLSServer(h)
	t.Cleanup(ts.Close)

	options := arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: cloud.Configuration{
				Services: map[cloud.ServiceName]cloud.ServiceConfiguration{
					cloud.ResourceManager: {
						Endpoint: ts.URL,
						Audience: "https://management.core.windows.net/",
					},
				},
			},
			Transport: ts.Client(),
		},
	}

	client, err := arm.NewClient("armmonitor.SubscriptionDiagnosticSettingsClient", "v0.1.0", staticTokenCredential{}, &options)
	if err != nil {
		t.Fatal(err)
	}

	return &subscriptionDiagnosticSettingsClient{
		subscriptionID: "00000000-0000-0000-0000-000000000000",
		internal:       client,
	}, ts
}

func TestSubscriptionDiagnosticSettingsCreateOrUpdate(t *testing.T) {
	ctx := context.Background()

	wantPath := "/subscriptions/00000000-0000-0000-0000-000000000000/providers/Microsoft.Insights/diagnosticSettings/PARTNER_DS_1"

	c, _ := testSubscriptionDiagnosticSettingsClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("got method %s", r.Method)
		}
		if r.URL.Path != wantPath {
			t.Errorf("got path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api-version"); got != subscriptionDiagnosticSettingsAPIVersion {
			t.Errorf("got api-version %q", got)
		}

		var parameters SubscriptionDiagnosticSettingsResource
		err := json.NewDecoder(r.Body).Decode(&parameters)
		if err != nil {
			t.Fatal(err)
		}
		if parameters.Properties == nil || *parameters.Properties.EventHubName != "partner-eastus" {
			t.Error("event hub name not carried in the request body")
		}
		if len(parameters.Properties.Logs) != 1 || *parameters.Properties.Logs[0].Category != "Administrative" {
			t.Errorf("got logs %+v", parameters.Properties.Logs)
		}

		parameters.ID = &wantPath
		parameters.Name = pointerTo("PARTNER_DS_1")
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(parameters)
		if err != nil {
			t.Fatal(err)
		}
	})

	result, err := c.CreateOrUpdate(ctx, "PARTNER_DS_1", SubscriptionDiagnosticSettingsResource{
		Properties: &SubscriptionDiagnosticSettings{
			EventHubName:                pointerTo("partner-eastus"),
			EventHubAuthorizationRuleID: pointerTo("/rule"),
			Logs: []*SubscriptionLogSettings{
				{Category: pointerTo("Administrative"), Enabled: pointerTo(true)},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Name == nil || *result.Name != "PARTNER_DS_1" {
		t.Errorf("got result %+v", result)
	}
}

func TestSubscriptionDiagnosticSettingsList(t *testing.T) {
	ctx := context.Background()

	c, _ := testSubscriptionDiagnosticSettingsClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("got method %s", r.Method)
		}
		if r.URL.Path != "/subscriptions/00000000-0000-0000-0000-000000000000/providers/Microsoft.Insights/diagnosticSettings" {
			t.Errorf("got path %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"value": [{"name": "PARTNER_DS_1", "properties": {"eventHubAuthorizationRuleId": "/rule"}}]}`))
		if err != nil {
			t.Fatal(err)
		}
	})

	settings, err := c.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) != 1 || *settings[0].Name != "PARTNER_DS_1" {
		t.Errorf("got settings %+v", settings)
	}
	if *settings[0].Properties.EventHubAuthorizationRuleID != "/rule" {
		t.Errorf("got rule id %q", *settings[0].Properties.EventHubAuthorizationRuleID)
	}
}

func TestSubscriptionDiagnosticSettingsDelete(t *testing.T) {
	ctx := context.Background()

	c, _ := testSubscriptionDiagnosticSettingsClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("got method %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Delete(ctx, "PARTNER_DS_1")
	if err != nil {
		t.Fatal(err)
	}
}

func TestSubscriptionDiagnosticSettingsErrorsAreResponseErrors(t *testing.T) {
	ctx := context.Background()

	c, _ := testSubscriptionDiagnosticSettingsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, err := w.Write([]byte(`{"error": {"code": "ScopeLocked", "message": "locked"}}`))
		if err != nil {
			t.Fatal(err)
		}
	})

	err := c.Delete(ctx, "PARTNER_DS_1")

	var responseError *azcore.ResponseError
	if !errors.As(err, &responseError) {
		t.Fatalf("got error %v", err)
	}
	if responseError.StatusCode != http.StatusConflict || responseError.ErrorCode != "ScopeLocked" {
		t.Errorf("got status %d code %q", responseError.StatusCode, responseError.ErrorCode)
	}
}
