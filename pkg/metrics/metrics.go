package metrics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/PartnerMonitor-RP/pkg/$GOPACKAGE Emitter

// Emitter emits metrics
type Emitter interface {
	EmitFloat(string, float64, map[string]string)
	EmitGauge(string, int64, map[string]string)
}
