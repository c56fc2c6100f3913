package recover

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Panic recovers a panic and logs it.  Use with defer in every goroutine that
// must not take down the process.
func Panic(log *logrus.Entry) {
	if e := recover(); e != nil {
		log.Errorf("panic: %#v\n\n%s\n", e, string(debug.Stack()))
	}
}
