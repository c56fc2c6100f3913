package middleware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Azure/PartnerMonitor-RP/pkg/util/uuid"
)

type logResponseWriter struct {
	http.ResponseWriter

	statusCode int
	bytes      int
}

func (w *logResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *logResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.statusCode = statusCode
}

type LogMiddleware struct {
	EnvironmentName string
	Hostname        string
	Location        string
	BaseLog         *logrus.Entry
}

func (l LogMiddleware) Log(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()

		lw := &logResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		requestID := uuid.DefaultGenerator.Generate()
		lw.Header().Set("X-Ms-Request-Id", requestID)

		if strings.EqualFold(r.Header.Get("X-Ms-Return-Client-Request-Id"), "true") {
			lw.Header().Set("X-Ms-Client-Request-Id", r.Header.Get("X-Ms-Client-Request-Id"))
		}

		log := l.BaseLog.WithFields(logrus.Fields{
			"request_id":        requestID,
			"client_request_id": r.Header.Get("X-Ms-Client-Request-Id"),
			"correlation_id":    r.Header.Get("X-Ms-Correlation-Request-Id"),
		})

		ctx := context.WithValue(r.Context(), ContextKeyLog, log)
		r = r.WithContext(ctx)

		log.WithFields(logrus.Fields{
			"request_method":      r.Method,
			"request_path":        r.URL.Path,
			"request_proto":       r.Proto,
			"request_remote_addr": r.RemoteAddr,
			"request_user_agent":  r.UserAgent(),
		}).Print("read request")

		defer func() {
			log.WithFields(logrus.Fields{
				"body_written_bytes": lw.bytes,
				"duration":           time.Since(t).Seconds(),
				"response_status":    lw.statusCode,
			}).Print("sent response")
		}()

		h.ServeHTTP(lw, r)
	})
}
