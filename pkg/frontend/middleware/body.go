package middleware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Azure/PartnerMonitor-RP/pkg/api"
)

const maxBodyBytes = 1048576

func Body(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch, http.MethodPost, http.MethodPut:
			if strings.SplitN(r.Header.Get("Content-Type"), ";", 2)[0] != "application/json" {
				api.WriteError(w, http.StatusUnsupportedMediaType, api.CloudErrorCodeInvalidRequestContent, "", fmt.Sprintf("The content media type '%s' is not supported. Only 'application/json' is supported.", r.Header.Get("Content-Type")))
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, api.CloudErrorCodeInvalidRequestContent, "", "The request content is invalid and could not be deserialized.")
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), ContextKeyBody, body))
		}

		h.ServeHTTP(w, r)
	})
}
