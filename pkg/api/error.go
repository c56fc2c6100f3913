package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CloudError represents a cloud error.
type CloudError struct {
	// The status code.
	StatusCode int `json:"-"`

	// An error response from the service.
	*CloudErrorBody `json:"error,omitempty"`
}

func (err *CloudError) Error() string {
	return fmt.Sprintf("%d: %s", err.StatusCode, err.CloudErrorBody)
}

// CloudErrorBody represents the body of a cloud error.
type CloudErrorBody struct {
	// An identifier for the error. Codes are invariant and are intended to be consumed programmatically.
	Code string `json:"code,omitempty"`

	// A message describing the error, intended to be suitable for display in a user interface.
	Message string `json:"message,omitempty"`

	// The target of the particular error. For example, the name of the property in error.
	Target string `json:"target,omitempty"`
}

func (b *CloudErrorBody) String() string {
	return fmt.Sprintf("%s: %s: %s", b.Code, b.Target, b.Message)
}

// CloudErrorCodes
const (
	CloudErrorCodeInternalServerError   = "InternalServerError"
	CloudErrorCodeInvalidParameter      = "InvalidParameter"
	CloudErrorCodeInvalidRequestContent = "InvalidRequestContent"
	CloudErrorCodeNotFound              = "NotFound"
	CloudErrorCodeRequestNotAllowed     = "RequestNotAllowed"
)

// NewCloudError returns a new CloudError
func NewCloudError(statusCode int, code, target, message string) *CloudError {
	return &CloudError{
		StatusCode: statusCode,
		CloudErrorBody: &CloudErrorBody{
			Code:    code,
			Message: message,
			Target:  target,
		},
	}
}

// WriteError constructs and writes a CloudError to the given ResponseWriter
func WriteError(w http.ResponseWriter, statusCode int, code, target, message string) {
	WriteCloudError(w, NewCloudError(statusCode, code, target, message))
}

// WriteCloudError writes a CloudError to the given ResponseWriter
func WriteCloudError(w http.ResponseWriter, err *CloudError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	_ = e.Encode(err)
}
