package azureerrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

const (
	CODE_SCOPELOCKED   = "ScopeLocked"
	CODE_RESOURCEGONE  = "ResourceNotFound"
	CODE_LIMITEXCEEDED = "LimitExceeded"
)

// IsNotFoundError returns true if the error is an HTTP 404 from ARM.
func IsNotFoundError(err error) bool {
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode == http.StatusNotFound
	}

	return false
}

// IsConflictError returns true if the error is an HTTP 409 from ARM.
func IsConflictError(err error) bool {
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode == http.StatusConflict
	}

	return false
}

// IsScopeLockedError returns true if the error indicates the target scope is
// protected by a management lock.  ARM reports this as a 409 with error code
// ScopeLocked.
func IsScopeLockedError(err error) bool {
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode == http.StatusConflict &&
			responseError.ErrorCode == CODE_SCOPELOCKED
	}

	return false
}

// IsRetryableError returns true if the error is a transient/retryable error
// such as 429 Too Many Requests.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode == http.StatusTooManyRequests
	}

	return false
}

func Is4xxError(err error) bool {
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError.StatusCode >= 400 && responseError.StatusCode < 500
	}

	return false
}
