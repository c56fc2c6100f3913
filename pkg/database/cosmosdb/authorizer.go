package cosmosdb

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Authorizer signs Cosmos DB requests.
type Authorizer interface {
	Authorize(req *http.Request, resourceType, resourceLink string)
}

type masterKeyAuthorizer struct {
	masterKey []byte
}

var _ Authorizer = &masterKeyAuthorizer{}

// NewMasterKeyAuthorizer returns an Authorizer which signs requests with the
// database account master key.
func NewMasterKeyAuthorizer(masterKey string) (Authorizer, error) {
	b, err := base64.StdEncoding.DecodeString(masterKey)
	if err != nil {
		return nil, err
	}

	return &masterKeyAuthorizer{masterKey: b}, nil
}

func (a *masterKeyAuthorizer) Authorize(req *http.Request, resourceType, resourceLink string) {
	date := time.Now().UTC().Format(http.TimeFormat)

	h := hmac.New(sha256.New, a.masterKey)
	h.Write([]byte(strings.ToLower(req.Method) + "\n" + resourceType + "\n" + resourceLink + "\n" + strings.ToLower(date) + "\n\n"))

	req.Header.Set("Authorization", url.QueryEscape("type=master&ver=1.0&sig="+base64.StdEncoding.EncodeToString(h.Sum(nil))))
	req.Header.Set("x-ms-date", date)
}
