package cosmosdb

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

const apiVersion = "2018-12-31"

// Options represents request options.
type Options struct {
	NoETag   bool
	IsUpsert bool
}

// Error represents a Cosmos DB error response.
type Error struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsErrorStatusCode returns true if err is a Cosmos DB error with the given
// status code.
func IsErrorStatusCode(err error, statusCode int) bool {
	if err, ok := err.(*Error); ok {
		return err.StatusCode == statusCode
	}
	return false
}

// RetryOnPreconditionFailed retries f on precondition failure.  Used with
// optimistic concurrency (etag) updates.
func RetryOnPreconditionFailed(f func() error) (err error) {
	for i := 0; i < 5; i++ {
		err = f()
		if !IsErrorStatusCode(err, http.StatusPreconditionFailed) {
			return err
		}
	}
	return err
}

// DatabaseClient performs authenticated, JSON-encoded round trips against a
// Cosmos DB database account.
type DatabaseClient interface {
	do(ctx context.Context, verb, path, resourceType, resourceLink string, in, out interface{}, headers http.Header, expectedStatusCodes ...int) (http.Header, error)
}

type databaseClient struct {
	log *logrus.Entry
	c   *http.Client

	databaseHostname string
	authorizer       Authorizer
}

var _ DatabaseClient = &databaseClient{}

// NewDatabaseClient returns a new DatabaseClient
func NewDatabaseClient(log *logrus.Entry, c *http.Client, databaseHostname string, authorizer Authorizer) DatabaseClient {
	return &databaseClient{
		log: log,
		c:   c,

		databaseHostname: databaseHostname,
		authorizer:       authorizer,
	}
}

func (c *databaseClient) do(ctx context.Context, verb, path, resourceType, resourceLink string, in, out interface{}, headers http.Header, expectedStatusCodes ...int) (http.Header, error) {
	var body []byte
	var err error

	if in != nil {
		body, err = json.Marshal(in)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, verb, "https://"+c.databaseHostname+"/"+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	if req.Header.Get("Content-Type") == "" && in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("x-ms-version", apiVersion)

	c.authorizer.Authorize(req, resourceType, resourceLink)

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	d := json.NewDecoder(resp.Body)

	expected := false
	for _, statusCode := range expectedStatusCodes {
		if resp.StatusCode == statusCode {
			expected = true
			break
		}
	}
	if !expected {
		cloudErr := &Error{StatusCode: resp.StatusCode}
		_ = d.Decode(cloudErr)
		return resp.Header, cloudErr
	}

	if out != nil {
		return resp.Header, d.Decode(out)
	}

	return resp.Header, nil
}
