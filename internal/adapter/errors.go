// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrUnprocessable    = errors.New("unprocessable entity")
	ErrTooManyRequests  = errors.New("too many requests")
	ErrUpstream         = errors.New("upstream error")
	ErrUnexpectedStatus = errors.New("unexpected status")

	ErrNotImage         = errors.New("response is not an image")
	ErrInvalidAnimation = errors.New("invalid loader animation")
	ErrInvalidBaseURL   = errors.New("invalid base url")
)

// ProviderError is a rejection reported by an upstream API. Message is ready
// to be shown to the visitor.
type ProviderError struct {
	StatusCode int
	Message    string
	// Kind is the sentinel matching StatusCode.
	Kind error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider responded %d: %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Kind
}
