// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrChatNotConfigured = errors.New("chat provider api key is not set")
	ErrInvalidMessages   = errors.New("invalid chat messages")
	ErrChatUpstream      = errors.New("chat provider call failed")

	ErrMailNotConfigured     = errors.New("mail provider api key is not set")
	ErrMissingRequiredFields = errors.New("missing required contact fields")
	ErrInvalidEmail          = errors.New("invalid contact email")
	ErrFieldTooLong          = errors.New("contact field too long")
	ErrEmailDelivery         = errors.New("email delivery failed")

	ErrStorageUnavailable = errors.New("storage unavailable")
)

// EmailDeliveryError carries the status and visitor-facing message of a
// failed email relay.
type EmailDeliveryError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *EmailDeliveryError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", ErrEmailDelivery, e.StatusCode, e.Message)
}

func (e *EmailDeliveryError) Unwrap() []error {
	return []error{ErrEmailDelivery, e.Err}
}
