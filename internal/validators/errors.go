// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrFieldTooLong          = errors.New("field exceeds maximum length")

	ErrNoMessages      = errors.New("messages list cannot be empty")
	ErrInvalidRole     = errors.New("invalid message role")
	ErrEmptyContent    = errors.New("message content cannot be empty")
	ErrTooManyMessages = errors.New("too many messages")
)
