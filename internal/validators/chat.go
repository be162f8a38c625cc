// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-folio/models"
)

// Field names understood by [ChatValidator].
const (
	FieldMessages        = "messages"
	FieldMessageRoles    = "message roles"
	FieldMessageContents = "message contents"
	FieldMessageCount    = "message count"
)

// MaxChatMessages bounds the conversation relayed upstream.
const MaxChatMessages = 50

// ChatValidator validates [models.ChatRequest].
type ChatValidator struct{}

func NewChatValidator() Validator {
	return &ChatValidator{}
}

func (v *ChatValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(value, fields...)
	case *models.ChatRequest:
		if value == nil {
			return ErrNoMessages
		}
		return v.validateChatRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ChatValidator) validateChatRequest(req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessages, FieldMessageCount, FieldMessageRoles, FieldMessageContents}
	}

	for _, f := range fields {
		switch f {
		case FieldMessages:
			if len(req.Messages) == 0 {
				return ErrNoMessages
			}
		case FieldMessageCount:
			if len(req.Messages) > MaxChatMessages {
				return ErrTooManyMessages
			}
		case FieldMessageRoles:
			for _, m := range req.Messages {
				if !m.Role.Valid() {
					return ErrInvalidRole
				}
			}
		case FieldMessageContents:
			for _, m := range req.Messages {
				if isBlank(m.Content) {
					return ErrEmptyContent
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
