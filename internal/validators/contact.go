// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-folio/models"
)

// Field names understood by [ContactValidator].
const (
	// FieldName, FieldEmail and FieldMessage require a non-blank value.
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"

	// FieldEmailFormat requires Email to parse as a single RFC 5322 address.
	FieldEmailFormat = "email format"

	// FieldLengths caps every field at its maximum length.
	FieldLengths = "lengths"
)

const (
	maxNameLength    = 200
	maxEmailLength   = 320
	maxMessageLength = 5000
)

// ContactValidator validates [models.ContactForm].
type ContactValidator struct{}

// NewContactValidator returns a [Validator] for contact form submissions.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate accepts models.ContactForm or *models.ContactForm. With no fields
// given the presence checks run first, so a form with a blank field always
// yields ErrMissingRequiredFields.
func (v *ContactValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactForm:
		return v.validateContactForm(value, fields...)
	case *models.ContactForm:
		if value == nil {
			return ErrMissingRequiredFields
		}
		return v.validateContactForm(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateContactForm(form models.ContactForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldMessage, FieldEmailFormat, FieldLengths}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(form.Name) {
				return ErrMissingRequiredFields
			}
		case FieldEmail:
			if isBlank(form.Email) {
				return ErrMissingRequiredFields
			}
		case FieldMessage:
			if isBlank(form.Message) {
				return ErrMissingRequiredFields
			}
		case FieldEmailFormat:
			if !isEmailAddress(form.Email) {
				return ErrInvalidEmail
			}
		case FieldLengths:
			if utf8.RuneCountInString(form.Name) > maxNameLength ||
				utf8.RuneCountInString(form.Email) > maxEmailLength ||
				utf8.RuneCountInString(form.Message) > maxMessageLength {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmailAddress accepts a bare address only: display names and groups are
// rejected because the value becomes the Reply-To of the relayed email.
func isEmailAddress(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
