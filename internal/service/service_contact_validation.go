// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-folio/internal/validators"
	"github.com/MKhiriev/go-folio/models"
)

// ContactValidationService rejects malformed forms before they reach the
// wrapped service.
type ContactValidationService struct {
	inner     ContactService
	validator validators.Validator
}

func NewContactValidationService() ContactServiceWrapper {
	return &ContactValidationService{
		validator: validators.NewContactValidator(),
	}
}

// Submit trims the form, validates it and hands the trimmed form to the
// wrapped service, so storage and the provider see what was validated.
func (v *ContactValidationService) Submit(ctx context.Context, form models.ContactForm) (models.SendEmailResult, error) {
	form = trimContactForm(form)
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.SendEmailResult{}, mapContactValidationError(err)
	}

	return v.inner.Submit(ctx, form)
}

func (v *ContactValidationService) Wrap(inner ContactService) ContactService {
	v.inner = inner
	return v
}

func trimContactForm(form models.ContactForm) models.ContactForm {
	return models.ContactForm{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Message: strings.TrimSpace(form.Message),
	}
}

func mapContactValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidEmail):
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	case errors.Is(err, validators.ErrFieldTooLong):
		return fmt.Errorf("%w: %w", ErrFieldTooLong, err)
	default:
		return fmt.Errorf("%w: %w", ErrMissingRequiredFields, err)
	}
}
