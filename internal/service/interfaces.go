// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the server endpoints and of the
// client bootstrap sequence.
package service

import (
	"context"

	"github.com/MKhiriev/go-folio/models"
)

// ChatService relays a conversation to the chat provider.
type ChatService interface {
	// Reply returns the assistant answer to req. The provider key is checked
	// before the messages, so an unconfigured server reports
	// [ErrChatNotConfigured] for any request.
	Reply(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
}

// ContactService records a contact form submission and relays it by email.
type ContactService interface {
	// Submit returns the provider message id on success. Delivery failures
	// are returned as *[EmailDeliveryError].
	Submit(ctx context.Context, form models.ContactForm) (models.SendEmailResult, error)
}

// ContactServiceWrapper decorates a ContactService, e.g. with validation.
type ContactServiceWrapper interface {
	Wrap(ContactService) ContactService
}

// AssetService exposes the image catalog of the site.
type AssetService interface {
	Manifest(ctx context.Context) models.AssetManifest
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the server dependencies are reachable.
type HealthService interface {
	Check(ctx context.Context) error
}
