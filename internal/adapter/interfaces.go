// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound HTTP clients for the services of
// go-folio.
//
//   - [SiteAdapter] fetches images and the loader animation from the site.
//   - [ChatAdapter] talks to an OpenAI-compatible chat completion API.
//   - [MailAdapter] sends email through the MailerSend API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrUpstream] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-folio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SiteAdapter reads public resources of the site.
type SiteAdapter interface {
	// FetchImage GETs ref (site-relative or absolute) and checks that the
	// body is an image. The returned result always carries URL and Duration;
	// on error its Status is [models.AssetFailed] and Err is set.
	FetchImage(ctx context.Context, ref string) (models.AssetResult, error)

	// FetchLoaderAnimation GETs and decodes the Lottie document at path.
	// Returns [ErrInvalidAnimation] (wrapped) when the document has no usable
	// frame range.
	FetchLoaderAnimation(ctx context.Context, path string) (models.LoaderAnimation, error)
}

// ChatAdapter requests chat completions.
type ChatAdapter interface {
	// Complete sends the conversation and returns the first choice's content.
	// An empty string means the provider answered without content.
	Complete(ctx context.Context, messages []models.ChatMessage, params models.ChatCompletionParams) (string, error)
}

// MailAdapter delivers transactional email.
type MailAdapter interface {
	// Send delivers email and returns the provider message id. Provider
	// rejections are returned as *[ProviderError].
	Send(ctx context.Context, email models.OutgoingEmail) (string, error)
}
