// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists contact form submissions in PostgreSQL or SQLite.
//
// The backend is chosen from the DSN by [NewConnect]. Queries are built with
// squirrel so one repository serves both dialects.
package store

import (
	"context"

	"github.com/MKhiriev/go-folio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContactRepository records contact submissions and their delivery outcome.
type ContactRepository interface {
	// SaveSubmission inserts s and returns it with ID, CreatedAt and
	// UpdatedAt filled in.
	SaveSubmission(ctx context.Context, s models.ContactSubmission) (models.ContactSubmission, error)

	// MarkSent moves the submission identified by publicID to sent and
	// stores the provider message id.
	MarkSent(ctx context.Context, publicID, messageID string) error

	// MarkFailed moves the submission identified by publicID to failed and
	// stores reason.
	MarkFailed(ctx context.Context, publicID, reason string) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
