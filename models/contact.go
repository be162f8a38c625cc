// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContactForm is the body of POST /api/send-email.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmissionStatus tracks delivery of a stored contact submission.
type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "pending"
	SubmissionSent    SubmissionStatus = "sent"
	SubmissionFailed  SubmissionStatus = "failed"
)

// ContactSubmission is a persisted contact form together with its delivery
// outcome.
type ContactSubmission struct {
	// ID is the database identifier. It never leaves the server.
	ID int64 `json:"-"`

	// PublicID is the UUID reported in logs and traces.
	PublicID string `json:"public_id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	Status SubmissionStatus `json:"status"`

	// MessageID is the identifier assigned by the email provider once sent.
	MessageID string `json:"message_id,omitempty"`

	// FailureReason holds the provider error when Status is failed.
	FailureReason string `json:"failure_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contact is a named email address.
type Contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// OutgoingEmail is a provider-agnostic message handed to the mail adapter.
type OutgoingEmail struct {
	From    Contact
	To      []Contact
	ReplyTo Contact
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult is the body returned by POST /api/send-email on success.
type SendEmailResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}
