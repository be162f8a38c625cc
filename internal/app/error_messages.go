// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-folio server handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. The site shows them to visitors as is, so their wording is part of
// the API.
package app

const (
	// MsgMethodNotAllowed is returned by the API endpoints for any method
	// other than the one they serve (and OPTIONS).
	MsgMethodNotAllowed = "Method not allowed"

	// MsgTooManyRequests is returned when a client exceeds the rate limit of
	// the chat or contact endpoints.
	MsgTooManyRequests = "Too many requests. Please try again later."

	// MsgChatNotConfigured is returned when no chat provider key is set.
	MsgChatNotConfigured = "Chat service not configured"

	// MsgInvalidMessages is returned when the chat request has no usable
	// messages list.
	MsgInvalidMessages = "Missing or invalid messages"

	// MsgChatFallbackReply is sent as the assistant reply when the provider
	// answered without content.
	MsgChatFallbackReply = "I'm sorry, I couldn't process that. Please try again!"

	// MsgChatTechnicalError is returned when the chat provider call fails.
	MsgChatTechnicalError = "Technical error. Please try again later."

	// MsgMissingRequiredFields is returned when name, email or message of the
	// contact form is blank.
	MsgMissingRequiredFields = "Missing required fields"

	// MsgInvalidEmail is returned when the contact email does not parse as a
	// single address.
	MsgInvalidEmail = "Invalid email address"

	// MsgFieldTooLong is returned when a contact form field exceeds its
	// maximum length.
	MsgFieldTooLong = "One of the fields is too long"

	// MsgEmailNotConfigured is returned when no email provider key is set.
	MsgEmailNotConfigured = "Email service not configured"

	// MsgEmailSendFailed is the fallback when the email provider gives no
	// message of its own.
	MsgEmailSendFailed = "Failed to send email"

	// MsgServiceUnavailable is returned by the health check when the
	// database cannot be reached.
	MsgServiceUnavailable = "service unavailable"
)
