// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
	"github.com/MKhiriev/go-folio/models"
)

const (
	mailerSendEmailPath    = "/email"
	mailerSendMessageIDKey = "X-Message-Id"

	defaultMailFailure = "Failed to send email"
)

type mailerSendAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailerSendEmail struct {
	From    mailerSendAddress   `json:"from"`
	To      []mailerSendAddress `json:"to"`
	ReplyTo *mailerSendAddress  `json:"reply_to,omitempty"`
	Subject string              `json:"subject"`
	HTML    string              `json:"html,omitempty"`
	Text    string              `json:"text,omitempty"`
}

type mailerSendErrorResponse struct {
	Message string                     `json:"message"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

type mailerSendAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewMailAdapter constructs a [MailAdapter] for the MailerSend API at
// cfg.BaseURL, authenticated with cfg.APIKey.
func NewMailAdapter(cfg config.Mail, logger *logger.Logger) MailAdapter {
	client := utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout)
	client.SetAuthToken(cfg.APIKey)

	return &mailerSendAdapter{client: client, logger: logger}
}

// Send implements [MailAdapter]. MailerSend answers 202 with an empty body;
// the message id travels in the X-Message-Id header.
func (a *mailerSendAdapter) Send(ctx context.Context, email models.OutgoingEmail) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(toMailerSendEmail(email)).
		Post(mailerSendEmailPath)
	if err != nil {
		return "", fmt.Errorf("send email request: %w", err)
	}

	if resp.IsError() {
		return "", newMailerSendError(resp.StatusCode(), resp.Body())
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	messageID := resp.Header().Get(mailerSendMessageIDKey)
	a.logger.Debug().
		Str("message_id", messageID).
		Int("status", resp.StatusCode()).
		Msg("email accepted by provider")

	return messageID, nil
}

func toMailerSendEmail(email models.OutgoingEmail) mailerSendEmail {
	out := mailerSendEmail{
		From:    mailerSendAddress{Email: email.From.Email, Name: email.From.Name},
		To:      make([]mailerSendAddress, 0, len(email.To)),
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	}
	for _, to := range email.To {
		out.To = append(out.To, mailerSendAddress{Email: to.Email, Name: to.Name})
	}
	if email.ReplyTo.Email != "" {
		out.ReplyTo = &mailerSendAddress{Email: email.ReplyTo.Email, Name: email.ReplyTo.Name}
	}

	return out
}

// newMailerSendError turns a MailerSend error body into a *ProviderError
// whose message reads "<message> (field: a, b; other: c)". Fields are sorted
// so the message is stable.
func newMailerSendError(statusCode int, body []byte) *ProviderError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	perr := &ProviderError{StatusCode: statusCode, Message: defaultMailFailure, Kind: statusError(statusCode)}

	var parsed mailerSendErrorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return perr
	}
	if parsed.Message != "" {
		perr.Message = parsed.Message
	}
	if len(parsed.Errors) == 0 {
		return perr
	}

	fields := make([]string, 0, len(parsed.Errors))
	for field := range parsed.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, field+": "+flattenErrorValue(parsed.Errors[field]))
	}
	perr.Message += " (" + strings.Join(details, "; ") + ")"

	return perr
}

func flattenErrorValue(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	return strings.TrimSpace(string(raw))
}
