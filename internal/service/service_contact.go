// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-folio/internal/adapter"
	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/store"
	"github.com/MKhiriev/go-folio/models"
)

var contactEmailHTML = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #f22e44;">New Contact Form Submission</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
  </div>
  <div style="margin-top: 20px;">
    <h3>Message:</h3>
    <p style="white-space: pre-wrap; line-height: 1.6;">{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
  </div>
</div>
`))

type idGenerator interface {
	Generate() string
}

type contactService struct {
	repo        store.ContactRepository
	mailAdapter adapter.MailAdapter
	ids         idGenerator
	cfg         config.Mail
	configured  bool

	logger *logger.Logger
}

// NewContactService relays submissions through mailAdapter and records them
// in repo. repo may be nil, in which case nothing is persisted.
func NewContactService(repo store.ContactRepository, mailAdapter adapter.MailAdapter, ids idGenerator, cfg config.Mail, logger *logger.Logger) ContactService {
	return &contactService{
		repo:        repo,
		mailAdapter: mailAdapter,
		ids:         ids,
		cfg:         cfg,
		configured:  strings.TrimSpace(cfg.APIKey) != "",
		logger:      logger,
	}
}

// Submit expects a validated form. A submission that cannot be stored is
// still relayed: the visitor's message matters more than its bookkeeping.
func (s *contactService) Submit(ctx context.Context, form models.ContactForm) (models.SendEmailResult, error) {
	log := logger.FromContext(ctx)

	if !s.configured {
		log.Error().Str("func", "*contactService.Submit").Msg("mail provider api key is not set")
		return models.SendEmailResult{}, ErrMailNotConfigured
	}

	submission, stored := s.save(ctx, form)

	email, err := s.buildEmail(form)
	if err != nil {
		return models.SendEmailResult{}, fmt.Errorf("error building contact email: %w", err)
	}

	messageID, err := s.mailAdapter.Send(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*contactService.Submit").Str("public_id", submission.PublicID).Msg("error sending contact email")
		deliveryErr := newEmailDeliveryError(err)
		if stored {
			s.markFailed(ctx, submission.PublicID, deliveryErr.Message)
		}
		return models.SendEmailResult{}, deliveryErr
	}

	if stored {
		if err = s.repo.MarkSent(ctx, submission.PublicID, messageID); err != nil {
			log.Err(err).Str("func", "*contactService.Submit").Str("public_id", submission.PublicID).Msg("error marking submission as sent")
		}
	}

	log.Info().Str("public_id", submission.PublicID).Str("message_id", messageID).Msg("contact email sent")
	return models.SendEmailResult{Success: true, MessageID: messageID}, nil
}

func (s *contactService) save(ctx context.Context, form models.ContactForm) (models.ContactSubmission, bool) {
	submission := models.ContactSubmission{
		PublicID: s.ids.Generate(),
		Name:     form.Name,
		Email:    form.Email,
		Message:  form.Message,
		Status:   models.SubmissionPending,
	}
	if s.repo == nil {
		return submission, false
	}

	saved, err := s.repo.SaveSubmission(ctx, submission)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.save").Msg("error storing contact submission")
		return submission, false
	}
	return saved, true
}

func (s *contactService) markFailed(ctx context.Context, publicID, reason string) {
	if err := s.repo.MarkFailed(ctx, publicID, reason); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactService.markFailed").Str("public_id", publicID).Msg("error marking submission as failed")
	}
}

func (s *contactService) buildEmail(form models.ContactForm) (models.OutgoingEmail, error) {
	var html strings.Builder
	err := contactEmailHTML.Execute(&html, struct {
		Name, Email string
		Lines       []string
	}{
		Name:  form.Name,
		Email: form.Email,
		Lines: strings.Split(form.Message, "\n"),
	})
	if err != nil {
		return models.OutgoingEmail{}, err
	}

	return models.OutgoingEmail{
		From:    models.Contact{Email: s.cfg.FromEmail, Name: s.cfg.FromName},
		To:      []models.Contact{{Email: s.cfg.ToEmail, Name: s.cfg.ToName}},
		ReplyTo: models.Contact{Email: form.Email, Name: form.Name},
		Subject: "New Contact Form Submission from " + form.Name,
		HTML:    html.String(),
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", form.Name, form.Email, form.Message),
	}, nil
}

// newEmailDeliveryError keeps the provider's status and message. Transport
// failures get a generic message so internals never reach the visitor.
func newEmailDeliveryError(err error) *EmailDeliveryError {
	deliveryErr := &EmailDeliveryError{
		StatusCode: http.StatusInternalServerError,
		Message:    app.MsgEmailSendFailed,
		Err:        err,
	}

	var providerErr *adapter.ProviderError
	if errors.As(err, &providerErr) {
		if providerErr.Message != "" {
			deliveryErr.Message = providerErr.Message
		}
		if providerErr.StatusCode >= http.StatusBadRequest {
			deliveryErr.StatusCode = providerErr.StatusCode
		}
	}

	return deliveryErr
}
