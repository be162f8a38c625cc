// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-folio/internal/adapter"
	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/validators"
	"github.com/MKhiriev/go-folio/models"
)

type chatService struct {
	chatAdapter adapter.ChatAdapter
	validator   validators.Validator
	params      models.ChatCompletionParams
	configured  bool

	logger *logger.Logger
}

func NewChatService(chatAdapter adapter.ChatAdapter, cfg config.Chat, logger *logger.Logger) ChatService {
	return &chatService{
		chatAdapter: chatAdapter,
		validator:   validators.NewChatValidator(),
		params: models.ChatCompletionParams{
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		},
		configured: strings.TrimSpace(cfg.APIKey) != "",
		logger:     logger,
	}
}

func (s *chatService) Reply(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	log := logger.FromContext(ctx)

	if !s.configured {
		log.Error().Str("func", "*chatService.Reply").Msg("chat provider api key is not set")
		return models.ChatReply{}, ErrChatNotConfigured
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ChatReply{}, fmt.Errorf("%w: %w", ErrInvalidMessages, err)
	}

	content, err := s.chatAdapter.Complete(ctx, req.Messages, s.params)
	if err != nil {
		log.Err(err).Str("func", "*chatService.Reply").Int("messages", len(req.Messages)).Msg("chat completion failed")
		return models.ChatReply{}, fmt.Errorf("%w: %w", ErrChatUpstream, err)
	}

	if strings.TrimSpace(content) == "" {
		log.Warn().Str("func", "*chatService.Reply").Msg("provider returned no content")
		content = app.MsgChatFallbackReply
	}

	return models.ChatReply{Content: content}, nil
}
