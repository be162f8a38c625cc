// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
	"github.com/MKhiriev/go-folio/models"
)

const chatCompletionsPath = "/chat/completions"

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type openAIChatAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewChatAdapter constructs a [ChatAdapter] for the OpenAI chat completions
// API at cfg.BaseURL, authenticated with cfg.APIKey.
func NewChatAdapter(cfg config.Chat, logger *logger.Logger) ChatAdapter {
	client := utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout)
	client.SetAuthToken(cfg.APIKey)

	return &openAIChatAdapter{client: client, logger: logger}
}

// Complete implements [ChatAdapter].
func (a *openAIChatAdapter) Complete(ctx context.Context, messages []models.ChatMessage, params models.ChatCompletionParams) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{
			Model:       params.Model,
			Messages:    messages,
			Temperature: params.Temperature,
			MaxTokens:   params.MaxTokens,
		}).
		Post(chatCompletionsPath)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		var body openAIErrorResponse
		if json.Unmarshal(resp.Body(), &body) == nil && body.Error.Message != "" {
			return "", &ProviderError{StatusCode: resp.StatusCode(), Message: body.Error.Message, Kind: statusError(resp.StatusCode())}
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err = json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("decode chat completion response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == nil {
		a.logger.Warn().Str("model", params.Model).Msg("chat completion without content")
		return "", nil
	}

	return *completion.Choices[0].Message.Content, nil
}
