// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// The provider keys also accept the variable names of the serverless
// deployment (OPENAI_API_KEY, MAILERSEND_KEY) when the prefixed ones are unset.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Chat.APIKey == "" {
		cfg.Chat.APIKey = os.Getenv(legacyOpenAIKeyEnv)
	}
	if cfg.Mail.APIKey == "" {
		cfg.Mail.APIKey = os.Getenv(legacyMailerSendKeyEnv)
	}

	return nil
}
