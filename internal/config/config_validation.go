// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged [StructuredConfig] can start the server.
// Provider API keys are not required here: a missing key is reported per
// request so the site keeps working without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit < 0 || (cfg.Server.RateLimit > 0 && cfg.Server.RateBurst <= 0) {
		return fmt.Errorf("%w: rate burst must be positive when rate limit is set", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Chat.BaseURL == "" || cfg.Chat.Model == "" || cfg.Chat.MaxTokens <= 0 ||
		cfg.Chat.Temperature < 0 || cfg.Chat.Temperature > 2 || cfg.Chat.Timeout <= 0 {
		return ErrInvalidChatConfigs
	}

	if cfg.Mail.BaseURL == "" || cfg.Mail.FromEmail == "" || cfg.Mail.ToEmail == "" || cfg.Mail.Timeout <= 0 {
		return ErrInvalidMailConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.SiteURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Assets.LoaderPath == "" || cfg.Assets.MinDisplay < 0 || cfg.Assets.Concurrency < 0 {
		return ErrInvalidAssetsConfigs
	}

	return nil
}
