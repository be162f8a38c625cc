// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultAllowedOrigin   = "*"
	DefaultRateLimit       = 2
	DefaultRateBurst       = 5
	DefaultDSN             = "folio.db"

	DefaultChatBaseURL     = "https://api.openai.com/v1"
	DefaultChatModel       = "gpt-4o"
	DefaultChatTemperature = 0.7
	DefaultChatMaxTokens   = 150
	DefaultChatTimeout     = 30 * time.Second

	DefaultMailBaseURL   = "https://api.mailersend.com/v1"
	DefaultMailFromEmail = "noreply@test-86org8eyp7kgew13.mlsender.net"
	DefaultMailFromName  = "Danny Fullstack Portfolio"
	DefaultMailToEmail   = "dnunez22@gmail.com"
	DefaultMailToName    = "Danny Nunez"
	DefaultMailTimeout   = 15 * time.Second

	DefaultSiteURL               = "http://localhost:8080"
	DefaultAdapterRequestTimeout = 15 * time.Second
	DefaultLoaderPath            = "/data/logo.json"
	DefaultMinDisplay            = 800 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "debug",
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AllowedOrigin:   DefaultAllowedOrigin,
			RateLimit:       DefaultRateLimit,
			RateBurst:       DefaultRateBurst,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Chat: Chat{
			BaseURL:     DefaultChatBaseURL,
			Model:       DefaultChatModel,
			Temperature: DefaultChatTemperature,
			MaxTokens:   DefaultChatMaxTokens,
			Timeout:     DefaultChatTimeout,
		},
		Mail: Mail{
			BaseURL:   DefaultMailBaseURL,
			FromEmail: DefaultMailFromEmail,
			FromName:  DefaultMailFromName,
			ToEmail:   DefaultMailToEmail,
			ToName:    DefaultMailToName,
			Timeout:   DefaultMailTimeout,
		},
		Adapter: Adapter{
			SiteURL:        DefaultSiteURL,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Assets: Assets{
			LoaderPath: DefaultLoaderPath,
			MinDisplay: DefaultMinDisplay,
		},
	}
}
