// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for go-folio.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener, static files and throttling settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the contact submission database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Chat holds the upstream chat-completion provider settings.
	Chat Chat `envPrefix:"CHAT_"`

	// Mail holds the upstream email provider settings.
	Mail Mail `envPrefix:"MAIL_"`

	// Adapter holds the client's connection to the site.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Assets holds the bootstrap preloading settings used by the client.
	Assets Assets `envPrefix:"ASSETS_"`

	// JSONFilePath is the optional path to a JSON configuration file merged
	// on top of every other source.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogDir is where the client writes its log file.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Server holds the settings of the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// StaticDir serves the site from disk instead of the embedded build.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// AllowedOrigin is written to Access-Control-Allow-Origin.
	// Env: SERVER_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// RateLimit is the sustained requests per second allowed on the chat and
	// contact endpoints. Zero disables throttling.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size for RateLimit.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings. A DSN starting with
// "postgres://" or "postgresql://" selects PostgreSQL, anything else is
// treated as a SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Chat configures the OpenAI-compatible chat completion relay.
type Chat struct {
	// APIKey authenticates against the provider. Falls back to OPENAI_API_KEY.
	// Env: CHAT_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL of the provider API.
	// Env: CHAT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Env: CHAT_MODEL
	Model string `env:"MODEL"`

	// Env: CHAT_TEMPERATURE
	Temperature float64 `env:"TEMPERATURE"`

	// Env: CHAT_MAX_TOKENS
	MaxTokens int `env:"MAX_TOKENS"`

	// Timeout bounds one upstream call.
	// Env: CHAT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Mail configures the MailerSend relay for the contact form.
type Mail struct {
	// APIKey authenticates against MailerSend. Falls back to MAILERSEND_KEY.
	// Env: MAIL_API_KEY
	APIKey string `env:"API_KEY"`

	// Env: MAIL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Env: MAIL_FROM_EMAIL
	FromEmail string `env:"FROM_EMAIL"`

	// Env: MAIL_FROM_NAME
	FromName string `env:"FROM_NAME"`

	// Env: MAIL_TO_EMAIL
	ToEmail string `env:"TO_EMAIL"`

	// Env: MAIL_TO_NAME
	ToName string `env:"TO_NAME"`

	// Env: MAIL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Adapter holds the client's outbound connection to the site.
type Adapter struct {
	// SiteURL is the base URL of the site. A "loader=lock" query keeps the
	// loading indicator open after loading completes.
	// Env: ADAPTER_SITE_URL
	SiteURL string `env:"SITE_URL"`

	// RequestTimeout bounds one asset request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Assets tunes the bootstrap sequence.
type Assets struct {
	// LoaderPath is the path of the Lottie document of the loading indicator.
	// Env: ASSETS_LOADER_PATH
	LoaderPath string `env:"LOADER_PATH"`

	// MinDisplay is the minimum time the loading indicator stays visible.
	// Env: ASSETS_MIN_DISPLAY
	MinDisplay time.Duration `env:"MIN_DISPLAY"`

	// LockLoader keeps the indicator open after loading completes.
	// Env: ASSETS_LOCK_LOADER
	LockLoader bool `env:"LOCK_LOADER"`

	// Concurrency caps parallel requests per phase. Zero means unbounded.
	// Env: ASSETS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Names of the provider keys understood for compatibility with the older
// serverless deployment.
const (
	legacyOpenAIKeyEnv     = "OPENAI_API_KEY"
	legacyMailerSendKeyEnv = "MAILERSEND_KEY"
)

// GetStructuredConfig loads, merges, and validates the server configuration
// in the following priority order (later sources override earlier non-zero
// fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
