// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// lockLoaderQuery is the query parameter that keeps the loading indicator
// open, as in "?loader=lock".
const (
	lockLoaderQueryKey   = "loader"
	lockLoaderQueryValue = "lock"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	LogLevel string
	LogDir   string
}

// ClientAdapter holds the settings used by the client transport layer.
type ClientAdapter struct {
	// SiteURL is the site base URL with the query string removed.
	SiteURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientAssets tunes the bootstrap sequence run by the client.
type ClientAssets struct {
	LoaderPath  string
	MinDisplay  time.Duration
	LockLoader  bool
	Concurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Assets  ClientAssets
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only groups are ignored, so the client skips server validation.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON()
	if b.err != nil {
		return nil, fmt.Errorf("error get structured config: %w", b.err)
	}

	cfg, err := b.merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps the client fields of cfg. A "loader=lock" query on the
// site URL turns LockLoader on and is stripped from the URL.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogDir:   cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			SiteURL:        cfg.Adapter.SiteURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Assets: ClientAssets{
			LoaderPath:  cfg.Assets.LoaderPath,
			MinDisplay:  cfg.Assets.MinDisplay,
			LockLoader:  cfg.Assets.LockLoader,
			Concurrency: cfg.Assets.Concurrency,
		},
	}

	if u, err := url.Parse(cfg.Adapter.SiteURL); err == nil && u.RawQuery != "" {
		if u.Query().Get(lockLoaderQueryKey) == lockLoaderQueryValue {
			clientCfg.Assets.LockLoader = true
		}
		u.RawQuery = ""
		clientCfg.Adapter.SiteURL = u.String()
	}

	return clientCfg
}
