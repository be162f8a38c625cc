// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_DefaultsAreValid(t *testing.T) {
	clearEnvVars(t)

	cfg, err := newConfigBuilder(nil).withDefaults().withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultChatModel, cfg.Chat.Model)
	assert.Equal(t, DefaultChatMaxTokens, cfg.Chat.MaxTokens)
	assert.InDelta(t, DefaultChatTemperature, cfg.Chat.Temperature, 1e-9)
	assert.Equal(t, DefaultMinDisplay, cfg.Assets.MinDisplay)
	assert.Equal(t, DefaultLoaderPath, cfg.Assets.LoaderPath)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.NotNil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Chat: Chat{Model: "from-env"}},
		&StructuredConfig{Chat: Chat{Model: "from-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "from-flags", cfg.Chat.Model)
	assert.Equal(t, DefaultChatMaxTokens, cfg.Chat.MaxTokens)
}

func TestBuild_ZeroValuesDoNotOverride(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: ""}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":        "env-version",
		"CHAT_API_KEY":       "sk-env",
		"ASSETS_LOCK_LOADER": "true",
	})

	b := newConfigBuilder(nil)
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "sk-env", b.configs[0].Chat.APIKey)
	assert.True(t, b.configs[0].Assets.LockLoader)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"CHAT_MAX_TOKENS": "many"})

	b := newConfigBuilder(nil)
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withFlags())
}

func TestWithFlags_OverridesEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"ASSETS_MIN_DISPLAY": "2s"})

	b := newConfigBuilder([]string{"-min-display", "100ms"}).withDefaults().withEnv().withFlags()
	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.Assets.MinDisplay)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-nope"})
	b.withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Chat.Model = "json-model"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-model", b.configs[1].Chat.Model)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "rate without burst", mutate: func(c *StructuredConfig) { c.Server.RateBurst = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "temperature out of range", mutate: func(c *StructuredConfig) { c.Chat.Temperature = 3 }, wantErr: ErrInvalidChatConfigs},
		{name: "no max tokens", mutate: func(c *StructuredConfig) { c.Chat.MaxTokens = 0 }, wantErr: ErrInvalidChatConfigs},
		{name: "no recipient", mutate: func(c *StructuredConfig) { c.Mail.ToEmail = "" }, wantErr: ErrInvalidMailConfigs},
		{name: "missing api keys are allowed", mutate: func(c *StructuredConfig) { c.Chat.APIKey, c.Mail.APIKey = "", "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── client view ───────────────────────────────────────────────────────────────

func TestNewClientConfig_LockQuery(t *testing.T) {
	cfg := defaultConfig()
	cfg.Adapter.SiteURL = "http://localhost:8080/?loader=lock"

	clientCfg := newClientConfig(cfg)

	assert.True(t, clientCfg.Assets.LockLoader)
	assert.Equal(t, "http://localhost:8080/", clientCfg.Adapter.SiteURL)
	assert.NoError(t, clientCfg.validate())
}

func TestNewClientConfig_OtherQueryKeepsLockOff(t *testing.T) {
	cfg := defaultConfig()
	cfg.Adapter.SiteURL = "http://localhost:8080/?loader=spin"

	clientCfg := newClientConfig(cfg)

	assert.False(t, clientCfg.Assets.LockLoader)
	assert.Equal(t, "http://localhost:8080/", clientCfg.Adapter.SiteURL)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*ClientConfig) {}},
		{name: "relative site", mutate: func(c *ClientConfig) { c.Adapter.SiteURL = "/site" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "ftp site", mutate: func(c *ClientConfig) { c.Adapter.SiteURL = "ftp://host" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative min display", mutate: func(c *ClientConfig) { c.Assets.MinDisplay = -time.Second }, wantErr: ErrInvalidAssetsConfigs},
		{name: "negative concurrency", mutate: func(c *ClientConfig) { c.Assets.Concurrency = -1 }, wantErr: ErrInvalidAssetsConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newClientConfig(defaultConfig())
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
