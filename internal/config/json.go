// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings ("30s", "800ms") or as nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
		LogDir   string `json:"log_dir"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		StaticDir       string   `json:"static_dir"`
		AllowedOrigin   string   `json:"allowed_origin"`
		RateLimit       float64  `json:"rate_limit"`
		RateBurst       int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Chat struct {
		APIKey      string   `json:"api_key"`
		BaseURL     string   `json:"base_url"`
		Model       string   `json:"model"`
		Temperature float64  `json:"temperature"`
		MaxTokens   int      `json:"max_tokens"`
		Timeout     Duration `json:"timeout"`
	} `json:"chat,omitempty"`

	Mail struct {
		APIKey    string   `json:"api_key"`
		BaseURL   string   `json:"base_url"`
		FromEmail string   `json:"from_email"`
		FromName  string   `json:"from_name"`
		ToEmail   string   `json:"to_email"`
		ToName    string   `json:"to_name"`
		Timeout   Duration `json:"timeout"`
	} `json:"mail,omitempty"`

	Adapter struct {
		SiteURL        string   `json:"site_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Assets struct {
		LoaderPath  string   `json:"loader_path"`
		MinDisplay  Duration `json:"min_display"`
		LockLoader  bool     `json:"lock_loader"`
		Concurrency int      `json:"concurrency"`
	} `json:"assets,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
			LogDir:   jsonCfg.App.LogDir,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			StaticDir:       jsonCfg.Server.StaticDir,
			AllowedOrigin:   jsonCfg.Server.AllowedOrigin,
			RateLimit:       jsonCfg.Server.RateLimit,
			RateBurst:       jsonCfg.Server.RateBurst,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Chat: Chat{
			APIKey:      jsonCfg.Chat.APIKey,
			BaseURL:     jsonCfg.Chat.BaseURL,
			Model:       jsonCfg.Chat.Model,
			Temperature: jsonCfg.Chat.Temperature,
			MaxTokens:   jsonCfg.Chat.MaxTokens,
			Timeout:     time.Duration(jsonCfg.Chat.Timeout),
		},
		Mail: Mail{
			APIKey:    jsonCfg.Mail.APIKey,
			BaseURL:   jsonCfg.Mail.BaseURL,
			FromEmail: jsonCfg.Mail.FromEmail,
			FromName:  jsonCfg.Mail.FromName,
			ToEmail:   jsonCfg.Mail.ToEmail,
			ToName:    jsonCfg.Mail.ToName,
			Timeout:   time.Duration(jsonCfg.Mail.Timeout),
		},
		Adapter: Adapter{
			SiteURL:        jsonCfg.Adapter.SiteURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Assets: Assets{
			LoaderPath:  jsonCfg.Assets.LoaderPath,
			MinDisplay:  time.Duration(jsonCfg.Assets.MinDisplay),
			LockLoader:  jsonCfg.Assets.LockLoader,
			Concurrency: jsonCfg.Assets.Concurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
