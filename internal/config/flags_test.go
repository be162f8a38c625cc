// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Host: "", Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "bad host",
			input:       "example.com:80",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Equal(t, tt.errorMsg, err.Error())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:9000",
		"-d", "postgres://localhost/folio",
		"-config", "/etc/folio.json",
		"-static-dir", "/srv/site",
		"-request-timeout", "20s",
		"-shutdown-timeout", "2s",
		"-rate-limit", "3",
		"-rate-burst", "6",
		"-site", "http://localhost:9000?loader=lock",
		"-loader-path", "/data/spinner.json",
		"-min-display", "1200ms",
		"-lock-loader",
		"-concurrency", "4",
		"-log-level", "warn",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/folio", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/folio.json", cfg.JSONFilePath)
	assert.Equal(t, "/srv/site", cfg.Server.StaticDir)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.InDelta(t, 3.0, cfg.Server.RateLimit, 1e-9)
	assert.Equal(t, 6, cfg.Server.RateBurst)
	assert.Equal(t, "http://localhost:9000?loader=lock", cfg.Adapter.SiteURL)
	assert.Equal(t, "/data/spinner.json", cfg.Assets.LoaderPath)
	assert.Equal(t, 1200*time.Millisecond, cfg.Assets.MinDisplay)
	assert.True(t, cfg.Assets.LockLoader)
	assert.Equal(t, 4, cfg.Assets.Concurrency)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "/tmp/c.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsGivesZeroConfig(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-grpc", "x"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-min-display", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
