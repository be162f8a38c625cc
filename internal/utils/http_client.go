// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-folio/1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.openai.com/v1", 30*time.Second)
//	resp, err := client.R().Get("/models")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL (trailing slashes
// removed). A non-positive timeout leaves resty's default in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent)

	if baseURL != "" {
		client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
