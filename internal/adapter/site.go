// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
	"github.com/MKhiriev/go-folio/models"
	"github.com/gabriel-vasile/mimetype"
)

type siteAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewSiteAdapter constructs an HTTP implementation of [SiteAdapter] rooted at
// cfg.SiteURL. Returns [ErrInvalidBaseURL] (wrapped) if the URL is not an
// absolute http(s) URL.
func NewSiteAdapter(cfg config.ClientAdapter, logger *logger.Logger) (SiteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &siteAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include host and http(s) scheme")
	}
	u.RawQuery = ""
	u.Fragment = ""

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchImage implements [SiteAdapter].
func (s *siteAdapter) FetchImage(ctx context.Context, ref string) (models.AssetResult, error) {
	result := models.AssetResult{URL: ref, Status: models.AssetFailed}
	started := time.Now()

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "image/*").
		Get(ref)

	result.Duration = time.Since(started)
	if err != nil {
		result.Err = fmt.Errorf("fetch image request: %w", err)
		return result, result.Err
	}
	if err = mapHTTPError(resp); err != nil {
		result.Err = err
		return result, err
	}

	body := resp.Body()
	mime := mimetype.Detect(body)
	result.ContentType = mime.String()
	result.Bytes = len(body)
	if !strings.HasPrefix(result.ContentType, "image/") {
		result.Err = fmt.Errorf("%w: %s", ErrNotImage, result.ContentType)
		return result, result.Err
	}

	result.Status = models.AssetLoaded
	s.logger.Debug().
		Str("url", ref).
		Str("content_type", result.ContentType).
		Int("bytes", result.Bytes).
		Dur("duration", result.Duration).
		Msg("image fetched")

	return result, nil
}

// FetchLoaderAnimation implements [SiteAdapter].
func (s *siteAdapter) FetchLoaderAnimation(ctx context.Context, path string) (models.LoaderAnimation, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(path)
	if err != nil {
		return models.LoaderAnimation{}, fmt.Errorf("fetch loader animation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoaderAnimation{}, err
	}

	var anim models.LoaderAnimation
	if err = json.Unmarshal(resp.Body(), &anim); err != nil {
		return models.LoaderAnimation{}, fmt.Errorf("%w: %w", ErrInvalidAnimation, err)
	}
	if anim.FrameRate <= 0 || anim.Frames() == 0 {
		return models.LoaderAnimation{}, fmt.Errorf("%w: fr=%v ip=%v op=%v", ErrInvalidAnimation, anim.FrameRate, anim.InPoint, anim.OutPoint)
	}

	return anim, nil
}
