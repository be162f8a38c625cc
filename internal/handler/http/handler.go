// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io/fs"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// site is the root of the built single-page site and its /data images.
	site fs.FS

	limiter *ClientLimiter

	logger *logger.Logger
}

// NewHandler returns a handler serving services over HTTP and the site from
// site. A nil site disables static file serving.
func NewHandler(services *service.Services, cfg config.Server, site fs.FS, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		site:     site,
		limiter:  NewClientLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:   logger,
	}
}

// Limiter returns the per-client rate limiter guarding the relay endpoints.
// Its Run method evicts idle clients and is meant to run as a background
// worker.
func (h *Handler) Limiter() *ClientLimiter {
	return h.limiter
}
