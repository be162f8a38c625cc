// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-folio/internal/adapter"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
)

type ClientServices struct {
	BootstrapService ClientBootstrapService
}

func NewClientServices(siteAdapter adapter.SiteAdapter, cfg config.ClientAssets, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		BootstrapService: NewClientBootstrapService(siteAdapter, cfg, logger),
	}
}
