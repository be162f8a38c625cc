// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-folio/internal/adapter"
	"github.com/MKhiriev/go-folio/internal/client"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/service"
	"github.com/MKhiriev/go-folio/internal/tui"
	"github.com/MKhiriev/go-folio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("folio-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("folio-client", cfg.App.LogDir)
	logger.SetLevel(cfg.App.LogLevel)

	siteAdapter, err := adapter.NewSiteAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create site adapter")
	}

	services := service.NewClientServices(siteAdapter, cfg.Assets, log)

	ui, err := tui.New(services, cfg.Adapter.SiteURL, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var app client.Client
	app, err = client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
