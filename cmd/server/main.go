// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-folio/internal/adapter"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/handler"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/server"
	"github.com/MKhiriev/go-folio/internal/service"
	"github.com/MKhiriev/go-folio/internal/store"
	"github.com/MKhiriev/go-folio/models"
	"github.com/MKhiriev/go-folio/web"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("folio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if cfg.App.Version == "" || cfg.App.Version == "dev" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("dialect", string(store.DialectFromDSN(cfg.Storage.DB.DSN))).
		Bool("chat_configured", cfg.Chat.APIKey != "").
		Bool("mail_configured", cfg.Mail.APIKey != "").
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(
		store.NewStorages(db, log),
		service.Adapters{
			Chat: adapter.NewChatAdapter(cfg.Chat, log),
			Mail: adapter.NewMailAdapter(cfg.Mail, log),
		},
		*cfg,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, siteFS(cfg.Server.StaticDir), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// siteFS serves dir when set and the embedded site otherwise.
func siteFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return web.FS()
}
