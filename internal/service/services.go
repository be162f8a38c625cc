// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-folio/internal/adapter"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/store"
	"github.com/MKhiriev/go-folio/internal/utils"
)

type Services struct {
	ChatService    ChatService
	ContactService ContactService
	AssetService   AssetService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// Adapters groups the outbound provider clients used by the server.
type Adapters struct {
	Chat adapter.ChatAdapter
	Mail adapter.MailAdapter
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var (
		contacts store.ContactRepository
		health   store.HealthChecker
	)
	if storages != nil {
		contacts = storages.ContactRepository
		health = storages.HealthChecker
	}

	contactService := NewContactValidationService().Wrap(
		NewContactService(contacts, adapters.Mail, utils.NewUUIDGenerator(), cfg.Mail, logger),
	)

	return &Services{
		ChatService:    NewChatService(adapters.Chat, cfg.Chat, logger),
		ContactService: contactService,
		AssetService:   NewAssetService(),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(health, logger),
	}, nil
}
