// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/store"
)

type healthService struct {
	db     store.HealthChecker
	logger *logger.Logger
}

// NewHealthService reports healthy whenever db answers a ping. A nil db
// means the server runs without storage and is always healthy.
func NewHealthService(db store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{db: db, logger: logger}
}

func (s *healthService) Check(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
