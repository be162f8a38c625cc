// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-folio/internal/logger"

type Storages struct {
	ContactRepository ContactRepository
	HealthChecker     HealthChecker
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ContactRepository: NewContactRepository(db, logger),
		HealthChecker:     db,
	}
}
