// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-folio/internal/assets"
	"github.com/MKhiriev/go-folio/models"
)

type assetService struct {
	manifest models.AssetManifest
}

// NewAssetService builds the manifest once; the catalog never changes at
// runtime.
func NewAssetService() AssetService {
	return &assetService{manifest: assets.Manifest()}
}

// Manifest returns a copy so handlers cannot alias the shared slices.
func (s *assetService) Manifest(_ context.Context) models.AssetManifest {
	return models.AssetManifest{
		Bundle:      s.manifest.Bundle.Clone(),
		Critical:    append([]string(nil), s.manifest.Critical...),
		NonCritical: append([]string(nil), s.manifest.NonCritical...),
	}
}
