// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/service"
	"github.com/MKhiriev/go-folio/models"
)

func TestGetServerVersion(t *testing.T) {
	for _, version := range []string{"1.2.3", "", "v2.0.0-beta+build.42"} {
		t.Run(version, func(t *testing.T) {
			svcs := newTestServices()
			svcs.AppInfoService = &stubAppInfoService{version: version}
			h := NewHandler(svcs, config.Server{}, nil, logger.Nop())

			rec := serve(t, h, http.MethodGet, "/api/version", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, version, rec.Body.String())
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rec := serve(t, newTestHandler(), http.MethodGet, "/api/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("storage down", func(t *testing.T) {
		svcs := newTestServices()
		svcs.HealthService = &stubHealthService{err: fmt.Errorf("%w: connection refused", service.ErrStorageUnavailable)}
		h := NewHandler(svcs, config.Server{}, nil, logger.Nop())

		rec := serve(t, h, http.MethodGet, "/api/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, app.MsgServiceUnavailable, rec.Body.String())
	})
}

func TestGetAssets(t *testing.T) {
	manifest := models.AssetManifest{
		Bundle: models.AssetBundle{
			Foreground: "/data/profile.png",
			Background: []string{"/data/bg1.jpg", "/data/bg2.jpg"},
			Secondary:  "/data/secondary.png",
		},
		Critical:    []string{"/data/profile.png", "/data/bg1.jpg"},
		NonCritical: []string{"/data/secondary.png"},
	}
	svcs := newTestServices()
	svcs.AssetService = &stubAssetService{manifest: manifest}
	h := NewHandler(svcs, config.Server{}, nil, logger.Nop())

	rec := serve(t, h, http.MethodGet, "/api/assets", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=")

	var got models.AssetManifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, manifest, got)
}
