// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/utils"
)

func (h *Handler) getAssets(w http.ResponseWriter, r *http.Request) {
	manifest := h.services.AssetService.Manifest(r.Context())

	w.Header().Set("Cache-Control", "public, max-age=300")
	utils.WriteJSON(w, manifest, http.StatusOK)
}
