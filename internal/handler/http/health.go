// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/logger"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-store")

	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(app.MsgServiceUnavailable))
		return
	}

	w.Write([]byte("ok"))
}
