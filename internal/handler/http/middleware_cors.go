// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/config"
)

// withCORS sets the CORS headers of the relay endpoints and answers
// preflight requests with an empty 200.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	origin := h.cfg.AllowedOrigin
	if origin == "" {
		origin = config.DefaultAllowedOrigin
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type")
		if origin != "*" {
			header.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
