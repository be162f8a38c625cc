// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.getHealth)
		r.Get("/api/assets", h.getAssets)
	})

	// relay endpoints: browser-callable from any origin, POST only, throttled
	router.Group(func(r chi.Router) {
		r.Use(h.withCORS)
		r.Use(allowMethods(http.MethodPost))
		r.Use(h.withRateLimit)

		r.HandleFunc("/api/chat", h.chat)
		r.HandleFunc("/api/send-email", h.sendEmail)
	})

	// the catch-all routes below shadow chi's own 405 detection, so unknown
	// API paths and wrong methods on known ones go through the same check
	router.Handle("/api/*", http.HandlerFunc(CheckHTTPMethod(router)))
	if h.site != nil {
		router.Handle("/*", h.siteHandler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
