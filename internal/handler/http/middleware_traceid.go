// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-folio/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"
	maxTraceIDLen = 128
)

// withTraceID reuses the caller's X-Trace-ID or generates one, attaches a
// child logger carrying it to the request context and echoes it back.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
