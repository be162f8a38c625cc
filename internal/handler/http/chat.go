// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
	"github.com/MKhiriev/go-folio/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// An undecodable body carries no valid messages. The service still sees
	// the request so a missing provider key is reported first.
	var req models.ChatRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid chat request body")
		req = models.ChatRequest{}
	}

	reply, err := h.services.ChatService.Reply(r.Context(), req)
	if err != nil {
		status, msg := responseFromError(err, app.MsgChatTechnicalError)
		log.Err(err).Int("status", status).Msg("chat request failed")
		utils.WriteError(w, msg, status)
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}
