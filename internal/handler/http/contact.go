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

func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// an undecodable body is reported as missing fields by the validator
	var form models.ContactForm
	if err := utils.ReadJSON(w, r, &form); err != nil {
		log.Debug().Err(err).Msg("invalid contact request body")
		form = models.ContactForm{}
	}

	res, err := h.services.ContactService.Submit(r.Context(), form)
	if err != nil {
		status, msg := responseFromError(err, app.MsgEmailSendFailed)
		log.Err(err).Int("status", status).Msg("contact request failed")
		utils.WriteError(w, msg, status)
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}
