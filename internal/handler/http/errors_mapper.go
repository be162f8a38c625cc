// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/service"
)

// errorResponses is checked in order, so an error wrapping several sentinels
// gets the first matching response.
var errorResponses = []struct {
	target error
	resp   errorResponse
}{
	{service.ErrChatNotConfigured, errorResponse{http.StatusInternalServerError, app.MsgChatNotConfigured}},
	{service.ErrInvalidMessages, errorResponse{http.StatusBadRequest, app.MsgInvalidMessages}},
	{service.ErrChatUpstream, errorResponse{http.StatusInternalServerError, app.MsgChatTechnicalError}},

	{service.ErrMailNotConfigured, errorResponse{http.StatusInternalServerError, app.MsgEmailNotConfigured}},
	{service.ErrMissingRequiredFields, errorResponse{http.StatusBadRequest, app.MsgMissingRequiredFields}},
	{service.ErrInvalidEmail, errorResponse{http.StatusBadRequest, app.MsgInvalidEmail}},
	{service.ErrFieldTooLong, errorResponse{http.StatusBadRequest, app.MsgFieldTooLong}},

	{service.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

// responseFromError maps err to a status and message. Errors outside the
// list answer 500 with fallback.
func responseFromError(err error, fallback string) (int, string) {
	var deliveryErr *service.EmailDeliveryError
	if errors.As(err, &deliveryErr) {
		return deliveryErr.StatusCode, deliveryErr.Message
	}

	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.resp.status, e.resp.message
		}
	}
	return http.StatusInternalServerError, fallback
}
