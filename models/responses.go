// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written for every failed API call. The site
// shows Error to the visitor as is.
type ErrorResponse struct {
	Error string `json:"error"`
}
