// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// errorResponse is the status and visitor-facing message written for a
// service error.
type errorResponse struct {
	status  int
	message string
}
