// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of go-folio.
//
// It wires the JSON API (chat relay, contact relay, asset manifest, version
// and health) and serves the single-page site with its images. Request
// tracing, access logging, response compression, CORS and per-client rate
// limiting are handled here before requests reach the service layer.
package http
