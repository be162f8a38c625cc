// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It owns the listener lifecycle together with the background workers that
// live as long as the server, handles termination signals and shuts both
// down gracefully.
package server
