// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the client's loading indicator and the ready view with
// bubbletea.
//
// The bootstrap sequence runs outside the bubbletea program and reports its
// steps as messages through [tea.Program.Send]; the model itself only
// renders them.
package tui
