// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the bootstrap service into a single process
// lifecycle that ends on quit or on a termination signal.
package client
