// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned by Run when the user leaves before loading
// finished.
var ErrUserQuit = errors.New("user quit before the site was ready")
