// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidChatConfigs indicates unusable chat completion parameters.
	ErrInvalidChatConfigs = errors.New("invalid chat configuration")
	// ErrInvalidMailConfigs indicates a missing sender or recipient.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidAdapterConfigs indicates an unparsable site URL or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAssetsConfigs indicates a negative minimum display time or
	// concurrency.
	ErrInvalidAssetsConfigs = errors.New("invalid assets configuration")
)
