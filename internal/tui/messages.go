// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-folio/models"

type animationMsg struct {
	anim models.LoaderAnimation
}

type progressMsg struct {
	loaded int
	total  int
}

type readyMsg struct {
	bundle models.AssetBundle
}

type heldMsg struct {
	bundle models.AssetBundle
}

// backgroundDoneMsg reports that the non-critical images have settled.
type backgroundDoneMsg struct{}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
