// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-folio/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(row("app", "go-folio client"))
	b.WriteString(row("version", valueOrNA(info.BuildVersion())))
	b.WriteString(row("date", valueOrNA(info.BuildDate())))
	b.WriteString(row("commit", valueOrNA(info.BuildCommit())))

	return renderPage(titleStyle.Render("BUILD INFO"), b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
