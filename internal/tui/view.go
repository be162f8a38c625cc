// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-folio/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (m model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	switch m.phase {
	case phaseReady:
		return appStyle.Render(m.readyView())
	default:
		return appStyle.Render(m.loaderView())
	}
}

func (m model) loaderView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s Loading %s\n\n", m.spinner.View(), m.siteName())
	b.WriteString(m.bar.ViewAs(m.progress.Ratio()))
	fmt.Fprintf(&b, "\n%d / %d images\n", m.progress.Loaded, m.progress.Total)

	if m.anim != nil {
		fmt.Fprintf(&b, "\n%s\n", helpStyle.Render(animationSummary(*m.anim)))
	}

	if m.phase == phaseHeld {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render("Loading finished. The indicator is locked open (loader=lock)."))
		b.WriteString("\n")
		return renderPage(titleStyle.Render("LOADING"), b.String(), "c: copy bundle  v: build info  q: quit")
	}

	return renderPage(titleStyle.Render("LOADING"), b.String(), "v: build info  q: quit")
}

func (m model) readyView() string {
	var b strings.Builder

	b.WriteString(row("foreground", m.resolved.Foreground))
	for i, bg := range m.resolved.Background {
		label := ""
		if i == 0 {
			label = "background"
		}
		b.WriteString(row(label, fmt.Sprintf("%d. %s", i+1, bg)))
	}
	b.WriteString(row("secondary", m.resolved.Secondary))
	b.WriteString("\n")

	if m.background {
		fmt.Fprintf(&b, "%s preloading remaining images\n", m.spinner.View())
	} else {
		b.WriteString(okStyle.Render("all images preloaded"))
		b.WriteString("\n")
	}

	if m.resolveErr != nil {
		b.WriteString(errorStyle.Render("cannot resolve against site url: " + m.resolveErr.Error()))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage(titleStyle.Render("READY "+m.siteName()), b.String(), "c: copy bundle  v: build info  q: quit")
}

func (m model) siteName() string {
	if m.site == nil {
		return "site"
	}
	return m.site.Host
}

func animationSummary(anim models.LoaderAnimation) string {
	name := anim.Name
	if name == "" {
		name = "loader"
	}
	return fmt.Sprintf("%s: %d frames, %s per loop", name, anim.Frames(), anim.Duration().Round(10*time.Millisecond))
}

func row(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return labelStyle.Render(label) + " " + value + "\n"
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}
