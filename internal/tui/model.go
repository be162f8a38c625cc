// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-folio/internal/assets"
	"github.com/MKhiriev/go-folio/models"
)

type phase int

const (
	phaseLoading phase = iota
	phaseHeld
	phaseReady
)

const (
	progressBarWidth = 40
	statusTTL        = 2 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// model is the whole client screen: the loading indicator until the bundle
// is ready, then the resolved bundle.
type model struct {
	site      *url.URL
	buildInfo models.AppBuildInfo

	phase    phase
	spinner  spinner.Model
	bar      progress.Model
	progress models.LoadProgress
	anim     *models.LoaderAnimation

	bundle     models.AssetBundle
	resolved   models.AssetBundle
	resolveErr error
	background bool

	status        string
	errMsg        string
	showBuildInfo bool
	quitByUser    bool
}

func newModel(site *url.URL, buildInfo models.AppBuildInfo) model {
	return model{
		site:      site,
		buildInfo: buildInfo,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressBarWidth)),
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.bar.Width = min(progressBarWidth, max(10, msg.Width-8))
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseReady && !m.background {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case animationMsg:
		anim := msg.anim
		m.anim = &anim
		return m, nil

	case progressMsg:
		m.progress = models.LoadProgress{Loaded: msg.loaded, Total: msg.total}
		return m, nil

	case heldMsg:
		m.phase = phaseHeld
		m.setBundle(msg.bundle)
		return m, nil

	case readyMsg:
		m.phase = phaseReady
		m.background = true
		m.setBundle(msg.bundle)
		return m, m.spinner.Tick

	case backgroundDoneMsg:
		m.background = false
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "bundle copied to clipboard"
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = m.phase == phaseLoading
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
	case key.Matches(msg, keys.esc):
		m.showBuildInfo = false
	case key.Matches(msg, keys.copy):
		if m.phase != phaseLoading {
			return m, copyBundle(m.resolved)
		}
	}
	return m, nil
}

// setBundle keeps the bundle and its absolute form for display.
func (m *model) setBundle(b models.AssetBundle) {
	m.bundle = b
	m.resolved = b
	m.resolveErr = nil
	if m.site == nil {
		return
	}
	resolved, err := assets.ResolveBundle(m.site, b)
	if err != nil {
		m.resolveErr = err
		return
	}
	m.resolved = resolved
}

func copyBundle(b models.AssetBundle) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return copiedMsg{err: fmt.Errorf("encode bundle: %w", err)}
		}
		if err = writeClipboard(string(data)); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
