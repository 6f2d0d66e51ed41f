// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tasklist-tui/internal/probe"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
	"github.com/jeranaias/tasklist-tui/internal/util"
)

// =============================================================================
// PROBE STATUS - In-flight count and last backend response
// =============================================================================

// ProbeStatus shows probes in flight and the last response received.
// Probes are independent, so the count can exceed one and results arrive in
// any order. A failed probe only lowers the count; failures are logged by the
// probe package and never shown here.
type ProbeStatus struct {
	spinner  spinner.Model
	theme    *styles.Theme
	inFlight int
	last     *probe.Result
}

// NewProbeStatus creates an idle probe status.
func NewProbeStatus(theme *styles.Theme) *ProbeStatus {
	if theme == nil {
		theme = styles.NewTheme()
	}
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = theme.Spinner

	return &ProbeStatus{spinner: s, theme: theme}
}

// Start records a new probe. The returned command starts the spinner when
// this is the only probe in flight.
func (p *ProbeStatus) Start() tea.Cmd {
	p.inFlight++
	if p.inFlight == 1 {
		return p.spinner.Tick
	}
	return nil
}

// Finish records a completed probe.
func (p *ProbeStatus) Finish(res probe.Result) {
	if p.inFlight > 0 {
		p.inFlight--
	}
	if res.OK() {
		r := res
		p.last = &r
	}
}

// InFlight returns the number of probes awaiting a response.
func (p *ProbeStatus) InFlight() int {
	return p.inFlight
}

// Last returns the most recent successful response.
func (p *ProbeStatus) Last() (probe.Result, bool) {
	if p.last == nil {
		return probe.Result{}, false
	}
	return *p.last, true
}

// Update advances the spinner while probes are in flight.
func (p *ProbeStatus) Update(msg tea.Msg) (*ProbeStatus, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || p.inFlight == 0 {
		return p, nil
	}
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

// View renders the status segment, or "" when there is nothing to show.
func (p *ProbeStatus) View() string {
	var out string
	if p.inFlight > 0 {
		out = p.spinner.View() + " " + p.theme.WarningStyle.Render(fmt.Sprintf("probing (%d)", p.inFlight))
	}
	if p.last != nil {
		if out != "" {
			out += "  "
		}
		out += p.theme.SuccessStyle.Render(fmt.Sprintf("%s %d", styles.StatusIndicators.Success, p.last.StatusCode)) +
			" " + p.theme.InfoStyle.Render(util.TruncateRunes(p.last.Body, 40))
	}
	return out
}
