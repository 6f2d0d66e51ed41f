// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusKind selects how a status message is rendered.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusSuccess
	StatusError
)

// StatusBar shows the last app message on the left and probe status on the
// right.
type StatusBar struct {
	theme   *styles.Theme
	probe   *ProbeStatus
	width   int
	message string
	kind    StatusKind
}

// NewStatusBar creates a status bar bound to a probe status.
func NewStatusBar(theme *styles.Theme, probe *ProbeStatus) *StatusBar {
	if theme == nil {
		theme = styles.NewTheme()
	}
	return &StatusBar{theme: theme, probe: probe, width: 80}
}

// SetWidth sets the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetMessage replaces the current message.
func (s *StatusBar) SetMessage(kind StatusKind, msg string) {
	s.kind = kind
	s.message = msg
}

// Clear removes the current message.
func (s *StatusBar) Clear() {
	s.SetMessage(StatusNone, "")
}

// Message returns the current message and its kind.
func (s *StatusBar) Message() (StatusKind, string) {
	return s.kind, s.message
}

// View renders the status bar
func (s *StatusBar) View() string {
	var left string
	switch s.kind {
	case StatusInfo:
		left = styles.RenderInfo(s.message)
	case StatusSuccess:
		left = styles.RenderSuccess(s.message)
	case StatusError:
		left = styles.RenderError(s.message)
	}

	var right string
	if s.probe != nil {
		right = s.probe.View()
	}

	block, inner := fitWidth(s.theme.StatusBar, s.width)
	spacer := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if spacer < 1 {
		spacer = 1
	}
	return s.theme.StatusBar.Width(block).MaxHeight(1).
		Render(left + lipgloss.NewStyle().Width(spacer).Render("") + right)
}
