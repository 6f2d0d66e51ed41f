// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
	"github.com/jeranaias/tasklist-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Title bar with backend URL and progress
// =============================================================================

// Header is the one-line title bar.
type Header struct {
	Title  string
	APIURL string
	Width  int

	open  int
	done  int
	theme *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme, apiURL string) *Header {
	if theme == nil {
		theme = styles.NewTheme()
	}
	return &Header{
		Title:  "tasklist",
		APIURL: apiURL,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// Observe updates the open/done tallies from a new collection.
func (h *Header) Observe(c model.Collection) {
	h.done = c.CompletedCount()
	h.open = c.Len() - h.done
}

// View renders the header
func (h *Header) View() string {
	left := h.theme.HeaderTitle.Render(h.Title)
	right := h.theme.HeaderSubtitle.Render(fmt.Sprintf("%d open, %d done", h.open, h.done))

	block, inner := fitWidth(h.theme.Header, h.Width)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap > 4 && h.APIURL != "" {
		url := h.theme.HeaderSubtitle.Render(util.TruncateWidth(h.APIURL, gap-2))
		left = left + "  " + url
	}

	spacer := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if spacer < 1 {
		spacer = 1
	}
	line := left + lipgloss.NewStyle().Width(spacer).Render("") + right
	return h.theme.Header.Width(block).Render(line)
}
