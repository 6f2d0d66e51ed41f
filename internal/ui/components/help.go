// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// =============================================================================
// HELP OVERLAY
// =============================================================================

// HelpMarkdown is the full key reference shown by the help overlay.
const HelpMarkdown = `# tasklist

## Entry form

| Key | Action |
|-----|--------|
| enter | add the draft as a new task |
| tab | switch to the list |

## List

| Key | Action |
|-----|--------|
| up / k, down / j | move the cursor |
| g / G | first / last task |
| space / x | toggle completed |
| d / delete | remove task |
| y | copy label to clipboard |
| tab | back to the entry form |

| esc | back to the entry form |
| ? | show this help |
| q | quit |

## Anywhere

| Key | Action |
|-----|--------|
| ctrl+p | probe the backend |
| ctrl+e | export the list |
| f1 | toggle this help |
| ctrl+c | quit |
`

// RenderMarkdown renders md for a terminal of the given width. On a renderer
// error the markdown is returned unchanged.
func RenderMarkdown(md string, width int, dark bool) string {
	if width < 20 {
		width = 20
	}
	style := "light"
	if dark {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// HelpOverlay renders HelpMarkdown in a bordered box. The rendered text is
// cached per width.
type HelpOverlay struct {
	theme    *styles.Theme
	width    int
	rendered string
}

// NewHelpOverlay creates a help overlay.
func NewHelpOverlay(theme *styles.Theme) *HelpOverlay {
	if theme == nil {
		theme = styles.NewTheme()
	}
	return &HelpOverlay{theme: theme}
}

// SetWidth sets the overlay width and drops the cached render on change.
func (h *HelpOverlay) SetWidth(width int) {
	if width != h.width {
		h.width = width
		h.rendered = ""
	}
}

// View renders the overlay.
func (h *HelpOverlay) View() string {
	if h.rendered == "" {
		inner := h.width - h.theme.HelpBox.GetHorizontalFrameSize()
		h.rendered = RenderMarkdown(HelpMarkdown, inner, h.theme.IsDark)
	}
	return h.theme.HelpBox.Render(h.rendered)
}
