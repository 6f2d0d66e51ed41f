// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/charmbracelet/lipgloss"

// fitWidth returns the value to pass to style.Width so the rendered block is
// total columns wide, and the columns left for content inside it.
// Lip Gloss counts padding inside Width but borders and margins outside.
func fitWidth(style lipgloss.Style, total int) (block, content int) {
	block = total - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
	content = total - style.GetHorizontalFrameSize()
	if block < 1 {
		block = 1
	}
	if content < 1 {
		content = 1
	}
	return block, content
}
