// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the tasklist TUI.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColor values so one palette serves both
light and dark terminals:

	Cyan     - Brand, prompts, key hints
	Purple   - Focus ring and selection
	Emerald  - Completed items, probe success
	Amber    - Probes in flight
	Rose     - Probe failures

Status text always carries an ASCII indicator ([OK], [X], [!], [i]) so that
meaning never depends on color alone.

# Theme System (theme.go)

	theme := styles.NewThemeNamed(cfg.UI.Theme)
	theme.SetCompact(cfg.UI.CompactMode)
	theme.SetSize(msg.Width, msg.Height)

"dark" and "light" force the background hint; "auto" asks the terminal.
SetColorEnabled(false) drops to plain ASCII for NO_COLOR and --no-color.
*/
package styles
