// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/jeranaias/tasklist-tui/internal/probe"

// ProbeResultMsg carries a finished probe back to the event loop. It only
// ever touches probe status, never task state.
type ProbeResultMsg struct {
	Result probe.Result
}

// ExportDoneMsg reports the outcome of an export.
type ExportDoneMsg struct {
	Path string
	Err  error
}
