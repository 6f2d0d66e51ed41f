// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a snapshot of the task list to a file.
//
// Exports are one-way: nothing is ever read back, so they do not carry state
// across sessions.
//
// # Supported Formats
//
//   - Markdown: a checklist, "- [x] label"
//   - JSON: the items plus counts and a timestamp
//   - PDF: a printable checklist (gofpdf)
//
// # Usage
//
//	exp, err := export.ForFormat("markdown", opts)
//	if err != nil {
//		return err
//	}
//	path, err := export.ExportToFile(store.Current(), exp, opts)
package export
