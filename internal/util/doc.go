// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the tasklist front-ends.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe truncation by character count
//   - TruncateWidth: truncation by terminal display width (go-runewidth)
//   - StringWidth: terminal display width of a string
//   - PadRight: pad a string to a display width
//
// File Operations:
//   - AtomicWriteFile: temp file + fsync + rename
package util
