// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports the task list as a Markdown checklist.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a collection to Markdown.
func (e *MarkdownExporter) Export(c model.Collection) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(e.options.title()))

	if c.Len() == 0 {
		sb.WriteString("_No tasks._\n")
	}
	for _, item := range c.Items() {
		fmt.Fprintf(&sb, "- %s %s\n", styles.Checkbox(item.Completed), escapeMarkdown(singleLine(item.Label)))
	}

	if e.options.IncludeMetadata {
		fmt.Fprintf(&sb, "\n---\n\n%d items, %d completed. Exported %s.\n",
			c.Len(), c.CompletedCount(), formatTimestamp(e.options.now()))
	}

	return []byte(sb.String()), nil
}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns "text/markdown".
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// escapeMarkdown escapes characters that would change checklist formatting.
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	return s
}
