// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// =============================================================================
// PDF EXPORTER
// =============================================================================

// PDFExporter exports the task list as a one-column A4 checklist.
// Labels go through the cp1252 translator of the core fonts, so characters
// outside that code page print as substitutes.
type PDFExporter struct {
	options *Options
}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter(opts *Options) *PDFExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &PDFExporter{options: opts}
}

// Export converts a collection to PDF.
func (e *PDFExporter) Export(c model.Collection) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(e.options.title(), true)
	pdf.SetCreator("tasklist", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(e.options.title()))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	if c.Len() == 0 {
		pdf.SetTextColor(128, 128, 128)
		pdf.Cell(40, 7, "No tasks.")
		pdf.Ln(8)
		pdf.SetTextColor(0, 0, 0)
	}
	for i, item := range c.Items() {
		line := fmt.Sprintf("%d. %s %s", i+1, styles.Checkbox(item.Completed), singleLine(item.Label))
		pdf.MultiCell(0, 7, tr(line), "0", "L", false)
	}

	if e.options.IncludeMetadata {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(110, 110, 110)
		pdf.Cell(0, 6, fmt.Sprintf("%d items, %d completed. Exported %s.",
			c.Len(), c.CompletedCount(), formatTimestamp(e.options.now())))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns ".pdf".
func (e *PDFExporter) FileExtension() string {
	return ".pdf"
}

// MimeType returns "application/pdf".
func (e *PDFExporter) MimeType() string {
	return "application/pdf"
}
