// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeranaias/tasklist-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports the task list as JSON.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// JSONDocument is the exported JSON shape.
type JSONDocument struct {
	Title      string           `json:"title"`
	ExportedAt time.Time        `json:"exported_at"`
	Count      int              `json:"count"`
	Completed  int              `json:"completed"`
	Items      model.Collection `json:"items"`
}

// Export converts a collection to indented JSON.
func (e *JSONExporter) Export(c model.Collection) ([]byte, error) {
	doc := JSONDocument{
		Title:      e.options.title(),
		ExportedAt: e.options.now().UTC(),
		Count:      c.Len(),
		Completed:  c.CompletedCount(),
		Items:      c,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// FileExtension returns ".json".
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns "application/json".
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
