// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for task list exporters.
type Exporter interface {
	// Export renders a collection in the target format.
	Export(c model.Collection) ([]byte, error)

	// FileExtension returns the file extension including the dot.
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// Title heads the document.
	Title string

	// IncludeMetadata adds counts and the export time.
	IncludeMetadata bool

	// Now returns the export time (default: time.Now).
	Now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		Title:           "Tasks",
		IncludeMetadata: true,
		Now:             time.Now,
	}
}

func (o *Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o *Options) title() string {
	if o.Title == "" {
		return "Tasks"
	}
	return o.Title
}

// =============================================================================
// FORMAT SELECTION
// =============================================================================

// ForFormat returns the exporter for a format name. "md" is accepted as an
// alias for "markdown".
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "markdown", "md", "":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	case "pdf":
		return NewPDFExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want markdown, json or pdf)", format)
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile renders c with exporter and writes it to a new timestamped
// file in opts.OutputDir. Returns the output file path.
func ExportToFile(c model.Collection, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(c)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := uniquePath(dir, exportStamp(opts.now()), exporter.FileExtension())
	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	log.Printf("EXPORT_WRITTEN | path=%s items=%d bytes=%d mime=%s",
		outputPath, c.Len(), len(content), exporter.MimeType())
	return outputPath, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// exportStamp formats t to the millisecond, e.g. 20250314_092653_120.
func exportStamp(t time.Time) string {
	return strings.Replace(t.Format("20060102_150405.000"), ".", "_", 1)
}

// uniquePath returns dir/tasks_<stamp><ext>, adding a -2, -3, ... suffix
// while that name is already taken.
func uniquePath(dir, stamp, ext string) string {
	base := "tasks_" + stamp
	path := filepath.Join(dir, base+ext)
	for n := 2; fileExists(path); n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, n, ext))
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// singleLine folds line breaks so a label stays on one row.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// formatTimestamp formats a timestamp for display.
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
