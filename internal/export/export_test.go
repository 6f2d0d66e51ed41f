// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tasklist-tui/internal/model"
)

var fixedTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func testOptions(dir string) *Options {
	opts := DefaultOptions()
	opts.OutputDir = dir
	opts.Now = func() time.Time { return fixedTime }
	return opts
}

func sample() model.Collection {
	return model.NewCollection(
		model.NewTaskItem("Buy milk"),
		model.TaskItem{Label: "Walk *the* dog", Completed: true},
		model.NewTaskItem(""),
	)
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"markdown", ".md"},
		{"md", ".md"},
		{"", ".md"},
		{"JSON", ".json"},
		{"pdf", ".pdf"},
	}
	for _, tt := range tests {
		exp, err := ForFormat(tt.format, nil)
		require.NoError(t, err, "ForFormat(%q)", tt.format)
		assert.Equal(t, tt.ext, exp.FileExtension(), "ForFormat(%q)", tt.format)
	}

	_, err := ForFormat("html", nil)
	assert.Error(t, err)
}

func TestMarkdownExporter(t *testing.T) {
	out, err := NewMarkdownExporter(testOptions("")).Export(sample())
	require.NoError(t, err)

	md := string(out)
	assert.True(t, strings.HasPrefix(md, "# Tasks\n"))
	assert.Contains(t, md, "- [ ] Buy milk\n")
	assert.Contains(t, md, `- [x] Walk \*the\* dog`+"\n")
	assert.Contains(t, md, "- [ ] \n")
	assert.Contains(t, md, "3 items, 1 completed. Exported 2025-03-14 09:26:53.")
}

func TestMarkdownExporter_EmptyAndNoMetadata(t *testing.T) {
	opts := testOptions("")
	opts.IncludeMetadata = false

	out, err := NewMarkdownExporter(opts).Export(model.NewCollection())
	require.NoError(t, err)
	assert.Equal(t, "# Tasks\n\n_No tasks._\n", string(out))
}

func TestMarkdownExporter_MultilineLabel(t *testing.T) {
	out, err := NewMarkdownExporter(testOptions("")).Export(model.NewCollection(model.NewTaskItem("a\nb")))
	require.NoError(t, err)
	assert.Contains(t, string(out), "- [ ] a b\n")
}

func TestJSONExporter(t *testing.T) {
	out, err := NewJSONExporter(testOptions("")).Export(sample())
	require.NoError(t, err)

	var doc struct {
		Title      string           `json:"title"`
		ExportedAt time.Time        `json:"exported_at"`
		Count      int              `json:"count"`
		Completed  int              `json:"completed"`
		Items      []model.TaskItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "Tasks", doc.Title)
	assert.True(t, doc.ExportedAt.Equal(fixedTime))
	assert.Equal(t, 3, doc.Count)
	assert.Equal(t, 1, doc.Completed)
	assert.Equal(t, sample().Items(), doc.Items)
}

func TestJSONExporter_EmptyItemsIsArray(t *testing.T) {
	out, err := NewJSONExporter(testOptions("")).Export(model.NewCollection())
	require.NoError(t, err)
	assert.Contains(t, string(out), `"items": []`)
}

func TestPDFExporter(t *testing.T) {
	out, err := NewPDFExporter(testOptions("")).Export(sample())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
	assert.Contains(t, string(out[len(out)-16:]), "%%EOF")
}

func TestPDFExporter_Empty(t *testing.T) {
	out, err := NewPDFExporter(nil).Export(model.NewCollection())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestExportToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	opts := testOptions(dir)

	path, err := ExportToFile(sample(), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "tasks_20250314_092653_000.md"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [ ] Buy milk")
}

func TestExportToFile_SameInstantKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)

	first, err := ExportToFile(sample(), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)
	second, err := ExportToFile(model.NewCollection(), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)
	third, err := ExportToFile(sample(), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "tasks_20250314_092653_000-2.md"), second)
	assert.Equal(t, filepath.Join(dir, "tasks_20250314_092653_000-3.md"), third)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [ ] Buy milk")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestExportStamp_Milliseconds(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 120_000_000, time.UTC)
	assert.Equal(t, "20250314_092653_120", exportStamp(ts))
}

func TestExportToFile_DoesNotTouchCollection(t *testing.T) {
	c := sample()
	before := c.Items()
	opts := testOptions(t.TempDir())

	_, err := ExportToFile(c, NewJSONExporter(opts), opts)
	require.NoError(t, err)
	assert.Equal(t, before, c.Items())
}
