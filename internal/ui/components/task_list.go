// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/store"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
	"github.com/jeranaias/tasklist-tui/internal/util"
)

// =============================================================================
// TASK LIST VIEW
// =============================================================================

// TaskListView renders the collection and turns row actions into new
// collections.
//
// Rows are addressed by index only. An action targets whatever item occupies
// that index in the last observed snapshot; items have no identity that
// survives a reorder. With a single event loop the snapshot is never stale.
type TaskListView struct {
	theme    *styles.Theme
	snapshot model.Collection
	update   store.UpdateFunc

	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

// NewTaskListView creates a list view seeded with the current snapshot.
func NewTaskListView(theme *styles.Theme, snapshot model.Collection, update store.UpdateFunc) *TaskListView {
	if theme == nil {
		theme = styles.NewTheme()
	}
	return &TaskListView{
		theme:    theme,
		snapshot: snapshot,
		update:   update,
		width:    80,
	}
}

// =============================================================================
// ROW ACTIONS
// =============================================================================

// DeleteItemAtIndex removes the item at i. Later items shift down one place
// and keep their order. An index outside the snapshot panics.
func (tl *TaskListView) DeleteItemAtIndex(i int) {
	tl.update(tl.snapshot.RemoveAt(i))
}

// CompleteItemAtIndex flips the completed flag of the item at i. Every other
// item is carried over unchanged. An index outside the snapshot panics.
func (tl *TaskListView) CompleteItemAtIndex(i int) {
	tl.update(tl.snapshot.ToggleAt(i))
}

// Observe records a new collection and keeps the cursor on a valid row.
func (tl *TaskListView) Observe(c model.Collection) {
	tl.snapshot = c
	tl.clampCursor()
}

// Snapshot returns the last observed collection.
func (tl *TaskListView) Snapshot() model.Collection {
	return tl.snapshot
}

// =============================================================================
// CURSOR
// =============================================================================

// Selected returns the cursor index, or -1 when the list is empty.
func (tl *TaskListView) Selected() int {
	if tl.snapshot.Len() == 0 {
		return -1
	}
	return tl.cursor
}

// SelectedItem returns the item under the cursor.
func (tl *TaskListView) SelectedItem() (model.TaskItem, bool) {
	i := tl.Selected()
	if i < 0 {
		return model.TaskItem{}, false
	}
	return tl.snapshot.At(i), true
}

// MoveUp moves the cursor one row up.
func (tl *TaskListView) MoveUp() {
	if tl.cursor > 0 {
		tl.cursor--
	}
	tl.scrollToCursor()
}

// MoveDown moves the cursor one row down.
func (tl *TaskListView) MoveDown() {
	if tl.cursor < tl.snapshot.Len()-1 {
		tl.cursor++
	}
	tl.scrollToCursor()
}

// Top moves the cursor to the first row.
func (tl *TaskListView) Top() {
	tl.cursor = 0
	tl.scrollToCursor()
}

// Bottom moves the cursor to the last row.
func (tl *TaskListView) Bottom() {
	tl.cursor = tl.snapshot.Len() - 1
	tl.clampCursor()
}

func (tl *TaskListView) clampCursor() {
	n := tl.snapshot.Len()
	if tl.cursor >= n {
		tl.cursor = n - 1
	}
	if tl.cursor < 0 {
		tl.cursor = 0
	}
	tl.scrollToCursor()
}

func (tl *TaskListView) scrollToCursor() {
	rows := tl.visibleRows()
	if rows <= 0 {
		tl.offset = 0
		return
	}
	if tl.cursor < tl.offset {
		tl.offset = tl.cursor
	}
	if tl.cursor >= tl.offset+rows {
		tl.offset = tl.cursor - rows + 1
	}
	if maxOffset := tl.snapshot.Len() - rows; tl.offset > maxOffset {
		tl.offset = maxOffset
	}
	if tl.offset < 0 {
		tl.offset = 0
	}
}

// visibleRows is the number of item rows that fit; 0 means unlimited.
func (tl *TaskListView) visibleRows() int {
	if tl.height <= 0 {
		return 0
	}
	frame := tl.theme.ListContainer.GetVerticalFrameSize()
	rows := tl.height - frame
	if rows < 1 {
		rows = 1
	}
	return rows
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetSize sets the component dimensions. A height of 0 shows every row.
func (tl *TaskListView) SetSize(width, height int) {
	tl.width = width
	tl.height = height
	tl.scrollToCursor()
}

// Focus marks the list as the active pane.
func (tl *TaskListView) Focus() {
	tl.focused = true
}

// Blur marks the list as inactive.
func (tl *TaskListView) Blur() {
	tl.focused = false
}

// Focused returns whether the list is the active pane.
func (tl *TaskListView) Focused() bool {
	return tl.focused
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the task list.
func (tl *TaskListView) View() string {
	box := tl.theme.ListContainer
	if tl.focused {
		box = tl.theme.ListContainerFocused
	}
	block, inner := fitWidth(box, tl.width)

	if tl.snapshot.Len() == 0 {
		return box.Width(block).Render(tl.theme.EmptyList.Render("No tasks yet"))
	}

	start, end := 0, tl.snapshot.Len()
	if rows := tl.visibleRows(); rows > 0 && end-start > rows {
		start = tl.offset
		end = start + rows
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, tl.renderRow(i, tl.snapshot.At(i), inner))
	}
	return box.Width(block).Render(strings.Join(rows, "\n"))
}

// RenderRow formats one item as plain text: index, checkbox, label and the
// literal completion flag. The REPL prints rows in this form.
func RenderRow(i int, item model.TaskItem) string {
	return fmt.Sprintf("%d. %s %s  %s", i+1, styles.Checkbox(item.Completed), item.Label, strconv.FormatBool(item.Completed))
}

func (tl *TaskListView) renderRow(i int, item model.TaskItem, width int) string {
	flag := strconv.FormatBool(item.Completed)
	flagStyle := tl.theme.FlagFalse
	labelStyle := tl.theme.ItemLabel
	if item.Completed {
		flagStyle = tl.theme.FlagTrue
		labelStyle = tl.theme.ItemLabelDone
	}

	index := tl.theme.ItemIndex.Render(strconv.Itoa(i + 1))
	box := styles.Checkbox(item.Completed)

	// index column, checkbox, two spaces around the label, flag
	fixed := lipgloss.Width(index) + len(box) + 2 + len(flag) + 1
	labelWidth := width - fixed
	if labelWidth < 1 {
		labelWidth = 1
	}
	label := util.PadRight(util.TruncateWidth(item.Label, labelWidth), labelWidth)

	row := index + box + " " + labelStyle.Render(label) + " " + flagStyle.Render(flag)
	if tl.focused && i == tl.cursor {
		row = tl.theme.ItemSelected.Render(row)
	}
	return row
}
