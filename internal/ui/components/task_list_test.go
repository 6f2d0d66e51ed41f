// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tasklist-tui/internal/model"
)

func labels(c model.Collection) []string {
	out := make([]string, c.Len())
	for i, item := range c.Items() {
		out[i] = item.Label
	}
	return out
}

func TestTaskListView_ToggleIdempotentPair(t *testing.T) {
	s, _, list := wired(model.TaskItem{Label: "x"})

	list.CompleteItemAtIndex(0)
	assert.Equal(t, model.TaskItem{Label: "x", Completed: true}, s.Current().At(0))

	list.CompleteItemAtIndex(0)
	assert.Equal(t, model.TaskItem{Label: "x", Completed: false}, s.Current().At(0))
}

func TestTaskListView_DeletePreservesOrder(t *testing.T) {
	s, _, list := wired(model.NewTaskItem("A"), model.NewTaskItem("B"), model.NewTaskItem("C"))

	list.DeleteItemAtIndex(1)

	assert.Equal(t, []string{"A", "C"}, labels(s.Current()))
}

func TestTaskListView_DeleteAllReachesEmpty(t *testing.T) {
	const n = 5
	items := make([]model.TaskItem, n)
	for i := range items {
		items[i] = model.NewTaskItem(strings.Repeat("t", i+1))
	}
	s, form, list := wired(items...)

	for i := 0; i < n; i++ {
		list.DeleteItemAtIndex(0)
	}

	assert.Equal(t, 0, s.Current().Len())
	assert.Equal(t, 0, form.Counter())
	assert.Equal(t, -1, list.Selected())
}

func TestTaskListView_ToggleIsolation(t *testing.T) {
	a := model.TaskItem{Label: "A", Completed: true}
	b := model.TaskItem{Label: "B", Completed: false}
	c := model.TaskItem{Label: "C", Completed: false}
	s, _, list := wired(a, b, c)

	list.CompleteItemAtIndex(1)

	got := s.Current()
	assert.Equal(t, a, got.At(0))
	assert.Equal(t, model.TaskItem{Label: "B", Completed: true}, got.At(1))
	assert.Equal(t, c, got.At(2))
}

func TestTaskListView_ActionsDoNotAliasOldSnapshot(t *testing.T) {
	s, _, list := wired(model.NewTaskItem("A"), model.NewTaskItem("B"))
	before := s.Current()

	list.CompleteItemAtIndex(0)
	list.DeleteItemAtIndex(1)

	assert.Equal(t, []string{"A", "B"}, labels(before))
	assert.False(t, before.At(0).Completed)
}

func TestTaskListView_OutOfRangePanics(t *testing.T) {
	_, _, list := wired(model.NewTaskItem("A"))

	assert.Panics(t, func() { list.DeleteItemAtIndex(1) })
	assert.Panics(t, func() { list.CompleteItemAtIndex(-1) })
}

func TestTaskListView_IndexTargetsCurrentOccupant(t *testing.T) {
	s, _, list := wired(model.NewTaskItem("A"), model.NewTaskItem("B"), model.NewTaskItem("C"))

	// Index 1 was B; after A is removed it is C.
	list.DeleteItemAtIndex(0)
	list.CompleteItemAtIndex(1)

	assert.True(t, s.Current().At(1).Completed)
	assert.Equal(t, "C", s.Current().At(1).Label)
}

func TestTaskListView_Cursor(t *testing.T) {
	_, form, list := wired()
	assert.Equal(t, -1, list.Selected())
	_, ok := list.SelectedItem()
	assert.False(t, ok)

	for _, l := range []string{"a", "b", "c"} {
		form.OnInputChange(l)
		form.OnSubmit()
	}
	require.Equal(t, 0, list.Selected())

	list.MoveUp()
	assert.Equal(t, 0, list.Selected())

	list.MoveDown()
	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 2, list.Selected())

	item, ok := list.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "c", item.Label)

	list.Top()
	assert.Equal(t, 0, list.Selected())
	list.Bottom()
	assert.Equal(t, 2, list.Selected())
}

func TestTaskListView_CursorClampedOnShrink(t *testing.T) {
	_, _, list := wired(model.NewTaskItem("a"), model.NewTaskItem("b"), model.NewTaskItem("c"))
	list.Bottom()

	list.DeleteItemAtIndex(2)
	assert.Equal(t, 1, list.Selected())
}

func TestTaskListView_View(t *testing.T) {
	_, _, list := wired(
		model.TaskItem{Label: "Buy milk", Completed: false},
		model.TaskItem{Label: "Walk dog", Completed: true},
	)
	list.SetSize(60, 0)

	view := list.View()
	lines := strings.Split(view, "\n")

	var milk, dog string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Buy milk"):
			milk = l
		case strings.Contains(l, "Walk dog"):
			dog = l
		}
	}
	require.NotEmpty(t, milk, "view:\n%s", view)
	require.NotEmpty(t, dog, "view:\n%s", view)
	assert.Contains(t, milk, "[ ]")
	assert.Contains(t, milk, "false")
	assert.Contains(t, dog, "[x]")
	assert.Contains(t, dog, "true")
}

func TestTaskListView_ViewEmpty(t *testing.T) {
	_, _, list := wired()
	assert.Contains(t, list.View(), "No tasks yet")
}

func TestTaskListView_ViewScrollsToCursor(t *testing.T) {
	items := make([]model.TaskItem, 20)
	for i := range items {
		items[i] = model.NewTaskItem("item-" + string(rune('a'+i)))
	}
	_, _, list := wired(items...)
	list.Focus()
	list.SetSize(60, 7)

	list.Bottom()
	view := list.View()

	assert.Contains(t, view, "item-t")
	assert.NotContains(t, view, "item-a")
}

func TestTaskListView_GrowingKeepsLastPageFull(t *testing.T) {
	items := make([]model.TaskItem, 20)
	for i := range items {
		items[i] = model.NewTaskItem("item-" + string(rune('a'+i)))
	}
	_, _, list := wired(items...)
	list.SetSize(60, 7)
	list.Bottom()
	require.Positive(t, list.visibleRows())

	list.SetSize(60, 12)
	rows := list.visibleRows()
	require.Less(t, rows, 20)
	assert.Equal(t, 20-rows, list.offset)
	assert.Contains(t, list.View(), "item-t")

	list.DeleteItemAtIndex(19)
	assert.Equal(t, 19-rows, list.offset)
}

func TestRenderRow(t *testing.T) {
	assert.Equal(t, "1. [ ] Buy milk  false", RenderRow(0, model.NewTaskItem("Buy milk")))
	assert.Equal(t, "3. [x]   true", RenderRow(2, model.TaskItem{Label: "", Completed: true}))
}
