// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/store"
)

// wired builds a store with a form and a list subscribed to it, the same way
// the app does.
func wired(initial ...model.TaskItem) (*store.Store, *TaskEntryForm, *TaskListView) {
	s := store.New(model.NewCollection(initial...))
	form := NewTaskEntryForm(nil, s.Current(), s.Replace)
	list := NewTaskListView(nil, s.Current(), s.Replace)
	s.Subscribe(form.Observe)
	s.Subscribe(list.Observe)
	return s, form, list
}

func TestTaskEntryForm_Add(t *testing.T) {
	s, form, _ := wired()

	form.OnInputChange("Buy milk")
	form.OnSubmit()

	want := model.NewCollection(model.TaskItem{Label: "Buy milk", Completed: false})
	assert.True(t, s.Current().Equal(want), "collection = %v", s.Current().Items())
	assert.Equal(t, 1, form.Counter())
	assert.Equal(t, "", form.Draft())
}

func TestTaskEntryForm_EmptyLabelAccepted(t *testing.T) {
	s, form, _ := wired()

	form.OnInputChange("")
	form.OnSubmit()

	require.Equal(t, 1, s.Current().Len())
	assert.Equal(t, model.TaskItem{Label: "", Completed: false}, s.Current().At(0))
	assert.Equal(t, 1, form.Counter())
}

func TestTaskEntryForm_WhitespaceLabelKeptVerbatim(t *testing.T) {
	s, form, _ := wired()

	form.OnInputChange("   ")
	form.OnSubmit()

	assert.Equal(t, "   ", s.Current().At(0).Label)
}

func TestTaskEntryForm_AppendsAtEnd(t *testing.T) {
	s, form, _ := wired(model.NewTaskItem("A"), model.NewTaskItem("B"))

	form.OnInputChange("C")
	form.OnSubmit()

	items := s.Current().Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{items[0].Label, items[1].Label, items[2].Label})
	assert.False(t, items[2].Completed)
}

func TestTaskEntryForm_CounterTracksOtherWriters(t *testing.T) {
	s, form, list := wired(model.NewTaskItem("A"), model.NewTaskItem("B"))
	assert.Equal(t, 2, form.Counter())

	list.DeleteItemAtIndex(0)
	assert.Equal(t, 1, form.Counter())

	list.CompleteItemAtIndex(0)
	assert.Equal(t, 1, form.Counter())

	s.Replace(model.NewCollection())
	assert.Equal(t, 0, form.Counter())
}

func TestTaskEntryForm_CounterEqualsLenAfterEveryMutation(t *testing.T) {
	s, form, list := wired()

	check := func(step string) {
		t.Helper()
		if form.Counter() != s.Current().Len() {
			t.Fatalf("%s: Counter() = %d, want %d", step, form.Counter(), s.Current().Len())
		}
	}

	for _, label := range []string{"a", "b", "c", "d"} {
		form.OnInputChange(label)
		form.OnSubmit()
		check("submit " + label)
	}
	list.CompleteItemAtIndex(2)
	check("toggle")
	list.DeleteItemAtIndex(1)
	check("delete")
}

func TestTaskEntryForm_DraftSurvivesExternalChange(t *testing.T) {
	s, form, _ := wired()

	form.OnInputChange("half typed")
	s.Replace(model.NewCollection(model.NewTaskItem("other")))

	assert.Equal(t, "half typed", form.Draft())
	form.OnSubmit()
	require.Equal(t, 2, s.Current().Len())
	assert.Equal(t, "half typed", s.Current().At(1).Label)
}

func TestTaskEntryForm_KeystrokesUpdateDraft(t *testing.T) {
	_, form, _ := wired()
	form.Focus()

	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	assert.Equal(t, "hi", form.Draft())

	form.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "h", form.Draft())
}

func TestTaskEntryForm_BlurredIgnoresKeys(t *testing.T) {
	_, form, _ := wired()
	form.Blur()

	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "", form.Draft())
	assert.False(t, form.Focused())
}

func TestTaskEntryForm_SubmitClearsInput(t *testing.T) {
	_, form, _ := wired()
	form.Focus()
	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("task")})

	form.OnSubmit()

	assert.Equal(t, "", form.Draft())
	// Typing after submit starts from an empty field.
	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.Equal(t, "z", form.Draft())
}

func TestTaskEntryForm_ViewShowsCounter(t *testing.T) {
	_, form, _ := wired(model.NewTaskItem("a"), model.NewTaskItem("b"), model.NewTaskItem("c"))
	form.SetWidth(40)

	view := form.View()
	firstLine := strings.SplitN(view, "\n", 2)[0]
	assert.Contains(t, firstLine, "3")
}
