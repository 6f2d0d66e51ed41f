// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tasklist-tui/internal/model"
	"github.com/jeranaias/tasklist-tui/internal/store"
	"github.com/jeranaias/tasklist-tui/internal/ui/styles"
)

// =============================================================================
// TASK ENTRY FORM - Draft input with a live item counter
// =============================================================================

// TaskEntryForm owns the draft label and shows how many items exist.
//
// The form never holds the task collection itself. It keeps the last snapshot
// it observed and pushes complete new collections through update.
type TaskEntryForm struct {
	input textinput.Model
	theme *styles.Theme

	draft    string
	counter  int
	snapshot model.Collection
	update   store.UpdateFunc

	width   int
	focused bool
}

// NewTaskEntryForm creates a form seeded with the current snapshot.
// update is normally the store's Replace method.
func NewTaskEntryForm(theme *styles.Theme, snapshot model.Collection, update store.UpdateFunc) *TaskEntryForm {
	if theme == nil {
		theme = styles.NewTheme()
	}

	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Prompt = "> "
	ti.Width = 60
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Cyan)

	return &TaskEntryForm{
		input:    ti,
		theme:    theme,
		counter:  snapshot.Len(),
		snapshot: snapshot,
		update:   update,
		width:    80,
	}
}

// =============================================================================
// STATE TRANSITIONS
// =============================================================================

// OnInputChange sets the draft. Any text is accepted, including "".
func (f *TaskEntryForm) OnInputChange(text string) {
	f.draft = text
	if f.input.Value() != text {
		f.input.SetValue(text)
	}
}

// OnSubmit appends the draft as a new open item and clears the draft.
// Empty and whitespace-only labels are submitted like any other.
func (f *TaskEntryForm) OnSubmit() {
	next := f.snapshot.Append(model.NewTaskItem(f.draft))
	f.update(next)

	f.draft = ""
	f.input.Reset()
}

// Observe records a new collection. It is subscribed to the store, so the
// counter is current before Replace returns, including after OnSubmit.
func (f *TaskEntryForm) Observe(c model.Collection) {
	f.snapshot = c
	f.counter = c.Len()
}

// Draft returns the not-yet-submitted label.
func (f *TaskEntryForm) Draft() string {
	return f.draft
}

// Counter returns the length of the last observed collection.
func (f *TaskEntryForm) Counter() int {
	return f.counter
}

// =============================================================================
// FOCUS AND LAYOUT
// =============================================================================

// Focus focuses the input
func (f *TaskEntryForm) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur removes focus from the input
func (f *TaskEntryForm) Blur() {
	f.focused = false
	f.input.Blur()
}

// Focused returns whether the input is focused
func (f *TaskEntryForm) Focused() bool {
	return f.focused
}

// SetWidth sets the form width
func (f *TaskEntryForm) SetWidth(width int) {
	f.width = width
	// Account for prompt, border and padding
	inputWidth := width - 8
	if inputWidth < 10 {
		inputWidth = 10
	}
	f.input.Width = inputWidth
}

// =============================================================================
// BUBBLE TEA
// =============================================================================

// Update forwards key input to the text field and mirrors its value into the
// draft. Submission is left to the caller's key bindings.
func (f *TaskEntryForm) Update(msg tea.Msg) (*TaskEntryForm, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if v := f.input.Value(); v != f.draft {
		f.OnInputChange(v)
	}
	return f, cmd
}

// View renders the counter above the input box.
func (f *TaskEntryForm) View() string {
	counter := f.theme.Counter.Render(fmt.Sprintf("%d", f.counter))

	box := f.theme.InputContainer
	if f.focused {
		box = f.theme.InputContainerFocused
	}
	block, _ := fitWidth(box, f.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		counter,
		box.Width(block).Render(f.input.View()),
	)
}
